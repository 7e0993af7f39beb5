package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// isInteractive reports whether stdin is a terminal a prompt can use.
func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// confirmOverwrite asks whether an existing output file may be replaced.
func confirmOverwrite(path string) (bool, error) {
	var replace bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite?", path),
		Default: false,
		Help:    "Answer no to keep the existing file. Use --force to skip this question.",
	}
	if err := survey.AskOne(prompt, &replace); err != nil {
		return false, fmt.Errorf("failed to prompt for %s: %w", path, err)
	}
	return replace, nil
}
