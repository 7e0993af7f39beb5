package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// statusOut receives status messages. Compiled assets go to the command's
// stdout, so status stays on stderr.
var statusOut io.Writer = os.Stderr

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

// styled renders s with style unless color is disabled.
func styled(style lipgloss.Style, s string) string {
	if globalNoColor {
		return s
	}
	return style.Render(s)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(statusOut, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(statusOut, "%s %s\n", styled(successStyle, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(statusOut, "%s %s\n", styled(warningStyle, "⚠"), msg)
}

// printErrorMsg prints an error message. Errors are never suppressed.
func printErrorMsg(msg string) {
	fmt.Fprintf(statusOut, "%s %s\n", styled(errorStyle, "✗"), msg)
}

// printVerbose prints a message only in verbose mode
func printVerbose(msg string) {
	if !globalVerbose || globalQuiet {
		return
	}
	fmt.Fprintf(statusOut, "  %s\n", styled(detailStyle, msg))
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(statusOut, "\n%s\n", styled(headerStyle, "=== "+title+" ==="))
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
