// Package debug provides the process-wide diagnostic logger.
//
// Output goes to stderr through a charmbracelet/log logger and is silent
// unless debug mode is enabled with SetDebug.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

const timeFormat = "15:04:05.000"

var (
	mu      sync.RWMutex
	enabled bool
	logger  = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.InfoLevel,
		Prefix:          "gears",
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	if enable {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	if disable {
		logger.SetColorProfile(termenv.Ascii)
	} else {
		logger.SetColorProfile(termenv.ANSI256)
	}
}

// SetOutput redirects log output. Tests use it to capture messages.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// Logger returns the structured logger for key/value logging.
func Logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug prints a formatted debug message
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	Logger().Debug(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	Logger().Debug(fmt.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	Logger().Debug(key, "value", value)
}
