// Package logging is a small leveled logger for the CLI. Levels are colored
// with lipgloss; everything goes to stderr so stdout stays clean.
package logging

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
const (
	colorDebug = "#00FFFF"
	colorInfo  = "#04B575"
	colorWarn  = "#FFFF00"
	colorError = "#FF0000"
)

var (
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDebug))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorInfo))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarn)).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError)).Bold(true)
)

var verbose bool

// SetVerbose enables Debugf output.
func SetVerbose(v bool) { verbose = v }

func emit(style lipgloss.Style, level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", style.Render(level), msg)
}

// Debugf logs developer detail; silent unless SetVerbose(true) was called.
func Debugf(format string, args ...any) {
	if !verbose {
		return
	}
	emit(debugStyle, "DEBUG", format, args...)
}

// Infof logs normal progress.
func Infof(format string, args ...any) {
	emit(infoStyle, "INFO", format, args...)
}

// Warnf logs recovered problems, like a font or alarm fallback.
func Warnf(format string, args ...any) {
	emit(warnStyle, "WARN", format, args...)
}

// Errorf logs fatal problems right before the program exits non-zero.
func Errorf(format string, args ...any) {
	emit(errorStyle, "ERROR", format, args...)
}
