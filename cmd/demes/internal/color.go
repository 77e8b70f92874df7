package internal

import (
	"os"
	"strconv"

	"github.com/fatih/color"
)

var (
	Success = color.New(color.FgGreen, color.Bold)
	Failure = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgBlue, color.Bold)
)

// InitColor disables color output when NO_COLOR is set or the caller
// passed --no-color.
func InitColor(enableColor bool) {
	if noColor, _ := strconv.ParseBool(os.Getenv("NO_COLOR")); noColor {
		color.NoColor = true
		return
	}
	if !color.NoColor {
		color.NoColor = !enableColor
	}
}

// PrintSuccess prints a success message to stdout.
func PrintSuccess(format string, args ...interface{}) {
	Success.Printf(format, args...)
}

// PrintFailure prints a failure message to stderr.
func PrintFailure(format string, args ...interface{}) {
	Failure.Fprintf(os.Stderr, format, args...)
}

// PrintInfo prints an informational message to stdout.
func PrintInfo(format string, args ...interface{}) {
	Info.Printf(format, args...)
}
