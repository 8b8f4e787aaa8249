package cmd

import (
	"fmt"
	"os"

	"github.com/DevCompass/compass-cli/pkg/schema"
	"golang.org/x/term"
)

// ANSI color codes
const (
	reset   = "\033[0m"
	red     = "\033[31m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	magenta = "\033[35m"
	cyan    = "\033[36m"
	bold    = "\033[1m"
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorize applies color only if output is a TTY
func colorize(color, msg string) string {
	if !isTTY() {
		return msg
	}
	return color + msg + reset
}

// workflowColor renders a workflow label in its signature color.
// Streamlined workflows are green, comprehensive ones yellow, and
// phased ones magenta.
func workflowColor(w schema.WorkflowLabel) string {
	switch w {
	case schema.Orchestrated:
		return colorize(green+bold, w.String())
	case schema.PhaseBased:
		return colorize(magenta+bold, w.String())
	default:
		return colorize(yellow+bold, w.String())
	}
}

// formatError formats an error message with [ERROR] prefix in red
func formatError(msg string) string {
	prefix := colorize(red, "[ERROR]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// warn formats a warning message with [WARN] prefix in yellow
func warn(msg string) string {
	prefix := colorize(yellow, "[WARN]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// titleWithDesc formats a section title with description
func titleWithDesc(title, desc string) string {
	prefix := colorize(bold+cyan, fmt.Sprintf("[%s]", title))
	return fmt.Sprintf("%s %s", prefix, desc)
}

// printError prints an error message to stderr
func printError(msg string) {
	fmt.Fprintln(os.Stderr, formatError(msg))
}

// printWarn prints a warning message
func printWarn(msg string) {
	fmt.Println(warn(msg))
}

// printTitle prints a section title
func printTitle(title, desc string) {
	fmt.Println(titleWithDesc(title, desc))
}

// indent returns the message with indentation
func indent(msg string) string {
	return "     " + msg
}
