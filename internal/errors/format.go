package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold)
	errorMsg    = color.New(color.FgRed)
	fixLabel    = color.New(color.FgGreen, color.Bold)
	usageLabel  = color.New(color.FgCyan, color.Bold)
	usageText   = color.New(color.FgCyan)
	bullet      = color.New(color.FgGreen)
	categoryFmt = color.New(color.FgYellow)
)

// FprintError writes err to w. Colors are only used when w is a terminal,
// so CI job logs stay free of escape sequences.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, formatError(err, isTerminal(w) && !color.NoColor))
}

// FprintSimpleError writes a plain error to w under the given category.
func FprintSimpleError(w io.Writer, err error, category ErrorCategory) {
	FprintError(w, Wrap(err, category))
}

func formatError(err *CLIError, useColors bool) string {
	paint := func(c *color.Color, s string) string {
		if !useColors {
			return s
		}
		return c.Sprint(s)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]: %s\n",
		paint(errorLabel, "Error"), paint(categoryFmt, err.Category.String()), paint(errorMsg, err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", paint(usageLabel, "Usage: "), paint(usageText, err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", paint(fixLabel, "To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", paint(bullet, "•"), step)
		}
	}

	return sb.String()
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
