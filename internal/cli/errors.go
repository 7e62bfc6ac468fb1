package cli

import (
	"errors"
	"fmt"
	"io"
)

// PreflightError is a user-facing error with a hint and a next step.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func printError(out io.Writer, err error) {
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		fmt.Fprintf(out, "%s %s\n", colorize("Error:", colorRed), preflight.Message)
		if preflight.Hint != "" {
			fmt.Fprintf(out, "  Hint: %s\n", preflight.Hint)
		}
		if preflight.NextStep != "" {
			fmt.Fprintf(out, "  Try:  %s\n", preflight.NextStep)
		}
		return
	}
	fmt.Fprintf(out, "%s %v\n", colorize("Error:", colorRed), err)
}
