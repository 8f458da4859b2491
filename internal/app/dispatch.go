package app

import (
	"errors"
	"fmt"
	"io"

	"huectl/internal/input"
	"huectl/pkg/logging"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
)

// outcome is how a failure is shown to the user.
type outcome struct {
	stream  io.Writer
	message string
	code    int
}

// handleError reports err on the stream its kind calls for and returns the
// exit code. Input problems are soft failures and exit 0, except a hex digit
// that fails to parse.
func (a *Application) handleError(err error) int {
	o := a.classify(err)
	logging.Debug("Dispatcher", "Input rejected with exit code %d: %v", o.code, err)
	fmt.Fprintln(o.stream, o.message)
	return o.code
}

func (a *Application) classify(err error) outcome {
	var digitErr *input.InvalidDigitError
	var countErr *input.WrongSegmentCountError

	switch {
	case errors.Is(err, input.ErrAmbiguousDelimiter):
		return outcome{a.stderr, "Please use only one separator, either ',' or ':'", ExitOK}
	case errors.Is(err, input.ErrMalformedHexLength):
		return outcome{a.stdout, "Invalid hex code, see -h for help", ExitOK}
	case errors.Is(err, input.ErrUnrecognizedFormat):
		return outcome{a.stderr, "Invalid args, use -h for help", ExitOK}
	case errors.As(err, &digitErr):
		msg := fmt.Sprintf("Invalid args, error: %s.", digitErr.Reason())
		if digitErr.Mode == input.ModeHex {
			return outcome{a.stderr, "error: " + msg, ExitError}
		}
		return outcome{a.stdout, msg, ExitOK}
	case errors.As(err, &countErr):
		msg := fmt.Sprintf("Invalid args, expected 3 values separated by %q, got %d, see -h for help", countErr.Delimiter, countErr.Got)
		return outcome{a.stderr, msg, ExitOK}
	default:
		logging.Error("Dispatcher", err, "Run failed")
		return outcome{a.stderr, "error: " + err.Error(), ExitError}
	}
}
