package input

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrAmbiguousDelimiter is returned when the input mixes ',' and ':'.
	ErrAmbiguousDelimiter = errors.New("ambiguous delimiter: both ',' and ':' present")
	// ErrUnrecognizedFormat is returned for input that is neither hex nor a delimited triplet.
	ErrUnrecognizedFormat = errors.New("unrecognized color format")
	// ErrMalformedHexLength is returned for hex input that is not 5 or 6 digits long.
	ErrMalformedHexLength = errors.New("malformed hex length")
)

// InvalidDigitError reports a chunk or segment that failed numeric parsing.
type InvalidDigitError struct {
	Mode    Mode
	Segment string
	Err     error
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid %s digit %q: %v", e.Mode, e.Segment, e.Err)
}

func (e *InvalidDigitError) Unwrap() error {
	return e.Err
}

// Reason describes the underlying parse failure without the strconv
// function prefix, e.g. "value out of range".
func (e *InvalidDigitError) Reason() string {
	var numErr *strconv.NumError
	if errors.As(e.Err, &numErr) {
		return numErr.Err.Error()
	}
	return e.Err.Error()
}

// WrongSegmentCountError is returned when a triplet does not split into
// exactly three segments.
type WrongSegmentCountError struct {
	Delimiter string
	Got       int
}

func (e *WrongSegmentCountError) Error() string {
	return fmt.Sprintf("expected 3 %q-separated values, got %d", e.Delimiter, e.Got)
}
