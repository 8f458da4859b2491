package input

import "strings"

// Mode is the detected shape of a colour argument.
type Mode string

const (
	ModeHex     Mode = "hex"
	ModeTriplet Mode = "triplet"
)

const (
	DelimiterComma = ","
	DelimiterColon = ":"
)

// Input is a classified colour argument, ready for Parse.
type Input struct {
	Raw       string
	Mode      Mode
	Delimiter string // set for ModeTriplet only
}

// Classify decides whether raw is a hex code or a delimited triplet.
// The hex check runs before the delimiter check, so any string made only of
// hex digits is hex, including the empty string.
func Classify(raw string) (Input, error) {
	hasComma := strings.Contains(raw, DelimiterComma)
	hasColon := strings.Contains(raw, DelimiterColon)

	switch {
	case hasComma && hasColon:
		return Input{}, ErrAmbiguousDelimiter
	case IsHex(raw):
		return Input{Raw: raw, Mode: ModeHex}, nil
	case hasComma:
		return Input{Raw: raw, Mode: ModeTriplet, Delimiter: DelimiterComma}, nil
	case hasColon:
		return Input{Raw: raw, Mode: ModeTriplet, Delimiter: DelimiterColon}, nil
	default:
		return Input{}, ErrUnrecognizedFormat
	}
}

// IsHex reports whether every byte of s is an ASCII hex digit.
func IsHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
