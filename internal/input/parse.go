package input

import (
	"fmt"
	"strconv"
	"strings"

	"huectl/internal/colorspace"
)

const (
	minHexLength = 5
	maxHexLength = 6
)

// Parse converts a classified input into an RGB colour.
func Parse(in Input) (colorspace.RGB, error) {
	switch in.Mode {
	case ModeHex:
		return parseHex(in.Raw)
	case ModeTriplet:
		return parseTriplet(in.Raw, in.Delimiter)
	default:
		return colorspace.RGB{}, fmt.Errorf("parse: unsupported mode %q", in.Mode)
	}
}

// ParseString classifies and parses raw in one step.
func ParseString(raw string) (Input, colorspace.RGB, error) {
	in, err := Classify(raw)
	if err != nil {
		return Input{}, colorspace.RGB{}, err
	}
	c, err := Parse(in)
	return in, c, err
}

// parseHex splits hex into two-character chunks. A five digit code keeps a
// trailing one-digit chunk for the blue channel ("abcde" is ab,cd,0e).
func parseHex(hex string) (colorspace.RGB, error) {
	if len(hex) < minHexLength || len(hex) > maxHexLength {
		return colorspace.RGB{}, ErrMalformedHexLength
	}

	channels := make([]uint8, 0, 3)
	for i := 0; i < len(hex); i += 2 {
		end := min(i+2, len(hex))
		chunk := hex[i:end]
		v, err := strconv.ParseUint(chunk, 16, 8)
		if err != nil {
			return colorspace.RGB{}, &InvalidDigitError{Mode: ModeHex, Segment: chunk, Err: err}
		}
		channels = append(channels, uint8(v))
	}
	return colorspace.FromChannels(channels)
}

func parseTriplet(raw, delimiter string) (colorspace.RGB, error) {
	segments := strings.Split(raw, delimiter)
	if len(segments) != 3 {
		return colorspace.RGB{}, &WrongSegmentCountError{Delimiter: delimiter, Got: len(segments)}
	}

	channels := make([]uint8, 0, 3)
	for _, segment := range segments {
		// One explicit plus sign is allowed; ParseUint rejects any sign.
		v, err := strconv.ParseUint(strings.TrimPrefix(segment, "+"), 10, 8)
		if err != nil {
			return colorspace.RGB{}, &InvalidDigitError{Mode: ModeTriplet, Segment: segment, Err: err}
		}
		channels = append(channels, uint8(v))
	}
	return colorspace.FromChannels(channels)
}
