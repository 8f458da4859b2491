package input

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huectl/internal/colorspace"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		mode      Mode
		delimiter string
		err       error
	}{
		{name: "hex", raw: "ff3342", mode: ModeHex},
		{name: "uppercase hex", raw: "FF3342", mode: ModeHex},
		{name: "decimal digits only are hex", raw: "255", mode: ModeHex},
		{name: "empty string is hex", raw: "", mode: ModeHex},
		{name: "comma triplet", raw: "255,128,64", mode: ModeTriplet, delimiter: ","},
		{name: "colon triplet", raw: "255:128:64", mode: ModeTriplet, delimiter: ":"},
		{name: "mixed delimiters", raw: "1,2:3", err: ErrAmbiguousDelimiter},
		{name: "not hex", raw: "xyz", err: ErrUnrecognizedFormat},
		{name: "hash prefix", raw: "#ff3342", err: ErrUnrecognizedFormat},
		{name: "spaces", raw: "255 128 64", err: ErrUnrecognizedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Classify(tt.raw)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mode, in.Mode)
			assert.Equal(t, tt.delimiter, in.Delimiter)
			assert.Equal(t, tt.raw, in.Raw)
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		raw      string
		expected colorspace.RGB
	}{
		{"ff3342", colorspace.RGB{R: 255, G: 51, B: 66}},
		{"000000", colorspace.RGB{}},
		{"FFFFFF", colorspace.RGB{R: 255, G: 255, B: 255}},
		{"abcde", colorspace.RGB{R: 0xab, G: 0xcd, B: 0x0e}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, c, err := ParseString(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseHex_Length(t *testing.T) {
	for _, raw := range []string{"", "a", "abcd", "1234567", "255"} {
		t.Run(fmt.Sprintf("len_%d", len(raw)), func(t *testing.T) {
			in, _, err := ParseString(raw)
			assert.ErrorIs(t, err, ErrMalformedHexLength)
			assert.Equal(t, ModeHex, in.Mode)
		})
	}
}

func TestParseHex_InvalidDigit(t *testing.T) {
	// Classify never lets a non-hex string through, so drive Parse directly.
	_, err := Parse(Input{Raw: "ffzz00", Mode: ModeHex})

	var digitErr *InvalidDigitError
	require.ErrorAs(t, err, &digitErr)
	assert.Equal(t, ModeHex, digitErr.Mode)
	assert.Equal(t, "zz", digitErr.Segment)
	assert.Equal(t, "invalid syntax", digitErr.Reason())
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				want := colorspace.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				_, got, err := ParseString(want.Hex())
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}
	}
}

func TestParseTriplet(t *testing.T) {
	_, c, err := ParseString("255,128,64")
	require.NoError(t, err)
	assert.Equal(t, colorspace.RGB{R: 255, G: 128, B: 64}, c)

	_, c, err = ParseString("0:10:200")
	require.NoError(t, err)
	assert.Equal(t, colorspace.RGB{G: 10, B: 200}, c)

	_, c, err = ParseString("+10,20,30")
	require.NoError(t, err)
	assert.Equal(t, colorspace.RGB{R: 10, G: 20, B: 30}, c)

	_, c, err = ParseString("10:+20:30")
	require.NoError(t, err)
	assert.Equal(t, colorspace.RGB{R: 10, G: 20, B: 30}, c)
}

func TestParseTriplet_WrongSegmentCount(t *testing.T) {
	tests := []struct {
		raw string
		got int
	}{
		{"0,0,0,0", 4},
		{"1,2", 2},
		{"1:2:3:4:5", 5},
		{",", 2},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, _, err := ParseString(tt.raw)
			var countErr *WrongSegmentCountError
			require.ErrorAs(t, err, &countErr)
			assert.Equal(t, tt.got, countErr.Got)
		})
	}
}

func TestParseTriplet_InvalidDigit(t *testing.T) {
	tests := []struct {
		raw     string
		segment string
		reason  string
	}{
		{"256,0,0", "256", "value out of range"},
		{"1,x,3", "x", "invalid syntax"},
		{"1,2,", "", "invalid syntax"},
		{"-1,2,3", "-1", "invalid syntax"},
		{"+,2,3", "+", "invalid syntax"},
		{"1,++1,3", "++1", "invalid syntax"},
		{"1,2,+256", "+256", "value out of range"},
		{"1, 2,3", " 2", "invalid syntax"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, c, err := ParseString(tt.raw)
			assert.Equal(t, colorspace.RGB{}, c, "no partial result")

			var digitErr *InvalidDigitError
			require.ErrorAs(t, err, &digitErr)
			assert.Equal(t, ModeTriplet, digitErr.Mode)
			assert.Equal(t, tt.segment, digitErr.Segment)
			assert.Equal(t, tt.reason, digitErr.Reason())
		})
	}
}

func TestInvalidDigitError_ReasonWithoutNumError(t *testing.T) {
	err := &InvalidDigitError{Mode: ModeHex, Segment: "q", Err: errors.New("bad")}
	assert.Equal(t, "bad", err.Reason())
	assert.Contains(t, err.Error(), `"q"`)
}

func TestParse_UnknownMode(t *testing.T) {
	_, err := Parse(Input{Raw: "ff", Mode: Mode("octal")})
	assert.ErrorContains(t, err, "unsupported mode")
}
