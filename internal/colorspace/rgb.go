package colorspace

import "fmt"

// RGB is an 8-bit per channel colour. Values are never mutated in place;
// every operation returns a new RGB.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// FromChannels builds an RGB from exactly three channel values.
func FromChannels(channels []uint8) (RGB, error) {
	if len(channels) != 3 {
		return RGB{}, fmt.Errorf("expected 3 channels, got %d", len(channels))
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Channels returns the channels in red, green, blue order.
func (c RGB) Channels() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Hex renders the colour as lowercase rrggbb without a leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String renders the colour as a decimal r,g,b triple.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}
