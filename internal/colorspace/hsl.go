package colorspace

import (
	"fmt"
	"math"
)

// HSL is a colour in the hue/saturation/lightness model. H is in degrees
// [0,360); S and L are fractions in [0,1].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// Chroma selects the chroma formula used by HSL.ToRGB.
type Chroma string

const (
	// ChromaStandard is c = (1-|2L-1|)*S.
	ChromaStandard Chroma = "standard"
	// ChromaLegacy is c = 1-|2L-1|*5*S, kept to reproduce old output.
	ChromaLegacy Chroma = "legacy"
)

// Options controls the HSL→RGB conversion.
type Options struct {
	Chroma   Chroma
	Overflow Overflow
}

// DefaultOptions returns the standard chroma formula with clamping.
func DefaultOptions() Options {
	return Options{Chroma: ChromaStandard, Overflow: OverflowClamp}
}

// NewHSL builds an HSL value with the hue wrapped into [0,360) and
// saturation and lightness clamped to [0,1].
func NewHSL(h, s, l float64) HSL {
	return HSL{H: WrapHue(h), S: clamp01(s), L: clamp01(l)}
}

// WrapHue reduces h into [0,360) with a Euclidean modulo.
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360
	if h >= 360 {
		h -= 360
	}
	return h
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// ToHSL converts an RGB colour to HSL.
func ToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	l := (max + min) / 2
	d := max - min

	if d == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	s := d / (1 - math.Abs(2*l-1))

	var h float64
	switch max {
	case r:
		h = 60 * euclidMod((g-b)/d, 6)
	case g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}

	return NewHSL(h, s, l)
}

// ToRGB converts the colour back to RGB. The active component formula is
// selected by the 60° sextant the hue falls in; a hue outside [0,360)
// contributes no chroma.
func (c HSL) ToRGB(opts Options) RGB {
	if opts.Overflow == "" {
		opts.Overflow = OverflowClamp
	}

	var chroma float64
	if opts.Chroma == ChromaLegacy {
		chroma = 1 - math.Abs(2*c.L-1)*5*c.S
	} else {
		chroma = (1 - math.Abs(2*c.L-1)) * c.S
	}
	x := chroma * (1 - math.Abs(euclidMod(c.H/60, 2)-1))
	m := c.L - chroma/2

	var r, g, b float64
	switch {
	case c.H >= 0 && c.H < 60:
		r, g, b = chroma, x, 0
	case c.H >= 60 && c.H < 120:
		r, g, b = x, chroma, 0
	case c.H >= 120 && c.H < 180:
		r, g, b = 0, chroma, x
	case c.H >= 180 && c.H < 240:
		r, g, b = 0, x, chroma
	case c.H >= 240 && c.H < 300:
		r, g, b = x, 0, chroma
	case c.H >= 300 && c.H < 360:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: opts.Overflow.Narrow((r + m) * 255),
		G: opts.Overflow.Narrow((g + m) * 255),
		B: opts.Overflow.Narrow((b + m) * 255),
	}
}

// String renders the colour as degrees and percentages with two decimals.
func (c HSL) String() string {
	return fmt.Sprintf("%.2f°, %.2f%%, %.2f%%", c.H, c.S*100, c.L*100)
}

func euclidMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += b
	}
	return r
}
