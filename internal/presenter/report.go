package presenter

import (
	"huectl/internal/colorspace"
)

// Swatch is a colour together with its hex form.
type Swatch struct {
	RGB colorspace.RGB `json:"rgb" yaml:"rgb"`
	Hex string         `json:"hex" yaml:"hex"`
}

// NewSwatch builds a Swatch from c.
func NewSwatch(c colorspace.RGB) Swatch {
	return Swatch{RGB: c, Hex: c.Hex()}
}

// PaletteSwatch is one derived palette colour.
type PaletteSwatch struct {
	Group   colorspace.Group `json:"group" yaml:"group"`
	Variant string           `json:"variant" yaml:"variant"`
	HSL     colorspace.HSL   `json:"hsl" yaml:"hsl"`
	Swatch  `yaml:",inline"`
}

// Report is everything one invocation produces.
type Report struct {
	Input    string          `json:"input" yaml:"input"`
	Mode     string          `json:"mode" yaml:"mode"`
	Scale    float64         `json:"scale" yaml:"scale"`
	Original Swatch          `json:"original" yaml:"original"`
	Scaled   Swatch          `json:"scaled" yaml:"scaled"`
	HSL      *colorspace.HSL `json:"hsl,omitempty" yaml:"hsl,omitempty"`
	Palette  []PaletteSwatch `json:"palette,omitempty" yaml:"palette,omitempty"`
}

// NewPaletteSwatches pairs every palette entry with its RGB conversion.
func NewPaletteSwatches(p colorspace.Palette, opts colorspace.Options) []PaletteSwatch {
	rgb := p.ToRGB(opts)
	out := make([]PaletteSwatch, len(p))
	for i, entry := range p {
		out[i] = PaletteSwatch{
			Group:   entry.Group,
			Variant: entry.Variant,
			HSL:     entry.HSL,
			Swatch:  NewSwatch(rgb[i]),
		}
	}
	return out
}
