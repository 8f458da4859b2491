package colorspace

// Group names a colour-theory relationship within a palette.
type Group string

const (
	GroupComplementary Group = "complementary"
	GroupMonochromatic Group = "monochromatic"
	GroupAnalogous     Group = "analogous"
	GroupTriadic       Group = "triadic"
)

// PaletteSize is the number of entries GeneratePalette returns.
const PaletteSize = 12

// PaletteEntry is one derived colour together with its relationship to the
// base colour.
type PaletteEntry struct {
	Group   Group  `json:"group" yaml:"group"`
	Variant string `json:"variant" yaml:"variant"`
	HSL     HSL    `json:"hsl" yaml:"hsl"`
}

// Palette is an ordered list of derived colours.
type Palette []PaletteEntry

// paletteSlot places one palette entry relative to the base colour.
type paletteSlot struct {
	group          Group
	variant        string
	hueShift       float64
	lightnessShift float64
}

var paletteSlots = [PaletteSize]paletteSlot{
	{GroupComplementary, "complement", 180, 0},

	{GroupMonochromatic, "darker", 0, -0.35},
	{GroupMonochromatic, "dark", 0, -0.25},
	{GroupMonochromatic, "base", 0, 0},
	{GroupMonochromatic, "light", 0, 0.25},
	{GroupMonochromatic, "lighter", 0, 0.35},

	{GroupAnalogous, "+30°", 30, 0},
	{GroupAnalogous, "base", 0, 0},
	{GroupAnalogous, "-30°", -30, 0},

	{GroupTriadic, "+120°", 120, 0},
	{GroupTriadic, "base", 0, 0},
	{GroupTriadic, "-240°", -240, 0},
}

// GeneratePalette derives the complementary, monochromatic, analogous and
// triadic colours of base, in that order. Hues always stay in [0,360) and
// lightness is clamped to [0,1].
func GeneratePalette(base HSL) Palette {
	palette := make(Palette, 0, PaletteSize)
	for _, slot := range paletteSlots {
		palette = append(palette, PaletteEntry{
			Group:   slot.group,
			Variant: slot.variant,
			HSL:     NewHSL(base.H+slot.hueShift, base.S, base.L+slot.lightnessShift),
		})
	}
	return palette
}

// ToRGB converts every entry of the palette back to RGB, preserving order.
func (p Palette) ToRGB(opts Options) []RGB {
	out := make([]RGB, len(p))
	for i, entry := range p {
		out[i] = entry.HSL.ToRGB(opts)
	}
	return out
}

// Group returns the entries belonging to g, in palette order.
func (p Palette) Group(g Group) Palette {
	var out Palette
	for _, entry := range p {
		if entry.Group == g {
			out = append(out, entry)
		}
	}
	return out
}
