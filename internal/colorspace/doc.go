// Package colorspace implements the colour arithmetic behind huectl.
//
// It provides the RGB and HSL value types, per-channel scaling, the
// RGB↔HSL conversions and the palette generator that derives related
// colours from a base HSL value.
//
// # Narrowing
//
// Every operation that produces an 8-bit channel from a float goes through
// an Overflow policy:
//
//   - OverflowClamp saturates to [0,255] (the default)
//   - OverflowWrap truncates and keeps the low 8 bits, so a channel pushed
//     past 255 wraps around modulo 256
//
// # Chroma
//
// HSL→RGB uses the standard chroma formula c = (1-|2L-1|)*S unless
// ChromaLegacy is selected, in which case the legacy c = 1-|2L-1|*5*S is
// applied so that old output can be reproduced.
//
// # Usage Example
//
//	base := colorspace.RGB{R: 200, G: 100, B: 50}
//	scaled := colorspace.Scale(base, 0.5, colorspace.OverflowClamp) // 100,50,25
//
//	hsl := colorspace.ToHSL(base)
//	for _, entry := range colorspace.GeneratePalette(hsl) {
//	    fmt.Println(entry.Group, entry.Variant, entry.HSL.ToRGB(colorspace.DefaultOptions()).Hex())
//	}
package colorspace
