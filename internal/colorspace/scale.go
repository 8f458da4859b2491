package colorspace

// Scale multiplies each channel by factor independently and narrows the
// result with the given policy. A factor of 1.0 returns c unchanged.
func Scale(c RGB, factor float64, overflow Overflow) RGB {
	return RGB{
		R: overflow.Narrow(float64(c.R) * factor),
		G: overflow.Narrow(float64(c.G) * factor),
		B: overflow.Narrow(float64(c.B) * factor),
	}
}
