package colorspace

import (
	"fmt"
	"math"
)

// Overflow selects how an out-of-range channel value is narrowed to 8 bits.
type Overflow string

const (
	// OverflowClamp saturates values to [0,255].
	OverflowClamp Overflow = "clamp"
	// OverflowWrap keeps the low 8 bits of the truncated integer, wrapping
	// modulo 256.
	OverflowWrap Overflow = "wrap"
)

// quantizeEpsilon absorbs float error from the /255 normalisation so that
// (v/255)*255 truncates back to v instead of v-1.
const quantizeEpsilon = 1e-9

// ParseOverflow validates a policy name.
func ParseOverflow(s string) (Overflow, error) {
	switch Overflow(s) {
	case OverflowClamp, OverflowWrap:
		return Overflow(s), nil
	default:
		return "", fmt.Errorf("unknown overflow policy %q (want %q or %q)", s, OverflowClamp, OverflowWrap)
	}
}

// Narrow truncates v toward zero and reduces it to a channel value.
func (o Overflow) Narrow(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	if v >= 0 {
		v += quantizeEpsilon
	}
	t := math.Trunc(v)

	if o == OverflowWrap {
		if math.IsInf(t, 0) || math.Abs(t) >= 1<<62 {
			return 0
		}
		return uint8(int64(t))
	}

	switch {
	case t <= 0:
		return 0
	case t >= 255:
		return 255
	default:
		return uint8(t)
	}
}
