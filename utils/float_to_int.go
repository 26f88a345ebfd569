// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCM16Scale is the full-scale magnitude used when normalizing 16-bit words.
const PCM16Scale = 32767.0

// Float32ToInt16 maps a normalized sample back to a 16-bit word using the
// same 32767 scale the decoder divides by, rounding to the nearest integer.
// Values outside the int16 range are clamped.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * PCM16Scale)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}
