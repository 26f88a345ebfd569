// SPDX-License-Identifier: EPL-2.0

package utils

// SignExtend12 widens the low 12 bits of raw to a 16-bit two's-complement word.
// The 12-bit value is moved into the top of the word, so the result is the
// original value multiplied by 16 (0x7FF -> 32752, 0x800 -> -32768).
func SignExtend12(raw uint32) int16 {
	return int16(uint16((raw & 0xfff) << 4))
}
