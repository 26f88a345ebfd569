// SPDX-License-Identifier: EPL-2.0

package sc12

import "github.com/misrei/sc12conv/utils"

const (
	// GroupSize is the number of bytes holding one I/Q pair.
	GroupSize = 3
	// SamplesPerGroup is the number of 12-bit words in a group.
	SamplesPerGroup = 2

	scale float32 = 1.0 / utils.PCM16Scale
)

// DecodeGroup unpacks one 3-byte group into its two samples.
// The first sample comes from the low 12 bits of the little-endian 24-bit
// word, the second from the next 12 bits. Each is sign-extended into the top
// of a 16-bit word and multiplied by 1/32767.
func DecodeGroup(a, b, c byte) (float32, float32) {
	packed := uint32(a) | uint32(b)<<8 | uint32(c)<<16

	return float32(utils.SignExtend12(packed)) * scale,
		float32(utils.SignExtend12(packed>>12)) * scale
}

// Unpack decodes complete groups from src into dst and returns the number of
// float32 values written. It stops at whichever runs out first: the complete
// groups in src or pairs of slots in dst. Up to two trailing bytes of src are
// ignored.
func Unpack(dst []float32, src []byte) int {
	groups := min(len(src)/GroupSize, len(dst)/SamplesPerGroup)

	src = src[:groups*GroupSize]
	dst = dst[:groups*SamplesPerGroup]
	for g := range groups {
		dst[2*g], dst[2*g+1] = DecodeGroup(src[3*g], src[3*g+1], src[3*g+2])
	}

	return groups * SamplesPerGroup
}

// Groups returns how many complete groups n bytes of input hold.
func Groups(n int64) int64 {
	return n / GroupSize
}

// OutputSize returns the FC32 byte length produced from n bytes of SC12 input.
func OutputSize(n int64) int64 {
	return Groups(n) * SamplesPerGroup * 4
}
