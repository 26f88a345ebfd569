// SPDX-License-Identifier: EPL-2.0

// Package sc12 decodes packed signed 12-bit complex (I/Q) samples.
//
// # Format
//
// SC12 is a headerless stream of 3-byte groups. Each group holds two 12-bit
// two's-complement words, I then Q, packed little-endian:
//
//	packed = b0 | b1<<8 | b2<<16
//	I      = packed & 0xfff
//	Q      = (packed >> 12) & 0xfff
//
// Each word is shifted into the top of a 16-bit word (sign-extending it) and
// multiplied by 1/32767, so samples fall in roughly [-1, 1).
//
// # Decoding
//
//	decoder := sc12.Decoder{SampleRate: 2000000}
//	file, _ := os.Open("capture.sc12")
//	source, err := decoder.Decode(file)
//
//	buf := make([]float32, source.BufSize())
//	n, err := source.ReadSamples(buf)
//
// The source reads the input in chunks of DefaultChunkGroups groups. Reads
// are always a whole number of groups, so only the last chunk of a stream
// can end mid-group; those 1-2 trailing bytes are discarded without error.
//
// # Single Groups
//
// DecodeGroup and Unpack expose the conversion without any I/O:
//
//	i, q := sc12.DecodeGroup(0xff, 0x0f, 0x00) // -16/32767, 0
//
// Unpack does not allocate.
package sc12
