// SPDX-License-Identifier: EPL-2.0

// Package fc32 writes 32-bit floating point complex (I/Q) sample files.
//
// An FC32 file is a headerless sequence of little-endian IEEE-754 float32
// values, I and Q interleaved, 8 bytes per pair:
//
//	sink, _ := fc32.Encoder{}.Encode(file, 0, 2)
//	n, err := sink.WriteSamples(samples)
//
// Each WriteSamples call issues exactly one Write on the underlying writer,
// reusing an internal byte buffer between calls.
package fc32
