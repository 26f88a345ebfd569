// SPDX-License-Identifier: EPL-2.0

// Package aiff writes interleaved samples as AIFF (Audio Interchange File Format).
//
// This package uses github.com/go-audio/aiff to encode AIFF files.
//
// # Output Format
//
// AIFF encoder output:
//   - Sample format: big-endian 16-bit PCM
//   - Channels: as requested (2 for I/Q, I first)
//   - Sample rate: as declared by the caller
//
// # Writing AIFF Files
//
//	file, _ := os.Create("capture.aiff")
//	sink, err := aiff.Encoder{}.Encode(file, 2000000, 2)
//	if err != nil {
//	    // Handle error
//	}
//	n, err := sink.WriteSamples(samples)
//	err = sink.Close()
//
// Close patches the FORM and SSND chunk sizes; the file itself stays open.
//
// # Limitations
//
//   - The writer must implement io.WriteSeeker
//   - Only 16-bit output; sign-extended 12-bit data fits without loss
package aiff
