// SPDX-License-Identifier: EPL-2.0

// Package wav writes interleaved samples as 16-bit PCM WAV files.
//
// It uses the github.com/go-audio library for the RIFF container.
//
// # Writing WAV Files
//
//	file, _ := os.Create("capture.wav")
//	sink, err := wav.Encoder{}.Encode(file, 2000000, 2)
//	n, err := sink.WriteSamples(samples)
//	err = sink.Close() // patches chunk sizes
//	file.Close()
//
// Samples are mapped back to 16-bit words with the same 1/32767 scale the
// SC12 decoder uses, so sign-extended 12-bit data is stored losslessly.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotSeekable: the writer cannot seek back to patch the header
//   - ErrInvalidSampleRate: the declared sample rate is not positive
//   - ErrInvalidChannels: the channel count is not positive
package wav
