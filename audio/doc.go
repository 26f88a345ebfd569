// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream contracts shared by every sample format.
//
// This package contains the core building blocks:
//   - Source interface for sample input
//   - Sink interface for sample output
//   - Decoder and Encoder constructors for each container
//   - Format registry keyed by file extension
//   - Copy, the read/convert/write pump between a Source and a Sink
//
// # Source Interface
//
// The Source interface is the foundation of every conversion:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Complex baseband data is exposed as two interleaved channels, I first and
// Q second.
//
// # Sink Interface
//
// A Sink serializes interleaved samples into a container:
//
//	type Sink interface {
//	    WriteSamples(src []float32) (int, error)
//	    Close() error
//	}
//
// Close finalizes headers (for WAV and AIFF) but never closes the writer the
// sink was built on; the caller owns that.
//
// # Format Registry
//
// The registry maps extensions (without the dot) to decoders and encoders:
//
//	registry := audio.NewRegistry()
//	registry.RegisterDecoder("sc12", sc12.Decoder{})
//	registry.RegisterEncoder("fc32", fc32.Encoder{})
//	decoder, ok := registry.Decoder("sc12")
//
// Lookups are exact: "sc13" or "SC12" do not match "sc12".
//
// # Copying
//
//	n, err := audio.Copy(sink, source)
//	if errors.Is(err, audio.ErrWrite) {
//	    // the output is partial
//	}
//
// Copy allocates one buffer of source.BufSize() samples and reuses it for
// every chunk.
//
// # Sample Format
//
// Samples are float32 normalized by 32767, so decoded values fall in
// [-32768/32767, 32752/32767] for sign-extended 12-bit data.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Other errors
// indicate problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // handle buf[:n] first
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
