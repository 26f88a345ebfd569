// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the stream in Hz, 0 when the container does not carry one.
	SampleRate() int
	// Channels count (2 for interleaved I/Q).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples.
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the number of float32 values one ReadSamples call can fill at most.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Sink consumes interleaved float32 samples and serializes them to a container.
type Sink interface {
	// WriteSamples writes src and returns the number of float32 values consumed.
	WriteSamples(src []float32) (n int, err error)

	// Close flushes pending data and finalizes any header. It does not close
	// the underlying writer.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder constructs a Sink on top of an output writer.
type Encoder interface {
	Encode(w io.Writer, sampleRate, channels int) (Sink, error)
}

// Registry maps file extensions (without the dot, e.g. "sc12", "fc32")
// to decoders and encoders.
type Registry struct {
	decoders map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) RegisterDecoder(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[ext] = d
}

func (r *Registry) RegisterEncoder(ext string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[ext] = e
}

func (r *Registry) Decoder(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[ext]
	return d, ok
}

func (r *Registry) Encoder(ext string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[ext]
	return e, ok
}
