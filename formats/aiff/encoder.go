// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/misrei/sc12conv/audio"
	"github.com/misrei/sc12conv/utils"
)

const bitDepth = 16

// aiffWriter is an interface for goaiff.Encoder to allow testing
type aiffWriter interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// sink wraps go-audio aiff.Encoder to implement audio.Sink
type sink struct {
	enc      aiffWriter
	channels int
	intBuf   *goaudio.IntBuffer
	started  bool
}

func newSink(enc aiffWriter, sampleRate, channels int) *sink {
	return &sink{
		enc:      enc,
		channels: channels,
		intBuf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *sink) WriteSamples(src []float32) (int, error) {
	if len(src)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	// Resize buffer if needed
	if cap(s.intBuf.Data) < len(src) {
		s.intBuf.Data = make([]int, len(src))
	}
	s.intBuf.Data = s.intBuf.Data[:len(src)]

	for i, v := range src {
		s.intBuf.Data[i] = int(utils.Float32ToInt16(v))
	}

	if err := s.enc.Write(s.intBuf); err != nil {
		return 0, fmt.Errorf("writing aiff data: %w", err)
	}
	s.started = true

	return len(src), nil
}

func (s *sink) Close() error {
	// go-audio only emits the FORM/COMM header on the first Write
	if !s.started {
		s.intBuf.Data = s.intBuf.Data[:0]
		if err := s.enc.Write(s.intBuf); err != nil {
			return fmt.Errorf("writing aiff header: %w", err)
		}
		s.started = true
	}

	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Encoder writes big-endian 16-bit PCM AIFF.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, sampleRate, channels int) (audio.Sink, error) {
	// go-audio requires io.WriteSeeker to patch chunk sizes on Close
	ws, ok := w.(io.WriteSeeker)
	if !ok {
		return nil, ErrNotSeekable
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	return newSink(goaiff.NewEncoder(ws, sampleRate, bitDepth, channels), sampleRate, channels), nil
}
