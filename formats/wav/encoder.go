// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/misrei/sc12conv/audio"
	"github.com/misrei/sc12conv/utils"
)

const (
	bitDepth  = 16
	formatPCM = 1
)

// pcmWriter is an interface for gowav.Encoder to allow testing
type pcmWriter interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

type sink struct {
	enc      pcmWriter
	channels int
	intBuf   *goaudio.IntBuffer
	started  bool
}

func newSink(enc pcmWriter, sampleRate, channels int) *sink {
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

	if cap(s.intBuf.Data) < len(src) {
		s.intBuf.Data = make([]int, len(src))
	}
	s.intBuf.Data = s.intBuf.Data[:len(src)]

	for i, v := range src {
		s.intBuf.Data[i] = int(utils.Float32ToInt16(v))
	}

	if err := s.enc.Write(s.intBuf); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	s.started = true

	return len(src), nil
}

// Close patches the RIFF and data chunk sizes. An empty stream still gets a
// complete header.
func (s *sink) Close() error {
	if !s.started {
		s.intBuf.Data = s.intBuf.Data[:0]
		if err := s.enc.Write(s.intBuf); err != nil {
			return fmt.Errorf("writing wav header: %w", err)
		}
		s.started = true
	}

	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Encoder writes 16-bit PCM WAV, one channel per interleaved component
// (I on the left channel, Q on the right for complex data).
//
// The RIFF header is patched on Close, so the writer must be an
// io.WriteSeeker such as *os.File.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, sampleRate, channels int) (audio.Sink, error) {
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

	enc := gowav.NewEncoder(ws, sampleRate, bitDepth, channels, formatPCM)

	return newSink(enc, sampleRate, channels), nil
}
