// SPDX-License-Identifier: EPL-2.0

package fc32

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/misrei/sc12conv/audio"
)

// BytesPerSample is the size of one serialized float32.
const BytesPerSample = 4

type sink struct {
	w   io.Writer
	buf []byte
}

// WriteSamples serializes src as little-endian IEEE-754 float32 values in one
// Write call. On a failed write the returned count covers only whole samples
// the writer accepted.
func (s *sink) WriteSamples(src []float32) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	size := len(src) * BytesPerSample
	if cap(s.buf) < size {
		s.buf = make([]byte, size)
	}
	buf := s.buf[:size]

	for i, v := range src {
		binary.LittleEndian.PutUint32(buf[i*BytesPerSample:], math.Float32bits(v))
	}

	n, err := s.w.Write(buf)
	if err != nil {
		return n / BytesPerSample, fmt.Errorf("%w", err)
	}
	if n < size {
		return n / BytesPerSample, io.ErrShortWrite
	}

	return len(src), nil
}

func (s *sink) Close() error { return nil }

// Encoder writes raw interleaved float32 samples with no header.
// The sample rate and channel count are not recorded.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, sampleRate, channels int) (audio.Sink, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &sink{w: w}, nil
}
