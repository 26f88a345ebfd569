// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by the failing fixtures in this package.
var ErrInjected = errors.New("audiotest: injected failure")

// IQSource is a test helper that generates interleaved I/Q frames.
// It implements the audio.Source interface (without importing it to avoid cycles).
type IQSource struct {
	sampleRate  int
	totalFrames int
	generated   int
	bufSize     int
	failAfter   int // frames after which ReadSamples fails, -1 disables
	waveform    func(frame int) (i, q float32)
}

// NewIQSource creates a source producing totalFrames I/Q pairs from waveform.
func NewIQSource(sampleRate, totalFrames int, waveform func(frame int) (i, q float32)) *IQSource {
	return &IQSource{
		sampleRate:  sampleRate,
		totalFrames: totalFrames,
		bufSize:     4096,
		failAfter:   -1,
		waveform:    waveform,
	}
}

// NewToneSource creates a complex exponential at frequency Hz.
func NewToneSource(sampleRate, totalFrames int, frequency float64) *IQSource {
	return NewIQSource(sampleRate, totalFrames, func(frame int) (float32, float32) {
		phase := 2 * math.Pi * frequency * float64(frame) / float64(sampleRate)
		return float32(math.Cos(phase)), float32(math.Sin(phase))
	})
}

// NewConstantSource creates a source repeating the same I/Q pair.
func NewConstantSource(sampleRate, totalFrames int, i, q float32) *IQSource {
	return NewIQSource(sampleRate, totalFrames, func(int) (float32, float32) {
		return i, q
	})
}

// WithBufSize overrides the value reported by BufSize.
func (m *IQSource) WithBufSize(n int) *IQSource {
	m.bufSize = n
	return m
}

// FailAfter makes ReadSamples return ErrInjected once frames have been produced.
func (m *IQSource) FailAfter(frames int) *IQSource {
	m.failAfter = frames
	return m
}

func (m *IQSource) SampleRate() int { return m.sampleRate }
func (m *IQSource) Channels() int   { return 2 }
func (m *IQSource) BufSize() int    { return m.bufSize }
func (m *IQSource) Close() error    { return nil }

func (m *IQSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrInjected
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/2, m.totalFrames-m.generated)
	if m.failAfter >= 0 {
		frames = min(frames, m.failAfter-m.generated)
	}

	for f := range frames {
		dst[2*f], dst[2*f+1] = m.waveform(m.generated + f)
	}
	m.generated += frames

	return frames * 2, nil
}

// MemorySink records every sample written to it.
// It implements the audio.Sink interface.
type MemorySink struct {
	Samples []float32
	Closed  bool

	limit int // samples accepted before failing, -1 disables
}

func NewMemorySink() *MemorySink {
	return &MemorySink{limit: -1}
}

// NewFailingSink accepts limit samples and then returns ErrInjected.
func NewFailingSink(limit int) *MemorySink {
	return &MemorySink{limit: limit}
}

func (s *MemorySink) WriteSamples(src []float32) (int, error) {
	if s.limit < 0 {
		s.Samples = append(s.Samples, src...)
		return len(src), nil
	}

	room := max(s.limit-len(s.Samples), 0)
	n := min(room, len(src))
	s.Samples = append(s.Samples, src[:n]...)
	if n < len(src) {
		return n, ErrInjected
	}

	return n, nil
}

func (s *MemorySink) Close() error {
	s.Closed = true
	return nil
}
