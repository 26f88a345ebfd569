// SPDX-License-Identifier: EPL-2.0

package sc12

import (
	"errors"
	"fmt"
	"io"

	"github.com/misrei/sc12conv/audio"
)

// DefaultChunkGroups is the number of groups read per chunk (750000 bytes).
// A chunk is always a whole number of groups, so no bytes are dropped at
// chunk boundaries.
const DefaultChunkGroups = 250000

type source struct {
	r           io.Reader
	sampleRate  int
	chunkGroups int
	buf         []byte
	eof         bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return SamplesPerGroup }
func (s *source) BufSize() int    { return s.chunkGroups * SamplesPerGroup }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%SamplesPerGroup != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.eof {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	groups := min(len(dst)/SamplesPerGroup, s.chunkGroups)

	// ReadFull keeps every chunk group-aligned even when the reader returns
	// short reads; only the final chunk of the stream can be partial.
	n, err := io.ReadFull(s.r, s.buf[:groups*GroupSize])
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.eof = true
	case err != nil:
		return 0, fmt.Errorf("reading sc12 data: %w", err)
	}

	written := Unpack(dst, s.buf[:n])
	if written == 0 && s.eof {
		return 0, io.EOF
	}

	return written, nil
}

// Decoder turns a raw SC12 byte stream into an I/Q audio.Source.
//
// SC12 has no header, so the sample rate is whatever the caller declares; it
// is only used by containers that record one.
type Decoder struct {
	SampleRate  int
	ChunkGroups int // 0 means DefaultChunkGroups
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if d.SampleRate < 0 {
		return nil, ErrInvalidSampleRate
	}

	groups := d.ChunkGroups
	if groups <= 0 {
		groups = DefaultChunkGroups
	}

	return &source{
		r:           r,
		sampleRate:  d.SampleRate,
		chunkGroups: groups,
		buf:         make([]byte, groups*GroupSize),
	}, nil
}
