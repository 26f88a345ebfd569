// SPDX-License-Identifier: EPL-2.0

package fc32

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/misrei/sc12conv/internal/audiotest"
)

func TestEncoder_NilWriter(t *testing.T) {
	t.Parallel()

	if _, err := (Encoder{}).Encode(nil, 0, 2); !errors.Is(err, ErrNilWriter) {
		t.Errorf("Encode(nil) error = %v, want ErrNilWriter", err)
	}
}

func TestWriteSamples_LittleEndianFloat32(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	sink, err := Encoder{}.Encode(buf, 0, 2)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	samples := []float32{-16.0 / 32767.0, 0, 1, -1, 0.5, float32(math.Inf(1))}
	n, err := sink.WriteSamples(samples)
	if err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Errorf("WriteSamples() = %d, want %d", n, len(samples))
	}

	data := buf.Bytes()
	if len(data) != len(samples)*4 {
		t.Fatalf("wrote %d bytes, want %d", len(data), len(samples)*4)
	}

	for i, want := range samples {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		if math.Float32bits(got) != math.Float32bits(want) {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestWriteSamples_KnownBytes(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	sink, _ := Encoder{}.Encode(buf, 0, 2)

	if _, err := sink.WriteSamples([]float32{1.0, -2.0}); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}

	want := []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0xc0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("bytes = % x, want % x", buf.Bytes(), want)
	}
}

func TestWriteSamples_Empty(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	sink, _ := Encoder{}.Encode(buf, 0, 2)

	n, err := sink.WriteSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("WriteSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes, want 0", buf.Len())
	}
	if err := sink.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestWriteSamples_MultipleCallsAppend(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	sink, _ := Encoder{}.Encode(buf, 0, 2)

	for range 3 {
		if _, err := sink.WriteSamples([]float32{0.25, -0.25}); err != nil {
			t.Fatalf("WriteSamples() error = %v", err)
		}
	}

	if buf.Len() != 24 {
		t.Errorf("wrote %d bytes, want 24", buf.Len())
	}
}

func TestWriteSamples_WriterFails(t *testing.T) {
	t.Parallel()

	w := &audiotest.FailingWriter{Limit: 10}
	sink, _ := Encoder{}.Encode(w, 0, 2)

	n, err := sink.WriteSamples(make([]float32, 8))
	if !errors.Is(err, audiotest.ErrInjected) {
		t.Fatalf("WriteSamples() error = %v, want ErrInjected", err)
	}
	if n != 2 {
		t.Errorf("WriteSamples() = %d, want 2 whole samples", n)
	}
}

func BenchmarkWriteSamples(b *testing.B) {
	sink, _ := Encoder{}.Encode(discard{}, 0, 2)
	samples := make([]float32, 8192)

	b.SetBytes(int64(len(samples) * BytesPerSample))
	b.ReportAllocs()

	for b.Loop() {
		_, _ = sink.WriteSamples(samples)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
