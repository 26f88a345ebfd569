// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "full scale positive",
			input: 1.0,
			want:  math.MaxInt16,
		},
		{
			name:  "full scale negative",
			input: -1.0,
			want:  -math.MaxInt16,
		},
		{
			name:  "below full scale negative",
			input: -32768.0 / 32767.0,
			want:  math.MinInt16,
		},
		{
			name:  "clamp over max",
			input: 1.5,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp under min",
			input: -1.5,
			want:  math.MinInt16,
		},
		{
			name:  "rounds to nearest",
			input: 16.4 / 32767.0,
			want:  16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16_InvertsNormalization verifies every sign-extended 12-bit
// word survives a trip through float32 normalization.
func TestFloat32ToInt16_InvertsNormalization(t *testing.T) {
	t.Parallel()

	const scale float32 = 1.0 / PCM16Scale

	for raw := range uint32(0x1000) {
		word := SignExtend12(raw)
		f := float32(word) * scale

		if got := Float32ToInt16(f); got != word {
			t.Fatalf("Float32ToInt16(%v) = %d, want %d", f, got, word)
		}
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	var result int16
	input := float32(0.5)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		result = Float32ToInt16(input)
	}

	_ = result
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
