// SPDX-License-Identifier: EPL-2.0

package sc12conv

import (
	"github.com/misrei/sc12conv/audio"
	"github.com/misrei/sc12conv/formats/aiff"
	"github.com/misrei/sc12conv/formats/fc32"
	"github.com/misrei/sc12conv/formats/sc12"
	"github.com/misrei/sc12conv/formats/wav"
)

const (
	// InputExtension is the only extension ConvertDir picks up.
	InputExtension = "sc12"
	// DefaultFormat is the output written when Options.Format is empty.
	DefaultFormat = "fc32"
	// DefaultSampleRate is recorded in containers that carry a rate when
	// Options.SampleRate is zero.
	DefaultSampleRate = 1000000
)

// DefaultRegistry returns a registry with the SC12 decoder and the fc32, wav
// and aiff encoders. sampleRate is the rate declared for SC12 input.
func DefaultRegistry(sampleRate int) *audio.Registry {
	reg := audio.NewRegistry()
	reg.RegisterDecoder(InputExtension, sc12.Decoder{SampleRate: sampleRate})
	reg.RegisterEncoder("fc32", fc32.Encoder{})
	reg.RegisterEncoder("wav", wav.Encoder{})
	reg.RegisterEncoder("aiff", aiff.Encoder{})

	return reg
}
