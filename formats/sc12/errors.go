// SPDX-License-Identifier: EPL-2.0

package sc12

import "errors"

var (
	// ErrNilReader indicates Decode was called without an input stream
	ErrNilReader = errors.New("sc12: nil reader")
	// ErrInvalidSampleRate indicates a negative declared sample rate
	ErrInvalidSampleRate = errors.New("sc12: sample rate must not be negative")
)
