// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotSeekable indicates the output cannot seek back to patch chunk sizes
	ErrNotSeekable = errors.New("aiff output must be seekable")
	// ErrInvalidSampleRate indicates a non-positive sample rate
	ErrInvalidSampleRate = errors.New("aiff sample rate must be positive")
	// ErrInvalidChannels indicates a non-positive channel count
	ErrInvalidChannels = errors.New("aiff channel count must be positive")
)
