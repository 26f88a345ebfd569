// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotSeekable       = errors.New("wav output must be seekable")
	ErrInvalidSampleRate = errors.New("wav sample rate must be positive")
	ErrInvalidChannels   = errors.New("wav channel count must be positive")
)
