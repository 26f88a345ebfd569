// SPDX-License-Identifier: EPL-2.0

package fc32

import "errors"

var (
	// ErrNilWriter indicates Encode was called without an output stream
	ErrNilWriter = errors.New("fc32: nil writer")
)
