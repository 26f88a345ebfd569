// SPDX-License-Identifier: EPL-2.0

package sc12conv

import (
	"errors"
	"fmt"
)

var (
	// ErrEnumerate wraps failures listing the input directory. It is the
	// only error that aborts a whole run.
	ErrEnumerate = errors.New("cannot list directory")
	// ErrUnsupportedFormat indicates no decoder or encoder is registered for an extension.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Op names the step of a file conversion that failed.
type Op string

const (
	OpOpenInput  Op = "open input"
	OpOpenOutput Op = "open output"
	OpRead       Op = "read"
	OpWrite      Op = "write"
)

// message is the status line prefix reported for a failed step.
func (o Op) message() string {
	switch o {
	case OpOpenInput:
		return "Failed to open input file"
	case OpOpenOutput:
		return "Failed to open output file"
	case OpRead:
		return "Read failed for file"
	case OpWrite:
		return "Write failed for file"
	default:
		return "Conversion failed for file"
	}
}

// FileError reports a failed conversion of a single file. It never aborts
// the conversion of other files.
type FileError struct {
	Op   Op
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
