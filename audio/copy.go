// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Copy pumps src into dst until src is exhausted and returns the number of
// float32 values written to dst.
//
// The read buffer is allocated once, sized by src.BufSize(). Every chunk is
// handed to dst before the read error is inspected, so a final short chunk
// returned together with io.EOF is not lost.
//
// Errors from src are wrapped with ErrRead and errors from dst with ErrWrite,
// so callers can tell which side failed with errors.Is. Copy stops at the
// first error; whatever dst already accepted stays written.
func Copy(dst Sink, src Source) (int64, error) {
	size := src.BufSize()
	if ch := src.Channels(); ch > 0 && size%ch != 0 {
		size -= size % ch
	}
	if size <= 0 {
		return 0, ErrInvalidDstSize
	}

	buf := make([]float32, size)
	var written int64

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			m, werr := dst.WriteSamples(buf[:n])
			written += int64(m)
			if werr == nil && m < n {
				werr = io.ErrShortWrite
			}
			if werr != nil {
				return written, fmt.Errorf("%w: %w", ErrWrite, werr)
			}
		}

		if err == io.EOF {
			return written, nil
		}

		if err != nil {
			return written, fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
}
