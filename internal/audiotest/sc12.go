// SPDX-License-Identifier: EPL-2.0

package audiotest

import "io"

// PackGroup packs two 12-bit words into the 3-byte SC12 layout, first word
// in the low bits.
func PackGroup(s0, s1 uint16) [3]byte {
	packed := uint32(s0&0xfff) | uint32(s1&0xfff)<<12
	return [3]byte{byte(packed), byte(packed >> 8), byte(packed >> 16)}
}

// PackSC12 packs words pairwise into SC12 bytes. An odd trailing word is
// paired with zero.
func PackSC12(words ...uint16) []byte {
	out := make([]byte, 0, (len(words)+1)/2*3)
	for i := 0; i < len(words); i += 2 {
		var s1 uint16
		if i+1 < len(words) {
			s1 = words[i+1]
		}
		g := PackGroup(words[i], s1)
		out = append(out, g[:]...)
	}

	return out
}

// Ramp returns n bytes of a repeating 0..250 pattern, handy for building
// inputs whose length is not a multiple of 3.
func Ramp(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 251)
	}

	return out
}

// FailingWriter accepts Limit bytes and then fails every write.
type FailingWriter struct {
	Limit   int
	Written int
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	room := max(w.Limit-w.Written, 0)
	if len(p) <= room {
		w.Written += len(p)
		return len(p), nil
	}

	w.Written += room
	return room, ErrInjected
}

// ErrReader returns data and then a non-EOF error instead of io.EOF.
type ErrReader struct {
	Data []byte
	Err  error
	off  int
}

func (r *ErrReader) Read(p []byte) (int, error) {
	if r.off >= len(r.Data) {
		if r.Err == nil {
			return 0, io.EOF
		}
		return 0, r.Err
	}
	n := copy(p, r.Data[r.off:])
	r.off += n

	return n, nil
}

// OneByteReader serves its data a single byte per Read call.
type OneByteReader struct {
	Data []byte
	off  int
}

func (r *OneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.off >= len(r.Data) {
		return 0, io.EOF
	}
	p[0] = r.Data[r.off]
	r.off++

	return 1, nil
}
