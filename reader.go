package kat

import (
	"fmt"
	"io"
)

// Reader is a one-shot forward cursor over a slice of a chain's
// bytes. It borrows the chain's buffer: closing the reader drops the
// reference without touching the chain, and a reader must not be
// used after its chain is reset or re-pooled.
type Reader struct {
	value  []byte
	start  int
	cursor int
	end    int
}

// Also reports whether another byte is available.
func (r *Reader) Also() bool {
	return r.cursor < r.end
}

// Read returns the next byte and advances. The result is undefined
// once the reader is exhausted or closed.
func (r *Reader) Read() byte {
	b := r.value[r.cursor]
	r.cursor++
	return b
}

// Next returns the next byte, or ErrEndOfStream when none remain.
// A closed reader reports ErrReaderClosed.
func (r *Reader) Next() (byte, error) {
	if r.cursor >= r.end {
		if r.value == nil {
			return 0, ErrReaderClosed
		}
		return 0, fmt.Errorf("%w: cursor %d, end %d", ErrEndOfStream, r.cursor, r.end)
	}
	b := r.value[r.cursor]
	r.cursor++
	return b, nil
}

// Slip repositions the cursor i bytes past the start of the slice.
// The index must be non-negative; moving past the end simply leaves
// the reader exhausted.
func (r *Reader) Slip(i int) {
	if i < 0 {
		panic(fmt.Errorf("%w: offset %d, length 0, count %d", ErrBounds, i, r.end-r.start))
	}
	r.cursor = r.start + i
}

// Close drops the buffer reference. Further reads fail.
func (r *Reader) Close() error {
	r.value = nil
	r.cursor = 0
	r.start = 0
	r.end = 0
	return nil
}

// Stream adapts the remaining bytes as an io.Reader for the caller's
// IO layer.
func (r *Reader) Stream() io.Reader {
	return stream{r}
}

type stream struct {
	r *Reader
}

func (s stream) Read(p []byte) (int, error) {
	if s.r.value == nil {
		return 0, ErrReaderClosed
	}
	if s.r.cursor >= s.r.end {
		return 0, io.EOF
	}
	n := copy(p, s.r.value[s.r.cursor:s.r.end])
	s.r.cursor += n
	return n, nil
}
