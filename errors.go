package kat

import (
	"errors"
	"fmt"
)

// Sentinel errors for the chain and its reader.
var (
	// ErrFixed is the panic value raised when a mutator runs on a fixed chain.
	ErrFixed = errors.New("kat: chain is fixed")
	// ErrBounds is the panic value raised when an exported helper is given an
	// offset or length outside the live byte region.
	ErrBounds = errors.New("kat: index out of range")
	// ErrEndOfStream is returned by Reader.Next past the end of the slice.
	ErrEndOfStream = errors.New("kat: end of stream")
	// ErrReaderClosed is returned when a closed reader is read again.
	ErrReaderClosed = errors.New("kat: reader is closed")
)

// rangeCheck panics unless [off, off+length) lies inside [0, limit).
func rangeCheck(off, length, limit int) {
	if off < 0 || length < 0 || off+length > limit {
		panic(fmt.Errorf("%w: offset %d, length %d, count %d", ErrBounds, off, length, limit))
	}
}
