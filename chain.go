package kat

import "fmt"

// Asset flags. They are cleared or checked together, never exposed.
const (
	assetHash   uint8 = 1 << iota // the cached hash is valid
	assetString                   // the cached string is valid
	assetFixed                    // the chain refuses mutation
)

// Chain is a growable byte container. The live region is
// value[0:count]; everything past count is spare capacity. The hash
// and string projections are cached lazily and dropped by every
// mutator.
type Chain struct {
	value  []byte
	count  int
	hash   uint32
	asset  uint8
	backup string
	bucket Bucket
	role   Role
}

// New returns an empty chain with no preallocated buffer.
func New() *Chain {
	return &Chain{}
}

// Make returns an empty chain with capacity bytes preallocated.
func Make(capacity int) *Chain {
	return &Chain{value: make([]byte, capacity)}
}

// Wrap adopts p as the chain's buffer without copying. The caller
// must not touch p afterwards.
func Wrap(p []byte) *Chain {
	return &Chain{value: p, count: len(p)}
}

// From copies p into a fresh chain.
func From(p []byte) *Chain {
	c := &Chain{value: make([]byte, len(p)), count: len(p)}
	copy(c.value, p)
	return c
}

// FromString copies the UTF-8 bytes of s into a fresh chain.
func FromString(s string) *Chain {
	c := &Chain{value: make([]byte, len(s)), count: len(s)}
	copy(c.value, s)
	return c
}

// Fixed adopts p as a permanently immutable chain. Every mutator
// panics with ErrFixed.
func Fixed(p []byte) *Chain {
	return &Chain{value: p, count: len(p), asset: assetFixed}
}

// FixedString returns a permanently immutable chain holding the
// UTF-8 bytes of s. The string projection is prefilled.
func FixedString(s string) *Chain {
	c := &Chain{value: []byte(s), count: len(s), backup: s}
	c.asset = assetFixed | assetString
	return c
}

// Pooled returns an empty chain drawing its buffers from b. The
// first buffer is acquired immediately when capacity is positive.
func Pooled(b Bucket, capacity int) *Chain {
	c := &Chain{bucket: b}
	if capacity > 0 {
		c.value = b.Swap(nil, 0, capacity)
	}
	return c
}

// Len reports the logical length in bytes.
func (c *Chain) Len() int {
	return c.count
}

// Cap reports the capacity of the current buffer.
func (c *Chain) Cap() int {
	return len(c.value)
}

// Role reports the token kind this chain carries.
func (c *Chain) Role() Role {
	return c.role
}

// IsFixed reports whether the chain is permanently immutable.
func (c *Chain) IsFixed() bool {
	return c.asset&assetFixed != 0
}

// mustOpen panics unless the chain is still mutable.
func (c *Chain) mustOpen() {
	if c.asset&assetFixed != 0 {
		panic(fmt.Errorf("%w (count %d)", ErrFixed, c.count))
	}
}

// checkRange panics unless [off, off+length) lies inside the live
// region.
func (c *Chain) checkRange(off, length int) {
	rangeCheck(off, length, c.count)
}

// touch drops the cached projections. Every mutator funnels through
// it, so the caches can never survive a change to value[0:count].
func (c *Chain) touch() {
	c.asset &^= assetHash | assetString
	c.backup = ""
}

// grow makes room for at least min bytes. This is the single growth
// point: with a bucket attached the replacement buffer comes from it
// and the old one is handed back; otherwise the buffer expands
// geometrically, clamped up to min.
func (c *Chain) grow(min int) {
	if min <= len(c.value) {
		return
	}
	if c.bucket != nil {
		c.value = c.bucket.Swap(c.value, c.count, min)
		return
	}
	size := len(c.value) + len(c.value)/2
	if size < min {
		size = min
	}
	next := make([]byte, size)
	copy(next, c.value[:c.count])
	c.value = next
}

// Grow reserves room for n more bytes ahead of a burst of appends.
func (c *Chain) Grow(n int) {
	c.mustOpen()
	if n < 0 {
		rangeCheck(0, n, c.count)
	}
	c.grow(c.count + n)
}

// Reset empties the chain, keeping the buffer.
func (c *Chain) Reset() {
	c.mustOpen()
	c.count = 0
	c.touch()
}

// Release empties the chain and hands its buffer back to the bucket,
// if one is attached. The chain remains usable and will acquire a
// fresh buffer on the next append. Readers derived from the chain
// must not be used past this point.
func (c *Chain) Release() {
	c.mustOpen()
	c.count = 0
	c.touch()
	if c.bucket != nil && c.value != nil {
		c.bucket.Recycle(c.value)
	}
	c.value = nil
}
