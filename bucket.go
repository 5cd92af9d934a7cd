package kat

import "sync"

// Bucket supplies replacement byte buffers so chains can recycle
// allocations. Swap returns a buffer of at least min bytes whose
// first used bytes equal old's; the old buffer belongs to the bucket
// afterwards and must not be touched by the caller. A Bucket may be
// shared across goroutines even though the chains drawing from it
// must not be.
type Bucket interface {
	Swap(old []byte, used, min int) []byte
	Recycle(p []byte)
}

const (
	bucketMinShift = 5 // smallest class, 32 bytes
	bucketClasses  = 16
)

// PoolBucket is a size-addressed Bucket over per-class sync.Pools.
// Buffers larger than the top class are plainly allocated and never
// retained.
type PoolBucket struct {
	pools [bucketClasses]sync.Pool
}

// NewPoolBucket returns an empty pool.
func NewPoolBucket() *PoolBucket {
	return &PoolBucket{}
}

// class returns the pool index able to hold n bytes, or -1 when n is
// beyond the largest class.
func class(n int) int {
	for i := 0; i < bucketClasses; i++ {
		if n <= 1<<(bucketMinShift+i) {
			return i
		}
	}
	return -1
}

// Swap implements Bucket.
func (p *PoolBucket) Swap(old []byte, used, min int) []byte {
	next := p.acquire(min)
	copy(next, old[:used])
	if old != nil {
		p.Recycle(old)
	}
	return next
}

func (p *PoolBucket) acquire(n int) []byte {
	i := class(n)
	if i < 0 {
		return make([]byte, n)
	}
	if v := p.pools[i].Get(); v != nil {
		return v.([]byte)
	}
	return make([]byte, 1<<(bucketMinShift+i))
}

// Recycle returns a buffer to its size class. Buffers that fit no
// class exactly are dropped.
func (p *PoolBucket) Recycle(b []byte) {
	if b == nil {
		return
	}
	i := class(len(b))
	if i >= 0 && len(b) == 1<<(bucketMinShift+i) {
		p.pools[i].Put(b)
	}
}
