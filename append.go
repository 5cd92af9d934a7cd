package kat

import (
	"io"
	"strconv"

	"github.com/katplus/kat/internal/convert"
)

var (
	literalTrue  = []byte("true")
	literalFalse = []byte("false")
)

// AppendByte appends a single raw byte.
func (c *Chain) AppendByte(b byte) {
	c.mustOpen()
	c.grow(c.count + 1)
	c.value[c.count] = b
	c.count++
	c.touch()
}

// Append appends a run of raw bytes.
func (c *Chain) Append(p []byte) {
	c.mustOpen()
	if len(p) == 0 {
		return
	}
	c.grow(c.count + len(p))
	copy(c.value[c.count:], p)
	c.count += len(p)
	c.touch()
}

// AppendRange appends p[i : i+l].
func (c *Chain) AppendRange(p []byte, i, l int) {
	rangeCheck(i, l, len(p))
	c.Append(p[i : i+l])
}

// AppendChain appends the live bytes of another chain. Appending a
// chain to itself is allowed.
func (c *Chain) AppendChain(o *Chain) {
	p := o.value[:o.count]
	if o == c {
		// grow may hand the current buffer to the bucket, so a
		// self-append copies its source first.
		p = append([]byte(nil), p...)
	}
	c.Append(p)
}

// AppendString re-encodes s as UTF-8 and appends it. Valid input
// copies byte for byte; a malformed sequence appends '?' per bad
// byte.
func (c *Chain) AppendString(s string) {
	c.mustOpen()
	for i := 0; i < len(s); {
		b := s[i]
		if b < 0x80 {
			c.grow(c.count + 1)
			c.value[c.count] = b
			c.count++
			i++
			continue
		}
		r, w := convert.DecodeString(s[i:])
		if w == 0 {
			c.grow(c.count + 1)
			c.value[c.count] = '?'
			c.count++
			i++
			continue
		}
		c.grow(c.count + w)
		c.count += convert.EncodeRune(c.value[c.count:], r)
		i += w
	}
	c.touch()
}

// AppendStringRange appends s[i : i+l] under the AppendString policy.
func (c *Chain) AppendStringRange(s string, i, l int) {
	rangeCheck(i, l, len(s))
	c.AppendString(s[i : i+l])
}

// AppendRune appends the UTF-8 encoding of r. A surrogate half or an
// out-of-range value appends '?' instead.
func (c *Chain) AppendRune(r rune) {
	c.mustOpen()
	if r < 0 || r > 0x10FFFF || r >= 0xD800 && r <= 0xDFFF {
		r = '?'
	}
	c.grow(c.count + 4)
	c.count += convert.EncodeRune(c.value[c.count:], r)
	c.touch()
}

// AppendChar appends one UTF-16 code unit. A lone surrogate half
// appends '?'.
func (c *Chain) AppendChar(u uint16) {
	if u >= 0xD800 && u <= 0xDFFF {
		c.AppendByte('?')
		return
	}
	c.AppendRune(rune(u))
}

// AppendChars appends a UTF-16 code unit sequence. A high surrogate
// followed by a low surrogate combines into one astral code point
// and emits four bytes; an unpaired half emits '?'.
func (c *Chain) AppendChars(units []uint16) {
	c.mustOpen()
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u < 0xD800 || u > 0xDFFF {
			c.AppendRune(rune(u))
			continue
		}
		if u <= 0xDBFF && i+1 < len(units) {
			lo := units[i+1]
			if lo >= 0xDC00 && lo <= 0xDFFF {
				c.AppendRune(rune(u)<<10 + rune(lo) - 0x35FDC00)
				i++
				continue
			}
		}
		c.AppendByte('?')
	}
}

// AppendInt appends v as decimal ASCII digits.
func (c *Chain) AppendInt(v int32) {
	c.AppendInt64(int64(v))
}

// AppendInt64 appends v as decimal ASCII digits. The digits are
// produced in negative space, least significant first, then the new
// range is reversed in place; the minimum value needs no special
// case.
func (c *Chain) AppendInt64(v int64) {
	c.mustOpen()
	if v < 0 {
		c.grow(c.count + 1)
		c.value[c.count] = '-'
		c.count++
	} else {
		v = -v
	}
	start := c.count
	for {
		c.grow(c.count + 1)
		c.value[c.count] = byte('0' - v%10)
		c.count++
		v /= 10
		if v == 0 {
			break
		}
	}
	c.reverse(start, c.count)
	c.touch()
}

// AppendUint64 appends v as decimal ASCII digits.
func (c *Chain) AppendUint64(v uint64) {
	c.mustOpen()
	start := c.count
	for {
		c.grow(c.count + 1)
		c.value[c.count] = byte('0' + v%10)
		c.count++
		v /= 10
		if v == 0 {
			break
		}
	}
	c.reverse(start, c.count)
	c.touch()
}

// AppendBool appends the literal true or false.
func (c *Chain) AppendBool(v bool) {
	if v {
		c.Append(literalTrue)
	} else {
		c.Append(literalFalse)
	}
}

// AppendFloat32 appends the canonical shortest form of v.
func (c *Chain) AppendFloat32(v float32) {
	var buf [24]byte
	c.Append(strconv.AppendFloat(buf[:0], float64(v), 'g', -1, 32))
}

// AppendFloat64 appends the canonical shortest form of v.
func (c *Chain) AppendFloat64(v float64) {
	var buf [24]byte
	c.Append(strconv.AppendFloat(buf[:0], v, 'g', -1, 64))
}

// Insert shifts the tail right and writes p at byte index i.
func (c *Chain) Insert(i int, p []byte) {
	c.mustOpen()
	c.checkRange(i, 0)
	if len(p) == 0 {
		return
	}
	c.grow(c.count + len(p))
	copy(c.value[i+len(p):c.count+len(p)], c.value[i:c.count])
	copy(c.value[i:], p)
	c.count += len(p)
	c.touch()
}

// ReadFrom appends bytes from r until EOF. It implements
// io.ReaderFrom; the io error, if any, is returned unchanged.
func (c *Chain) ReadFrom(r io.Reader) (int64, error) {
	c.mustOpen()
	var total int64
	for {
		if c.count == len(c.value) {
			c.grow(c.count + 512)
		}
		n, err := r.Read(c.value[c.count:])
		if n > 0 {
			c.count += n
			total += int64(n)
			c.touch()
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ReadFromN appends at most max bytes from r, stopping early at EOF.
func (c *Chain) ReadFromN(r io.Reader, max int) (int, error) {
	c.mustOpen()
	if max < 0 {
		rangeCheck(0, max, c.count)
	}
	total := 0
	for total < max {
		space := max - total
		if space > 512 {
			space = 512
		}
		c.grow(c.count + space)
		n, err := r.Read(c.value[c.count : c.count+space])
		if n > 0 {
			c.count += n
			total += n
			c.touch()
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// reverse swaps the bytes of [lo, hi) in place.
func (c *Chain) reverse(lo, hi int) {
	for hi--; lo < hi; lo, hi = lo+1, hi-1 {
		c.value[lo], c.value[hi] = c.value[hi], c.value[lo]
	}
}
