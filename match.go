package kat

import (
	"bytes"

	"github.com/katplus/kat/internal/convert"
)

// CharAt returns byte i as an unsigned 16-bit code unit. This is the
// Latin-1 fast path used for protocol tokens.
func (c *Chain) CharAt(i int) uint16 {
	c.checkRange(i, 1)
	return uint16(c.value[i])
}

// IsEmpty reports a zero-length chain.
func (c *Chain) IsEmpty() bool {
	return c.count == 0
}

// IsBlank reports whether every byte is whitespace. An empty chain
// is blank.
func (c *Chain) IsBlank() bool {
	for _, b := range c.value[:c.count] {
		if !convert.IsSpace(b) {
			return false
		}
	}
	return true
}

// IsDigit reports a non-empty chain of decimal digits only.
func (c *Chain) IsDigit() bool {
	if c.count == 0 {
		return false
	}
	for _, b := range c.value[:c.count] {
		if !convert.IsDigit(b) {
			return false
		}
	}
	return true
}

// Hash returns the polynomial hash 31*h + b over the live bytes,
// caching the result until the next mutation.
func (c *Chain) Hash() uint32 {
	if c.asset&assetHash == 0 {
		var h uint32
		for _, b := range c.value[:c.count] {
			h = 31*h + uint32(b)
		}
		c.hash = h
		c.asset |= assetHash
	}
	return c.hash
}

// Equal reports byte equality with another chain.
func (c *Chain) Equal(o *Chain) bool {
	if o == nil {
		return false
	}
	return bytes.Equal(c.value[:c.count], o.value[:o.count])
}

// Compare orders two chains bytewise.
func (c *Chain) Compare(o *Chain) int {
	return bytes.Compare(c.value[:c.count], o.value[:o.count])
}

// EqualString compares the bytes against the UTF-16 code units of s,
// each byte unsigned against one unit. These are the Latin-1
// semantics; an astral character can never match.
func (c *Chain) EqualString(s string) bool {
	i := 0
	for _, r := range s {
		if r > 0xFFFF {
			return false
		}
		if i >= c.count || uint16(c.value[i]) != uint16(r) {
			return false
		}
		i++
	}
	return i == c.count
}

// CompareString orders the bytes against the UTF-16 code units of s,
// unsigned byte against unit, length as the final tiebreak.
func (c *Chain) CompareString(s string) int {
	i := 0
	for _, r := range s {
		var u [2]uint16
		n := 1
		if r > 0xFFFF {
			u[0] = uint16(0xD7C0 + (r >> 10))
			u[1] = uint16(0xDC00 + r&0x3FF)
			n = 2
		} else {
			u[0] = uint16(r)
		}
		for k := 0; k < n; k++ {
			if i >= c.count {
				return -1
			}
			if b := uint16(c.value[i]); b != u[k] {
				if b < u[k] {
					return -1
				}
				return 1
			}
			i++
		}
	}
	if i < c.count {
		return 1
	}
	return 0
}

// IsRune reports whether the chain, decoded as UTF-8, is exactly the
// single code point r. Malformed bytes never match.
func (c *Chain) IsRune(r rune) bool {
	v, w := convert.DecodeRune(c.value[:c.count])
	return w > 0 && w == c.count && v == r
}

// IsChar reports whether code unit index i of the chain's UTF-16
// projection holds u. The scan walks the bytes directly, one code
// point at a time; an astral code point occupies two unit indices,
// high half first. A surrogate half at the wrong position never
// matches.
func (c *Chain) IsChar(i int, u uint16) bool {
	if i < 0 {
		return false
	}
	k := 0
	for k < c.count {
		r, w := convert.DecodeRune(c.value[k:c.count])
		if w == 0 {
			return false
		}
		if r > 0xFFFF {
			if i == 0 {
				return u == uint16(0xD7C0+(r>>10))
			}
			if i == 1 {
				return u == uint16(0xDC00+r&0x3FF)
			}
			i -= 2
		} else {
			if i == 0 {
				return u == uint16(r)
			}
			i--
		}
		k += w
	}
	return false
}

// Is reports whether the chain, decoded as UTF-8, spells exactly s.
// The size relation r <= l <= 3r between code units and bytes (an
// astral pair is two units in four bytes) rejects most mismatches
// before any decoding.
func (c *Chain) Is(s string) bool {
	r := utf16Count(s)
	if c.count < r || c.count > 3*r {
		return false
	}
	k := 0
	for i := 0; i < len(s); {
		sr, sw := convert.DecodeString(s[i:])
		if sw == 0 {
			return false
		}
		cr, cw := convert.DecodeRune(c.value[k:c.count])
		if cw == 0 || cr != sr {
			return false
		}
		k += cw
		i += sw
	}
	return k == c.count
}

// IndexOfByte returns the first index of b at or after from, or -1.
func (c *Chain) IndexOfByte(b byte, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < c.count; i++ {
		if c.value[i] == b {
			return i
		}
	}
	return -1
}

// LastIndexOfByte returns the last index of b at or before from, or -1.
func (c *Chain) LastIndexOfByte(b byte, from int) int {
	if from >= c.count {
		from = c.count - 1
	}
	for i := from; i >= 0; i-- {
		if c.value[i] == b {
			return i
		}
	}
	return -1
}

// IndexOf returns the first byte index at or after from where the
// code units of s begin, compared Latin-1 style. A needle whose
// first unit does not fit in a byte cannot occur and returns -1
// immediately; an empty needle returns the clamped from.
func (c *Chain) IndexOf(s string, from int) int {
	if from < 0 {
		from = 0
	}
	units := utf16Units(s)
	if len(units) == 0 {
		if from > c.count {
			return -1
		}
		return from
	}
	if units[0] > 0xFF {
		return -1
	}
	b0 := byte(units[0])
	for i := from; i+len(units) <= c.count; i++ {
		if c.value[i] != b0 {
			continue
		}
		k := 1
		for ; k < len(units); k++ {
			if uint16(c.value[i+k]) != units[k] {
				break
			}
		}
		if k == len(units) {
			return i
		}
	}
	return -1
}

// LastIndexOf is the backward twin of IndexOf.
func (c *Chain) LastIndexOf(s string, from int) int {
	units := utf16Units(s)
	if len(units) == 0 {
		if from > c.count {
			return c.count
		}
		if from < 0 {
			return -1
		}
		return from
	}
	if units[0] > 0xFF {
		return -1
	}
	if from > c.count-len(units) {
		from = c.count - len(units)
	}
	b0 := byte(units[0])
	for i := from; i >= 0; i-- {
		if c.value[i] != b0 {
			continue
		}
		k := 1
		for ; k < len(units); k++ {
			if uint16(c.value[i+k]) != units[k] {
				break
			}
		}
		if k == len(units) {
			return i
		}
	}
	return -1
}

// StartsWith reports whether the chain begins with the code units of
// s, compared Latin-1 style.
func (c *Chain) StartsWith(s string) bool {
	units := utf16Units(s)
	if len(units) > c.count {
		return false
	}
	for k, u := range units {
		if uint16(c.value[k]) != u {
			return false
		}
	}
	return true
}

// EndsWith reports whether the chain ends with the code units of s,
// compared Latin-1 style.
func (c *Chain) EndsWith(s string) bool {
	units := utf16Units(s)
	off := c.count - len(units)
	if off < 0 {
		return false
	}
	for k, u := range units {
		if uint16(c.value[off+k]) != u {
			return false
		}
	}
	return true
}

// Contains reports whether s occurs anywhere, compared Latin-1 style.
func (c *Chain) Contains(s string) bool {
	return c.IndexOf(s, 0) >= 0
}

// ContainsByte reports whether b occurs anywhere.
func (c *Chain) ContainsByte(b byte) bool {
	return c.IndexOfByte(b, 0) >= 0
}

// utf16Units expands s into UTF-16 code units, astral code points as
// surrogate pairs.
func utf16Units(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			out = append(out, uint16(0xD7C0+(r>>10)), uint16(0xDC00+r&0x3FF))
			continue
		}
		out = append(out, uint16(r))
	}
	return out
}

// utf16Count counts the UTF-16 code units of s.
func utf16Count(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}
