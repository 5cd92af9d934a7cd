package kat

import (
	"io"
	"math/big"
	"strconv"

	"github.com/katplus/kat/internal/convert"
)

// Int32 parses the bytes as a signed base-10 integer, falling back
// to def when the content is not a well-formed int32.
func (c *Chain) Int32(def int32) int32 {
	return c.Int32Radix(def, 10)
}

// Int32Radix parses in any radix from 2 to 36. An invalid radix,
// like any other parse failure, yields def.
func (c *Chain) Int32Radix(def int32, radix int) int32 {
	if v, ok := convert.ParseInt32(c.value[:c.count], radix); ok {
		return v
	}
	return def
}

// Int64 parses the bytes as a signed base-10 integer.
func (c *Chain) Int64(def int64) int64 {
	return c.Int64Radix(def, 10)
}

// Int64Radix parses in any radix from 2 to 36.
func (c *Chain) Int64Radix(def int64, radix int) int64 {
	if v, ok := convert.ParseInt64(c.value[:c.count], radix); ok {
		return v
	}
	return def
}

// Float32 parses the bytes as a decimal real number.
func (c *Chain) Float32(def float32) float32 {
	v, err := strconv.ParseFloat(string(c.value[:c.count]), 32)
	if err != nil {
		return def
	}
	return float32(v)
}

// Float64 parses the bytes as a decimal real number, exponents
// included.
func (c *Chain) Float64(def float64) float64 {
	v, err := strconv.ParseFloat(string(c.value[:c.count]), 64)
	if err != nil {
		return def
	}
	return v
}

// Bool accepts true/false in any case and the digits '0'/'1'.
func (c *Chain) Bool(def bool) bool {
	if v, ok := convert.ParseBool(c.value[:c.count]); ok {
		return v
	}
	return def
}

// Rune decodes the whole buffer as a single UTF-8 code point. An
// empty, malformed, or multi-point buffer yields def.
func (c *Chain) Rune(def rune) rune {
	r, w := convert.DecodeRune(c.value[:c.count])
	if w == 0 || w != c.count {
		return def
	}
	return r
}

// Number parses the bytes as the narrowest fitting numeric type: an
// int32 when the value fits 32 bits and carries no decimal point or
// exponent, an int64 when it only fits 64, and a float64 when it
// carries a decimal point or exponent. An integer beyond the int64
// range yields def.
func (c *Chain) Number(def interface{}) interface{} {
	if v, ok := convert.Number(c.value[:c.count]); ok {
		return v
	}
	return def
}

// BigInt parses the bytes as an arbitrary-precision integer. Values
// that fit take the int64 fast path.
func (c *Chain) BigInt(def *big.Int) *big.Int {
	if v, ok := convert.ParseInt64(c.value[:c.count], 10); ok {
		return big.NewInt(v)
	}
	if v, ok := new(big.Int).SetString(convert.Latin1(c.value[:c.count]), 10); ok {
		return v
	}
	return def
}

// BigFloat parses the bytes as an arbitrary-precision real. Integral
// values that fit take the int64 fast path.
func (c *Chain) BigFloat(def *big.Float) *big.Float {
	if v, ok := convert.ParseInt64(c.value[:c.count], 10); ok {
		return new(big.Float).SetInt64(v)
	}
	if v, ok := new(big.Float).SetString(convert.Latin1(c.value[:c.count])); ok {
		return v
	}
	return def
}

// Bytes returns a defensive copy of the live bytes.
func (c *Chain) Bytes() []byte {
	return c.BytesRange(0, c.count)
}

// BytesRange returns a defensive copy of [start, end).
func (c *Chain) BytesRange(start, end int) []byte {
	c.checkRange(start, end-start)
	out := make([]byte, end-start)
	copy(out, c.value[start:end])
	return out
}

// Chars expands the UTF-8 bytes into UTF-16 code units, astral code
// points as surrogate pairs. A malformed byte expands to '?'.
func (c *Chain) Chars() []uint16 {
	return c.CharsRange(0, c.count)
}

// CharsRange expands [start, end).
func (c *Chain) CharsRange(start, end int) []uint16 {
	c.checkRange(start, end-start)
	out := make([]uint16, 0, end-start)
	for k := start; k < end; {
		r, w := convert.DecodeRune(c.value[k:end])
		if w == 0 {
			out = append(out, '?')
			k++
			continue
		}
		if r > 0xFFFF {
			out = append(out, uint16(0xD7C0+(r>>10)), uint16(0xDC00+r&0x3FF))
		} else {
			out = append(out, uint16(r))
		}
		k += w
	}
	return out
}

// String returns the bytes decoded as UTF-8, caching the result
// until the next mutation.
func (c *Chain) String() string {
	if c.asset&assetString == 0 {
		c.backup = string(c.value[:c.count])
		c.asset |= assetString
	}
	return c.backup
}

// StringRange returns [start, end) decoded as UTF-8, uncached.
func (c *Chain) StringRange(start, end int) string {
	c.checkRange(start, end-start)
	return string(c.value[start:end])
}

// WriteTo forwards the live bytes to a sink: a message digest, a
// MAC, a cipher, a base64 encoder, or a plain output stream. It
// implements io.WriterTo; the sink must not retain the buffer past
// the call.
func (c *Chain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.value[:c.count])
	return int64(n), err
}

// WriteRangeTo forwards [off, off+length) to a sink.
func (c *Chain) WriteRangeTo(w io.Writer, off, length int) (int, error) {
	c.checkRange(off, length)
	return w.Write(c.value[off : off+length])
}

// Reader returns a one-shot cursor over the live bytes.
func (c *Chain) Reader() *Reader {
	return &Reader{value: c.value, end: c.count}
}

// ReaderRange returns a one-shot cursor over [start, end).
func (c *Chain) ReaderRange(start, end int) *Reader {
	c.checkRange(start, end-start)
	return &Reader{value: c.value, start: start, cursor: start, end: end}
}
