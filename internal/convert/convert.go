// Package convert holds the byte-range primitives under the chain:
// numeric and boolean parsing over raw bytes, UTF-8 code point
// encode/decode, and hex formatting. Parsers never allocate and
// never throw; they report failure through their second result so
// the chain can fall back to a caller default.
package convert

import (
	"math"
	"strconv"
)

// Hex digit tables.
var (
	UpperHex = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}
	LowerHex = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
)

// AppendHex appends the two-digit hex form of v.
func AppendHex(dst []byte, v byte, upper bool) []byte {
	t := &LowerHex
	if upper {
		t = &UpperHex
	}
	return append(dst, t[v>>4], t[v&0x0F])
}

// IsDigit checks a decimal digit byte.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsSpace checks the whitespace code points 9..13 and 28..32.
func IsSpace(b byte) bool {
	return b >= 9 && b <= 13 || b >= 28 && b <= 32
}

// Digit returns the value of b as a digit in the given radix, or -1.
// Digits are '0'..'9', then 'a'..'z' or 'A'..'Z' above ten.
func Digit(b byte, radix int) int {
	var d int
	switch {
	case b >= '0' && b <= '9':
		d = int(b - '0')
	case b >= 'a' && b <= 'z':
		d = int(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		d = int(b-'A') + 10
	default:
		return -1
	}
	if d >= radix {
		return -1
	}
	return d
}

// ParseInt64 parses b as a signed integer in the given radix.
// Accumulation runs in negative space so the minimum value needs no
// special case.
func ParseInt64(b []byte, radix int) (int64, bool) {
	if radix < 2 || radix > 36 || len(b) == 0 {
		return 0, false
	}
	i := 0
	negative := false
	switch b[0] {
	case '-':
		negative = true
		i = 1
	case '+':
		i = 1
	}
	if i == len(b) {
		return 0, false
	}
	limit := int64(math.MinInt64)
	if !negative {
		limit = -math.MaxInt64
	}
	multmin := limit / int64(radix)
	var result int64
	for ; i < len(b); i++ {
		d := Digit(b[i], radix)
		if d < 0 || result < multmin {
			return 0, false
		}
		result *= int64(radix)
		if result < limit+int64(d) {
			return 0, false
		}
		result -= int64(d)
	}
	if negative {
		return result, true
	}
	return -result, true
}

// ParseInt32 parses b as a signed 32-bit integer in the given radix.
func ParseInt32(b []byte, radix int) (int32, bool) {
	v, ok := ParseInt64(b, radix)
	if !ok || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// ParseBool accepts true/false in any case and the single digits
// '0' and '1'.
func ParseBool(b []byte) (bool, bool) {
	switch len(b) {
	case 1:
		switch b[0] {
		case '1':
			return true, true
		case '0':
			return false, true
		}
	case 4:
		if b[0]|0x20 == 't' && b[1]|0x20 == 'r' && b[2]|0x20 == 'u' && b[3]|0x20 == 'e' {
			return true, true
		}
	case 5:
		if b[0]|0x20 == 'f' && b[1]|0x20 == 'a' && b[2]|0x20 == 'l' && b[3]|0x20 == 's' && b[4]|0x20 == 'e' {
			return false, true
		}
	}
	return false, false
}

// Number parses b as the narrowest of int32, int64 and float64: an
// integer that fits 32 bits stays an int32, a wider one becomes an
// int64, and a decimal point or exponent forces a float64.
func Number(b []byte) (interface{}, bool) {
	if len(b) == 0 {
		return nil, false
	}
	real := false
	for _, x := range b {
		if x == '.' || x == 'e' || x == 'E' {
			real = true
			break
		}
	}
	if !real {
		v, ok := ParseInt64(b, 10)
		if !ok {
			return nil, false
		}
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return int32(v), true
		}
		return v, true
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

// Latin1 expands each byte into the code point of the same value.
// Pure ASCII input converts without rewriting.
func Latin1(b []byte) string {
	n := len(b)
	for _, x := range b {
		if x >= 0x80 {
			n++
		}
	}
	if n == len(b) {
		return string(b)
	}
	out := make([]byte, 0, n)
	for _, x := range b {
		if x < 0x80 {
			out = append(out, x)
		} else {
			out = append(out, 0xC0|x>>6, 0x80|x&0x3F)
		}
	}
	return string(out)
}
