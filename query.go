package kat

import "github.com/katplus/kat/internal/convert"

// unreserved marks the bytes that pass the form encoding unescaped:
// RFC 3986 unreserved letters and digits plus '.', '_', '-' and '*'.
var unreserved [256]bool

func init() {
	for b := 'A'; b <= 'Z'; b++ {
		unreserved[b] = true
	}
	for b := 'a'; b <= 'z'; b++ {
		unreserved[b] = true
	}
	for b := '0'; b <= '9'; b++ {
		unreserved[b] = true
	}
	unreserved['.'] = true
	unreserved['_'] = true
	unreserved['-'] = true
	unreserved['*'] = true
}

// Query is a chain that assembles a percent-encoded query string and
// remembers where the key/value region begins.
type Query struct {
	Chain

	// offset is the byte index one past the first '?', -1 before any
	// pair is appended, or 0 when the chain wrapped existing bytes
	// and the region is not located yet.
	offset int
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	q := &Query{offset: -1}
	q.role = RoleQuery
	return q
}

// QueryOf wraps an already rendered URL or query string. Pairs
// appended later extend whatever region the text carries.
func QueryOf(s string) *Query {
	q := &Query{offset: 0}
	q.role = RoleQuery
	q.value = []byte(s)
	q.count = len(s)
	return q
}

// Set begins a pair: the separator ('?' for the first pair, '&'
// afterwards), the percent-encoded key, and '='. It may be called
// repeatedly to begin further pairs.
func (q *Query) Set(key string) *Query {
	if q.offset == 0 {
		if i := q.IndexOfByte('?', 0); i >= 0 {
			q.offset = i + 1
		} else {
			q.offset = -1
		}
	}
	if q.offset > 0 {
		q.AppendByte('&')
	} else {
		q.AppendByte('?')
		q.offset = q.count
	}
	q.encode(key)
	q.AppendByte('=')
	return q
}

// Add percent-encodes a value into the current pair.
func (q *Query) Add(value string) *Query {
	q.encode(value)
	return q
}

// AddRange percent-encodes value[i : i+l].
func (q *Query) AddRange(value string, i, l int) *Query {
	rangeCheck(i, l, len(value))
	q.encode(value[i : i+l])
	return q
}

// AddByte routes one raw byte through the form encoding: unreserved
// bytes pass as-is, space becomes '+', everything else becomes %HH
// with uppercase hex.
func (q *Query) AddByte(b byte) *Query {
	switch {
	case unreserved[b]:
		q.AppendByte(b)
	case b == ' ':
		q.AppendByte('+')
	default:
		q.mustOpen()
		q.grow(q.count + 3)
		q.value[q.count] = '%'
		q.value[q.count+1] = convert.UpperHex[b>>4]
		q.value[q.count+2] = convert.UpperHex[b&0x0F]
		q.count += 3
		q.touch()
	}
	return q
}

// AddInt appends a number. Sign and digits are unreserved, so the
// digits land unescaped.
func (q *Query) AddInt(v int64) *Query {
	q.AppendInt64(v)
	return q
}

// AddBool appends the literal true or false.
func (q *Query) AddBool(v bool) *Query {
	q.AppendBool(v)
	return q
}

// encode re-encodes the text as UTF-8 and routes every byte through
// AddByte. Malformed input encodes as '?'.
func (q *Query) encode(s string) {
	q.mustOpen()
	var tmp [4]byte
	for i := 0; i < len(s); {
		if s[i] < 0x80 {
			q.AddByte(s[i])
			i++
			continue
		}
		r, w := convert.DecodeString(s[i:])
		if w == 0 {
			q.AddByte('?')
			i++
			continue
		}
		n := convert.EncodeRune(tmp[:], r)
		for k := 0; k < n; k++ {
			q.AddByte(tmp[k])
		}
		i += w
	}
}

// Map decodes the key/value region back into a mapping: '+' to
// space, %HH to one raw byte. Malformed escapes pass through
// untouched rather than failing.
func (q *Query) Map() map[string]string {
	start := q.offset
	if start <= 0 {
		start = 0
		if i := q.IndexOfByte('?', 0); i >= 0 {
			start = i + 1
		}
	}
	out := make(map[string]string)
	var piece []byte
	var key string
	haveKey := false
	emit := func() {
		if haveKey {
			out[key] = string(piece)
		} else if len(piece) > 0 {
			out[string(piece)] = ""
		}
		piece = piece[:0]
		haveKey = false
	}
	for i := start; i < q.count; i++ {
		switch b := q.value[i]; b {
		case '=':
			if haveKey {
				piece = append(piece, b)
				continue
			}
			key = string(piece)
			piece = piece[:0]
			haveKey = true
		case '&':
			emit()
		case '+':
			piece = append(piece, ' ')
		case '%':
			if i+2 < q.count {
				hi := convert.Digit(q.value[i+1], 16)
				lo := convert.Digit(q.value[i+2], 16)
				if hi >= 0 && lo >= 0 {
					piece = append(piece, byte(hi<<4|lo))
					i += 2
					continue
				}
			}
			piece = append(piece, b)
		default:
			piece = append(piece, b)
		}
	}
	emit()
	return out
}

// URL returns the full rendered buffer for the caller's IO layer.
func (q *Query) URL() string {
	return q.String()
}
