package fuzz

import (
	"net/url"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/katplus/kat"
	"github.com/stretchr/testify/require"
)

// Every valid code point outside the surrogate range must round-trip
// through AppendRune and back out of the string projection.
func FuzzRuneRoundTrip(f *testing.F) {
	for _, r := range []rune{0, 'k', 0x7F, 0x80, 0x7FF, 0x800, 0x4E2D, 0xFFFF, 0x10000, 0x1F600, 0x10FFFF} {
		f.Add(int32(r))
	}
	f.Fuzz(func(t *testing.T, v int32) {
		r := rune(v)
		c := kat.New()
		c.AppendRune(r)

		if r < 0 || r > utf8.MaxRune || r >= 0xD800 && r <= 0xDFFF {
			require.Equal(t, "?", c.String())
			return
		}
		got, size := utf8.DecodeRuneInString(c.String())
		require.Equal(t, r, got)
		require.Equal(t, c.Len(), size)
		require.True(t, c.IsRune(r))
	})
}

// AppendString must agree with Go's own UTF-8 view for valid input.
func FuzzAppendString(f *testing.F) {
	f.Add("kat")
	f.Add("a中😀z")
	f.Add("\xFF\xFE")
	f.Add("")
	f.Fuzz(func(t *testing.T, s string) {
		c := kat.New()
		c.AppendString(s)
		if utf8.ValidString(s) && !strings.ContainsRune(s, utf8.RuneError) {
			require.Equal(t, s, c.String())
			require.True(t, c.Is(s))
		}
		require.Equal(t, len(c.String()), c.Len())
	})
}

// The integer projection must agree with strconv in both directions.
func FuzzInt64(f *testing.F) {
	f.Add("0")
	f.Add("-12345")
	f.Add("9223372036854775807")
	f.Add("x")
	f.Fuzz(func(t *testing.T, s string) {
		got := kat.FromString(s).Int64(-777)
		want, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			require.Equal(t, int64(-777), got)
			return
		}
		require.Equal(t, want, got)
	})
}

// Numbers emitted by the chain must parse back bit-for-bit.
func FuzzAppendInt64(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(-1))
	f.Add(int64(-9223372036854775808))
	f.Fuzz(func(t *testing.T, v int64) {
		c := kat.New()
		c.AppendInt64(v)
		require.Equal(t, strconv.FormatInt(v, 10), c.String())
		require.Equal(t, v, c.Int64(0))
	})
}

// A pair written through the form encoding must decode to itself,
// both by Map and by the standard URL parser.
func FuzzQueryRoundTrip(f *testing.F) {
	f.Add("k", "a b")
	f.Add("中", "文+")
	f.Add("", "")
	f.Add("a&b", "c=d%")
	f.Fuzz(func(t *testing.T, key, value string) {
		if !utf8.ValidString(key) || !utf8.ValidString(value) {
			t.Skip("the encoder replaces malformed input")
		}
		q := kat.NewQuery()
		q.Set(key).Add(value)

		m := q.Map()
		require.Equal(t, value, m[key])

		parsed, err := url.ParseQuery(q.String()[1:])
		require.NoError(t, err)
		if key != "" {
			require.Equal(t, value, parsed.Get(key))
		}
	})
}
