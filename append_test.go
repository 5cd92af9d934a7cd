package kat_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/katplus/kat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRune(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want []byte
	}{
		{"ascii", 'k', []byte{'k'}},
		{"nul", 0, []byte{0x00}},
		{"two byte", 0x7FF, []byte{0xDF, 0xBF}},
		{"three byte", '中', []byte{0xE4, 0xB8, 0xAD}},
		{"bmp max", 0xFFFF, []byte{0xEF, 0xBF, 0xBF}},
		{"astral", 0x1F600, []byte{0xF0, 0x9F, 0x98, 0x80}},
		{"max", 0x10FFFF, []byte{0xF4, 0x8F, 0xBF, 0xBF}},
		{"high surrogate", 0xD83D, []byte{'?'}},
		{"low surrogate", 0xDE00, []byte{'?'}},
		{"negative", -1, []byte{'?'}},
		{"beyond unicode", 0x110000, []byte{'?'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := kat.New()
			c.AppendRune(tt.r)
			require.Equal(t, tt.want, c.Bytes())
		})
	}
}

func TestAppendChar(t *testing.T) {
	c := kat.New()
	c.AppendChar('k')
	c.AppendChar(0xD83D) // lone high surrogate
	c.AppendChar(0x4E2D)
	require.Equal(t, append([]byte{'k', '?'}, 0xE4, 0xB8, 0xAD), c.Bytes())
}

func TestAppendChars(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  []byte
	}{
		{"plain", []uint16{'k', 'a', 't'}, []byte("kat")},
		{"surrogate pair", []uint16{0xD83D, 0xDE00}, []byte{0xF0, 0x9F, 0x98, 0x80}},
		{"lone high", []uint16{0xD83D}, []byte{'?'}},
		{"high then bmp", []uint16{0xD83D, 'x'}, []byte{'?', 'x'}},
		{"lone low", []uint16{0xDE00}, []byte{'?'}},
		{"low then high", []uint16{0xDE00, 0xD83D}, []byte{'?', '?'}},
		{"pair then text", []uint16{0xD83D, 0xDE00, '!'}, []byte{0xF0, 0x9F, 0x98, 0x80, '!'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := kat.New()
			c.AppendChars(tt.units)
			require.Equal(t, tt.want, c.Bytes())
		})
	}
}

func TestAppendStringSurrogatePair(t *testing.T) {
	c := kat.New()
	c.AppendString("😀")
	require.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, c.Bytes())
}

func TestAppendStringMalformed(t *testing.T) {
	c := kat.New()
	c.AppendString("a\xFFb\xC0\xAFc")
	require.Equal(t, "a?b??c", c.String())
}

func TestAppendStringRange(t *testing.T) {
	c := kat.New()
	c.AppendStringRange("--kat--", 2, 3)
	require.Equal(t, "kat", c.String())
}

func TestAppendInt64(t *testing.T) {
	values := []int64{
		0, 1, -1, 9, 10, -10, 99, 100, -12345,
		math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64,
	}
	for _, v := range values {
		t.Run(strconv.FormatInt(v, 10), func(t *testing.T) {
			c := kat.New()
			c.AppendInt64(v)
			require.Equal(t, strconv.FormatInt(v, 10), c.String())
		})
	}
}

func TestAppendUint64(t *testing.T) {
	for _, v := range []uint64{0, 7, 10, 4294967296, math.MaxUint64} {
		c := kat.New()
		c.AppendUint64(v)
		require.Equal(t, strconv.FormatUint(v, 10), c.String())
	}
}

func TestAppendBool(t *testing.T) {
	c := kat.New()
	c.AppendBool(true)
	c.AppendByte(' ')
	c.AppendBool(false)
	require.Equal(t, "true false", c.String())
}

func TestAppendFloat(t *testing.T) {
	c := kat.New()
	c.AppendFloat64(1.5)
	require.Equal(t, "1.5", c.String())

	c.Reset()
	c.AppendFloat64(150)
	require.Equal(t, "150", c.String())

	c.Reset()
	c.AppendFloat32(0.25)
	require.Equal(t, "0.25", c.String())
}

func TestReadFrom(t *testing.T) {
	c := kat.New()
	n, err := c.ReadFrom(strings.NewReader("stream of bytes"))
	require.NoError(t, err)
	require.Equal(t, int64(15), n)
	require.Equal(t, "stream of bytes", c.String())

	// Appends after existing content.
	n, err = c.ReadFrom(bytes.NewReader([]byte("!")))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Equal(t, "stream of bytes!", c.String())
}

func TestReadFromLarge(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 10_000)
	c := kat.New()
	n, err := c.ReadFrom(bytes.NewReader(payload))
	require.NoError(t, err)
	require.Equal(t, int64(len(payload)), n)
	require.Equal(t, payload, c.Bytes())
}

func TestReadFromN(t *testing.T) {
	c := kat.New()
	n, err := c.ReadFromN(strings.NewReader("0123456789"), 4)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "0123", c.String())

	// EOF before the range is exhausted stops early.
	c.Reset()
	n, err = c.ReadFromN(strings.NewReader("ab"), 100)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "ab", c.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReadFromError(t *testing.T) {
	c := kat.New()
	_, err := c.ReadFrom(failingReader{})
	require.EqualError(t, err, "broken pipe")
	assert.True(t, c.IsEmpty())
}

var _ io.ReaderFrom = (*kat.Chain)(nil)
