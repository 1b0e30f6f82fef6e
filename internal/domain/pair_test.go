package domain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/brot/internal/model"
)

func TestParsePair_Ints(t *testing.T) {
	l, r, ok := ParsePair("10,20", ',', strconv.Atoi)
	require.True(t, ok)
	assert.Equal(t, 10, l)
	assert.Equal(t, 20, r)
}

func TestParsePair_Failures(t *testing.T) {
	cases := []string{
		"",       // no separator at all
		"10",     // separator missing
		"10,",    // right side empty
		",10",    // left side empty
		"10,20xy", // trailing garbage after a valid number
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			_, _, ok := ParsePair(input, ',', strconv.Atoi)
			assert.False(t, ok, "input %q", input)
		})
	}
}

func TestParsePair_FloatsWithCustomSeparator(t *testing.T) {
	_, _, ok := ParsePair("0.5x", 'x', parseFloat)
	assert.False(t, ok)

	l, r, ok := ParsePair("0.5x1.5", 'x', parseFloat)
	require.True(t, ok)
	assert.Equal(t, 0.5, l)
	assert.Equal(t, 1.5, r)
}

func TestParsePair_SplitsAtFirstSeparator(t *testing.T) {
	// Extra separators are left to the element parser, which rejects them
	// for numeric types.
	_, _, ok := ParsePair("1,2,3", ',', strconv.Atoi)
	assert.False(t, ok)

	// A parser that accepts anything sees the remainder untouched.
	identity := func(s string) (string, error) { return s, nil }

	l, r, ok := ParsePair("a,b,c", ',', identity)
	require.True(t, ok)
	assert.Equal(t, "a", l)
	assert.Equal(t, "b,c", r)
}

func TestParsePair_MultiByteSeparator(t *testing.T) {
	l, r, ok := ParsePair("10×20", '×', strconv.Atoi)
	require.True(t, ok)
	assert.Equal(t, 10, l)
	assert.Equal(t, 20, r)
}

func TestParseComplex(t *testing.T) {
	c, ok := ParseComplex("1.0,0.5")
	require.True(t, ok)
	assert.Equal(t, complex(1.0, 0.5), c)

	c, ok = ParseComplex("-2.25,1.25")
	require.True(t, ok)
	assert.Equal(t, complex(-2.25, 1.25), c)

	for _, input := range []string{"", "1.0", "1.0,", ",0.5", "1.0,0.5x"} {
		_, ok := ParseComplex(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestParseFrame(t *testing.T) {
	frame, ok := ParseFrame("1000x750")
	require.True(t, ok)
	assert.Equal(t, m.Frame{Width: 1000, Height: 750}, frame)

	for _, input := range []string{"", "1000", "x750", "1000x", "0x100", "100x-5", "10,20"} {
		_, ok := ParseFrame(input)
		assert.False(t, ok, "input %q", input)
	}
}
