package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/brot/internal/model"
)

// ParseFunc converts a string into a value of type T, failing explicitly on
// malformed input. strconv.Atoi and strconv.ParseFloat (wrapped to drop the
// bit size) are the usual instances.
type ParseFunc[T any] func(string) (T, error)

// ParsePair splits s at the first occurrence of sep and parses both halves
// with parse. Parsing is all-or-nothing: a missing separator, or a failure
// on either half, yields ok == false and no partial result. Any further
// separator characters are left to parse to accept or reject.
func ParsePair[T any](s string, sep rune, parse ParseFunc[T]) (left, right T, ok bool) {
	idx := strings.IndexRune(s, sep)
	if idx < 0 {
		return left, right, false
	}

	l, err := parse(s[:idx])
	if err != nil {
		return left, right, false
	}

	r, err := parse(s[idx+utf8.RuneLen(sep):])
	if err != nil {
		return left, right, false
	}

	return l, r, true
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// ParseComplex parses a comma-separated coordinate like "1.0,0.5" into a
// complex number.
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair(s, ',', parseFloat)
	if !ok {
		return 0, false
	}

	return complex(re, im), true
}

// ParseFrame parses pixel dimensions like "1000x750". Both dimensions must
// be positive.
func ParseFrame(s string) (m.Frame, bool) {
	w, h, ok := ParsePair(s, 'x', strconv.Atoi)
	if !ok || w <= 0 || h <= 0 {
		return m.Frame{}, false
	}

	return m.Frame{Width: w, Height: h}, true
}
