// Package domain holds the escape-time math and the rendering workflow.
package domain

import (
	m "github.com/mouse-blink/brot/internal/model"
)

// EscapeTime tries to determine whether c belongs to the Mandelbrot set,
// using at most limit iterations of z = z*z + c starting from zero.
//
// If c is not a member, the result carries the 0-based iteration at which z
// left the circle of radius two centered on the origin. If the limit is
// reached without z leaving the circle, the result is inconclusive and c is
// probably a member. A limit of zero (or less) is always inconclusive.
//
// The squared magnitude is compared against 4.0, which avoids a square root
// and decides escape exactly as |z| > 2 would. Non-finite inputs are not
// special-cased: a NaN component never exceeds the threshold, so such points
// run out the budget and report inconclusive.
func EscapeTime(c complex128, limit int) m.Escape {
	z := complex(0, 0)
	for i := 0; i < limit; i++ {
		z = z*z + c

		re, im := real(z), imag(z)
		if re*re+im*im > 4.0 {
			return m.Escape{Iteration: i, Escaped: true}
		}
	}

	return m.Escape{}
}
