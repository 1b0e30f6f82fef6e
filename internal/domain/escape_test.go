package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/brot/internal/model"
)

func TestEscapeTime_MembersAreInconclusive(t *testing.T) {
	// Points known to be in the Mandelbrot set never escape, whatever the
	// budget.
	members := []complex128{
		complex(0, 0),
		complex(-1, 0),
		complex(0.25, 0),
		complex(-2, 0),
		complex(0, 0.5),
		complex(0, 1), // falls into the -i / -1+i cycle
	}

	for _, c := range members {
		for _, limit := range []int{0, 1, 10, 1000} {
			esc := EscapeTime(c, limit)
			assert.False(t, esc.Escaped, "point %v, limit %d", c, limit)
		}
	}
}

func TestEscapeTime_FarPointsEscapeImmediately(t *testing.T) {
	// |c| > 2 means the very first update already leaves the circle.
	far := []complex128{
		complex(3, 0),
		complex(0, -3),
		complex(2, 2),
		complex(-2.5, 1),
	}

	for _, c := range far {
		esc := EscapeTime(c, 100)
		require.True(t, esc.Escaped, "point %v", c)
		assert.Equal(t, 0, esc.Iteration, "point %v", c)
	}
}

func TestEscapeTime_ZeroLimitIsInconclusive(t *testing.T) {
	for _, c := range []complex128{0, complex(5, 5), complex(-1, 2)} {
		assert.Equal(t, m.Escape{}, EscapeTime(c, 0))
	}
}

func TestEscapeTime_NegativeLimitIsInconclusive(t *testing.T) {
	assert.Equal(t, m.Escape{}, EscapeTime(complex(5, 5), -1))
}

func TestEscapeTime_EscapeIndexIsIndependentOfLargerLimits(t *testing.T) {
	c := complex(0.26, 0) // just past the cardioid cusp: escapes, slowly

	esc := EscapeTime(c, 1000)
	require.True(t, esc.Escaped)
	require.Greater(t, esc.Iteration, 0)

	for _, extra := range []int{1, 10, 100000} {
		again := EscapeTime(c, esc.Iteration+1+extra)
		assert.Equal(t, esc, again, "limit %d", esc.Iteration+1+extra)
	}

	// A budget that ends exactly at the escape index still reports it.
	exact := EscapeTime(c, esc.Iteration+1)
	assert.Equal(t, esc, exact)

	// One iteration short and the escape is not yet observable.
	short := EscapeTime(c, esc.Iteration)
	assert.False(t, short.Escaped)
}

func TestEscapeTime_IsDeterministic(t *testing.T) {
	c := complex(-0.7453, 0.1127)

	first := EscapeTime(c, 5000)
	second := EscapeTime(c, 5000)

	assert.Equal(t, first, second)
}

func TestEscapeTime_MatchesTrueMagnitudeDecision(t *testing.T) {
	// The squared-magnitude shortcut must agree with |z| > 2.
	trueMagnitude := func(c complex128, limit int) m.Escape {
		z := complex(0, 0)
		for i := 0; i < limit; i++ {
			z = z*z + c
			if math.Hypot(real(z), imag(z)) > 2.0 {
				return m.Escape{Iteration: i, Escaped: true}
			}
		}
		return m.Escape{}
	}

	points := []complex128{
		complex(0.3, 0.6),
		complex(-0.5, 0.6),
		complex(0.25, 0.0001),
		complex(-1.8, 0.01),
		complex(1, 1),
	}

	for _, c := range points {
		assert.Equal(t, trueMagnitude(c, 500), EscapeTime(c, 500), "point %v", c)
	}
}

func TestEscapeTime_NaNInputRunsOutTheBudget(t *testing.T) {
	// Inherited IEEE behavior: NaN never exceeds the threshold, so the
	// result is inconclusive rather than an error.
	c := complex(math.NaN(), 0)

	assert.False(t, EscapeTime(c, 100).Escaped)
}
