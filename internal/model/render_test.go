package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendering(t *testing.T) {
	frame := Frame{Width: 4, Height: 3}
	r := NewRendering(frame, Viewport{}, 100)

	require.Len(t, r.Points, 12)
	assert.Equal(t, frame, r.Frame)
	assert.Equal(t, 100, r.Limit)
}

func TestRenderingIndexing(t *testing.T) {
	r := NewRendering(Frame{Width: 4, Height: 3}, Viewport{}, 10)

	r.Row(1)[2] = Escape{Iteration: 7, Escaped: true}

	assert.Equal(t, Escape{Iteration: 7, Escaped: true}, r.At(2, 1))
	assert.Equal(t, Escape{}, r.At(2, 0))
	assert.Len(t, r.Row(2), 4)
}

func TestFramePixels(t *testing.T) {
	assert.Equal(t, 750000, Frame{Width: 1000, Height: 750}.Pixels())
	assert.Equal(t, 0, Frame{}.Pixels())
}
