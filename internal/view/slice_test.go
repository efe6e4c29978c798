package view

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"raycaster/internal/raycast"
)

func TestColumnSlice(t *testing.T) {
	s, ok := ColumnSlice(raycast.Hit{Distance: 2}, 600, 300)
	assert.True(t, ok)
	assert.InDelta(t, 150, s.Height, 1e-9)
	assert.InDelta(t, 225, s.Top, 1e-9)
	assert.InDelta(t, 375, s.Bottom(), 1e-9)
}

func TestColumnSlice_ClampsToScreen(t *testing.T) {
	s, ok := ColumnSlice(raycast.Hit{Distance: 0.1}, 600, 300)
	assert.True(t, ok)
	assert.InDelta(t, 600, s.Height, 1e-9)
	assert.InDelta(t, 0, s.Top, 1e-9)
}

func TestColumnSlice_NoSlice(t *testing.T) {
	_, ok := ColumnSlice(raycast.Hit{Distance: raycast.NoHit}, 600, 300)
	assert.False(t, ok, "misses draw nothing")

	_, ok = ColumnSlice(raycast.Hit{Distance: 1}, 0, 300)
	assert.False(t, ok)

	_, ok = ColumnSlice(raycast.Hit{Distance: 1}, 600, 0)
	assert.False(t, ok)
}

func TestColumnX_RightToLeft(t *testing.T) {
	x, w := ColumnX(0, 4, 400)
	assert.InDelta(t, 300, x, 1e-9)
	assert.InDelta(t, 100, w, 1e-9)

	x, _ = ColumnX(3, 4, 400)
	assert.InDelta(t, 0, x, 1e-9)

	x, w = ColumnX(0, 0, 400)
	assert.Zero(t, x)
	assert.Zero(t, w)
}

func TestShade(t *testing.T) {
	base := color.RGBA{R: 220, G: 30, B: 255, A: 255}

	assert.Equal(t, base, Shade(base, raycast.Vertical, 50))
	assert.Equal(t, color.RGBA{R: 170, G: 0, B: 205, A: 255}, Shade(base, raycast.Horizontal, 50))
}
