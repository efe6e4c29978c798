package view

import (
	"image/color"
	"math"

	"raycaster/internal/raycast"
)

// Slice is the vertical span a column's wall occupies on screen.
type Slice struct {
	Top    float64
	Height float64
}

// Bottom is the first row below the slice.
func (s Slice) Bottom() float64 { return s.Top + s.Height }

// ColumnSlice converts a corrected hit distance into a wall slice centred on
// a screen screenH units tall. The distance is clamped to wallHeight/screenH
// so a slice never exceeds the screen. Misses produce no slice.
func ColumnSlice(hit raycast.Hit, screenH, wallHeight float64) (Slice, bool) {
	if !hit.OK() || screenH <= 0 || wallHeight <= 0 {
		return Slice{}, false
	}
	z := math.Max(hit.Distance, wallHeight/screenH)
	height := wallHeight / z
	return Slice{Top: screenH/2 - height/2, Height: height}, true
}

// ColumnX maps sweep index i to its left screen edge and width. Index 0 is
// drawn at the right edge, so angles that grow toward +x run right to left.
func ColumnX(i, columns int, screenW float64) (x, width float64) {
	if columns <= 0 {
		return 0, 0
	}
	width = screenW / float64(columns)
	return float64(columns-1-i) * width, width
}

// Shade darkens base by delta for horizontal-crossing hits.
func Shade(base color.RGBA, side raycast.Side, delta uint8) color.RGBA {
	if side != raycast.Horizontal {
		return base
	}
	sub := func(v uint8) uint8 {
		if v < delta {
			return 0
		}
		return v - delta
	}
	return color.RGBA{sub(base.R), sub(base.G), sub(base.B), base.A}
}
