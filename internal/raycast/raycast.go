// Package raycast finds the distance from a point to the first wall cell
// along a ray, stepping separately over horizontal and vertical grid lines
// and keeping the nearer crossing.
//
// Angles are radians with 0 pointing along +y ("down" on screen) and
// increasing toward +x.
package raycast

import (
	"math"

	"raycaster/internal/gridmap"
)

// edgeEpsilon pushes a crossing on a decreasing axis strictly past the grid
// line so the floor lands in the next cell.
const edgeEpsilon = 0.001

// degenerateLimit is the magnitude below which sin or cos is treated as zero.
const degenerateLimit = 1e-12

// NoHit is the distance reported when no wall lies within range.
var NoHit = math.Inf(1)

// Side tells which family of grid lines the ray crossed at the hit.
type Side uint8

const (
	// Vertical hits crossed an integer y boundary.
	Vertical Side = iota
	// Horizontal hits crossed an integer x boundary.
	Horizontal
)

func (s Side) String() string {
	if s == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Grid is the read-only view of the map the caster needs. Implementations
// must report Wall for coordinates they hold no data for.
type Grid interface {
	CellState(x, y int) gridmap.CellState
}

// Ray is a single cast request.
type Ray struct {
	X, Y        float64
	Angle       float64
	MaxDistance int
}

// Hit is the outcome of a cast.
type Hit struct {
	Distance float64
	Side     Side
}

// OK reports whether the ray reached a wall within range.
func (h Hit) OK() bool { return !math.IsInf(h.Distance, 1) }

// Cast traces r through g and returns the nearest wall crossing. Ties go to
// the vertical crossing. A non-positive MaxDistance never hits.
func Cast(g Grid, r Ray) Hit {
	if r.MaxDistance <= 0 {
		return Hit{Distance: NoHit, Side: Vertical}
	}
	v := castVertical(g, r)
	h := castHorizontal(g, r)
	if v <= h {
		return Hit{Distance: v, Side: Vertical}
	}
	return Hit{Distance: h, Side: Horizontal}
}

// castVertical walks the crossings with integer y lines.
func castVertical(g Grid, r Ray) float64 {
	cos := math.Cos(r.Angle)
	if math.Abs(cos) < degenerateLimit {
		return NoHit
	}
	var yNext, yStep, sign float64
	if cos > 0 {
		yNext, yStep, sign = math.Ceil(r.Y), 1, 1
	} else {
		yNext, yStep, sign = math.Floor(r.Y)-edgeEpsilon, -1, -1
	}
	tan := math.Tan(r.Angle)
	xNext := r.X + (yNext-r.Y)*tan
	xStep := yStep * tan

	for i := 0; i < r.MaxDistance; i++ {
		if blocked(g, xNext, yNext) {
			return sign * math.Abs(yNext-r.Y) / cos
		}
		xNext += xStep
		yNext += yStep
	}
	return NoHit
}

// castHorizontal walks the crossings with integer x lines.
func castHorizontal(g Grid, r Ray) float64 {
	sin := math.Sin(r.Angle)
	if math.Abs(sin) < degenerateLimit {
		return NoHit
	}
	var xNext, xStep, sign float64
	if sin > 0 {
		xNext, xStep, sign = math.Ceil(r.X), 1, 1
	} else {
		xNext, xStep, sign = math.Floor(r.X)-edgeEpsilon, -1, -1
	}
	cot := 1 / math.Tan(r.Angle)
	yNext := r.Y + (xNext-r.X)*cot
	yStep := xStep * cot

	for i := 0; i < r.MaxDistance; i++ {
		if blocked(g, xNext, yNext) {
			return sign * math.Abs(xNext-r.X) / sin
		}
		xNext += xStep
		yNext += yStep
	}
	return NoHit
}

// blocked looks up the cell containing the continuous point (x, y).
func blocked(g Grid, x, y float64) bool {
	return g.CellState(int(math.Floor(x)), int(math.Floor(y))).Blocks()
}

// Normalize wraps angle into [0, 2π).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
