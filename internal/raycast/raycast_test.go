package raycast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycaster/internal/gridmap"
)

const tolerance = 0.01

// boxMap returns a width x height map whose border is wall and interior empty.
func boxMap(t *testing.T, width, height int) *gridmap.GridMap {
	t.Helper()
	cells := make(map[gridmap.Coord]gridmap.CellState)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s := gridmap.Empty
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				s = gridmap.Wall
			}
			cells[gridmap.Coord{X: x, Y: y}] = s
		}
	}
	m, err := gridmap.New(cells, gridmap.Coord{X: 1, Y: 1})
	require.NoError(t, err)
	return m
}

// openMap returns an all-empty square spanning [-r, r] on both axes.
func openMap(t *testing.T, r int) *gridmap.GridMap {
	t.Helper()
	cells := make(map[gridmap.Coord]gridmap.CellState)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			cells[gridmap.Coord{X: x, Y: y}] = gridmap.Empty
		}
	}
	m, err := gridmap.New(cells, gridmap.Coord{})
	require.NoError(t, err)
	return m
}

func TestCast_RingScenario(t *testing.T) {
	m := boxMap(t, 3, 3)

	hit := Cast(m, Ray{X: 1.5, Y: 1.5, Angle: 0, MaxDistance: 5})
	assert.True(t, hit.OK())
	assert.Equal(t, Vertical, hit.Side)
	assert.InDelta(t, 0.5, hit.Distance, 1e-9)
}

func TestCast_AxisAligned(t *testing.T) {
	m := boxMap(t, 3, 3)
	tests := []struct {
		name  string
		angle float64
		side  Side
	}{
		{name: "+y", angle: 0, side: Vertical},
		{name: "+x", angle: math.Pi / 2, side: Horizontal},
		{name: "-y", angle: math.Pi, side: Vertical},
		{name: "-x", angle: 3 * math.Pi / 2, side: Horizontal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := Cast(m, Ray{X: 1.5, Y: 1.5, Angle: tt.angle, MaxDistance: 5})
			require.True(t, hit.OK())
			assert.Equal(t, tt.side, hit.Side)
			assert.InDelta(t, 0.5, hit.Distance, tolerance)
			assert.False(t, math.IsNaN(hit.Distance))
		})
	}
}

func TestCast_AllWallsDiagonal(t *testing.T) {
	m, err := gridmap.Random(3, 3, 1.0, gridmap.Coord{X: 1, Y: 1}, constSource(0.5))
	require.NoError(t, err)

	hit := Cast(m, Ray{X: 1.5, Y: 1.5, Angle: math.Pi / 4, MaxDistance: 5})
	require.True(t, hit.OK())
	assert.InDelta(t, math.Sqrt(0.5), hit.Distance, 1e-9)

	hit = Cast(m, Ray{X: 1.5, Y: 1.5, Angle: 0, MaxDistance: 5})
	assert.InDelta(t, 0.5, hit.Distance, 1e-9)
}

func TestCast_WallRingWithinOneCell(t *testing.T) {
	m := boxMap(t, 3, 3)
	for i := 0; i < 360; i++ {
		angle := float64(i) * math.Pi / 180
		hit := Cast(m, Ray{X: 1.5, Y: 1.5, Angle: angle, MaxDistance: 1})
		require.True(t, hit.OK(), "angle %d deg", i)
		assert.LessOrEqual(t, hit.Distance, 1+tolerance, "angle %d deg", i)
		assert.Positive(t, hit.Distance, "angle %d deg", i)
	}
}

func TestCast_OpenAreaMisses(t *testing.T) {
	const maxDistance = 5
	m := openMap(t, 2*maxDistance)
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		hit := Cast(m, Ray{X: 0.5, Y: 0.5, Angle: angle, MaxDistance: maxDistance})
		assert.False(t, hit.OK(), "angle %d*pi/4", i)
		assert.True(t, math.IsInf(hit.Distance, 1))
	}
}

func TestCast_MaxDistanceBoundsSearch(t *testing.T) {
	m := boxMap(t, 3, 10)

	hit := Cast(m, Ray{X: 1.5, Y: 1.5, Angle: 0, MaxDistance: 3})
	assert.False(t, hit.OK(), "the far wall is beyond three crossings")

	hit = Cast(m, Ray{X: 1.5, Y: 1.5, Angle: 0, MaxDistance: 20})
	require.True(t, hit.OK())
	assert.InDelta(t, 7.5, hit.Distance, 1e-9)
}

func TestCast_NonPositiveRange(t *testing.T) {
	m := boxMap(t, 3, 3)
	assert.False(t, Cast(m, Ray{X: 1.5, Y: 1.5, MaxDistance: 0}).OK())
	assert.False(t, Cast(m, Ray{X: 1.5, Y: 1.5, MaxDistance: -3}).OK())
}

func TestCast_MissingDataIsWall(t *testing.T) {
	// A single empty cell: everything around it has no data.
	m, err := gridmap.New(map[gridmap.Coord]gridmap.CellState{{X: 0, Y: 0}: gridmap.Empty}, gridmap.Coord{})
	require.NoError(t, err)

	hit := Cast(m, Ray{X: 0.25, Y: 0.5, Angle: math.Pi / 2, MaxDistance: 10})
	require.True(t, hit.OK())
	assert.Equal(t, Horizontal, hit.Side)
	assert.InDelta(t, 0.75, hit.Distance, 1e-9)
}

func TestCast_Deterministic(t *testing.T) {
	m, err := gridmap.Noise(24, 24, 0.4, gridmap.Coord{X: 12, Y: 12}, 99)
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		r := Ray{X: 12.3, Y: 12.7, Angle: float64(i) * 0.1, MaxDistance: 20}
		assert.Equal(t, Cast(m, r), Cast(m, r))
	}
}

func TestCast_DegenerateAnglesDoNotProduceNaN(t *testing.T) {
	m := boxMap(t, 5, 5)
	for _, angle := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi, -math.Pi / 2} {
		hit := Cast(m, Ray{X: 2.5, Y: 2.5, Angle: angle, MaxDistance: 10})
		require.True(t, hit.OK(), "angle %v", angle)
		assert.False(t, math.IsNaN(hit.Distance))
		assert.InDelta(t, 1.5, hit.Distance, tolerance, "angle %v", angle)
	}
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 0, Normalize(0), 1e-12)
	assert.InDelta(t, math.Pi, Normalize(-math.Pi), 1e-12)
	assert.InDelta(t, math.Pi/2, Normalize(2*math.Pi+math.Pi/2), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, Normalize(-math.Pi/2), 1e-12)
	assert.Less(t, Normalize(2*math.Pi), 2*math.Pi)
	assert.Less(t, Normalize(-1e-18), 2*math.Pi)
}

func TestHit_OK(t *testing.T) {
	assert.False(t, Hit{Distance: NoHit}.OK())
	assert.True(t, Hit{Distance: 3}.OK())
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "vertical", Vertical.String())
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
