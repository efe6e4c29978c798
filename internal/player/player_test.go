package player

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycaster/internal/gridmap"
)

// room returns a size x size map: wall border, empty inside.
func room(t *testing.T, size int) *gridmap.GridMap {
	t.Helper()
	cells := make(map[gridmap.Coord]gridmap.CellState)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			s := gridmap.Empty
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				s = gridmap.Wall
			}
			cells[gridmap.Coord{X: x, Y: y}] = s
		}
	}
	m, err := gridmap.New(cells, gridmap.Coord{X: 1, Y: 1})
	require.NoError(t, err)
	return m
}

func TestNew_Defaults(t *testing.T) {
	p := New(1.5, 2.5, -math.Pi/2)

	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, 2.5, p.Y)
	assert.InDelta(t, 3*math.Pi/2, p.Direction, 1e-12, "direction is normalized")
	assert.Equal(t, DefaultFOV, p.FOV)
	assert.Equal(t, DefaultView, p.View)
	assert.Equal(t, DefaultSpeed, p.Speed)
	assert.Equal(t, DefaultRotateSpeed, p.RotateSpeed)
	assert.False(t, p.Held.Any())
}

func TestNew_Options(t *testing.T) {
	p := New(0, 0, 0, WithFOV(1), WithView(7), WithSpeed(4), WithRotateSpeed(2))

	assert.Equal(t, 1.0, p.FOV)
	assert.Equal(t, 7, p.View)
	assert.Equal(t, 4.0, p.Speed)
	assert.Equal(t, 2.0, p.RotateSpeed)
}

func TestRotate_Wraps(t *testing.T) {
	p := New(0, 0, 0)

	p.Rotate(-math.Pi / 2)
	assert.InDelta(t, 3*math.Pi/2, p.Direction, 1e-12)

	p.Rotate(math.Pi)
	assert.InDelta(t, math.Pi/2, p.Direction, 1e-12)
}

func TestWalk_Open(t *testing.T) {
	m := room(t, 8)
	p := New(2.5, 2.5, 0)

	p.Walk(1, m)
	assert.InDelta(t, 2.5, p.X, 1e-12)
	assert.InDelta(t, 3.5, p.Y, 1e-12, "heading 0 walks along +y")

	p.Direction = math.Pi / 2
	p.Walk(2, m)
	assert.InDelta(t, 4.5, p.X, 1e-12, "heading pi/2 walks along +x")
	assert.InDelta(t, 3.5, p.Y, 1e-12)

	p.Walk(-1, m)
	assert.InDelta(t, 3.5, p.X, 1e-12, "negative distance walks backwards")
}

func TestWalk_BlockedByWall(t *testing.T) {
	m := room(t, 5)
	p := New(1.5, 1.5, 0)

	p.Walk(3, m)
	assert.Equal(t, 1.5, p.Y, "the move would end inside the far wall")
	assert.Equal(t, 1.5, p.X)
}

func TestWalk_SlidesAlongWall(t *testing.T) {
	m := room(t, 5)
	p := New(3.5, 1.5, math.Pi/4)

	p.Walk(1, m)
	assert.Equal(t, 3.5, p.X, "x would enter the wall column")
	assert.InDelta(t, 1.5+math.Sqrt(0.5), p.Y, 1e-9, "y still advances")
}

func TestUpdate_Commands(t *testing.T) {
	m := room(t, 10)

	t.Run("forward", func(t *testing.T) {
		p := New(4.5, 4.5, 0, WithSpeed(2))
		p.Held.Press(Forward)
		p.Update(0.5, m)
		assert.InDelta(t, 5.5, p.Y, 1e-12)
	})

	t.Run("backward", func(t *testing.T) {
		p := New(4.5, 4.5, 0, WithSpeed(2))
		p.Held.Press(Backward)
		p.Update(0.5, m)
		assert.InDelta(t, 3.5, p.Y, 1e-12)
	})

	t.Run("turn right decreases direction", func(t *testing.T) {
		p := New(4.5, 4.5, 0)
		p.Held.Press(TurnRight)
		p.Update(0.25, m)
		assert.InDelta(t, 7*math.Pi/4, p.Direction, 1e-12)
	})

	t.Run("turn left increases direction", func(t *testing.T) {
		p := New(4.5, 4.5, 0)
		p.Held.Press(TurnLeft)
		p.Update(0.25, m)
		assert.InDelta(t, math.Pi/4, p.Direction, 1e-12)
	})

	t.Run("turning applies before walking", func(t *testing.T) {
		p := New(4.5, 4.5, 0, WithRotateSpeed(math.Pi/2), WithSpeed(1))
		p.Held.Press(TurnLeft)
		p.Held.Press(Forward)
		p.Update(1, m)
		assert.InDelta(t, 5.5, p.X, 1e-9)
		assert.InDelta(t, 4.5, p.Y, 1e-9)
	})

	t.Run("nothing held", func(t *testing.T) {
		p := New(4.5, 4.5, 1)
		before := *p
		p.Update(1, m)
		assert.Equal(t, before, *p)
	})
}

func TestCell(t *testing.T) {
	p := New(3.9, 0.1, 0)
	x, y := p.Cell()
	assert.Equal(t, 3, x)
	assert.Equal(t, 0, y)

	p.X = -0.5
	x, _ = p.Cell()
	assert.Equal(t, -1, x)
}
