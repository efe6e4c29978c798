package gridmap

// CellState enumerates the content of one grid square.
type CellState uint8

const (
	Empty CellState = iota
	Wall
	Start
	Food
	BigFood
)

// String returns a readable name for the state.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Food:
		return "food"
	case BigFood:
		return "big-food"
	default:
		return "unknown"
	}
}

// Blocks reports whether the state stops rays and movement.
func (s CellState) Blocks() bool { return s == Wall }

// Coord identifies a grid square. X is the column, Y the row.
type Coord struct {
	X int
	Y int
}

// neighbourOffsets lists the 4-connected steps in lookup order.
var neighbourOffsets = [4]Coord{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}
