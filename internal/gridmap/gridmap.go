// Package gridmap stores the 2D cell grid that rays and movement are
// resolved against. A GridMap is immutable once constructed so the player
// and the ray caster can share it without coordination.
package gridmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyMap is returned when a map is built from no cells at all.
	ErrEmptyMap = errors.New("gridmap: map has no cells")
	// ErrInvalidSize is returned by the generators for non-positive extents.
	ErrInvalidSize = errors.New("gridmap: invalid map size")
)

// GridMap is a sparse mapping from coordinate to cell state plus a start
// location. Width and Height are derived once from the coordinate range and
// assume the keys cover a contiguous block; a mapping with gaps yields
// extents that over-report the walkable area.
type GridMap struct {
	cells  map[Coord]CellState
	start  Coord
	width  int
	height int
}

// New builds a GridMap from cells. The mapping is copied, Start markers are
// normalized to Empty and the start cell itself is forced Empty.
func New(cells map[Coord]CellState, start Coord) (*GridMap, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyMap
	}
	m := &GridMap{
		cells: make(map[Coord]CellState, len(cells)),
		start: start,
	}
	for c, s := range cells {
		if s == Start {
			s = Empty
		}
		m.cells[c] = s
	}
	m.cells[start] = Empty

	first := true
	var minX, maxX, minY, maxY int
	for c := range m.cells {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	m.width = maxX - minX + 1
	m.height = maxY - minY + 1
	return m, nil
}

// CellState returns the state of the cell at (x, y). Coordinates with no
// entry in the mapping are walls: absence of data means blocked, which is
// what stops rays at the map edge.
func (m *GridMap) CellState(x, y int) CellState {
	s, ok := m.cells[Coord{X: x, Y: y}]
	if !ok {
		return Wall
	}
	return s
}

// IsWalkable reports whether c lies inside the derived extents and is not a
// wall. Unlike CellState it is bounded by the extents.
func (m *GridMap) IsWalkable(c Coord) bool {
	if c.X < 0 || c.X >= m.width || c.Y < 0 || c.Y >= m.height {
		return false
	}
	return !m.CellState(c.X, c.Y).Blocks()
}

// Neighbors4 returns the walkable 4-connected neighbours of c.
func (m *GridMap) Neighbors4(c Coord) []Coord {
	out := make([]Coord, 0, len(neighbourOffsets))
	for _, off := range neighbourOffsets {
		n := Coord{X: c.X + off.X, Y: c.Y + off.Y}
		if m.IsWalkable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Width is the span of X coordinates present in the map.
func (m *GridMap) Width() int { return m.width }

// Height is the span of Y coordinates present in the map.
func (m *GridMap) Height() int { return m.height }

// Start returns the designated start cell.
func (m *GridMap) Start() Coord { return m.start }

// Len returns the number of cells with explicit data.
func (m *GridMap) Len() int { return len(m.cells) }

// Count returns how many cells hold state s.
func (m *GridMap) Count(s CellState) int {
	n := 0
	for _, v := range m.cells {
		if v == s {
			n++
		}
	}
	return n
}

// String renders the map with the glyph encoding, one row per line.
func (m *GridMap) String() string {
	var sb strings.Builder
	if err := m.Encode(&sb, GlyphEncoding); err != nil {
		return fmt.Sprintf("gridmap(%dx%d): %v", m.width, m.height, err)
	}
	return sb.String()
}
