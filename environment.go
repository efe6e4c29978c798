package main

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"raycaster/internal/config"
	"raycaster/internal/gridmap"
	"raycaster/internal/logging"
)

// buildMap loads the configured map file or generates a random map.
func buildMap(cfg config.MapConfig) (*gridmap.GridMap, error) {
	log := logging.For("map")
	enc, err := gridmap.EncodingByName(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		m, err := gridmap.LoadFile(cfg.File, enc)
		if err != nil {
			return nil, err
		}
		log.WithField("file", cfg.File).WithField("size", fmt.Sprintf("%dx%d", m.Width(), m.Height())).Info("map loaded")
		return m, nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	start := gridmap.Coord{X: cfg.StartX, Y: cfg.StartY}
	var m *gridmap.GridMap
	switch cfg.Generator {
	case "noise":
		m, err = gridmap.Noise(cfg.Width, cfg.Height, cfg.WallRatio, start, seed)
	default:
		m, err = gridmap.Random(cfg.Width, cfg.Height, cfg.WallRatio, start, rand.New(rand.NewSource(uint64(seed))))
	}
	if err != nil {
		return nil, err
	}
	log.WithField("generator", cfg.Generator).
		WithField("seed", seed).
		WithField("walls", m.Count(gridmap.Wall)).
		Info("map generated")
	log.Debugf("layout:\n%s", m)
	return m, nil
}

// saveMap writes m to path with the configured encoding.
func saveMap(m *gridmap.GridMap, path, encoding string) error {
	enc, err := gridmap.EncodingByName(encoding)
	if err != nil {
		return err
	}
	if err := m.SaveFile(path, enc); err != nil {
		return err
	}
	logging.For("map").WithField("file", path).Info("map saved")
	return nil
}

// isWall reports whether the cell at (x, y) blocks, treating unknown cells
// as walls.
func (s *session) isWall(x, y int) bool {
	return s.grid.CellState(x, y).Blocks()
}

// headingOffset returns the minimap pixel offset of the heading indicator.
func (s *session) headingOffset(length float64) (int, int) {
	fx := math.Sin(s.player.Direction)
	fy := math.Cos(s.player.Direction)
	ox := int(math.Round(fx * length))
	oy := int(math.Round(fy * length))
	if ox == 0 && oy == 0 {
		if math.Abs(fx) >= math.Abs(fy) {
			ox = int(math.Copysign(1, fx))
		} else {
			oy = int(math.Copysign(1, fy))
		}
	}
	return ox, oy
}
