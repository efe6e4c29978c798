package gridmap

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// Float64Source yields uniform samples in [0, 1).
type Float64Source interface {
	Float64() float64
}

// Perlin parameters for Noise. Three octaves at this scale give rooms a few
// cells across on a 20x20 map.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = int32(3)
	noiseScale   = 0.18
)

// Random samples every cell of a width x height map independently: Wall
// with probability ratio, Empty otherwise. The start cell is forced Empty.
func Random(width, height int, ratio float64, start Coord, rng Float64Source) (*GridMap, error) {
	if err := checkSize(width, height, start); err != nil {
		return nil, err
	}
	cells := make(map[Coord]CellState, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() < ratio {
				cells[Coord{X: x, Y: y}] = Wall
			} else {
				cells[Coord{X: x, Y: y}] = Empty
			}
		}
	}
	return New(cells, start)
}

// Noise builds a cave-like map from 2D Perlin noise. A cell is a wall when
// its normalized sample is below ratio. Ratio 0 gives an open map and ratio
// 1 a solid one regardless of the noise range. The same seed always yields
// the same map.
func Noise(width, height int, ratio float64, start Coord, seed int64) (*GridMap, error) {
	if err := checkSize(width, height, start); err != nil {
		return nil, err
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	cells := make(map[Coord]CellState, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := (p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) + 1) / 2
			if ratio >= 1 || (ratio > 0 && v < ratio) {
				cells[Coord{X: x, Y: y}] = Wall
			} else {
				cells[Coord{X: x, Y: y}] = Empty
			}
		}
	}
	return New(cells, start)
}

func checkSize(width, height int, start Coord) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if start.X < 0 || start.X >= width || start.Y < 0 || start.Y >= height {
		return fmt.Errorf("%w: start %d,%d outside %dx%d", ErrInvalidSize, start.X, start.Y, width, height)
	}
	return nil
}
