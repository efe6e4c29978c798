// Package view turns a player's field of view into one ray per screen column.
package view

import (
	"math"

	"raycaster/internal/player"
	"raycaster/internal/raycast"
)

// Sampler sweeps a field of view into Columns rays.
type Sampler struct {
	Columns int
}

// NewSampler returns a sampler producing columns rays per sweep.
func NewSampler(columns int) *Sampler {
	return &Sampler{Columns: columns}
}

// Sweep casts one ray per column across p's field of view and returns the
// fisheye-corrected hits. Column 0 is the ray at Direction - FOV/2; angles
// then increase by FOV/(Columns-1). Neither p nor g is modified.
func (s *Sampler) Sweep(p player.Player, g raycast.Grid) []raycast.Hit {
	return s.SweepInto(nil, p, g)
}

// SweepInto is Sweep reusing dst's storage when it is large enough.
func (s *Sampler) SweepInto(dst []raycast.Hit, p player.Player, g raycast.Grid) []raycast.Hit {
	n := max(s.Columns, 0)
	if dst == nil || cap(dst) < n {
		dst = make([]raycast.Hit, n)
	}
	dst = dst[:n]
	if n == 0 {
		return dst
	}

	step := 0.0
	if n > 1 {
		step = p.FOV / float64(n-1)
	}
	angle := raycast.Normalize(p.Direction - p.FOV/2)
	for i := range dst {
		hit := raycast.Cast(g, raycast.Ray{X: p.X, Y: p.Y, Angle: angle, MaxDistance: p.View})
		if hit.OK() {
			hit.Distance *= math.Cos(math.Abs(p.Direction - angle))
		}
		dst[i] = hit
		angle = raycast.Normalize(angle + step)
	}
	return dst
}

// RayAngle returns the angle Sweep uses for column i.
func (s *Sampler) RayAngle(p player.Player, i int) float64 {
	if s.Columns <= 1 {
		return raycast.Normalize(p.Direction - p.FOV/2)
	}
	return raycast.Normalize(p.Direction - p.FOV/2 + float64(i)*p.FOV/float64(s.Columns-1))
}
