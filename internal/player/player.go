// Package player holds the viewer's pose and applies held movement commands
// with axis-separated wall collision.
package player

import (
	"math"

	"raycaster/internal/raycast"
)

const (
	DefaultFOV         = math.Pi / 2
	DefaultView        = 20
	DefaultSpeed       = 3.0     // cells per second
	DefaultRotateSpeed = math.Pi // half a turn per second
)

// Player is the viewer. Direction uses the ray caster's convention: 0 faces
// +y and angles grow toward +x.
type Player struct {
	X, Y        float64
	Direction   float64
	FOV         float64
	View        int
	Speed       float64
	RotateSpeed float64

	Held Commands
}

// Option customizes a Player built by New.
type Option func(*Player)

// WithFOV sets the field of view in radians.
func WithFOV(fov float64) Option { return func(p *Player) { p.FOV = fov } }

// WithView sets the maximum number of grid steps a ray may take.
func WithView(cells int) Option { return func(p *Player) { p.View = cells } }

// WithSpeed sets walking speed in cells per second.
func WithSpeed(speed float64) Option { return func(p *Player) { p.Speed = speed } }

// WithRotateSpeed sets turning speed in radians per second.
func WithRotateSpeed(speed float64) Option { return func(p *Player) { p.RotateSpeed = speed } }

// New places a player at (x, y) facing direction.
func New(x, y, direction float64, opts ...Option) *Player {
	p := &Player{
		X:           x,
		Y:           y,
		Direction:   raycast.Normalize(direction),
		FOV:         DefaultFOV,
		View:        DefaultView,
		Speed:       DefaultSpeed,
		RotateSpeed: DefaultRotateSpeed,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Rotate turns the player by delta radians.
func (p *Player) Rotate(delta float64) {
	p.Direction = raycast.Normalize(p.Direction + delta)
}

// Walk moves the player distance cells along its heading. Each axis is
// checked and applied on its own so the player slides along walls; the y
// check uses the already-updated x.
func (p *Player) Walk(distance float64, g raycast.Grid) {
	dx := distance * math.Sin(p.Direction)
	dy := distance * math.Cos(p.Direction)
	if !g.CellState(int(math.Floor(p.X+dx)), int(math.Floor(p.Y))).Blocks() {
		p.X += dx
	}
	if !g.CellState(int(math.Floor(p.X)), int(math.Floor(p.Y+dy))).Blocks() {
		p.Y += dy
	}
}

// Update applies the held commands for a frame lasting dt seconds.
func (p *Player) Update(dt float64, g raycast.Grid) {
	if p.Held.Has(TurnRight) {
		p.Rotate(-p.RotateSpeed * dt)
	}
	if p.Held.Has(TurnLeft) {
		p.Rotate(p.RotateSpeed * dt)
	}
	if p.Held.Has(Forward) {
		p.Walk(p.Speed*dt, g)
	}
	if p.Held.Has(Backward) {
		p.Walk(-p.Speed*dt, g)
	}
}

// Cell returns the grid square the player stands in.
func (p *Player) Cell() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}
