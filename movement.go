package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/exp/rand"

	"raycaster/internal/player"
)

// randSource is the subset of *rand.Rand the auto-walker uses.
type randSource interface {
	Float64() float64
	Intn(n int) int
}

// enableAutoWalk schedules scripted movement for a limited duration.
func (g *Game) enableAutoWalk(duration time.Duration) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	if g.autoWalkRand == nil {
		g.autoWalkRand = rand.New(rand.NewSource(uint64(time.Now().UnixNano() + 3)))
	}
	g.autoWalkFrameCount = 0
}

// heldCommands selects either manual or automatic movement input.
func (g *Game) heldCommands() player.Commands {
	if g.autoWalk {
		if time.Now().After(g.autoWalkDeadline) {
			g.autoWalk = false
			return 0
		}
		return g.autoWalkCommands()
	}
	return manualCommands()
}

// manualCommands maps arrow keys and WASD onto player commands.
func manualCommands() player.Commands {
	var held player.Commands
	held.Set(player.Forward, ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp))
	held.Set(player.Backward, ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown))
	held.Set(player.TurnLeft, ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft))
	held.Set(player.TurnRight, ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight))
	return held
}

// autoWalkCommands walks forward and turns away when the cell ahead is a
// wall, changing its turn direction every few dozen frames.
func (g *Game) autoWalkCommands() player.Commands {
	if g.autoWalkFrameCount <= 0 {
		g.randomizeAutoWalkTurn()
	}
	g.autoWalkFrameCount--

	var held player.Commands
	p := g.player
	aheadX := p.X + math.Sin(p.Direction)*0.6
	aheadY := p.Y + math.Cos(p.Direction)*0.6
	if g.isWall(int(math.Floor(aheadX)), int(math.Floor(aheadY))) {
		held.Press(g.autoWalkTurn)
		return held
	}
	held.Press(player.Forward)
	if g.autoWalkRand.Float64() < 0.2 {
		held.Press(g.autoWalkTurn)
	}
	return held
}

// randomizeAutoWalkTurn chooses a new turn direction and duration.
func (g *Game) randomizeAutoWalkTurn() {
	if g.autoWalkRand == nil {
		g.autoWalkRand = rand.New(rand.NewSource(uint64(time.Now().UnixNano() + 5)))
	}
	g.autoWalkTurn = player.TurnLeft
	if g.autoWalkRand.Intn(2) == 0 {
		g.autoWalkTurn = player.TurnRight
	}
	g.autoWalkFrameCount = autoWalkMinFrames + g.autoWalkRand.Intn(autoWalkFrameRange)
}

// quitRequested reports whether the user pressed Escape or Q, or a quit was
// requested from outside the frame loop.
func (g *Game) quitRequested() bool {
	return g.quit.Load() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

// handleDebugControls processes debug overlay hotkeys.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustViewRange(-viewRangeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustViewRange(viewRangeStep)
	}
}

// adjustViewRange clamps the ray range delta within bounds.
func (s *session) adjustViewRange(delta int) {
	s.player.View += delta
	if s.player.View < minViewRange {
		s.player.View = minViewRange
	} else if s.player.View > maxViewRange {
		s.player.View = maxViewRange
	}
}
