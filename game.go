package main

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raycaster/internal/config"
	"raycaster/internal/gridmap"
	"raycaster/internal/logging"
	"raycaster/internal/metrics"
	"raycaster/internal/player"
	"raycaster/internal/raycast"
	"raycaster/internal/view"
)

// session is the frame state shared by the window and terminal front ends:
// the map, the player, and the hits of the latest sweep.
type session struct {
	grid    *gridmap.GridMap
	player  *player.Player
	sampler *view.Sampler
	hits    []raycast.Hit

	wallHeight float64
	metrics    *metrics.FrameMetrics
	log        *logrus.Entry

	lastSweep    time.Duration
	lastSweepLog time.Time
}

// newSession places a player on the map's start cell.
func newSession(cfg *config.Config, grid *gridmap.GridMap, fm *metrics.FrameMetrics) *session {
	start := grid.Start()
	p := player.New(float64(start.X)+0.5, float64(start.Y)+0.5, cfg.Player.DirectionRadians(),
		player.WithFOV(cfg.Player.FOVRadians()),
		player.WithView(cfg.Player.ViewRange),
		player.WithSpeed(cfg.Player.Speed),
		player.WithRotateSpeed(cfg.Player.RotateSpeedRadians()),
	)
	return &session{
		grid:       grid,
		player:     p,
		sampler:    view.NewSampler(cfg.Screen.ColumnCount()),
		wallHeight: cfg.Render.WallHeight,
		metrics:    fm,
		log:        logging.For("frame"),
	}
}

// step advances the player by dt seconds and sweeps the view.
func (s *session) step(dt float64) {
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	s.player.Update(dt, s.grid)

	start := time.Now()
	s.hits = s.sampler.SweepInto(s.hits, *s.player, s.grid)
	s.lastSweep = time.Since(start)

	s.metrics.ObserveSweep(s.lastSweep, s.hits)
	cx, cy := s.player.Cell()
	s.metrics.ObservePlayer(cx, cy)
	s.logSweep()
}

// logSweep emits a periodic debug line with the sweep cost.
func (s *session) logSweep() {
	now := time.Now()
	if now.Sub(s.lastSweepLog) < sweepLogInterval {
		return
	}
	s.lastSweepLog = now
	misses := 0
	for _, h := range s.hits {
		if !h.OK() {
			misses++
		}
	}
	s.log.WithFields(logrus.Fields{
		"columns": len(s.hits),
		"misses":  misses,
		"sweep":   s.lastSweep,
		"x":       s.player.X,
		"y":       s.player.Y,
	}).Debug("sweep")
}

// Game is the ebiten front end.
type Game struct {
	*session

	screenW int
	screenH int
	tps     int

	autoWalk           bool
	autoWalkDeadline   time.Time
	autoWalkRand       randSource
	autoWalkTurn       player.Command
	autoWalkFrameCount int

	visibleStamp []uint32
	visibleGen   uint32
	lastVisCX    int
	lastVisCY    int
	lastVisDir   float64

	quit atomic.Bool
}

// newGame constructs the window front end around s.
func newGame(cfg *config.Config, s *session) *Game {
	g := &Game{
		session: s,
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
		tps:     cfg.Render.TPS,
	}
	g.lastVisCX, g.lastVisCY = -1, -1
	return g
}

// requestQuit ends the game loop on the next tick. It is safe to call from
// any goroutine.
func (g *Game) requestQuit() { g.quit.Store(true) }

// Update reads input, moves the player and sweeps the view.
func (g *Game) Update() error {
	if g.quitRequested() {
		return ebiten.Termination
	}
	g.handleDebugControls()
	g.player.Held = g.heldCommands()
	g.step(1 / float64(g.tps))

	if *showMapFlag && *occludeLineOfSightFlag {
		g.refreshVisibleMask()
	}
	return nil
}
