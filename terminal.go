package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"raycaster/internal/config"
	"raycaster/internal/player"
	"raycaster/internal/raycast"
	"raycaster/internal/view"
)

var (
	termSkyStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)
	termFloorStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	termHUDStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// termShades lists wall glyphs from nearest to farthest.
var termShades = []rune{'█', '▓', '▒', '░'}

// terminalView draws a session into a tcell screen. Terminals report key
// presses but not releases, so a command stays held for termKeyHold after
// its last press.
type terminalView struct {
	*session
	screen     tcell.Screen
	tps        int
	baseHeight float64
	pressed    map[player.Command]time.Time
}

// runTerminal drives the session in the terminal until the user quits or
// ctx is cancelled.
func runTerminal(ctx context.Context, cfg *config.Config, s *session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	tv := &terminalView{
		session:    s,
		screen:     screen,
		tps:        cfg.Render.TPS,
		baseHeight: float64(cfg.Screen.Height),
		pressed:    make(map[player.Command]time.Time),
	}
	w, _ := screen.Size()
	tv.sampler.Columns = w

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tv.tps))
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !tv.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			tv.player.Held = tv.heldCommands(now)
			tv.step(dt)
			tv.draw()
		}
	}
}

// handleEvent records key presses and resizes. It returns false on quit.
func (tv *terminalView) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, _ := ev.Size()
		tv.sampler.Columns = w
		tv.screen.Sync()
	case *tcell.EventKey:
		now := time.Now()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			tv.pressed[player.Forward] = now
		case tcell.KeyDown:
			tv.pressed[player.Backward] = now
		case tcell.KeyLeft:
			tv.pressed[player.TurnLeft] = now
		case tcell.KeyRight:
			tv.pressed[player.TurnRight] = now
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				tv.pressed[player.Forward] = now
			case 's':
				tv.pressed[player.Backward] = now
			case 'a':
				tv.pressed[player.TurnLeft] = now
			case 'd':
				tv.pressed[player.TurnRight] = now
			case '+', '=':
				tv.adjustViewRange(viewRangeStep)
			case '-':
				tv.adjustViewRange(-viewRangeStep)
			}
		}
	}
	return true
}

// heldCommands returns the commands pressed within termKeyHold of now.
func (tv *terminalView) heldCommands(now time.Time) player.Commands {
	var held player.Commands
	for c, at := range tv.pressed {
		held.Set(c, now.Sub(at) <= termKeyHold)
	}
	return held
}

// draw renders one frame of wall slices with shaded block glyphs.
func (tv *terminalView) draw() {
	w, h := tv.screen.Size()
	rows := float64(h)
	wallHeight := tv.wallHeight * rows / tv.baseHeight
	for i := 0; i < w; i++ {
		x := w - 1 - i
		top, bottom := h, h
		var glyph rune
		var style tcell.Style
		if i < len(tv.hits) {
			hit := tv.hits[i]
			if sl, ok := view.ColumnSlice(hit, rows, wallHeight); ok {
				top = int(sl.Top)
				bottom = int(sl.Bottom())
				glyph, style = termWallCell(hit, tv.player.View)
			}
		}
		for y := 0; y < h; y++ {
			switch {
			case y >= top && y < bottom:
				tv.screen.SetContent(x, y, glyph, nil, style)
			case y >= h/2:
				tv.screen.SetContent(x, y, '.', nil, termFloorStyle)
			default:
				tv.screen.SetContent(x, y, ' ', nil, termSkyStyle)
			}
		}
	}
	if *debugFlag {
		msg := fmt.Sprintf("pos %.2f,%.2f  view %d  sweep %s", tv.player.X, tv.player.Y, tv.player.View, tv.lastSweep.Round(time.Microsecond))
		for i, r := range []rune(msg) {
			if i >= w {
				break
			}
			tv.screen.SetContent(i, 0, r, nil, termHUDStyle)
		}
	}
	tv.screen.Show()
}

// termWallCell picks a glyph by distance and a colour by side.
func termWallCell(hit raycast.Hit, viewRange int) (rune, tcell.Style) {
	idx := 0
	if viewRange > 0 {
		idx = int(hit.Distance / float64(viewRange) * float64(len(termShades)))
	}
	idx = clampCoord(idx, 0, len(termShades)-1)
	c := view.Shade(wallColor, hit.Side, sideShade)
	style := tcell.StyleDefault.Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	return termShades[idx], style
}
