package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raycaster/internal/gridmap"
	"raycaster/internal/view"
)

// Draw renders the wall slices, the optional minimap and the debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	sw, sh := float32(g.screenW), float32(g.screenH)
	vector.DrawFilledRect(screen, 0, sh/2, sw, sh/2, floorColor, false)
	g.drawSlices(screen)

	if *showMapFlag {
		g.drawMinimap(screen)
	}

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		sweepMS := g.lastSweep.Seconds() * 1000
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nSweep: %.2f ms (%d rays)\nPos: %.2f, %.2f dir %.0f deg\nView: %d cells (+/-)",
			fps, tps, sweepMS, len(g.hits), g.player.X, g.player.Y, g.player.Direction*180/math.Pi, g.player.View)
		ebitenutil.DebugPrintAt(screen, debugMsg, g.screenW-220, 0)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.screenW, g.screenH }

// drawSlices draws one vertical wall slice per hit.
func (g *Game) drawSlices(screen *ebiten.Image) {
	screenW, screenH := float64(g.screenW), float64(g.screenH)
	for i, hit := range g.hits {
		sl, ok := view.ColumnSlice(hit, screenH, g.wallHeight)
		if !ok {
			continue
		}
		x, width := view.ColumnX(i, len(g.hits), screenW)
		vector.DrawFilledRect(screen, float32(x), float32(sl.Top), float32(math.Max(width, 1)), float32(sl.Height), view.Shade(wallColor, hit.Side, sideShade), false)
	}
}

// drawMinimap renders the grid, sample rays and the player marker in the
// top-left corner.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	occlude := *occludeLineOfSightFlag && len(g.visibleStamp) == g.grid.Width()*g.grid.Height()
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			if occlude && g.visibleStamp[y*g.grid.Width()+x] != g.visibleGen {
				continue
			}
			px := float32(minimapMargin + x*minimapCell)
			py := float32(minimapMargin + y*minimapCell)
			switch g.grid.CellState(x, y) {
			case gridmap.Wall:
				vector.DrawFilledRect(screen, px, py, minimapCell, minimapCell, mapWallColor, false)
			case gridmap.Food:
				vector.DrawFilledRect(screen, px, py, minimapCell, minimapCell, mapFloorColor, false)
				vector.DrawFilledCircle(screen, px+minimapCell/2, py+minimapCell/2, 1, mapFoodColor, false)
			case gridmap.BigFood:
				vector.DrawFilledRect(screen, px, py, minimapCell, minimapCell, mapFloorColor, false)
				vector.DrawFilledCircle(screen, px+minimapCell/2, py+minimapCell/2, minimapCell/3, mapFoodColor, false)
			default:
				vector.DrawFilledRect(screen, px, py, minimapCell, minimapCell, mapFloorColor, false)
			}
		}
	}

	cx, cy := g.minimapPoint(g.player.X, g.player.Y)
	for i := 0; i < len(g.hits); i += minimapRayStride {
		hit := g.hits[i]
		if !hit.OK() {
			continue
		}
		angle := g.sampler.RayAngle(*g.player, i)
		raw := hit.Distance / math.Cos(math.Abs(g.player.Direction-angle))
		hx, hy := g.minimapPoint(g.player.X+raw*math.Sin(angle), g.player.Y+raw*math.Cos(angle))
		drawLine(screen, cx, cy, hx, hy, mapRayColor)
	}

	for _, off := range markerFootprint {
		screen.Set(cx+off.dx, cy+off.dy, markerColor)
	}
	ox, oy := g.headingOffset(minimapCell * 1.5)
	drawLine(screen, cx, cy, cx+ox, cy+oy, headingColor)
}

// minimapPoint converts map coordinates into minimap pixels.
func (g *Game) minimapPoint(x, y float64) (int, int) {
	return minimapMargin + int(x*minimapCell), minimapMargin + int(y*minimapCell)
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	b := screen.Bounds()
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= b.Min.X && x0 < b.Max.X && y0 >= b.Min.Y && y0 < b.Max.Y {
			screen.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
