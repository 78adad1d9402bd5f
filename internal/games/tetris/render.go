package tetris

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/vovakirdan/termtris/internal/core"
	engine "github.com/vovakirdan/termtris/internal/tetris"
)

// Layout, in screen columns/rows.
const (
	cellWidth = 2  // Each grid cell is drawn two columns wide to look square
	panelGap  = 2  // Space between the board and the side panel
	panelW    = 14 // Side panel width
	panelH    = 19 // NEXT box plus three stat blocks and mode
	previewW  = engine.BitmapWidth*cellWidth + 2
	previewH  = engine.BitmapWidth + 2
)

// Glyphs
const (
	blockChar = '█'
	wallChar  = '▒'
	emptyChar = '·'
	flashChar = '░'
)

// kindColors is the fixed palette for the seven shapes.
var kindColors = map[engine.Kind]core.Color{
	engine.KindI: core.ColorCyan,
	engine.KindJ: core.ColorBlue,
	engine.KindL: core.ColorOrange,
	engine.KindO: core.ColorYellow,
	engine.KindS: core.ColorGreen,
	engine.KindZ: core.ColorRed,
	engine.KindT: core.ColorMagenta,
}

// KindColor returns the display color of a shape.
func KindColor(k engine.Kind) core.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return core.ColorWhite
}

// ActiveColor returns the color used for a shape while it is falling. Orange
// has no bright variant, so the L piece keeps its color.
func ActiveColor(k engine.Kind) core.Color {
	return KindColor(k).Bright()
}

// minScreenSize returns the smallest screen that fits board, panel, title
// and controls line.
func (g *Game) minScreenSize() (int, int) {
	w, h := engine.DefaultWidth, engine.DefaultHeight
	if g.board != nil {
		w, h = g.board.Width(), g.board.Height()
	}
	return w*cellWidth + panelGap + panelW, max(h, panelH) + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.board.Width() * cellWidth
	boardH := g.board.Height()
	totalW := boardW + panelGap + panelW
	_, totalH := g.minScreenSize()

	originX := max(0, (g.screenW-totalW)/2)
	originY := max(0, (g.screenH-totalH)/2)
	boardY := originY + 1

	title := "T E R M T R I S"
	dst.DrawTextColor(originX+(boardW-len(title))/2, originY, title, core.ColorBrightWhite)

	g.renderBoard(dst, originX, boardY)
	g.renderPanel(dst, originX+boardW+panelGap, boardY)

	controls := g.Controls()
	if len(controls) <= g.screenW {
		dst.DrawTextColor((g.screenW-len(controls))/2, originY+totalH-1, controls, core.ColorGray)
	}

	g.renderOverlays(dst, originX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws every grid cell, walls included.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	w, h := g.board.Width(), g.board.Height()
	active, falling := g.board.Active()

	for row := range h {
		flashing := g.phase == PhaseClearing && slices.Contains(g.clearedRows, row)

		for col := range w {
			x := x0 + col*cellWidth
			y := y0 + row
			v := g.board.Cell(row, col)

			switch {
			case v == engine.CellWall:
				dst.SetRun(x, y, cellWidth, wallChar, core.ColorGray)
			case flashing:
				dst.SetRun(x, y, cellWidth, flashChar, core.ColorBrightWhite)
			case v == engine.CellEmpty:
				dst.SetColor(x+1, y, emptyChar, core.ColorGray)
			default:
				c := core.ColorWhite
				if falling && v == active.ID {
					c = ActiveColor(active.Kind)
				} else if k, ok := g.board.KindOf(v); ok {
					c = KindColor(k)
				}
				dst.SetRun(x, y, cellWidth, blockChar, c)
			}
		}
	}
}

// renderPanel draws the next-piece preview and the stats.
func (g *Game) renderPanel(dst *core.Screen, x0, y0 int) {
	dst.DrawText(x0, y0, "NEXT")
	box := core.NewRect(x0, y0+1, previewW, previewH)
	dst.DrawBoxColor(box, core.ColorGray)

	next := g.board.Next()
	color := KindColor(next.Kind)
	inner := box.Inner(1)
	for by := range engine.BitmapWidth {
		for bx := range engine.BitmapWidth {
			if !next.Bitmap.At(bx, by) {
				continue
			}
			x := inner.X + bx*cellWidth
			y := inner.Y + by
			dst.SetRun(x, y, cellWidth, blockChar, color)
		}
	}

	y := box.Bottom() + 1
	stats := []struct {
		label string
		value string
	}{
		{"SCORE", strconv.Itoa(g.score)},
		{"LINES", strconv.Itoa(g.lines)},
		{"LEVEL", strconv.Itoa(g.level)},
		{"MODE", g.Title()},
	}
	for _, s := range stats {
		dst.DrawTextColor(x0, y, s.label, core.ColorGray)
		dst.DrawTextColor(x0, y+1, s.value, core.ColorBrightWhite)
		y += 3
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.phase == PhaseGameOver {
		scoreStr := fmt.Sprintf("Score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredRect(centerX, centerY, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawTextColor(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
