package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/core"
)

// hudHeight is the number of rows above the board.
const hudHeight = 2

// boardSize returns the board's footprint in screen cells, borders included.
func (g *Game) boardSize() (w, h int) {
	r := BoardRect(0, 0, g.cfg)
	return r.W, r.H
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, _ := g.boardSize()
	board := BoardRect((g.screenW-boardW)/2, hudHeight, g.cfg)

	g.renderHUD(dst, board)
	RenderGrid(dst, g.grid, board, g.cfg)

	if g.paused {
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and status line above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawText(board.X+(board.W-len(title))/2, 0, title)

	values := g.grid.Board()
	info := fmt.Sprintf("Max: %d  Tiles: %d/%d", MaxTile(values), TileCount(values), Cells)
	dst.DrawText(board.X, 1, info)

	if g.lost {
		status := "GRID FULL"
		dst.DrawStyledText(board.Right()-len(status), 1, status, core.Style{Fg: core.ColorRed})
	}
}

// BoardRect returns the area RenderGrid draws into, anchored at (x, y).
func BoardRect(x, y int, cfg config.Config) core.Rect {
	return core.NewRect(x, y, Cols*cfg.Render.TileCols+1, Rows*cfg.Render.TileRows+1)
}

// RenderGrid draws tiles at their pixel positions inside area, then the
// grid lines over them.
func RenderGrid(dst *core.Screen, grid *Grid, area core.Rect, cfg config.Config) {
	geom := grid.Geometry()
	tileCols, tileRows := cfg.Render.TileCols, cfg.Render.TileRows
	background := core.Style{Bg: core.Color(cfg.Palette.Background)}

	dst.FillRect(area, ' ', background)

	for _, t := range grid.Tiles() {
		// Pixel space -> screen cells
		x := area.X + t.X*tileCols/geom.CellWidth
		y := area.Y + t.Y*tileRows/geom.CellHeight
		face := core.NewRect(x+1, y+1, tileCols-1, tileRows-1)

		st := core.Style{
			Fg: core.Color(cfg.Palette.Font),
			Bg: tileColor(cfg.Palette.Tiles, t.Rank()),
		}
		dst.FillRect(face, ' ', st)

		label := strconv.Itoa(t.Value)
		lx := face.X + max((face.W-len(label))/2, 0)
		ly := face.Y + (face.H-1)/2
		dst.DrawStyledText(lx, ly, label, st)
	}

	drawGridLines(dst, area, tileCols, tileRows, core.Style{
		Fg: core.Color(cfg.Palette.Outline),
		Bg: core.Color(cfg.Palette.Background),
	})
}

// tileColor looks up the palette entry for a tile rank, using the last
// entry for anything beyond the palette.
func tileColor(palette []string, rank int) core.Color {
	if len(palette) == 0 {
		return core.ColorDefault
	}
	return core.Color(palette[core.Clamp(rank, 0, len(palette)-1)])
}

// drawGridLines draws the static cell borders.
func drawGridLines(dst *core.Screen, area core.Rect, tileCols, tileRows int, st core.Style) {
	for row := range Rows + 1 {
		dst.DrawHLine(area.X, area.Y+row*tileRows, area.W, core.Cell{Rune: '─', Style: st})
	}
	for col := range Cols + 1 {
		dst.DrawVLine(area.X+col*tileCols, area.Y, area.H, core.Cell{Rune: '│', Style: st})
	}

	// Corners and intersections
	for y := range Rows + 1 {
		for x := range Cols + 1 {
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Cols:
				corner = '┐'
			case y == Rows && x == 0:
				corner = '└'
			case y == Rows && x == Cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(area.X+x*tileCols, area.Y+y*tileRows, core.Cell{Rune: corner, Style: st})
		}
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	centerX, centerY := board.Center()
	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.FillRect(box, ' ', core.Style{})
	dst.DrawBox(box)

	// Draw text
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
