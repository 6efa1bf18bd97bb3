package blockdoku

import (
	"fmt"

	"github.com/vovakirdan/tui-blockdoku/internal/core"
	bcore "github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
)

const (
	boardW    = bcore.Size*2 + 4 // two chars per cell, box separators and borders
	boardH    = bcore.Size + 4
	slotWidth = 12
	minWidth  = 40
	minHeight = 24
)

// shapeColors maps tray colors onto screen colors.
var shapeColors = map[bcore.Color]core.Color{
	bcore.ColorPurple:  core.ColorPurple,
	bcore.ColorBlue:    core.ColorBlue,
	bcore.ColorCyan:    core.ColorCyan,
	bcore.ColorGreen:   core.ColorGreen,
	bcore.ColorYellow:  core.ColorYellow,
	bcore.ColorOrange:  core.ColorOrange,
	bcore.ColorRed:     core.ColorRed,
	bcore.ColorMagenta: core.ColorMagenta,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bx := (g.screenW - boardW) / 2
	by := 2

	g.renderHUD(dst, bx)
	g.renderGrid(dst, bx, by)
	g.renderCells(dst, bx, by)
	g.renderSlots(dst, by+boardH+1)
	dst.DrawTextColored(0, g.screenH-1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, bx+boardW/2, by+boardH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
}

func (g *Game) renderHUD(dst *core.Screen, bx int) {
	dst.DrawTextColored(bx, 0, "BLOCKDOKU", core.ColorPurple)
	score := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawText(bx+boardW-len(score), 0, score)
	if g.message != "" {
		dst.DrawTextColored(bx, 1, g.message, core.ColorYellow)
		return
	}
	dst.DrawTextColored(bx, 1, g.session.Difficulty().String(), core.ColorGray)
}

// renderGrid draws the outer border and the 3x3 box separators.
func (g *Game) renderGrid(dst *core.Screen, bx, by int) {
	last := boardW - 1
	for y := 0; y < boardH; y++ {
		rowSep := y == 0 || y == 4 || y == 8 || y == boardH-1
		for x := 0; x <= last; x++ {
			colSep := x == 0 || x == 7 || x == 14 || x == last
			var r rune
			switch {
			case rowSep && colSep:
				r = junction(x == 0, x == last, y == 0, y == boardH-1)
			case rowSep:
				r = '─'
			case colSep:
				r = '│'
			default:
				continue
			}
			dst.SetColored(bx+x, by+y, r, core.ColorGray)
		}
	}
}

func junction(left, right, top, bottom bool) rune {
	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case left:
		return '├'
	case right:
		return '┤'
	default:
		return '┼'
	}
}

// cellPos returns the screen position of the left half of a board cell.
func cellPos(bx, by, row, col int) (int, int) {
	return bx + 1 + col*2 + col/bcore.BoxSize, by + 1 + row + row/bcore.BoxSize
}

func (g *Game) renderCells(dst *core.Screen, bx, by int) {
	cells := g.session.Cells()
	for idx, cell := range cells {
		row, col := bcore.RowCol(idx)
		x, y := cellPos(bx, by, row, col)
		text, color := cellGlyph(cell)
		dst.DrawTextColored(x, y, text, color)
	}

	for _, idx := range g.flash {
		row, col := bcore.RowCol(idx)
		x, y := cellPos(bx, by, row, col)
		dst.DrawTextColored(x, y, "░░", core.ColorBrightGreen)
	}

	if g.session.State() == bcore.StateGameOver {
		return
	}

	preview, ok := g.session.Preview(g.selected, g.cursorRow, g.cursorCol)
	if len(preview) == 0 {
		x, y := cellPos(bx, by, g.cursorRow, g.cursorCol)
		dst.DrawTextColored(x, y, "[]", core.ColorWhite)
		return
	}
	color := core.ColorGreen
	if !ok {
		color = core.ColorBrightRed
	}
	for _, idx := range preview {
		row, col := bcore.RowCol(idx)
		x, y := cellPos(bx, by, row, col)
		dst.DrawTextColored(x, y, "▒▒", color)
	}
}

func cellGlyph(c bcore.Cell) (string, core.Color) {
	switch c.Kind {
	case bcore.CellFilled:
		return "██", core.ColorPurple
	case bcore.CellBomb:
		return fmt.Sprintf("%2d", c.Timer), bandColor(bcore.BandFor(c.Timer))
	case bcore.CellExploded:
		return "××", core.ColorGray
	default:
		return "· ", core.ColorDim
	}
}

func bandColor(b bcore.TimerBand) core.Color {
	switch b {
	case bcore.BandDanger:
		return core.ColorBrightRed
	case bcore.BandWarning:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// renderSlots draws the shape tray below the board.
func (g *Game) renderSlots(dst *core.Screen, y int) {
	slots := g.session.Slots()
	sx := (g.screenW - len(slots)*slotWidth) / 2
	for i, shape := range slots {
		x := sx + i*slotWidth
		label := core.ColorGray
		if i == g.selected {
			label = core.ColorWhite
		}
		dst.DrawTextColored(x, y, fmt.Sprintf("[%d]", i+1), label)

		if shape.IsZero() {
			dst.DrawTextColored(x+4, y, "--", core.ColorDim)
			continue
		}
		color := shapeColors[shape.Color()]
		for _, off := range shape.Cells() {
			dst.DrawTextColored(x+off.Col*2, y+1+off.Row, "██", color)
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}
	if g.session.State() == bcore.StateGameOver {
		score := fmt.Sprintf("Score: %d", g.session.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", score, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows Move | 1-3/Tab Slot | Enter Place | P Pause | R Restart | Q Quit"
}
