package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// cellWidth is the number of columns one cell occupies (glyph + gap).
const cellWidth = 2

// layout positions the HUD, board frame and status line on screen.
type layout struct {
	box      core.Rect
	hudY     int
	statusY  int
	cellX    int // Screen x of column 0
	cellY    int // Screen y of row 0
	tooSmall bool
	needW    int
	needH    int
}

func computeLayout(cfg Config, screenW, screenH int) layout {
	boxW := cfg.Cols*cellWidth + 3
	boxH := cfg.Rows + 2
	needW := boxW
	needH := boxH + 2 // HUD above, status below

	l := layout{needW: needW, needH: needH}
	if screenW < needW || screenH < needH {
		l.tooSmall = true
		return l
	}

	x := (screenW - boxW) / 2
	y := (screenH - needH) / 2
	l.hudY = y
	l.box = core.NewRect(x, y+1, boxW, boxH)
	l.statusY = l.box.Bottom()
	l.cellX = x + 2
	l.cellY = y + 2
	return l
}

// Render draws the HUD, the board and a status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.screenW, g.screenH = dst.Width(), dst.Height()
		g.layout = computeLayout(g.cfg, g.screenW, g.screenH)
	}
	l := g.layout
	if l.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d, resize to continue", l.needW, l.needH))
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)
	dst.DrawBox(l.box)
	g.renderBoard(dst, snap)
	g.renderStatus(dst, snap)
}

// renderHUD draws mines left, the face and the timer above the frame.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	l := g.layout
	secs := min(int(snap.Elapsed), 999)

	dst.DrawTextColor(l.box.X, l.hudY, fmt.Sprintf("%03d", snap.MinesLeft), core.ColorRed)
	face := g.face(snap.Phase)
	dst.DrawText(l.box.X+(l.box.W-len(face))/2, l.hudY, face)
	timer := fmt.Sprintf("%03d", secs)
	dst.DrawTextColor(l.box.Right()-len(timer), l.hudY, timer, core.ColorRed)
}

func (g *Game) face(p Phase) string {
	switch {
	case p == PhaseWon:
		return "B)"
	case p == PhaseLost:
		return "X("
	case g.hasPressed:
		return ":o"
	default:
		return ":)"
	}
}

func (g *Game) renderBoard(dst *core.Screen, snap Snapshot) {
	sym := currentSymbols()

	pressed := make(map[core.Point]bool)
	if g.hasPressed {
		pts, _ := g.session.Pressed(g.pressed)
		for _, p := range pts {
			pressed[p] = true
		}
	}
	showCursor := !snap.Phase.Terminal()

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			p := core.Pt(row, col)
			cell := cellGlyph(snap.At(row, col), sym, pressed[p])
			if showCursor && p == g.cursor {
				cell.Reverse = !cell.Reverse
			}
			dst.SetCell(g.layout.cellX+col*cellWidth, g.layout.cellY+row, cell)
		}
	}
}

// cellGlyph picks the rune and color for a cell.
func cellGlyph(cs CellState, sym Symbols, pressed bool) core.Cell {
	switch cs.View {
	case ViewNumber:
		if cs.Adjacent == 0 {
			return core.Cell{Rune: sym.Empty, Color: core.ColorDarkGray}
		}
		return core.Cell{Rune: rune('0' + cs.Adjacent), Color: core.NumberColor(cs.Adjacent)}
	case ViewFlag:
		return core.Cell{Rune: sym.Flag, Color: core.ColorBrightRed}
	case ViewMine:
		return core.Cell{Rune: sym.Mine, Color: core.ColorBrightWhite}
	case ViewFalseFlag:
		return core.Cell{Rune: sym.FalseFlag, Color: core.ColorMagenta}
	case ViewExploded:
		return core.Cell{Rune: sym.Exploded, Color: core.ColorBrightRed, Reverse: true}
	}
	if pressed {
		return core.Cell{Rune: sym.Empty, Color: core.ColorGray}
	}
	return core.Cell{Rune: sym.Covered, Color: core.ColorGray}
}

func (g *Game) renderStatus(dst *core.Screen, snap Snapshot) {
	var msg string
	color := core.ColorDefault
	switch snap.Phase {
	case PhaseNotStarted:
		msg = "Open any cell to start"
	case PhaseWon:
		msg = fmt.Sprintf("Cleared in %.2fs - N for a new game", snap.Elapsed)
		color = core.ColorGreen
	case PhaseLost:
		msg = "Boom! N for a new game"
		color = core.ColorRed
	default:
		return
	}
	x := (dst.Width() - len([]rune(msg))) / 2
	dst.DrawTextColor(x, g.layout.statusY, msg, color)
}
