package minesweeper

import "github.com/vovakirdan/tui-mines/internal/core"

// Outcome describes what an intent did to the board.
type Outcome int

const (
	OutcomeNoop          Outcome = iota // Nothing changed
	OutcomeRevealed                     // One or more cells opened
	OutcomeFlagged                      // A flag was placed
	OutcomeUnflagged                    // A flag was removed
	OutcomeChordRejected                // Flag count did not match the number
	OutcomeWon                          // The intent won the game
	OutcomeLost                         // The intent detonated a mine
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoop:
		return "Noop"
	case OutcomeRevealed:
		return "Revealed"
	case OutcomeFlagged:
		return "Flagged"
	case OutcomeUnflagged:
		return "Unflagged"
	case OutcomeChordRejected:
		return "ChordRejected"
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Mutated reports whether the board changed.
func (o Outcome) Mutated() bool {
	switch o {
	case OutcomeRevealed, OutcomeFlagged, OutcomeUnflagged, OutcomeWon, OutcomeLost:
		return true
	}
	return false
}

type engineState int

const (
	engineActive engineState = iota
	engineWon
	engineLost
)

// Engine applies reveal, flag and chord moves to a Board and decides
// when the game is won or lost. Once either happens every further move
// is a no-op.
type Engine struct {
	board *Board
	state engineState
}

// NewEngine wraps a board.
func NewEngine(b *Board) *Engine {
	return &Engine{board: b}
}

// Board returns the board the engine mutates.
func (e *Engine) Board() *Board { return e.board }

// Over reports whether the game has ended.
func (e *Engine) Over() bool { return e.state != engineActive }

// Won reports whether the game ended in victory.
func (e *Engine) Won() bool { return e.state == engineWon }

// Lost reports whether a mine was detonated.
func (e *Engine) Lost() bool { return e.state == engineLost }

// Reveal opens the cell at p. Flagged and already revealed cells are left
// alone. A zero cell floods outwards until numbered cells bound it.
func (e *Engine) Reveal(p core.Point) (Outcome, error) {
	if !e.board.InBounds(p) {
		return OutcomeNoop, e.board.boundsError(p)
	}
	if e.Over() {
		return OutcomeNoop, nil
	}
	return e.open(e.board.index(p)), nil
}

// open applies the reveal rules to one cell and judges the result.
func (e *Engine) open(i int) Outcome {
	c := &e.board.cells[i]
	if c.flagged || c.revealed {
		return OutcomeNoop
	}
	if c.mined {
		e.explode(i)
		return OutcomeLost
	}

	e.flood(i)
	if e.judge() {
		return OutcomeWon
	}
	return OutcomeRevealed
}

// flood reveals a safe cell and, if it has no mined neighbors, every cell
// reachable through other zero cells. Uses an explicit stack so board size
// never affects call depth.
func (e *Engine) flood(start int) {
	b := e.board
	b.reveal(start)
	if b.cells[start].adjacent != 0 {
		return
	}

	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range b.Neighbors(b.point(cur)) {
			j := b.index(n)
			nc := &b.cells[j]
			if nc.revealed || nc.flagged || nc.mined {
				continue
			}
			b.reveal(j)
			if nc.adjacent == 0 {
				stack = append(stack, j)
			}
		}
	}
}

// SetFlag places or removes a flag at p. Revealed cells cannot be flagged,
// and asking for the state the cell is already in does nothing.
func (e *Engine) SetFlag(p core.Point, flagged bool) (Outcome, error) {
	if !e.board.InBounds(p) {
		return OutcomeNoop, e.board.boundsError(p)
	}
	if e.Over() {
		return OutcomeNoop, nil
	}
	if !e.board.setFlag(e.board.index(p), flagged) {
		return OutcomeNoop, nil
	}
	if !flagged {
		return OutcomeUnflagged, nil
	}
	if e.judge() {
		return OutcomeWon, nil
	}
	return OutcomeFlagged, nil
}

// Chord opens every unflagged neighbor of a revealed number once the
// player has placed as many flags around it as the number says.
// A wrongly placed flag can make the chord detonate a mine.
func (e *Engine) Chord(p core.Point) (Outcome, error) {
	b := e.board
	if !b.InBounds(p) {
		return OutcomeNoop, b.boundsError(p)
	}
	if e.Over() {
		return OutcomeNoop, nil
	}
	c := b.cells[b.index(p)]
	if !c.revealed {
		return OutcomeNoop, nil
	}

	neighbors := b.Neighbors(p)
	flags := 0
	for _, n := range neighbors {
		if b.cells[b.index(n)].flagged {
			flags++
		}
	}
	if flags != int(c.adjacent) {
		return OutcomeChordRejected, nil
	}

	result := OutcomeNoop
	for _, n := range neighbors {
		switch out := e.open(b.index(n)); out {
		case OutcomeWon, OutcomeLost:
			return out, nil
		case OutcomeRevealed:
			result = OutcomeRevealed
		}
	}
	return result, nil
}

// judge checks the win rules and finishes the game if one holds.
//
// The secondary rule additionally demands that every flag sits on a mine.
// It is implied by the primary rule but kept as the anti-guessing policy.
func (e *Engine) judge() bool {
	b := e.board
	primary := b.remaining == b.totalMines
	secondary := b.flaggedMines == b.totalMines &&
		b.flags == b.totalMines &&
		b.remaining == b.totalMines
	if !primary && !secondary {
		return false
	}
	e.win()
	return true
}

// win ends the game and flags every mine the player left unmarked.
func (e *Engine) win() {
	e.state = engineWon
	b := e.board
	for i := range b.cells {
		if b.cells[i].mined {
			b.setFlag(i, true)
		}
	}
}

// explode ends the game on the mine at i and uncovers the board:
// unflagged mines are revealed, wrong flags are lifted and marked,
// correct flags stay in place.
func (e *Engine) explode(i int) {
	e.state = engineLost
	b := e.board
	b.cells[i].exploded = true
	b.reveal(i)

	for j := range b.cells {
		c := &b.cells[j]
		switch {
		case c.mined && !c.flagged:
			b.reveal(j)
		case !c.mined && c.flagged:
			b.setFlag(j, false)
			c.falseFlag = true
			b.reveal(j)
		}
	}
}
