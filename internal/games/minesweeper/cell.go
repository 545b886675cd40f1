package minesweeper

// Cell is the state of one grid position. It is a passive record:
// every mutation goes through Board so the cached counters stay exact.
//
// A cell is never revealed and flagged at the same time, and once
// revealed it stays revealed.
type Cell struct {
	mined     bool
	adjacent  uint8 // Mined neighbors; meaningless when mined
	revealed  bool
	flagged   bool
	exploded  bool // The mine that ended the game
	falseFlag bool // A flag found on a safe cell after defeat
}

// Mined reports whether the cell holds a mine.
func (c Cell) Mined() bool { return c.mined }

// Adjacent returns the number of mined neighbors (0..8).
func (c Cell) Adjacent() int { return int(c.adjacent) }

// Revealed reports whether the cell has been opened.
func (c Cell) Revealed() bool { return c.revealed }

// Flagged reports whether the cell carries a flag.
func (c Cell) Flagged() bool { return c.flagged }

// Exploded reports whether this is the mine that was clicked.
func (c Cell) Exploded() bool { return c.exploded }

// FalseFlag reports whether the cell was wrongly flagged when the game was lost.
func (c Cell) FalseFlag() bool { return c.falseFlag }
