package minesweeper

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// offsets are the 8 compass directions around a cell.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a rectangular minefield plus cached aggregate counters.
// Cells are stored in row-major order: index = row*cols + col.
type Board struct {
	rows, cols int
	cells      []Cell

	totalMines   int
	remaining    int // Cells with revealed == false
	flags        int
	flaggedMines int
}

func newBoard(rows, cols int) *Board {
	return &Board{
		rows:      rows,
		cols:      cols,
		cells:     make([]Cell, rows*cols),
		remaining: rows * cols,
	}
}

// Generate builds a board with cfg.Mines mines placed uniformly at random.
// The same seed always yields the same board.
func Generate(cfg Config, seed int64) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := newBoard(cfg.Rows, cfg.Cols)
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))

	// Partial Fisher-Yates: draw from the unplaced pool [0, upper),
	// move the pick to the end of the pool and shrink it.
	pool := make([]int, len(b.cells))
	for i := range pool {
		pool[i] = i
	}
	for upper := len(pool); upper > len(pool)-cfg.Mines; upper-- {
		j := rng.IntN(upper)
		pool[j], pool[upper-1] = pool[upper-1], pool[j]
		b.placeMine(pool[upper-1])
	}

	return b, nil
}

// Layout builds a board with mines at exactly the given positions.
func Layout(rows, cols int, mines []core.Point) (*Board, error) {
	cfg := Config{Rows: rows, Cols: cols, Mines: len(mines)}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := newBoard(rows, cols)
	for _, p := range mines {
		if !b.InBounds(p) {
			return nil, &ConfigError{Config: cfg, Reason: fmt.Sprintf("mine %v outside the board", p)}
		}
		if !b.placeMine(b.index(p)) {
			return nil, &ConfigError{Config: cfg, Reason: fmt.Sprintf("duplicate mine %v", p)}
		}
	}
	return b, nil
}

// placeMine marks a cell mined and bumps the counts of its safe neighbors.
// Returns false if the cell already held a mine.
func (b *Board) placeMine(i int) bool {
	c := &b.cells[i]
	if c.mined {
		return false
	}
	c.mined = true
	c.adjacent = 0
	b.totalMines++

	for _, n := range b.Neighbors(b.point(i)) {
		nc := &b.cells[b.index(n)]
		// A mine's own count is never maintained.
		if !nc.mined {
			nc.adjacent++
		}
	}
	return true
}

func (b *Board) index(p core.Point) int {
	return p.Row*b.cols + p.Col
}

func (b *Board) point(i int) core.Point {
	return core.Pt(i/b.cols, i%b.cols)
}

func (b *Board) boundsError(p core.Point) error {
	return &BoundsError{Point: p, Rows: b.rows, Cols: b.cols}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Config returns the dimensions and mine count of the board.
func (b *Board) Config() Config {
	return Config{Rows: b.rows, Cols: b.cols, Mines: b.totalMines}
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p core.Point) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Cell returns a copy of the cell at p. Out-of-bounds positions
// return the zero Cell.
func (b *Board) Cell(p core.Point) Cell {
	if !b.InBounds(p) {
		return Cell{}
	}
	return b.cells[b.index(p)]
}

// Neighbors returns the in-bounds positions among the 8 around p.
func (b *Board) Neighbors(p core.Point) []core.Point {
	out := make([]core.Point, 0, len(offsets))
	for _, d := range offsets {
		n := p.Add(d[0], d[1])
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// TotalMines returns the number of mines on the board.
func (b *Board) TotalMines() int { return b.totalMines }

// Remaining returns the number of unrevealed cells, mined or not.
func (b *Board) Remaining() int { return b.remaining }

// Flags returns the number of flags placed.
func (b *Board) Flags() int { return b.flags }

// FlaggedMines returns the number of flags sitting on mines.
func (b *Board) FlaggedMines() int { return b.flaggedMines }

// MinesLeft is the counter shown to the player: mines minus flags.
// It goes negative when the player over-flags.
func (b *Board) MinesLeft() int { return b.totalMines - b.flags }

// Opened returns the number of safe cells revealed so far.
func (b *Board) Opened() int {
	n := 0
	for _, c := range b.cells {
		if c.revealed && !c.mined {
			n++
		}
	}
	return n
}

// reveal opens a cell and keeps remaining exact.
func (b *Board) reveal(i int) bool {
	c := &b.cells[i]
	if c.revealed || c.flagged {
		return false
	}
	c.revealed = true
	b.remaining--
	return true
}

// setFlag places or removes a flag and updates the flag counters.
func (b *Board) setFlag(i int, flagged bool) bool {
	c := &b.cells[i]
	if c.revealed || c.flagged == flagged {
		return false
	}
	c.flagged = flagged

	delta := 1
	if !flagged {
		delta = -1
	}
	b.flags += delta
	if c.mined {
		b.flaggedMines += delta
	}
	return true
}
