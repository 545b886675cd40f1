package minesweeper

// CellView is how a cell should be drawn.
type CellView int

const (
	ViewCovered   CellView = iota // Unopened
	ViewNumber                    // Opened safe cell; Adjacent holds the count (0 = empty)
	ViewFlag                      // Flagged (including correct flags after defeat)
	ViewMine                      // Mine uncovered at defeat
	ViewFalseFlag                 // Safe cell that was flagged at defeat
	ViewExploded                  // The mine that was clicked
)

// Event tells observers why they were notified.
type Event int

const (
	EventNone    Event = iota
	EventStarted       // First reveal of the game
	EventChanged       // Board changed
	EventTick          // Timer advanced
	EventWon
	EventLost
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventStarted:
		return "Started"
	case EventChanged:
		return "Changed"
	case EventTick:
		return "Tick"
	case EventWon:
		return "Won"
	case EventLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// CellState is the render state of one cell.
type CellState struct {
	View     CellView
	Adjacent int
}

// Snapshot captures everything a presentation layer needs to draw the game.
// Cells is shared between snapshots and must be treated as read-only.
type Snapshot struct {
	Rows, Cols int
	Cells      []CellState // Row-major
	Phase      Phase
	TotalMines int
	Flags      int
	MinesLeft  int
	Opened     int
	Elapsed    float64
	Event      Event
}

// At returns the render state at (row, col).
func (s Snapshot) At(row, col int) CellState {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return CellState{}
	}
	return s.Cells[row*s.Cols+col]
}

func viewOf(c Cell) CellView {
	switch {
	case c.exploded:
		return ViewExploded
	case c.falseFlag:
		return ViewFalseFlag
	case c.flagged:
		return ViewFlag
	case c.revealed && c.mined:
		return ViewMine
	case c.revealed:
		return ViewNumber
	default:
		return ViewCovered
	}
}

func snapshotOf(b *Board) Snapshot {
	cells := make([]CellState, len(b.cells))
	for i, c := range b.cells {
		cells[i] = CellState{View: viewOf(c)}
		if cells[i].View == ViewNumber {
			cells[i].Adjacent = c.Adjacent()
		}
	}
	return Snapshot{
		Rows:       b.rows,
		Cols:       b.cols,
		Cells:      cells,
		TotalMines: b.totalMines,
		Flags:      b.flags,
		MinesLeft:  b.MinesLeft(),
		Opened:     b.Opened(),
	}
}

// Observer receives a snapshot after every state change of a Session.
type Observer interface {
	Notify(Snapshot)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Snapshot)

// Notify calls f(s).
func (f ObserverFunc) Notify(s Snapshot) { f(s) }
