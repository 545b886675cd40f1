package minesweeper

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func fixtureSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(fixtureBoard(t))
}

func TestStartInvalidConfig(t *testing.T) {
	s, err := Start(Config{Rows: 9, Cols: 9, Mines: 81}, 1)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestStartPresets(t *testing.T) {
	for _, d := range []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyExpert} {
		cfg, ok := Preset(d)
		require.True(t, ok)

		s, err := Start(cfg, 99)
		require.NoError(t, err)
		assert.Equal(t, cfg, s.Config())
		assert.Equal(t, int64(99), s.Seed())
		assert.Equal(t, PhaseNotStarted, s.Phase())
		assert.Equal(t, cfg.Mines, s.Snapshot().MinesLeft)
	}
}

func TestPhaseStartsOnFirstReveal(t *testing.T) {
	s := fixtureSession(t)

	_, err := s.SetFlag(core.Pt(0, 0), true)
	require.NoError(t, err)
	assert.Equal(t, PhaseNotStarted, s.Phase(), "flagging must not start the clock")
	assert.False(t, s.Tick(1))
	assert.Zero(t, s.Elapsed())

	// Revealing the flagged cell does nothing but still starts the game.
	out, err := s.Reveal(core.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoop, out)
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestOutOfBoundsBeforePhase(t *testing.T) {
	s := fixtureSession(t)

	_, err := s.Reveal(core.Pt(9, 0))
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, PhaseNotStarted, s.Phase())

	var berr *BoundsError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, core.Pt(9, 0), berr.Point)
	assert.Equal(t, 9, berr.Rows)
	assert.Equal(t, 9, berr.Cols)

	_, err = s.SetFlag(core.Pt(-1, 2), true)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.ToggleFlag(core.Pt(2, -1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.Chord(core.Pt(0, 10))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.Pressed(core.Pt(100, 100))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Out of bounds is still an error once the game is over.
	_, err = s.Reveal(core.Pt(4, 4))
	require.NoError(t, err)
	require.Equal(t, PhaseLost, s.Phase())
	_, err = s.Reveal(core.Pt(-1, -1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestTick(t *testing.T) {
	s := fixtureSession(t)
	_, err := s.Reveal(core.Pt(0, 1))
	require.NoError(t, err)

	for range 50 {
		require.True(t, s.Tick(0.02))
	}
	assert.InDelta(t, 1.0, s.Elapsed(), 1e-9)
	assert.False(t, s.Tick(0))
	assert.False(t, s.Tick(-1))

	_, err = s.Reveal(core.Pt(4, 4))
	require.NoError(t, err)
	elapsed := s.Elapsed()
	assert.False(t, s.Tick(0.02), "clock stops when the game ends")
	assert.Equal(t, elapsed, s.Elapsed())
}

func TestToggleFlag(t *testing.T) {
	s := fixtureSession(t)

	out, err := s.ToggleFlag(core.Pt(3, 3))
	require.NoError(t, err)
	assert.Equal(t, OutcomeFlagged, out)
	out, err = s.ToggleFlag(core.Pt(3, 3))
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnflagged, out)
	assert.Equal(t, 0, s.Board().Flags())
}

func TestObservers(t *testing.T) {
	s := fixtureSession(t)

	var order []string
	var events []Event
	s.Subscribe(ObserverFunc(func(snap Snapshot) {
		order = append(order, "a")
		events = append(events, snap.Event)
	}))
	s.Subscribe(ObserverFunc(func(Snapshot) {
		order = append(order, "b")
	}))

	_, err := s.Reveal(core.Pt(0, 1))
	require.NoError(t, err)
	_, err = s.SetFlag(core.Pt(0, 0), true)
	require.NoError(t, err)
	_, err = s.SetFlag(core.Pt(0, 0), true) // no-op
	require.NoError(t, err)
	out, err := s.Chord(core.Pt(0, 1)) // 1 flag, needs 2
	require.NoError(t, err)
	require.Equal(t, OutcomeChordRejected, out)
	require.True(t, s.Tick(0.5))
	_, err = s.Reveal(core.Pt(8, 8))
	require.NoError(t, err)

	assert.Equal(t, []Event{EventStarted, EventChanged, EventTick, EventLost}, events)
	assert.Equal(t, []string{"a", "b", "a", "b", "a", "b", "a", "b"}, order)
}

func TestSnapshot(t *testing.T) {
	s := fixtureSession(t)

	var got Snapshot
	s.Subscribe(ObserverFunc(func(snap Snapshot) { got = snap }))

	_, err := s.Reveal(core.Pt(0, 1))
	require.NoError(t, err)
	_, err = s.SetFlag(core.Pt(0, 0), true)
	require.NoError(t, err)

	assert.Equal(t, 9, got.Rows)
	assert.Equal(t, 9, got.Cols)
	assert.Equal(t, PhasePlaying, got.Phase)
	assert.Equal(t, 5, got.TotalMines)
	assert.Equal(t, 1, got.Flags)
	assert.Equal(t, 4, got.MinesLeft)
	assert.Equal(t, 1, got.Opened)
	assert.Equal(t, CellState{View: ViewNumber, Adjacent: 2}, got.At(0, 1))
	assert.Equal(t, ViewFlag, got.At(0, 0).View)
	assert.Equal(t, ViewCovered, got.At(5, 5).View)
	assert.Equal(t, 0, got.At(5, 5).Adjacent, "covered cells hide their count")
	assert.Equal(t, CellState{}, got.At(-1, 0))
	assert.Equal(t, got.Cells, s.Snapshot().Cells)
}

func TestWonEvent(t *testing.T) {
	s := fixtureSession(t)

	var final Snapshot
	s.Subscribe(ObserverFunc(func(snap Snapshot) {
		if snap.Event == EventWon {
			final = snap
		}
	}))

	b := s.Board()
	for i, c := range b.cells {
		if c.mined {
			continue
		}
		_, err := s.Reveal(b.point(i))
		require.NoError(t, err)
		s.Tick(0.1)
	}

	assert.Equal(t, PhaseWon, s.Phase())
	assert.Equal(t, PhaseWon, final.Phase)
	assert.Positive(t, final.Elapsed)
	assert.Equal(t, s.Elapsed(), final.Elapsed)
	assert.Equal(t, 0, final.MinesLeft)
	for _, p := range fixtureMines {
		assert.Equal(t, ViewFlag, final.At(p.Row, p.Col).View)
	}
}

func TestPressed(t *testing.T) {
	s := fixtureSession(t)

	_, err := s.Reveal(core.Pt(0, 1))
	require.NoError(t, err)
	_, err = s.SetFlag(core.Pt(0, 0), true)
	require.NoError(t, err)

	pts, err := s.Pressed(core.Pt(0, 1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.Point{
		core.Pt(0, 2), core.Pt(1, 0), core.Pt(1, 1), core.Pt(1, 2),
	}, pts)

	pts, err = s.Pressed(core.Pt(8, 8))
	require.NoError(t, err)
	assert.Len(t, pts, 4, "covered target is pressed along with its 3 neighbors")

	_, err = s.Reveal(core.Pt(8, 8))
	require.NoError(t, err)
	pts, err = s.Pressed(core.Pt(5, 5))
	require.NoError(t, err)
	assert.Empty(t, pts, "nothing is pressed after the game ends")
}

func TestTickConcurrentWithMoves(t *testing.T) {
	s := fixtureSession(t)
	_, err := s.Reveal(core.Pt(0, 1))
	require.NoError(t, err)

	var ticks int
	s.Subscribe(ObserverFunc(func(snap Snapshot) {
		if snap.Event == EventTick {
			ticks++
		}
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 100 {
			s.Tick(0.01)
		}
	}()
	for col := 3; col < 9; col++ {
		_, err := s.ToggleFlag(core.Pt(6, col))
		require.NoError(t, err)
	}
	wg.Wait()

	assert.Equal(t, 100, ticks)
	assert.InDelta(t, 1.0, s.Elapsed(), 1e-9)
	assert.Equal(t, 6, s.Board().Flags())
}
