package minesweeper

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Phase is the session-level state.
type Phase int32

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the phase ends the game.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Session is one game: a board, its phase and the elapsed timer.
//
// Reveal, SetFlag, ToggleFlag and Chord must be called from a single
// goroutine. Tick, Phase, Elapsed and Snapshot are safe from any goroutine.
type Session struct {
	engine *Engine
	seed   int64

	phase   atomic.Int32
	elapsed atomic.Uint64 // math.Float64bits of seconds
	last    atomic.Pointer[Snapshot]

	mu        sync.Mutex // Serializes notification
	observers []Observer
}

// Start generates a fresh board and wraps it in a session.
func Start(cfg Config, seed int64) (*Session, error) {
	b, err := Generate(cfg, seed)
	if err != nil {
		return nil, err
	}
	s := NewSession(b)
	s.seed = seed
	return s, nil
}

// NewSession wraps an existing board. The timer starts on the first reveal.
func NewSession(b *Board) *Session {
	s := &Session{engine: NewEngine(b)}
	s.publish(EventNone)
	return s
}

// Board returns the underlying board.
func (s *Session) Board() *Board { return s.engine.board }

// Config returns the board configuration.
func (s *Session) Config() Config { return s.engine.board.Config() }

// Seed returns the seed the board was generated from.
func (s *Session) Seed() int64 { return s.seed }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return Phase(s.phase.Load()) }

// Elapsed returns the seconds on the game clock.
func (s *Session) Elapsed() float64 {
	return math.Float64frombits(s.elapsed.Load())
}

// Snapshot returns the state as of the last change, with the current clock.
func (s *Session) Snapshot() Snapshot {
	snap := *s.last.Load()
	snap.Phase = s.Phase()
	snap.Elapsed = s.Elapsed()
	return snap
}

// Subscribe registers an observer. Observers are notified synchronously
// in registration order and must not call back into the session.
func (s *Session) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Reveal opens the cell at p. The first in-bounds reveal of a fresh
// session starts the timer, even if it opens nothing.
func (s *Session) Reveal(p core.Point) (Outcome, error) {
	if !s.Board().InBounds(p) {
		return OutcomeNoop, s.Board().boundsError(p)
	}
	started := s.phase.CompareAndSwap(int32(PhaseNotStarted), int32(PhasePlaying))
	out, err := s.engine.Reveal(p)
	if err != nil {
		return out, err
	}
	s.settle(out, started)
	return out, nil
}

// SetFlag places or removes a flag at p.
func (s *Session) SetFlag(p core.Point, flagged bool) (Outcome, error) {
	out, err := s.engine.SetFlag(p, flagged)
	if err != nil {
		return out, err
	}
	s.settle(out, false)
	return out, nil
}

// ToggleFlag flips the flag at p.
func (s *Session) ToggleFlag(p core.Point) (Outcome, error) {
	if !s.Board().InBounds(p) {
		return OutcomeNoop, s.Board().boundsError(p)
	}
	return s.SetFlag(p, !s.Board().Cell(p).Flagged())
}

// Chord opens the neighbors of the revealed number at p when its flag
// count matches. A mismatch returns OutcomeChordRejected and notifies no one.
func (s *Session) Chord(p core.Point) (Outcome, error) {
	out, err := s.engine.Chord(p)
	if err != nil {
		return out, err
	}
	s.settle(out, false)
	return out, nil
}

// Pressed returns the cells that would be opened by a chord at p: p itself
// and its neighbors, skipping revealed and flagged ones. Used to preview a
// chord while both buttons are held.
func (s *Session) Pressed(p core.Point) ([]core.Point, error) {
	b := s.Board()
	if !b.InBounds(p) {
		return nil, b.boundsError(p)
	}
	if s.Phase().Terminal() {
		return nil, nil
	}

	var out []core.Point
	for _, n := range append([]core.Point{p}, b.Neighbors(p)...) {
		c := b.Cell(n)
		if !c.revealed && !c.flagged {
			out = append(out, n)
		}
	}
	return out, nil
}

// Tick advances the clock by delta seconds while the game is playing.
// Returns true if the clock moved.
func (s *Session) Tick(delta float64) bool {
	if delta <= 0 || s.Phase() != PhasePlaying {
		return false
	}
	for {
		old := s.elapsed.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if s.elapsed.CompareAndSwap(old, next) {
			break
		}
	}

	snap := s.Snapshot()
	snap.Event = EventTick
	s.notify(snap)
	return true
}

// settle moves the phase after an engine outcome and notifies observers.
func (s *Session) settle(out Outcome, started bool) {
	switch {
	case out == OutcomeWon:
		s.phase.Store(int32(PhaseWon))
		s.publish(EventWon)
	case out == OutcomeLost:
		s.phase.Store(int32(PhaseLost))
		s.publish(EventLost)
	case started:
		s.publish(EventStarted)
	case out.Mutated():
		s.publish(EventChanged)
	}
}

// publish rebuilds the cached snapshot and, for real events, notifies.
func (s *Session) publish(ev Event) {
	snap := snapshotOf(s.engine.board)
	s.last.Store(&snap)
	if ev == EventNone {
		return
	}

	out := s.Snapshot()
	out.Event = ev
	s.notify(out)
}

func (s *Session) notify(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.observers {
		o.Notify(snap)
	}
}
