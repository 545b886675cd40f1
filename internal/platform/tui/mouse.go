package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// DefaultChordWindow is how long a release waits for the other button.
const DefaultChordWindow = 50 * time.Millisecond

// Button is a mouse button the board reacts to.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

func (b Button) other() Button {
	return 1 - b
}

// Click is a resolved mouse gesture.
// Action is core.ActionNone when nothing should happen.
type Click struct {
	Action core.Action
	At     core.Point
}

// ClickExpiredMsg closes the chord window opened by a release.
type ClickExpiredMsg struct {
	Button Button
	Seq    int
}

// ClickResolver tells lone clicks apart from left+right chords.
//
// A release does not act right away. It waits for the chord window; if the
// other button is released inside it, both count as one chord. Otherwise the
// release becomes a reveal (left) or a flag toggle (right), unless the other
// button is still held at that point.
//
// The resolver is not safe for concurrent use; Bubble Tea delivers messages
// on one goroutine.
type ClickResolver struct {
	window  time.Duration
	held    [2]bool
	pending [2]bool
	at      [2]core.Point
	seq     [2]int
}

// NewClickResolver creates a resolver with the given chord window.
func NewClickResolver(window time.Duration) *ClickResolver {
	return &ClickResolver{window: window}
}

// Press records a button going down.
func (r *ClickResolver) Press(b Button) {
	r.held[b] = true
}

// Pressing reports whether both buttons are held.
func (r *ClickResolver) Pressing() bool {
	return r.held[ButtonLeft] && r.held[ButtonRight]
}

// Held reports whether b is down.
func (r *ClickResolver) Held(b Button) bool {
	return r.held[b]
}

// Release records a button going up over p. It returns a chord when the
// other button's window is still open; otherwise it opens a window of its own
// and returns the command that will close it.
func (r *ClickResolver) Release(b Button, p core.Point) (Click, tea.Cmd) {
	r.held[b] = false

	if o := b.other(); r.pending[o] {
		r.pending[o] = false
		r.seq[o]++
		return Click{Action: core.ActionChord, At: p}, nil
	}

	r.pending[b] = true
	r.at[b] = p
	r.seq[b]++
	if r.window <= 0 {
		return r.Expire(ClickExpiredMsg{Button: b, Seq: r.seq[b]}), nil
	}

	msg := ClickExpiredMsg{Button: b, Seq: r.seq[b]}
	return Click{}, tea.Tick(r.window, func(time.Time) tea.Msg {
		return msg
	})
}

// Expire closes a window. Stale messages, from windows that were consumed
// by a chord or reopened by a later release, resolve to nothing.
func (r *ClickResolver) Expire(msg ClickExpiredMsg) Click {
	b := msg.Button
	if !r.pending[b] || msg.Seq != r.seq[b] {
		return Click{}
	}
	r.pending[b] = false

	if r.held[b.other()] {
		return Click{}
	}
	if b == ButtonLeft {
		return Click{Action: core.ActionReveal, At: r.at[b]}
	}
	return Click{Action: core.ActionFlag, At: r.at[b]}
}

// buttonOf maps a Bubble Tea mouse button to a board button.
func buttonOf(b tea.MouseButton) (Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return ButtonLeft, true
	case tea.MouseButtonRight:
		return ButtonRight, true
	}
	return 0, false
}
