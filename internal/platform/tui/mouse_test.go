package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// expiry runs the command returned by Release and returns its message.
func expiry(t *testing.T, cmd tea.Cmd) ClickExpiredMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("release returned no command")
	}
	msg, ok := cmd().(ClickExpiredMsg)
	if !ok {
		t.Fatalf("command produced %T, want ClickExpiredMsg", msg)
	}
	return msg
}

func TestLoneClicks(t *testing.T) {
	r := NewClickResolver(time.Millisecond)
	p := core.Pt(2, 3)

	r.Press(ButtonLeft)
	click, cmd := r.Release(ButtonLeft, p)
	if click.Action != core.ActionNone {
		t.Errorf("release acted before the window closed: %v", click.Action)
	}
	got := r.Expire(expiry(t, cmd))
	if got.Action != core.ActionReveal || got.At != p {
		t.Errorf("left click = %+v, want Reveal at %v", got, p)
	}

	r.Press(ButtonRight)
	_, cmd = r.Release(ButtonRight, p)
	got = r.Expire(expiry(t, cmd))
	if got.Action != core.ActionFlag || got.At != p {
		t.Errorf("right click = %+v, want Flag at %v", got, p)
	}
}

func TestChordClick(t *testing.T) {
	r := NewClickResolver(time.Millisecond)

	r.Press(ButtonLeft)
	r.Press(ButtonRight)
	if !r.Pressing() {
		t.Fatal("Pressing() = false with both buttons held")
	}

	_, cmd := r.Release(ButtonLeft, core.Pt(1, 1))
	first := expiry(t, cmd)

	click, cmd := r.Release(ButtonRight, core.Pt(1, 2))
	if cmd != nil {
		t.Error("chord release opened a new window")
	}
	if click.Action != core.ActionChord || click.At != core.Pt(1, 2) {
		t.Errorf("second release = %+v, want Chord at (1,2)", click)
	}

	if got := r.Expire(first); got.Action != core.ActionNone {
		t.Errorf("consumed window resolved to %v", got.Action)
	}
	if r.Pressing() {
		t.Error("Pressing() = true after both releases")
	}
}

func TestReleaseWhileOtherHeld(t *testing.T) {
	r := NewClickResolver(time.Millisecond)

	r.Press(ButtonLeft)
	r.Press(ButtonRight)
	_, cmd := r.Release(ButtonLeft, core.Pt(0, 0))
	if got := r.Expire(expiry(t, cmd)); got.Action != core.ActionNone {
		t.Errorf("left release with right held = %v, want nothing", got.Action)
	}

	// The right button now goes up on its own and counts as a lone click.
	_, cmd = r.Release(ButtonRight, core.Pt(0, 0))
	if got := r.Expire(expiry(t, cmd)); got.Action != core.ActionFlag {
		t.Errorf("late right release = %v, want Flag", got.Action)
	}
}

func TestStaleExpiry(t *testing.T) {
	r := NewClickResolver(time.Millisecond)

	_, cmd := r.Release(ButtonLeft, core.Pt(0, 0))
	stale := expiry(t, cmd)
	_, cmd = r.Release(ButtonLeft, core.Pt(0, 1))
	fresh := expiry(t, cmd)

	if got := r.Expire(stale); got.Action != core.ActionNone {
		t.Errorf("stale window resolved to %v", got.Action)
	}
	got := r.Expire(fresh)
	if got.Action != core.ActionReveal || got.At != core.Pt(0, 1) {
		t.Errorf("fresh window = %+v, want Reveal at (0,1)", got)
	}
	if again := r.Expire(fresh); again.Action != core.ActionNone {
		t.Errorf("window resolved twice: %v", again.Action)
	}
}

func TestZeroWindowResolvesAtOnce(t *testing.T) {
	r := NewClickResolver(0)
	click, cmd := r.Release(ButtonLeft, core.Pt(4, 4))
	if cmd != nil {
		t.Error("zero window returned a command")
	}
	if click.Action != core.ActionReveal {
		t.Errorf("click = %v, want Reveal", click.Action)
	}
}

func TestButtonOf(t *testing.T) {
	if b, ok := buttonOf(tea.MouseButtonLeft); !ok || b != ButtonLeft {
		t.Errorf("buttonOf(left) = %v, %v", b, ok)
	}
	if b, ok := buttonOf(tea.MouseButtonRight); !ok || b != ButtonRight {
		t.Errorf("buttonOf(right) = %v, %v", b, ok)
	}
	if _, ok := buttonOf(tea.MouseButtonWheelUp); ok {
		t.Error("wheel reported as a board button")
	}
}
