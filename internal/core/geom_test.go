package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"center", 20, 20, true},
		{"top-left corner", 10, 10, true},
		{"just inside bottom-right", 29, 29, true},
		{"right edge (exclusive)", 30, 20, false},
		{"bottom edge (exclusive)", 20, 30, false},
		{"left of rect", 5, 20, false},
		{"above rect", 20, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Pt(3, 4).Add(-1, 2)
	if p != Pt(2, 6) {
		t.Errorf("Add() = %v, expected (2,6)", p)
	}
	if p.String() != "(2,6)" {
		t.Errorf("String() = %q, expected \"(2,6)\"", p.String())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestNumberColor(t *testing.T) {
	if NumberColor(1) != ColorBlue {
		t.Errorf("NumberColor(1) = %v, expected blue", NumberColor(1))
	}
	if NumberColor(3) != ColorRed {
		t.Errorf("NumberColor(3) = %v, expected red", NumberColor(3))
	}
	if NumberColor(-1) != ColorDefault || NumberColor(9) != ColorDefault {
		t.Error("out-of-range counts should map to the default color")
	}
}

func TestTickSeconds(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickRate != DefaultTickRate {
		t.Fatalf("TickRate = %d, expected %d", cfg.TickRate, DefaultTickRate)
	}
	if got := cfg.TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds() = %v, expected 0.02", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got != 0.02 {
		t.Errorf("zero TickRate should fall back to the default, got %v", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionFlag)
	if !f.Has(ActionFlag) || f.HasTarget {
		t.Error("Set should record the action without a target")
	}

	f.SetAt(ActionReveal, Pt(2, 3))
	if !f.Has(ActionReveal) || !f.HasTarget || f.Target != Pt(2, 3) {
		t.Errorf("SetAt should record target, got %+v", f)
	}

	f.Clear()
	if !f.Empty() || f.HasTarget {
		t.Error("Clear should reset actions and target")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}
