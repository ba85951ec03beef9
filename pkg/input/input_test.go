package input

import (
	"testing"

	"github.com/go-strut/strut/pkg/geometry"
)

func TestButtonFromHost(t *testing.T) {
	cases := []struct {
		index int
		want  PointerButton
		ok    bool
	}{
		{0, ButtonPrimary, true},
		{1, ButtonMiddle, true},
		{2, ButtonSecondary, true},
		{3, ButtonExtra1, true},
		{4, ButtonExtra2, true},
		{5, 0, false},
		{-1, 0, false},
	}
	for _, c := range cases {
		got, ok := ButtonFromHost(c.index)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ButtonFromHost(%d) = %v, %v; want %v, %v", c.index, got, ok, c.want, c.ok)
		}
	}
}

func TestModifiersCommand(t *testing.T) {
	if (Modifiers{}).Command() {
		t.Error("no modifiers should not be command")
	}
	if !(Modifiers{Ctrl: true}).Command() {
		t.Error("ctrl should derive command")
	}
	if !(Modifiers{Meta: true}).Command() {
		t.Error("meta should derive command")
	}
	if (Modifiers{Alt: true, Shift: true}).Command() {
		t.Error("alt/shift should not derive command")
	}
}

func TestTextFromKey(t *testing.T) {
	// Plain characters pass through.
	for _, key := range []string{"a", "X", "1", " ", "ä", "F"} {
		text, ok := TextFromKey(key)
		if !ok || text != key {
			t.Errorf("TextFromKey(%q) = %q, %v; want pass-through", key, text, ok)
		}
	}

	// Control keys and function keys never produce text.
	for _, key := range []string{
		"ArrowLeft", "ArrowUp", "Escape", "Esc", "Enter", "Tab",
		"Backspace", "Shift", "Control", "Meta", "Alt", "PageDown",
		"Home", "End", "Insert", "Delete", "CapsLock", "NumLock",
		"F1", "F12",
	} {
		if _, ok := TextFromKey(key); ok {
			t.Errorf("TextFromKey(%q) should be rejected", key)
		}
	}
}

func TestTouchTrackerContinuity(t *testing.T) {
	var tracker TouchTracker

	first := Touch{ID: 7, Pos: geometry.Offset{X: 10, Y: 10}}
	pos := tracker.Pos([]Touch{first})
	if pos != first.Pos {
		t.Fatalf("single touch pos = %v", pos)
	}

	// A second touch arrives. The pointer must stay on touch 7 even
	// though touch 3 now comes first in the list.
	second := Touch{ID: 3, Pos: geometry.Offset{X: 500, Y: 500}}
	moved := Touch{ID: 7, Pos: geometry.Offset{X: 12, Y: 11}}
	pos = tracker.Pos([]Touch{second, moved})
	if pos != moved.Pos {
		t.Errorf("pointer jumped to %v, want %v", pos, moved.Pos)
	}
	if id, ok := tracker.Tracking(); !ok || id != 7 {
		t.Errorf("Tracking = %v, %v; want 7, true", id, ok)
	}
}

func TestTouchTrackerFallsBackToFirstTouch(t *testing.T) {
	var tracker TouchTracker
	tracker.Pos([]Touch{{ID: 7, Pos: geometry.Offset{X: 1, Y: 1}}})

	// The tracked touch lifted; only touch 3 remains.
	remaining := Touch{ID: 3, Pos: geometry.Offset{X: 9, Y: 9}}
	pos := tracker.Pos([]Touch{remaining})
	if pos != remaining.Pos {
		t.Errorf("fallback pos = %v, want %v", pos, remaining.Pos)
	}
	if id, ok := tracker.Tracking(); !ok || id != 3 {
		t.Errorf("Tracking = %v, %v; want 3, true", id, ok)
	}
}

func TestTouchTrackerNoTouches(t *testing.T) {
	var tracker TouchTracker
	if pos := tracker.Pos(nil); pos != (geometry.Offset{}) {
		t.Errorf("empty touch pos = %v, want zero", pos)
	}

	tracker.Reset()
	if _, ok := tracker.Tracking(); ok {
		t.Error("Reset should clear tracking")
	}
}

func TestPointerTransitions(t *testing.T) {
	var p Pointer
	at := func(x, y float64) *geometry.Offset {
		return &geometry.Offset{X: x, Y: y}
	}

	frame := p.Update(at(0, 0), false, 1.0/60)
	if frame.Pressed || frame.Released || frame.Down {
		t.Errorf("idle frame = %+v", frame)
	}

	frame = p.Update(at(0, 0), true, 1.0/60)
	if !frame.Pressed || !frame.Down {
		t.Errorf("press frame = %+v", frame)
	}

	frame = p.Update(at(0, 10), true, 1.0/60)
	if frame.Pressed || frame.Delta.Y != 10 {
		t.Errorf("drag frame = %+v", frame)
	}
	if frame.Velocity.Y <= 0 {
		t.Errorf("dragging down should produce positive y velocity, got %v", frame.Velocity)
	}

	frame = p.Update(at(0, 10), false, 1.0/60)
	if !frame.Released || frame.Down {
		t.Errorf("release frame = %+v", frame)
	}
}

func TestPointerAbsenceClearsState(t *testing.T) {
	var p Pointer
	pos := geometry.Offset{X: 5, Y: 5}
	p.Update(&pos, true, 1.0/60)
	moved := geometry.Offset{X: 5, Y: 50}
	p.Update(&moved, true, 1.0/60)

	frame := p.Update(nil, false, 1.0/60)
	if frame.Delta != (geometry.Offset{}) {
		t.Errorf("absent pointer delta = %v, want zero", frame.Delta)
	}
	if frame.Velocity != (geometry.Offset{}) {
		t.Errorf("absent pointer velocity = %v, want zero", frame.Velocity)
	}
}
