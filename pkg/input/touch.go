package input

import "github.com/go-strut/strut/pkg/geometry"

// TouchID identifies one physical touch contact for its lifetime.
type TouchID int64

// Touch is one active touch contact, already translated to canonical
// coordinates.
type Touch struct {
	ID  TouchID
	Pos geometry.Offset
}

// TouchTracker derives the single logical pointer position from a set
// of touches. A single touch is translated to pointer movement; when
// a second touch is added the pointer must not jump to a different
// position, so instead of averaging all touches we keep using the
// same touch as long as it is available.
//
// Carry one TouchTracker across frames per pointer source.
type TouchTracker struct {
	tracked *TouchID
}

// Pos returns the logical pointer position for the given active
// touches: the previously tracked touch if it is still present,
// otherwise the first touch. With no touches at all it returns the
// zero position.
func (t *TouchTracker) Pos(touches []Touch) geometry.Offset {
	if t.tracked != nil {
		for _, touch := range touches {
			if touch.ID == *t.tracked {
				return touch.Pos
			}
		}
	}
	if len(touches) == 0 {
		return geometry.Offset{}
	}
	first := touches[0]
	id := first.ID
	t.tracked = &id
	return first.Pos
}

// Tracking returns the currently tracked touch ID, if any.
func (t *TouchTracker) Tracking() (TouchID, bool) {
	if t.tracked == nil {
		return 0, false
	}
	return *t.tracked, true
}

// Reset forgets the tracked touch. Call when the tracked touch ends
// so the next contact starts a fresh gesture.
func (t *TouchTracker) Reset() {
	t.tracked = nil
}
