package animation

import "github.com/go-strut/strut/pkg/geometry"

// DefaultAnimationTime is how long a smoothed boolean takes to travel
// the full 0..1 range, in seconds.
const DefaultAnimationTime = 1.0 / 12.0

// BoolAnimator smooths boolean values over time, producing a value in
// [0, 1] that moves linearly toward the current target. Each tracked
// value is keyed by a caller-chosen identity so many independent
// transitions can share one animator.
type BoolAnimator struct {
	// AnimationTime is the full-range travel time in seconds.
	// Zero means DefaultAnimationTime.
	AnimationTime float64

	values map[uint64]float64
}

// Animate moves the value stored under key toward 1 if target is true
// or 0 if false, by dt seconds of travel, and returns the new value.
// A key seen for the first time snaps directly to its target so that
// newly shown elements do not visibly animate into place.
func (a *BoolAnimator) Animate(key uint64, target bool, dt float64) float64 {
	goal := 0.0
	if target {
		goal = 1.0
	}
	if a.values == nil {
		a.values = make(map[uint64]float64)
	}
	current, ok := a.values[key]
	if !ok {
		a.values[key] = goal
		return goal
	}

	animationTime := a.AnimationTime
	if animationTime <= 0 {
		animationTime = DefaultAnimationTime
	}
	step := dt / animationTime
	if goal > current {
		current = geometry.Clamp(current+step, 0, goal)
	} else if goal < current {
		current = geometry.Clamp(current-step, goal, 1)
	}
	a.values[key] = current
	return current
}

// Settled reports whether the value under key has reached its resting
// point (callers use this to stop requesting repaints).
func (a *BoolAnimator) Settled(key uint64) bool {
	v, ok := a.values[key]
	return !ok || v == 0 || v == 1
}
