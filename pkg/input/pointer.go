package input

import "github.com/go-strut/strut/pkg/geometry"

// velocitySmoothing controls how quickly the velocity estimate reacts
// to new samples. Higher values track the finger more tightly.
const velocitySmoothing = 12.0

// Pointer tracks the logical pointer across frames: position, per-
// frame delta, an exponentially smoothed velocity estimate, and
// press/release transitions. One Pointer lives in the UI context and
// is updated once per frame from the host's translated input.
type Pointer struct {
	lastPos  *geometry.Offset
	velocity geometry.Offset
	down     bool
}

// PointerFrame is the pointer's resolved state for one frame.
type PointerFrame struct {
	// Pos is the pointer position, or nil when the pointer is absent
	// (no mouse over the window, no active touch).
	Pos *geometry.Offset
	// Delta is the movement since the previous frame.
	Delta geometry.Offset
	// Velocity is the smoothed movement speed in pixels per second.
	Velocity geometry.Offset
	// Down reports whether the primary button or a touch is engaged.
	Down bool
	// Pressed is true only on the frame the pointer went down.
	Pressed bool
	// Released is true only on the frame the pointer went up.
	Released bool
}

// Update advances the pointer by one frame and returns its resolved
// state. dt is the frame's elapsed time in seconds.
func (p *Pointer) Update(pos *geometry.Offset, down bool, dt float64) PointerFrame {
	frame := PointerFrame{
		Pos:      pos,
		Down:     down,
		Pressed:  down && !p.down,
		Released: !down && p.down,
	}

	if pos != nil && p.lastPos != nil {
		frame.Delta = pos.Sub(*p.lastPos)
	}

	if frame.Pressed {
		// A fresh press starts a fresh gesture.
		p.velocity = geometry.Offset{}
	} else if dt > 0 && pos != nil && p.lastPos != nil {
		instant := frame.Delta.Scale(1 / dt)
		alpha := geometry.Clamp(dt*velocitySmoothing, 0, 1)
		p.velocity = p.velocity.Add(instant.Sub(p.velocity).Scale(alpha))
	} else if pos == nil {
		p.velocity = geometry.Offset{}
	}
	frame.Velocity = p.velocity

	if pos != nil {
		copied := *pos
		p.lastPos = &copied
	} else {
		p.lastPos = nil
	}
	p.down = down
	return frame
}
