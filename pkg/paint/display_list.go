// Package paint records drawing commands into replayable display
// lists. The scroll machinery emits only two kinds of commands: clip
// changes and filled rounded rectangles. A host rasterizes the list
// however it likes (the ebiten host in pkg/platform is one example).
package paint

import (
	"image/color"

	"github.com/go-strut/strut/pkg/geometry"
)

// Canvas receives drawing commands, either live or from a replayed
// display list.
type Canvas interface {
	// SetClip restricts subsequent drawing to the given rectangle.
	// An empty rect means nothing will be drawn.
	SetClip(rect geometry.Rect)

	// FillRRect fills a rounded rectangle with a uniform corner radius.
	FillRRect(rect geometry.Rect, radius float64, fill color.RGBA)
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops []displayOp
}

// Replay plays the recorded operations onto the provided canvas.
func (d *DisplayList) Replay(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Recorder records drawing commands into a display list.
// The zero value is ready to use.
type Recorder struct {
	ops       []displayOp
	recording bool
	clip      geometry.Rect
	hasClip   bool
}

// Begin starts a new recording session, discarding any prior commands.
func (r *Recorder) Begin() {
	r.ops = r.ops[:0]
	r.recording = true
	r.hasClip = false
}

// End finishes the recording and returns the display list.
func (r *Recorder) End() *DisplayList {
	if !r.recording {
		return &DisplayList{}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops}
}

// SetClip records a clip change. Consecutive identical clips collapse
// into one operation.
func (r *Recorder) SetClip(rect geometry.Rect) {
	if r.hasClip && rect == r.clip {
		return
	}
	r.clip = rect
	r.hasClip = true
	r.append(opSetClip{rect: rect})
}

// FillRRect records a filled rounded rectangle.
func (r *Recorder) FillRRect(rect geometry.Rect, radius float64, fill color.RGBA) {
	r.append(opFillRRect{rect: rect, radius: radius, fill: fill})
}

func (r *Recorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type opSetClip struct {
	rect geometry.Rect
}

func (o opSetClip) execute(canvas Canvas) {
	canvas.SetClip(o.rect)
}

type opFillRRect struct {
	rect   geometry.Rect
	radius float64
	fill   color.RGBA
}

func (o opFillRRect) execute(canvas Canvas) {
	canvas.FillRRect(o.rect, o.radius, o.fill)
}
