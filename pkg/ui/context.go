// Package ui provides the immediate-mode core of strut: a Context
// that lives across frames and a Ui drawing surface handed to
// builders each frame. The Context owns the identity-keyed memory
// store, the per-frame shared input state, and the display-list
// recorder; a Ui allocates rectangles, advances a cursor, clips
// painting, and arbitrates pointer interaction.
//
// Frames are strictly sequential: BeginFrame, build, EndFrame. Nested
// regions finish innermost first, which is what makes the
// consume-and-zero protocol on the shared wheel delta and the
// read-and-clear scroll target behave as "the innermost interested
// region wins".
package ui

import (
	"github.com/go-strut/strut/pkg/animation"
	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/input"
	"github.com/go-strut/strut/pkg/memory"
	"github.com/go-strut/strut/pkg/paint"
)

// Align positions a scroll target inside the viewport.
type Align int

const (
	// AlignTop places the target at the top edge of the viewport.
	AlignTop Align = iota
	// AlignCenter centers the target in the viewport.
	AlignCenter
	// AlignBottom places the target at the bottom edge.
	AlignBottom
)

// Factor returns the alignment as a fraction of the viewport height.
func (a Align) Factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignBottom:
		return 1.0
	default:
		return 0.0
	}
}

// ScrollTarget is a one-shot request to bring a y-coordinate into
// view. It is consumed by the nearest enclosing scroll region.
type ScrollTarget struct {
	// Y is in the coordinate space of the content surface that
	// requested the scroll.
	Y     float64
	Align Align
}

// Frame carries one frame's translated input into BeginFrame.
type Frame struct {
	// DT is the elapsed time since the previous frame, in seconds.
	DT float64
	// ScreenRect is the full drawable area.
	ScreenRect geometry.Rect
	// PointerPos is the pointer position, nil when absent.
	PointerPos *geometry.Offset
	// PointerDown reports whether the primary button or a touch is
	// engaged.
	PointerDown bool
	// ScrollDelta is the accumulated wheel/trackpad delta for this
	// frame. Positive y means scrolling up (content moves down).
	ScrollDelta geometry.Offset
	// Modifiers is the keyboard modifier state.
	Modifiers input.Modifiers
}

// frameState is the per-frame shared mutable state. The scroll delta
// is a single cell visited by potentially many nested scroll regions;
// whoever consumes it zeroes it so no enclosing region consumes it
// again.
type frameState struct {
	dt           float64
	scrollDelta  geometry.Offset
	scrollTarget *ScrollTarget
	pointer      input.PointerFrame
	modifiers    input.Modifiers
	repaint      bool
}

// Context owns everything that outlives a single frame.
type Context struct {
	store    *memory.Store
	style    *Style
	animator animation.BoolAnimator
	recorder paint.Recorder
	pointer  input.Pointer

	frame      frameState
	capture    memory.ID
	hasCapture bool
}

// NewContext creates a context with an empty store and the default
// style.
func NewContext() *Context {
	return &Context{
		store: memory.NewStore(),
		style: DefaultStyle(),
	}
}

// Memory returns the identity-keyed state store.
func (c *Context) Memory() *memory.Store { return c.store }

// Style returns the context's style. Callers may mutate it between
// frames.
func (c *Context) Style() *Style { return c.style }

// BeginFrame starts a frame and returns the root surface covering the
// screen rect.
func (c *Context) BeginFrame(f Frame) *Ui {
	pf := c.pointer.Update(f.PointerPos, f.PointerDown, f.DT)
	if pf.Released || pf.Pos == nil {
		c.hasCapture = false
	}
	c.frame = frameState{
		dt:          f.DT,
		scrollDelta: f.ScrollDelta,
		pointer:     pf,
		modifiers:   f.Modifiers,
	}
	c.recorder.Begin()
	return &Ui{
		ctx:      c,
		id:       memory.NewID("root"),
		clipRect: f.ScreenRect,
		maxRect:  f.ScreenRect,
		minRect:  geometry.RectFromMinSize(f.ScreenRect.Min(), geometry.Size{}),
		cursor:   f.ScreenRect.Min(),
	}
}

// EndFrame finishes the frame and returns its display list.
func (c *Context) EndFrame() *paint.DisplayList {
	return c.recorder.End()
}

// DT returns the current frame's elapsed time in seconds.
func (c *Context) DT() float64 { return c.frame.dt }

// Pointer returns the pointer state resolved for this frame.
func (c *Context) Pointer() input.PointerFrame { return c.frame.pointer }

// Modifiers returns this frame's keyboard modifier state.
func (c *Context) Modifiers() input.Modifiers { return c.frame.modifiers }

// ScrollDelta returns the shared wheel delta for this frame. A region
// that applies it must call ConsumeScrollDelta so no enclosing region
// applies it again.
func (c *Context) ScrollDelta() geometry.Offset { return c.frame.scrollDelta }

// ConsumeScrollDelta zeroes the shared wheel delta.
func (c *Context) ConsumeScrollDelta() { c.frame.scrollDelta = geometry.Offset{} }

// ScrollToY requests that the given y-coordinate (in the requesting
// surface's space) be scrolled into view. Only the nearest enclosing
// scroll region honors the request.
func (c *Context) ScrollToY(y float64, align Align) {
	c.frame.scrollTarget = &ScrollTarget{Y: y, Align: align}
}

// TakeScrollTarget returns the pending scroll target, if any, and
// clears it.
func (c *Context) TakeScrollTarget() *ScrollTarget {
	target := c.frame.scrollTarget
	c.frame.scrollTarget = nil
	return target
}

// RequestRepaint asks the host to schedule another frame immediately,
// e.g. so a kinetic decay keeps animating instead of stalling until
// the next input event.
func (c *Context) RequestRepaint() { c.frame.repaint = true }

// RepaintRequested reports whether anything in this frame asked for
// an immediate repaint. Hosts that repaint on demand read this after
// EndFrame.
func (c *Context) RepaintRequested() bool { return c.frame.repaint }

// AnimateBool returns a value in [0, 1] that moves toward 1 while
// target is true and toward 0 while false, smoothed over a fixed
// animation time. While the value is still moving a repaint is
// requested so the transition completes.
func (c *Context) AnimateBool(id memory.ID, target bool) float64 {
	value := c.animator.Animate(uint64(id), target, c.frame.dt)
	if !c.animator.Settled(uint64(id)) {
		c.RequestRepaint()
	}
	return value
}
