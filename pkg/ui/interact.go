package ui

import (
	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/memory"
)

// Sense describes what kinds of pointer interaction a region wants.
type Sense struct {
	click bool
	drag  bool
}

// SenseDrag registers interest in drag gestures only.
func SenseDrag() Sense { return Sense{drag: true} }

// SenseClickAndDrag registers interest in both clicks and drags.
func SenseClickAndDrag() Sense { return Sense{click: true, drag: true} }

// Response describes how the pointer related to an interactive region
// this frame.
type Response struct {
	// Hovered reports whether the pointer is over the region and the
	// region is allowed to react (no other region holds the pointer).
	Hovered bool
	// Dragged reports whether this region holds the pointer in an
	// active press.
	Dragged bool

	pointerPos *geometry.Offset
}

// InteractPointerPos returns the pointer position while this region's
// interaction is engaged, or nil otherwise. The scrollbar uses this
// to track the drag from the frame of the initial press through
// release.
func (r Response) InteractPointerPos() *geometry.Offset {
	return r.pointerPos
}

// Interact registers an interactive region over a screen-space rect
// and resolves its pointer state for this frame. A press inside the
// rect captures the pointer for this identity until release; regions
// are visited innermost-first, so the first (innermost) region to see
// a fresh press wins it.
func (u *Ui) Interact(rect geometry.Rect, id memory.ID, sense Sense) Response {
	if !sense.click && !sense.drag {
		return Response{}
	}
	ctx := u.ctx
	pointer := ctx.frame.pointer

	over := pointer.Pos != nil && rect.Contains(*pointer.Pos)
	response := Response{
		Hovered: over && (!ctx.hasCapture || ctx.capture == id),
	}

	if pointer.Pressed && over && !ctx.hasCapture {
		ctx.capture = id
		ctx.hasCapture = true
	}
	if ctx.hasCapture && ctx.capture == id && pointer.Down {
		response.Dragged = true
		response.pointerPos = pointer.Pos
	}
	return response
}
