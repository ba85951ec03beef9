package ui

import (
	"image/color"

	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/memory"
)

// Ui is a drawing surface and layout region for one frame. Child
// surfaces share the frame's context but keep their own clip
// rectangle, cursor, and identity scope.
type Ui struct {
	ctx      *Context
	id       memory.ID
	clipRect geometry.Rect
	// maxRect is the region handed to this surface.
	maxRect geometry.Rect
	// minRect is the region actually used so far; it grows as rects
	// are allocated and is how content size gets measured.
	minRect geometry.Rect
	cursor  geometry.Offset

	nextAutoID uint64
	childCount uint64
}

// Context returns the frame context this surface belongs to.
func (u *Ui) Context() *Context { return u.ctx }

// Style returns the context style.
func (u *Ui) Style() *Style { return u.ctx.style }

// ID returns this surface's identity scope.
func (u *Ui) ID() memory.ID { return u.id }

// ClipRect returns the rectangle drawing is clipped to.
func (u *Ui) ClipRect() geometry.Rect { return u.clipRect }

// SetClipRect replaces the clip rectangle.
func (u *Ui) SetClipRect(rect geometry.Rect) { u.clipRect = rect }

// MaxRect returns the region given to this surface.
func (u *Ui) MaxRect() geometry.Rect { return u.maxRect }

// MinRect returns the region used so far.
func (u *Ui) MinRect() geometry.Rect { return u.minRect }

// MinSize returns the measured size of the content placed so far.
func (u *Ui) MinSize() geometry.Size { return u.minRect.Size() }

// AvailableRect returns the space left between the cursor and the
// surface bounds.
func (u *Ui) AvailableRect() geometry.Rect {
	return geometry.Rect{
		Left:   u.cursor.X,
		Top:    u.cursor.Y,
		Right:  u.maxRect.Right,
		Bottom: u.maxRect.Bottom,
	}
}

// AllocateRect claims a rect of the given size at the cursor,
// advances the cursor past it plus item spacing, and returns it.
func (u *Ui) AllocateRect(size geometry.Size) geometry.Rect {
	rect := geometry.RectFromMinSize(u.cursor, size)
	u.AdvanceCursorAfterRect(rect)
	return rect
}

// AdvanceCursorAfterRect records rect as used content and moves the
// cursor below it, separated by the vertical item spacing.
func (u *Ui) AdvanceCursorAfterRect(rect geometry.Rect) {
	u.expandMinRect(rect)
	u.cursor = geometry.Offset{X: u.minRect.Left, Y: rect.Bottom + u.Style().ItemSpacing.Y}
}

// SetHeight reserves the given content height without drawing
// anything. Virtualized lists use this so scrollbar geometry reflects
// the true content extent while only visible rows are materialized.
func (u *Ui) SetHeight(height float64) {
	u.expandMinRect(geometry.RectFromMinSize(u.maxRect.Min(), geometry.Size{Height: height}))
}

func (u *Ui) expandMinRect(rect geometry.Rect) {
	u.minRect = u.minRect.Union(rect)
}

// ChildUi creates a child surface over the given region. The child
// inherits the clip rect; its identity is derived from this surface
// and the order of child creation, which is stable across frames for
// a stable build order.
func (u *Ui) ChildUi(maxRect geometry.Rect) *Ui {
	childID := u.id.With("child").With(u.childCount)
	u.childCount++
	return &Ui{
		ctx:      u.ctx,
		id:       childID,
		clipRect: u.clipRect,
		maxRect:  maxRect,
		minRect:  geometry.RectFromMinSize(maxRect.Min(), geometry.Size{}),
		cursor:   maxRect.Min(),
	}
}

// MakePersistentID derives an identity for persisted state from an
// explicit seed, scoped to this surface.
func (u *Ui) MakePersistentID(seed any) memory.ID {
	return u.id.With(seed)
}

// AutoID returns the next automatically assigned identity. Elements
// built in the same order get the same IDs every frame.
func (u *Ui) AutoID() memory.ID {
	id := u.id.With(u.nextAutoID)
	u.nextAutoID++
	return id
}

// SkipAheadAutoIDs advances the automatic identity counter by n.
// Virtualized lists call this with the first visible row index so an
// element at a given logical row keeps its identity no matter which
// rows are currently materialized.
func (u *Ui) SkipAheadAutoIDs(n int) {
	if n > 0 {
		u.nextAutoID += uint64(n)
	}
}

// RectContainsPointer reports whether the pointer is currently over
// the given screen-space rect.
func (u *Ui) RectContainsPointer(rect geometry.Rect) bool {
	pos := u.ctx.frame.pointer.Pos
	return pos != nil && rect.Contains(*pos)
}

// FillRRect paints a filled rounded rectangle clipped to this
// surface.
func (u *Ui) FillRRect(rect geometry.Rect, radius float64, fill color.RGBA) {
	u.ctx.recorder.SetClip(u.clipRect)
	u.ctx.recorder.FillRRect(rect, radius, fill)
}
