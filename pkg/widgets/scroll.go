// Package widgets provides strut's built-in widgets. The centerpiece
// is ScrollArea: a clipped, vertically scrollable region with a
// draggable scrollbar, kinetic touch scrolling, and row
// virtualization for very large lists.
package widgets

import (
	"math"

	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/memory"
	"github.com/go-strut/strut/pkg/ui"
)

// Kinetic scrolling constants.
const (
	// stopSpeed is the velocity, in pixels per second, below which a
	// kinetic scroll comes to rest.
	stopSpeed = 20.0
	// frictionCoeff is the deceleration applied to a kinetic scroll,
	// in pixels per second squared.
	frictionCoeff = 1000.0
)

// scrollState is the per-identity record persisted across frames.
type scrollState struct {
	// Offset is the content-space position of the viewport's
	// top-left corner. Positive y means scrolled down. Only y is
	// driven by the algorithms below; x is kept for symmetry.
	Offset geometry.Offset
	// ShowScroll records whether the scrollbar was rendered last
	// frame, so a visibility transition can trigger a repaint.
	ShowScroll bool
	// Velocity is the momentum for kinetic scrolling. Never
	// persisted across sessions; reset whenever the offset hits a
	// hard boundary.
	Velocity geometry.Offset
	// DragAnchor is the distance from the pointer to the top of the
	// scrollbar handle when the current drag began, nil while no
	// drag is active.
	DragAnchor *float64
}

// ScrollArea adds vertical scrolling to contained content.
//
// Configure it with the builder methods, then call one of Show,
// ShowViewport, or ShowRows. If the content can be very long, use
// ShowRows so only visible rows are built.
type ScrollArea struct {
	maxHeight        float64
	alwaysShowScroll bool
	idSource         any
	offset           *float64
}

// AutoSized makes the area as tall as it is allowed to be, filling
// the surface it is placed in.
func AutoSized() ScrollArea {
	return FromMaxHeight(math.Inf(1))
}

// FromMaxHeight limits the area to the given height. Use
// math.Inf(1) to let it fill the surrounding surface. A negative
// height is treated as zero.
func FromMaxHeight(maxHeight float64) ScrollArea {
	if maxHeight < 0 {
		maxHeight = 0
	}
	return ScrollArea{maxHeight: maxHeight}
}

// AlwaysShowScroll forces the scrollbar to be displayed even when the
// content fits. By default the bar is hidden when not needed.
func (s ScrollArea) AlwaysShowScroll(always bool) ScrollArea {
	s.alwaysShowScroll = always
	return s
}

// IDSource sets an explicit seed for the persisted-state identity.
// Needed when several scroll areas share a parent surface position,
// e.g. inside a loop.
func (s ScrollArea) IDSource(seed any) ScrollArea {
	s.idSource = seed
	return s
}

// ScrollOffset overrides the vertical scroll position before this
// frame's interaction logic runs. Use for programmatic scrolling; see
// also Context.ScrollToY.
func (s ScrollArea) ScrollOffset(offsetY float64) ScrollArea {
	s.offset = &offsetY
	return s
}

// prepared bridges begin and end for one frame of one scroll area.
type prepared struct {
	id               memory.ID
	state            scrollState
	alwaysShowScroll bool
	// rect is the outer area the content is clipped to.
	rect      geometry.Rect
	contentUI *ui.Ui
	// viewport is the content-space window currently visible:
	// min equals the scroll offset, size equals the outer rect.
	viewport geometry.Rect
}

func (s ScrollArea) begin(u *ui.Ui) prepared {
	idSource := s.idSource
	if idSource == nil {
		idSource = "scroll_area"
	}
	id := u.MakePersistentID(idSource)
	state := memory.GetOrDefault[scrollState](u.Context().Memory(), id)

	if s.offset != nil {
		state.Offset.Y = *s.offset
	}

	// content: size of contents (generally large; that's why we want
	// scroll bars). rect: size of the scroll area, the area we clip
	// the contents to.
	availableOuter := u.AvailableRect()
	outerSize := geometry.Size{
		Width:  availableOuter.Width(),
		Height: math.Min(availableOuter.Height(), s.maxHeight),
	}
	rect := geometry.RectFromMinSize(availableOuter.Min(), outerSize)

	contentUI := u.ChildUi(geometry.RectFromMinSize(
		rect.Min().Sub(state.Offset),
		geometry.Size{Width: outerSize.Width, Height: math.Inf(1)},
	))
	contentClip := rect.Expand(u.Style().ClipRectMargin).Intersect(u.ClipRect())
	// Pin the right edge to the parent clip to tolerate forced
	// resizing beyond what is possible.
	contentClip.Right = u.ClipRect().Right
	contentUI.SetClipRect(contentClip)

	viewport := geometry.RectFromMinSize(state.Offset, outerSize)

	return prepared{
		id:               id,
		state:            state,
		alwaysShowScroll: s.alwaysShowScroll,
		rect:             rect,
		contentUI:        contentUI,
		viewport:         viewport,
	}
}

// Show displays the scroll area, letting addContents fill the content
// surface. If the content can be very long, consider ShowRows.
func (s ScrollArea) Show(u *ui.Ui, addContents func(*ui.Ui)) {
	s.ShowViewport(u, func(content *ui.Ui, _ geometry.Rect) {
		addContents(content)
	})
}

// ShowViewport displays the scroll area and passes addContents the
// viewport: the content-space rectangle currently visible. A viewport
// with min y zero means the user has not scrolled. Use it to skip
// building content that is off screen.
func (s ScrollArea) ShowViewport(u *ui.Ui, addContents func(*ui.Ui, geometry.Rect)) {
	p := s.begin(u)
	addContents(p.contentUI, p.viewport)
	p.end(u)
}

// ShowRows efficiently shows only the visible part of a large list of
// uniform rows. rowHeight excludes the inter-row spacing; addContents
// receives the half-open visible row range [minRow, maxRow) and must
// build exactly those rows.
func (s ScrollArea) ShowRows(u *ui.Ui, rowHeight float64, numRows int, addContents func(rows *ui.Ui, minRow, maxRow int)) {
	spacing := u.Style().ItemSpacing.Y
	rowStride := rowHeight + spacing
	s.ShowViewport(u, func(content *ui.Ui, viewport geometry.Rect) {
		content.SetHeight(math.Max(rowStride*float64(numRows)-spacing, 0))

		minRow := int(math.Max(math.Floor(viewport.Top/rowStride), 0))
		// One row of overscan hides rounding at the bottom edge.
		maxRow := int(math.Ceil(viewport.Bottom/rowStride)) + 1
		if maxRow > numRows {
			maxRow = numRows
		}

		yMin := content.MaxRect().Top + float64(minRow)*rowStride
		yMax := content.MaxRect().Top + float64(maxRow)*rowStride
		rowsUI := content.ChildUi(geometry.Rect{
			Left:   content.MaxRect().Left,
			Top:    yMin,
			Right:  content.MaxRect().Right,
			Bottom: yMax,
		})
		// Make sure rows get consistent identities no matter which
		// window of them is materialized.
		rowsUI.SkipAheadAutoIDs(minRow)

		addContents(rowsUI, minRow, maxRow)
	})
}

func (p *prepared) end(u *ui.Ui) {
	ctx := u.Context()
	state := p.state
	contentSize := p.contentUI.MinSize()

	// We take the scroll target so only this scroll area will use it.
	if target := ctx.TakeScrollTarget(); target != nil {
		factor := target.Align.Factor()
		top := p.contentUI.MinRect().Top
		visibleBottom := top + p.contentUI.ClipRect().Height()
		offsetY := target.Y - geometry.Lerp(top, visibleBottom, factor)

		// Depending on the alignment we need to add or subtract the
		// item spacing so the target is not flush against the edge.
		spacing := u.Style().ItemSpacing.Y * geometry.Remap(factor, 0, 1, -1, 1)

		state.Offset.Y = offsetY + spacing
	}

	rect := p.rect
	var width float64
	if math.IsInf(rect.Width(), 1) {
		// The scroll area is in an infinitely wide parent.
		width = contentSize.Width
	} else {
		// Expand width to fit content.
		width = math.Max(rect.Width(), contentSize.Width)
	}
	rect = geometry.RectFromMinSize(rect.Min(), geometry.Size{Width: width, Height: rect.Height()})

	contentOverflows := contentSize.Height > rect.Height()
	maxOffset := contentSize.Height - rect.Height()

	if u.RectContainsPointer(rect) {
		scrollDelta := ctx.ScrollDelta()

		scrollingUp := state.Offset.Y > 0 && scrollDelta.Y > 0
		scrollingDown := state.Offset.Y < maxOffset && scrollDelta.Y < 0

		if scrollingUp || scrollingDown {
			state.Offset.Y -= scrollDelta.Y
			// Clear the shared delta so no parent scroll area will
			// use it.
			ctx.ConsumeScrollDelta()
		}
	}

	showScrollThisFrame := contentOverflows || p.alwaysShowScroll
	maxScrollBarWidth := u.Style().ScrollBarWidth

	dragging := false
	if showScrollThisFrame {
		right := rect.Right + maxScrollBarWidth*0.25
		left := right - maxScrollBarWidth
		top := rect.Top
		bottom := rect.Bottom

		scrollRect := geometry.Rect{Left: left, Top: top, Right: right, Bottom: bottom}

		fromContent := func(contentY float64) float64 {
			return geometry.RemapClamp(contentY, 0, contentSize.Height, top, bottom)
		}

		handleRect := geometry.Rect{
			Left:   left,
			Top:    fromContent(state.Offset.Y),
			Right:  right,
			Bottom: fromContent(state.Offset.Y + rect.Height()),
		}

		interactID := p.id.With("vertical")
		response := u.Interact(scrollRect, interactID, ui.SenseClickAndDrag())

		if pointerPos := response.InteractPointerPos(); pointerPos != nil {
			if state.DragAnchor == nil {
				var anchor float64
				if handleRect.Contains(*pointerPos) {
					// Grab: preserve the offset into the handle.
					anchor = pointerPos.Y - handleRect.Top
				} else {
					// Click outside the handle: center the handle on
					// the pointer, then track from there.
					handleTopAtBottom := bottom - handleRect.Height()
					newHandleTop := geometry.Clamp(pointerPos.Y-handleRect.Height()/2, top, handleTopAtBottom)
					anchor = pointerPos.Y - newHandleTop
				}
				state.DragAnchor = &anchor
			}

			newHandleTop := pointerPos.Y - *state.DragAnchor
			state.Offset.Y = geometry.Remap(newHandleTop, top, bottom, 0, contentSize.Height)
		} else {
			state.DragAnchor = nil
		}

		unboundedOffsetY := state.Offset.Y
		state.Offset.Y = math.Max(state.Offset.Y, 0)
		state.Offset.Y = math.Min(state.Offset.Y, maxOffset)

		// Momentum must not fight a hard boundary.
		if state.Offset.Y != unboundedOffsetY {
			state.Velocity = geometry.Offset{}
		}

		// Avoid frame delay by recomputing the handle rect from the
		// clamped offset.
		handleRect = geometry.Rect{
			Left:   left,
			Top:    fromContent(state.Offset.Y),
			Right:  right,
			Bottom: fromContent(state.Offset.Y + rect.Height()),
		}
		minHandleHeight := u.Style().ScrollBarWidth
		if handleRect.Height() < minHandleHeight {
			handleRect = geometry.RectFromCenterSize(
				handleRect.Center(),
				geometry.Size{Width: handleRect.Width(), Height: minHandleHeight},
			)
		}

		// The bar is slim when idle and widens while interacted with.
		hoveredWidth := maxScrollBarWidth * 0.75 *
			ctx.AnimateBool(p.id.With("hovered"), !(response.Hovered || response.Dragged))
		scrollRect.Left += hoveredWidth
		handleRect.Left += hoveredWidth

		style := u.Style()
		u.FillRRect(scrollRect, style.CornerRadius, style.Visuals.ExtremeBackground)
		u.FillRRect(handleRect, style.CornerRadius, style.Visuals.FillFor(response))

		dragging = response.Dragged
	}

	if contentOverflows && !dragging {
		// Drag contents to scroll (for touch screens mostly).
		contentResponse := u.Interact(rect, p.id.With("area"), ui.SenseDrag())

		pointer := ctx.Pointer()
		if contentResponse.Dragged {
			state.Offset.Y -= pointer.Delta.Y
			state.Velocity = pointer.Velocity
		} else {
			dt := ctx.DT()
			friction := frictionCoeff * dt
			if friction > state.Velocity.Length() || state.Velocity.Length() < stopSpeed {
				state.Velocity = geometry.Offset{}
			} else {
				state.Velocity = state.Velocity.Sub(state.Velocity.Normalized().Scale(friction))
				// Offset has an inverted coordinate system compared
				// to the velocity, so we subtract it instead of
				// adding it.
				state.Offset.Y -= state.Velocity.Y * dt
				ctx.RequestRepaint()
			}
		}
	}

	// Shrink the consumed height if the content is so small that we
	// don't need scroll bars.
	size := geometry.Size{
		Width:  rect.Width(),
		Height: math.Min(rect.Height(), contentSize.Height),
	}
	u.AdvanceCursorAfterRect(geometry.RectFromMinSize(rect.Min(), size))

	if showScrollThisFrame != state.ShowScroll {
		// Scrollbar appeared or disappeared; show it right away.
		ctx.RequestRepaint()
	}

	state.Offset.Y = math.Min(state.Offset.Y, contentSize.Height-rect.Height())
	state.Offset.Y = math.Max(state.Offset.Y, 0)
	state.ShowScroll = showScrollThisFrame

	ctx.Memory().Insert(p.id, state)
}
