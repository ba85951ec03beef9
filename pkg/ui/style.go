package ui

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/go-strut/strut/pkg/geometry"
)

// Style holds the spacing and visual constants shared by every
// surface of a context.
type Style struct {
	// ItemSpacing is the gap inserted between stacked items.
	ItemSpacing geometry.Offset
	// ScrollBarWidth is the maximum width of a scrollbar, and also
	// the minimum length of its handle.
	ScrollBarWidth float64
	// ClipRectMargin is the visual margin added around a clipped
	// region so strokes on the edge are not cut in half.
	ClipRectMargin float64
	// CornerRadius is the rounding applied to filled widget rects.
	CornerRadius float64

	Visuals Visuals
}

// Visuals holds the fill colors for widget painting.
type Visuals struct {
	// ExtremeBackground is the darkest background, used for the
	// scrollbar track.
	ExtremeBackground color.RGBA
	// WidgetFill paints idle widgets such as a resting scrollbar
	// handle.
	WidgetFill color.RGBA
	// WidgetHoveredFill paints widgets the pointer is over.
	WidgetHoveredFill color.RGBA
	// WidgetActiveFill paints widgets being clicked or dragged.
	WidgetActiveFill color.RGBA
}

// FillFor selects the fill color matching the interaction state of a
// response: active while dragged, hovered while pointed at, idle
// otherwise.
func (v Visuals) FillFor(r Response) color.RGBA {
	if r.Dragged {
		return v.WidgetActiveFill
	}
	if r.Hovered {
		return v.WidgetHoveredFill
	}
	return v.WidgetFill
}

// DefaultStyle returns the stock dark style.
func DefaultStyle() *Style {
	return &Style{
		ItemSpacing:    geometry.Offset{X: 8, Y: 4},
		ScrollBarWidth: 8,
		ClipRectMargin: 3,
		CornerRadius:   2,
		Visuals: Visuals{
			ExtremeBackground: colornames.Black,
			WidgetFill:        colornames.Dimgray,
			WidgetHoveredFill: colornames.Gray,
			WidgetActiveFill:  colornames.Whitesmoke,
		},
	}
}
