package main

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/ui"
	"github.com/go-strut/strut/pkg/widgets"
)

const (
	bigListRows   = 10_000
	bigListRow    = 20.0
	jumpTargetRow = 5_000
)

// Showcase is the demo application state that lives across frames.
type Showcase struct {
	jumped bool
}

func NewShowcase() *Showcase {
	return &Showcase{}
}

// Build builds one frame of the showcase.
func (s *Showcase) Build(root *ui.Ui) {
	s.nestedRegions(root)
	s.bigList(root)
}

// nestedRegions stacks a scroll region inside another one. The wheel
// delta goes to the innermost region under the pointer until it
// saturates, then the outer region takes over.
func (s *Showcase) nestedRegions(root *ui.Ui) {
	style := root.Style()
	widgets.FromMaxHeight(220).IDSource("outer").Show(root, func(content *ui.Ui) {
		banner := content.AllocateRect(geometry.Size{Width: 400, Height: 28})
		content.FillRRect(banner, style.CornerRadius, colornames.Midnightblue)

		widgets.FromMaxHeight(120).IDSource("inner").AlwaysShowScroll(true).Show(content, func(inner *ui.Ui) {
			for i := 0; i < 30; i++ {
				rect := inner.AllocateRect(geometry.Size{Width: 300, Height: 16})
				inner.FillRRect(rect, style.CornerRadius, rowColor(i))
			}
		})

		for i := 0; i < 8; i++ {
			rect := content.AllocateRect(geometry.Size{Width: 400, Height: 22})
			content.FillRRect(rect, style.CornerRadius, colornames.Darkslategray)
		}
	})
}

// bigList virtualizes ten thousand rows: only the visible window is
// built each frame. Holding the command key jumps to the middle row.
func (s *Showcase) bigList(root *ui.Ui) {
	ctx := root.Context()
	style := root.Style()

	widgets.AutoSized().IDSource("big_list").ShowRows(root, bigListRow, bigListRows, func(rows *ui.Ui, minRow, maxRow int) {
		stride := bigListRow + style.ItemSpacing.Y
		if ctx.Modifiers().Command() {
			if !s.jumped {
				contentTop := rows.MaxRect().Top - float64(minRow)*stride
				ctx.ScrollToY(contentTop+stride*jumpTargetRow, ui.AlignCenter)
				s.jumped = true
			}
		} else {
			s.jumped = false
		}

		for i := minRow; i < maxRow; i++ {
			rect := rows.AllocateRect(geometry.Size{Width: rows.MaxRect().Width() - 40, Height: bigListRow})
			rows.FillRRect(rect, style.CornerRadius, rowColor(i))
		}
	})
}

func rowColor(i int) color.RGBA {
	switch {
	case i%1000 == 0:
		return colornames.Tomato
	case i%2 == 0:
		return colornames.Steelblue
	default:
		return colornames.Slategray
	}
}
