package platform

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-strut/strut/pkg/geometry"
)

// rasterCanvas replays a display list onto an ebiten image. Clipping
// uses SubImage, which ebiten renders without extra draw calls.
type rasterCanvas struct {
	screen *ebiten.Image
	dst    *ebiten.Image
}

func newRasterCanvas(screen *ebiten.Image) *rasterCanvas {
	return &rasterCanvas{screen: screen, dst: screen}
}

func (c *rasterCanvas) SetClip(rect geometry.Rect) {
	clip := image.Rect(
		int(math.Floor(rect.Left)),
		int(math.Floor(rect.Top)),
		int(math.Ceil(rect.Right)),
		int(math.Ceil(rect.Bottom)),
	).Intersect(c.screen.Bounds())
	c.dst = c.screen.SubImage(clip).(*ebiten.Image)
}

func (c *rasterCanvas) FillRRect(rect geometry.Rect, radius float64, fill color.RGBA) {
	w := rect.Width()
	h := rect.Height()
	if w <= 0 || h <= 0 {
		return
	}
	radius = math.Min(radius, math.Min(w, h)/2)
	if radius <= 0 {
		vector.DrawFilledRect(c.dst, float32(rect.Left), float32(rect.Top), float32(w), float32(h), fill, false)
		return
	}

	x, y := float32(rect.Left), float32(rect.Top)
	r := float32(radius)
	fw, fh := float32(w), float32(h)

	// Center band plus two side bands, corners rounded with circles.
	vector.DrawFilledRect(c.dst, x+r, y, fw-2*r, fh, fill, false)
	vector.DrawFilledRect(c.dst, x, y+r, r, fh-2*r, fill, false)
	vector.DrawFilledRect(c.dst, x+fw-r, y+r, r, fh-2*r, fill, false)
	vector.DrawFilledCircle(c.dst, x+r, y+r, r, fill, true)
	vector.DrawFilledCircle(c.dst, x+fw-r, y+r, r, fill, true)
	vector.DrawFilledCircle(c.dst, x+r, y+fh-r, r, fill, true)
	vector.DrawFilledCircle(c.dst, x+fw-r, y+fh-r, r, fill, true)
}
