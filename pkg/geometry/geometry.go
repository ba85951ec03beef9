// Package geometry provides the 2D primitives used throughout strut:
// offsets, sizes, rectangles, and the scalar interpolation helpers the
// scroll machinery is built on.
//
// All values are in logical pixels. Heights and widths may be
// math.Inf(1): an unbounded surface is how scrollable content declares
// "I can be arbitrarily tall".
package geometry

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale returns the offset multiplied by a scalar.
func (o Offset) Scale(factor float64) Offset {
	return Offset{X: o.X * factor, Y: o.Y * factor}
}

// Length returns the Euclidean magnitude of the offset.
func (o Offset) Length() float64 {
	return math.Hypot(o.X, o.Y)
}

// Normalized returns a unit-length offset in the same direction,
// or the zero offset if the length is zero.
func (o Offset) Normalized() Offset {
	length := o.Length()
	if length == 0 {
		return Offset{}
	}
	return Offset{X: o.X / length, Y: o.Y / length}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromMinSize constructs a Rect from its top-left corner and size.
func RectFromMinSize(min Offset, size Size) Rect {
	return Rect{
		Left:   min.X,
		Top:    min.Y,
		Right:  min.X + size.Width,
		Bottom: min.Y + size.Height,
	}
}

// RectFromCenterSize constructs a Rect centered on the given point.
func RectFromCenterSize(center Offset, size Size) Rect {
	return Rect{
		Left:   center.X - size.Width*0.5,
		Top:    center.Y - size.Height*0.5,
		Right:  center.X + size.Width*0.5,
		Bottom: center.Y + size.Height*0.5,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Min returns the top-left corner.
func (r Rect) Min() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Offset {
	return Offset{X: r.Right, Y: r.Bottom}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Expand returns the rect grown outward by the given margin on every side.
// A negative margin shrinks the rect.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top - margin,
		Right:  r.Right + margin,
		Bottom: r.Bottom + margin,
	}
}

// Clamp constrains a value between min and max bounds.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp linearly interpolates between from and to by t.
// t = 0 returns from, t = 1 returns to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Remap linearly maps value from the range [fromMin, fromMax] into
// [toMin, toMax] without clamping.
func Remap(value, fromMin, fromMax, toMin, toMax float64) float64 {
	if fromMax == fromMin {
		return toMin
	}
	t := (value - fromMin) / (fromMax - fromMin)
	return Lerp(toMin, toMax, t)
}

// RemapClamp maps value like Remap but clamps the result into the
// target range.
func RemapClamp(value, fromMin, fromMax, toMin, toMax float64) float64 {
	if value <= fromMin {
		return toMin
	}
	if value >= fromMax {
		return toMax
	}
	return Remap(value, fromMin, fromMax, toMin, toMax)
}
