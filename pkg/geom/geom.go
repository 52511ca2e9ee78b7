// Package geom provides the floating-point geometry shared by the chart
// engine, its drawing contexts, and its host surfaces.
//
// Coordinates follow the screen convention: X grows to the right and Y grows
// downward. A [Rect] is described by its top-left corner and its size.
package geom

import "math"

// Point is a location in chart coordinates.
type Point struct {
	X, Y float64
}

// Size is a two-dimensional extent.
type Size struct {
	Width, Height float64
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a Rect from its origin and size.
func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the extent of the rectangle.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset returns the rectangle shrunk by the given insets.
// Negative insets grow it.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Left - in.Right,
		Height: r.Height - in.Top - in.Bottom,
	}
}

// Intersect returns the overlapping region of r and other.
// Non-overlapping rectangles yield the zero Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := math.Max(r.MinX(), other.MinX())
	y := math.Max(r.MinY(), other.MinY())
	right := math.Min(r.MaxX(), other.MaxX())
	bottom := math.Min(r.MaxY(), other.MaxY())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Intersects reports whether the two rectangles overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Contains reports whether p lies inside r. The right and bottom edges are
// outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Insets holds a distance for each side of a box.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// InsetsAll returns Insets with the same value on every side.
func InsetsAll(v float64) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// IsZero reports whether every side is zero.
func (in Insets) IsZero() bool {
	return in.Top == 0 && in.Left == 0 && in.Bottom == 0 && in.Right == 0
}

// Lerp interpolates linearly between a and b. t outside [0, 1] extrapolates.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// LerpInsets interpolates every side of a and b.
func LerpInsets(a, b Insets, t float64) Insets {
	return Insets{
		Top:    Lerp(a.Top, b.Top, t),
		Left:   Lerp(a.Left, b.Left, t),
		Bottom: Lerp(a.Bottom, b.Bottom, t),
		Right:  Lerp(a.Right, b.Right, t),
	}
}

// LerpRect interpolates origin and size of a and b.
func LerpRect(a, b Rect, t float64) Rect {
	return Rect{
		X:      Lerp(a.X, b.X, t),
		Y:      Lerp(a.Y, b.Y, t),
		Width:  Lerp(a.Width, b.Width, t),
		Height: Lerp(a.Height, b.Height, t),
	}
}
