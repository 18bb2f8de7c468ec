package renderer

// Point is a screen-space position in pixels.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned screen-space rectangle.
type Rect struct {
	Min  Point
	Size Size
}

// Size is a pixel extent.
type Size struct {
	Width  float64
	Height float64
}

// RectFromMinSize builds a rectangle from its top-left corner and size.
func RectFromMinSize(min Point, size Size) Rect {
	return Rect{Min: min, Size: size}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: r.Min.X + r.Size.Width/2,
		Y: r.Min.Y + r.Size.Height/2,
	}
}
