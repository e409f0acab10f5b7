package logic

import "math"

// Point is a location in control-local cell coordinates
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in control-local cell coordinates
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// MaxX returns the trailing edge
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether the rectangle covers no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r. Edges are half-open so that two
// rectangles sharing an edge never both contain a point on it.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Intersect clips r to other
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.MaxX(), other.MaxX())
	y1 := math.Min(r.MaxY(), other.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// CellSpan quantizes the span [start, start+length) to whole cells. A cell
// belongs to the span when its center lies inside it, which is the same rule
// Rect.Contains applies to a pointer at a cell center.
func CellSpan(start, length float64) (first, count int) {
	first = int(math.Ceil(start - 0.5))
	end := int(math.Ceil(start + length - 0.5))
	if end < first {
		end = first
	}
	return first, end - first
}

// CellCenter returns the control-local point at the center of a cell
func CellCenter(col, row int) Point {
	return Point{X: float64(col) + 0.5, Y: float64(row) + 0.5}
}
