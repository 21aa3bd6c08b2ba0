package advanced

import "math"

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Z component of the 3D cross product. Positive when q is counterclockwise of p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Left hand perpendicular, (-y, x). This is the edge normal convention used
// throughout: it is not normalized.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit vector in the direction of p. The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Rotate about the origin by angle radians (counterclockwise).
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower".
func (p Point) Below(q Point) bool {
	if Equal(p.Y, q.Y) {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Twice the signed area of the triangle abc. Positive when abc turns left.
func Orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
