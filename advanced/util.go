package advanced

import "math"

const Tolerance = 1e-9

// Looser tolerance for area comparisons, where errors accumulate over many
// cross products.
const Epsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, nearly collinear vertices end up being treated as
// reflex and we produce absurdly thin pieces.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop the top point. The second return value is false if the stack was empty.
func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// The point just below the top of the stack.
func (s *PointStack) PeekSecond() (Point, bool) {
	if len(*s) < 2 {
		return Point{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}
