package advanced

import (
	"sort"

	"github.com/pkg/errors"
)

// Convex hull of an unordered point set using Andrew's monotone chain. The
// result winds counterclockwise, starting from the lowest-leftmost point, and
// contains only strict corners: points on the hull boundary between two
// corners are dropped. Every returned vertex is one of the inputs.
func ConvexHull(points []Point) (Polygon, error) {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Drop duplicates, which are adjacent after sorting
	distinct := sorted[:0]
	for _, p := range sorted {
		if len(distinct) > 0 && p.Equals(distinct[len(distinct)-1]) {
			continue
		}
		distinct = append(distinct, p)
	}
	if len(distinct) < 3 {
		return Polygon{}, errors.Wrapf(ErrDegenerateInput, "convex hull needs 3 distinct points, got %d", len(distinct))
	}

	lower := buildHullChain(distinct)
	reversed := make([]Point, len(distinct))
	for i, p := range distinct {
		reversed[len(distinct)-1-i] = p
	}
	upper := buildHullChain(reversed)

	// The last point of each chain is the first point of the other
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return Polygon{}, errors.Wrap(ErrDegenerateInput, "all points are collinear")
	}
	return NewPolygonFromPoints(hull), nil
}

// Convenience for the parallel array form used by fixture definitions.
func ConvexHullXY(xs, ys []float64) (Polygon, error) {
	return ConvexHull(NewPolygon(xs, ys).Points)
}

// One half of the monotone chain. Points that don't make a strict left turn
// are popped, which also removes collinear points.
func buildHullChain(sorted []Point) PointStack {
	chain := make(PointStack, 0, len(sorted))
	for _, p := range sorted {
		for len(chain) >= 2 {
			top, _ := chain.Peek()
			second, _ := chain.PeekSecond()
			if !isStrictLeftTurn(second, top, p) {
				chain.Pop()
				continue
			}
			break
		}
		chain.Push(p)
	}
	return chain
}

func isStrictLeftTurn(a, b, c Point) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.Cross(ac) > Tolerance*ab.Length()*ac.Length()
}
