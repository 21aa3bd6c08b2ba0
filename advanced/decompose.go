package advanced

// Convex decomposition by reflex vertex splitting. A polygon with no reflex
// vertices is already convex. Otherwise, the first reflex vertex is joined to
// another vertex by an internal diagonal, and both halves are decomposed in
// turn. Both halves always have fewer vertices than the polygon they came
// from, so the recursion ends.
//
// Diagonal choice is deterministic: fewest reflex vertices left in the two
// halves, then the most even split by vertex count, then the lowest target
// index.

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Sine of the largest angle between two edges that still counts as parallel
// when merging parallel edges.
const DefaultParallelTolerance = 1e-5

type DecomposeOptions struct {
	// If positive, convex pieces with more vertices than this are split further
	// into fans. Physics engines commonly cap polygon vertex counts. Values
	// below 3 are treated as 3.
	MaxVertices int
	// Remove collinear vertices and duplicate points before splitting.
	MergeParallelEdges bool
}

// Decompose a polygon into convex pieces whose union is the polygon and whose
// interiors do not overlap. The polygon must not cross itself (use
// TraceEdgeLobes first if it might), but it may touch itself at pinch points.
//
// A convex input is returned as a single piece, unchanged, including its
// winding. All other pieces wind counterclockwise.
func (poly Polygon) Decompose(opts DecomposeOptions) (result PolygonList, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	poly = poly.withoutDuplicates()
	if opts.MergeParallelEdges {
		poly = poly.MergeParallelEdges(DefaultParallelTolerance)
	}
	if poly.Len() < 3 {
		return nil, errors.Wrapf(ErrInvalidState, "cannot decompose polygon with %d distinct vertices", poly.Len())
	}

	var convex PolygonList
	if poly.IsConvex() {
		convex = PolygonList{poly}
	} else {
		if poly.HasCrossings() {
			return nil, errors.Wrap(ErrNoValidSplit, "polygon crosses itself, trace it first")
		}
		for _, lobe := range splitPinchPoints(poly) {
			if lobe.Len() < 3 || lobe.Area() <= Tolerance {
				continue
			}
			if lobe.IsCW() {
				lobe = lobe.Reverse()
			}
			convex = append(convex, decomposeSimple(lobe)...)
		}
	}

	for _, piece := range convex {
		result = append(result, limitVertices(piece, opts.MaxVertices)...)
	}
	if len(result) == 0 {
		return nil, errors.Wrap(ErrInvalidState, "polygon encloses no area")
	}
	return result, nil
}

// Decompose and pair each piece with its own copy of the prototype fixture.
func (poly Polygon) DecomposeWithFixture(proto FixtureDef, opts DecomposeOptions) ([]Piece, error) {
	list, err := poly.Decompose(opts)
	if err != nil {
		return nil, err
	}
	return list.Pieces(proto), nil
}

// Trace the polygon into the simple lobes of its outer boundary, then
// decompose every lobe.
func (poly Polygon) TraceAndDecompose(proto FixtureDef, opts DecomposeOptions) ([]Piece, error) {
	lobes, err := TraceEdgeLobes(poly)
	if err != nil {
		return nil, err
	}
	var list PolygonList
	for i, lobe := range lobes {
		pieces, err := lobe.Decompose(opts)
		if err != nil {
			return nil, errors.WithMessagef(err, "lobe %d", i)
		}
		list = append(list, pieces...)
	}
	return list.Pieces(proto), nil
}

// Split at vertices that appear more than once. Each lobe between two visits
// of the same point becomes its own polygon.
func splitPinchPoints(poly Polygon) PolygonList {
	n := poly.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !poly.Points[i].Equals(poly.Points[j]) {
				continue
			}
			inner := NewPolygonFromPoints(poly.Points[i:j])
			outer := append(append([]Point(nil), poly.Points[j:]...), poly.Points[:i]...)
			return append(splitPinchPoints(inner), splitPinchPoints(NewPolygonFromPoints(outer))...)
		}
	}
	return PolygonList{poly}
}

// Counterclockwise, simple polygon in; convex pieces out.
func decomposeSimple(poly Polygon) PolygonList {
	reflex := poly.ReflexVertices()
	if len(reflex) == 0 {
		return PolygonList{poly}
	}

	i := reflex[0]
	j, ok := bestDiagonal(poly, i)
	if !ok {
		fatalf(ErrNoValidSplit, "reflex vertex %d at %v has no internal diagonal", i, poly.Points[i])
	}
	a, b := splitAlongDiagonal(poly, i, j)
	slog.Debug("split polygon", "from", poly.Points[i], "to", poly.Points[j], "left", a.Len(), "right", b.Len())
	return append(decomposeSimple(a), decomposeSimple(b)...)
}

func bestDiagonal(poly Polygon, i int) (int, bool) {
	n := poly.Len()
	best := -1
	var bestReflex, bestBalance int
	for j := 0; j < n; j++ {
		if j == i || j == CircularIndex(i-1, n) || j == CircularIndex(i+1, n) {
			continue
		}
		if !isDiagonal(poly, i, j) {
			continue
		}
		a, b := splitAlongDiagonal(poly, i, j)
		reflex := len(a.ReflexVertices()) + len(b.ReflexVertices())
		balance := a.Len() - b.Len()
		if balance < 0 {
			balance = -balance
		}
		if best == -1 || reflex < bestReflex || (reflex == bestReflex && balance < bestBalance) {
			best, bestReflex, bestBalance = j, reflex, balance
		}
	}
	return best, best != -1
}

// The two halves share the diagonal's endpoints. Both keep the winding of the
// original.
func splitAlongDiagonal(poly Polygon, i, j int) (Polygon, Polygon) {
	n := poly.Len()
	var a, b []Point
	for k := i; ; k = CircularIndex(k+1, n) {
		a = append(a, poly.Points[k])
		if k == j {
			break
		}
	}
	for k := j; ; k = CircularIndex(k+1, n) {
		b = append(b, poly.Points[k])
		if k == i {
			break
		}
	}
	return NewPolygonFromPoints(a), NewPolygonFromPoints(b)
}

// Is the segment from vertex i to vertex j strictly inside the polygon? It
// must leave both endpoints into the interior, and it may not touch any edge
// other than those meeting at its endpoints.
func isDiagonal(poly Polygon, i, j int) bool {
	pi, pj := poly.Points[i], poly.Points[j]
	if pi.Equals(pj) {
		return false
	}
	if !inCone(poly, i, pj) || !inCone(poly, j, pi) {
		return false
	}
	n := poly.Len()
	diagonal := Segment{pi, pj}
	for k := 0; k < n; k++ {
		k1 := CircularIndex(k+1, n)
		if k == i || k1 == i || k == j || k1 == j {
			continue
		}
		if diagonal.Touches(poly.Edge(k)) {
			return false
		}
	}
	return true
}

// Does the direction from vertex i towards p point into the polygon's interior
// angle at i?
func inCone(poly Polygon, i int, p Point) bool {
	n := poly.Len()
	prev := poly.Points[CircularIndex(i-1, n)]
	cur := poly.Points[i]
	next := poly.Points[CircularIndex(i+1, n)]
	if !poly.IsReflex(i) {
		return isLeft(cur, p, prev) && isLeft(p, cur, next)
	}
	return !(isLeftOn(cur, p, next) && isLeftOn(p, cur, prev))
}

// Is c strictly left of the line through a and b?
func isLeft(a, b, c Point) bool {
	return normalizedOrientation(a, b, c) > Tolerance
}

func isLeftOn(a, b, c Point) bool {
	return normalizedOrientation(a, b, c) >= -Tolerance
}

func normalizedOrientation(a, b, c Point) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	lengths := ab.Length() * ac.Length()
	if lengths == 0 {
		return 0
	}
	return ab.Cross(ac) / lengths
}

// Fan split a convex polygon so that no piece has more than max vertices.
func limitVertices(poly Polygon, max int) PolygonList {
	if max <= 0 || poly.Len() <= max {
		return PolygonList{poly}
	}
	if max < 3 {
		max = 3
	}
	var result PolygonList
	points := poly.Points
	for len(points) > max {
		result = append(result, NewPolygonFromPoints(points[:max]))
		points = append([]Point{points[0]}, points[max-1:]...)
	}
	return append(result, NewPolygonFromPoints(points))
}
