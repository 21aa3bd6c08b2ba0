package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// An ordered vertex loop. The order of Points defines both edge adjacency and
// winding. Edge normals are derived lazily: replacing the points through
// SetPoints marks them stale. If you mutate Points in place, call SetNormals.
type Polygon struct {
	Points []Point

	normals      []Point
	normalsStale bool
}

// Build a polygon from parallel coordinate arrays. If the arrays differ in
// length, the extra coordinates are ignored.
func NewPolygon(xs, ys []float64) Polygon {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{xs[i], ys[i]}
	}
	return Polygon{Points: points, normalsStale: true}
}

func NewPolygonFromPoints(points []Point) Polygon {
	poly := Polygon{}
	poly.SetPoints(points)
	return poly
}

// Replace the vertex list. The slice is copied.
func (poly *Polygon) SetPoints(points []Point) {
	poly.Points = append([]Point(nil), points...)
	poly.normalsStale = true
}

// Deep copy.
func (poly Polygon) Copy() Polygon {
	return NewPolygonFromPoints(poly.Points)
}

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// The i'th edge, from vertex i to vertex i+1, wrapping around.
func (poly Polygon) Edge(i int) Segment {
	n := len(poly.Points)
	return Segment{poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]}
}

// Recompute the edge normals. Each normal is the left perpendicular of its
// edge, (-(dy), dx), and keeps the edge's length.
func (poly *Polygon) SetNormals() {
	// Always a fresh slice, since polygon values may share the old one
	poly.normals = make([]Point, len(poly.Points))
	for i := range poly.Points {
		poly.normals[i] = poly.Edge(i).Direction().Perp()
	}
	poly.normalsStale = false
}

// Edge normals, recomputed if the vertices have been replaced since the last
// call.
func (poly *Polygon) Normals() []Point {
	if poly.normalsStale || len(poly.normals) != len(poly.Points) {
		poly.SetNormals()
	}
	return poly.normals
}

func (poly Polygon) CalculateAABB() (AABB, error) {
	if len(poly.Points) == 0 {
		return AABB{}, errors.Wrap(ErrInvalidState, "cannot calculate bounding box of empty polygon")
	}
	box := AABB{Lower: poly.Points[0], Upper: poly.Points[0]}
	for _, p := range poly.Points[1:] {
		box.Lower.X = math.Min(box.Lower.X, p.X)
		box.Lower.Y = math.Min(box.Lower.Y, p.Y)
		box.Upper.X = math.Max(box.Upper.X, p.X)
		box.Upper.Y = math.Max(box.Upper.Y, p.Y)
	}
	return box, nil
}

// Arithmetic mean of the vertices. Note that this is not the area centroid.
func (poly Polygon) VertexMean() Point {
	var sum Point
	for _, p := range poly.Points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(poly.Points)))
}

// Translate the polygon so that the mean of its vertices is the origin.
// Translation leaves edge vectors alone, so normals are not touched.
func (poly *Polygon) CenterOnOrigin() error {
	if len(poly.Points) == 0 {
		return errors.Wrap(ErrInvalidState, "cannot center empty polygon")
	}
	mean := poly.VertexMean()
	for i := range poly.Points {
		poly.Points[i] = poly.Points[i].Sub(mean)
	}
	return nil
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.Cross(q)
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Area centroid. Falls back to the vertex mean for degenerate polygons.
func (poly Polygon) Centroid() Point {
	area := poly.SignedArea()
	if math.Abs(area) < Tolerance {
		return poly.VertexMean()
	}
	var c Point
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		cross := p.Cross(q)
		c = c.Add(p.Add(q).Scale(cross))
	}
	return c.Scale(1 / (6 * area))
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{normalsStale: true}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Sine of the turn at vertex i, positive for a left turn. Normalizing by the
// edge lengths keeps the collinearity tolerance independent of scale.
func (poly Polygon) turn(i int) float64 {
	n := len(poly.Points)
	prev := poly.Points[CircularIndex(i-1, n)]
	cur := poly.Points[i]
	next := poly.Points[CircularIndex(i+1, n)]
	in := cur.Sub(prev)
	out := next.Sub(cur)
	lengths := in.Length() * out.Length()
	if lengths == 0 {
		return 0
	}
	return in.Cross(out) / lengths
}

// Is vertex i reflex, assuming counterclockwise winding? Collinear vertices
// are not reflex.
func (poly Polygon) IsReflex(i int) bool {
	return poly.turn(i) < -Tolerance
}

// Indexes of reflex vertices, assuming counterclockwise winding.
func (poly Polygon) ReflexVertices() []int {
	var result []int
	for i := range poly.Points {
		if poly.IsReflex(i) {
			result = append(result, i)
		}
	}
	return result
}

// A polygon is convex if it turns in only one direction and winds around
// exactly once. The winding check rejects star polygons like the pentagram,
// which turn consistently but cross themselves. Either winding is accepted.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 || poly.Area() < Tolerance {
		return false
	}
	var sawLeft, sawRight bool
	var totalTurn float64
	for i := range poly.Points {
		turn := poly.turn(i)
		if turn > Tolerance {
			sawLeft = true
		} else if turn < -Tolerance {
			sawRight = true
		}
		prev := poly.Points[CircularIndex(i-1, n)]
		cur := poly.Points[i]
		next := poly.Points[CircularIndex(i+1, n)]
		in := cur.Sub(prev)
		out := next.Sub(cur)
		totalTurn += math.Atan2(in.Cross(out), in.Dot(out))
	}
	if sawLeft && sawRight {
		return false
	}
	return math.Abs(math.Abs(totalTurn)-2*math.Pi) < Epsilon
}

// A polygon is simple if no two non-adjacent edges touch, adjacent edges only
// share their common endpoint, and no edge has zero length.
func (poly Polygon) IsSimple() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		edge := poly.Edge(i)
		if edge.Length() < Tolerance {
			return false
		}
		// An adjacent edge folding back over this one
		next := poly.Edge(i + 1)
		if math.Abs(edge.Direction().Cross(next.Direction())) <= Tolerance*edge.Length()*next.Length() &&
			edge.Direction().Dot(next.Direction()) < 0 {
			return false
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if edge.Touches(poly.Edge(j)) {
				return false
			}
		}
	}
	return true
}

// Winding rule point-in-polygon. This is mostly useful for testing: for convex
// polygons, a half plane test is cheaper.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray from p towards +X. Uses the lexicographic
// Below() convention so that rays through vertices are counted once.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if vertex.Below(p) == nextVertex.Below(p) {
			continue
		}
		// Solve for the edge's x at p.Y
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Same vertices in the same order, within tolerance.
func (poly Polygon) Equals(other Polygon) bool {
	if len(poly.Points) != len(other.Points) {
		return false
	}
	for i, p := range poly.Points {
		if !p.Equals(other.Points[i]) {
			return false
		}
	}
	return true
}

// Same cyclic vertex sequence, possibly starting at a different vertex.
func (poly Polygon) EqualsUpToRotation(other Polygon) bool {
	n := len(poly.Points)
	if n != len(other.Points) {
		return false
	}
	if n == 0 {
		return true
	}
	for offset := 0; offset < n; offset++ {
		match := true
		for i := 0; i < n; i++ {
			if !poly.Points[i].Equals(other.Points[CircularIndex(i+offset, n)]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Remove zero length edges, and vertices whose two edges are parallel and
// continue in the same direction. tolerance is the largest sine of the angle
// between the edges that still counts as parallel. If fewer than three
// vertices would remain, the polygon is returned unchanged.
func (poly Polygon) MergeParallelEdges(tolerance float64) Polygon {
	if len(poly.Points) <= 3 {
		return poly.Copy()
	}
	distinct := poly.withoutDuplicates()
	n := distinct.Len()
	keep := make([]Point, 0, n)
	for i, cur := range distinct.Points {
		prev := distinct.Points[CircularIndex(i-1, n)]
		next := distinct.Points[CircularIndex(i+1, n)]
		in := cur.Sub(prev).Normalize()
		out := next.Sub(cur).Normalize()
		if math.Abs(in.Cross(out)) < tolerance && in.Dot(out) > 0 {
			continue
		}
		keep = append(keep, cur)
	}
	if len(keep) < 3 {
		return poly.Copy()
	}
	return NewPolygonFromPoints(keep)
}

// Drop vertices equal to their successor.
func (poly Polygon) withoutDuplicates() Polygon {
	n := len(poly.Points)
	keep := make([]Point, 0, n)
	for i, cur := range poly.Points {
		if n > 1 && cur.Equals(poly.Points[CircularIndex(i+1, n)]) {
			continue
		}
		keep = append(keep, cur)
	}
	return NewPolygonFromPoints(keep)
}
