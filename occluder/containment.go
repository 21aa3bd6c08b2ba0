package occluder

import "github.com/osuushi/convexify/advanced"

// Where a point lies relative to a hull.
type Containment int

const (
	Outside Containment = iota
	Boundary
	Inside
)

func (c Containment) String() string {
	switch c {
	case Outside:
		return "Outside"
	case Boundary:
		return "Boundary"
	case Inside:
		return "Inside"
	}
	return "Unknown"
}

// Classify a world space point. Every edge must see the point on the same
// side for it to be inside. A point within tolerance of an edge line, with no
// other edge disagreeing, is on the boundary. Either winding works, but the
// hull must be convex.
func (hull *ConvexHull) Classify(p Point) Containment {
	n := hull.NumVertices()
	if n < 3 {
		return Outside
	}
	var left, right, onEdge bool
	for i := 0; i < n; i++ {
		start := hull.WorldVertex(i)
		side := hull.WorldVertex(advanced.CircularIndex(i+1, n)).Sub(start)
		length := side.Length()
		if length == 0 {
			continue
		}
		// Signed distance from the edge line
		distance := side.Cross(p.Sub(start)) / length
		switch {
		case distance > advanced.Tolerance:
			left = true
		case distance < -advanced.Tolerance:
			right = true
		default:
			onEdge = true
		}
		if left && right {
			return Outside
		}
	}
	if onEdge {
		return Boundary
	}
	return Inside
}

// Is the point inside the hull? Points on the boundary count as inside.
func (hull *ConvexHull) PointInsideHull(p Point) bool {
	return hull.Classify(p) != Outside
}
