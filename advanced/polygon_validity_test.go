package advanced

// This contains no actual tests. It is just a helper for testing decomposition
// validity.

import (
	"math"
	"testing"

	polyclip "github.com/ctessum/polyclip-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a decomposition is valid. The rules are:
// 1. Every piece is convex.
// 2. Every piece is a polygon with positive area.
// 3. The sum of the areas of all pieces is equal to the area of the polygon.
// 4. Sampled points are inside some piece iff they are inside the polygon.
//
// Together, 3 and 4 mean the pieces cover the polygon without overlapping.
func assertValidDecomposition(t *testing.T, polygon Polygon, pieces PolygonList) {
	t.Helper()
	require.NotEmpty(t, pieces)

	for i, piece := range pieces {
		require.GreaterOrEqual(t, piece.Len(), 3, "piece %d is degenerate", i)
		require.True(t, piece.IsConvex(), "piece %d is not convex: %v", i, piece.Points)
		require.Greater(t, piece.Area(), Tolerance, "piece %d has no area", i)
	}

	require.InDelta(t, polygon.Area(), pieces.Area(), Epsilon, "sum of the areas of all pieces is equal to the area of the polygon")

	validatePolygonsBySampling(t, pieces, polygon)
}

// Check that no two pieces overlap, by clipping every pair against each
// other. Shared edges are fine; they clip to nothing.
func assertNoOverlap(t *testing.T, pieces PolygonList) {
	t.Helper()
	for i := range pieces {
		for j := i + 1; j < len(pieces); j++ {
			overlap := toPolyclip(pieces[i]).Construct(polyclip.INTERSECTION, toPolyclip(pieces[j]))
			assert.InDelta(t, 0, polyclipArea(overlap), Epsilon, "pieces %d and %d overlap", i, j)
		}
	}
}

func toPolyclip(poly Polygon) polyclip.Polygon {
	contour := make(polyclip.Contour, poly.Len())
	for i, p := range poly.Points {
		contour[i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	return polyclip.Polygon{contour}
}

func polyclipArea(poly polyclip.Polygon) float64 {
	var area float64
	for _, contour := range poly {
		points := make([]Point, len(contour))
		for i, p := range contour {
			points[i] = Point{p.X, p.Y}
		}
		area += Polygon{Points: points}.Area()
	}
	return area
}

// Sample a grid over the bounding box, and check that every sample is covered
// by the pieces exactly when it is inside the expected polygon. Samples lying
// on (or extremely near) an edge are skipped, since containment there depends
// on the ray casting convention rather than on the geometry.
func validatePolygonsBySampling(t *testing.T, pieces PolygonList, expected Polygon) {
	t.Helper()
	box, err := expected.CalculateAABB()
	require.NoError(t, err)

	// Pad the bounding box by 10%
	xPadding := box.Width() * 0.1
	yPadding := box.Height() * 0.1
	minX, minY := box.Lower.X-xPadding, box.Lower.Y-yPadding
	maxX, maxY := box.Upper.X+xPadding, box.Upper.Y+yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50

	edges := append(PolygonList{expected}, pieces...)
	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			if nearAnyEdge(edges, p, step*1e-3) {
				continue
			}

			if expected.ContainsPointByEvenOdd(p) {
				assert.True(t, pieces.ContainsPointInAny(p), "point %v should be covered by the pieces", p)
			} else {
				assert.False(t, pieces.ContainsPointInAny(p), "point %v should not be covered by the pieces", p)
			}
		}
	}
}

func nearAnyEdge(list PolygonList, p Point, distance float64) bool {
	for _, poly := range list {
		for i := range poly.Points {
			edge := poly.Edge(i)
			d := edge.Direction()
			length := d.Length()
			if length == 0 {
				continue
			}
			t := math.Max(0, math.Min(1, p.Sub(edge.Start).Dot(d)/(length*length)))
			if edge.At(t).Sub(p).Length() < distance {
				return true
			}
		}
	}
	return false
}
