package advanced

func (list PolygonList) Area() float64 {
	var area float64
	for _, poly := range list {
		area += poly.Area()
	}
	return area
}

// Even odd rule across every polygon in the list.
func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	crossingCount := 0
	for _, poly := range list {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

// Does any polygon in the list contain p? Unlike the even odd rule, this
// treats the list as a union, which is what a decomposition is.
func (list PolygonList) ContainsPointInAny(p Point) bool {
	for _, poly := range list {
		if poly.ContainsPointByEvenOdd(p) {
			return true
		}
	}
	return false
}

func (list PolygonList) Bounds() (AABB, error) {
	var points []Point
	for _, poly := range list {
		points = append(points, poly.Points...)
	}
	return Polygon{Points: points}.CalculateAABB()
}

func (list PolygonList) Pieces(proto FixtureDef) []Piece {
	pieces := make([]Piece, len(list))
	for i, poly := range list {
		pieces[i] = Piece{Polygon: poly, Fixture: proto.Clone()}
	}
	return pieces
}
