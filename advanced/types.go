package advanced

// Points are plain values. Unlike a triangulation, nothing here needs pointer
// identity for the input vertices: every algorithm either returns a subset of
// the input values or builds fresh polygons.
type Point struct {
	X float64
	Y float64
}

type Segment struct {
	Start Point
	End   Point
}

type PointStack []Point

type PolygonList []Polygon

// A convex output polygon paired with its own copy of the prototype fixture.
type Piece struct {
	Polygon Polygon
	Fixture FixtureDef
}
