// Convex decomposition of 2D polygons for physics engines.
//
// This package takes a polygon, which may be concave and may even cross
// itself, and converts it into a set of convex polygons whose union is the
// original shape. Each piece is paired with its own copy of a fixture
// definition, ready to be attached to a physics body.
//
// It also builds convex hulls from point clouds. See the occluder package for
// transformable hulls with point queries.
package convexify

import "github.com/osuushi/convexify/advanced"

type Point = advanced.Point
type Polygon = advanced.Polygon
type PolygonList = advanced.PolygonList
type FixtureDef = advanced.FixtureDef
type Piece = advanced.Piece
type DecomposeOptions = advanced.DecomposeOptions

// Error kinds, for use with errors.Is.
var (
	ErrInvalidState               = advanced.ErrInvalidState
	ErrDegenerateInput            = advanced.ErrDegenerateInput
	ErrSelfIntersectionUnresolved = advanced.ErrSelfIntersectionUnresolved
	ErrNoValidSplit               = advanced.ErrNoValidSplit
	ErrParse                      = advanced.ErrParse
)

// Convert a point list into convex pieces, each carrying a copy of proto.
//
// The points may be in either winding. If the outline crosses itself, it is
// first traced into the outline of the region it encloses.
func Decompose(points []Point, proto FixtureDef, opts DecomposeOptions) ([]Piece, error) {
	return advanced.NewPolygonFromPoints(points).TraceAndDecompose(proto, opts)
}

// Convex hull of a point cloud, counterclockwise.
func ConvexHull(points []Point) (Polygon, error) {
	return advanced.ConvexHull(points)
}

// Resolve a self-intersecting outline into the largest simple loop on its
// boundary. A polygon that is already simple is returned unchanged.
func TraceEdge(points []Point) (Polygon, error) {
	return advanced.TraceEdge(advanced.NewPolygonFromPoints(points))
}

// Like TraceEdge, but keeps every lobe of the boundary.
func TraceEdgeLobes(points []Point) (PolygonList, error) {
	return advanced.TraceEdgeLobes(advanced.NewPolygonFromPoints(points))
}

func LoadFixtureDef(path string) (FixtureDef, error) {
	return advanced.LoadFixtureDef(path)
}
