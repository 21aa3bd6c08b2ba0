package occluder

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/osuushi/convexify/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type AABB = advanced.AABB

// A convex light occluder. The hull keeps its vertices in two forms: the
// original local shape, and the derived shape, which is the original rotated
// by the current rotation. World positions are the derived vertices offset by
// the world center.
type ConvexHull struct {
	ID uuid.UUID

	// How much light passes through the hull. 1 blocks nothing.
	Transparency float64
	// Draw light over the hull itself, rather than only casting shadows from it.
	RenderLightOverHull bool

	original    advanced.Polygon
	derived     advanced.Polygon
	worldCenter Point
	rotation    float64

	// World space bounds
	aabb           AABB
	aabbCalculated bool

	// Set while the hull is in an index, which is told when the hull moves
	index *Index
}

// Build a hull from vertices that are already a convex polygon.
func NewConvexHull(points []Point) (*ConvexHull, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(advanced.ErrDegenerateInput, "hull needs at least 3 vertices, got %d", len(points))
	}
	for i, p := range points {
		for j := i + 1; j < len(points); j++ {
			if p.Equals(points[j]) {
				return nil, errors.Wrapf(advanced.ErrDegenerateInput, "vertices %d and %d are both at %v", i, j, p)
			}
		}
	}
	if area := advanced.NewPolygonFromPoints(points).Area(); area <= advanced.Tolerance {
		return nil, errors.Wrapf(advanced.ErrDegenerateInput, "hull vertices are collinear (area %g)", area)
	}
	hull := &ConvexHull{
		ID:                  uuid.New(),
		Transparency:        1,
		RenderLightOverHull: true,
		original:            advanced.NewPolygonFromPoints(points),
		derived:             advanced.NewPolygonFromPoints(points),
	}
	hull.CalculateNormals()
	return hull, nil
}

// Build a hull around an arbitrary point cloud.
func NewConvexHullFromPoints(points []Point) (*ConvexHull, error) {
	poly, err := advanced.ConvexHull(points)
	if err != nil {
		return nil, err
	}
	return NewConvexHull(poly.Points)
}

func (hull *ConvexHull) String() string {
	return fmt.Sprintf("hull %s (%d vertices at %g, %g)", hull.ID, hull.NumVertices(), hull.worldCenter.X, hull.worldCenter.Y)
}

// Translate the local shape so that its vertex mean is the local origin.
func (hull *ConvexHull) CenterHull() error {
	if err := hull.original.CenterOnOrigin(); err != nil {
		return err
	}
	hull.SetRotation(hull.rotation)
	return nil
}

func (hull *ConvexHull) CalculateNormals() {
	hull.derived.SetNormals()
}

// Edge normals of the derived shape. These are not normalized: each has the
// length of its edge.
func (hull *ConvexHull) Normals() []Point {
	return hull.derived.Normals()
}

func (hull *ConvexHull) CalculateAABB() error {
	box, err := hull.derived.CalculateAABB()
	if err != nil {
		return err
	}
	box.IncCenter(hull.worldCenter)
	hull.aabb = box
	hull.aabbCalculated = true
	return nil
}

func (hull *ConvexHull) HasCalculatedAABB() bool {
	return hull.aabbCalculated
}

// World space bounds. Only meaningful once CalculateAABB has been called.
func (hull *ConvexHull) AABB() AABB {
	return hull.aabb
}

// Rotate the original shape about the local origin. Angles are absolute, in
// radians.
func (hull *ConvexHull) SetRotation(angle float64) {
	hull.rotation = angle
	points := make([]Point, hull.original.Len())
	for i, p := range hull.original.Points {
		points[i] = p.Rotate(angle)
	}
	hull.derived.SetPoints(points)
	hull.CalculateNormals()

	if hull.aabbCalculated {
		// Only fails for a hull without vertices, which NewConvexHull rejects
		if err := hull.CalculateAABB(); err != nil {
			hull.aabbCalculated = false
			return
		}
		hull.treeUpdate()
	}
}

func (hull *ConvexHull) Rotation() float64 {
	return hull.rotation
}

func (hull *ConvexHull) SetWorldCenter(center Point) {
	hull.IncWorldCenter(center.Sub(hull.worldCenter))
}

func (hull *ConvexHull) IncWorldCenter(increment Point) {
	hull.worldCenter = hull.worldCenter.Add(increment)
	if hull.aabbCalculated {
		hull.aabb.IncCenter(increment)
		hull.treeUpdate()
	}
}

func (hull *ConvexHull) WorldCenter() Point {
	return hull.worldCenter
}

func (hull *ConvexHull) NumVertices() int {
	return hull.derived.Len()
}

func (hull *ConvexHull) WorldVertex(i int) Point {
	return hull.derived.Points[i].Add(hull.worldCenter)
}

func (hull *ConvexHull) WorldVertices() []Point {
	points := make([]Point, hull.NumVertices())
	for i := range points {
		points[i] = hull.WorldVertex(i)
	}
	return points
}

// The derived shape in world space, as a polygon.
func (hull *ConvexHull) WorldPolygon() advanced.Polygon {
	return advanced.NewPolygonFromPoints(hull.WorldVertices())
}

func (hull *ConvexHull) treeUpdate() {
	if hull.index != nil {
		hull.index.Update(hull)
	}
}
