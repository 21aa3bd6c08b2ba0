package occluder

import (
	"math"

	"github.com/solarlune/resolv"
)

// Spatial index of hulls over a fixed world region, so that point and box
// queries only look at nearby hulls. Hulls in the index report their own
// movement, so callers only need to Add and Remove.
//
// Hulls outside the region can be added, but queries will not find them.
type Index struct {
	space   *resolv.Space
	origin  Point
	objects map[*ConvexHull]*resolv.Object
}

func NewIndex(bounds AABB, cellSize int) *Index {
	if cellSize < 1 {
		cellSize = 1
	}
	// The space only holds whole cells. One more than fits keeps the partial
	// last row and column, and the upper edge of the region.
	cells := func(size float64) int {
		return (int(math.Floor(size/float64(cellSize))) + 1) * cellSize
	}
	return &Index{
		space:   resolv.NewSpace(cells(bounds.Width()), cells(bounds.Height()), cellSize, cellSize),
		origin:  bounds.Lower,
		objects: make(map[*ConvexHull]*resolv.Object),
	}
}

func (idx *Index) Len() int {
	return len(idx.objects)
}

func (idx *Index) Add(hull *ConvexHull) error {
	if _, ok := idx.objects[hull]; ok {
		return nil
	}
	if hull.index != nil {
		hull.index.Remove(hull)
	}
	if !hull.HasCalculatedAABB() {
		if err := hull.CalculateAABB(); err != nil {
			return err
		}
	}
	object := resolv.NewObject(0, 0, 0, 0)
	idx.place(object, hull.AABB())
	object.Data = hull
	idx.space.Add(object)
	idx.objects[hull] = object
	hull.index = idx
	return nil
}

func (idx *Index) Remove(hull *ConvexHull) {
	object, ok := idx.objects[hull]
	if !ok {
		return
	}
	idx.space.Remove(object)
	delete(idx.objects, hull)
	hull.index = nil
}

// Move a hull's entry to match its current bounds.
func (idx *Index) Update(hull *ConvexHull) {
	object, ok := idx.objects[hull]
	if !ok {
		return
	}
	idx.place(object, hull.AABB())
	object.Update()
}

// Set an object's bounds in space coordinates. resolv sizes objects in whole
// pixels and leaves out the last one, so the size is padded by one to keep the
// upper edge of the box in the cells it touches.
func (idx *Index) place(object *resolv.Object, box AABB) {
	lower := box.Lower.Sub(idx.origin)
	object.Position.X, object.Position.Y = lower.X, lower.Y
	object.Size.X, object.Size.Y = box.Width()+1, box.Height()+1
}

// Hulls containing p, boundary included.
func (idx *Index) QueryPoint(p Point) []*ConvexHull {
	var result []*ConvexHull
	for _, hull := range idx.candidates(AABB{Lower: p, Upper: p}) {
		if hull.PointInsideHull(p) {
			result = append(result, hull)
		}
	}
	return result
}

// Hulls whose bounds overlap the box.
func (idx *Index) QueryAABB(box AABB) []*ConvexHull {
	var result []*ConvexHull
	for _, hull := range idx.candidates(box) {
		if hull.AABB().Intersects(box) {
			result = append(result, hull)
		}
	}
	return result
}

// Every hull in a cell touched by the box, once each, in the order found.
func (idx *Index) candidates(box AABB) []*ConvexHull {
	lower := box.Lower.Sub(idx.origin)
	upper := box.Upper.Sub(idx.origin)
	minX, minY := idx.space.WorldToSpace(lower.X, lower.Y)
	maxX, maxY := idx.space.WorldToSpace(upper.X, upper.Y)

	seen := make(map[*ConvexHull]bool)
	var result []*ConvexHull
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cell := idx.space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, object := range cell.Objects {
				hull, ok := object.Data.(*ConvexHull)
				if !ok || seen[hull] {
					continue
				}
				seen[hull] = true
				result = append(result, hull)
			}
		}
	}
	return result
}
