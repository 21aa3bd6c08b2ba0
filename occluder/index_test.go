package occluder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxHull(t *testing.T, center Point, size float64) *ConvexHull {
	t.Helper()
	h := size / 2
	hull, err := NewConvexHull([]Point{{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}})
	require.NoError(t, err)
	hull.SetWorldCenter(center)
	return hull
}

func TestIndex(t *testing.T) {
	idx := NewIndex(AABB{Lower: Point{X: -100, Y: -100}, Upper: Point{X: 100, Y: 100}}, 16)

	a := boxHull(t, Point{X: -50, Y: -50}, 10)
	b := boxHull(t, Point{X: 50, Y: 50}, 10)
	c := boxHull(t, Point{X: 52, Y: 52}, 10)
	for _, hull := range []*ConvexHull{a, b, c} {
		require.NoError(t, idx.Add(hull))
	}
	assert.Equal(t, 3, idx.Len())
	assert.True(t, a.HasCalculatedAABB(), "adding calculates bounds")

	t.Run("point queries", func(t *testing.T) {
		assert.Equal(t, []*ConvexHull{a}, idx.QueryPoint(Point{X: -50, Y: -50}))
		assert.ElementsMatch(t, []*ConvexHull{b, c}, idx.QueryPoint(Point{X: 51, Y: 51}))
		assert.Empty(t, idx.QueryPoint(Point{X: 0, Y: 0}))
		assert.Equal(t, []*ConvexHull{a}, idx.QueryPoint(Point{X: -45, Y: -50}), "boundary counts")
	})

	t.Run("box queries", func(t *testing.T) {
		assert.ElementsMatch(t, []*ConvexHull{b, c}, idx.QueryAABB(AABB{Lower: Point{X: 40, Y: 40}, Upper: Point{X: 60, Y: 60}}))
		assert.ElementsMatch(t, []*ConvexHull{a, b, c}, idx.QueryAABB(AABB{Lower: Point{X: -100, Y: -100}, Upper: Point{X: 100, Y: 100}}))
		assert.Empty(t, idx.QueryAABB(AABB{Lower: Point{X: -10, Y: -10}, Upper: Point{X: 10, Y: 10}}))
	})

	t.Run("moving hulls updates the index", func(t *testing.T) {
		a.SetWorldCenter(Point{X: 0, Y: 0})
		assert.Equal(t, []*ConvexHull{a}, idx.QueryPoint(Point{X: 0, Y: 0}))
		assert.Empty(t, idx.QueryPoint(Point{X: -50, Y: -50}))

		a.IncWorldCenter(Point{X: 20, Y: 0})
		assert.Equal(t, []*ConvexHull{a}, idx.QueryPoint(Point{X: 20, Y: 0}))
	})

	t.Run("rotating hulls updates the index", func(t *testing.T) {
		long, err := NewConvexHull([]Point{{X: -30, Y: -1}, {X: 30, Y: -1}, {X: 30, Y: 1}, {X: -30, Y: 1}})
		require.NoError(t, err)
		long.SetWorldCenter(Point{X: -60, Y: 0})
		require.NoError(t, idx.Add(long))
		assert.Empty(t, idx.QueryPoint(Point{X: -60, Y: 25}))

		long.SetRotation(1.5707963267948966)
		assert.Equal(t, []*ConvexHull{long}, idx.QueryPoint(Point{X: -60, Y: 25}))
		idx.Remove(long)
	})

	t.Run("removal", func(t *testing.T) {
		idx.Remove(b)
		assert.Equal(t, 2, idx.Len())
		assert.Equal(t, []*ConvexHull{c}, idx.QueryPoint(Point{X: 51, Y: 51}))

		// Moving a removed hull doesn't touch the index
		b.SetWorldCenter(Point{X: 0, Y: 0})
		assert.Empty(t, idx.QueryPoint(Point{X: -1, Y: -1}))

		idx.Remove(b)
		assert.Equal(t, 2, idx.Len())
	})

	t.Run("moving between indexes", func(t *testing.T) {
		other := NewIndex(AABB{Upper: Point{X: 200, Y: 200}}, 32)
		require.NoError(t, other.Add(c))
		assert.Equal(t, 1, idx.Len())
		assert.Equal(t, []*ConvexHull{c}, other.QueryPoint(Point{X: 52, Y: 52}))
	})
}

func TestIndexRegionEdges(t *testing.T) {
	t.Run("region smaller than a cell", func(t *testing.T) {
		idx := NewIndex(AABB{Lower: Point{X: -1, Y: -1}, Upper: Point{X: 1, Y: 1}}, 32)
		hull := boxHull(t, Point{X: 0, Y: 0}, 2)
		require.NoError(t, idx.Add(hull))
		assert.Equal(t, []*ConvexHull{hull}, idx.QueryPoint(Point{X: 0, Y: 0}))
		assert.Equal(t, []*ConvexHull{hull}, idx.QueryPoint(Point{X: 1, Y: 1}))
	})

	t.Run("hull in the partial last cell", func(t *testing.T) {
		idx := NewIndex(AABB{Upper: Point{X: 100, Y: 100}}, 32)
		hull := boxHull(t, Point{X: 98, Y: 98}, 4)
		require.NoError(t, idx.Add(hull))
		assert.True(t, hull.PointInsideHull(Point{X: 98, Y: 98}))
		assert.Equal(t, []*ConvexHull{hull}, idx.QueryPoint(Point{X: 98, Y: 98}))
		assert.Equal(t, []*ConvexHull{hull}, idx.QueryPoint(Point{X: 100, Y: 100}))
	})

	t.Run("region of whole cells", func(t *testing.T) {
		idx := NewIndex(AABB{Upper: Point{X: 64, Y: 64}}, 32)
		hull := boxHull(t, Point{X: 63, Y: 63}, 2)
		require.NoError(t, idx.Add(hull))
		assert.Equal(t, []*ConvexHull{hull}, idx.QueryPoint(Point{X: 64, Y: 64}))
	})

	t.Run("small hull straddling a cell edge", func(t *testing.T) {
		idx := NewIndex(AABB{Upper: Point{X: 100, Y: 100}}, 32)
		hull := boxHull(t, Point{X: 32, Y: 10}, 0.5)
		require.NoError(t, idx.Add(hull))
		assert.Equal(t, []*ConvexHull{hull}, idx.QueryPoint(Point{X: 31.9, Y: 10}))
		assert.Equal(t, []*ConvexHull{hull}, idx.QueryPoint(Point{X: 32.2, Y: 10}))

		hull.SetWorldCenter(Point{X: 64, Y: 64})
		assert.Equal(t, []*ConvexHull{hull}, idx.QueryPoint(Point{X: 64.2, Y: 63.8}))
		assert.Empty(t, idx.QueryPoint(Point{X: 32, Y: 10}))
	})
}
