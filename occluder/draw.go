package occluder

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/convexify/dbg"
	"github.com/pkg/errors"
)

// Padding around the scene in debug images
const dbgDrawPadding = 40

// Draw hulls, their bounds, and a set of probe points colored by how they
// classify against the hulls, to a PNG. For debugging.
func DrawPNG(path string, scale float64, hulls []*ConvexHull, probes []Point) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, hull := range hulls {
		for _, p := range hull.WorldVertices() {
			extend(p)
		}
	}
	for _, p := range probes {
		extend(p)
	}
	if math.IsInf(minX, 1) {
		return errors.New("nothing to draw")
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2 / scale)
	for _, hull := range hulls {
		drawHull(c, hull)
	}

	for _, p := range probes {
		switch classifyAgainstAll(hulls, p) {
		case Inside:
			c.SetRGB(0, 1, 0)
		case Boundary:
			c.SetRGB(1, 1, 0)
		default:
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "save %q", path)
}

func drawHull(c *gg.Context, hull *ConvexHull) {
	vertices := hull.WorldVertices()
	if len(vertices) == 0 {
		return
	}
	c.MoveTo(vertices[0].X, vertices[0].Y)
	for _, p := range vertices[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGBA(0.3, 0.2, 1, 0.5*(1-hull.Transparency)+0.1)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if hull.HasCalculatedAABB() {
		box := hull.AABB()
		c.DrawRectangle(box.Lower.X, box.Lower.Y, box.Width(), box.Height())
		c.SetRGBA(1, 1, 1, 0.3)
		c.Stroke()
	}

	// Label at the center. Text has to be drawn in native coordinates, or it
	// comes out upside down.
	x, y := c.TransformPoint(hull.WorldCenter().X, hull.WorldCenter().Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(dbg.Name(hull), x, y, 0.5, 0.5)
	c.Pop()
}

// The strongest containment among the hulls.
func classifyAgainstAll(hulls []*ConvexHull, p Point) Containment {
	result := Outside
	for _, hull := range hulls {
		if c := hull.Classify(p); c > result {
			result = c
		}
	}
	return result
}
