package advanced

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// This is for debugging purposes only

// Padding around the shapes in debug images
const dbgDrawPadding = 20

// Draw the list to a PNG, one translucent fill per polygon so that overlaps
// show up darker. The origin is at the bottom left, as in the geometry.
func (list PolygonList) DrawPNG(path string, scale float64) error {
	box, err := list.Bounds()
	if err != nil {
		return err
	}

	width := int(scale*box.Width()) + dbgDrawPadding*2
	height := int(scale*box.Height()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-box.Lower.X, -box.Lower.Y)

	c.SetLineWidth(2 / scale)
	for _, poly := range list {
		if poly.Len() == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	return errors.Wrapf(c.SavePNG(path), "save %q", path)
}

// Print a PNG to the terminal (iTerm only).
func CatPNG(path string) error {
	return imgcat.CatFile(path, os.Stdout)
}

// Draw to a temp file and print it to the terminal.
func (list PolygonList) dbgDraw(scale float64) {
	const path = "/tmp/polygon_list.png"
	if err := list.DrawPNG(path, scale); err != nil {
		return
	}
	CatPNG(path)
}
