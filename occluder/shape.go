package occluder

import (
	"bufio"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/osuushi/convexify/advanced"
	"github.com/pkg/errors"
)

const maxShapeVertices = 1 << 16

// Read a hull shape. The format is a vertex count followed by that many x y
// pairs, all whitespace separated. Coordinates are multiplied by
// pixelsToUnits. Anything after the last pair is ignored.
func ReadShape(r io.Reader, pixelsToUnits float64) (*ConvexHull, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (float64, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, errors.Wrapf(advanced.ErrParse, "reading %s: %v", what, err)
			}
			return 0, errors.Wrapf(advanced.ErrParse, "unexpected end of input reading %s", what)
		}
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, errors.Wrapf(advanced.ErrParse, "invalid %s %q", what, scanner.Text())
		}
		return value, nil
	}

	count, err := next("vertex count")
	if err != nil {
		return nil, err
	}
	if count < 0 || count > maxShapeVertices || count != float64(int(count)) {
		return nil, errors.Wrapf(advanced.ErrParse, "invalid vertex count %g", count)
	}

	var points []Point
	for i := 0; i < int(count); i++ {
		x, err := next("x coordinate")
		if err != nil {
			return nil, errors.WithMessagef(err, "vertex %d", i)
		}
		y, err := next("y coordinate")
		if err != nil {
			return nil, errors.WithMessagef(err, "vertex %d", i)
		}
		points = append(points, Point{X: x * pixelsToUnits, Y: y * pixelsToUnits})
	}
	return NewConvexHull(points)
}

// Load a hull shape file. Failures are logged as well as returned, since a
// missing occluder is usually not fatal to the caller.
func LoadShape(path string, pixelsToUnits float64) (*ConvexHull, error) {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("could not load convex hull", "path", path, "err", err)
		return nil, errors.Wrapf(err, "load convex hull %q", path)
	}
	defer f.Close()

	hull, err := ReadShape(f, pixelsToUnits)
	if err != nil {
		slog.Warn("could not parse convex hull", "path", path, "err", err)
		return nil, errors.WithMessagef(err, "load convex hull %q", path)
	}
	return hull, nil
}
