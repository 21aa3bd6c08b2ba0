package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/convexify/advanced"
	"github.com/pkg/errors"
)

// Read polygons from newline separated points in the form "x y", with each
// polygon separated by an extra newline.
func readPolygons(in io.Reader) ([]advanced.Polygon, error) {
	polygons := []advanced.Polygon{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []advanced.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, advanced.NewPolygonFromPoints(points))
				points = []advanced.Point{}
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, advanced.NewPolygonFromPoints(points))
	}
	return polygons, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return advanced.Point{}, errors.Wrapf(advanced.ErrParse, "expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(advanced.ErrParse, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(advanced.ErrParse, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}

// Every <polygon> element in an SVG document. This is not a full svg parser:
// transforms are ignored, and only the points attribute is read, as x,y pairs.
func readSVGPolygons(in io.Reader) ([]advanced.Polygon, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(advanced.ErrParse, err.Error())
	}

	var polygons []advanced.Polygon
	for _, element := range root.FindAll("polygon") {
		var points []advanced.Point
		for _, pointString := range strings.Fields(element.Attributes["points"]) {
			point, err := parsePoint(pointString)
			if err != nil {
				return nil, err
			}
			points = append(points, point)
		}
		polygons = append(polygons, advanced.NewPolygonFromPoints(points))
	}
	if len(polygons) == 0 {
		return nil, errors.Wrap(advanced.ErrParse, "no polygons in svg")
	}
	return polygons, nil
}

func writePolygon(out io.Writer, poly advanced.Polygon) {
	for _, p := range poly.Points {
		io.WriteString(out, strconv.FormatFloat(p.X, 'g', -1, 64)+" "+strconv.FormatFloat(p.Y, 'g', -1, 64)+"\n")
	}
}
