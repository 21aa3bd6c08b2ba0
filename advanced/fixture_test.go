package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW Polygon. If anything goes
// wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}
	result := NewPolygonFromPoints(points)

	// Ensure that the polygon is CCW
	if result.IsCW() {
		result = result.Reverse()
	}
	return result
}

// Some ad hoc code specified fixtures

// Five pointed star with its inner vertices included, so it is simple but
// heavily concave.
func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return NewPolygonFromPoints(points)
}

// Forty vertex gear, wound clockwise.
func Gear() Polygon {
	const n = 40
	var points []Point
	for i := 0; i < n; i++ {
		radius := 2.0
		if i%2 == 1 {
			radius = 1
		}
		angle := 2 * math.Pi * float64(i) / n
		points = append(points, Point{X: math.Sin(angle) * radius, Y: math.Cos(angle) * radius})
	}
	return NewPolygonFromPoints(points)
}

// Irregular, clockwise outline with a deep notch, in pixel units scaled down.
func Blob() Polygon {
	xs := []float64{
		-281.395, -242.967, -195.818, -142.336,
		-110.72, -64.2768, -4.57442, 48.9422,
		93.0067, 180.814, 236.762, 264.98,
		272.277, 262.918, 224.683, 178.101,
		114.358, 89.0376, 53.3651, -0.116635,
		-45.2516, -92.5334, -117.159, -146.302,
		-188.774, -236.76, -272.267,
	}
	ys := []float64{
		14.676, 26.0122, 33.3497, 34.6758,
		32.9536, 41.9926, 67.7013, 83.3058,
		101.334, 122.954, 129.058, 122.49,
		108.92, 93.9747, 87.6079, 103.261,
		55.9573, 48.7228, 58.7557, 44.8463,
		21.5937, -8.90518, -9.14116, 4.24852,
		7.52196, -12.0526, -14.1282,
	}
	for i := range xs {
		xs[i] *= 0.03
		ys[i] *= 0.03
	}
	return NewPolygon(xs, ys)
}

// Zigzag with a tail that cuts back across every rung, pinching the outline
// into several lobes.
func PinchLoop() Polygon {
	return NewPolygon(
		[]float64{-1, 1, -1, 1, -1, 1, 0},
		[]float64{-1, -1, 0, 0, 1, 1, 3},
	)
}

// Regular five pointed star given by its five tips only, so its edges cross.
func Pentagram() Polygon {
	var points []Point
	const size = 2
	for i := 0; i < 5; i++ {
		angle := 4 * math.Pi * float64(i) / 5
		points = append(points, Point{X: math.Sin(angle) * size, Y: math.Cos(angle) * size})
	}
	return NewPolygonFromPoints(points)
}

func UnitSquare() Polygon {
	return NewPolygonFromPoints([]Point{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}})
}

func LShape() Polygon {
	return NewPolygonFromPoints([]Point{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}})
}
