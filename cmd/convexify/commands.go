package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"

	"github.com/osuushi/convexify/advanced"
	"github.com/osuushi/convexify/dbg"
	"github.com/osuushi/convexify/occluder"
	"github.com/osuushi/convexify/physics"
	"github.com/pkg/errors"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-out-sine": ease.InOutSine,
	"out-bounce":  ease.OutBounce,
}

func easingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *app) input(svgPath string) ([]advanced.Polygon, error) {
	if svgPath == "" {
		return readPolygons(a.in)
	}
	f, err := os.Open(svgPath)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", svgPath)
	}
	defer f.Close()
	return readSVGPolygons(f)
}

func (a *app) dump(values ...interface{}) {
	if *a.verbose {
		fmt.Fprint(a.err, dbg.Dump(values...))
	}
}

func (a *app) runDecompose() error {
	d := &a.decompose
	polygons, err := a.input(*d.svg)
	if err != nil {
		return err
	}
	proto, err := a.fixtureDef(*d.fixture)
	if err != nil {
		return err
	}
	opts := advanced.DecomposeOptions{MaxVertices: *d.maxVertices, MergeParallelEdges: *d.merge}

	var all advanced.PolygonList
	for i, poly := range polygons {
		var pieces []advanced.Piece
		if *d.trace {
			pieces, err = poly.TraceAndDecompose(proto, opts)
		} else {
			pieces, err = poly.DecomposeWithFixture(proto, opts)
		}
		if err != nil {
			return errors.WithMessagef(err, "polygon %d", i)
		}
		a.dump(pieces)
		for _, piece := range pieces {
			if len(all) > 0 {
				fmt.Fprintln(a.out)
			}
			writePolygon(a.out, piece.Polygon)
			all = append(all, piece.Polygon)
		}
	}
	slog.Info("decomposed", "polygons", len(polygons), "pieces", len(all), "area", all.Area())

	if *d.png != "" {
		if err := all.DrawPNG(*d.png, *d.scale); err != nil {
			return err
		}
		if *d.imgcat {
			return advanced.CatPNG(*d.png)
		}
	}
	return nil
}

func (a *app) runHull() error {
	polygons, err := readPolygons(a.in)
	if err != nil {
		return err
	}
	var points []advanced.Point
	for _, poly := range polygons {
		points = append(points, poly.Points...)
	}
	hull, err := advanced.ConvexHull(points)
	if err != nil {
		return err
	}
	a.dump(hull.Points)
	writePolygon(a.out, hull)
	return nil
}

func (a *app) runTrace() error {
	polygons, err := readPolygons(a.in)
	if err != nil {
		return err
	}
	first := true
	for i, poly := range polygons {
		var traced advanced.PolygonList
		if *a.trace.lobes {
			traced, err = advanced.TraceEdgeLobes(poly)
		} else {
			var largest advanced.Polygon
			largest, err = advanced.TraceEdge(poly)
			traced = advanced.PolygonList{largest}
		}
		if err != nil {
			return errors.WithMessagef(err, "polygon %d", i)
		}
		for _, lobe := range traced {
			if !first {
				fmt.Fprintln(a.out)
			}
			first = false
			writePolygon(a.out, lobe)
		}
	}
	return nil
}

func (a *app) runInside() error {
	i := &a.inside
	p := advanced.Point{X: *i.x, Y: *i.y}

	hulls := make([]*occluder.ConvexHull, len(*i.hulls))
	bounds := advanced.AABB{Lower: p, Upper: p}
	for n, path := range *i.hulls {
		hull, err := occluder.LoadShape(path, *i.ptu)
		if err != nil {
			return err
		}
		hull.SetRotation(*i.rotation)
		hull.SetWorldCenter(advanced.Point{X: *i.centerX, Y: *i.centerY})
		if err := hull.CalculateAABB(); err != nil {
			return err
		}
		box := hull.AABB()
		bounds.Lower = advanced.Point{X: math.Min(bounds.Lower.X, box.Lower.X), Y: math.Min(bounds.Lower.Y, box.Lower.Y)}
		bounds.Upper = advanced.Point{X: math.Max(bounds.Upper.X, box.Upper.X), Y: math.Max(bounds.Upper.Y, box.Upper.Y)}
		hulls[n] = hull
	}

	index := occluder.NewIndex(bounds, *i.cellSize)
	for _, hull := range hulls {
		if err := index.Add(hull); err != nil {
			return err
		}
	}
	hits := index.QueryPoint(p)

	for n, hull := range hulls {
		fmt.Fprintf(a.out, "%s: %s\n", (*i.hulls)[n], hull.Classify(p))
	}
	fmt.Fprintf(a.out, "inside %d of %d\n", len(hits), len(hulls))
	a.dump(hulls)

	if *i.png != "" {
		return occluder.DrawPNG(*i.png, *i.pngScale, hulls, []advanced.Point{p})
	}
	return nil
}

func (a *app) runSpin() error {
	s := &a.spin
	if *s.frames < 1 {
		return errors.Errorf("need at least one frame, got %d", *s.frames)
	}
	hull, err := occluder.LoadShape(*s.hull, *s.ptu)
	if err != nil {
		return err
	}
	if err := hull.CalculateAABB(); err != nil {
		return err
	}

	tween := occluder.TweenRotation(hull, *s.to, float32(*s.duration), easings[*s.easing])
	dt := float32(*s.duration / float64(*s.frames))
	for frame := 1; !tween.Done; frame++ {
		tween.Update(dt)
		box := hull.AABB()
		fmt.Fprintf(a.out, "%d\t%.4f\t%.4f %.4f\t%.4f %.4f\n",
			frame, hull.Rotation(), box.Lower.X, box.Lower.Y, box.Upper.X, box.Upper.Y)
	}
	return nil
}

func (a *app) runSimulate() error {
	sim := &a.simulate
	polygons, err := readPolygons(a.in)
	if err != nil {
		return err
	}
	if len(polygons) == 0 {
		return errors.Wrap(advanced.ErrInvalidState, "no polygon on stdin")
	}

	world := physics.NewWorld(advanced.Point{X: 0, Y: -10})
	proto := a.cfg.FixtureDef()
	world.AddStaticBox(advanced.Point{X: 0, Y: -1}, 1000, 2, proto)

	pieces, err := polygons[0].TraceAndDecompose(proto, a.cfg.DecomposeOptions())
	if err != nil {
		return err
	}
	body, err := world.AddDecomposedBody(pieces, advanced.Point{X: 0, Y: *sim.height})
	if err != nil {
		return err
	}
	slog.Info("simulating body", "pieces", len(pieces), "mass", body.Mass())

	every := *sim.every
	if every < 1 {
		every = 1
	}
	for step := 1; step <= *sim.steps; step++ {
		world.Update(world.LockStep)
		if step%every == 0 || step == *sim.steps {
			position := physics.FromVector(body.Position())
			fmt.Fprintf(a.out, "%d\t%.4f %.4f\t%.4f\n", step, position.X, position.Y, body.Angle())
		}
	}
	return nil
}
