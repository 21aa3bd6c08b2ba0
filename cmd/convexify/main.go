package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/osuushi/convexify/advanced"
	"github.com/osuushi/convexify/internal/config"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for decomposition, hulls, tracing, and hull queries.
// Polygons are read on stdin as newline separated points in the form "x y",
// with each polygon separated by an extra newline, and written out the same
// way.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	app := newApp(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err := app.run(os.Args[1:]); err != nil {
		slog.Error("failed", "err", err)
		os.Exit(1)
	}
}

type app struct {
	cfg *config.Config
	in  io.Reader
	out io.Writer
	err io.Writer

	kingpin *kingpin.Application
	verbose *bool

	decompose struct {
		cmd         *kingpin.CmdClause
		svg         *string
		trace       *bool
		fixture     *string
		maxVertices *int
		merge       *bool
		png         *string
		scale       *float64
		imgcat      *bool
	}
	hull struct {
		cmd *kingpin.CmdClause
	}
	trace struct {
		cmd   *kingpin.CmdClause
		lobes *bool
	}
	inside struct {
		cmd      *kingpin.CmdClause
		x, y     *float64
		hulls    *[]string
		ptu      *float64
		rotation *float64
		centerX  *float64
		centerY  *float64
		png      *string
		pngScale *float64
		cellSize *int
	}
	spin struct {
		cmd      *kingpin.CmdClause
		hull     *string
		ptu      *float64
		to       *float64
		duration *float64
		frames   *int
		easing   *string
	}
	simulate struct {
		cmd    *kingpin.CmdClause
		steps  *int
		height *float64
		every  *int
	}
}

func newApp(cfg *config.Config, in io.Reader, out, errOut io.Writer) *app {
	a := &app{cfg: cfg, in: in, out: out, err: errOut}
	k := kingpin.New("convexify", "Convex decomposition of 2D polygons.")
	k.Writer(errOut)
	k.Terminate(nil)
	a.kingpin = k
	a.verbose = k.Flag("verbose", "Log debug output and dump results.").Short('v').Bool()

	ptu := strconv.FormatFloat(cfg.PixelsToUnits, 'g', -1, 64)

	d := &a.decompose
	d.cmd = k.Command("decompose", "Split polygons from stdin into convex pieces.")
	d.svg = d.cmd.Flag("svg", "Read polygons from an SVG file instead of stdin.").ExistingFile()
	d.trace = d.cmd.Flag("trace", "Trace self-intersecting outlines before decomposing.").Default("true").Bool()
	d.fixture = d.cmd.Flag("fixture", "YAML fixture definition to copy onto every piece.").ExistingFile()
	d.maxVertices = d.cmd.Flag("max-vertices", "Split pieces with more vertices than this. 0 for no limit.").
		Default(strconv.Itoa(cfg.MaxPolygonVertices)).Int()
	d.merge = d.cmd.Flag("merge", "Merge parallel edges first.").
		Default(strconv.FormatBool(cfg.MergeParallelEdges)).Bool()
	d.png = d.cmd.Flag("png", "Draw the pieces to a PNG file.").String()
	d.scale = d.cmd.Flag("scale", "Pixels per unit when drawing.").Default("20").Float64()
	d.imgcat = d.cmd.Flag("imgcat", "Print the drawing to the terminal (iTerm only).").Bool()

	a.hull.cmd = k.Command("hull", "Print the convex hull of the points on stdin.")
	a.trace.cmd = k.Command("trace", "Resolve self-intersecting polygons from stdin.")
	a.trace.lobes = a.trace.cmd.Flag("lobes", "Print every lobe of the outline, not just the largest.").Bool()

	i := &a.inside
	i.cmd = k.Command("inside", "Classify a point against hull shape files.")
	i.x = i.cmd.Arg("x", "Point x.").Required().Float64()
	i.y = i.cmd.Arg("y", "Point y.").Required().Float64()
	i.hulls = i.cmd.Arg("hulls", "Hull shape files.").Required().ExistingFiles()
	i.ptu = i.cmd.Flag("ptu", "Pixels to units.").Default(ptu).Float64()
	i.rotation = i.cmd.Flag("rotation", "Hull rotation in radians.").Default("0").Float64()
	i.centerX = i.cmd.Flag("center-x", "Hull world center x.").Default("0").Float64()
	i.centerY = i.cmd.Flag("center-y", "Hull world center y.").Default("0").Float64()
	i.png = i.cmd.Flag("png", "Draw the hulls and the point to a PNG file.").String()
	i.pngScale = i.cmd.Flag("scale", "Pixels per unit when drawing.").Default("20").Float64()
	i.cellSize = i.cmd.Flag("cell-size", "Spatial index cell size.").Default(strconv.Itoa(cfg.IndexCellSize)).Int()

	s := &a.spin
	s.cmd = k.Command("spin", "Print the bounds of a hull through an eased rotation.")
	s.hull = s.cmd.Arg("hull", "Hull shape file.").Required().ExistingFile()
	s.ptu = s.cmd.Flag("ptu", "Pixels to units.").Default(ptu).Float64()
	s.to = s.cmd.Flag("to", "Final rotation in radians.").Default("6.283185307179586").Float64()
	s.duration = s.cmd.Flag("duration", "Seconds.").Default("1").Float64()
	s.frames = s.cmd.Flag("frames", "Number of frames to print.").Default("10").Int()
	s.easing = s.cmd.Flag("ease", "Easing function.").Default("linear").Enum(easingNames()...)

	sim := &a.simulate
	sim.cmd = k.Command("simulate", "Drop the decomposed polygon from stdin onto the ground.")
	sim.steps = sim.cmd.Flag("steps", "Physics steps to run.").Default("120").Int()
	sim.height = sim.cmd.Flag("height", "Drop height.").Default("5").Float64()
	sim.every = sim.cmd.Flag("every", "Print the position every n steps.").Default("20").Int()

	return a
}

func (a *app) run(args []string) error {
	command, err := a.kingpin.Parse(args)
	if err != nil {
		return err
	}

	level := a.cfg.LogLevel
	if *a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(a.err, &slog.HandlerOptions{Level: level})))

	switch command {
	case a.decompose.cmd.FullCommand():
		return a.runDecompose()
	case a.hull.cmd.FullCommand():
		return a.runHull()
	case a.trace.cmd.FullCommand():
		return a.runTrace()
	case a.inside.cmd.FullCommand():
		return a.runInside()
	case a.spin.cmd.FullCommand():
		return a.runSpin()
	case a.simulate.cmd.FullCommand():
		return a.runSimulate()
	}
	return nil
}

func (a *app) fixtureDef(path string) (advanced.FixtureDef, error) {
	if path == "" {
		return a.cfg.FixtureDef(), nil
	}
	return advanced.LoadFixtureDef(path)
}
