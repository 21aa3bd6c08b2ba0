package physics

// Consumer of decomposition output: every convex piece becomes one polygon
// shape on a shared body, with its material taken from the piece's own
// fixture copy.

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/osuushi/convexify/advanced"
	"github.com/pkg/errors"
)

// Default physics tick, in seconds.
const DefaultLockStep = 1.0 / 60

// Cap on steps per Update, so a long stall doesn't spiral.
const maxStepsPerUpdate = 8

type World struct {
	// Fixed physics tick, in seconds.
	LockStep float64

	space       *cp.Space
	accumulator float64
}

func NewWorld(gravity advanced.Point) *World {
	space := cp.NewSpace()
	space.SetGravity(toVector(gravity))
	return &World{
		LockStep: DefaultLockStep,
		space:    space,
	}
}

func (w *World) Space() *cp.Space {
	return w.space
}

// The space's built in static body, which static shapes attach to.
func (w *World) Ground() *cp.Body {
	return w.space.StaticBody
}

// Add a dynamic body made of the given convex pieces, in body local
// coordinates. Mass and moment come from the pieces' densities. Pieces with
// no density get a small default, since a dynamic body must have mass.
func (w *World) AddDecomposedBody(pieces []advanced.Piece, position advanced.Point) (*cp.Body, error) {
	if len(pieces) == 0 {
		return nil, errors.Wrap(advanced.ErrInvalidState, "body has no pieces")
	}
	for i, piece := range pieces {
		if !piece.Polygon.IsConvex() {
			return nil, errors.Wrapf(advanced.ErrInvalidState, "piece %d is not convex", i)
		}
	}

	body := w.space.AddBody(cp.NewBody(0, 0))
	body.SetPosition(toVector(position))
	for _, piece := range pieces {
		poly := piece.Polygon
		if poly.IsCW() {
			poly = poly.Reverse()
		}
		verts := make([]cp.Vector, poly.Len())
		for j, p := range poly.Points {
			verts[j] = toVector(p)
		}

		shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
		density := piece.Fixture.Density
		if density <= 0 {
			density = 1
		}
		shape.SetDensity(density)
		shape.SetFriction(piece.Fixture.Friction)
		shape.SetElasticity(piece.Fixture.Restitution)
		shape.SetSensor(piece.Fixture.IsSensor)
		w.space.AddShape(shape)
	}

	slog.Debug("added decomposed body", "pieces", len(pieces), "mass", body.Mass())
	return body, nil
}

// Add a static box to the ground body, centered on center.
func (w *World) AddStaticBox(center advanced.Point, width, height float64, fixture advanced.FixtureDef) *cp.Shape {
	hw, hh := width/2, height/2
	verts := []cp.Vector{
		{X: center.X - hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y + hh},
	}
	shape := cp.NewPolyShape(w.Ground(), len(verts), verts, cp.NewTransformIdentity(), 0)
	shape.SetFriction(fixture.Friction)
	shape.SetElasticity(fixture.Restitution)
	return w.space.AddShape(shape)
}

// Advance by dt seconds of wall time, in whole lock steps. Leftover time is
// carried to the next call. Returns the fraction of a step left over, for
// interpolating rendered positions.
func (w *World) Update(dt float64) float64 {
	if w.LockStep <= 0 {
		w.LockStep = DefaultLockStep
	}
	w.accumulator += dt
	steps := 0
	for w.accumulator >= w.LockStep {
		if steps == maxStepsPerUpdate {
			slog.Warn("physics falling behind, dropping time", "dropped", w.accumulator)
			w.accumulator = 0
			break
		}
		w.space.Step(w.LockStep)
		w.accumulator -= w.LockStep
		steps++
	}
	return w.accumulator / w.LockStep
}

func toVector(p advanced.Point) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

func FromVector(v cp.Vector) advanced.Point {
	return advanced.Point{X: v.X, Y: v.Y}
}
