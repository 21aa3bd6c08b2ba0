package advanced

// Resolution of self-intersecting vertex loops. Every crossing between two
// edges becomes a vertex shared by both, which turns the loop into a planar
// graph. The outer boundary of that graph is then walked, always taking the
// most clockwise edge, which keeps the enclosed region on the left and visits
// the boundary counterclockwise.
//
// The outer boundary can touch itself at a single vertex (a pinch point) where
// two lobes of the shape meet. The boundary is cut at its pinch points into
// simple lobes. TraceEdge keeps the lobe with the largest area, and
// TraceEdgeLobes keeps them all. Excursions that enclose no area, such as an
// edge walked out and back, are dropped.

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexify/dbg"
	"github.com/pkg/errors"
)

type traceNode struct {
	Point     Point
	neighbors []*traceNode
	// Created at an edge crossing, rather than being an input vertex
	crossing bool
}

type traceGraph struct {
	nodes     []*traceNode
	edgeCount int
}

// A crossing found on an edge, at parameter t along it.
type edgeCrossing struct {
	t     float64
	point Point
}

// Resolve a self-intersecting polygon into the simple loop of largest area on
// its outer boundary. Smaller lobes pinched off from it are discarded. A
// polygon without crossings is returned unchanged.
func TraceEdge(poly Polygon) (Polygon, error) {
	lobes, err := TraceEdgeLobes(poly)
	if err != nil {
		return Polygon{}, err
	}
	best := lobes[0]
	for _, lobe := range lobes[1:] {
		if lobe.Area() > best.Area() {
			best = lobe
		}
	}
	return best, nil
}

// Resolve a self-intersecting polygon into every simple lobe of its outer
// boundary, each counterclockwise. Lobes touch each other only at pinch points.
// A polygon without crossings is returned unchanged, as the only lobe.
func TraceEdgeLobes(poly Polygon) (PolygonList, error) {
	n := len(poly.Points)
	if n < 3 {
		return nil, errors.Wrapf(ErrInvalidState, "cannot trace polygon with %d vertices", n)
	}

	crossings := findCrossings(poly)
	total := 0
	for _, list := range crossings {
		total += len(list)
	}
	if total == 0 {
		return PolygonList{poly.Copy()}, nil
	}
	slog.Debug("tracing self-intersecting polygon", "vertices", n, "crossings", total/2)

	graph := buildTraceGraph(poly, crossings)
	walk, err := graph.walkOuterBoundary()
	if err != nil {
		return nil, err
	}

	walk = dropEmptyExcursions(walk)
	walk = collapseStraightCrossings(walk)
	if len(walk) < 3 || nodeLoopArea(walk) <= Tolerance {
		return nil, errors.Wrap(ErrSelfIntersectionUnresolved, "outer boundary encloses no area")
	}

	points := make([]Point, len(walk))
	for i, node := range walk {
		points[i] = node.Point
	}

	var lobes PolygonList
	for _, lobe := range splitPinchPoints(NewPolygonFromPoints(points)) {
		if lobe.Len() < 3 || lobe.Area() <= Tolerance {
			continue
		}
		if lobe.IsCW() {
			lobe = lobe.Reverse()
		}
		lobes = append(lobes, lobe)
	}
	if len(lobes) == 0 {
		return nil, errors.Wrap(ErrSelfIntersectionUnresolved, "outer boundary has no lobe with area")
	}
	slog.Debug("traced outer boundary", "vertices", len(points), "lobes", len(lobes))
	return lobes, nil
}

// Does any pair of edges properly cross?
func (poly Polygon) HasCrossings() bool {
	for _, list := range findCrossings(poly) {
		if len(list) > 0 {
			return true
		}
	}
	return false
}

// Crossings per edge, indexed by the edge's start vertex. Adjacent edges only
// share an endpoint, so they are never tested.
func findCrossings(poly Polygon) [][]edgeCrossing {
	n := len(poly.Points)
	crossings := make([][]edgeCrossing, n)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			at, t, u, ok := poly.Edge(i).Crossing(poly.Edge(j))
			if !ok {
				continue
			}
			crossings[i] = append(crossings[i], edgeCrossing{t, at})
			crossings[j] = append(crossings[j], edgeCrossing{u, at})
		}
	}
	return crossings
}

func buildTraceGraph(poly Polygon, crossings [][]edgeCrossing) *traceGraph {
	graph := &traceGraph{}
	for i := range poly.Points {
		edge := poly.Edge(i)
		list := crossings[i]
		sort.Slice(list, func(a, b int) bool { return list[a].t < list[b].t })

		prev := graph.nodeAt(edge.Start, false)
		for _, c := range list {
			node := graph.nodeAt(c.point, true)
			graph.connect(prev, node)
			prev = node
		}
		graph.connect(prev, graph.nodeAt(edge.End, false))
	}
	return graph
}

// Find or create the node at p. Coincident points share a node, which is what
// joins the two edges at a crossing, and also merges repeated input vertices.
func (g *traceGraph) nodeAt(p Point, crossing bool) *traceNode {
	for _, node := range g.nodes {
		if node.Point.Equals(p) {
			node.crossing = node.crossing && crossing
			return node
		}
	}
	node := &traceNode{Point: p, crossing: crossing}
	g.nodes = append(g.nodes, node)
	return node
}

func (g *traceGraph) connect(a, b *traceNode) {
	if a == b {
		return
	}
	for _, neighbor := range a.neighbors {
		if neighbor == b {
			return
		}
	}
	a.neighbors = append(a.neighbors, b)
	b.neighbors = append(b.neighbors, a)
	g.edgeCount++
}

// The lowest node, which is always on the outer boundary.
func (g *traceGraph) lowest() *traceNode {
	lowest := g.nodes[0]
	for _, node := range g.nodes[1:] {
		if node.Point.Below(lowest.Point) {
			lowest = node
		}
	}
	return lowest
}

// Walk the outer boundary starting at the lowest node. The walk ends when it
// is about to repeat its first edge. Each edge is walked at most once in each
// direction, so a walk longer than twice the edge count can only come from
// inconsistent geometry.
func (g *traceGraph) walkOuterBoundary() ([]*traceNode, error) {
	start := g.lowest()
	// Pretend we arrived from directly below, so that the first edge taken is
	// the rightmost one.
	first := start.nextOnBoundary(Point{0, -1})
	if first == nil {
		return nil, errors.Wrap(ErrSelfIntersectionUnresolved, "lowest vertex is isolated")
	}

	limit := 2 * g.edgeCount
	var walk []*traceNode
	cur, next := start, first
	for step := 0; step <= limit; step++ {
		walk = append(walk, cur)
		slog.Debug("trace step", "node", cur, "next", next)
		prev := cur
		cur = next
		next = cur.nextOnBoundary(prev.Point.Sub(cur.Point))
		if cur == start && next == first {
			return walk, nil
		}
	}
	return nil, errors.Wrapf(ErrSelfIntersectionUnresolved, "boundary walk did not close within %d steps", limit)
}

// Pick the outgoing edge reached first when sweeping counterclockwise from
// the direction we came from. The edge we came in on is the last resort, so
// dead ends turn around.
func (node *traceNode) nextOnBoundary(back Point) *traceNode {
	var best *traceNode
	bestSweep := math.Inf(1)
	for _, neighbor := range node.neighbors {
		out := neighbor.Point.Sub(node.Point)
		sweep := math.Atan2(back.Cross(out), back.Dot(out))
		if sweep <= Tolerance {
			sweep += 2 * math.Pi
		}
		if sweep < bestSweep {
			best, bestSweep = neighbor, sweep
		}
	}
	return best
}

// Remove parts of the walk that leave a node and come back to it without
// enclosing any area. Loops that do enclose area are lobes joined at a pinch
// point, and are kept.
func dropEmptyExcursions(walk []*traceNode) []*traceNode {
	var out []*traceNode
	// Close the loop so that an excursion at the end is caught too
	for _, node := range append(walk, walk[0]) {
		if i := lastIndexOfNode(out, node); i >= 0 && nodeLoopArea(out[i:]) <= Tolerance {
			out = out[:i+1]
			continue
		}
		out = append(out, node)
	}
	if len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

func lastIndexOfNode(nodes []*traceNode, node *traceNode) int {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] == node {
			return i
		}
	}
	return -1
}

// Crossing vertices where the walk continues straight on are not corners.
// Pinch points are left alone even when straight, since the boundary is cut
// into lobes there.
func collapseStraightCrossings(walk []*traceNode) []*traceNode {
	counts := make(map[*traceNode]int)
	for _, node := range walk {
		counts[node]++
	}
	n := len(walk)
	out := make([]*traceNode, 0, n)
	for i, node := range walk {
		if node.crossing && counts[node] == 1 {
			prev := walk[CircularIndex(i-1, n)].Point
			next := walk[CircularIndex(i+1, n)].Point
			in := node.Point.Sub(prev)
			outDir := next.Sub(node.Point)
			if math.Abs(in.Cross(outDir)) <= Tolerance*in.Length()*outDir.Length() && in.Dot(outDir) > 0 {
				continue
			}
		}
		out = append(out, node)
	}
	return out
}

func nodeLoopArea(nodes []*traceNode) float64 {
	var area float64
	for i, node := range nodes {
		next := nodes[CircularIndex(i+1, len(nodes))]
		area += node.Point.Cross(next.Point)
	}
	return area / 2
}

func (node *traceNode) String() string {
	name := dbg.Name(node)
	if node.crossing {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("%s(%g, %g)", name, node.Point.X, node.Point.Y)
}
