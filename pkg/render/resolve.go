package render

import (
	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/graph"
)

// EdgeLine resolves a single edge to the polyline to draw: the stored curve
// when present and useGeom is true, else the straight segment between the
// endpoint node coordinates.
func EdgeLine(g *graph.Graph, e graph.Edge, useGeom bool) (orb.LineString, error) {
	if useGeom && e.HasGeometry() {
		return e.Geometry, nil
	}
	from, ok := g.Node(e.From)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "edge references unknown node %s", e.From)
	}
	to, ok := g.Node(e.To)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "edge references unknown node %s", e.To)
	}
	return orb.LineString{from.Point(), to.Point()}, nil
}

// GraphLines resolves every edge of the graph, in edge insertion order.
// The i-th polyline corresponds to the i-th edge of g.Edges(), which keeps
// per-edge color and width slices aligned.
func GraphLines(g *graph.Graph, useGeom bool) ([]orb.LineString, error) {
	edges := g.Edges()
	lines := make([]orb.LineString, len(edges))
	for i, e := range edges {
		line, err := EdgeLine(g, e, useGeom)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return lines, nil
}

// RouteEdge selects the edge instance for one route step (u, v). When
// parallel edges exist, the one with strictly minimal length wins; equal
// lengths fall back to the first-inserted edge, so the choice is stable
// across calls. A step with no edge at all is an invalid route and returns
// a MISSING_EDGE error.
func RouteEdge(g *graph.Graph, u, v string) (graph.Edge, error) {
	candidates := g.EdgesBetween(u, v)
	if len(candidates) == 0 {
		return graph.Edge{}, errors.New(errors.ErrCodeMissingEdge, "no edge between route nodes %s and %s", u, v)
	}
	best := candidates[0]
	for _, e := range candidates[1:] {
		if e.Length < best.Length {
			best = e
		}
	}
	return best, nil
}

// RouteLines resolves a route to one polyline per step, applying the same
// curve-versus-straight rule as EdgeLine after parallel-edge selection.
func RouteLines(g *graph.Graph, route graph.Route, useGeom bool) ([]orb.LineString, error) {
	if err := route.Validate(g); err != nil {
		return nil, err
	}
	steps := route.Steps()
	lines := make([]orb.LineString, len(steps))
	for i, step := range steps {
		e, err := RouteEdge(g, step[0], step[1])
		if err != nil {
			return nil, err
		}
		line, err := EdgeLine(g, e, useGeom)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return lines, nil
}
