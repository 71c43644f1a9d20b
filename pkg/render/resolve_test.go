package render

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/graph"
)

func mustAddNode(t *testing.T, g *graph.Graph, n graph.Node) {
	t.Helper()
	if err := g.AddNode(n); err != nil {
		t.Fatalf("AddNode(%s): %v", n.ID, err)
	}
}

func mustAddEdge(t *testing.T, g *graph.Graph, e graph.Edge) {
	t.Helper()
	if err := g.AddEdge(e); err != nil {
		t.Fatalf("AddEdge(%s→%s): %v", e.From, e.To, err)
	}
}

// loopGraph builds the 4-node unit square with a directed loop.
func loopGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	mustAddNode(t, g, graph.Node{ID: "n0", X: 0, Y: 0})
	mustAddNode(t, g, graph.Node{ID: "n1", X: 0, Y: 1})
	mustAddNode(t, g, graph.Node{ID: "n2", X: 1, Y: 1})
	mustAddNode(t, g, graph.Node{ID: "n3", X: 1, Y: 0})
	mustAddEdge(t, g, graph.Edge{From: "n0", To: "n1", Length: 1})
	mustAddEdge(t, g, graph.Edge{From: "n1", To: "n2", Length: 1})
	mustAddEdge(t, g, graph.Edge{From: "n2", To: "n3", Length: 1})
	mustAddEdge(t, g, graph.Edge{From: "n3", To: "n0", Length: 1})
	return g
}

func TestEdgeLineStraight(t *testing.T) {
	g := loopGraph(t)
	e := g.Edges()[0]

	line, err := EdgeLine(g, e, true)
	if err != nil {
		t.Fatalf("EdgeLine: %v", err)
	}
	want := orb.LineString{{0, 0}, {0, 1}}
	if len(line) != 2 || line[0] != want[0] || line[1] != want[1] {
		t.Errorf("EdgeLine = %v, want %v", line, want)
	}
}

func TestEdgeLineCurve(t *testing.T) {
	g := graph.New()
	mustAddNode(t, g, graph.Node{ID: "a", X: 0, Y: 0})
	mustAddNode(t, g, graph.Node{ID: "b", X: 2, Y: 0})
	curve := orb.LineString{{0, 0}, {1, 0.5}, {2, 0}}
	mustAddEdge(t, g, graph.Edge{From: "a", To: "b", Length: 2.2, Geometry: curve})
	e := g.Edges()[0]

	t.Run("curve enabled", func(t *testing.T) {
		line, err := EdgeLine(g, e, true)
		if err != nil {
			t.Fatalf("EdgeLine: %v", err)
		}
		if len(line) != 3 || line[1] != (orb.Point{1, 0.5}) {
			t.Errorf("EdgeLine = %v, want stored curve %v", line, curve)
		}
	})

	t.Run("curve disabled", func(t *testing.T) {
		line, err := EdgeLine(g, e, false)
		if err != nil {
			t.Fatalf("EdgeLine: %v", err)
		}
		if len(line) != 2 || line[0] != (orb.Point{0, 0}) || line[1] != (orb.Point{2, 0}) {
			t.Errorf("EdgeLine = %v, want straight segment", line)
		}
	})
}

func TestRouteEdgeParallelTieBreak(t *testing.T) {
	g := graph.New()
	mustAddNode(t, g, graph.Node{ID: "u", X: 0, Y: 0})
	mustAddNode(t, g, graph.Node{ID: "v", X: 1, Y: 0})
	mustAddEdge(t, g, graph.Edge{From: "u", To: "v", Length: 3, Highway: "primary"})
	mustAddEdge(t, g, graph.Edge{From: "u", To: "v", Length: 1, Highway: "service"})
	mustAddEdge(t, g, graph.Edge{From: "u", To: "v", Length: 2, Highway: "residential"})

	for i := 0; i < 5; i++ {
		e, err := RouteEdge(g, "u", "v")
		if err != nil {
			t.Fatalf("RouteEdge: %v", err)
		}
		if e.Length != 1 || e.Key != 1 {
			t.Fatalf("call %d selected length=%v key=%d, want length=1 key=1", i, e.Length, e.Key)
		}
	}
}

func TestRouteEdgeEqualLengthsStable(t *testing.T) {
	g := graph.New()
	mustAddNode(t, g, graph.Node{ID: "u", X: 0, Y: 0})
	mustAddNode(t, g, graph.Node{ID: "v", X: 1, Y: 0})
	mustAddEdge(t, g, graph.Edge{From: "u", To: "v", Length: 2, Highway: "first"})
	mustAddEdge(t, g, graph.Edge{From: "u", To: "v", Length: 2, Highway: "second"})

	for i := 0; i < 5; i++ {
		e, err := RouteEdge(g, "u", "v")
		if err != nil {
			t.Fatalf("RouteEdge: %v", err)
		}
		if e.Key != 0 || e.Highway != "first" {
			t.Fatalf("call %d selected key=%d, want the first-inserted edge", i, e.Key)
		}
	}
}

func TestRouteEdgeMissing(t *testing.T) {
	g := loopGraph(t)
	_, err := RouteEdge(g, "n0", "n2")
	if !errors.Is(err, errors.ErrCodeMissingEdge) {
		t.Errorf("RouteEdge error = %v, want MISSING_EDGE", err)
	}
}

func TestRouteLinesEndToEnd(t *testing.T) {
	// Square loop, route n0 to n1 to n2, curves disabled.
	g := loopGraph(t)
	lines, err := RouteLines(g, graph.Route{"n0", "n1", "n2"}, false)
	if err != nil {
		t.Fatalf("RouteLines: %v", err)
	}
	want := []orb.LineString{
		{{0, 0}, {0, 1}},
		{{0, 1}, {1, 1}},
	}
	if len(lines) != len(want) {
		t.Fatalf("RouteLines = %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if len(lines[i]) != 2 || lines[i][0] != want[i][0] || lines[i][1] != want[i][1] {
			t.Errorf("line %d = %v, want %v", i, lines[i], want[i])
		}
	}
}

func TestRouteLinesInvalidRoute(t *testing.T) {
	g := loopGraph(t)

	if _, err := RouteLines(g, graph.Route{"n0"}, true); !errors.Is(err, errors.ErrCodeInvalidRoute) {
		t.Errorf("short route error = %v, want INVALID_ROUTE", err)
	}
	// Non-adjacent pair: fails on lookup, never inferred.
	if _, err := RouteLines(g, graph.Route{"n0", "n2"}, true); !errors.Is(err, errors.ErrCodeMissingEdge) {
		t.Errorf("non-adjacent route error = %v, want MISSING_EDGE", err)
	}
}

func TestGraphLinesAlignment(t *testing.T) {
	g := loopGraph(t)
	lines, err := GraphLines(g, true)
	if err != nil {
		t.Fatalf("GraphLines: %v", err)
	}
	edges := g.Edges()
	if len(lines) != len(edges) {
		t.Fatalf("GraphLines = %d lines for %d edges", len(lines), len(edges))
	}
	for i, e := range edges {
		from, _ := g.Node(e.From)
		if lines[i][0] != from.Point() {
			t.Errorf("line %d start = %v, want %v", i, lines[i][0], from.Point())
		}
	}
}
