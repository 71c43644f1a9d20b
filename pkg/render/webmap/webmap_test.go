package webmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/graph"
)

func lineGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	nodes := []graph.Node{
		{ID: "a", X: 13.40, Y: 52.52},
		{ID: "b", X: 13.41, Y: 52.53},
		{ID: "c", X: 13.42, Y: 52.52},
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", n.ID, err)
		}
	}
	edges := []graph.Edge{
		{From: "a", To: "b", Length: 150},
		{From: "b", To: "c", Length: 200},
		{From: "b", To: "c", Length: 120},
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s->%s): %v", e.From, e.To, err)
		}
	}
	return g
}

func TestNewRequiresTileProvider(t *testing.T) {
	_, err := New(Options{})
	if !errors.Is(err, errors.ErrCodeUnsupportedCapability) {
		t.Fatalf("New without tiles = %v, want UNSUPPORTED_CAPABILITY", err)
	}
}

func TestAddGraphEdgesSwapsCoordinates(t *testing.T) {
	m, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.AddGraphEdges(lineGraph(t), DefaultEdgeStyle()); err != nil {
		t.Fatalf("AddGraphEdges: %v", err)
	}

	if len(m.lines) != 3 {
		t.Fatalf("got %d polylines, want 3", len(m.lines))
	}
	// Node a is (lon 13.40, lat 52.52); Leaflet wants [lat, lon].
	first := m.lines[0].coords[0]
	if first != [2]float64{52.52, 13.40} {
		t.Errorf("first coordinate = %v, want [52.52, 13.40]", first)
	}
}

func TestAddGraphEdgesPopup(t *testing.T) {
	m, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	style := DefaultEdgeStyle()
	style.PopupAttribute = "length"
	if err := m.AddGraphEdges(lineGraph(t), style); err != nil {
		t.Fatalf("AddGraphEdges: %v", err)
	}
	if m.lines[0].popup != "length: 150" {
		t.Errorf("popup = %q, want %q", m.lines[0].popup, "length: 150")
	}
}

func TestAddRouteAppendsOnTop(t *testing.T) {
	m, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g := lineGraph(t)
	if err := m.AddGraphEdges(g, DefaultEdgeStyle()); err != nil {
		t.Fatalf("AddGraphEdges: %v", err)
	}
	if err := m.AddRoute(g, graph.Route{"a", "b", "c"}, DefaultRouteStyle()); err != nil {
		t.Fatalf("AddRoute: %v", err)
	}

	// Route lines land after the edge lines, so Leaflet draws them on top.
	if len(m.lines) != 5 {
		t.Fatalf("got %d polylines, want 3 edges + 2 route steps", len(m.lines))
	}
	last := m.lines[4]
	if last.color != DefaultRouteStyle().Color {
		t.Errorf("top polyline color = %s, want route color", last.color)
	}
}

func TestAddRouteMissingEdge(t *testing.T) {
	m, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = m.AddRoute(lineGraph(t), graph.Route{"a", "c"}, DefaultRouteStyle())
	if !errors.Is(err, errors.ErrCodeMissingEdge) {
		t.Errorf("non-adjacent route error = %v, want MISSING_EDGE", err)
	}
}

func TestFitBounds(t *testing.T) {
	m, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.AddGraphEdges(lineGraph(t), DefaultEdgeStyle()); err != nil {
		t.Fatalf("AddGraphEdges: %v", err)
	}

	bounds, err := m.FitBounds()
	if err != nil {
		t.Fatalf("FitBounds: %v", err)
	}
	want := [2][2]float64{{52.52, 13.40}, {52.53, 13.42}}
	if bounds != want {
		t.Errorf("FitBounds = %v, want %v", bounds, want)
	}
}

func TestWriteHTML(t *testing.T) {
	m, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.AddGraphEdges(lineGraph(t), DefaultEdgeStyle()); err != nil {
		t.Fatalf("AddGraphEdges: %v", err)
	}

	var buf bytes.Buffer
	if err := m.WriteHTML(&buf); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"map-" + m.ID(),
		"L.tileLayer",
		"L.polyline",
		"map.fitBounds",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestWriteHTMLEmptyMap(t *testing.T) {
	m, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := m.WriteHTML(&buf); !errors.Is(err, errors.ErrCodeMissingExtent) {
		t.Errorf("empty map error = %v, want MISSING_EXTENT", err)
	}
}

func TestMapIDsAreUnique(t *testing.T) {
	a, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.ID() == b.ID() {
		t.Error("two maps share an element ID")
	}
}
