package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/streetplot/pkg/cache"
	"github.com/matzehuels/streetplot/pkg/graph"
)

// newServeFixture builds a CLI, a graph directory with one small graph, and
// a request handler backed by the given cache.
func newServeFixture(t *testing.T, store cache.Cache) http.Handler {
	t.Helper()

	c := New(io.Discard, LogInfo)
	c.Config.Output.DPI = 50 // keep raster tests fast

	g := graph.New()
	nodes := []graph.Node{
		{ID: "a", X: 13.40, Y: 52.52},
		{ID: "b", X: 13.41, Y: 52.53},
		{ID: "c", X: 13.42, Y: 52.52},
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	for _, e := range []graph.Edge{
		{From: "a", To: "b", Length: 150},
		{From: "b", To: "c", Length: 200},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	dir := t.TempDir()
	if err := graph.WriteGraphFile(g, filepath.Join(dir, "berlin.json")); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	return c.newServeHandler(dir, store)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServeHealthz(t *testing.T) {
	h := newServeFixture(t, cache.NewNullCache())
	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", rec.Code)
	}
}

func TestServeFormats(t *testing.T) {
	h := newServeFixture(t, cache.NewNullCache())

	tests := []struct {
		path        string
		contentType string
		marker      string
	}{
		{"/graphs/berlin.svg", "image/svg+xml", "<svg"},
		{"/graphs/berlin.html", "text/html; charset=utf-8", "L.polyline"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, h, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !strings.Contains(rec.Body.String(), tt.marker) {
				t.Errorf("body missing %q", tt.marker)
			}
		})
	}
}

func TestServePNG(t *testing.T) {
	h := newServeFixture(t, cache.NewNullCache())
	rec := get(t, h, "/graphs/berlin.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	// PNG signature.
	if body := rec.Body.Bytes(); len(body) < 8 || string(body[1:4]) != "PNG" {
		t.Error("body is not a PNG")
	}
}

func TestServeCacheHit(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	h := newServeFixture(t, store)

	first := get(t, h, "/graphs/berlin.svg")
	if first.Header().Get("X-Cache") != "miss" {
		t.Errorf("first request X-Cache = %q, want miss", first.Header().Get("X-Cache"))
	}
	second := get(t, h, "/graphs/berlin.svg")
	if second.Header().Get("X-Cache") != "hit" {
		t.Errorf("second request X-Cache = %q, want hit", second.Header().Get("X-Cache"))
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached artifact differs from rendered artifact")
	}
}

func TestServeUnknownGraph(t *testing.T) {
	h := newServeFixture(t, cache.NewNullCache())
	if rec := get(t, h, "/graphs/nowhere.svg"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeBadFormat(t *testing.T) {
	h := newServeFixture(t, cache.NewNullCache())
	if rec := get(t, h, "/graphs/berlin.gif"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestServeWebMapDisabled(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config.WebMap.Tiles = ""

	g := graph.New()
	if err := g.AddNode(graph.Node{ID: "a", X: 0, Y: 0}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(graph.Node{ID: "b", X: 1, Y: 1}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddEdge(graph.Edge{From: "a", To: "b", Length: 1}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	dir := t.TempDir()
	if err := graph.WriteGraphFile(g, filepath.Join(dir, "g.json")); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	h := c.newServeHandler(dir, cache.NewNullCache())
	if rec := get(t, h, "/graphs/g.html"); rec.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501 when no tile provider is configured", rec.Code)
	}
}
