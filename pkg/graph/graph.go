package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/streetplot/pkg/errors"
)

// Graph is a directed spatial multigraph. Nodes keep insertion order for
// deterministic iteration and serialization; parallel edges between the same
// ordered node pair get consecutive keys starting at 0.
type Graph struct {
	nodes map[string]Node
	order []string
	edges []Edge
	// out[u][v] holds indices into edges for every parallel edge u→v,
	// in insertion order.
	out map[string]map[string][]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		out:   make(map[string]map[string][]int),
	}
}

// AddNode adds a node. Duplicate IDs are rejected.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return errors.New(errors.ErrCodeInvalidGraph, "node ID must not be empty")
	}
	if _, ok := g.nodes[n.ID]; ok {
		return errors.New(errors.ErrCodeInvalidGraph, "duplicate node %s", n.ID)
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return nil
}

// AddEdge adds a directed edge. Both endpoints must already exist. The edge's
// parallel-edge key is assigned in insertion order; any caller-provided key
// is overwritten.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return errors.New(errors.ErrCodeInvalidGraph, "edge %s→%s: unknown node %s", e.From, e.To, e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return errors.New(errors.ErrCodeInvalidGraph, "edge %s→%s: unknown node %s", e.From, e.To, e.To)
	}
	if g.out[e.From] == nil {
		g.out[e.From] = make(map[string][]int)
	}
	e.Key = len(g.out[e.From][e.To])
	g.out[e.From][e.To] = append(g.out[e.From][e.To], len(g.edges))
	g.edges = append(g.edges, e)
	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgesBetween returns every parallel edge u→v in insertion order.
// The result is empty when no edge connects the pair.
func (g *Graph) EdgesBetween(u, v string) []Edge {
	idxs := g.out[u][v]
	out := make([]Edge, len(idxs))
	for i, idx := range idxs {
		out[i] = g.edges[idx]
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// graphJSON is the serialization shape.
type graphJSON struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// MarshalGraph converts a graph to JSON bytes.
// Nodes and edges appear in insertion order for deterministic output.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a graph as JSON to an io.Writer.
func WriteGraph(g *Graph, w io.Writer) error {
	out := graphJSON{Nodes: g.Nodes(), Edges: g.Edges()}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON graph from an io.Reader.
// Returns validation errors for malformed graphs (dangling edges, duplicate
// node IDs).
func ReadGraph(r io.Reader) (*Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	g := New()
	for _, n := range data.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ReadGraphFile reads a JSON file and returns the decoded graph.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}
