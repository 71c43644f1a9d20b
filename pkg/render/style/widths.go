package style

import "github.com/matzehuels/streetplot/pkg/graph"

// WidthMap maps street types to line widths in points.
type WidthMap map[string]float64

// DefaultStreetWidths is the width table for figure-ground diagrams: thin
// pedestrian-scale ways, wide motorways, everything else falls through to
// the caller's default.
var DefaultStreetWidths = WidthMap{
	"footway":    1.5,
	"steps":      1.5,
	"pedestrian": 1.5,
	"service":    1.5,
	"path":       1.5,
	"track":      1.5,
	"motorway":   6,
}

// StreetWidth returns the width for a street type, or def when the type is
// absent from the table. Pure lookup, no shared state.
func StreetWidth(streetType string, widths WidthMap, def float64) float64 {
	if w, ok := widths[streetType]; ok {
		return w
	}
	return def
}

// EdgeWidths returns one width per graph edge, aligned with g.Edges(), by
// classifying each edge's street type. Street types are already normalized
// to single values at graph ingestion.
func EdgeWidths(g *graph.Graph, widths WidthMap, def float64) []float64 {
	edges := g.Edges()
	out := make([]float64, len(edges))
	for i, e := range edges {
		out[i] = StreetWidth(e.Highway, widths, def)
	}
	return out
}
