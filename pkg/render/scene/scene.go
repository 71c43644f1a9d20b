package scene

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/geo"
)

// Z-order bands for the standard layers. Callers may place node layers at any
// z; the default puts them below edges so edge lines read as continuous.
const (
	ZNodesDefault = 1
	ZEdges        = 2
	ZRoute        = 3
	ZMarkers      = 4
	ZAnnotations  = 5
)

// LayerKind discriminates what a layer draws.
type LayerKind int

const (
	KindLines LayerKind = iota
	KindPoints
	KindPolygons
	KindText
)

// Layer is one drawing pass. Only the fields for its kind are meaningful.
type Layer struct {
	Kind LayerKind
	Z    int

	// KindLines: one polyline per entry. Colors and Widths are either empty
	// (use Color/Width for all), or aligned one-per-line.
	Lines  []orb.LineString
	Colors []string
	Widths []float64
	Color  string
	Width  float64

	// KindPoints: scatter markers, uniform color and size.
	Points []orb.Point
	Size   float64

	// KindPolygons: filled shapes with an outline.
	Polygons  []orb.Polygon
	FillColor string

	// KindText: coordinate-anchored labels.
	Labels []Label

	Alpha float64
}

// Label is a text annotation anchored at a coordinate.
type Label struct {
	At   orb.Point
	Text string
}

// Scene is a composed static rendering: layers plus framing. BBox is the
// view limit with margin already applied; FigWidth and FigHeight are in
// inches.
type Scene struct {
	Layers     []Layer
	BBox       geo.BBox
	FigWidth   float64
	FigHeight  float64
	Background string
	AxisOff    bool
}

// Add appends a layer to the scene.
func (s *Scene) Add(l Layer) {
	s.Layers = append(s.Layers, l)
}

// Sorted returns the layers in drawing order: ascending z, with insertion
// order breaking ties. The receiver's layer slice is not modified.
func (s *Scene) Sorted() []Layer {
	out := make([]Layer, len(s.Layers))
	copy(out, s.Layers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}
