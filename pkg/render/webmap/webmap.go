package webmap

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/geo"
	"github.com/matzehuels/streetplot/pkg/graph"
	"github.com/matzehuels/streetplot/pkg/render"
)

// Options configures the map canvas.
type Options struct {
	// Tiles is the tile provider URL template. Empty means web maps are not
	// available in this deployment.
	Tiles       string
	Attribution string
	// Zoom is the initial zoom level, used until FitBounds overrides the
	// viewport.
	Zoom int
	// Fit fits the viewport to the accumulated geometry on load.
	Fit bool
}

// DefaultOptions uses the Carto Positron basemap and fits the viewport to
// the drawn geometry.
func DefaultOptions() Options {
	return Options{
		Tiles:       "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors © CARTO",
		Zoom:        1,
		Fit:         true,
	}
}

// EdgeStyle styles a graph edge layer. PopupAttribute, when set, attaches a
// click popup showing that edge attribute's value.
type EdgeStyle struct {
	Color          string
	Width          float64
	Opacity        float64
	PopupAttribute string
}

// DefaultEdgeStyle returns the standard web map edge styling.
func DefaultEdgeStyle() EdgeStyle {
	return EdgeStyle{Color: "#333333", Width: 5, Opacity: 1}
}

// RouteStyle styles a route overlay.
type RouteStyle struct {
	Color   string
	Width   float64
	Opacity float64
}

// DefaultRouteStyle returns the standard web map route styling.
func DefaultRouteStyle() RouteStyle {
	return RouteStyle{Color: "#cc0000", Width: 5, Opacity: 0.7}
}

// polyline is one drawable line on the map, in [lat, lon] order.
type polyline struct {
	coords  [][2]float64
	color   string
	weight  float64
	opacity float64
	popup   string
}

// Map accumulates layers for one web map document. Layers append: a route
// added after graph edges draws on top of them, matching the order calls
// were made in.
type Map struct {
	id    string
	opts  Options
	lines []polyline
	geoms []orb.LineString
}

// New creates an empty map. A missing tile provider is a capability error,
// reported before any layers are added.
func New(opts Options) (*Map, error) {
	if opts.Tiles == "" {
		return nil, errors.New(errors.ErrCodeUnsupportedCapability,
			"web maps require a tile provider; none is configured")
	}
	return &Map{id: uuid.NewString(), opts: opts}, nil
}

// ID returns the map's unique element identifier.
func (m *Map) ID() string { return m.id }

func (m *Map) add(line orb.LineString, color string, weight, opacity float64, popup string) {
	coords := make([][2]float64, len(line))
	for i, pt := range line {
		coords[i] = [2]float64{pt.Y(), pt.X()}
	}
	m.lines = append(m.lines, polyline{
		coords:  coords,
		color:   color,
		weight:  weight,
		opacity: opacity,
		popup:   popup,
	})
	m.geoms = append(m.geoms, line)
}

// AddGraphEdges adds one polyline per graph edge, curved where the edge
// stores geometry.
func (m *Map) AddGraphEdges(g *graph.Graph, style EdgeStyle) error {
	for _, e := range g.Edges() {
		line, err := render.EdgeLine(g, e, true)
		if err != nil {
			return err
		}
		popup := ""
		if style.PopupAttribute != "" {
			popup = style.PopupAttribute + ": " + e.AttrString(style.PopupAttribute)
		}
		m.add(line, style.Color, style.Width, style.Opacity, popup)
	}
	return nil
}

// AddRoute adds a route overlay, selecting the shortest parallel edge per
// step the same way static route rendering does.
func (m *Map) AddRoute(g *graph.Graph, route graph.Route, style RouteStyle) error {
	lines, err := render.RouteLines(g, route, true)
	if err != nil {
		return err
	}
	for _, line := range lines {
		m.add(line, style.Color, style.Width, style.Opacity, "")
	}
	return nil
}

// Center returns the length-weighted centroid of the accumulated geometry.
func (m *Map) Center() (orb.Point, error) {
	return geo.Centroid(m.geoms)
}

// FitBounds returns the [[southLat, westLon], [northLat, eastLon]] corner
// pair Leaflet's fitBounds expects, or MISSING_EXTENT for an empty map.
func (m *Map) FitBounds() ([2][2]float64, error) {
	box, err := geo.Union(m.geoms)
	if err != nil {
		return [2][2]float64{}, err
	}
	return [2][2]float64{
		{box.South, box.West},
		{box.North, box.East},
	}, nil
}
