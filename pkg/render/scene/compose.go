package scene

import (
	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/geo"
	"github.com/matzehuels/streetplot/pkg/graph"
	"github.com/matzehuels/streetplot/pkg/render"
)

// Options controls graph scene composition. Zero-value fields fall back to
// nothing; start from DefaultOptions and override.
type Options struct {
	// BBox fixes the view extent. Nil derives it from the drawn geometry.
	BBox *geo.BBox
	// Margin expands the extent symmetrically by this fraction per side.
	Margin float64
	// FigHeight is the figure height in inches. FigWidth zero derives the
	// width from the extent's aspect ratio; non-zero takes precedence.
	FigHeight float64
	FigWidth  float64

	Background string
	AxisOff    bool

	// UseGeometry draws stored edge curves; false forces straight segments.
	UseGeometry bool

	NodeSize   float64
	NodeColor  string
	NodeZOrder int
	NodeAlpha  float64

	// EdgeColors and EdgeWidths are per-edge overrides aligned with the
	// graph's edge order; empty means the uniform EdgeColor/EdgeWidth.
	EdgeColor  string
	EdgeColors []string
	EdgeWidth  float64
	EdgeWidths []float64
	EdgeAlpha  float64

	// Annotate labels every node with its ID.
	Annotate bool
}

// DefaultOptions returns the standard graph plot styling: light blue nodes
// under gray hairline edges on a white background, axes hidden, extent
// derived from the geometry with a 2% margin.
func DefaultOptions() Options {
	return Options{
		Margin:      0.02,
		FigHeight:   6,
		Background:  "#ffffff",
		AxisOff:     true,
		UseGeometry: true,
		NodeSize:    15,
		NodeColor:   "#66ccff",
		NodeZOrder:  ZNodesDefault,
		NodeAlpha:   1,
		EdgeColor:   "#999999",
		EdgeWidth:   1,
		EdgeAlpha:   1,
	}
}

// ComposeGraph builds the static scene for a whole graph: an edge layer, a
// node layer when node size is positive, and optional ID annotations.
func ComposeGraph(g *graph.Graph, opts Options) (*Scene, error) {
	lines, err := render.GraphLines(g, opts.UseGeometry)
	if err != nil {
		return nil, err
	}
	if len(opts.EdgeColors) > 0 && len(opts.EdgeColors) != len(lines) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%d edge colors for %d edges", len(opts.EdgeColors), len(lines))
	}
	if len(opts.EdgeWidths) > 0 && len(opts.EdgeWidths) != len(lines) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%d edge widths for %d edges", len(opts.EdgeWidths), len(lines))
	}

	var box geo.BBox
	if opts.BBox != nil {
		box = *opts.BBox
	} else {
		box, err = geo.Union(lines)
		if err != nil {
			return nil, err
		}
	}
	view := box.Expand(opts.Margin)
	w, h := geo.FigureSize(view, opts.FigHeight, opts.FigWidth)

	s := &Scene{
		BBox:       view,
		FigWidth:   w,
		FigHeight:  h,
		Background: opts.Background,
		AxisOff:    opts.AxisOff,
	}

	s.Add(Layer{
		Kind:   KindLines,
		Z:      ZEdges,
		Lines:  lines,
		Colors: opts.EdgeColors,
		Widths: opts.EdgeWidths,
		Color:  opts.EdgeColor,
		Width:  opts.EdgeWidth,
		Alpha:  opts.EdgeAlpha,
	})

	if opts.NodeSize > 0 {
		nodes := g.Nodes()
		points := make([]orb.Point, len(nodes))
		for i, n := range nodes {
			points[i] = n.Point()
		}
		s.Add(Layer{
			Kind:   KindPoints,
			Z:      opts.NodeZOrder,
			Points: points,
			Color:  opts.NodeColor,
			Size:   opts.NodeSize,
			Alpha:  opts.NodeAlpha,
		})
	}

	if opts.Annotate {
		nodes := g.Nodes()
		labels := make([]Label, len(nodes))
		for i, n := range nodes {
			labels[i] = Label{At: n.Point(), Text: n.ID}
		}
		s.Add(Layer{
			Kind:   KindText,
			Z:      ZAnnotations,
			Labels: labels,
			Color:  "#000000",
			Alpha:  1,
		})
	}

	return s, nil
}

// RouteOptions extends Options with route overlay styling.
type RouteOptions struct {
	Options

	RouteColor string
	RouteWidth float64
	RouteAlpha float64

	// MarkerSize is the origin/destination marker size. NodeMarkerColor is
	// used when the markers sit on the route's endpoint nodes;
	// PointMarkerColor when OriginPoint and DestPoint override them.
	MarkerSize       float64
	NodeMarkerColor  string
	PointMarkerColor string

	// OriginPoint and DestPoint replace the route endpoints as marker
	// positions. Supply both or neither.
	OriginPoint *orb.Point
	DestPoint   *orb.Point
}

// DefaultRouteOptions returns the standard route overlay styling: a wide
// half-transparent red line with red endpoint markers, blue when overridden
// by explicit points.
func DefaultRouteOptions() RouteOptions {
	return RouteOptions{
		Options:          DefaultOptions(),
		RouteColor:       "#ff0000",
		RouteWidth:       4,
		RouteAlpha:       0.5,
		MarkerSize:       100,
		NodeMarkerColor:  "#ff0000",
		PointMarkerColor: "#0000ff",
	}
}

// ComposeRoute builds the scene for a graph with a route overlay: the base
// graph layers, the route polylines above them, and origin/destination
// markers above the route.
func ComposeRoute(g *graph.Graph, route graph.Route, opts RouteOptions) (*Scene, error) {
	if (opts.OriginPoint == nil) != (opts.DestPoint == nil) {
		return nil, errors.New(errors.ErrCodeAmbiguousInput,
			"origin and destination override points must be supplied together")
	}

	s, err := ComposeGraph(g, opts.Options)
	if err != nil {
		return nil, err
	}
	routeLines, err := render.RouteLines(g, route, opts.UseGeometry)
	if err != nil {
		return nil, err
	}

	s.Add(Layer{
		Kind:  KindLines,
		Z:     ZRoute,
		Lines: routeLines,
		Color: opts.RouteColor,
		Width: opts.RouteWidth,
		Alpha: opts.RouteAlpha,
	})

	markers, markerColor, err := routeMarkers(g, route, opts)
	if err != nil {
		return nil, err
	}
	s.Add(Layer{
		Kind:   KindPoints,
		Z:      ZMarkers,
		Points: markers,
		Color:  markerColor,
		Size:   opts.MarkerSize,
		Alpha:  1,
	})

	return s, nil
}

// routeMarkers resolves the origin/destination marker positions and color.
// Explicit override points win and switch the marker color; otherwise the
// markers sit on the route's first and last nodes.
func routeMarkers(g *graph.Graph, route graph.Route, opts RouteOptions) ([]orb.Point, string, error) {
	if opts.OriginPoint != nil && opts.DestPoint != nil {
		return []orb.Point{*opts.OriginPoint, *opts.DestPoint}, opts.PointMarkerColor, nil
	}
	orig, ok := g.Node(route.Origin())
	if !ok {
		return nil, "", errors.New(errors.ErrCodeInvalidRoute, "route origin %s not in graph", route.Origin())
	}
	dest, ok := g.Node(route.Destination())
	if !ok {
		return nil, "", errors.New(errors.ErrCodeInvalidRoute, "route destination %s not in graph", route.Destination())
	}
	return []orb.Point{orig.Point(), dest.Point()}, opts.NodeMarkerColor, nil
}
