package scene

import (
	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/geo"
)

// ShapeOptions controls polygon scene composition.
type ShapeOptions struct {
	BBox      *geo.BBox
	Margin    float64
	FigHeight float64
	FigWidth  float64

	Background string
	AxisOff    bool

	FillColor string
	EdgeColor string
	LineWidth float64
	Alpha     float64
}

// DefaultShapeOptions returns the standard footprint styling: silver fills
// with no visible outline on a white background.
func DefaultShapeOptions() ShapeOptions {
	return ShapeOptions{
		Margin:     0.02,
		FigHeight:  6,
		Background: "#ffffff",
		AxisOff:    true,
		FillColor:  "#c0c0c0",
		EdgeColor:  "#c0c0c0",
		LineWidth:  1,
		Alpha:      1,
	}
}

// ComposeShapes builds a scene from area geometries such as building
// footprints. Only polygons and multipolygons are drawable as filled shapes;
// any other geometry kind fails the whole call with INVALID_GEOMETRY rather
// than rendering a partial set.
func ComposeShapes(geoms []orb.Geometry, opts ShapeOptions) (*Scene, error) {
	var polys []orb.Polygon
	for i, g := range geoms {
		switch v := g.(type) {
		case orb.Polygon:
			polys = append(polys, v)
		case orb.MultiPolygon:
			polys = append(polys, v...)
		default:
			return nil, errors.New(errors.ErrCodeInvalidGeometry,
				"geometry %d is %s, want Polygon or MultiPolygon", i, g.GeoJSONType())
		}
	}

	var box geo.BBox
	if opts.BBox != nil {
		box = *opts.BBox
	} else {
		found := false
		var bound orb.Bound
		for _, p := range polys {
			if len(p) == 0 {
				continue
			}
			if !found {
				bound = p.Bound()
				found = true
				continue
			}
			bound = bound.Union(p.Bound())
		}
		if !found {
			return nil, errors.New(errors.ErrCodeMissingExtent, "no geometries to derive an extent from")
		}
		box = geo.FromBound(bound)
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
		Kind:      KindPolygons,
		Z:         ZEdges,
		Polygons:  polys,
		FillColor: opts.FillColor,
		Color:     opts.EdgeColor,
		Width:     opts.LineWidth,
		Alpha:     opts.Alpha,
	})
	return s, nil
}
