package sink

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/streetplot/pkg/render/scene"
)

// WriteSVG emits the scene as vector markup. The viewport is sized from the
// figure dimensions at 72 points per inch, the background stays transparent,
// and no figure chrome is drawn: the extent fills the canvas edge to edge.
func WriteSVG(w io.Writer, s *scene.Scene) error {
	width := s.FigWidth * pointsPerInch
	height := s.FigHeight * pointsPerInch
	p := newProjection(s.BBox, width, height)

	canvas := svg.New(w)
	canvas.Start(width, height)

	for _, layer := range s.Sorted() {
		switch layer.Kind {
		case scene.KindLines:
			svgLines(canvas, p, layer)
		case scene.KindPoints:
			svgPoints(canvas, p, layer)
		case scene.KindPolygons:
			svgPolygons(canvas, p, layer)
		case scene.KindText:
			svgLabels(canvas, p, layer)
		}
	}

	canvas.End()
	return nil
}

func strokeStyle(color string, width, alpha float64) string {
	return fmt.Sprintf(
		"fill:none;stroke:%s;stroke-width:%g;stroke-opacity:%g;stroke-linecap:round;stroke-linejoin:round",
		color, width, alpha)
}

func svgLines(canvas *svg.SVG, p projection, layer scene.Layer) {
	for i, line := range layer.Lines {
		if len(line) < 2 {
			continue
		}
		color, width := lineStyle(layer.Colors, layer.Widths, layer.Color, layer.Width, i)
		xs := make([]float64, len(line))
		ys := make([]float64, len(line))
		for j, pt := range line {
			xs[j], ys[j] = p.apply(pt)
		}
		canvas.Polyline(xs, ys, strokeStyle(color, width, layer.Alpha))
	}
}

func svgPoints(canvas *svg.SVG, p projection, layer scene.Layer) {
	radius := math.Sqrt(layer.Size / math.Pi)
	style := fmt.Sprintf("fill:%s;fill-opacity:%g;stroke:none", layer.Color, layer.Alpha)
	for _, pt := range layer.Points {
		x, y := p.apply(pt)
		canvas.Circle(x, y, radius, style)
	}
}

func svgPolygons(canvas *svg.SVG, p projection, layer scene.Layer) {
	style := fmt.Sprintf(
		"fill:%s;fill-opacity:%g;fill-rule:evenodd;stroke:%s;stroke-width:%g;stroke-opacity:%g",
		layer.FillColor, layer.Alpha, layer.Color, layer.Width, layer.Alpha)
	for _, poly := range layer.Polygons {
		var d strings.Builder
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}
			for j, pt := range ring {
				x, y := p.apply(pt)
				cmd := "L"
				if j == 0 {
					cmd = "M"
				}
				fmt.Fprintf(&d, "%s%g %g ", cmd, x, y)
			}
			d.WriteString("Z ")
		}
		if d.Len() > 0 {
			canvas.Path(strings.TrimSpace(d.String()), style)
		}
	}
}

func svgLabels(canvas *svg.SVG, p projection, layer scene.Layer) {
	style := fmt.Sprintf(
		"fill:%s;fill-opacity:%g;font-family:sans-serif;font-size:8px;text-anchor:middle",
		layer.Color, layer.Alpha)
	for _, label := range layer.Labels {
		x, y := p.apply(label.At)
		canvas.Text(x, y-3, label.Text, style)
	}
}
