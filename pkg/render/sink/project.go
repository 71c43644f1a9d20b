package sink

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/geo"
)

// projection maps geographic coordinates onto a canvas of w x h pixels. The
// scale is the smaller of the per-axis scales, applied uniformly, and the
// content is centered; latitude increases upward so y is flipped.
type projection struct {
	box     geo.BBox
	scale   float64
	offsetX float64
	offsetY float64
	canvasW float64
	canvasH float64
}

func newProjection(box geo.BBox, w, h float64) projection {
	sx := w / box.Width()
	sy := h / box.Height()
	s := math.Min(sx, sy)
	return projection{
		box:     box,
		scale:   s,
		offsetX: (w - s*box.Width()) / 2,
		offsetY: (h - s*box.Height()) / 2,
		canvasW: w,
		canvasH: h,
	}
}

func (p projection) apply(pt orb.Point) (x, y float64) {
	x = p.offsetX + (pt.X()-p.box.West)*p.scale
	y = p.canvasH - p.offsetY - (pt.Y()-p.box.South)*p.scale
	return x, y
}

// contentRect is the pixel rectangle the projected extent occupies, used to
// crop away the centering slack when axes are hidden.
func (p projection) contentRect() image.Rectangle {
	x0 := int(math.Floor(p.offsetX))
	y0 := int(math.Floor(p.offsetY))
	x1 := int(math.Ceil(p.canvasW - p.offsetX))
	y1 := int(math.Ceil(p.canvasH - p.offsetY))
	return image.Rect(x0, y0, x1, y1)
}

// parseColor decodes a "#rrggbb" color string.
func parseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "color %q", s)
	}
	return c, nil
}

// lineStyle resolves the color and width for the i-th line of a layer with
// optional per-line overrides.
func lineStyle(colors []string, widths []float64, fallbackColor string, fallbackWidth float64, i int) (string, float64) {
	c := fallbackColor
	if len(colors) > 0 {
		c = colors[i]
	}
	w := fallbackWidth
	if len(widths) > 0 {
		w = widths[i]
	}
	return c, w
}
