package sink

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/render/scene"
)

const pointsPerInch = 72

var (
	fontOnce sync.Once
	fontErr  error
	baseFont *opentype.Font
)

// labelFace builds a text face at the given point size for the target DPI.
// The embedded Go Regular font avoids any dependency on system font paths.
func labelFace(sizePt float64, dpi int) (font.Face, error) {
	fontOnce.Do(func() {
		baseFont, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, fontErr, "parse label font")
	}
	face, err := opentype.NewFace(baseFont, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     float64(dpi),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build label face")
	}
	return face, nil
}

// WritePNG renders the scene and encodes it as PNG.
func WritePNG(w io.Writer, s *scene.Scene, dpi int) error {
	img, err := RenderPNG(s, dpi)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}

// RenderPNG rasterizes the scene at the given DPI. Figure dimensions in
// inches times DPI give the canvas size in pixels. With axes hidden the
// result is cropped tight to the drawn extent; otherwise a frame with corner
// coordinate labels surrounds it.
func RenderPNG(s *scene.Scene, dpi int) (image.Image, error) {
	if dpi <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dpi must be positive, got %d", dpi)
	}
	pxW := int(math.Round(s.FigWidth * float64(dpi)))
	pxH := int(math.Round(s.FigHeight * float64(dpi)))
	if pxW <= 0 || pxH <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"degenerate canvas %dx%d from figure %gx%g in", pxW, pxH, s.FigWidth, s.FigHeight)
	}

	dc := gg.NewContext(pxW, pxH)
	bg, err := parseColor(s.Background)
	if err != nil {
		return nil, err
	}
	dc.SetRGB(bg.R, bg.G, bg.B)
	dc.Clear()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	p := newProjection(s.BBox, float64(pxW), float64(pxH))
	ptScale := float64(dpi) / pointsPerInch

	for _, layer := range s.Sorted() {
		switch layer.Kind {
		case scene.KindLines:
			err = drawLines(dc, p, layer, ptScale)
		case scene.KindPoints:
			err = drawPoints(dc, p, layer, ptScale)
		case scene.KindPolygons:
			err = drawPolygons(dc, p, layer, ptScale)
		case scene.KindText:
			err = drawLabels(dc, p, layer, ptScale, dpi)
		}
		if err != nil {
			return nil, err
		}
	}

	if s.AxisOff {
		return imaging.Crop(dc.Image(), p.contentRect()), nil
	}
	if err := drawFrame(dc, p, s, ptScale, dpi); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func drawLines(dc *gg.Context, p projection, layer scene.Layer, ptScale float64) error {
	for i, line := range layer.Lines {
		if len(line) < 2 {
			continue
		}
		colorHex, width := lineStyle(layer.Colors, layer.Widths, layer.Color, layer.Width, i)
		c, err := parseColor(colorHex)
		if err != nil {
			return err
		}
		dc.SetRGBA(c.R, c.G, c.B, layer.Alpha)
		dc.SetLineWidth(width * ptScale)
		x, y := p.apply(line[0])
		dc.MoveTo(x, y)
		for _, pt := range line[1:] {
			x, y = p.apply(pt)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}
	return nil
}

func drawPoints(dc *gg.Context, p projection, layer scene.Layer, ptScale float64) error {
	c, err := parseColor(layer.Color)
	if err != nil {
		return err
	}
	// Marker size is an area in square points, matching scatter-style sizing.
	radius := math.Sqrt(layer.Size/math.Pi) * ptScale
	dc.SetRGBA(c.R, c.G, c.B, layer.Alpha)
	for _, pt := range layer.Points {
		x, y := p.apply(pt)
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}
	return nil
}

func drawPolygons(dc *gg.Context, p projection, layer scene.Layer, ptScale float64) error {
	fill, err := parseColor(layer.FillColor)
	if err != nil {
		return err
	}
	stroke, err := parseColor(layer.Color)
	if err != nil {
		return err
	}
	// Even-odd winding punches interior rings out as holes.
	dc.SetFillRule(gg.FillRuleEvenOdd)
	for _, poly := range layer.Polygons {
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}
			x, y := p.apply(ring[0])
			dc.MoveTo(x, y)
			for _, pt := range ring[1:] {
				x, y = p.apply(pt)
				dc.LineTo(x, y)
			}
			dc.ClosePath()
		}
		dc.SetRGBA(fill.R, fill.G, fill.B, layer.Alpha)
		dc.FillPreserve()
		dc.SetRGBA(stroke.R, stroke.G, stroke.B, layer.Alpha)
		dc.SetLineWidth(layer.Width * ptScale)
		dc.Stroke()
	}
	return nil
}

func drawLabels(dc *gg.Context, p projection, layer scene.Layer, ptScale float64, dpi int) error {
	c, err := parseColor(layer.Color)
	if err != nil {
		return err
	}
	face, err := labelFace(8, dpi)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetRGBA(c.R, c.G, c.B, layer.Alpha)
	for _, label := range layer.Labels {
		x, y := p.apply(label.At)
		dc.DrawStringAnchored(label.Text, x, y-3*ptScale, 0.5, 1)
	}
	return nil
}

// drawFrame adds the visible-axis chrome: a border around the drawn extent
// and corner coordinate labels.
func drawFrame(dc *gg.Context, p projection, s *scene.Scene, ptScale float64, dpi int) error {
	r := p.contentRect()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(0.8 * ptScale)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Stroke()

	face, err := labelFace(10, dpi)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	pad := 4 * ptScale
	dc.DrawStringAnchored(fmt.Sprintf("%.4f", s.BBox.West), float64(r.Min.X)+pad, float64(r.Max.Y)-pad, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%.4f", s.BBox.East), float64(r.Max.X)-pad, float64(r.Max.Y)-pad, 1, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%.4f", s.BBox.South), float64(r.Min.X)+pad, float64(r.Max.Y)-pad-14*ptScale, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%.4f", s.BBox.North), float64(r.Min.X)+pad, float64(r.Min.Y)+pad+10*ptScale, 0, 0)
	return nil
}
