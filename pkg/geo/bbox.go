package geo

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/errors"
)

// BBox is a geographic bounding box. North/south are latitudes, east/west are
// longitudes. Invariants North >= South and East >= West are the caller's
// responsibility; a degenerate box propagates as a degenerate rendering.
type BBox struct {
	North, South, East, West float64
}

// FromBound converts an orb bound (min=SW corner, max=NE corner) to a BBox.
func FromBound(b orb.Bound) BBox {
	return BBox{
		North: b.Max.Y(),
		South: b.Min.Y(),
		East:  b.Max.X(),
		West:  b.Min.X(),
	}
}

// Bound converts the box to an orb bound.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// Width returns the east-west span in degrees.
func (b BBox) Width() float64 { return b.East - b.West }

// Height returns the north-south span in degrees.
func (b BBox) Height() float64 { return b.North - b.South }

// AspectRatio returns (north-south)/(east-west), the height:width ratio of
// the box in coordinate units.
func (b BBox) AspectRatio() float64 {
	return b.Height() / b.Width()
}

// Expand grows the box symmetrically by a relative margin fraction: north and
// south move out by margin*(north-south), east and west by margin*(east-west).
// The expanded box is the view limit for rendering.
func (b BBox) Expand(margin float64) BBox {
	mNS := b.Height() * margin
	mEW := b.Width() * margin
	return BBox{
		North: b.North + mNS,
		South: b.South - mNS,
		East:  b.East + mEW,
		West:  b.West - mEW,
	}
}

// Union computes the enclosing rectangle of a collection of polylines.
// An empty collection (or one with only empty polylines) has no extent and
// returns a MISSING_EXTENT error: the caller must supply an explicit box.
func Union(lines []orb.LineString) (BBox, error) {
	var bound orb.Bound
	found := false
	for _, ls := range lines {
		if len(ls) == 0 {
			continue
		}
		if !found {
			bound = ls.Bound()
			found = true
			continue
		}
		bound = bound.Union(ls.Bound())
	}
	if !found {
		return BBox{}, errors.New(errors.ErrCodeMissingExtent, "no geometries to derive an extent from")
	}
	return FromBound(bound), nil
}

// Centroid returns the length-weighted centroid of a collection of polylines,
// the center point used when creating a web map canvas without an explicit
// center. Zero-length input degenerates to the mean of the distinct vertices.
func Centroid(lines []orb.LineString) (orb.Point, error) {
	var cx, cy, weight float64
	var vx, vy float64
	vertices := 0

	for _, ls := range lines {
		for i := 0; i < len(ls); i++ {
			vx += ls[i].X()
			vy += ls[i].Y()
			vertices++
			if i == 0 {
				continue
			}
			a, b := ls[i-1], ls[i]
			d := math.Hypot(b.X()-a.X(), b.Y()-a.Y())
			cx += (a.X() + b.X()) / 2 * d
			cy += (a.Y() + b.Y()) / 2 * d
			weight += d
		}
	}

	if vertices == 0 {
		return orb.Point{}, errors.New(errors.ErrCodeMissingExtent, "no geometries to derive a centroid from")
	}
	if weight == 0 {
		return orb.Point{vx / float64(vertices), vy / float64(vertices)}, nil
	}
	return orb.Point{cx / weight, cy / weight}, nil
}

// FigureSize derives figure dimensions from the box's aspect ratio. The
// height is the primary dimension; if width is zero the complementary
// dimension is computed as height/aspect so the figure is not spatially
// distorted. An explicit non-zero width takes precedence.
func FigureSize(b BBox, height, width float64) (w, h float64) {
	if width > 0 {
		return width, height
	}
	return height / b.AspectRatio(), height
}

// BoxAround returns a square box centered on point p extending dist meters
// north, south, east, and west. The meters-to-degrees conversion is the
// small-area equirectangular approximation; this is framing math, not
// reprojection.
func BoxAround(p orb.Point, dist float64) BBox {
	const metersPerDegree = 111320.0
	dLat := dist / metersPerDegree
	dLon := dist / (metersPerDegree * math.Cos(p.Y()*math.Pi/180))
	return BBox{
		North: p.Y() + dLat,
		South: p.Y() - dLat,
		East:  p.X() + dLon,
		West:  p.X() - dLon,
	}
}
