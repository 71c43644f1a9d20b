// Package geo provides geographic extent and figure framing math.
//
// # Overview
//
// This package owns the bounding-box arithmetic that keeps rendered maps
// spatially honest:
//
//   - [BBox]: a north/south/east/west rectangle in geographic coordinates
//   - [Union]: the enclosing rectangle of a set of polylines
//   - [Centroid]: the length-weighted center point of a set of polylines
//   - [FigureSize]: aspect-ratio-correct figure dimensions for a bounding box
//
// Coordinates follow the x=longitude, y=latitude convention used by the
// graph package and by [github.com/paulmach/orb].
//
// # Framing
//
// A figure framed with [FigureSize] and view limits from [BBox.Expand] has a
// uniform degrees-per-inch scale on both axes, so no geographic distortion is
// introduced by unequal axis scales.
package geo
