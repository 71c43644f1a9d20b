// Package render turns street-network graphs into drawable geometry.
//
// # Overview
//
// This package and its subpackages form the rendering pipeline:
//
//   - render (this package): resolves graph edges and routes to concrete
//     polylines
//   - [style]: visual encodings — quantile color bins and street-type widths
//   - [scene]: layered static scene composition with enforced draw order
//   - [sink]: output formats (PNG raster, SVG vector)
//   - [webmap]: interactive Leaflet web map composition
//
// # Geometry resolution
//
// An edge draws as its stored curve when it has one and curves are enabled,
// otherwise as the straight segment between its endpoint nodes. A route step
// names a node pair, not a parallel-edge instance; [RouteLines] selects the
// edge with minimum length — the most plausible actually-traveled one — with
// ties broken by insertion order, so resolution is deterministic.
//
// [style]: github.com/matzehuels/streetplot/pkg/render/style
// [scene]: github.com/matzehuels/streetplot/pkg/render/scene
// [sink]: github.com/matzehuels/streetplot/pkg/render/sink
// [webmap]: github.com/matzehuels/streetplot/pkg/render/webmap
package render
