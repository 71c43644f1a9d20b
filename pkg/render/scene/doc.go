// Package scene composes static render scenes: ordered stacks of drawing
// layers plus the framing (view box, figure size, background) needed to
// rasterize them.
//
// A scene is backend-independent. Composition decides what gets drawn and in
// which stacking order; the sink packages decide how. Stacking follows fixed
// z-order bands: edges above default-placed nodes, route overlays above
// edges, origin and destination markers above the route, annotations on top.
package scene
