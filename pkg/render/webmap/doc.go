// Package webmap renders graphs and routes as interactive Leaflet maps.
//
// A Map accumulates polyline layers (graph edges, route overlays) and emits
// a self-contained HTML document that loads Leaflet from its CDN, centers on
// the accumulated geometry, and fits the viewport to its bounds. Coordinates
// follow the Leaflet convention of [latitude, longitude] pairs, swapped from
// the lon/lat order used everywhere else in this module.
//
// Web maps require a tile provider. Constructing a Map with no provider
// configured fails with UNSUPPORTED_CAPABILITY up front, before any layer
// work happens.
package webmap
