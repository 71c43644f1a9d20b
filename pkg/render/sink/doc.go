// Package sink rasterizes composed scenes to files.
//
// Two formats are supported. PNG renders through a raster canvas at a
// configurable DPI; with axes hidden the output is cropped tight to the
// drawn extent. SVG emits vector markup with no figure chrome and a
// transparent background, sized so the extent fills the viewport.
//
// Both backends project coordinates with a single uniform scale factor, so
// one unit of longitude and one unit of latitude always occupy the same
// number of pixels and shapes keep their aspect ratio.
package sink
