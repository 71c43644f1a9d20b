// Package style maps edge attributes to visual encodings.
//
// Two encodings are provided:
//
//   - Quantile color binning: a continuous numeric attribute is cut into k
//     equal-frequency bins, and each bin is colored by sampling a named
//     continuous colormap at k evenly spaced positions within a subrange of
//     [0, 1]. Membership depends only on rank within the sorted attribute
//     distribution, so the mapping is invariant to monotonic rescaling.
//
//   - Street-type widths: a categorical street-type attribute resolves to a
//     line width through a lookup table with a default fallback, used for
//     figure-ground diagrams.
//
// Colormaps interpolate between anchor colors in Lab space via
// [github.com/lucasb-eyer/go-colorful], which keeps perceived lightness
// changing smoothly across the scale.
package style
