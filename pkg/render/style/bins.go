package style

import (
	"github.com/montanaflynn/stats"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/graph"
)

// QuantileBins partitions values into k equal-frequency bins. Bin boundaries
// are the (i/k)-quantiles of the distribution for i = 0..k; each value is
// assigned the index of the first bin whose upper boundary contains it, so
// bin indices are monotonically non-decreasing in the value's sorted order
// and membership depends only on rank.
//
// When the distribution has fewer distinct values than bins (or is entirely
// constant), adjacent boundaries coincide and some bins stay empty: the cut
// yields fewer effective bins than requested. That is expected behavior, not
// an error.
func QuantileBins(values []float64, k int) ([]int, error) {
	if k < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "bin count must be >= 1, got %d", k)
	}
	if len(values) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no values to bin")
	}

	data := stats.Float64Data(values)

	boundaries := make([]float64, k+1)
	min, err := data.Min()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "quantile boundaries")
	}
	boundaries[0] = min
	for i := 1; i <= k; i++ {
		// Nearest-rank quantiles stay well defined even when the input is
		// smaller than the bin count.
		q, err := stats.PercentileNearestRank(data, 100*float64(i)/float64(k))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "quantile boundaries")
		}
		boundaries[i] = q
	}

	bins := make([]int, len(values))
	for i, v := range values {
		bin := k - 1
		for j := 0; j < k; j++ {
			if v <= boundaries[j+1] {
				bin = j
				break
			}
		}
		bins[i] = bin
	}
	return bins, nil
}

// BinColors assigns one color per value: values are quantile-cut into k bins
// and each bin maps to a colormap sample at k evenly spaced positions across
// [start, stop]. Every input value receives exactly one color.
func BinColors(values []float64, k int, cmap string, start, stop float64) ([]string, error) {
	bins, err := QuantileBins(values, k)
	if err != nil {
		return nil, err
	}
	cm, err := GetColormap(cmap)
	if err != nil {
		return nil, err
	}
	palette := cm.SampleHex(k, start, stop)
	colors := make([]string, len(values))
	for i, bin := range bins {
		colors[i] = palette[bin]
	}
	return colors, nil
}

// EdgeBinColors colors every edge of a graph by quantile-binning the named
// numeric attribute. Edges missing the attribute make the whole call fail:
// a partial color list would silently misalign with the edge order.
func EdgeBinColors(g *graph.Graph, attr string, k int, cmap string, start, stop float64) ([]string, error) {
	edges := g.Edges()
	values := make([]float64, len(edges))
	for i, e := range edges {
		v, ok := e.Attr(attr)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"edge %s→%s has no attribute %q", e.From, e.To, attr)
		}
		values[i] = v
	}
	return BinColors(values, k, cmap, start, stop)
}
