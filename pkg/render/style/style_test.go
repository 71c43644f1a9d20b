package style

import (
	"sort"
	"testing"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/graph"
)

func TestQuantileBinsCoverage(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		k      int
	}{
		{"uniform", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5},
		{"skewed", []float64{1, 1, 1, 2, 3, 100, 1000}, 3},
		{"two values many bins", []float64{1, 2}, 4},
		{"single bin", []float64{5, 3, 8}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bins, err := QuantileBins(tt.values, tt.k)
			if err != nil {
				t.Fatalf("QuantileBins: %v", err)
			}
			if len(bins) != len(tt.values) {
				t.Fatalf("got %d bins for %d values", len(bins), len(tt.values))
			}
			for i, b := range bins {
				if b < 0 || b >= tt.k {
					t.Errorf("value %d assigned bin %d, outside [0, %d)", i, b, tt.k)
				}
			}
		})
	}
}

func TestQuantileBinsMonotone(t *testing.T) {
	values := []float64{9, 1, 7, 3, 5, 2, 8, 4, 6, 10}
	bins, err := QuantileBins(values, 4)
	if err != nil {
		t.Fatalf("QuantileBins: %v", err)
	}

	type pair struct {
		v float64
		b int
	}
	pairs := make([]pair, len(values))
	for i := range values {
		pairs[i] = pair{values[i], bins[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].v < pairs[j].v })
	for i := 1; i < len(pairs); i++ {
		if pairs[i].b < pairs[i-1].b {
			t.Fatalf("bin index decreased along sorted values: %v", pairs)
		}
	}
}

func TestQuantileBinsRankInvariance(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	// Monotonic rescaling: x -> x^3 preserves ranks, so bins must not change.
	cubed := make([]float64, len(values))
	for i, v := range values {
		cubed[i] = v * v * v
	}

	a, err := QuantileBins(values, 4)
	if err != nil {
		t.Fatalf("QuantileBins: %v", err)
	}
	b, err := QuantileBins(cubed, 4)
	if err != nil {
		t.Fatalf("QuantileBins: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bins changed under monotonic rescaling: %v vs %v", a, b)
		}
	}
}

func TestQuantileBinsDegenerate(t *testing.T) {
	// All-equal values collapse to a single effective bin.
	bins, err := QuantileBins([]float64{7, 7, 7, 7}, 3)
	if err != nil {
		t.Fatalf("QuantileBins: %v", err)
	}
	for i, b := range bins {
		if b != 0 {
			t.Errorf("value %d assigned bin %d, want 0", i, b)
		}
	}
}

func TestQuantileBinsInvalidInput(t *testing.T) {
	if _, err := QuantileBins(nil, 3); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty input error = %v, want INVALID_INPUT", err)
	}
	if _, err := QuantileBins([]float64{1}, 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zero bins error = %v, want INVALID_INPUT", err)
	}
}

func TestBinColorsOnePerValue(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	colors, err := BinColors(values, 5, "viridis", 0, 1)
	if err != nil {
		t.Fatalf("BinColors: %v", err)
	}
	if len(colors) != len(values) {
		t.Fatalf("got %d colors for %d values", len(colors), len(values))
	}
	for i, c := range colors {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("color %d = %q, want #rrggbb", i, c)
		}
	}
	// Five distinct values across five bins: lowest and highest differ.
	if colors[0] == colors[4] {
		t.Error("extreme values share a color")
	}
}

func TestBinColorsUnknownColormap(t *testing.T) {
	_, err := BinColors([]float64{1, 2}, 2, "sunburst", 0, 1)
	if !errors.Is(err, errors.ErrCodeInvalidColormap) {
		t.Errorf("error = %v, want INVALID_COLORMAP", err)
	}
}

func TestColormapSampleSubrange(t *testing.T) {
	cm, err := GetColormap("viridis")
	if err != nil {
		t.Fatalf("GetColormap: %v", err)
	}

	t.Run("endpoints", func(t *testing.T) {
		samples := cm.Sample(3, 0, 1)
		if samples[0].Hex() != "#440154" {
			t.Errorf("sample at 0 = %s, want #440154", samples[0].Hex())
		}
		if samples[2].Hex() != "#fde725" {
			t.Errorf("sample at 1 = %s, want #fde725", samples[2].Hex())
		}
	})

	t.Run("single sample at start", func(t *testing.T) {
		samples := cm.Sample(1, 0.5, 0.9)
		if samples[0] != cm.At(0.5) {
			t.Error("single sample not taken at start of subrange")
		}
	})

	t.Run("clamping", func(t *testing.T) {
		if cm.At(-1) != cm.At(0) || cm.At(2) != cm.At(1) {
			t.Error("out-of-range positions do not clamp")
		}
	})
}

func TestStreetWidthFallback(t *testing.T) {
	widths := WidthMap{"motorway": 6, "footway": 1.5}

	tests := []struct {
		name       string
		streetType string
		want       float64
	}{
		{"mapped motorway", "motorway", 6},
		{"mapped footway", "footway", 1.5},
		{"unmapped residential", "residential", 4},
		{"empty type", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StreetWidth(tt.streetType, widths, 4); got != tt.want {
				t.Errorf("StreetWidth(%q) = %v, want %v", tt.streetType, got, tt.want)
			}
		})
	}
}

func TestEdgeWidthsAlignment(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddNode(graph.Node{ID: id}); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	if err := g.AddEdge(graph.Edge{From: "a", To: "b", Length: 1, Highway: "motorway"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(graph.Edge{From: "b", To: "c", Length: 1, Highway: "residential"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	widths := EdgeWidths(g, DefaultStreetWidths, 4)
	if len(widths) != 2 {
		t.Fatalf("EdgeWidths = %d entries, want 2", len(widths))
	}
	if widths[0] != 6 {
		t.Errorf("motorway width = %v, want 6", widths[0])
	}
	if widths[1] != 4 {
		t.Errorf("residential width = %v, want default 4", widths[1])
	}
}

func TestEdgeBinColorsMissingAttr(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a", "b"} {
		if err := g.AddNode(graph.Node{ID: id}); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	if err := g.AddEdge(graph.Edge{From: "a", To: "b", Length: 1}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if _, err := EdgeBinColors(g, "grade", 2, "viridis", 0, 1); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing attribute error = %v, want INVALID_INPUT", err)
	}
	colors, err := EdgeBinColors(g, "length", 2, "viridis", 0, 1)
	if err != nil || len(colors) != 1 {
		t.Errorf("EdgeBinColors(length) = %v, %v", colors, err)
	}
}
