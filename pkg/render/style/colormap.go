package style

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/streetplot/pkg/errors"
)

// Colormap is a continuous color scale built from anchor colors placed at
// evenly spaced positions in [0, 1].
type Colormap struct {
	name  string
	stops []colorful.Color
}

// Anchor colors for the built-in scales (matplotlib's perceptually uniform
// family, decimated to ten anchors each).
var colormapAnchors = map[string][]string{
	"viridis": {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
	"plasma":  {"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786", "#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"},
	"inferno": {"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60", "#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"},
	"magma":   {"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f", "#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"},
	"gray":    {"#000000", "#ffffff"},
}

// GetColormap returns a named colormap, or an INVALID_COLORMAP error for an
// unknown name.
func GetColormap(name string) (Colormap, error) {
	anchors, ok := colormapAnchors[name]
	if !ok {
		return Colormap{}, errors.New(errors.ErrCodeInvalidColormap, "unknown colormap %q", name)
	}
	stops := make([]colorful.Color, len(anchors))
	for i, hex := range anchors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return Colormap{}, errors.Wrap(errors.ErrCodeInternal, err, "colormap %s anchor %s", name, hex)
		}
		stops[i] = c
	}
	return Colormap{name: name, stops: stops}, nil
}

// Name returns the colormap's name.
func (c Colormap) Name() string { return c.name }

// At samples the scale at position t in [0, 1]. Out-of-range positions clamp
// to the ends. Interpolation between anchors happens in Lab space.
func (c Colormap) At(t float64) colorful.Color {
	if t <= 0 {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1]
	}
	scaled := t * float64(len(c.stops)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	return c.stops[i].BlendLab(c.stops[i+1], frac).Clamped()
}

// Sample returns n colors at evenly spaced positions across [start, stop].
// With n == 1 the single sample is taken at start.
func (c Colormap) Sample(n int, start, stop float64) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := 0; i < n; i++ {
		t := start
		if n > 1 {
			t = start + float64(i)*(stop-start)/float64(n-1)
		}
		out[i] = c.At(t)
	}
	return out
}

// SampleHex is Sample with colors formatted as "#rrggbb" strings.
func (c Colormap) SampleHex(n int, start, stop float64) []string {
	colors := c.Sample(n, start, stop)
	out := make([]string, n)
	for i, col := range colors {
		out[i] = col.Hex()
	}
	return out
}
