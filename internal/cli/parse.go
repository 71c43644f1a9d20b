package cli

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/matzehuels/streetplot/pkg/errors"
	"github.com/matzehuels/streetplot/pkg/geo"
	"github.com/matzehuels/streetplot/pkg/graph"
)

// parseBBox parses "north,south,east,west" into a bounding box.
func parseBBox(s string) (*geo.BBox, error) {
	parts, err := parseFloats(s, 4)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bbox %q (want north,south,east,west)", s)
	}
	return &geo.BBox{North: parts[0], South: parts[1], East: parts[2], West: parts[3]}, nil
}

// parsePoint parses "lon,lat" into a point.
func parsePoint(s string) (orb.Point, error) {
	parts, err := parseFloats(s, 2)
	if err != nil {
		return orb.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "point %q (want lon,lat)", s)
	}
	return orb.Point{parts[0], parts[1]}, nil
}

// parseRoute parses a comma-separated node ID list into a route.
func parseRoute(s string) (graph.Route, error) {
	var route graph.Route
	for _, id := range strings.Split(s, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		route = append(route, id)
	}
	if len(route) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidRoute, "route %q needs at least two node IDs", s)
	}
	return route, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "got %d values, want %d", len(fields), n)
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
