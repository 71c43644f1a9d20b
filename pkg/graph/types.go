package graph

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
)

// AttrLength is the edge attribute name that resolves to Edge.Length.
const AttrLength = "length"

// Node is a graph vertex at a geographic coordinate.
type Node struct {
	ID string  `json:"id"`
	X  float64 `json:"x"` // longitude
	Y  float64 `json:"y"` // latitude
}

// Point returns the node's coordinate as an orb point.
func (n Node) Point() orb.Point { return orb.Point{n.X, n.Y} }

// Edge is a directed edge between two nodes. Key disambiguates parallel
// edges over the same ordered node pair and is assigned by the graph in
// insertion order.
type Edge struct {
	From    string             `json:"from"`
	To      string             `json:"to"`
	Key     int                `json:"key,omitempty"`
	Length  float64            `json:"length"`
	Highway string             `json:"highway,omitempty"`
	Attrs   map[string]float64 `json:"attrs,omitempty"`
	// Geometry is the stored curved path between the endpoints. It is
	// independent of the node coordinates: its endpoints need not match
	// them exactly. Empty means no curve data.
	Geometry orb.LineString `json:"geometry,omitempty"`
}

// HasGeometry reports whether the edge carries curve data.
func (e Edge) HasGeometry() bool { return len(e.Geometry) > 0 }

// Attr returns a numeric attribute by name. "length" always resolves to the
// edge length; other names are looked up in Attrs.
func (e Edge) Attr(name string) (float64, bool) {
	if name == AttrLength {
		return e.Length, true
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// AttrString formats an attribute value as plain text, for web-map popups.
// "highway" resolves to the street type; numeric attributes are formatted
// with %g. Unknown attributes return the empty string.
func (e Edge) AttrString(name string) string {
	if name == "highway" {
		return e.Highway
	}
	if v, ok := e.Attr(name); ok {
		return fmt.Sprintf("%g", v)
	}
	return ""
}

// edgeJSON is the wire shape of an edge. Highway is raw so that both string
// and list-of-string inputs decode; geometry is a list of [x, y] pairs.
type edgeJSON struct {
	From     string             `json:"from"`
	To       string             `json:"to"`
	Key      int                `json:"key,omitempty"`
	Length   float64            `json:"length"`
	Highway  json.RawMessage    `json:"highway,omitempty"`
	Attrs    map[string]float64 `json:"attrs,omitempty"`
	Geometry [][2]float64       `json:"geometry,omitempty"`
}

// UnmarshalJSON decodes an edge, normalizing list-valued street types to
// their first element so no later read site has to branch on shape.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var raw edgeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	hw, err := normalizeHighway(raw.Highway)
	if err != nil {
		return err
	}
	*e = Edge{
		From:    raw.From,
		To:      raw.To,
		Key:     raw.Key,
		Length:  raw.Length,
		Highway: hw,
		Attrs:   raw.Attrs,
	}
	if len(raw.Geometry) > 0 {
		e.Geometry = make(orb.LineString, len(raw.Geometry))
		for i, p := range raw.Geometry {
			e.Geometry[i] = orb.Point{p[0], p[1]}
		}
	}
	return nil
}

// MarshalJSON encodes an edge with geometry as [x, y] pairs.
func (e Edge) MarshalJSON() ([]byte, error) {
	raw := edgeJSON{
		From:   e.From,
		To:     e.To,
		Key:    e.Key,
		Length: e.Length,
		Attrs:  e.Attrs,
	}
	if e.Highway != "" {
		hw, err := json.Marshal(e.Highway)
		if err != nil {
			return nil, err
		}
		raw.Highway = hw
	}
	if len(e.Geometry) > 0 {
		raw.Geometry = make([][2]float64, len(e.Geometry))
		for i, p := range e.Geometry {
			raw.Geometry[i] = [2]float64{p.X(), p.Y()}
		}
	}
	return json.Marshal(raw)
}

// normalizeHighway accepts a JSON string or list of strings and returns the
// authoritative single value (first element of a list).
func normalizeHighway(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return "", fmt.Errorf("highway attribute is neither string nor list: %s", raw)
	}
	if len(list) == 0 {
		return "", nil
	}
	return list[0], nil
}
