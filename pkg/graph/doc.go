// Package graph provides the spatial street-network multigraph.
//
// # Overview
//
// A [Graph] is a directed multigraph of [Node] and [Edge] values. Nodes carry
// geographic coordinates (x=longitude, y=latitude). Edges are keyed by
// (from, to, key) so multiple parallel edges may connect the same ordered
// node pair, e.g. divided roadways. Each edge carries a length, a street-type
// attribute, optional numeric attributes, and an optional curved geometry
// stored as an [github.com/paulmach/orb.LineString].
//
// # Serialization
//
// The JSON format is the canonical interchange format:
//
//	{
//	  "nodes": [{"id": "a", "x": 4.89, "y": 52.37}],
//	  "edges": [{"from": "a", "to": "b", "length": 120.5,
//	             "highway": "residential",
//	             "geometry": [[4.89, 52.37], [4.90, 52.38]]}]
//	}
//
// Street types that arrive as a list (some upstream exports do this) are
// collapsed to their first element on decode, so downstream code never
// branches on attribute shape. Parallel-edge keys are assigned in insertion
// order, which makes import → export → re-import stable.
//
// # Routes
//
// A [Route] is an ordered sequence of node IDs. Consecutive pairs must be
// connected in the graph; that is checked when the route's geometry is
// resolved, not on construction.
package graph
