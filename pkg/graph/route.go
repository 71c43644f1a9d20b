package graph

import "github.com/matzehuels/streetplot/pkg/errors"

// Route is an ordered sequence of node IDs describing a path through the
// graph. It names node pairs, not specific parallel-edge instances; edge
// selection happens when the route's geometry is resolved.
type Route []string

// Validate checks that the route has at least two nodes and that every node
// exists in the graph. Edge existence between consecutive pairs is checked
// during geometry resolution, where a missing edge is a fatal lookup error.
func (r Route) Validate(g *Graph) error {
	if len(r) < 2 {
		return errors.New(errors.ErrCodeInvalidRoute, "route needs at least 2 nodes, got %d", len(r))
	}
	for _, id := range r {
		if _, ok := g.Node(id); !ok {
			return errors.New(errors.ErrCodeInvalidRoute, "route references unknown node %s", id)
		}
	}
	return nil
}

// Steps returns the consecutive (from, to) node pairs of the route.
func (r Route) Steps() [][2]string {
	if len(r) < 2 {
		return nil
	}
	steps := make([][2]string, len(r)-1)
	for i := 0; i < len(r)-1; i++ {
		steps[i] = [2]string{r[i], r[i+1]}
	}
	return steps
}

// Origin returns the first node ID of the route.
func (r Route) Origin() string { return r[0] }

// Destination returns the last node ID of the route.
func (r Route) Destination() string { return r[len(r)-1] }
