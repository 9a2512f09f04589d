package spatial

import "github.com/katalvlaran/planar/geom"

// Graph is the capability contract a spatial structure offers to traversal
// algorithms. N identifies a node; implementations choose a comparable
// representation (the subdiv package uses geom.Point vertices).
type Graph[N comparable] interface {
	// Connectivity returns the maximum number of half-edges incident on any
	// single node. Implementations may cache the value between structural
	// changes.
	Connectivity() int

	// NodeCount returns the number of nodes.
	NodeCount() int

	// Nodes enumerates all nodes in a deterministic order.
	Nodes() []N

	// Contains reports node membership.
	Contains(node N) bool

	// FindNearestNode returns the node closest to the given world location.
	// ok is false when the graph is empty.
	FindNearestNode(at geom.Point) (node N, ok bool)

	// Distance returns the metric distance between two member nodes.
	// It is zero if and only if the nodes are equal.
	Distance(a, b N) float64

	// Neighbors returns the nodes directly reachable from the given node,
	// in a deterministic order.
	Neighbors(node N) []N

	// WorldLocation maps a node to its position in world coordinates.
	WorldLocation(node N) geom.Point

	// WorldRegion returns the polygon associated with the node, if any.
	// Regions are application data: the structure stores them but never
	// derives them itself.
	WorldRegion(node N) (geom.Polygon, bool)
}
