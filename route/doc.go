// Package route computes shortest paths along the skeleton of a spatial
// structure, through the spatial.Graph capability contract.
//
// What:
//
//   - ShortestPath: Dijkstra between two member nodes, weighted by the
//     graph's own metric, with an optional exploration cutoff.
//   - NearestRoute: the same after snapping two world positions to their
//     nearest nodes, for callers that hold coordinates rather than nodes.
//
// The implementation uses a min-heap with lazy decrease-key: improved
// distances push duplicate entries, and stale entries are skipped when
// popped. Exploration stops as soon as the destination is finalized.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors:
//
//   - ErrNilGraph: no graph given.
//   - ErrUnknownNode: an endpoint is not a member of the graph.
//   - ErrNoRoute: the endpoints lie in different connected components, or
//     every route exceeds the configured maximum distance.
//   - ErrMaxDistance: a negative cutoff option.
package route
