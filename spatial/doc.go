// Package spatial declares the graph capability contract that geometric
// structures in this module expose to pathfinding and traversal consumers.
//
// A spatial.Graph is a read-only view: node enumeration, adjacency, metric
// distance and an anchoring of every node into world coordinates (plus an
// optional world region per node). Implementations decide what a node is —
// the subdiv package uses vertex coordinates directly — and consumers such as
// A*, flood fill or coverage planners stay independent of the structure
// backing the graph.
//
// Implementations are not required to be safe for concurrent mutation; see
// each implementation's own documentation for its rebuild/invalidations
// contract.
package spatial
