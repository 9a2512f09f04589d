// Package planar is your in-memory toolkit for building, editing, and
// querying planar subdivisions — doubly-connected edge lists with the
// queries and overlays layered on top.
//
// 🚀 What is planar?
//
//	A library that keeps a full topological map of the plane while you
//	edit it one edge at a time:
//		• Core structure: vertices, half-edges and faces with live invariants
//		• Mutations: AddEdge, RemoveEdge, SplitEdge, MoveVertex, RemoveVertex
//		• Bulk construction: FromLines, FromPolygons, and back via ToPolygons
//		• Queries: point location, nearest edge, face-by-boundary lookup
//		• Overlay: Intersection of two subdivisions with face attribution
//		• Search: trapezoidal map point location in O(log n) expected time
//		• Collaborators: grid and ring bindings, shortest-path routing
//
// ✨ Why choose planar?
//
//   - Keys, not pointers – every cross-reference is an integer into a
//     catalog, so snapshots are plain clones and results survive encoding
//   - Honest failure – speculative edits reject cleanly (ErrEdgeCrossing,
//     ErrFaceMismatch, …) and leave the structure untouched
//   - Deterministic – iteration orders, face numbering and tie-breaks are
//     reproducible run to run
//   - Verifiable – every structure carries a Validate that audits its
//     invariants for tests and debugging
//
// Everything is organized under focused subpackages:
//
//	geom/    — points, lines, polygons, intersection classification
//	subdiv/  — the subdivision itself: topology, mutations, queries, overlay
//	trapmap/ — randomized trapezoidal map for O(log n) point location
//	facemap/ — grid-cell and polygon-ring bindings onto faces
//	route/   — shortest paths along the skeleton via spatial.Graph
//	spatial/ — the capability contract subdivisions offer to traversals
//
// Quick ASCII example:
//
//	    ┌───┬───┐        two squares sharing a wall:
//	    │ 1 │ 2 │        3 faces counting the unbounded one,
//	    └───┴───┘        7 full edges, 6 vertices
//
//	s, _ := subdiv.FromPolygons([]geom.Polygon{left, right}, 1e-9)
//	f := s.FindFace(geom.Pt(0.5, 0.5))   // → 1
//
// See each subpackage's doc.go for contracts, complexity and edge cases.
//
//	go get github.com/katalvlaran/planar
package planar
