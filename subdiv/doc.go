// Package subdiv maintains a planar subdivision: a doubly-connected edge
// list (DCEL) over non-crossing straight segments, keeping vertices, directed
// half-edges and faces consistent through incremental edits.
//
// What:
//
//   - Subdivision: half-edge catalogs with integer keys, a vertex→edge index
//     and per-face boundary registrations (one outer cycle plus inner cycles
//     for holes and walls).
//   - Incremental edits: AddEdge, RemoveEdge, SplitEdge, MoveVertex,
//     RemoveVertex. Each either applies completely or reports a conflict
//     without mutating.
//   - Batch construction: FromLines and FromPolygons recover all faces from
//     an edge soup via cycle discovery and a plane sweep that nests inner
//     cycles into their enclosing faces.
//   - Queries: FindFace, Find (vertex/edge/face classification), nearest
//     edge and polygon-to-face lookup.
//   - Intersection: overlays two subdivisions, splitting edges of both at
//     crossings and mapping every result face back to its containing input
//     faces.
//   - spatial.Graph: vertices double as graph nodes for pathfinding
//     consumers; application polygons can be attached per vertex.
//
// Why:
//
//   - Map regions, territories and zoning where edits must keep a consistent
//     face structure.
//   - Navigation: the vertex graph plugs into A*-style searches; faces
//     answer "which region am I in".
//   - Boolean-style region analysis through the overlay.
//
// Conventions:
//
//   - The y axis points up and faces lie to the LEFT of their half-edges:
//     outer cycles run counterclockwise, hole cycles clockwise.
//   - Vertices order lexicographically by (y, x) ascending.
//   - Coordinates within the subdivision's epsilon snap to one vertex.
//
// Complexity:
//
//   - AddEdge/RemoveEdge/MoveVertex: O(n) conflict scan plus O(cycle)
//     bookkeeping.
//   - FromLines/FromPolygons/Intersection: O(n²) worst case.
//   - FindFace: O(n); the trapmap package answers the same query in
//     O(log n) expected time over a frozen subdivision.
//
// Errors:
//
//   - Structural conflicts (ErrEdgeExists, ErrEdgeCrossing, ErrFaceMismatch,
//     ErrVertexDegree, ...) are sentinels: test with errors.Is; the
//     subdivision is untouched.
//   - Broken internal invariants (dangling keys, impossible cycle shapes)
//     panic; they indicate corruption, not misuse.
package subdiv
