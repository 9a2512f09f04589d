// Package facemap binds external spatial indexes to subdivision faces.
//
// Two collaborators are provided:
//
//   - Grid: a uniform grid whose cells resolve to the face containing the
//     cell center. Useful when a fixed raster (tiles, chunks, heatmap bins)
//     needs a face lookup without running point location per query.
//   - RingMap: a registry of externally produced polygon rings, supplied as
//     github.com/paulmach/orb geometry, each resolved to the face whose
//     boundary it traces. Useful when regions computed elsewhere (a Voronoi
//     diagram, an imported dataset) must be tied to faces by identity
//     rather than by sampling.
//
// Both collaborators hold plain face keys, not pointers, and neither
// observes subdivision edits: after a batch of AddEdge/RemoveEdge calls the
// stored keys may be stale, and Rebuild must be called to re-resolve them.
//
// Errors:
//
//   - ErrNilSubdivision: no source subdivision given.
//   - ErrCellSize: a non-positive grid cell size.
//   - ErrUnknownID: a ring id that was never bound.
package facemap
