// Package trapmap answers point-location queries against a frozen planar
// subdivision in O(log n) expected time, via a randomized trapezoidal
// decomposition.
//
// What:
//
//   - Map: a search DAG of point nodes (split by lexicographic position),
//     segment nodes (split by side) and trapezoid leaves, built by inserting
//     the subdivision's edges in random order into a bounding box.
//   - Find: classifies a query point exactly like Subdivision.Find does:
//     the vertex it coincides with, the edge it lies on, or the containing
//     face.
//   - Validate: audits the DAG after construction.
//
// Why:
//
//   - Subdivision.FindFace scans all edges; a Map answers the same question
//     in O(log n) expected per query, which pays off once a subdivision is
//     queried more often than it changes.
//
// The Map is a snapshot: it does not observe later edits to the source
// subdivision. Rebuild one after a batch of edits.
//
// Complexity:
//
//   - Build: O(n log n) expected, O(n) expected space.
//   - Find: O(log n) expected.
//
// Errors:
//
//   - ErrNilSubdivision: no source subdivision given.
//   - ErrNegativeEpsilon: a negative tolerance option.
package trapmap
