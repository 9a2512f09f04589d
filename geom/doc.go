// Package geom provides the small set of 2-D value types and predicates the
// planar packages are built on: Point (with the lexicographic ordering used
// throughout the module), Line segments (side tests, distance, intersection
// classification) and Polygon rings (signed area, containment).
//
// Conventions
//
//   - Axes are y-up; angles and cross products follow the mathematical
//     convention (counterclockwise positive).
//   - The lexicographic order on points is ascending y, then ascending x.
//     Sweep lines, cycle pivots and deterministic tie-breaks all use it.
//   - Tolerances are explicit: predicates that need one take an epsilon
//     argument instead of consulting package state.
//
// All types are plain values; none of them retain references to caller data.
package geom
