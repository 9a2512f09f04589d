package subdiv

import (
	"math"
	"sort"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/spatial"
)

// Subdivision satisfies spatial.Graph over its vertices: nodes are vertex
// coordinates, adjacency follows the edges.
var _ spatial.Graph[geom.Point] = (*Subdivision)(nil)

// Connectivity returns the maximum number of half-edges leaving any single
// vertex. The value is cached and recomputed after structural changes.
func (s *Subdivision) Connectivity() int {
	if s.connectivity < 0 {
		s.connectivity = 0
		for _, keys := range s.incident {
			if len(keys) > s.connectivity {
				s.connectivity = len(keys)
			}
		}
	}
	return s.connectivity
}

// NodeCount returns the number of vertices.
func (s *Subdivision) NodeCount() int { return len(s.incident) }

// Nodes returns all vertices in lexicographic order.
func (s *Subdivision) Nodes() []geom.Point { return s.Vertices() }

// Contains reports whether the point is a vertex.
func (s *Subdivision) Contains(node geom.Point) bool {
	_, ok := s.incident[node]
	return ok
}

// FindNearestNode returns the vertex closest to the given location, breaking
// distance ties lexicographically. ok is false for an empty subdivision.
func (s *Subdivision) FindNearestNode(at geom.Point) (geom.Point, bool) {
	var best geom.Point
	bestD := math.Inf(1)
	for v := range s.incident {
		d := v.DistanceSquared(at)
		if d < bestD || (d == bestD && v.Less(best)) {
			best, bestD = v, d
		}
	}
	return best, !math.IsInf(bestD, 1)
}

// Distance returns the Euclidean distance between two vertices.
func (s *Subdivision) Distance(a, b geom.Point) float64 { return a.Distance(b) }

// Neighbors returns the vertices sharing an edge with the given vertex, in
// lexicographic order.
func (s *Subdivision) Neighbors(node geom.Point) []geom.Point {
	keys := s.incident[node]
	out := make([]geom.Point, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.dest(s.edges[k]))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// WorldLocation returns the vertex itself; nodes are world coordinates.
func (s *Subdivision) WorldLocation(node geom.Point) geom.Point { return node }

// WorldRegion returns the polygon attached to the vertex, if any.
func (s *Subdivision) WorldRegion(node geom.Point) (geom.Polygon, bool) {
	pg, ok := s.regions[node]
	return pg, ok
}

// SetWorldRegion attaches an application polygon to an existing vertex. The
// subdivision stores regions verbatim; MoveVertex carries them along and
// RemoveVertex drops them.
func (s *Subdivision) SetWorldRegion(node geom.Point, pg geom.Polygon) error {
	v, ok := s.lookupVertex(node)
	if !ok {
		return ErrUnknownVertex
	}
	s.regions[v] = pg
	return nil
}
