package subdiv

import (
	"sort"

	"github.com/katalvlaran/planar/geom"
)

// MoveVertex relocates an existing vertex, re-aiming every incident edge.
// The move is rejected without mutating when the target coincides with a
// different vertex (ErrVertexExists) or when any re-aimed edge would cross
// an edge not incident to the vertex, or overlap a sibling re-aimed edge
// (ErrEdgeCrossing). After the move the rotation at the vertex and at each
// neighbor is refreshed to match the new geometry.
// Complexity: O(deg·n) crossing scan.
func (s *Subdivision) MoveVertex(from, to geom.Point) error {
	v, ok := s.lookupVertex(from)
	if !ok {
		return ErrUnknownVertex
	}
	if to.Eq(v) {
		return nil
	}
	if w, hit := s.lookupVertex(to); hit && !w.Eq(v) {
		return ErrVertexExists
	}

	out := s.outgoing(v)
	incidentToV := func(e *Edge) bool {
		return e.Origin.Eq(v) || s.dest(e).Eq(v)
	}
	aimed := make([]geom.Line, len(out))
	for i, k := range out {
		aimed[i] = geom.Ln(to, s.dest(s.edges[k]))
		if err := s.checkCrossings(aimed[i], incidentToV); err != nil {
			return err
		}
	}
	// Re-aimed edges share the endpoint to; a proper intersection between
	// two of them can only be a collinear overlap, which Crosses detects.
	for i := range aimed {
		for j := i + 1; j < len(aimed); j++ {
			if aimed[i].Crosses(aimed[j], s.epsilon) {
				return ErrEdgeCrossing
			}
		}
	}

	neighbors := make([]geom.Point, 0, len(out))
	for _, k := range out {
		neighbors = append(neighbors, s.dest(s.edges[k]))
		s.edges[k].Origin = to
	}
	s.incident[to] = s.incident[v]
	delete(s.incident, v)
	if r, hasRegion := s.regions[v]; hasRegion {
		s.regions[to] = r
		delete(s.regions, v)
	}

	s.resortRotation(to)
	for _, d := range neighbors {
		s.resortRotation(d)
	}
	s.markDirty()
	return nil
}

// resortRotation rebuilds the Next/Prev links around v so that each incoming
// half-edge continues to the outgoing half-edge first clockwise of its
// reversed direction. A no-op when the angular order did not change.
func (s *Subdivision) resortRotation(v geom.Point) {
	keys := s.outgoing(v)
	if len(keys) < 2 {
		return
	}
	ref := geom.Pt(1, 0)
	ordered := make([]int, len(keys))
	copy(ordered, keys)
	sort.Slice(ordered, func(i, j int) bool {
		di := s.dest(s.edges[ordered[i]]).Sub(v)
		dj := s.dest(s.edges[ordered[j]]).Sub(v)
		ai, aj := ref.ClockwiseAngle(di), ref.ClockwiseAngle(dj)
		if ai != aj {
			return ai < aj
		}
		return ordered[i] < ordered[j]
	})
	for i, k := range ordered {
		next := s.edges[ordered[(i+1)%len(ordered)]]
		in := s.edge(s.edges[k].Twin)
		in.Next = next.Key
		next.Prev = in.Key
	}
}

// RemoveVertex deletes a degree-2 vertex and fuses its two incident edges
// into a single edge between the neighbors. Rejected without mutating when
// the vertex has any other degree (ErrVertexDegree), the neighbors coincide
// (ErrDegenerateEdge) or are already connected (ErrEdgeExists), the fused
// edge would leave the angular wedge the old edge occupied at either
// neighbor (ErrVertexChain), or it would cross an unrelated edge
// (ErrEdgeCrossing).
func (s *Subdivision) RemoveVertex(at geom.Point) error {
	v, ok := s.lookupVertex(at)
	if !ok {
		return ErrUnknownVertex
	}
	out := s.outgoing(v)
	if len(out) != 2 {
		return ErrVertexDegree
	}
	e1, e2 := s.edges[out[0]], s.edges[out[1]]
	t1, t2 := s.edge(e1.Twin), s.edge(e2.Twin)
	a, b := t1.Origin, t2.Origin
	if a.Eq(b) {
		return ErrDegenerateEdge
	}
	if _, dup := s.connectedEdge(a, b); dup {
		return ErrEdgeExists
	}
	if !s.sameWedge(a, t1.Key, v, b) || !s.sameWedge(b, t2.Key, v, a) {
		return ErrVertexChain
	}
	removed := map[int]bool{e1.Key: true, t1.Key: true, e2.Key: true, t2.Key: true}
	err := s.checkCrossings(geom.Ln(a, b), func(e *Edge) bool { return removed[e.Key] })
	if err != nil {
		return err
	}

	// Fuse: the halves into v survive as the new pair a→b / b→a.
	n1, n2 := e2.Next, e1.Next
	t1.Twin, t2.Twin = t2.Key, t1.Key
	t1.Next = n1
	s.edge(n1).Prev = t1.Key
	t2.Next = n2
	s.edge(n2).Prev = t2.Key

	replaceRef(s.faces[t2.Face], e1.Key, t2.Key)
	replaceRef(s.faces[t1.Face], e2.Key, t1.Key)

	s.removeIncident(v, e1.Key)
	s.removeIncident(v, e2.Key)
	delete(s.edges, e1.Key)
	delete(s.edges, e2.Key)
	delete(s.regions, v)
	s.markDirty()
	return nil
}

// sameWedge reports whether re-aiming the outgoing half-edge exclKey at p
// from oldDest toward newDest keeps it inside the same angular wedge, i.e.
// whether its clockwise successor among the other edges at p is unchanged.
func (s *Subdivision) sameWedge(p geom.Point, exclKey int, oldDest, newDest geom.Point) bool {
	excl := func(k int) bool { return k == exclKey }
	oldNext, okOld := s.firstClockwise(p, oldDest.Sub(p), excl)
	newNext, okNew := s.firstClockwise(p, newDest.Sub(p), excl)
	if okOld != okNew {
		return false
	}
	return !okOld || oldNext.Key == newNext.Key
}

// replaceRef substitutes a face boundary representative in place.
func replaceRef(f *Face, old, rep int) {
	if f == nil {
		return
	}
	if f.Outer == old {
		f.Outer = rep
	}
	for i, r := range f.Inner {
		if r == old {
			f.Inner[i] = rep
		}
	}
}
