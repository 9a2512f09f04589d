package subdiv

import (
	"github.com/katalvlaran/planar/geom"
)

// AddEdge inserts the segment start→end into the subdivision. Endpoints snap
// to existing vertices within epsilon; endpoints that snap to nothing become
// new vertices and must lie strictly inside a face. The open segment must not
// touch any existing edge or vertex.
//
// Four structural cases are handled:
//   - both endpoints new: the edge becomes a floating wall, a fresh inner
//     cycle of its containing face;
//   - one endpoint existing: the edge extends that vertex's boundary cycle
//     in place;
//   - both existing, previously on distinct cycles: the cycles merge and no
//     face is created;
//   - both existing, on the same cycle: the cycle splits and the loop closed
//     by the new edge becomes a new face, inheriting the inner cycles that
//     fall inside it.
//
// Conflicts are reported without mutating: ErrDegenerateEdge, ErrEdgeExists,
// ErrEdgeCrossing, ErrFaceMismatch.
// Complexity: O(n) for the crossing scan plus O(cycle) bookkeeping.
func (s *Subdivision) AddEdge(start, end geom.Point) (AddEdgeResult, error) {
	none := AddEdgeResult{Edge: NoEdge, Face: NoFace, NewFace: NoFace}
	va, okA := s.lookupVertex(start)
	vb, okB := s.lookupVertex(end)
	if va.Eq(vb) || (!okA && !okB && va.EqEps(vb, s.epsilon)) {
		return none, ErrDegenerateEdge
	}
	if okA && okB {
		if _, dup := s.connectedEdge(va, vb); dup {
			return none, ErrEdgeExists
		}
	}

	// Resolve the containing face at each endpoint before touching anything.
	var fa, fb int
	var oA, oB *Edge
	if okA {
		oA, _ = s.firstClockwise(va, vb.Sub(va), nil)
		fa = oA.Face
	} else {
		fa = s.findFaceKey(va)
	}
	if okB {
		oB, _ = s.firstClockwise(vb, va.Sub(vb), nil)
		fb = oB.Face
	} else {
		fb = s.findFaceKey(vb)
	}
	if fa != fb {
		return none, ErrFaceMismatch
	}
	face := fa

	if err := s.checkCrossings(geom.Ln(va, vb), nil); err != nil {
		return none, err
	}

	// For the both-existing case, record whether the wedge cycles coincide
	// and how the face registers them, while the cycles are still intact.
	sameCycle := false
	outerA, innerA := false, -1
	outerB, innerB := false, -1
	f := s.faces[face]
	if okA && okB {
		sameCycle = s.cycleContains(oA.Key, oB.Key)
		outerA, innerA = s.cycleRole(f, oA.Key)
		if !sameCycle {
			outerB, innerB = s.cycleRole(f, oB.Key)
		}
	}

	e, t := s.allocEdgePair(va, vb)
	e.Face, t.Face = face, face
	if okA {
		s.spliceAt(va, e, t)
	}
	if okB {
		s.spliceAt(vb, t, e)
	}
	s.markDirty()
	res := AddEdgeResult{Edge: e.Key, Face: face, NewFace: NoFace}

	switch {
	case !okA && !okB:
		// Floating wall: a brand-new inner cycle of the containing face.
		f.Inner = append(f.Inner, e.Key)

	case okA != okB:
		// Protrusion: the cycle it spliced into simply got longer; the
		// face's registrations are untouched.

	case !sameCycle:
		// Two previously distinct cycles merged into one. Registrations of
		// the old cycles collapse to a single one for the merged cycle.
		if innerA >= 0 {
			f.Inner = removeAt(f.Inner, innerA)
			if innerB > innerA {
				innerB--
			}
		}
		if innerB >= 0 {
			f.Inner = removeAt(f.Inner, innerB)
		}
		if !outerA && !outerB {
			f.Inner = append(f.Inner, e.Key)
		}

	default:
		// Same cycle: the insert split it in two, and the loop the new edge
		// closed becomes a new face.
		res.NewFace = s.splitFace(f, e, t, outerA, innerA)
	}
	return res, nil
}

// splitFace finishes the same-cycle AddEdge case. The half-edges e and t now
// sit on distinct cycles; the one bounding the closed loop becomes the outer
// cycle of a new face, the other keeps bounding f. Inner cycles of f whose
// pivot falls inside the new loop migrate to the new face.
func (s *Subdivision) splitFace(f *Face, e, t *Edge, wasOuter bool, innerIdx int) int {
	areaE := s.cycleSignedArea(s.cycleKeys(e.Key))
	areaT := s.cycleSignedArea(s.cycleKeys(t.Key))

	var winner, loser *Edge
	switch {
	case areaE > 0 && areaT <= 0:
		winner, loser = e, t
	case areaT > 0 && areaE <= 0:
		winner, loser = t, e
	case areaE > 0 && areaT > 0:
		// Both counterclockwise: the smaller loop is the one the new edge
		// closed off. Equal areas fall back to the lexicographic pivot.
		switch {
		case areaE < areaT:
			winner, loser = e, t
		case areaT < areaE:
			winner, loser = t, e
		case s.cyclePivot(e.Key).Less(s.cyclePivot(t.Key)):
			winner, loser = e, t
		default:
			winner, loser = t, e
		}
	default:
		panic("subdiv: cycle split produced no counterclockwise cycle")
	}

	g := &Face{Key: s.nextFace, Outer: winner.Key}
	s.nextFace++
	s.faces[g.Key] = g
	s.relabelCycle(winner.Key, g.Key)

	if wasOuter {
		f.Outer = loser.Key
	} else if innerIdx >= 0 {
		f.Inner[innerIdx] = loser.Key
	}

	// Migrate the inner cycles now enclosed by the new face.
	loop := s.cyclePolygon(winner.Key)
	kept := f.Inner[:0]
	for _, r := range f.Inner {
		if r != loser.Key && loop.Contains(s.cyclePivot(r)) {
			g.Inner = append(g.Inner, r)
			s.relabelCycle(r, g.Key)
			continue
		}
		kept = append(kept, r)
	}
	f.Inner = kept
	return g.Key
}

// cycleRole reports how face f registers the cycle through the half-edge k:
// as its outer boundary, or as the inner entry at the returned index.
func (s *Subdivision) cycleRole(f *Face, k int) (outer bool, innerIdx int) {
	if f.Outer != NoEdge && s.cycleContains(k, f.Outer) {
		return true, -1
	}
	for i, r := range f.Inner {
		if s.cycleContains(k, r) {
			return false, i
		}
	}
	return false, -1
}

// checkCrossings rejects ln if it properly intersects any existing edge,
// skipping full edges for which skip returns true. Shared endpoints do not
// count as crossings; an endpoint of ln in the interior of an existing edge
// (or the reverse) does.
func (s *Subdivision) checkCrossings(ln geom.Line, skip func(*Edge) bool) error {
	for _, k := range s.sortedEdgeKeys() {
		e := s.edges[k]
		if e.Key > e.Twin {
			continue
		}
		if skip != nil && skip(e) {
			continue
		}
		if ln.Crosses(s.line(e), s.epsilon) {
			return ErrEdgeCrossing
		}
	}
	return nil
}

// RemoveEdge deletes the full edge owning the given half-edge. When both
// sides of the edge border the same face the removal reshapes that face's
// boundary cycles; when they border different faces the two faces merge and
// the absorbed face's key is reported in RemovedFace.
// Complexity: O(cycle) plus O(faces) registration fixes.
func (s *Subdivision) RemoveEdge(key int) (RemoveEdgeResult, error) {
	none := RemoveEdgeResult{Face: NoFace, RemovedFace: NoFace}
	e, ok := s.edges[key]
	if !ok {
		return none, ErrUnknownEdge
	}
	t := s.edge(e.Twin)
	if e.Face == t.Face {
		return s.removeWallEdge(e, t)
	}
	return s.mergeFaces(e, t)
}

// removeWallEdge handles removal when both halves border the same face:
// pruning a leaf, deleting an isolated pair, or splitting one boundary cycle
// into two.
func (s *Subdivision) removeWallEdge(e, t *Edge) (RemoveEdgeResult, error) {
	f := s.faces[e.Face]
	wasOuter, innerIdx := s.cycleRole(f, e.Key)

	originLeaf := e.Prev == t.Key
	destLeaf := e.Next == t.Key
	n1, n2 := t.Next, e.Next // cycle re-entry points at origin and dest

	s.unsplice(e, t)
	s.deletePair(e, t)

	switch {
	case originLeaf && destLeaf:
		// Isolated pair: its inner registration disappears with it.
		if wasOuter {
			panic("subdiv: bounded face with an isolated-pair outer cycle")
		}
		if innerIdx >= 0 {
			f.Inner = removeAt(f.Inner, innerIdx)
		}

	case originLeaf || destLeaf:
		// Leaf pruning: the cycle survives, shorter. Re-point stale reps.
		r := n1
		if originLeaf {
			r = n2
		}
		s.repointRole(f, wasOuter, innerIdx, e.Key, t.Key, r)

	default:
		// The cycle split in two. The counterclockwise survivor keeps the
		// outer role; everything else registers as inner.
		a1 := s.cycleSignedArea(s.cycleKeys(n1))
		a2 := s.cycleSignedArea(s.cycleKeys(n2))
		if wasOuter {
			outerRep, innerRep := n1, n2
			if a2 > a1 {
				outerRep, innerRep = n2, n1
			}
			f.Outer = outerRep
			f.Inner = append(f.Inner, innerRep)
		} else {
			if a1 > 0 || a2 > 0 {
				panic("subdiv: inner cycle split produced a counterclockwise cycle")
			}
			if innerIdx >= 0 {
				f.Inner[innerIdx] = n1
			} else {
				f.Inner = append(f.Inner, n1)
			}
			f.Inner = append(f.Inner, n2)
		}
	}
	return RemoveEdgeResult{Face: f.Key, RemovedFace: NoFace}, nil
}

// mergeFaces handles removal when the halves border different faces. The
// enclosing face survives when one encloses the other, otherwise the face
// with the smaller key does; the absorbed face's inner cycles transfer to
// the survivor.
func (s *Subdivision) mergeFaces(e, t *Edge) (RemoveEdgeResult, error) {
	small, large := e, t
	if t.Face < e.Face {
		small, large = t, e
	}
	fs, fl := s.faces[small.Face], s.faces[large.Face]

	// The large-keyed face encloses the small-keyed one exactly when the
	// shared edge sits on the large face's inner boundary and the small
	// face's outer boundary.
	largeOuter, _ := s.cycleRole(fl, large.Key)
	smallOuter, _ := s.cycleRole(fs, small.Key)
	surv, gone := fs, fl
	if !largeOuter && smallOuter {
		surv, gone = fl, fs
	}
	sv := small
	if surv == fl {
		sv = large
	}

	wasOuter, innerIdx := s.cycleRole(surv, sv.Key)
	n1 := t.Next
	s.unsplice(e, t)
	s.deletePair(e, t)

	// The merged boundary cycle takes over the survivor-side registration.
	s.repointRole(surv, wasOuter, innerIdx, e.Key, t.Key, n1)
	s.relabelCycle(n1, surv.Key)

	// Absorb the rest of the vanished face's boundary.
	for _, r := range gone.Inner {
		surv.Inner = append(surv.Inner, r)
		s.relabelCycle(r, surv.Key)
	}
	delete(s.faces, gone.Key)
	return RemoveEdgeResult{Face: surv.Key, RemovedFace: gone.Key}, nil
}

// unsplice detaches the pair (e, t) from the boundary cycles around both
// endpoints, leaving the rest of the links consistent. Leaf sides need no
// relinking.
func (s *Subdivision) unsplice(e, t *Edge) {
	if e.Prev != t.Key {
		s.edge(e.Prev).Next = t.Next
		s.edge(t.Next).Prev = e.Prev
	}
	if e.Next != t.Key {
		s.edge(t.Prev).Next = e.Next
		s.edge(e.Next).Prev = t.Prev
	}
}

// deletePair removes both halves from the catalogs and the vertex index.
func (s *Subdivision) deletePair(e, t *Edge) {
	s.removeIncident(e.Origin, e.Key)
	s.removeIncident(t.Origin, t.Key)
	delete(s.edges, e.Key)
	delete(s.edges, t.Key)
	s.markDirty()
}

// repointRole replaces a face registration that named one of two removed
// half-edges with a surviving representative on the same cycle.
func (s *Subdivision) repointRole(f *Face, wasOuter bool, innerIdx, old1, old2, rep int) {
	if wasOuter {
		if f.Outer == old1 || f.Outer == old2 {
			f.Outer = rep
		}
		return
	}
	if innerIdx >= 0 {
		if r := f.Inner[innerIdx]; r == old1 || r == old2 {
			f.Inner[innerIdx] = rep
		}
	}
}

// SplitEdge inserts a vertex at a point in the open interior of the edge
// owning the given half-edge and returns the new half-edge continuing from
// the inserted vertex in the half-edge's direction. The point must not
// coincide with an existing vertex (ErrVertexExists) and must lie on the
// edge within epsilon (ErrPointOffEdge). Faces are unaffected.
func (s *Subdivision) SplitEdge(key int, at geom.Point) (*Edge, error) {
	e, ok := s.edges[key]
	if !ok {
		return nil, ErrUnknownEdge
	}
	if _, hit := s.lookupVertex(at); hit {
		return nil, ErrVertexExists
	}
	if !s.line(e).Contains(at, s.epsilon) {
		return nil, ErrPointOffEdge
	}
	return s.splitEdgeAt(e, at), nil
}

// SplitEdgeMid splits the edge at the midpoint of its segment. Shorthand
// for SplitEdge with the midpoint computed from EdgeLine; same errors.
func (s *Subdivision) SplitEdgeMid(key int) (*Edge, error) {
	ln, err := s.EdgeLine(key)
	if err != nil {
		return nil, err
	}
	return s.SplitEdge(key, ln.Midpoint())
}

// splitEdgeAt splits the full edge (e, twin) at the new vertex v. e keeps its
// origin and is truncated to v; two fresh halves out of v complete the two
// full edges. Cycle membership and face registrations survive because both
// original halves stay in place.
func (s *Subdivision) splitEdgeAt(e *Edge, v geom.Point) *Edge {
	t := s.edge(e.Twin)

	n1 := &Edge{Key: s.nextEdge, Origin: v, Face: t.Face}     // v → e.Origin
	n2 := &Edge{Key: s.nextEdge + 1, Origin: v, Face: e.Face} // v → t.Origin
	s.nextEdge += 2
	s.edges[n1.Key] = n1
	s.edges[n2.Key] = n2

	e.Twin, n1.Twin = n1.Key, e.Key
	t.Twin, n2.Twin = n2.Key, t.Key

	n2.Next, n2.Prev = e.Next, e.Key
	s.edge(e.Next).Prev = n2.Key
	e.Next = n2.Key

	n1.Next, n1.Prev = t.Next, t.Key
	s.edge(t.Next).Prev = n1.Key
	t.Next = n1.Key

	s.addIncident(v, n1.Key)
	s.addIncident(v, n2.Key)
	s.markDirty()
	return n2
}

// removeAt deletes the element at index i preserving order.
func removeAt(list []int, i int) []int {
	return append(list[:i], list[i+1:]...)
}
