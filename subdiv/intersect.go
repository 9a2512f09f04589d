package subdiv

import (
	"github.com/katalvlaran/planar/geom"
)

// Intersection overlays two subdivisions: the result carries every edge of
// both inputs, mutually split at crossings and merged along shared stretches,
// with faces rebuilt from the combined edge set. The two returned slices map
// each result face key to the key of the input face containing it, for a and
// b respectively (the unbounded face maps to the unbounded face).
//
// The result uses the smaller of the two tolerances.
// Complexity: O((n+m+x)²) in the worst case, where x counts crossings.
func Intersection(a, b *Subdivision) (*Subdivision, []int, []int, error) {
	if a == nil || b == nil {
		return nil, nil, nil, ErrNilSubdivision
	}
	swapped := false
	if b.epsilon < a.epsilon {
		a, b = b, a
		swapped = true
	}
	r, err := New(a.epsilon)
	if err != nil {
		return nil, nil, nil, err
	}
	ov := &overlay{
		r:     r,
		faceA: make(map[int]int, a.EdgeCount()),
		faceB: make(map[int]int, b.EdgeCount()),
	}

	// Seed with a's edges verbatim; a's edges cannot conflict among
	// themselves.
	for _, k := range a.sortedEdgeKeys() {
		e := a.edges[k]
		if e.Key > e.Twin {
			continue
		}
		ne, created, err := r.createTwinEdges(e.Origin, a.dest(e))
		if err != nil {
			return nil, nil, nil, err
		}
		if !created {
			panic("subdiv: duplicate edge while copying a valid subdivision")
		}
		ov.faceA[ne.Key] = e.Face
		ov.faceA[ne.Twin] = a.edge(e.Twin).Face
	}

	// Work b's edges in as pending segments, splitting both sides until no
	// conflicts remain.
	queue := make([]pendSeg, 0, b.EdgeCount()/2)
	for _, k := range b.sortedEdgeKeys() {
		e := b.edges[k]
		if e.Key > e.Twin {
			continue
		}
		queue = append(queue, pendSeg{
			ln:    b.line(e),
			left:  e.Face,
			right: b.edge(e.Twin).Face,
		})
	}
	for len(queue) > 0 {
		seg := queue[0]
		queue = queue[1:]
		more, err := ov.insertSegment(seg)
		if err != nil {
			return nil, nil, nil, err
		}
		queue = append(queue, more...)
	}

	r.rebuildFaces()
	keysA := ov.resolveFaceKeys(a, ov.faceA)
	keysB := ov.resolveFaceKeys(b, ov.faceB)
	if swapped {
		keysA, keysB = keysB, keysA
	}
	return r, keysA, keysB, nil
}

// overlay is the working state of one Intersection call. faceA and faceB
// label result half-edges with the input face lying on their left, for each
// input respectively; halves shared by both inputs carry both labels.
type overlay struct {
	r     *Subdivision
	faceA map[int]int
	faceB map[int]int
}

// pendSeg is one not-yet-inserted piece of a b edge with its left/right
// input-face labels.
type pendSeg struct {
	ln          geom.Line
	left, right int
}

// insertSegment resolves every conflict between the pending segment and the
// edges already in the result, then inserts it. Conflicts that shorten the
// segment return its pieces for requeueing; conflicts that only split a
// resident edge restart the scan in place.
func (ov *overlay) insertSegment(seg pendSeg) ([]pendSeg, error) {
	r := ov.r
	eps := r.epsilon

scan:
	for {
		for _, k := range r.sortedEdgeKeys() {
			e := r.edges[k]
			if e.Key > e.Twin {
				continue
			}
			el := r.line(e)
			x := seg.ln.Intersect(el, eps)
			switch x.Kind {
			case geom.Parallel:
				continue

			case geom.Divergent:
				p := x.Point
				if !seg.ln.Contains(p, eps) || !el.Contains(p, eps) {
					continue // carrier lines cross off-segment
				}
				segEnd := p.EqEps(seg.ln.Start, eps) || p.EqEps(seg.ln.End, eps)
				resEnd := p.EqEps(el.Start, eps) || p.EqEps(el.End, eps)
				switch {
				case segEnd && resEnd:
					continue // legal vertex-to-vertex touch
				case segEnd:
					// The segment ends inside a resident edge: split it and
					// keep scanning with the segment intact.
					ov.splitResultEdge(e, p)
					continue scan
				case resEnd:
					// A resident vertex splits the segment.
					return splitPending(seg, p), nil
				default:
					// Proper crossing: split both.
					ov.splitResultEdge(e, p)
					return splitPending(seg, p), nil
				}

			case geom.Collinear:
				pS := seg.ln.Locate(el.Start, eps)
				pE := seg.ln.Locate(el.End, eps)
				switch {
				case pS == geom.Between:
					return splitPending(seg, el.Start), nil
				case pE == geom.Between:
					return splitPending(seg, el.End), nil
				case el.Locate(seg.ln.Start, eps) == geom.Between:
					ov.splitResultEdge(e, seg.ln.Start)
					continue scan
				case el.Locate(seg.ln.End, eps) == geom.Between:
					ov.splitResultEdge(e, seg.ln.End)
					continue scan
				case (pS == geom.AtStart && pE == geom.AtEnd) ||
					(pS == geom.AtEnd && pE == geom.AtStart):
					// The segment coincides with a resident edge.
					ov.mergeDuplicate(e, seg)
					return nil, nil
				default:
					continue // collinear but disjoint
				}
			}
		}
		break
	}

	ne, created, err := r.createTwinEdges(seg.ln.Start, seg.ln.End)
	if err != nil {
		return nil, err
	}
	if !created {
		// Endpoint snapping collapsed the segment onto an existing edge.
		ov.mergeDuplicate(ne, seg)
		return nil, nil
	}
	ov.faceB[ne.Key] = seg.left
	ov.faceB[ne.Twin] = seg.right
	return nil, nil
}

// splitResultEdge splits a resident full edge at p, snapping p to an
// existing vertex first, and carries both label maps onto the new halves.
// Splitting at a pre-existing vertex refreshes that vertex's rotation so the
// through-edges take their angular slots.
func (ov *overlay) splitResultEdge(e *Edge, p geom.Point) {
	r := ov.r
	v, hit := r.lookupVertex(p)
	if !hit {
		v = p
	}
	oldTwin := e.Twin
	n2 := r.splitEdgeAt(e, v) // continues e's direction
	n1 := e.Twin              // continues the old twin's direction
	copyLabel(ov.faceA, e.Key, n2.Key)
	copyLabel(ov.faceA, oldTwin, n1)
	copyLabel(ov.faceB, e.Key, n2.Key)
	copyLabel(ov.faceB, oldTwin, n1)
	if hit {
		r.resortRotation(v)
	}
}

// mergeDuplicate records the segment's labels on an already-present edge,
// matching orientation by the segment's start point.
func (ov *overlay) mergeDuplicate(e *Edge, seg pendSeg) {
	left, right := seg.left, seg.right
	if !e.Origin.EqEps(seg.ln.Start, ov.r.epsilon) {
		left, right = right, left
	}
	ov.faceB[e.Key] = left
	ov.faceB[e.Twin] = right
}

// splitPending cuts a pending segment in two at p.
func splitPending(seg pendSeg, p geom.Point) []pendSeg {
	return []pendSeg{
		{ln: geom.Ln(seg.ln.Start, p), left: seg.left, right: seg.right},
		{ln: geom.Ln(p, seg.ln.End), left: seg.left, right: seg.right},
	}
}

func copyLabel(labels map[int]int, from, to int) {
	if f, ok := labels[from]; ok {
		labels[to] = f
	}
}

// resolveFaceKeys maps every result face to the input face containing it:
// directly through a labeled boundary half-edge when the face inherits part
// of the input's boundary, otherwise by locating an interior sample point in
// the input subdivision.
func (ov *overlay) resolveFaceKeys(src *Subdivision, labels map[int]int) []int {
	r := ov.r
	keys := make([]int, r.nextFace)
	for _, f := range r.Faces() {
		if f.Key == UnboundedFace {
			keys[f.Key] = UnboundedFace
			continue
		}
		if k, ok := boundaryLabel(r, f, labels); ok {
			keys[f.Key] = k
			continue
		}
		keys[f.Key] = src.FindFace(r.sampleInside(f))
	}
	return keys
}

// boundaryLabel returns the label of any half-edge on the face's boundary;
// every such half has the face's interior on its left, so its label is the
// input face containing that interior.
func boundaryLabel(r *Subdivision, f *Face, labels map[int]int) (int, bool) {
	try := func(start int) (int, bool) {
		for _, k := range r.cycleKeys(start) {
			if l, ok := labels[k]; ok {
				return l, true
			}
		}
		return NoFace, false
	}
	if f.Outer != NoEdge {
		if l, ok := try(f.Outer); ok {
			return l, true
		}
	}
	for _, rep := range f.Inner {
		if l, ok := try(rep); ok {
			return l, true
		}
	}
	return NoFace, false
}

// sampleInside returns a point strictly inside the bounded face, nudged off
// the midpoint of an outer-boundary edge toward the interior. Progressively
// smaller nudges guard against thin faces.
func (s *Subdivision) sampleInside(f *Face) geom.Point {
	e := s.edge(f.Outer)
	a, b := e.Origin, s.dest(e)
	mid := a.Midpoint(b)
	d := b.Sub(a)
	normal := geom.Pt(-d.Y, d.X) // interior side of a counterclockwise cycle
	for _, scale := range []float64{1e-3, 1e-6, 1e-9} {
		p := mid.Add(normal.Scale(scale))
		if s.findFaceKey(p) == f.Key {
			return p
		}
	}
	return mid
}
