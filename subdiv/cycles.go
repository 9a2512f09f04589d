package subdiv

import (
	"sort"

	"github.com/katalvlaran/planar/geom"
)

// edgeCycle is the ephemeral record for one maximal Next-cycle discovered
// during batch construction or overlay intersection. Inner cycles are
// chained to the cycle that immediately encloses them; a nil enclosing link
// means the cycle hangs directly off the unbounded face.
type edgeCycle struct {
	rep   int   // first-discovered half-edge, the cycle's representative
	keys  []int // all half-edge keys in traversal order
	outer bool
	pivot geom.Point // lexicographically smallest origin

	enclosing *edgeCycle // immediately containing cycle (inner cycles only)
	next      *edgeCycle // sibling chain under the same enclosing cycle
	face      int        // resolved owning face, set by rebuildFaces
}

// signedArea is the shoelace area of the cycle's origin sequence. Outer
// cycles are counterclockwise and positive; hole cycles and zero-area walls
// are non-positive.
func (s *Subdivision) cycleSignedArea(keys []int) float64 {
	var sum float64
	n := len(keys)
	for i := 0; i < n; i++ {
		a := s.edge(keys[i]).Origin
		b := s.edge(keys[(i+1)%n]).Origin
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// findCycles partitions every half-edge into maximal Next-cycles, classifies
// each cycle inner versus outer, and links every inner cycle to the cycle
// immediately enclosing it via a plane sweep. Half-edges are visited in
// ascending key order, so discovery is deterministic.
func (s *Subdivision) findCycles() []*edgeCycle {
	visited := make(map[int]bool, len(s.edges))
	var cycles []*edgeCycle
	byEdge := make(map[int]*edgeCycle, len(s.edges))

	for _, k := range s.sortedEdgeKeys() {
		if visited[k] {
			continue
		}
		keys := s.cycleKeys(k)
		c := &edgeCycle{rep: k, keys: keys, face: NoFace}
		c.pivot = s.edge(k).Origin
		members := make(map[int]bool, len(keys))
		for _, ek := range keys {
			visited[ek] = true
			members[ek] = true
			byEdge[ek] = c
			if o := s.edge(ek).Origin; o.Less(c.pivot) {
				c.pivot = o
			}
		}
		c.outer = s.classifyCycle(keys, members)
		cycles = append(cycles, c)
	}

	s.linkInnerCycles(cycles, byEdge)
	return cycles
}

// classifyCycle decides outer versus inner. A cycle made exclusively of
// complete twin pairs encloses no area and is inner; otherwise the sign of
// the enclosed area decides: positive (counterclockwise, a left turn at the
// lexicographic pivot) means outer, zero or negative means inner.
func (s *Subdivision) classifyCycle(keys []int, members map[int]bool) bool {
	allTwins := true
	for _, k := range keys {
		if !members[s.edge(k).Twin] {
			allTwins = false
			break
		}
	}
	if allTwins {
		return false
	}
	return s.cycleSignedArea(keys) > 0
}

// sweepEdge is one status-line entry: the downward-pointing half of a full
// edge, active while the scan line lies between its endpoints.
type sweepEdge struct {
	key        int // the downward-pointing half-edge
	upper, low geom.Point
}

// xAt returns the edge's intersection with the horizontal scan line at y.
func (se *sweepEdge) xAt(y float64) float64 {
	dy := se.upper.Y - se.low.Y
	if dy == 0 {
		return se.low.X
	}
	return se.low.X + (y-se.low.Y)*(se.upper.X-se.low.X)/dy
}

// invSlope orders edges sharing an x-intersection: dx/dy of the upward
// direction, ascending.
func (se *sweepEdge) invSlope() float64 {
	dy := se.upper.Y - se.low.Y
	if dy == 0 {
		return 0
	}
	return (se.upper.X - se.low.X) / dy
}

// linkInnerCycles resolves, for every inner cycle, the cycle immediately
// enclosing its pivot vertex. A scan line moves through the vertices in
// lexicographic order; the status holds the downward-pointing halves of the
// non-horizontal edges crossing the line, ordered by x-intersection (ties by
// inverse slope, then key). The status edge nearest to the left of an inner
// cycle's pivot faces the pivot with the enclosing region on its left.
// Complexity: O(n log n) events with an O(n) insertion status, O(n²) worst
// case.
func (s *Subdivision) linkInnerCycles(cycles []*edgeCycle, byEdge map[int]*edgeCycle) {
	pivots := make(map[geom.Point][]*edgeCycle)
	for _, c := range cycles {
		if !c.outer {
			pivots[c.pivot] = append(pivots[c.pivot], c)
		}
	}
	if len(pivots) == 0 {
		return
	}

	verts := s.Vertices()
	var status []*sweepEdge

	// ordered locates the insertion position of x within the status at
	// scan height y.
	ordered := func(x float64, y float64, se *sweepEdge) bool {
		sx := se.xAt(y)
		return x < sx
	}

	for _, v := range verts {
		y := v.Y

		// Drop edges whose upper endpoint is this vertex.
		kept := status[:0]
		for _, se := range status {
			if se.upper.Eq(v) {
				continue
			}
			kept = append(kept, se)
		}
		status = kept

		// Resolve inner cycles pivoting here: nearest status edge strictly
		// left of the pivot.
		if cs, ok := pivots[v]; ok {
			var left *sweepEdge
			leftX := 0.0
			for _, se := range status {
				sx := se.xAt(y)
				if sx >= v.X {
					continue
				}
				if left == nil || sx > leftX ||
					(sx == leftX && (se.invSlope() > left.invSlope() ||
						(se.invSlope() == left.invSlope() && se.key > left.key))) {
					left, leftX = se, sx
				}
			}
			for _, c := range cs {
				if left == nil {
					c.enclosing = nil // directly on the unbounded face
					continue
				}
				c.enclosing = byEdge[left.key]
				c.next = c.enclosing.next
				c.enclosing.next = c
			}
		}

		// Insert edges whose lower endpoint is this vertex (skipping
		// horizontal ones; they cannot answer a strictly-left query).
		for _, k := range s.outgoing(v) {
			e := s.edges[k]
			d := s.dest(e)
			if d.Y == v.Y {
				continue
			}
			if !v.Less(d) {
				continue // the pair is inserted from its lower endpoint only
			}
			// The downward-pointing half runs d→v: that is e's twin.
			se := &sweepEdge{key: e.Twin, upper: d, low: v}
			pos := sort.Search(len(status), func(i int) bool { return ordered(se.xAt(y), y, status[i]) })
			status = append(status, nil)
			copy(status[pos+1:], status[pos:])
			status[pos] = se
		}
	}
}

// rebuildFaces discards all face records and reconstructs them from the
// current edge set: outer cycles become bounded faces in discovery order,
// inner cycles are registered on the face bound by their enclosing cycle
// (or on the unbounded face), and every half-edge is relabeled.
func (s *Subdivision) rebuildFaces() {
	s.faces = map[int]*Face{UnboundedFace: {Key: UnboundedFace, Outer: NoEdge}}
	s.nextFace = 1
	cycles := s.findCycles()

	// Bounded faces first, in deterministic discovery order.
	for _, c := range cycles {
		if !c.outer {
			continue
		}
		f := &Face{Key: s.nextFace, Outer: c.rep}
		s.nextFace++
		s.faces[f.Key] = f
		c.face = f.Key
		for _, k := range c.keys {
			s.edge(k).Face = f.Key
		}
	}

	// Inner cycles resolve their owner through the enclosure chain: the
	// face bound by the nearest outer ancestor, or the unbounded face.
	var owner func(c *edgeCycle) int
	owner = func(c *edgeCycle) int {
		if c.face != NoFace {
			return c.face
		}
		if c.outer {
			panic("subdiv: unresolved outer cycle")
		}
		if c.enclosing == nil {
			c.face = UnboundedFace
		} else {
			c.face = owner(c.enclosing)
		}
		return c.face
	}
	for _, c := range cycles {
		if c.outer {
			continue
		}
		f := s.faces[owner(c)]
		f.Inner = append(f.Inner, c.rep)
		for _, k := range c.keys {
			s.edge(k).Face = f.Key
		}
	}
	s.markDirty()
}
