package subdiv

import (
	"math"

	"github.com/katalvlaran/planar/geom"
)

// FindFace returns the key of the face containing p. Points on an edge or
// vertex resolve to one of the adjacent faces deterministically; use Find
// when the distinction matters.
// Complexity: O(n) over the half-edges; see the trapmap package for an
// O(log n) expected-time structure over a frozen subdivision.
func (s *Subdivision) FindFace(p geom.Point) int {
	return s.findFaceKey(p)
}

// findFaceKey locates p by casting a leftward horizontal ray and reading the
// face on the p-facing side of the nearest crossing edge. No crossing means
// the unbounded face.
func (s *Subdivision) findFaceKey(p geom.Point) int {
	bestX := math.Inf(-1)
	bestFace := UnboundedFace
	for _, k := range s.sortedEdgeKeys() {
		e := s.edges[k]
		if e.Key > e.Twin {
			continue
		}
		a, b := e.Origin, s.dest(e)
		// Half-open straddle test so a vertex on the ray counts once.
		if (a.Y <= p.Y) == (b.Y <= p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x >= p.X || x <= bestX {
			continue
		}
		bestX = x
		// The downward-pointing half faces +x, toward p, on its left.
		if a.Y > b.Y {
			bestFace = e.Face
		} else {
			bestFace = s.edge(e.Twin).Face
		}
	}
	return bestFace
}

// Find classifies p against the subdivision within the given tolerance: a
// vertex it coincides with, the edge whose interior it lies on, or the face
// containing it. Edge hits report the canonical (lower-keyed) half.
func (s *Subdivision) Find(p geom.Point, eps float64) Element {
	if v, ok := s.nearestVertexWithin(p, eps); ok {
		return VertexElement(v)
	}
	if k, d := s.FindNearestEdge(p); k != NoEdge && d <= eps {
		return EdgeElement(k)
	}
	return FaceElement(s.findFaceKey(p))
}

// nearestVertexWithin returns the vertex closest to p among those within the
// tolerance.
func (s *Subdivision) nearestVertexWithin(p geom.Point, eps float64) (geom.Point, bool) {
	var best geom.Point
	bestD := math.Inf(1)
	for v := range s.incident {
		if d := v.Distance(p); d <= eps && (d < bestD || (d == bestD && v.Less(best))) {
			best, bestD = v, d
		}
	}
	return best, !math.IsInf(bestD, 1)
}

// FindNearestEdge returns the canonical half-edge key nearest to p and its
// distance. An edgeless subdivision yields (NoEdge, +Inf).
func (s *Subdivision) FindNearestEdge(p geom.Point) (int, float64) {
	best, bestD := NoEdge, math.Inf(1)
	for _, k := range s.sortedEdgeKeys() {
		e := s.edges[k]
		if e.Key > e.Twin {
			continue
		}
		if d := s.line(e).DistanceTo(p); d < bestD {
			best, bestD = k, d
		}
	}
	return best, bestD
}

// FindNearestEdgeOnFace restricts the nearest-edge search to the boundary
// cycles of one face.
func (s *Subdivision) FindNearestEdgeOnFace(face int, p geom.Point) (int, float64, error) {
	f, ok := s.faces[face]
	if !ok {
		return NoEdge, 0, ErrUnknownFace
	}
	best, bestD := NoEdge, math.Inf(1)
	scan := func(start int) {
		for _, k := range s.cycleKeys(start) {
			e := s.edges[k]
			c := k
			if e.Twin < c {
				c = e.Twin
			}
			if d := s.line(e).DistanceTo(p); d < bestD || (d == bestD && c < best) {
				best, bestD = c, d
			}
		}
	}
	if f.Outer != NoEdge {
		scan(f.Outer)
	}
	for _, r := range f.Inner {
		scan(r)
	}
	return best, bestD, nil
}

// FindFacePolygon returns the key of the face whose outer boundary is the
// given ring. The ring may be stated in either orientation and starting at
// any vertex. With verify set, the face's whole outer cycle is compared
// against the ring and a mismatch yields ErrNoMatch; without it, the face on
// the ring's interior side of the first edge is trusted.
func (s *Subdivision) FindFacePolygon(pg geom.Polygon, verify bool) (int, error) {
	if err := pg.Validate(); err != nil {
		return NoFace, err
	}
	v0, ok0 := s.lookupVertex(pg[0])
	v1, ok1 := s.lookupVertex(pg[1])
	if !ok0 || !ok1 {
		return NoFace, ErrNoMatch
	}
	k, ok := s.connectedEdge(v0, v1)
	if !ok {
		return NoFace, ErrNoMatch
	}
	e := s.edges[k]
	// The interior lies left of pg[0]→pg[1] when the ring is
	// counterclockwise, right of it otherwise.
	if pg.SignedArea() < 0 {
		e = s.edge(e.Twin)
	}
	face := e.Face
	if face == UnboundedFace {
		return NoFace, ErrNoMatch
	}
	if verify {
		f := s.faces[face]
		if !s.cycleContains(f.Outer, e.Key) || !s.ringMatchesCycle(pg, f.Outer) {
			return NoFace, ErrNoMatch
		}
	}
	return face, nil
}

// ringMatchesCycle reports whether the ring equals the cycle's origin
// sequence up to rotation and orientation, snapping ring points to vertices.
func (s *Subdivision) ringMatchesCycle(pg geom.Polygon, start int) bool {
	cyc := s.cyclePolygon(start)
	n := len(cyc)
	if len(pg) != n {
		return false
	}
	ring := make(geom.Polygon, n)
	for i, p := range pg {
		v, ok := s.lookupVertex(p)
		if !ok {
			return false
		}
		ring[i] = v
	}
	match := func(dir int) bool {
		for off := 0; off < n; off++ {
			ok := true
			for i := 0; i < n; i++ {
				j := (off + dir*i%n + n) % n
				if !ring[i].Eq(cyc[j]) {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}
		return false
	}
	return match(1) || match(-1)
}
