package subdiv

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/planar/geom"
)

// Subdivision owns all half-edges, faces and the vertex→incident-edge index
// of one planar subdivision. It is not safe for concurrent mutation; Clone
// produces an independent copy safe to hand to another owner.
type Subdivision struct {
	epsilon float64

	nextEdge int
	nextFace int

	edges map[int]*Edge
	faces map[int]*Face

	// incident maps every vertex to the keys of the half-edges originating
	// at it. A vertex with no incident edges is removed from the index, so
	// a subdivision with zero edges has zero vertices.
	incident map[geom.Point][]int

	// regions is the application-supplied world-region side table. The
	// subdivision stores it but never populates it.
	regions map[geom.Point]geom.Polygon

	// connectivity caches the maximum vertex degree; -1 means stale.
	connectivity int
}

// New returns an empty subdivision with the given coordinate tolerance.
// A negative eps yields ErrNegativeEpsilon.
func New(eps float64) (*Subdivision, error) {
	if eps < 0 {
		return nil, ErrNegativeEpsilon
	}
	s := &Subdivision{
		epsilon:      eps,
		edges:        make(map[int]*Edge),
		faces:        make(map[int]*Face),
		incident:     make(map[geom.Point][]int),
		regions:      make(map[geom.Point]geom.Polygon),
		connectivity: -1,
	}
	s.faces[UnboundedFace] = &Face{Key: UnboundedFace, Outer: NoEdge}
	s.nextFace = 1
	return s, nil
}

// FromLines builds a subdivision from non-crossing segments. The caller
// guarantees segments intersect at most at shared endpoints; duplicate
// segments are rejected with ErrDuplicateEdge, zero-length ones with
// ErrDegenerateEdge. Faces are recovered by cycle discovery.
// Complexity: O(n²) pairwise splicing plus O(n log n) for the sweep.
func FromLines(lines []geom.Line, eps float64) (*Subdivision, error) {
	s, err := New(eps)
	if err != nil {
		return nil, err
	}
	for i, ln := range lines {
		_, created, err := s.createTwinEdges(ln.Start, ln.End)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d", err, i)
		}
		if !created {
			return nil, fmt.Errorf("%w: segment %d", ErrDuplicateEdge, i)
		}
	}
	s.rebuildFaces()
	return s, nil
}

// FromPolygons builds a subdivision from closed rings. Rings may share
// vertices and whole edges (shared borders are merged); they must not cross.
// A ring with fewer than three vertices yields geom.ErrPolygonSize.
func FromPolygons(polys []geom.Polygon, eps float64) (*Subdivision, error) {
	s, err := New(eps)
	if err != nil {
		return nil, err
	}
	for i, pg := range polys {
		if err := pg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: polygon %d", err, i)
		}
		n := len(pg)
		for j := 0; j < n; j++ {
			if _, _, err := s.createTwinEdges(pg[j], pg[(j+1)%n]); err != nil {
				return nil, fmt.Errorf("%w: polygon %d", err, i)
			}
		}
	}
	s.rebuildFaces()
	return s, nil
}

// Epsilon returns the coordinate tolerance the subdivision was built with.
func (s *Subdivision) Epsilon() float64 { return s.epsilon }

// EdgeCount returns the number of half-edges (always even).
func (s *Subdivision) EdgeCount() int { return len(s.edges) }

// FaceCount returns the number of faces, including the unbounded one.
func (s *Subdivision) FaceCount() int { return len(s.faces) }

// VertexCount returns the number of vertices.
func (s *Subdivision) VertexCount() int { return len(s.incident) }

// Edge returns the half-edge with the given key.
func (s *Subdivision) Edge(key int) (*Edge, error) {
	e, ok := s.edges[key]
	if !ok {
		return nil, ErrUnknownEdge
	}
	return e, nil
}

// Face returns the face with the given key.
func (s *Subdivision) Face(key int) (*Face, error) {
	f, ok := s.faces[key]
	if !ok {
		return nil, ErrUnknownFace
	}
	return f, nil
}

// Edges returns all half-edges sorted by key.
func (s *Subdivision) Edges() []*Edge {
	out := make([]*Edge, 0, len(s.edges))
	for _, k := range s.sortedEdgeKeys() {
		out = append(out, s.edges[k])
	}
	return out
}

// Faces returns all faces sorted by key.
func (s *Subdivision) Faces() []*Face {
	keys := make([]int, 0, len(s.faces))
	for k := range s.faces {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]*Face, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.faces[k])
	}
	return out
}

// Vertices returns all vertices in lexicographic order.
func (s *Subdivision) Vertices() []geom.Point {
	out := make([]geom.Point, 0, len(s.incident))
	for p := range s.incident {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// EdgeLine returns the segment spanned by a half-edge.
func (s *Subdivision) EdgeLine(key int) (geom.Line, error) {
	e, ok := s.edges[key]
	if !ok {
		return geom.Line{}, ErrUnknownEdge
	}
	return geom.Ln(e.Origin, s.dest(e)), nil
}

//–– internal accessors ––––––––––––––––––––––––––––––––––––––––––––––––––––

// edge fetches a half-edge that must exist; a miss means corrupt state.
func (s *Subdivision) edge(key int) *Edge {
	e, ok := s.edges[key]
	if !ok {
		panic(fmt.Sprintf("subdiv: dangling half-edge reference %d", key))
	}
	return e
}

// dest returns the destination vertex of a half-edge.
func (s *Subdivision) dest(e *Edge) geom.Point {
	return s.edge(e.Twin).Origin
}

// line returns the segment spanned by a half-edge.
func (s *Subdivision) line(e *Edge) geom.Line {
	return geom.Ln(e.Origin, s.dest(e))
}

// sortedEdgeKeys returns all half-edge keys ascending, for deterministic
// iteration over the edge catalog.
func (s *Subdivision) sortedEdgeKeys() []int {
	keys := make([]int, 0, len(s.edges))
	for k := range s.edges {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// markDirty invalidates lazily cached aggregates after a structural change.
func (s *Subdivision) markDirty() {
	s.connectivity = -1
}

//–– vertex index –––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// lookupVertex snaps p to an existing vertex: an exact index hit first, then
// an epsilon scan. The second return reports whether a vertex was found.
func (s *Subdivision) lookupVertex(p geom.Point) (geom.Point, bool) {
	if _, ok := s.incident[p]; ok {
		return p, true
	}
	if s.epsilon == 0 {
		return p, false
	}
	for v := range s.incident {
		if v.EqEps(p, s.epsilon) {
			return v, true
		}
	}
	return p, false
}

// outgoing returns the keys of the half-edges originating at v.
func (s *Subdivision) outgoing(v geom.Point) []int {
	return s.incident[v]
}

func (s *Subdivision) addIncident(v geom.Point, key int) {
	s.incident[v] = append(s.incident[v], key)
}

func (s *Subdivision) removeIncident(v geom.Point, key int) {
	list := s.incident[v]
	for i, k := range list {
		if k == key {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(s.incident, v)
		return
	}
	s.incident[v] = list
}

// connected reports whether an edge v→w already exists, returning its key.
func (s *Subdivision) connectedEdge(v, w geom.Point) (int, bool) {
	for _, k := range s.incident[v] {
		if s.dest(s.edges[k]).Eq(w) {
			return k, true
		}
	}
	return NoEdge, false
}

//–– rotation and splicing ––––––––––––––––––––––––––––––––––––––––––––––––

// firstClockwise returns the outgoing half-edge at v that is nearest to dir
// in clockwise rotation, skipping keys rejected by exclude (which may be
// nil). ok is false when v has no eligible outgoing edges.
func (s *Subdivision) firstClockwise(v geom.Point, dir geom.Point, exclude func(int) bool) (*Edge, bool) {
	var best *Edge
	bestAngle := 0.0
	for _, k := range s.outgoing(v) {
		if exclude != nil && exclude(k) {
			continue
		}
		e := s.edges[k]
		a := dir.ClockwiseAngle(s.dest(e).Sub(v))
		if best == nil || a < bestAngle || (a == bestAngle && k < best.Key) {
			best, bestAngle = e, a
		}
	}
	return best, best != nil
}

// wedgeFace resolves the face whose angular wedge at the existing vertex v
// contains the direction dir. This is the neighbor-chain search AddEdge uses
// to determine the containing face at an existing endpoint.
func (s *Subdivision) wedgeFace(v geom.Point, dir geom.Point) int {
	o, ok := s.firstClockwise(v, dir, nil)
	if !ok {
		panic(fmt.Sprintf("subdiv: wedge query on isolated vertex %v", v))
	}
	return o.Face
}

// allocEdgePair creates the two halves of a full edge a→b as a detached
// two-edge cycle and registers them in the catalogs and the vertex index.
func (s *Subdivision) allocEdgePair(a, b geom.Point) (*Edge, *Edge) {
	e := &Edge{Key: s.nextEdge, Origin: a, Face: NoFace}
	t := &Edge{Key: s.nextEdge + 1, Origin: b, Face: NoFace}
	s.nextEdge += 2
	e.Twin, t.Twin = t.Key, e.Key
	e.Next, e.Prev = t.Key, t.Key
	t.Next, t.Prev = e.Key, e.Key
	s.edges[e.Key] = e
	s.edges[t.Key] = t
	s.addIncident(a, e.Key)
	s.addIncident(b, t.Key)
	return e, t
}

// spliceAt links the freshly created pair (e out of v, t into v) into the
// edge rotation around the existing vertex v. The successor o is the
// outgoing edge first clockwise of e's direction; e slots into o's wedge:
//
//	o.Prev ─▶ e            (into the wedge's face cycle)
//	t      ─▶ o            (twin resumes where the wedge left off)
func (s *Subdivision) spliceAt(v geom.Point, e, t *Edge) {
	dir := s.dest(e).Sub(v)
	o, ok := s.firstClockwise(v, dir, func(k int) bool { return k == e.Key })
	if !ok {
		return // v was a new vertex; the pair keeps its self-loop links
	}
	h := s.edge(o.Prev)
	e.Prev = h.Key
	h.Next = e.Key
	t.Next = o.Key
	o.Prev = t.Key
}

// createTwinEdges inserts the full edge a→b, snapping endpoints to existing
// vertices within epsilon and splicing into the rotations at shared
// vertices. It performs no intersection checks and no face bookkeeping.
// When the snapped endpoints are already connected it returns the existing
// half-edge with created=false. Zero-length input yields ErrDegenerateEdge.
func (s *Subdivision) createTwinEdges(a, b geom.Point) (*Edge, bool, error) {
	va, okA := s.lookupVertex(a)
	vb, okB := s.lookupVertex(b)
	if va.Eq(vb) || (!okA && !okB && va.EqEps(vb, s.epsilon)) {
		return nil, false, ErrDegenerateEdge
	}
	if okA && okB {
		if k, dup := s.connectedEdge(va, vb); dup {
			return s.edges[k], false, nil
		}
	}
	e, t := s.allocEdgePair(va, vb)
	if okA {
		s.spliceAt(va, e, t)
	}
	if okB {
		s.spliceAt(vb, t, e)
	}
	s.markDirty()
	return e, true, nil
}

//–– cycle walking ––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// cycleKeys walks Next links from the given half-edge and returns the keys
// of its whole boundary cycle, in traversal order.
func (s *Subdivision) cycleKeys(start int) []int {
	var out []int
	k := start
	for {
		out = append(out, k)
		k = s.edge(k).Next
		if k == start {
			return out
		}
	}
}

// cycleContains reports whether the cycle through start passes the target
// half-edge.
func (s *Subdivision) cycleContains(start, target int) bool {
	k := start
	for {
		if k == target {
			return true
		}
		k = s.edge(k).Next
		if k == start {
			return false
		}
	}
}

// cyclePolygon returns the origin sequence of the cycle through start.
func (s *Subdivision) cyclePolygon(start int) geom.Polygon {
	keys := s.cycleKeys(start)
	pg := make(geom.Polygon, len(keys))
	for i, k := range keys {
		pg[i] = s.edges[k].Origin
	}
	return pg
}

// cyclePivot returns the lexicographically smallest origin on the cycle.
func (s *Subdivision) cyclePivot(start int) geom.Point {
	pivot := s.edge(start).Origin
	for k := s.edge(start).Next; k != start; k = s.edge(k).Next {
		if o := s.edge(k).Origin; o.Less(pivot) {
			pivot = o
		}
	}
	return pivot
}

// relabelCycle assigns every half-edge on the cycle through start to face.
func (s *Subdivision) relabelCycle(start, face int) {
	k := start
	for {
		e := s.edge(k)
		e.Face = face
		k = e.Next
		if k == start {
			return
		}
	}
}
