package trapmap

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/subdiv"
)

var (
	// ErrNilSubdivision is returned by New for a nil source subdivision.
	ErrNilSubdivision = errors.New("trapmap: subdivision is nil")

	// ErrNegativeEpsilon is returned by WithEpsilon for a negative tolerance.
	ErrNegativeEpsilon = errors.New("trapmap: epsilon must be non-negative")
)

// minEpsilon is the floor applied to the query tolerance. A map built over
// an exact (zero-epsilon) subdivision still needs some slack to classify
// on-edge queries consistently.
const minEpsilon = 1e-10

// config collects construction options.
type config struct {
	seed int64
	eps  float64
}

// Option adjusts map construction.
type Option func(*config) error

// WithSeed fixes the insertion shuffle, making construction reproducible.
// The default seed is 1.
func WithSeed(seed int64) Option {
	return func(c *config) error {
		c.seed = seed
		return nil
	}
}

// WithEpsilon overrides the query tolerance inherited from the source
// subdivision. Values below 1e-10 are clamped up to it.
func WithEpsilon(eps float64) Option {
	return func(c *config) error {
		if eps < 0 {
			return ErrNegativeEpsilon
		}
		c.eps = eps
		return nil
	}
}

// segment is one full edge of the source subdivision, oriented from its
// lexicographically smaller endpoint l to the larger r. Ordering here is
// x-major: the decomposition sweeps left to right, and a vertical segment
// behaves as if sheared infinitesimally clockwise, so its lower endpoint
// counts as l.
type segment struct {
	l, r geom.Point

	// edge is the canonical half-edge key (the smaller of the pair).
	edge int

	// above is the key of the face on the upper side, the left face of the
	// l→r half.
	above int
}

func (s *segment) line() geom.Line { return geom.Ln(s.l, s.r) }

// at returns the point of s at the sweep position of p.
func (s *segment) at(p geom.Point) geom.Point {
	d := s.r.Sub(s.l)
	if d.X == 0 {
		return geom.Pt(s.l.X, p.Y)
	}
	return s.l.Add(d.Scale((p.X - s.l.X) / d.X))
}

// lexLess orders points by x, then y. This is the sweep order of the map and
// deliberately differs from geom.Point.Less, which is y-major.
func lexLess(p, q geom.Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// trapezoid is one cell of the decomposition: bounded above and below by
// segments (nil means the bounding box) and left and right by the sweep
// positions of two points. Cells split by later insertions are tombstoned,
// never freed, because interior DAG nodes may still route through their
// replacements.
type trapezoid struct {
	top, bottom   *segment
	leftp, rightp geom.Point

	leaf *node
	dead bool
}

type nodeKind int

const (
	xNode nodeKind = iota
	yNode
	leafNode
)

// node is one DAG node. Exactly the fields for its kind are set. Nodes are
// mutated in place when a leaf is replaced by a subtree, so parents keep
// routing through the same pointer.
type node struct {
	kind nodeKind

	// x-node: split at the sweep position of pt.
	pt            geom.Point
	before, after *node

	// y-node: split by side of seg.
	seg          *segment
	above, below *node

	// leaf
	trap *trapezoid
}

func leafFor(t *trapezoid) *node {
	n := &node{kind: leafNode, trap: t}
	t.leaf = n
	return n
}

// Map is a point-location structure over a snapshot of a subdivision.
type Map struct {
	src  *subdiv.Subdivision
	root *node
	eps  float64
	segs int
}

// New builds a map over the current state of s. The source is read, not
// retained for writing; later edits to s are not reflected.
func New(s *subdiv.Subdivision, opts ...Option) (*Map, error) {
	if s == nil {
		return nil, ErrNilSubdivision
	}
	cfg := config{seed: 1, eps: s.Epsilon()}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	m := &Map{src: s, eps: math.Max(cfg.eps, minEpsilon)}

	segs := m.collect()
	m.segs = len(segs)
	m.root = leafFor(boundingTrapezoid(s))

	rng := rand.New(rand.NewSource(cfg.seed))
	rng.Shuffle(len(segs), func(i, j int) { segs[i], segs[j] = segs[j], segs[i] })
	for _, sg := range segs {
		m.insert(sg)
	}
	return m, nil
}

// Source returns the subdivision the map was built from.
func (m *Map) Source() *subdiv.Subdivision { return m.src }

// SegmentCount returns the number of full edges indexed by the map.
func (m *Map) SegmentCount() int { return m.segs }

// collect turns each full edge into one oriented segment.
func (m *Map) collect() []*segment {
	edges := m.src.Edges()
	segs := make([]*segment, 0, len(edges)/2)
	for _, e := range edges {
		if e.Key > e.Twin {
			continue
		}
		ln, err := m.src.EdgeLine(e.Key)
		if err != nil {
			continue
		}
		sg := &segment{edge: e.Key}
		if lexLess(ln.Start, ln.End) {
			sg.l, sg.r = ln.Start, ln.End
			sg.above = e.Face
		} else {
			sg.l, sg.r = ln.End, ln.Start
			twin, err := m.src.Edge(e.Twin)
			if err != nil {
				continue
			}
			sg.above = twin.Face
		}
		segs = append(segs, sg)
	}
	return segs
}

// boundingTrapezoid covers every vertex with a comfortable margin. Both
// bounding segments are nil: anything that ends up against them lies in the
// unbounded face.
func boundingTrapezoid(s *subdiv.Subdivision) *trapezoid {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range s.Vertices() {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	if minX > maxX {
		minX, minY, maxX, maxY = -1, -1, 1, 1
	}
	margin := 1 + 0.1*math.Max(maxX-minX, maxY-minY)
	return &trapezoid{
		leftp:  geom.Pt(minX-margin, minY-margin),
		rightp: geom.Pt(maxX+margin, maxY+margin),
	}
}

// locateAlong descends to the trapezoid holding the point of s just past
// the sweep position of p. The symbolic "just past" resolves every tie a
// plain point descent would hit: a sweep position equal to an x-node's goes
// right, and when the on-segment point q sits exactly on a y-node's carrier
// the side is read from where s diverges to, flipped when p hangs below s
// because then q overshoots the true sweep position instead of trailing it.
func (m *Map) locateAlong(s *segment, p geom.Point) *trapezoid {
	n := m.root
	for n.kind != leafNode {
		switch n.kind {
		case xNode:
			if lexLess(p, n.pt) {
				n = n.before
			} else {
				n = n.after
			}
		case yNode:
			q := s.at(p)
			c := geom.Orientation(n.seg.l, n.seg.r, q)
			if c == 0 {
				c = n.seg.r.Sub(n.seg.l).Cross(s.r.Sub(s.l))
				if p.Y < q.Y {
					c = -c
				}
			}
			if c > 0 {
				n = n.above
			} else {
				n = n.below
			}
		}
	}
	return n.trap
}

// insert threads one segment through the decomposition. Because segments of
// a valid subdivision never cross, the run of trapezoids s passes through is
// bounded only by vertical extensions, and each member is split around s
// independently. Extensions that a textbook decomposition would retract at s
// are simply kept; they subdivide the strip above or below s one step
// further without changing which face any cell lies in.
func (m *Map) insert(s *segment) {
	t := m.locateAlong(s, s.l)
	run := []*trapezoid{t}
	for lexLess(t.rightp, s.r) {
		t = m.locateAlong(s, t.rightp)
		run = append(run, t)
	}

	for i, t := range run {
		lo, hi := t.leftp, t.rightp
		leftGap := i == 0 && lexLess(t.leftp, s.l)
		rightGap := i == len(run)-1 && lexLess(s.r, t.rightp)
		if leftGap {
			lo = s.l
		}
		if rightGap {
			hi = s.r
		}

		up := &trapezoid{top: t.top, bottom: s, leftp: lo, rightp: hi}
		down := &trapezoid{top: s, bottom: t.bottom, leftp: lo, rightp: hi}
		sub := &node{kind: yNode, seg: s, above: leafFor(up), below: leafFor(down)}

		if rightGap {
			right := &trapezoid{top: t.top, bottom: t.bottom, leftp: s.r, rightp: t.rightp}
			sub = &node{kind: xNode, pt: s.r, before: sub, after: leafFor(right)}
		}
		if leftGap {
			left := &trapezoid{top: t.top, bottom: t.bottom, leftp: t.leftp, rightp: s.l}
			sub = &node{kind: xNode, pt: s.l, before: leafFor(left), after: sub}
		}

		// Overwriting the leaf in place keeps every parent already routing
		// through it pointing at the new subtree.
		t.dead = true
		*t.leaf = *sub
		t.leaf = nil
	}
}
