package trapmap

import (
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/subdiv"
)

// Find resolves p against the snapshot: the vertex it coincides with within
// the map's tolerance, the edge it lies on, or the face containing it. For
// points farther than the tolerance from the skeleton this agrees with
// Subdivision.Find on the source.
func (m *Map) Find(p geom.Point) subdiv.Element {
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
			if n.seg.line().DistanceTo(p) <= m.eps {
				return m.onSegment(n.seg, p)
			}
			if geom.Orientation(n.seg.l, n.seg.r, p) > 0 {
				n = n.above
			} else {
				n = n.below
			}
		}
	}
	t := n.trap
	// The cell's own corners are the only vertices it can touch that no
	// ancestor segment node already claimed.
	for _, c := range []geom.Point{t.leftp, t.rightp} {
		if p.Distance(c) <= m.eps && m.src.Contains(c) {
			return subdiv.VertexElement(c)
		}
	}
	if t.bottom == nil {
		return subdiv.FaceElement(subdiv.UnboundedFace)
	}
	return subdiv.FaceElement(t.bottom.above)
}

// onSegment classifies a point within tolerance of a segment, favoring its
// endpoints over the interior.
func (m *Map) onSegment(s *segment, p geom.Point) subdiv.Element {
	if p.Distance(s.l) <= m.eps {
		return subdiv.VertexElement(s.l)
	}
	if p.Distance(s.r) <= m.eps {
		return subdiv.VertexElement(s.r)
	}
	return subdiv.EdgeElement(s.edge)
}
