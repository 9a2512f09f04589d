package trapmap

import (
	"fmt"
)

// Validate walks the whole DAG and reports structural defects. A healthy
// map returns an empty slice.
//
// Checked per node: children present for its kind, no tombstoned trapezoid
// reachable, leaf back-pointers intact. Checked per cell: positive sweep
// span, top boundary above bottom boundary across the cell's span (the two
// may touch at a shared endpoint on a zero-width sliver), and a face key
// the source subdivision knows.
func (m *Map) Validate() []error {
	var errs []error
	if m.root == nil {
		return []error{fmt.Errorf("trapmap: nil root")}
	}
	seen := make(map[*node]bool)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		switch n.kind {
		case xNode:
			if n.before == nil || n.after == nil {
				errs = append(errs, fmt.Errorf("trapmap: x-node at %v missing a child", n.pt))
				return
			}
			walk(n.before)
			walk(n.after)
		case yNode:
			if n.seg == nil || n.above == nil || n.below == nil {
				errs = append(errs, fmt.Errorf("trapmap: incomplete y-node"))
				return
			}
			walk(n.above)
			walk(n.below)
		case leafNode:
			errs = append(errs, m.checkLeaf(n)...)
		default:
			errs = append(errs, fmt.Errorf("trapmap: unknown node kind %d", n.kind))
		}
	}
	walk(m.root)
	return errs
}

func (m *Map) checkLeaf(n *node) []error {
	var errs []error
	t := n.trap
	if t == nil {
		return []error{fmt.Errorf("trapmap: leaf without a trapezoid")}
	}
	if t.dead {
		errs = append(errs, fmt.Errorf("trapmap: tombstoned trapezoid still reachable, span %v..%v", t.leftp, t.rightp))
	}
	if t.leaf != n {
		errs = append(errs, fmt.Errorf("trapmap: trapezoid %v..%v back-pointer broken", t.leftp, t.rightp))
	}
	if !lexLess(t.leftp, t.rightp) {
		errs = append(errs, fmt.Errorf("trapmap: empty trapezoid span %v..%v", t.leftp, t.rightp))
	}
	mid := t.leftp.Midpoint(t.rightp)
	if t.top != nil && t.bottom != nil && t.top != t.bottom {
		topY, botY := t.top.at(mid).Y, t.bottom.at(mid).Y
		// A zero-width sliver between two sweep positions sharing an x
		// coordinate may have its boundaries meet at a common endpoint.
		sliver := t.leftp.X == t.rightp.X
		if topY < botY || (topY == botY && !sliver) {
			errs = append(errs, fmt.Errorf("trapmap: boundaries inverted at %v", mid))
		}
	}
	if t.bottom != nil {
		if _, err := m.src.Face(t.bottom.above); err != nil {
			errs = append(errs, fmt.Errorf("trapmap: trapezoid labeled with unknown face %d", t.bottom.above))
		}
	}
	return errs
}
