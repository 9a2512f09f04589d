package subdiv

import "fmt"

// Validate audits the structural invariants of the subdivision and returns
// one error per violation, or nil when the structure is sound. Intended for
// tests and debugging after custom mutation sequences; operations keep the
// structure valid on their own.
func (s *Subdivision) Validate() []error {
	var errs []error
	report := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if len(s.edges)%2 != 0 {
		report("odd half-edge count %d", len(s.edges))
	}
	if f, ok := s.faces[UnboundedFace]; !ok {
		report("unbounded face missing")
	} else if f.Outer != NoEdge {
		report("unbounded face has outer boundary %d", f.Outer)
	}

	for _, k := range s.sortedEdgeKeys() {
		e := s.edges[k]
		t, ok := s.edges[e.Twin]
		switch {
		case !ok:
			report("edge %d: twin %d missing", k, e.Twin)
			continue
		case t.Twin != k:
			report("edge %d: twin %d points back to %d", k, e.Twin, t.Twin)
		case e.Twin == k:
			report("edge %d is its own twin", k)
		}
		if n, ok := s.edges[e.Next]; !ok {
			report("edge %d: next %d missing", k, e.Next)
		} else {
			if n.Prev != k {
				report("edge %d: next %d has prev %d", k, e.Next, n.Prev)
			}
			if !n.Origin.Eq(t.Origin) {
				report("edge %d: next %d starts at %v, want %v", k, e.Next, n.Origin, t.Origin)
			}
			if n.Face != e.Face {
				report("edge %d: face %d but next %d has face %d", k, e.Face, e.Next, n.Face)
			}
		}
		if _, ok := s.edges[e.Prev]; !ok {
			report("edge %d: prev %d missing", k, e.Prev)
		}
		if _, ok := s.faces[e.Face]; !ok {
			report("edge %d: face %d missing", k, e.Face)
		}
		listed := false
		for _, ik := range s.incident[e.Origin] {
			if ik == k {
				listed = true
				break
			}
		}
		if !listed {
			report("edge %d not indexed under origin %v", k, e.Origin)
		}
	}

	for v, keys := range s.incident {
		if len(keys) == 0 {
			report("vertex %v indexed with no edges", v)
		}
		for _, k := range keys {
			e, ok := s.edges[k]
			if !ok {
				report("vertex %v: indexed edge %d missing", v, k)
			} else if !e.Origin.Eq(v) {
				report("vertex %v: indexed edge %d originates at %v", v, k, e.Origin)
			}
		}
	}

	for _, f := range s.Faces() {
		if f.Key != UnboundedFace {
			if _, ok := s.edges[f.Outer]; !ok {
				report("face %d: outer edge %d missing", f.Key, f.Outer)
				continue
			}
			if got := s.edges[f.Outer].Face; got != f.Key {
				report("face %d: outer edge %d labeled %d", f.Key, f.Outer, got)
			}
			if a := s.cycleSignedArea(s.cycleKeys(f.Outer)); a <= 0 {
				report("face %d: outer cycle area %g not counterclockwise", f.Key, a)
			}
		}
		for _, r := range f.Inner {
			if _, ok := s.edges[r]; !ok {
				report("face %d: inner edge %d missing", f.Key, r)
				continue
			}
			if got := s.edges[r].Face; got != f.Key {
				report("face %d: inner edge %d labeled %d", f.Key, r, got)
			}
			if a := s.cycleSignedArea(s.cycleKeys(r)); a > 0 {
				report("face %d: inner cycle at %d has positive area %g", f.Key, r, a)
			}
		}
	}
	return errs
}
