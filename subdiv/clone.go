package subdiv

import "github.com/katalvlaran/planar/geom"

// Clone returns an independent deep copy. All cross-references are integer
// keys, so cloning is a plain copy of the catalogs; the copy can be mutated
// without affecting the original.
func (s *Subdivision) Clone() *Subdivision {
	c := &Subdivision{
		epsilon:      s.epsilon,
		nextEdge:     s.nextEdge,
		nextFace:     s.nextFace,
		edges:        make(map[int]*Edge, len(s.edges)),
		faces:        make(map[int]*Face, len(s.faces)),
		incident:     make(map[geom.Point][]int, len(s.incident)),
		regions:      make(map[geom.Point]geom.Polygon, len(s.regions)),
		connectivity: s.connectivity,
	}
	for k, e := range s.edges {
		dup := *e
		c.edges[k] = &dup
	}
	for k, f := range s.faces {
		dup := Face{Key: f.Key, Outer: f.Outer}
		if len(f.Inner) > 0 {
			dup.Inner = append([]int(nil), f.Inner...)
		}
		c.faces[k] = &dup
	}
	for v, keys := range s.incident {
		c.incident[v] = append([]int(nil), keys...)
	}
	for v, pg := range s.regions {
		c.regions[v] = append(geom.Polygon(nil), pg...)
	}
	return c
}

// ToPolygons exports the outer boundary ring of every bounded face, in face
// key order. Holes and walls are not represented; a round trip through
// FromPolygons reproduces the same regions for subdivisions without them.
func (s *Subdivision) ToPolygons() []geom.Polygon {
	var out []geom.Polygon
	for _, f := range s.Faces() {
		if f.Key == UnboundedFace {
			continue
		}
		out = append(out, s.cyclePolygon(f.Outer))
	}
	return out
}
