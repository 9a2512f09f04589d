package facemap

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/subdiv"
)

// RingMap ties externally produced polygon rings to subdivision faces by
// identity: each ring is resolved to the face whose boundary it traces, and
// remembered under a caller-chosen id. Bindings are a cache; Rebuild
// re-resolves them after subdivision edits.
type RingMap struct {
	src   *subdiv.Subdivision
	opts  RingMapOptions
	rings map[string]geom.Polygon
	faces map[string]int
}

// NewRingMap creates an empty ring registry over s.
func NewRingMap(s *subdiv.Subdivision, opts RingMapOptions) (*RingMap, error) {
	if s == nil {
		return nil, ErrNilSubdivision
	}
	return &RingMap{
		src:   s,
		opts:  opts,
		rings: make(map[string]geom.Polygon),
		faces: make(map[string]int),
	}, nil
}

// FromRing converts an orb ring, dropping the closing point orb carries and
// this module's open-ring convention does not.
func FromRing(r orb.Ring) geom.Polygon {
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	pg := make(geom.Polygon, n)
	for i := 0; i < n; i++ {
		pg[i] = geom.Pt(r[i].X(), r[i].Y())
	}
	return pg
}

// Bind resolves an orb ring to its face and stores the binding under id.
// Binding an id again replaces it. Rings that do not trace a face boundary
// fail with subdiv.ErrNoMatch.
func (m *RingMap) Bind(id string, r orb.Ring) (int, error) {
	return m.bind(id, FromRing(r))
}

// BindPolygon binds the exterior ring of an orb polygon. Interior rings
// bound separate faces in a subdivision and must be bound under their own
// ids.
func (m *RingMap) BindPolygon(id string, pg orb.Polygon) (int, error) {
	if len(pg) == 0 {
		return subdiv.NoFace, geom.ErrPolygonSize
	}
	return m.bind(id, FromRing(pg[0]))
}

func (m *RingMap) bind(id string, pg geom.Polygon) (int, error) {
	f, err := m.src.FindFacePolygon(pg, m.opts.Verify)
	if err != nil {
		return subdiv.NoFace, err
	}
	m.rings[id] = pg
	m.faces[id] = f
	return f, nil
}

// Face returns the face bound under id.
func (m *RingMap) Face(id string) (int, error) {
	f, ok := m.faces[id]
	if !ok {
		return subdiv.NoFace, ErrUnknownID
	}
	return f, nil
}

// Ring returns the stored (converted) ring bound under id.
func (m *RingMap) Ring(id string) (geom.Polygon, error) {
	pg, ok := m.rings[id]
	if !ok {
		return nil, ErrUnknownID
	}
	return pg, nil
}

// Unbind removes a binding. Unknown ids are a no-op.
func (m *RingMap) Unbind(id string) {
	delete(m.rings, id)
	delete(m.faces, id)
}

// IDs returns all bound ids in ascending order.
func (m *RingMap) IDs() []string {
	out := make([]string, 0, len(m.faces))
	for id := range m.faces {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of bindings.
func (m *RingMap) Len() int { return len(m.faces) }

// Rebuild re-resolves every stored ring against the subdivision's current
// state. The first ring that no longer traces a face stops the pass and
// reports which id failed alongside the underlying error; earlier ids may
// already have been refreshed.
func (m *RingMap) Rebuild() error {
	for _, id := range m.IDs() {
		f, err := m.src.FindFacePolygon(m.rings[id], m.opts.Verify)
		if err != nil {
			return fmt.Errorf("facemap: rebind %q: %w", id, err)
		}
		m.faces[id] = f
	}
	return nil
}
