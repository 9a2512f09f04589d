package trapmap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/subdiv"
	"github.com/katalvlaran/planar/trapmap"
)

func square(x, y, side float64) geom.Polygon {
	return geom.Polygon{
		geom.Pt(x, y),
		geom.Pt(x+side, y),
		geom.Pt(x+side, y+side),
		geom.Pt(x, y+side),
	}
}

func mustValid(t *testing.T, m *trapmap.Map) {
	t.Helper()
	for _, err := range m.Validate() {
		t.Errorf("validate: %v", err)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := trapmap.New(nil)
	assert.ErrorIs(t, err, trapmap.ErrNilSubdivision)

	s, err := subdiv.New(0)
	require.NoError(t, err)
	_, err = trapmap.New(s, trapmap.WithEpsilon(-1))
	assert.ErrorIs(t, err, trapmap.ErrNegativeEpsilon)
}

func TestMap_EmptySubdivision(t *testing.T) {
	s, err := subdiv.New(0)
	require.NoError(t, err)
	m, err := trapmap.New(s)
	require.NoError(t, err)

	assert.Zero(t, m.SegmentCount())
	el := m.Find(geom.Pt(3, -7))
	assert.Equal(t, subdiv.ElementFace, el.Kind)
	assert.Equal(t, subdiv.UnboundedFace, el.Face)
	mustValid(t, m)
}

func TestMap_UnitSquare(t *testing.T) {
	s, err := subdiv.FromPolygons([]geom.Polygon{square(0, 0, 1)}, 1e-9)
	require.NoError(t, err)
	m, err := trapmap.New(s)
	require.NoError(t, err)

	assert.Same(t, s, m.Source())
	assert.Equal(t, 4, m.SegmentCount())
	mustValid(t, m)

	inside := s.FindFace(geom.Pt(0.5, 0.5))
	assert.Equal(t, subdiv.FaceElement(inside), m.Find(geom.Pt(0.5, 0.5)))
	assert.Equal(t, subdiv.FaceElement(subdiv.UnboundedFace), m.Find(geom.Pt(2, 2)))
	assert.Equal(t, subdiv.FaceElement(subdiv.UnboundedFace), m.Find(geom.Pt(-0.5, 0.5)))

	// On-skeleton queries resolve exactly like the linear scan.
	assert.Equal(t, s.Find(geom.Pt(0.5, 0), 1e-9), m.Find(geom.Pt(0.5, 0)))
	assert.Equal(t, subdiv.VertexElement(geom.Pt(0, 0)), m.Find(geom.Pt(0, 0)))
	assert.Equal(t, subdiv.VertexElement(geom.Pt(1, 1)), m.Find(geom.Pt(1, 1)))
}

func TestMap_AgreesWithLinearScan(t *testing.T) {
	s, err := subdiv.FromPolygons([]geom.Polygon{
		square(0, 0, 10),
		square(4, 4, 2),
		square(12, 0, 4),
	}, 1e-9)
	require.NoError(t, err)
	_, err = s.AddEdge(geom.Pt(1, 8), geom.Pt(3, 8))
	require.NoError(t, err)

	m, err := trapmap.New(s, trapmap.WithSeed(42))
	require.NoError(t, err)
	mustValid(t, m)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := geom.Pt(rng.Float64()*22-3, rng.Float64()*16-3)
		want := s.Find(p, 1e-9)
		require.Equal(t, want, m.Find(p), "query %v", p)
	}
}

func TestMap_SeedIndependentAnswers(t *testing.T) {
	s, err := subdiv.FromPolygons([]geom.Polygon{
		square(0, 0, 4),
		square(1, 1, 1),
	}, 1e-9)
	require.NoError(t, err)

	m1, err := trapmap.New(s, trapmap.WithSeed(1))
	require.NoError(t, err)
	m2, err := trapmap.New(s, trapmap.WithSeed(99))
	require.NoError(t, err)
	mustValid(t, m1)
	mustValid(t, m2)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		p := geom.Pt(rng.Float64()*8-2, rng.Float64()*8-2)
		assert.Equal(t, m1.Find(p), m2.Find(p), "query %v", p)
	}
}

func TestMap_HoleResolution(t *testing.T) {
	s, err := subdiv.FromPolygons([]geom.Polygon{
		square(0, 0, 10),
		square(4, 4, 2),
	}, 1e-9)
	require.NoError(t, err)
	m, err := trapmap.New(s)
	require.NoError(t, err)

	big := s.FindFace(geom.Pt(1, 1))
	hole := s.FindFace(geom.Pt(5, 5))
	assert.Equal(t, subdiv.FaceElement(hole), m.Find(geom.Pt(5, 5)))
	assert.Equal(t, subdiv.FaceElement(big), m.Find(geom.Pt(2, 5)))
	assert.Equal(t, subdiv.FaceElement(big), m.Find(geom.Pt(5, 8)))
	assert.Equal(t, subdiv.FaceElement(subdiv.UnboundedFace), m.Find(geom.Pt(5, 11)))
	mustValid(t, m)
}

func TestMap_ValidateConvergingSegments(t *testing.T) {
	// Two walls meeting at (16, 16) plus a third ending at x = 16 force
	// zero-width cells whose boundaries touch at the shared endpoint.
	// Validate must accept them; Find must still match the linear scan.
	s, err := subdiv.FromLines([]geom.Line{
		geom.Ln(geom.Pt(11, 19), geom.Pt(16, 16)),
		geom.Ln(geom.Pt(8, 18), geom.Pt(16, 16)),
		geom.Ln(geom.Pt(12, 13), geom.Pt(16, 13)),
	}, 1e-9)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for seed := int64(1); seed <= 6; seed++ {
		m, err := trapmap.New(s, trapmap.WithSeed(seed))
		require.NoError(t, err)
		mustValid(t, m)
		for i := 0; i < 200; i++ {
			p := geom.Pt(rng.Float64()*14+6, rng.Float64()*10+11)
			require.Equal(t, s.Find(p, 1e-9), m.Find(p), "seed %d query %v", seed, p)
		}
	}
}

func TestMap_SnapshotIgnoresLaterEdits(t *testing.T) {
	s, err := subdiv.FromPolygons([]geom.Polygon{square(0, 0, 1)}, 1e-9)
	require.NoError(t, err)
	m, err := trapmap.New(s)
	require.NoError(t, err)
	before := m.Find(geom.Pt(0.25, 0.75))

	_, err = s.AddEdge(geom.Pt(0, 0), geom.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, before, m.Find(geom.Pt(0.25, 0.75)), "the map keeps answering from its snapshot")

	rebuilt, err := trapmap.New(s)
	require.NoError(t, err)
	assert.Equal(t, 5, rebuilt.SegmentCount())
	mustValid(t, rebuilt)
}
