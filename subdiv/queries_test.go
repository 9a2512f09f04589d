package subdiv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/subdiv"
)

func TestFind_Classification(t *testing.T) {
	s := unitSquare(t)
	inside := s.FindFace(geom.Pt(0.5, 0.5))

	tests := []struct {
		name string
		p    geom.Point
		kind subdiv.ElementKind
	}{
		{"near corner", geom.Pt(1e-7, -1e-7), subdiv.ElementVertex},
		{"on bottom edge", geom.Pt(0.5, 1e-7), subdiv.ElementEdge},
		{"interior", geom.Pt(0.5, 0.5), subdiv.ElementFace},
		{"exterior", geom.Pt(3, 3), subdiv.ElementFace},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			el := s.Find(tc.p, 1e-6)
			assert.Equal(t, tc.kind, el.Kind)
		})
	}

	assert.Equal(t, geom.Pt(0, 0), s.Find(geom.Pt(1e-7, -1e-7), 1e-6).Vertex)
	assert.Equal(t, inside, s.Find(geom.Pt(0.5, 0.5), 1e-6).Face)
	assert.Equal(t, subdiv.UnboundedFace, s.Find(geom.Pt(3, 3), 1e-6).Face)
}

func TestFindNearestEdge(t *testing.T) {
	s := unitSquare(t)
	k, d := s.FindNearestEdge(geom.Pt(0.5, -2))
	require.NotEqual(t, subdiv.NoEdge, k)
	assert.InDelta(t, 2.0, d, 1e-12)
	ln, err := s.EdgeLine(k)
	require.NoError(t, err)
	assert.Zero(t, ln.Start.Y, "the bottom edge is nearest")
	assert.Zero(t, ln.End.Y)

	empty, err := subdiv.New(0)
	require.NoError(t, err)
	k, _ = empty.FindNearestEdge(geom.Pt(0, 0))
	assert.Equal(t, subdiv.NoEdge, k)
}

func TestFindNearestEdgeOnFace(t *testing.T) {
	s, err := subdiv.FromPolygons([]geom.Polygon{
		square(0, 0, 1),
		square(5, 0, 1),
	}, 0)
	require.NoError(t, err)
	right := s.FindFace(geom.Pt(5.5, 0.5))

	// Globally the nearest edge belongs to the left square, but the
	// face-restricted search must stay on the right one.
	k, d, err := s.FindNearestEdgeOnFace(right, geom.Pt(2, 0.5))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-12)
	ln, err := s.EdgeLine(k)
	require.NoError(t, err)
	assert.Equal(t, 5.0, ln.Start.X)

	_, _, err = s.FindNearestEdgeOnFace(99, geom.Pt(0, 0))
	assert.ErrorIs(t, err, subdiv.ErrUnknownFace)
}

func TestFindFacePolygon(t *testing.T) {
	s, err := subdiv.FromPolygons([]geom.Polygon{
		square(0, 0, 1),
		square(1, 0, 1),
	}, 0)
	require.NoError(t, err)
	left := s.FindFace(geom.Pt(0.5, 0.5))
	right := s.FindFace(geom.Pt(1.5, 0.5))

	got, err := s.FindFacePolygon(square(0, 0, 1), true)
	require.NoError(t, err)
	assert.Equal(t, left, got)

	// Any rotation and either orientation of the ring name the same face.
	rotated := geom.Polygon{geom.Pt(2, 1), geom.Pt(1, 1), geom.Pt(1, 0), geom.Pt(2, 0)}
	got, err = s.FindFacePolygon(rotated, true)
	require.NoError(t, err)
	assert.Equal(t, right, got)

	_, err = s.FindFacePolygon(square(5, 5, 1), true)
	assert.ErrorIs(t, err, subdiv.ErrNoMatch)

	// A ring tracing existing edges but no face fails verification.
	bogus := geom.Polygon{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1)}
	_, err = s.FindFacePolygon(bogus, true)
	assert.ErrorIs(t, err, subdiv.ErrNoMatch)

	_, err = s.FindFacePolygon(geom.Polygon{geom.Pt(0, 0)}, true)
	assert.ErrorIs(t, err, geom.ErrPolygonSize)
}

func TestFindFace_HoleResolution(t *testing.T) {
	s, err := subdiv.FromPolygons([]geom.Polygon{
		square(0, 0, 10),
		square(4, 4, 2),
	}, 0)
	require.NoError(t, err)

	big := s.FindFace(geom.Pt(1, 1))
	small := s.FindFace(geom.Pt(5, 5))
	assert.NotEqual(t, big, small)
	assert.NotEqual(t, subdiv.UnboundedFace, big)
	assert.NotEqual(t, subdiv.UnboundedFace, small)
	// Left of the hole but inside the big square.
	assert.Equal(t, big, s.FindFace(geom.Pt(2, 5)))
	assert.Equal(t, subdiv.UnboundedFace, s.FindFace(geom.Pt(11, 5)))
}
