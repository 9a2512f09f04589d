package subdiv_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/subdiv"
)

func TestClone_Independent(t *testing.T) {
	s := unitSquare(t)
	require.NoError(t, s.SetWorldRegion(geom.Pt(0, 0), square(-1, -1, 2)))
	before := snap(s)

	c := s.Clone()
	_, err := c.AddEdge(geom.Pt(0, 0), geom.Pt(1, 1))
	require.NoError(t, err)
	require.NoError(t, c.MoveVertex(geom.Pt(0, 1), geom.Pt(-1, 2)))

	assert.Equal(t, before, snap(s), "mutating the clone leaves the original alone")
	assert.True(t, s.Contains(geom.Pt(0, 1)))
	assert.Equal(t, 3, c.FaceCount())
	mustValid(t, s)
	mustValid(t, c)
}

func TestClone_CarriesRegions(t *testing.T) {
	s := unitSquare(t)
	require.NoError(t, s.SetWorldRegion(geom.Pt(0, 0), square(-1, -1, 2)))

	c := s.Clone()
	got, ok := c.WorldRegion(geom.Pt(0, 0))
	require.True(t, ok)
	if diff := cmp.Diff(square(-1, -1, 2), got); diff != "" {
		t.Errorf("region mismatch (-want +got):\n%s", diff)
	}
}

func TestToPolygons_RoundTrip(t *testing.T) {
	rings := []geom.Polygon{
		square(0, 0, 1),
		square(1, 0, 1),
	}
	s, err := subdiv.FromPolygons(rings, 0)
	require.NoError(t, err)

	out := s.ToPolygons()
	require.Len(t, out, 2)

	back, err := subdiv.FromPolygons(out, 0)
	require.NoError(t, err)
	assert.Equal(t, s.FaceCount(), back.FaceCount())
	assert.Equal(t, s.EdgeCount(), back.EdgeCount())
	assert.Equal(t, s.VertexCount(), back.VertexCount())
	if diff := cmp.Diff(s.Vertices(), back.Vertices()); diff != "" {
		t.Errorf("vertex mismatch (-want +got):\n%s", diff)
	}
	mustValid(t, back)
}
