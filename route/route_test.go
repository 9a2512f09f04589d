package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/route"
	"github.com/katalvlaran/planar/subdiv"
)

func square(x, y, side float64) geom.Polygon {
	return geom.Polygon{
		geom.Pt(x, y),
		geom.Pt(x+side, y),
		geom.Pt(x+side, y+side),
		geom.Pt(x, y+side),
	}
}

func twoSquares(t *testing.T) *subdiv.Subdivision {
	t.Helper()
	s, err := subdiv.FromPolygons([]geom.Polygon{
		square(0, 0, 2),
		square(2, 0, 2),
	}, 1e-9)
	require.NoError(t, err)
	return s
}

func TestShortestPath_DirectEdge(t *testing.T) {
	s := twoSquares(t)
	p, err := route.ShortestPath[geom.Point](s, geom.Pt(0, 0), geom.Pt(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(2, 0)}, p.Nodes)
	assert.InDelta(t, 2.0, p.Length, 1e-12)
}

func TestShortestPath_AcrossSquares(t *testing.T) {
	s := twoSquares(t)
	p, err := route.ShortestPath[geom.Point](s, geom.Pt(0, 0), geom.Pt(4, 2))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, p.Length, 1e-12)
	require.NotEmpty(t, p.Nodes)
	assert.Equal(t, geom.Pt(0, 0), p.Nodes[0])
	assert.Equal(t, geom.Pt(4, 2), p.Nodes[len(p.Nodes)-1])
	assert.Len(t, p.Nodes, 4, "three hops of length 2 each")
}

func TestShortestPath_SelfRoute(t *testing.T) {
	s := twoSquares(t)
	p, err := route.ShortestPath[geom.Point](s, geom.Pt(2, 2), geom.Pt(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(2, 2)}, p.Nodes)
	assert.Zero(t, p.Length)
}

func TestShortestPath_Errors(t *testing.T) {
	s := twoSquares(t)

	_, err := route.ShortestPath[geom.Point](nil, geom.Pt(0, 0), geom.Pt(2, 0))
	assert.ErrorIs(t, err, route.ErrNilGraph)

	_, err = route.ShortestPath[geom.Point](s, geom.Pt(9, 9), geom.Pt(2, 0))
	assert.ErrorIs(t, err, route.ErrUnknownNode)

	_, err = route.ShortestPath[geom.Point](s, geom.Pt(0, 0), geom.Pt(2, 0), route.WithMaxDistance(-1))
	assert.ErrorIs(t, err, route.ErrMaxDistance)
}

func TestShortestPath_DisconnectedComponents(t *testing.T) {
	s, err := subdiv.FromPolygons([]geom.Polygon{
		square(0, 0, 1),
		square(5, 5, 1),
	}, 1e-9)
	require.NoError(t, err)

	_, err = route.ShortestPath[geom.Point](s, geom.Pt(0, 0), geom.Pt(5, 5))
	assert.ErrorIs(t, err, route.ErrNoRoute)
}

func TestShortestPath_MaxDistanceCutoff(t *testing.T) {
	s := twoSquares(t)

	_, err := route.ShortestPath[geom.Point](s, geom.Pt(0, 0), geom.Pt(4, 2), route.WithMaxDistance(4))
	assert.ErrorIs(t, err, route.ErrNoRoute)

	p, err := route.ShortestPath[geom.Point](s, geom.Pt(0, 0), geom.Pt(4, 2), route.WithMaxDistance(6))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, p.Length, 1e-12)
}

func TestNearestRoute_SnapsEndpoints(t *testing.T) {
	s := twoSquares(t)
	p, err := route.NearestRoute[geom.Point](s, geom.Pt(-0.3, 0.2), geom.Pt(2.2, -0.1))
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(0, 0), p.Nodes[0])
	assert.Equal(t, geom.Pt(2, 0), p.Nodes[len(p.Nodes)-1])
	assert.InDelta(t, 2.0, p.Length, 1e-12)

	empty, err := subdiv.New(0)
	require.NoError(t, err)
	_, err = route.NearestRoute[geom.Point](empty, geom.Pt(0, 0), geom.Pt(1, 1))
	assert.ErrorIs(t, err, route.ErrUnknownNode)
}
