package subdiv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/subdiv"
)

func TestIntersection_NilInput(t *testing.T) {
	s := unitSquare(t)
	_, _, _, err := subdiv.Intersection(nil, s)
	assert.ErrorIs(t, err, subdiv.ErrNilSubdivision)
	_, _, _, err = subdiv.Intersection(s, nil)
	assert.ErrorIs(t, err, subdiv.ErrNilSubdivision)
}

func TestIntersection_OverlappingSquares(t *testing.T) {
	a, err := subdiv.FromPolygons([]geom.Polygon{square(0, 0, 10)}, 1e-9)
	require.NoError(t, err)
	b, err := subdiv.FromPolygons([]geom.Polygon{square(5, 5, 10)}, 1e-9)
	require.NoError(t, err)
	aIn := a.FindFace(geom.Pt(1, 1))
	bIn := b.FindFace(geom.Pt(12, 12))

	r, keysA, keysB, err := subdiv.Intersection(a, b)
	require.NoError(t, err)

	assert.Equal(t, 4, r.FaceCount(), "a-only, b-only, overlap and the unbounded face")
	require.Len(t, keysA, r.FaceCount())
	require.Len(t, keysB, r.FaceCount())
	mustValid(t, r)

	// Face attribution, checked through sample points.
	onlyA := r.FindFace(geom.Pt(2, 2))
	onlyB := r.FindFace(geom.Pt(12, 12))
	both := r.FindFace(geom.Pt(7, 7))
	assert.Equal(t, aIn, keysA[onlyA])
	assert.Equal(t, subdiv.UnboundedFace, keysB[onlyA])
	assert.Equal(t, subdiv.UnboundedFace, keysA[onlyB])
	assert.Equal(t, bIn, keysB[onlyB])
	assert.Equal(t, aIn, keysA[both])
	assert.Equal(t, bIn, keysB[both])
	assert.Equal(t, subdiv.UnboundedFace, keysA[subdiv.UnboundedFace])
	assert.Equal(t, subdiv.UnboundedFace, keysB[subdiv.UnboundedFace])

	// The corners of the overlap exist as split vertices.
	assert.True(t, r.Contains(geom.Pt(10, 5)))
	assert.True(t, r.Contains(geom.Pt(5, 10)))

	// The inputs stay untouched.
	assert.Equal(t, 8, a.EdgeCount())
	assert.Equal(t, 8, b.EdgeCount())
}

func TestIntersection_DisjointSquares(t *testing.T) {
	a, err := subdiv.FromPolygons([]geom.Polygon{square(0, 0, 1)}, 1e-9)
	require.NoError(t, err)
	b, err := subdiv.FromPolygons([]geom.Polygon{square(5, 5, 1)}, 1e-9)
	require.NoError(t, err)

	r, keysA, keysB, err := subdiv.Intersection(a, b)
	require.NoError(t, err)

	assert.Equal(t, 3, r.FaceCount())
	fa := r.FindFace(geom.Pt(0.5, 0.5))
	fb := r.FindFace(geom.Pt(5.5, 5.5))
	assert.NotEqual(t, subdiv.UnboundedFace, keysA[fa])
	assert.Equal(t, subdiv.UnboundedFace, keysB[fa])
	assert.Equal(t, subdiv.UnboundedFace, keysA[fb])
	assert.NotEqual(t, subdiv.UnboundedFace, keysB[fb])
	mustValid(t, r)
}

func TestIntersection_IdenticalSquares(t *testing.T) {
	a, err := subdiv.FromPolygons([]geom.Polygon{square(0, 0, 1)}, 1e-9)
	require.NoError(t, err)
	b, err := subdiv.FromPolygons([]geom.Polygon{square(0, 0, 1)}, 1e-9)
	require.NoError(t, err)

	r, keysA, keysB, err := subdiv.Intersection(a, b)
	require.NoError(t, err)

	assert.Equal(t, 2, r.FaceCount(), "coincident edges merge instead of duplicating")
	assert.Equal(t, 8, r.EdgeCount())
	f := r.FindFace(geom.Pt(0.5, 0.5))
	assert.NotEqual(t, subdiv.UnboundedFace, keysA[f])
	assert.NotEqual(t, subdiv.UnboundedFace, keysB[f])
	mustValid(t, r)
}

func TestIntersection_SharedEdgeSquares(t *testing.T) {
	// The squares touch along x=1; the shared border carries labels from
	// both inputs without splitting anything.
	a, err := subdiv.FromPolygons([]geom.Polygon{square(0, 0, 1)}, 1e-9)
	require.NoError(t, err)
	b, err := subdiv.FromPolygons([]geom.Polygon{square(1, 0, 1)}, 1e-9)
	require.NoError(t, err)

	r, keysA, keysB, err := subdiv.Intersection(a, b)
	require.NoError(t, err)

	assert.Equal(t, 3, r.FaceCount())
	assert.Equal(t, 14, r.EdgeCount())
	fa := r.FindFace(geom.Pt(0.5, 0.5))
	fb := r.FindFace(geom.Pt(1.5, 0.5))
	assert.NotEqual(t, subdiv.UnboundedFace, keysA[fa])
	assert.Equal(t, subdiv.UnboundedFace, keysB[fa])
	assert.NotEqual(t, subdiv.UnboundedFace, keysB[fb])
	assert.Equal(t, subdiv.UnboundedFace, keysA[fb])
	mustValid(t, r)
}

func TestIntersection_CrossingWalls(t *testing.T) {
	// Two bare walls crossing in the open plane: the overlay splits both at
	// the crossing and produces no bounded face.
	a, err := subdiv.New(1e-9)
	require.NoError(t, err)
	_, err = a.AddEdge(geom.Pt(-1, 0), geom.Pt(1, 0))
	require.NoError(t, err)
	b, err := subdiv.New(1e-9)
	require.NoError(t, err)
	_, err = b.AddEdge(geom.Pt(0, -1), geom.Pt(0, 1))
	require.NoError(t, err)

	r, keysA, keysB, err := subdiv.Intersection(a, b)
	require.NoError(t, err)

	assert.Equal(t, 1, r.FaceCount())
	assert.Equal(t, 8, r.EdgeCount(), "both walls split at the crossing")
	assert.True(t, r.Contains(geom.Pt(0, 0)))
	assert.Equal(t, []int{subdiv.UnboundedFace}, keysA)
	assert.Equal(t, []int{subdiv.UnboundedFace}, keysB)
	mustValid(t, r)
}

func TestIntersection_PartialEdgeOverlap(t *testing.T) {
	// b's bottom side runs along a stretch of a's bottom side: the overlay
	// splits the shared carrier into pieces and merges the coincident one.
	a, err := subdiv.FromPolygons([]geom.Polygon{square(0, 0, 4)}, 1e-9)
	require.NoError(t, err)
	b, err := subdiv.FromPolygons([]geom.Polygon{square(1, 0, 2)}, 1e-9)
	require.NoError(t, err)

	r, keysA, keysB, err := subdiv.Intersection(a, b)
	require.NoError(t, err)

	assert.Equal(t, 3, r.FaceCount())
	inner := r.FindFace(geom.Pt(2, 1))
	outer := r.FindFace(geom.Pt(0.5, 2))
	assert.NotEqual(t, inner, outer)
	assert.Equal(t, keysA[inner], keysA[outer], "both pieces lie in a's square")
	assert.NotEqual(t, subdiv.UnboundedFace, keysB[inner])
	assert.Equal(t, subdiv.UnboundedFace, keysB[outer])
	assert.True(t, r.Contains(geom.Pt(1, 0)))
	assert.True(t, r.Contains(geom.Pt(3, 0)))
	mustValid(t, r)
}
