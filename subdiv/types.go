// Edge, Face and Element types, sentinel errors and result records.
package subdiv

import (
	"errors"

	"github.com/katalvlaran/planar/geom"
)

// Sentinel errors for subdivision operations. Structural conflicts are
// routine outcomes of speculative edits; callers are expected to test for
// them with errors.Is rather than treat them as exceptional.
var (
	// ErrNilSubdivision is returned when a nil subdivision pointer is passed.
	ErrNilSubdivision = errors.New("subdiv: subdivision is nil")

	// ErrNegativeEpsilon is returned for a negative coordinate tolerance.
	ErrNegativeEpsilon = errors.New("subdiv: epsilon must be non-negative")

	// ErrDegenerateEdge is returned when a segment's endpoints coincide.
	ErrDegenerateEdge = errors.New("subdiv: degenerate zero-length edge")

	// ErrDuplicateEdge is returned by FromLines when two input segments
	// resolve to the same vertex pair.
	ErrDuplicateEdge = errors.New("subdiv: duplicate input edge")

	// ErrEdgeExists is returned by AddEdge when the endpoints are already
	// connected.
	ErrEdgeExists = errors.New("subdiv: edge already exists")

	// ErrEdgeCrossing is returned when an inserted or re-aimed segment would
	// properly intersect an existing edge.
	ErrEdgeCrossing = errors.New("subdiv: segment crosses an existing edge")

	// ErrFaceMismatch is returned by AddEdge when the two endpoints resolve
	// to different containing faces.
	ErrFaceMismatch = errors.New("subdiv: endpoints resolve to different faces")

	// ErrUnknownEdge is returned when an edge key does not exist.
	ErrUnknownEdge = errors.New("subdiv: edge not found")

	// ErrUnknownFace is returned when a face key does not exist.
	ErrUnknownFace = errors.New("subdiv: face not found")

	// ErrUnknownVertex is returned when a point is not a vertex.
	ErrUnknownVertex = errors.New("subdiv: vertex not found")

	// ErrPointOffEdge is returned by SplitEdge when the split point does not
	// lie on the edge within epsilon.
	ErrPointOffEdge = errors.New("subdiv: point not on edge")

	// ErrVertexExists is returned by MoveVertex when the target position is
	// already occupied by a distinct vertex.
	ErrVertexExists = errors.New("subdiv: vertex already exists")

	// ErrVertexDegree is returned by RemoveVertex when the vertex does not
	// have exactly two incident full edges.
	ErrVertexDegree = errors.New("subdiv: vertex degree must be exactly 2")

	// ErrVertexChain is returned by RemoveVertex when the merged replacement
	// edge is not angularly compatible with the neighboring vertex chains.
	ErrVertexChain = errors.New("subdiv: replacement edge breaks vertex chain")

	// ErrNoMatch is returned by FindFacePolygon when no face matches the
	// given boundary.
	ErrNoMatch = errors.New("subdiv: no face matches the boundary")
)

// Key sentinels.
const (
	// UnboundedFace is the reserved key of the single unbounded face.
	UnboundedFace = 0

	// NoEdge marks an absent half-edge reference.
	NoEdge = -1

	// NoFace marks an absent face reference.
	NoFace = -1
)

// Edge is one directed half of a full edge. Its destination is the origin of
// its twin. All cross-references are integer keys into the owning
// subdivision's catalogs, never pointers, so a deep copy is a plain clone of
// the catalogs.
type Edge struct {
	// Key uniquely identifies this half-edge.
	Key int

	// Origin is the vertex this half-edge leaves from.
	Origin geom.Point

	// Face is the key of the face lying to the left of this half-edge.
	Face int

	// Next and Prev link the boundary cycle of Face through this half-edge.
	Next, Prev int

	// Twin is the opposite-direction half of the same full edge.
	Twin int
}

// Face is one region of the plane. The face with key UnboundedFace is the
// single unbounded region and has no outer boundary.
type Face struct {
	// Key uniquely identifies this face.
	Key int

	// Outer is one half-edge on the outer boundary cycle, or NoEdge for the
	// unbounded face.
	Outer int

	// Inner holds one half-edge per disjoint inner boundary cycle (holes and
	// zero-area walls lying inside the face).
	Inner []int
}

// ElementKind tags the variant held by an Element.
type ElementKind int

const (
	// ElementNone is the zero Element.
	ElementNone ElementKind = iota
	// ElementVertex identifies a subdivision vertex.
	ElementVertex
	// ElementEdge identifies a half-edge.
	ElementEdge
	// ElementFace identifies a face.
	ElementFace
)

// Element is the tagged sum of the three things a point can resolve to:
// a vertex it coincides with, an edge whose interior it lies on, or the face
// strictly containing it. Exactly the field matching Kind is meaningful.
type Element struct {
	Kind   ElementKind
	Vertex geom.Point
	Edge   int
	Face   int
}

// VertexElement wraps a vertex as an Element.
func VertexElement(p geom.Point) Element {
	return Element{Kind: ElementVertex, Vertex: p}
}

// EdgeElement wraps a half-edge key as an Element.
func EdgeElement(key int) Element {
	return Element{Kind: ElementEdge, Edge: key, Face: NoFace}
}

// FaceElement wraps a face key as an Element.
func FaceElement(key int) Element {
	return Element{Kind: ElementFace, Edge: NoEdge, Face: key}
}

// AddEdgeResult reports the structural effect of a successful AddEdge.
type AddEdgeResult struct {
	// Edge is the key of the created half-edge directed start→end.
	Edge int
	// Face is the key of the face the edge was inserted into.
	Face int
	// NewFace is the key of the face created by a cycle split, or NoFace.
	NewFace int
}

// RemoveEdgeResult reports the structural effect of a successful RemoveEdge.
type RemoveEdgeResult struct {
	// Face is the key of the surviving face whose boundary changed.
	Face int
	// RemovedFace is the key of the face absorbed by the removal, or NoFace.
	RemovedFace int
}

// DefaultEpsilon is the coordinate tolerance used when none is supplied.
const DefaultEpsilon = 1e-9
