package facemap

import (
	"errors"

	"github.com/katalvlaran/planar/geom"
)

// Sentinel errors for facemap operations.
var (
	// ErrNilSubdivision indicates a nil source subdivision.
	ErrNilSubdivision = errors.New("facemap: subdivision is nil")
	// ErrCellSize indicates a non-positive grid cell size.
	ErrCellSize = errors.New("facemap: cell size must be positive")
	// ErrUnknownID indicates a ring id that was never bound.
	ErrUnknownID = errors.New("facemap: ring id not bound")
)

// GridOptions contains tunable parameters for a Grid.
type GridOptions struct {
	// CellSize is the side length of one square cell in world units.
	CellSize float64
	// Origin is the world position of the corner shared by cells (0,0),
	// (-1,0), (0,-1) and (-1,-1).
	Origin geom.Point
}

// DefaultGridOptions returns a GridOptions with default settings:
// CellSize=1, Origin=(0,0).
func DefaultGridOptions() GridOptions {
	return GridOptions{CellSize: 1}
}

// RingMapOptions contains tunable parameters for a RingMap.
type RingMapOptions struct {
	// Verify demands that a bound ring traces a face boundary exactly,
	// vertex for vertex. When false a ring resolves through its first two
	// vertices only, which accepts rings that share an edge with the face
	// but differ elsewhere.
	Verify bool
}

// DefaultRingMapOptions returns a RingMapOptions with default settings:
// Verify=true.
func DefaultRingMapOptions() RingMapOptions {
	return RingMapOptions{Verify: true}
}
