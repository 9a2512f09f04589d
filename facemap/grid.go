package facemap

import (
	"math"
	"sort"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/subdiv"
)

// Grid binds uniform grid cells to subdivision faces. A cell is bound to
// the face containing its center; cells straddling an edge still resolve to
// exactly one face. The Grid is a cache: bindings survive subdivision edits
// unchanged until Rebuild.
type Grid struct {
	src   *subdiv.Subdivision
	opts  GridOptions
	bound map[[2]int]int
}

// NewGrid creates an empty grid over s. No cells are bound yet; use Bind or
// BindAll.
func NewGrid(s *subdiv.Subdivision, opts GridOptions) (*Grid, error) {
	if s == nil {
		return nil, ErrNilSubdivision
	}
	if opts.CellSize <= 0 {
		return nil, ErrCellSize
	}
	return &Grid{src: s, opts: opts, bound: make(map[[2]int]int)}, nil
}

// CellAt returns the coordinates of the cell containing p. Points on a cell
// border belong to the cell to their upper right.
func (g *Grid) CellAt(p geom.Point) (int, int) {
	return int(math.Floor((p.X - g.opts.Origin.X) / g.opts.CellSize)),
		int(math.Floor((p.Y - g.opts.Origin.Y) / g.opts.CellSize))
}

// Center returns the world position of the center of cell (cx, cy).
func (g *Grid) Center(cx, cy int) geom.Point {
	return geom.Pt(
		g.opts.Origin.X+(float64(cx)+0.5)*g.opts.CellSize,
		g.opts.Origin.Y+(float64(cy)+0.5)*g.opts.CellSize,
	)
}

// Ring returns the boundary square of cell (cx, cy), counterclockwise.
func (g *Grid) Ring(cx, cy int) geom.Polygon {
	x := g.opts.Origin.X + float64(cx)*g.opts.CellSize
	y := g.opts.Origin.Y + float64(cy)*g.opts.CellSize
	c := g.opts.CellSize
	return geom.Polygon{
		geom.Pt(x, y), geom.Pt(x+c, y), geom.Pt(x+c, y+c), geom.Pt(x, y+c),
	}
}

// Bind resolves cell (cx, cy) against the subdivision and stores the
// binding. Rebinding an already bound cell refreshes it.
func (g *Grid) Bind(cx, cy int) int {
	f := g.src.FindFace(g.Center(cx, cy))
	g.bound[[2]int{cx, cy}] = f
	return f
}

// BindAll binds every cell whose center could lie in a bounded face: the
// cells covering the bounding box of the subdivision's vertices. Returns
// the number of cells bound.
func (g *Grid) BindAll() int {
	vs := g.src.Vertices()
	if len(vs) == 0 {
		return 0
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range vs {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	x0, y0 := g.CellAt(geom.Pt(minX, minY))
	x1, y1 := g.CellAt(geom.Pt(maxX, maxY))
	n := 0
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			g.Bind(cx, cy)
			n++
		}
	}
	return n
}

// Face returns the bound face key of cell (cx, cy), or false when the cell
// was never bound.
func (g *Grid) Face(cx, cy int) (int, bool) {
	f, ok := g.bound[[2]int{cx, cy}]
	return f, ok
}

// FaceAt is the composition of CellAt and Face.
func (g *Grid) FaceAt(p geom.Point) (int, bool) {
	cx, cy := g.CellAt(p)
	return g.Face(cx, cy)
}

// Cells returns the coordinates of all bound cells, sorted by y then x.
func (g *Grid) Cells() [][2]int {
	out := make([][2]int, 0, len(g.bound))
	for c := range g.bound {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][1] != out[j][1] {
			return out[i][1] < out[j][1]
		}
		return out[i][0] < out[j][0]
	})
	return out
}

// Rebuild re-resolves every bound cell against the subdivision's current
// state.
func (g *Grid) Rebuild() {
	for c := range g.bound {
		g.bound[c] = g.src.FindFace(g.Center(c[0], c[1]))
	}
}
