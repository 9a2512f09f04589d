package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/planar/geom"
)

const eps = 1e-9

func TestLine_ClosestTo(t *testing.T) {
	l := geom.Ln(geom.Pt(0, 0), geom.Pt(4, 0))
	tests := []struct {
		name string
		p    geom.Point
		want geom.Point
	}{
		{"projects inside", geom.Pt(1, 3), geom.Pt(1, 0)},
		{"clamps to start", geom.Pt(-2, 1), geom.Pt(0, 0)},
		{"clamps to end", geom.Pt(9, -1), geom.Pt(4, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.ClosestTo(tc.p); got != tc.want {
				t.Errorf("ClosestTo(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}

	deg := geom.Ln(geom.Pt(1, 1), geom.Pt(1, 1))
	if got := deg.ClosestTo(geom.Pt(5, 5)); got != geom.Pt(1, 1) {
		t.Errorf("degenerate ClosestTo = %v", got)
	}
}

func TestLine_DistanceTo(t *testing.T) {
	l := geom.Ln(geom.Pt(0, 0), geom.Pt(4, 0))
	if d := l.DistanceTo(geom.Pt(2, 3)); d != 3 {
		t.Errorf("DistanceTo above = %g, want 3", d)
	}
	if d := l.DistanceTo(geom.Pt(7, 4)); d != 5 {
		t.Errorf("DistanceTo past end = %g, want 5", d)
	}
	if !l.Contains(geom.Pt(2, 0), eps) {
		t.Error("point on segment should be contained")
	}
	if l.Contains(geom.Pt(5, 0), eps) {
		t.Error("point past the end should not be contained")
	}
}

func TestLine_Intersect(t *testing.T) {
	tests := []struct {
		name string
		l, m geom.Line
		kind geom.IntersectionKind
	}{
		{
			"divergent crossing",
			geom.Ln(geom.Pt(0, 0), geom.Pt(2, 2)),
			geom.Ln(geom.Pt(0, 2), geom.Pt(2, 0)),
			geom.Divergent,
		},
		{
			"parallel offset",
			geom.Ln(geom.Pt(0, 0), geom.Pt(1, 0)),
			geom.Ln(geom.Pt(0, 1), geom.Pt(1, 1)),
			geom.Parallel,
		},
		{
			"collinear disjoint",
			geom.Ln(geom.Pt(0, 0), geom.Pt(1, 0)),
			geom.Ln(geom.Pt(2, 0), geom.Pt(3, 0)),
			geom.Collinear,
		},
		{
			"perpendicular touch",
			geom.Ln(geom.Pt(0, 0), geom.Pt(2, 0)),
			geom.Ln(geom.Pt(1, 0), geom.Pt(1, 2)),
			geom.Divergent,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.l.Intersect(tc.m, eps); got.Kind != tc.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tc.kind)
			}
		})
	}

	x := geom.Ln(geom.Pt(0, 0), geom.Pt(2, 2)).Intersect(geom.Ln(geom.Pt(0, 2), geom.Pt(2, 0)), eps)
	if x.Point != geom.Pt(1, 1) {
		t.Errorf("crossing point = %v, want (1, 1)", x.Point)
	}
	if math.Abs(x.SA-0.5) > 1e-12 || math.Abs(x.SB-0.5) > 1e-12 {
		t.Errorf("parameters = (%g, %g), want (0.5, 0.5)", x.SA, x.SB)
	}
}

func TestLine_Crosses(t *testing.T) {
	tests := []struct {
		name string
		l, m geom.Line
		want bool
	}{
		{
			"proper crossing",
			geom.Ln(geom.Pt(0, 0), geom.Pt(2, 2)),
			geom.Ln(geom.Pt(0, 2), geom.Pt(2, 0)),
			true,
		},
		{
			"shared endpoint is legal",
			geom.Ln(geom.Pt(0, 0), geom.Pt(1, 0)),
			geom.Ln(geom.Pt(1, 0), geom.Pt(2, 1)),
			false,
		},
		{
			"T-touch counts",
			geom.Ln(geom.Pt(0, 0), geom.Pt(2, 0)),
			geom.Ln(geom.Pt(1, 0), geom.Pt(1, 1)),
			true,
		},
		{
			"disjoint",
			geom.Ln(geom.Pt(0, 0), geom.Pt(1, 0)),
			geom.Ln(geom.Pt(0, 1), geom.Pt(1, 2)),
			false,
		},
		{
			"collinear overlap",
			geom.Ln(geom.Pt(0, 0), geom.Pt(2, 0)),
			geom.Ln(geom.Pt(1, 0), geom.Pt(3, 0)),
			true,
		},
		{
			"collinear point touch",
			geom.Ln(geom.Pt(0, 0), geom.Pt(1, 0)),
			geom.Ln(geom.Pt(1, 0), geom.Pt(2, 0)),
			false,
		},
		{
			"crossing off segment",
			geom.Ln(geom.Pt(0, 0), geom.Pt(1, 1)),
			geom.Ln(geom.Pt(3, 0), geom.Pt(3, 5)),
			false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.l.Crosses(tc.m, eps); got != tc.want {
				t.Errorf("Crosses = %v, want %v", got, tc.want)
			}
			if got := tc.m.Crosses(tc.l, eps); got != tc.want {
				t.Errorf("Crosses (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLine_Locate(t *testing.T) {
	l := geom.Ln(geom.Pt(0, 0), geom.Pt(2, 0))
	tests := []struct {
		name string
		p    geom.Point
		want geom.Placement
	}{
		{"before", geom.Pt(-1, 0), geom.Before},
		{"at start", geom.Pt(0, 0), geom.AtStart},
		{"between", geom.Pt(1, 0), geom.Between},
		{"at end", geom.Pt(2, 0), geom.AtEnd},
		{"after", geom.Pt(3, 0), geom.After},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.Locate(tc.p, eps); got != tc.want {
				t.Errorf("Locate(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}
