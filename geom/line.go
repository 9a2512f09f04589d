package geom

import "math"

// Line is a directed straight segment from Start to End.
type Line struct {
	Start, End Point
}

// Ln returns the segment a→b.
func Ln(a, b Point) Line {
	return Line{Start: a, End: b}
}

// Vector returns End−Start.
func (l Line) Vector() Point {
	return l.End.Sub(l.Start)
}

// Length returns the euclidean length of the segment.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// LengthSquared returns the squared length of the segment.
func (l Line) LengthSquared() float64 {
	return l.Start.DistanceSquared(l.End)
}

// Midpoint returns the segment midpoint.
func (l Line) Midpoint() Point {
	return l.Start.Midpoint(l.End)
}

// Reverse returns the segment with its direction flipped.
func (l Line) Reverse() Line {
	return Line{Start: l.End, End: l.Start}
}

// Side returns the cross product locating p relative to the directed line
// through the segment: positive left, negative right, zero on the line.
func (l Line) Side(p Point) float64 {
	return Orientation(l.Start, l.End, p)
}

// ClosestTo returns the point on the segment nearest to p.
func (l Line) ClosestTo(p Point) Point {
	d := l.Vector()
	len2 := d.Dot(d)
	if len2 == 0 {
		return l.Start
	}
	t := p.Sub(l.Start).Dot(d) / len2
	if t <= 0 {
		return l.Start
	}
	if t >= 1 {
		return l.End
	}
	return l.Start.Add(d.Scale(t))
}

// DistanceTo returns the distance from p to the segment.
func (l Line) DistanceTo(p Point) float64 {
	return p.Distance(l.ClosestTo(p))
}

// Contains reports whether p lies on the segment within eps.
func (l Line) Contains(p Point, eps float64) bool {
	return l.DistanceTo(p) <= eps
}

// IntersectionKind classifies the relative position of two segments' carrier
// lines.
type IntersectionKind int

const (
	// Parallel carrier lines that do not coincide; the segments are disjoint.
	Parallel IntersectionKind = iota
	// Collinear carrier lines; the segments may overlap along a shared stretch.
	Collinear
	// Divergent carrier lines meet in a single point.
	Divergent
)

// Intersection describes how two segments relate. For Divergent lines, Point
// is the carrier-line crossing and SA/SB are the parameters of that crossing
// along each segment (0 at Start, 1 at End); whether the crossing lies on the
// segments is the caller's question to ask of SA/SB. For Parallel and
// Collinear kinds Point, SA and SB are meaningless.
type Intersection struct {
	Kind   IntersectionKind
	Point  Point
	SA, SB float64
}

// Intersect classifies the pair (l, m) and, for divergent carrier lines,
// computes the crossing point and parameters. Collinearity is decided with
// the given eps scaled by the segment lengths, so long nearly-parallel
// segments do not flip classification on rounding noise.
func (l Line) Intersect(m Line, eps float64) Intersection {
	d1 := l.Vector()
	d2 := m.Vector()
	denom := d1.Cross(d2)

	// |d1×d2| = |d1||d2| sin θ, so this treats carrier lines within an
	// eps-sized angular sliver of each other as parallel.
	n1 := math.Max(math.Sqrt(d1.Dot(d1)), eps)
	n2 := math.Max(math.Sqrt(d2.Dot(d2)), eps)
	if math.Abs(denom) <= eps*n1*n2 {
		// Parallel; collinear iff m's endpoints sit on l's carrier line.
		if math.Abs(d1.Cross(m.Start.Sub(l.Start))) <= eps*math.Max(n1, 1) &&
			math.Abs(d1.Cross(m.End.Sub(l.Start))) <= eps*math.Max(n1, 1) {
			return Intersection{Kind: Collinear}
		}
		return Intersection{Kind: Parallel}
	}

	w := m.Start.Sub(l.Start)
	sa := w.Cross(d2) / denom
	sb := w.Cross(d1) / denom
	return Intersection{
		Kind:  Divergent,
		Point: l.Start.Add(d1.Scale(sa)),
		SA:    sa,
		SB:    sb,
	}
}

// Crosses reports whether the two segments intersect at any point that is not
// a shared endpoint: interior-interior crossings, an endpoint of one segment
// in the interior of the other, and collinear overlap longer than a point all
// count. Two segments that merely meet at coincident endpoints do not.
func (l Line) Crosses(m Line, eps float64) bool {
	x := l.Intersect(m, eps)
	switch x.Kind {
	case Parallel:
		return false
	case Collinear:
		return l.overlapsCollinear(m, eps)
	}

	// Parameter tolerance proportional to eps over each segment's length.
	ta := paramEps(l, eps)
	tb := paramEps(m, eps)
	if x.SA < -ta || x.SA > 1+ta || x.SB < -tb || x.SB > 1+tb {
		return false // crossing off one of the segments
	}
	aEnd := x.SA <= ta || x.SA >= 1-ta
	bEnd := x.SB <= tb || x.SB >= 1-tb
	return !(aEnd && bEnd) // endpoint-to-endpoint contact is a legal touch
}

// overlapsCollinear reports whether two collinear segments share more than a
// single point.
func (l Line) overlapsCollinear(m Line, eps float64) bool {
	d := l.Vector()
	len2 := d.Dot(d)
	if len2 == 0 {
		return m.Contains(l.Start, eps) && m.Start.Distance(m.End) > eps
	}
	t0 := m.Start.Sub(l.Start).Dot(d) / len2
	t1 := m.End.Sub(l.Start).Dot(d) / len2
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	tol := paramEps(l, eps)
	lo := math.Max(t0, 0)
	hi := math.Min(t1, 1)
	return hi-lo > tol
}

// paramEps converts a coordinate tolerance into a parameter tolerance for l.
func paramEps(l Line, eps float64) float64 {
	n := l.Length()
	if n == 0 {
		return 1
	}
	return eps / n
}

// Placement locates a collinear point relative to the directed segment.
type Placement int

const (
	// Before the Start endpoint.
	Before Placement = iota
	// AtStart coincides with the Start endpoint.
	AtStart
	// Between the two endpoints, strictly inside the segment.
	Between
	// AtEnd coincides with the End endpoint.
	AtEnd
	// After the End endpoint.
	After
)

// String names the placement for diagnostics.
func (pl Placement) String() string {
	switch pl {
	case Before:
		return "before"
	case AtStart:
		return "start"
	case Between:
		return "between"
	case AtEnd:
		return "end"
	case After:
		return "after"
	}
	return "invalid"
}

// Locate places p, assumed to lie on the segment's carrier line, relative to
// the segment's span. eps is a coordinate tolerance.
func (l Line) Locate(p Point, eps float64) Placement {
	d := l.Vector()
	len2 := d.Dot(d)
	if len2 == 0 {
		if p.EqEps(l.Start, eps) {
			return AtStart
		}
		return Before
	}
	t := p.Sub(l.Start).Dot(d) / len2
	tol := paramEps(l, eps)
	switch {
	case t < -tol:
		return Before
	case t <= tol:
		return AtStart
	case t < 1-tol:
		return Between
	case t <= 1+tol:
		return AtEnd
	default:
		return After
	}
}
