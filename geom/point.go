package geom

import (
	"fmt"
	"math"
)

// Point is a position (or free vector) in the plane.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String renders the point as "(x, y)" for diagnostics.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Eq reports exact coordinate equality.
func (p Point) Eq(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// EqEps reports whether both coordinates agree within eps.
func (p Point) EqEps(o Point, eps float64) bool {
	return math.Abs(p.X-o.X) <= eps && math.Abs(p.Y-o.Y) <= eps
}

// Less is the lexicographic order used across the module:
// ascending y first, then ascending x.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Add returns p+o, treating o as a vector.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the vector p−o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns the vector p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Cross returns the 2-D cross product p×o of two vectors.
// Positive when o lies counterclockwise of p.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (p Point) DistanceSquared(o Point) float64 {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Midpoint returns the midpoint of p and o.
func (p Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (p.X + o.X), Y: 0.5 * (p.Y + o.Y)}
}

// Orientation returns the signed area of the triangle (a, b, c), doubled.
// Positive means c lies left of the directed line a→b (a left turn at b),
// negative a right turn, zero collinear.
func Orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Angle returns the angle of the vector p in radians, in (−π, π].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// ClockwiseAngle returns the clockwise rotation from vector p to vector o,
// normalized into (0, 2π]. A full turn, not zero, is reported when the
// vectors point the same way, so a strict "first edge clockwise of p"
// selection never picks p's own direction.
func (p Point) ClockwiseAngle(o Point) float64 {
	a := p.Angle() - o.Angle()
	for a <= 0 {
		a += 2 * math.Pi
	}
	for a > 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
