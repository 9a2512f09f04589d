package geom

import "errors"

// ErrPolygonSize indicates a polygon with fewer than three vertices.
var ErrPolygonSize = errors.New("geom: polygon needs at least 3 vertices")

// Polygon is a closed ring of vertices. The closing edge from the last
// vertex back to the first is implicit; the first vertex is not repeated.
type Polygon []Point

// Validate rejects rings that cannot bound an area.
func (pg Polygon) Validate() error {
	if len(pg) < 3 {
		return ErrPolygonSize
	}
	return nil
}

// SignedArea returns the shoelace area: positive for counterclockwise rings,
// negative for clockwise ones.
func (pg Polygon) SignedArea() float64 {
	var sum float64
	n := len(pg)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pg[i].X*pg[j].Y - pg[j].X*pg[i].Y
	}
	return sum / 2
}

// Area returns the absolute enclosed area.
func (pg Polygon) Area() float64 {
	a := pg.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// Contains reports whether p lies inside the ring, by even-odd ray casting.
// Points exactly on the boundary may land on either side; callers that care
// should test OnBoundary first.
func (pg Polygon) Contains(p Point) bool {
	inside := false
	n := len(pg)
	for i := 0; i < n; i++ {
		a, b := pg[i], pg[(i+1)%n]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue // edge does not straddle the horizontal through p
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if p.X < x {
			inside = !inside
		}
	}
	return inside
}

// OnBoundary reports whether p lies within eps of some ring edge.
func (pg Polygon) OnBoundary(p Point, eps float64) bool {
	n := len(pg)
	for i := 0; i < n; i++ {
		if Ln(pg[i], pg[(i+1)%n]).Contains(p, eps) {
			return true
		}
	}
	return false
}

// Reverse returns the ring with opposite winding.
func (pg Polygon) Reverse() Polygon {
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[len(pg)-1-i] = p
	}
	return out
}
