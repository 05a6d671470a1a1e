package roomgraph

import "github.com/planmetric/roomplan-engine/internal/geometry"

// areaEpsilon rejects degenerate near-zero-area loops, such as the
// bounce around a dangling wall stub.
const areaEpsilon = 1e-6

// signedArea computes the shoelace area of the polygon. The sign
// encodes winding: positive for counter-clockwise.
func signedArea(poly []geometry.Point) float64 {
	if len(poly) < 3 {
		return 0
	}

	area := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		p := poly[i]
		q := poly[(i+1)%n]
		area += p.X*q.Y - q.X*p.Y
	}
	return 0.5 * area
}

// centroid computes the standard area-weighted polygon centroid. The
// formula divides by 6*signedArea, so it needs the signed area, never
// its absolute value.
func centroid(poly []geometry.Point, signedArea float64) geometry.Point {
	if len(poly) < 3 {
		return geometry.Point{}
	}

	factor := 1.0 / (6.0 * signedArea)
	var cx, cy float64

	n := len(poly)
	for i := 0; i < n; i++ {
		p := poly[i]
		q := poly[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}

	return geometry.Point{X: cx * factor, Y: cy * factor}
}

// Contains reports whether the point lies inside the room's polygon,
// using the even-odd ray casting rule. Points exactly on the boundary
// may land on either side.
func (r Room) Contains(p geometry.Point) bool {
	poly := r.Polygon
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			x := pi.X + (p.Y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// BoundingBox returns the axis-aligned bounds of the room's polygon.
func (r Room) BoundingBox() (min, max geometry.Point) {
	if len(r.Polygon) == 0 {
		return geometry.Point{}, geometry.Point{}
	}

	min, max = r.Polygon[0], r.Polygon[0]
	for _, p := range r.Polygon[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}
