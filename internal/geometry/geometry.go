package geometry

import "math"

// Distance returns the Euclidean distance between two points.
func Distance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AlmostEqual reports whether two points are within eps of each other.
func AlmostEqual(p, q Point, eps float64) bool {
	return Distance(p, q) <= eps
}

// IsFinite reports whether both coordinates are finite numbers.
// Segments with NaN or infinite endpoints are rejected before they
// reach the graph builder.
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
