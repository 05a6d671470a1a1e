package geometry

// Point is a position in the plan's 2D coordinate space.
// Points are compared through Distance or AlmostEqual, never by ==,
// because inputs come from floating-point drawing coordinates.
type Point struct {
	X float64
	Y float64
}

// Segment is an undirected wall segment between two endpoints.
// The endpoints carry no ordering or connectivity guarantee.
type Segment struct {
	A Point
	B Point
}
