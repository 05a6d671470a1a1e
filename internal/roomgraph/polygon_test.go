package roomgraph

import (
	"math"
	"testing"

	"github.com/planmetric/roomplan-engine/internal/geometry"
)

func TestSignedArea_Orientation(t *testing.T) {
	ccw := []geometry.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}}
	cw := []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}}

	if got := signedArea(ccw); !almostEqualValues(got, 2.0) {
		t.Errorf("Expected signed area 2.0 for CCW rectangle, got %f", got)
	}
	if got := signedArea(cw); !almostEqualValues(got, -2.0) {
		t.Errorf("Expected signed area -2.0 for CW rectangle, got %f", got)
	}
}

func TestSignedArea_TooFewVertices(t *testing.T) {
	if got := signedArea([]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}); got != 0 {
		t.Errorf("Expected 0 for a two-point polygon, got %f", got)
	}
}

func TestCentroid_Triangle(t *testing.T) {
	poly := []geometry.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}}

	c := centroid(poly, signedArea(poly))

	if !almostEqualValues(c.X, 1.0) || !almostEqualValues(c.Y, 1.0) {
		t.Errorf("Expected centroid (1,1), got (%f,%f)", c.X, c.Y)
	}
}

func TestCentroid_UsesSignedAreaForClockwisePolygon(t *testing.T) {
	// A clockwise polygon has a negative signed area; the two negatives
	// must cancel and still give the geometric center.
	poly := []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}}
	signed := signedArea(poly)
	if signed >= 0 {
		t.Fatalf("Test polygon should be clockwise, signed area %f", signed)
	}

	c := centroid(poly, signed)

	if !almostEqualValues(c.X, 1.0) || !almostEqualValues(c.Y, 1.0) {
		t.Errorf("Expected centroid (1,1), got (%f,%f)", c.X, c.Y)
	}
}

func TestRoomContains(t *testing.T) {
	room := Room{Polygon: []geometry.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}}

	if !room.Contains(geometry.Point{X: 1, Y: 1}) {
		t.Error("Expected (1,1) to be inside the room")
	}
	if room.Contains(geometry.Point{X: 3, Y: 1}) {
		t.Error("Expected (3,1) to be outside the room")
	}
	if room.Contains(geometry.Point{X: -0.5, Y: -0.5}) {
		t.Error("Expected (-0.5,-0.5) to be outside the room")
	}
}

func TestRoomBoundingBox(t *testing.T) {
	room := Room{Polygon: []geometry.Point{{X: 1, Y: 2}, {X: 4, Y: 0}, {X: 3, Y: 5}}}

	min, max := room.BoundingBox()

	if min.X != 1 || min.Y != 0 || max.X != 4 || max.Y != 5 {
		t.Errorf("Unexpected bounds: min (%f,%f) max (%f,%f)", min.X, min.Y, max.X, max.Y)
	}
}

func BenchmarkSignedArea(b *testing.B) {
	poly := make([]geometry.Point, 0, 64)
	for i := 0; i < 64; i++ {
		angle := 2 * math.Pi * float64(i) / 64
		poly = append(poly, geometry.Point{X: math.Cos(angle), Y: math.Sin(angle)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		signedArea(poly)
	}
}
