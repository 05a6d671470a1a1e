package spatial

import (
	"testing"

	"github.com/planmetric/roomplan-engine/internal/geometry"
	"github.com/planmetric/roomplan-engine/internal/roomgraph"
)

func testRooms() []roomgraph.Room {
	return []roomgraph.Room{
		{
			Polygon: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			Center:  geometry.Point{X: 0.5, Y: 0.5},
			Area:    1.0,
		},
		{
			Polygon: []geometry.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}},
			Center:  geometry.Point{X: 1.5, Y: 0.5},
			Area:    1.0,
		},
	}
}

func TestRoomIndex_Locate(t *testing.T) {
	// Arrange
	idx := NewRoomIndex(testRooms())

	// Act / Assert
	number, ok := idx.Locate(geometry.Point{X: 0.5, Y: 0.5})
	if !ok || number != 1 {
		t.Errorf("Expected point (0.5,0.5) in room 1, got %d (found=%v)", number, ok)
	}

	number, ok = idx.Locate(geometry.Point{X: 1.5, Y: 0.5})
	if !ok || number != 2 {
		t.Errorf("Expected point (1.5,0.5) in room 2, got %d (found=%v)", number, ok)
	}
}

func TestRoomIndex_LocateOutside(t *testing.T) {
	idx := NewRoomIndex(testRooms())

	if _, ok := idx.Locate(geometry.Point{X: 5, Y: 5}); ok {
		t.Error("Expected no room at (5,5)")
	}
	if _, ok := idx.Locate(geometry.Point{X: -1, Y: 0.5}); ok {
		t.Error("Expected no room at (-1,0.5)")
	}
}

func TestRoomIndex_Empty(t *testing.T) {
	idx := NewRoomIndex(nil)

	if idx.Size() != 0 {
		t.Errorf("Expected empty index, got size %d", idx.Size())
	}
	if _, ok := idx.Locate(geometry.Point{X: 0, Y: 0}); ok {
		t.Error("Expected no hit in an empty index")
	}
}

func TestRoomIndex_FromGraphBuild(t *testing.T) {
	// Arrange - two unit rooms sharing the wall at x=1, indexed straight
	// off a graph build rather than hand-made rooms.
	segments := []geometry.Segment{
		{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 1, Y: 0}},
		{A: geometry.Point{X: 1, Y: 0}, B: geometry.Point{X: 1, Y: 1}},
		{A: geometry.Point{X: 1, Y: 1}, B: geometry.Point{X: 0, Y: 1}},
		{A: geometry.Point{X: 0, Y: 1}, B: geometry.Point{X: 0, Y: 0}},
		{A: geometry.Point{X: 1, Y: 0}, B: geometry.Point{X: 2, Y: 0}},
		{A: geometry.Point{X: 2, Y: 0}, B: geometry.Point{X: 2, Y: 1}},
		{A: geometry.Point{X: 2, Y: 1}, B: geometry.Point{X: 1, Y: 1}},
	}
	graph := roomgraph.NewGraph()
	graph.Build(segments)

	// Act
	idx := NewRoomIndex(graph.Rooms())

	// Assert
	if idx.Size() != 2 {
		t.Fatalf("Expected 2 indexed rooms, got %d", idx.Size())
	}
	left, ok := idx.Locate(geometry.Point{X: 0.5, Y: 0.5})
	if !ok {
		t.Fatal("Expected (0.5,0.5) inside a room")
	}
	right, ok := idx.Locate(geometry.Point{X: 1.5, Y: 0.5})
	if !ok {
		t.Fatal("Expected (1.5,0.5) inside a room")
	}
	if left == right {
		t.Errorf("Expected distinct rooms for the two sides, got %d and %d", left, right)
	}
	if _, ok := idx.Locate(geometry.Point{X: 3, Y: 0.5}); ok {
		t.Error("Expected no room at (3,0.5)")
	}
}

func TestRoomIndex_NonConvexRoom(t *testing.T) {
	// L-shaped room: the bounding box covers the notch, the polygon
	// test must reject points inside the notch.
	rooms := []roomgraph.Room{
		{
			Polygon: []geometry.Point{
				{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
				{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
			},
			Area: 3.0,
		},
	}
	idx := NewRoomIndex(rooms)

	if _, ok := idx.Locate(geometry.Point{X: 0.5, Y: 0.5}); !ok {
		t.Error("Expected (0.5,0.5) inside the L-shape")
	}
	if _, ok := idx.Locate(geometry.Point{X: 1.5, Y: 1.5}); ok {
		t.Error("Expected (1.5,1.5) in the notch to be outside")
	}
}
