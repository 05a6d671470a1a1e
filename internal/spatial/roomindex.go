package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/planmetric/roomplan-engine/internal/geometry"
	"github.com/planmetric/roomplan-engine/internal/roomgraph"
)

// indexedRoom wraps a room with its R-tree bounding rectangle.
type indexedRoom struct {
	number int // 1-based room number, matching the rendered labels
	room   roomgraph.Room
	rect   rtreego.Rect
}

func (ir *indexedRoom) Bounds() rtreego.Rect {
	return ir.rect
}

// RoomIndex answers point-to-room lookups over the result of one build.
// The R-tree narrows candidates by bounding box; an exact polygon test
// settles the hit. Rebuilding the graph requires a fresh index.
type RoomIndex struct {
	tree *rtreego.Rtree
}

// NewRoomIndex indexes the given rooms. Room numbers are their 1-based
// positions in the slice, matching the order rooms were traced.
func NewRoomIndex(rooms []roomgraph.Room) *RoomIndex {
	spatials := make([]rtreego.Spatial, 0, len(rooms))
	for i, room := range rooms {
		min, max := room.BoundingBox()
		rect, err := rtreego.NewRect(
			rtreego.Point{min.X, min.Y},
			[]float64{max.X - min.X, max.Y - min.Y},
		)
		if err != nil {
			// Zero-extent polygons cannot come out of the cycle walker;
			// skip rather than fail if one ever does.
			continue
		}
		spatials = append(spatials, &indexedRoom{number: i + 1, room: room, rect: rect})
	}
	return &RoomIndex{tree: rtreego.NewTree(2, 25, 50, spatials...)}
}

// Size returns the number of indexed rooms.
func (idx *RoomIndex) Size() int {
	return idx.tree.Size()
}

// Locate returns the 1-based number of the room containing the point,
// or false if the point lies in no room.
func (idx *RoomIndex) Locate(p geometry.Point) (int, bool) {
	probe, err := rtreego.NewRect(rtreego.Point{p.X - 1e-9, p.Y - 1e-9}, []float64{2e-9, 2e-9})
	if err != nil {
		return 0, false
	}

	for _, candidate := range idx.tree.SearchIntersect(probe) {
		ir := candidate.(*indexedRoom)
		if ir.room.Contains(p) {
			return ir.number, true
		}
	}
	return 0, false
}
