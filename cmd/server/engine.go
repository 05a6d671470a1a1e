package main

import (
	"sync"

	"github.com/google/uuid"

	"github.com/planmetric/roomplan-engine/internal/geometry"
	"github.com/planmetric/roomplan-engine/internal/protocol"
	"github.com/planmetric/roomplan-engine/internal/roomgraph"
	"github.com/planmetric/roomplan-engine/internal/spatial"
)

// RoomEngine owns the current plan, one room graph, and the spatial
// index derived from the latest build. All access goes through the
// mutex; the graph itself is single-threaded by contract.
type RoomEngine struct {
	mu       sync.Mutex
	logger   Logger
	plan     *geometry.PlanDefinition
	segments []geometry.Segment
	graph    *roomgraph.Graph
	index    *spatial.RoomIndex
	buildID  string
}

func NewRoomEngine(plan *geometry.PlanDefinition, snapSize float64, logger Logger) *RoomEngine {
	engine := &RoomEngine{
		logger: logger,
		plan:   plan,
		graph:  roomgraph.NewGraphWithSnapSize(snapSize),
	}
	engine.mu.Lock()
	engine.rebuildLocked(geometry.SegmentsFromPlan(plan))
	engine.mu.Unlock()
	return engine
}

// rebuildLocked runs a full build and refreshes the derived state.
// Callers must hold the mutex.
func (e *RoomEngine) rebuildLocked(segments []geometry.Segment) {
	e.segments = segments
	e.graph.Build(segments)
	e.index = spatial.NewRoomIndex(e.graph.Rooms())
	e.buildID = uuid.NewString()

	stats := e.graph.Stats()
	e.logger.Printf("build %s: %d segments -> %d nodes, %d half-edges, %d rooms (dropped=%d unlinked=%d open=%d discarded=%d)",
		e.buildID, len(segments), e.graph.NodeCount(), e.graph.EdgeCount(), len(e.graph.Rooms()),
		stats.SegmentsDropped, stats.UnlinkedEdges, stats.OpenWalks, stats.DiscardedLoops)
}

// ProcessRebuild replaces the wall set and rebuilds the graph. An empty
// wall list is a valid (empty) plan; non-finite coordinates are the
// only rejected input.
func (e *RoomEngine) ProcessRebuild(req protocol.RequestRebuild) (*RebuildResult, error) {
	segments := make([]geometry.Segment, 0, len(req.Walls))
	for _, wall := range req.Walls {
		a := geometry.Point{X: wall.X1, Y: wall.Y1}
		b := geometry.Point{X: wall.X2, Y: wall.Y2}
		if !geometry.IsFinite(a) || !geometry.IsFinite(b) {
			return nil, &EngineError{Code: "bad-coordinate", Message: "wall coordinates must be finite"}
		}
		segments = append(segments, geometry.Segment{A: a, B: b})
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.rebuildLocked(segments)

	return &RebuildResult{
		RoomsComputed: &protocol.RoomsComputed{
			BuildID: e.buildID,
			Rooms:   roomsToLite(e.graph.Rooms()),
			Stats:   statsToLite(e.graph.Stats()),
		},
	}, nil
}

// ProcessLocate answers which room contains the given point.
func (e *RoomEngine) ProcessLocate(req protocol.RequestLocate) (*LocateResult, error) {
	p := geometry.Point{X: req.X, Y: req.Y}
	if !geometry.IsFinite(p) {
		return nil, &EngineError{Code: "bad-coordinate", Message: "locate point must be finite"}
	}

	e.mu.Lock()
	number, found := e.index.Locate(p)
	e.mu.Unlock()

	return &LocateResult{
		RoomLocated: &protocol.RoomLocated{X: req.X, Y: req.Y, Number: number, Found: found},
	}, nil
}

// Snapshot returns the full current state for the initial page render.
func (e *RoomEngine) Snapshot() protocol.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	walls := make([]protocol.SegmentLite, len(e.segments))
	for i, s := range e.segments {
		walls[i] = protocol.SegmentLite{X1: s.A.X, Y1: s.A.Y, X2: s.B.X, Y2: s.B.Y}
	}

	return protocol.Snapshot{
		PlanID:          e.plan.ID,
		PlanName:        e.plan.Name,
		BuildID:         e.buildID,
		SegmentCount:    len(e.segments),
		Walls:           walls,
		Rooms:           roomsToLite(e.graph.Rooms()),
		Stats:           statsToLite(e.graph.Stats()),
		Variables:       map[string]any{"ui.debug": false},
		ProtocolVersion: "v0",
	}
}

func roomsToLite(rooms []roomgraph.Room) []protocol.RoomLite {
	out := make([]protocol.RoomLite, len(rooms))
	for i, room := range rooms {
		polygon := make([]protocol.PointLite, len(room.Polygon))
		for k, p := range room.Polygon {
			polygon[k] = protocol.PointLite{X: p.X, Y: p.Y}
		}
		out[i] = protocol.RoomLite{
			Number:  i + 1,
			Polygon: polygon,
			Center:  protocol.PointLite{X: room.Center.X, Y: room.Center.Y},
			Area:    room.Area,
		}
	}
	return out
}

func statsToLite(stats roomgraph.Stats) protocol.BuildStats {
	return protocol.BuildStats{
		SegmentsDropped: stats.SegmentsDropped,
		UnlinkedEdges:   stats.UnlinkedEdges,
		OpenWalks:       stats.OpenWalks,
		DiscardedLoops:  stats.DiscardedLoops,
	}
}
