package main

import (
	"github.com/planmetric/roomplan-engine/internal/protocol"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload any)
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...any)
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// PlanEngine interface for the room reconstruction engine
type PlanEngine interface {
	ProcessRebuild(req protocol.RequestRebuild) (*RebuildResult, error)
	ProcessLocate(req protocol.RequestLocate) (*LocateResult, error)
	Snapshot() protocol.Snapshot
}

// RebuildResult contains the results of a rebuild operation
type RebuildResult struct {
	RoomsComputed *protocol.RoomsComputed
}

// LocateResult contains the result of a point-to-room lookup
type LocateResult struct {
	RoomLocated *protocol.RoomLocated
}
