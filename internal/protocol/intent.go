package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestRebuild replaces the current plan's wall set and triggers a
// full graph rebuild.
type RequestRebuild struct {
	Walls []SegmentLite `json:"walls"`
}

// RequestLocate asks which room contains the given plan coordinate.
type RequestLocate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
