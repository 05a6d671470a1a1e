package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type VariablesChanged struct {
	Entries map[string]any `json:"entries"`
}

// RoomsComputed carries the result of one rebuild to all clients.
type RoomsComputed struct {
	BuildID string     `json:"buildId"`
	Rooms   []RoomLite `json:"rooms"`
	Stats   BuildStats `json:"stats"`
}

// RoomLocated answers a RequestLocate intent. Number is 0 when the
// point lies in no room.
type RoomLocated struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Number int     `json:"number"`
	Found  bool    `json:"found"`
}
