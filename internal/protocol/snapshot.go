package protocol

// PointLite is a polygon vertex or label anchor in plan coordinates.
type PointLite struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SegmentLite is one wall segment as sent over the wire.
type SegmentLite struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// RoomLite is one reconstructed room: a counter-clockwise polygon, its
// centroid (the label anchor), and its positive area.
type RoomLite struct {
	Number  int         `json:"number"`
	Polygon []PointLite `json:"polygon"`
	Center  PointLite   `json:"center"`
	Area    float64     `json:"area"`
}

// BuildStats mirrors the graph's diagnostic counters. Informational
// only; a build with non-zero counters is still a successful build.
type BuildStats struct {
	SegmentsDropped int `json:"segmentsDropped"`
	UnlinkedEdges   int `json:"unlinkedEdges"`
	OpenWalks       int `json:"openWalks"`
	DiscardedLoops  int `json:"discardedLoops"`
}

type Snapshot struct {
	PlanID          string         `json:"planId"`
	PlanName        string         `json:"planName"`
	BuildID         string         `json:"buildId"`
	SegmentCount    int            `json:"segmentCount"`
	Walls           []SegmentLite  `json:"walls"`
	Rooms           []RoomLite     `json:"rooms"`
	Stats           BuildStats     `json:"stats"`
	Variables       map[string]any `json:"variables"`
	ProtocolVersion string         `json:"protocolVersion"`
}
