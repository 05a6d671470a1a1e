package geometry

import (
	"encoding/json"
	"fmt"
	"os"
)

// Wall represents a single wall centerline in a plan file.
type Wall struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// PlanDefinition represents a floor plan as exported from a drawing:
// an unordered bag of wall segments with no connectivity metadata.
type PlanDefinition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Walls []Wall `json:"walls"`
}

// LoadPlanFromFile loads a plan definition from a JSON file
func LoadPlanFromFile(filepath string) (*PlanDefinition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan PlanDefinition
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}

	return &plan, nil
}

// SegmentsFromPlan converts the plan's walls into segments, skipping
// any wall with non-finite coordinates.
func SegmentsFromPlan(plan *PlanDefinition) []Segment {
	segments := make([]Segment, 0, len(plan.Walls))
	for _, w := range plan.Walls {
		a := Point{X: w.X1, Y: w.Y1}
		b := Point{X: w.X2, Y: w.Y2}
		if !IsFinite(a) || !IsFinite(b) {
			continue
		}
		segments = append(segments, Segment{A: a, B: b})
	}
	return segments
}
