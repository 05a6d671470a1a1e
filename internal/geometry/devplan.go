package geometry

// DevPlan returns a built-in plan used when no plan file is configured:
// two adjacent unit-square rooms sharing a wall, plus one dangling stub
// segment off the top-right corner that closes no loop.
func DevPlan() *PlanDefinition {
	return &PlanDefinition{
		ID:   "dev-plan-0",
		Name: "Two rooms",
		Walls: []Wall{
			// Left room [0,1]x[0,1].
			{X1: 0, Y1: 0, X2: 1, Y2: 0},
			{X1: 1, Y1: 0, X2: 1, Y2: 1},
			{X1: 1, Y1: 1, X2: 0, Y2: 1},
			{X1: 0, Y1: 1, X2: 0, Y2: 0},
			// Right room [1,2]x[0,1], sharing the wall at x=1.
			{X1: 1, Y1: 0, X2: 2, Y2: 0},
			{X1: 2, Y1: 0, X2: 2, Y2: 1},
			{X1: 2, Y1: 1, X2: 1, Y2: 1},
			// Dangling stub off the corner (2,1).
			{X1: 2, Y1: 1, X2: 2.5, Y2: 1.5},
		},
	}
}
