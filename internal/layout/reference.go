package layout

import "school-renderer/internal/mathutil"

type v3 = mathutil.Vec3

// ReferencePlan returns the literal school layout. Positions are relative
// to each floor's offset (ground 0, basement -1, second +1).
func ReferencePlan() Plan {
	return Plan{
		Floors: []FloorPlan{
			{Kind: Ground, Groups: groundFloor()},
			{Kind: Basement, Groups: basementFloor()},
			{Kind: Second, Groups: secondFloor()},
		},
		Stairs: DefaultStairParams(),
	}
}

func groundFloor() []GroupSpec {
	return []GroupSpec{
		// slabs
		foundation(v3{0.5, 0, 0}, v3{3, 0.01, 12}),
		foundation(v3{-1.55, 0, 0}, v3{3, 0.01, 6.01}),
		foundation(v3{0, -0.5, 5}, v3{2, 1, 2}),
		// back wall and the short side walls
		foundation(v3{0, 2, -6}, v3{6, 5, 0.01}),
		foundation(v3{-3.5, 0, 2.4}, v3{1, 2, 0.01}),
		foundation(v3{-3, 0, -2.1}, v3{0.01, 2, 9}),

		hallway(v3{0, 0.006, 0}, 1, 10),

		// left wing
		classroom(v3{-2, 0.5, -4}, v3{2, 1, 4}),
		classroom(v3{-2, 0.5, 0}, v3{2, 1, 5}),
		classroom(v3{-2, 0.5, 1.5}, v3{2, 1, 3}),
		// right wing
		classroom(v3{2, 0.5, -4}, v3{2, 1, 4}),
		classroom(v3{2, 0.5, 0}, v3{2, 1, 5}),
		classroom(v3{2, 0.5, 4}, v3{2, 1, 3}),

		staircase(v3{0.7, 0.09, 5}, false),
	}
}

func basementFloor() []GroupSpec {
	return []GroupSpec{
		foundation(v3{0, 0, 0}, v3{6, 0.01, 12}),
		foundation(v3{-1, 0, 4.2}, v3{6, 0.01, 3.7}),

		classroom(v3{-2, 0.5, -4}, v3{2, 1, 4}),
		classroom(v3{-2, 0.5, 0}, v3{2, 1, 5}),
		classroom(v3{2, 0.5, -4}, v3{2, 1, 4}),
		classroom(v3{2, 0.5, 0}, v3{2, 1, 5}),
		classroom(v3{2, 0.5, 4}, v3{2, 1, 3}),

		// climbs towards +Z, opposite to the ground flight
		staircase(v3{-1.2, 0.1, 4}, true),
	}
}

func secondFloor() []GroupSpec {
	return []GroupSpec{
		foundation(v3{0, 0, 2.25}, v3{3, 0.1, 1}),
		foundation(v3{0, 0, -6}, v3{3, 0.1, 1}),
		foundation(v3{0.7, 0, -3}, v3{1, 0.1, 10}),

		classroom(v3{-2, 0.5, -4}, v3{2, 1, 4}),
		classroom(v3{-2, 0.5, 0}, v3{2, 1, 5}),
		classroom(v3{-2, 0.5, 1.5}, v3{2, 1, 3}),
		classroom(v3{2, 0.5, -4}, v3{2, 1, 4}),
		classroom(v3{2, 0.5, 0}, v3{2, 1, 5}),
		classroom(v3{2, 0.5, 4}, v3{2, 1, 3}),
	}
}
