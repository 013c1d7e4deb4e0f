package mathutil

import "math"

var (
	// WorldUp is the Y-up axis shared by the layout and the camera.
	WorldUp = Vec3{0, 1, 0}

	// FlatOnFloor lays an XY plane onto the XZ floor: Rx(-90°).
	FlatOnFloor = Vec3{-math.Pi / 2, 0, 0}
)
