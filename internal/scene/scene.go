// Package scene bundles the draw list with the camera pose and lights a
// renderer needs to present it.
package scene

import (
	"school-renderer/internal/layout"
	"school-renderer/internal/mathutil"
)

// CameraPose is the initial perspective camera.
type CameraPose struct {
	Position mathutil.Vec3 `json:"position" yaml:"position,flow"`
	Target   mathutil.Vec3 `json:"target" yaml:"target,flow"`
	FOV      float64       `json:"fov" yaml:"fov"` // vertical, degrees
}

// Lights is an ambient term plus one point light.
type Lights struct {
	Ambient        float64       `json:"ambient" yaml:"ambient"`
	PointPosition  mathutil.Vec3 `json:"point_position" yaml:"point_position,flow"`
	PointIntensity float64       `json:"point_intensity" yaml:"point_intensity"`
}

// Scene is everything handed across the renderer boundary.
type Scene struct {
	Primitives layout.Building `json:"primitives" yaml:"primitives"`
	Camera     CameraPose      `json:"camera" yaml:"camera"`
	Lights     Lights          `json:"lights" yaml:"lights"`
}

// DefaultCamera looks at the origin from the front-right, 50° FOV.
func DefaultCamera() CameraPose {
	return CameraPose{
		Position: mathutil.Vec3{10, 5, 15},
		Target:   mathutil.Vec3{0, 0, 0},
		FOV:      50,
	}
}

// DefaultLights returns half-strength ambient and a unit point light.
func DefaultLights() Lights {
	return Lights{
		Ambient:        0.5,
		PointPosition:  mathutil.Vec3{10, 10, 10},
		PointIntensity: 1,
	}
}

// Default returns the reference school with its default camera and lights.
func Default() Scene {
	return New(layout.AssembleBuilding())
}

// New wraps a building with the default camera and lights.
func New(b layout.Building) Scene {
	return Scene{
		Primitives: b,
		Camera:     DefaultCamera(),
		Lights:     DefaultLights(),
	}
}
