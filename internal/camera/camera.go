// Package camera provides the orbit camera used to view the scene.
package camera

import (
	"math"

	"school-renderer/internal/mathutil"
	"school-renderer/internal/scene"
)

// Default clip planes.
const (
	DefaultNear = 0.1
	DefaultFar  = 1000
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target mathutil.Vec3

	// Spherical coordinates
	Distance float64
	Pitch    float64 // elevation above the XZ plane, radians
	Yaw      float64 // around +Y, radians; 0 looks from +Z

	FOV       float64 // vertical, degrees
	Near, Far float64
}

// FromPose derives orbit coordinates from an eye/target pose.
func FromPose(p scene.CameraPose) *OrbitCamera {
	d := p.Position.Sub(p.Target)
	dist := d.Len()
	c := &OrbitCamera{
		Target:   p.Target,
		Distance: dist,
		FOV:      p.FOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
	if dist > 0 {
		c.Pitch = math.Asin(d[1] / dist)
		c.Yaw = math.Atan2(d[0], d[2])
	}
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mathutil.Vec3 {
	cp := math.Cos(c.Pitch)
	return mathutil.Vec3{
		c.Target[0] + c.Distance*cp*math.Sin(c.Yaw),
		c.Target[1] + c.Distance*math.Sin(c.Pitch),
		c.Target[2] + c.Distance*cp*math.Cos(c.Yaw),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mathutil.Mat4 {
	return mathutil.LookAt(c.Position(), c.Target, mathutil.WorldUp)
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float64) mathutil.Mat4 {
	return mathutil.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns projection × view.
func (c *OrbitCamera) ViewProjection(aspect float64) mathutil.Mat4 {
	return mathutil.Mat4Mul(c.ProjectionMatrix(aspect), c.ViewMatrix())
}

// Orbit returns n cameras evenly spaced in yaw around the target,
// starting at the receiver's current yaw.
func (c *OrbitCamera) Orbit(n int) []*OrbitCamera {
	if n <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	out := make([]*OrbitCamera, n)
	for i := range out {
		cc := *c
		cc.Yaw = c.Yaw + float64(i)*step
		out[i] = &cc
	}
	return out
}
