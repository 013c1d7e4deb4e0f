package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-renderer/internal/mathutil"
	"school-renderer/internal/scene"
)

func assertVecInDelta(t *testing.T, want, got mathutil.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d", i)
	}
}

func TestFromPoseRoundTrip(t *testing.T) {
	pose := scene.DefaultCamera()
	c := FromPose(pose)
	assert.InDelta(t, math.Sqrt(100+25+225), c.Distance, 1e-9)
	assertVecInDelta(t, pose.Position, c.Position(), 1e-9)
	assert.Equal(t, 50.0, c.FOV)
}

func TestOrbitFirstFrameIsInitialPose(t *testing.T) {
	c := FromPose(scene.DefaultCamera())
	frames := c.Orbit(8)
	require.Len(t, frames, 8)
	assertVecInDelta(t, c.Position(), frames[0].Position(), 1e-9)

	// constant distance and height around the orbit
	for _, f := range frames {
		p := f.Position()
		assert.InDelta(t, c.Distance, p.Sub(f.Target).Len(), 1e-9)
		assert.InDelta(t, 5, p[1], 1e-9)
	}
	// half-way round is mirrored through the Y axis
	half := frames[4].Position()
	assert.InDelta(t, -10, half[0], 1e-9)
	assert.InDelta(t, -15, half[2], 1e-9)

	assert.Nil(t, c.Orbit(0))
}

func TestViewMatrixCentersTarget(t *testing.T) {
	c := FromPose(scene.DefaultCamera())
	v := c.ViewMatrix()

	// target lands on the -Z view axis at the orbit distance
	tv := v.MulPoint(c.Target)
	assert.InDelta(t, 0, tv[0], 1e-9)
	assert.InDelta(t, 0, tv[1], 1e-9)
	assert.InDelta(t, -c.Distance, tv[2], 1e-9)

	// eye is the view-space origin
	assertVecInDelta(t, mathutil.Vec3{}, v.MulPoint(c.Position()), 1e-9)
}

func TestViewProjectionTargetAtScreenCenter(t *testing.T) {
	c := FromPose(scene.DefaultCamera())
	clip, w := c.ViewProjection(1).MulHomogeneous(c.Target)
	require.Greater(t, w, 0.0)
	assert.InDelta(t, 0, clip[0]/w, 1e-9)
	assert.InDelta(t, 0, clip[1]/w, 1e-9)
	assert.InDelta(t, c.Distance, w, 1e-9)
}
