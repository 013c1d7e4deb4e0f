package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"school-renderer/internal/mathutil"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Len(t, s.Primitives, 39)
	assert.Equal(t, mathutil.Vec3{10, 5, 15}, s.Camera.Position)
	assert.Equal(t, 50.0, s.Camera.FOV)
	assert.Equal(t, 0.5, s.Lights.Ambient)
	assert.Equal(t, mathutil.Vec3{10, 10, 10}, s.Lights.PointPosition)
}

func TestNewEmpty(t *testing.T) {
	s := New(nil)
	assert.Empty(t, s.Primitives)
	assert.Equal(t, DefaultCamera(), s.Camera)
}
