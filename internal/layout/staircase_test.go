package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-renderer/internal/mathutil"
)

func TestGenerateStaircaseForward(t *testing.T) {
	origin := mathutil.Vec3{0.7, 0.09, 5}
	steps := GenerateStaircase(origin, false)
	require.Len(t, steps, DefaultStepCount)

	for i, s := range steps {
		fi := float64(i)
		assert.Equal(t, origin[0], s.Position[0], "step %d x", i)
		assert.InDelta(t, origin[1]+fi*0.2, s.Position[1], 1e-12, "step %d y", i)
		assert.InDelta(t, origin[2]-fi*0.5, s.Position[2], 1e-12, "step %d z", i)
		assert.Equal(t, mathutil.Vec3{0.5, 0.2, 0.5}, s.Size)
		assert.Equal(t, Box, s.Shape)
		assert.Equal(t, "brown", s.Color.Name)
		assert.Equal(t, Staircase, s.Group)
	}
}

func TestGenerateStaircaseReverse(t *testing.T) {
	origin := mathutil.Vec3{0, 0, 1}
	steps := GenerateStaircase(origin, true)
	require.Len(t, steps, 5)
	for i, s := range steps {
		assert.InDelta(t, 1+float64(i)*0.5, s.Position[2], 1e-12)
	}
}

func TestGenerateStaircaseBasementScenario(t *testing.T) {
	steps := GenerateStaircase(mathutil.Vec3{-1.2, -0.9, 4}, true)
	require.Len(t, steps, 5)

	wantZ := []float64{4.0, 4.5, 5.0, 5.5, 6.0}
	wantY := []float64{-0.9, -0.7, -0.5, -0.3, -0.1}
	for i, s := range steps {
		assert.Equal(t, -1.2, s.Position[0])
		assert.InDelta(t, wantY[i], s.Position[1], 1e-9, "step %d y", i)
		assert.InDelta(t, wantZ[i], s.Position[2], 1e-9, "step %d z", i)
	}
}

func TestGenerateStaircaseAscending(t *testing.T) {
	for _, reverse := range []bool{false, true} {
		steps := GenerateStaircase(mathutil.Vec3{}, reverse, WithStepCount(12))
		require.Len(t, steps, 12)
		for i := 1; i < len(steps); i++ {
			assert.Greater(t, steps[i].Position[1], steps[i-1].Position[1])
			assert.InDelta(t, 0.2, steps[i].Position[1]-steps[i-1].Position[1], 1e-9)
		}
	}
}

func TestGenerateStaircaseEmpty(t *testing.T) {
	steps := GenerateStaircase(mathutil.Vec3{1, 2, 3}, true, WithStepCount(0))
	assert.NotNil(t, steps)
	assert.Empty(t, steps)

	assert.Empty(t, GenerateStaircase(mathutil.Vec3{}, false, WithStepCount(-3)))
}

func TestGenerateStaircaseOptions(t *testing.T) {
	steps := GenerateStaircase(mathutil.Vec3{}, false,
		WithStepCount(3), WithStepHeight(0.3), WithStepRun(0.25))
	require.Len(t, steps, 3)

	last := steps[2]
	assert.InDelta(t, 0.6, last.Position[1], 1e-12)
	assert.InDelta(t, -0.5, last.Position[2], 1e-12)
	assert.Equal(t, mathutil.Vec3{0.5, 0.3, 0.5}, last.Size)
}
