package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-renderer/internal/layout"
	"school-renderer/internal/mathutil"
)

func box(pos, size mathutil.Vec3) layout.Primitive {
	return layout.Primitive{Shape: layout.Box, Position: pos, Size: size, Color: layout.Named("lightblue")}
}

func TestTessellateBox(t *testing.T) {
	p := box(mathutil.Vec3{1, 2, 3}, mathutil.Vec3{2, 1, 4})
	tris := Tessellate(p)
	require.Len(t, tris, 12)

	for i, tri := range tris {
		// winding agrees with the stored normal
		geo := tri.V[1].Sub(tri.V[0]).Cross(tri.V[2].Sub(tri.V[0])).Normalize()
		assert.InDelta(t, 1, geo.Dot(tri.Normal), 1e-9, "tri %d", i)

		// normal points away from the box center
		out := tri.Centroid().Sub(p.Position)
		assert.Greater(t, out.Dot(tri.Normal), 0.0, "tri %d", i)

		for _, v := range tri.V {
			d := v.Sub(p.Position)
			assert.InDelta(t, 1, abs(d[0]), 1e-9)
			assert.InDelta(t, 0.5, abs(d[1]), 1e-9)
			assert.InDelta(t, 2, abs(d[2]), 1e-9)
		}
		assert.Equal(t, p.Color.RGBA, tri.Color)
	}
}

func TestTessellateFlatPlane(t *testing.T) {
	p := layout.Primitive{
		Shape:    layout.Plane,
		Position: mathutil.Vec3{0, 0.006, 0},
		Size:     mathutil.Vec3{1, 10, 0},
		Rotation: mathutil.FlatOnFloor,
	}
	tris := Tessellate(p)
	require.Len(t, tris, 2)

	for _, tri := range tris {
		assert.InDelta(t, 1, tri.Normal[1], 1e-9)
		for _, v := range tri.V {
			assert.InDelta(t, 0.006, v[1], 1e-9)
			assert.InDelta(t, 0.5, abs(v[0]), 1e-9)
			assert.InDelta(t, 5, abs(v[2]), 1e-9)
		}
	}
}

func TestTessellateAll(t *testing.T) {
	b := layout.AssembleBuilding()
	tris := TessellateAll(b)

	want := 0
	for _, p := range b {
		if p.Shape == layout.Plane {
			want += 2
		} else {
			want += 12
		}
	}
	assert.Len(t, tris, want)
	assert.Equal(t, 38*12+2, want)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
