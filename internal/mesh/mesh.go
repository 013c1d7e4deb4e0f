// Package mesh tessellates layout primitives into world-space triangles.
package mesh

import (
	"image/color"

	"school-renderer/internal/layout"
	"school-renderer/internal/mathutil"
)

// Triangle is one world-space face with counter-clockwise winding seen
// from the side its Normal points to.
type Triangle struct {
	V      [3]mathutil.Vec3
	Normal mathutil.Vec3
	Color  color.RGBA
	Side   layout.Side
}

// face is a quad described by its outward axis and two tangents with u × v = n.
type face struct {
	n, u, v int
	sign    float64
}

var (
	axes = [3]mathutil.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	boxFaces = [6]face{
		{n: 0, u: 1, v: 2, sign: 1},
		{n: 0, u: 2, v: 1, sign: -1},
		{n: 1, u: 2, v: 0, sign: 1},
		{n: 1, u: 0, v: 2, sign: -1},
		{n: 2, u: 0, v: 1, sign: 1},
		{n: 2, u: 1, v: 0, sign: -1},
	}

	planeFace = face{n: 2, u: 0, v: 1, sign: 1}

	// quad corners as (u, v) signs, counter-clockwise
	quadCorners = [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
)

// Tessellate returns 12 triangles for a box and 2 for a plane.
func Tessellate(p layout.Primitive) []Triangle {
	r := mathutil.EulerXYZ(p.Rotation)
	h := p.HalfExtents()

	var faces []face
	switch p.Shape {
	case layout.Plane:
		faces = []face{planeFace}
	default:
		faces = boxFaces[:]
	}

	tris := make([]Triangle, 0, len(faces)*2)
	for _, f := range faces {
		normal := axes[f.n].Scale(f.sign)
		center := normal.Scale(h[f.n])

		var quad [4]mathutil.Vec3
		for i, c := range quadCorners {
			local := center.
				Add(axes[f.u].Scale(c[0] * h[f.u])).
				Add(axes[f.v].Scale(c[1] * h[f.v]))
			quad[i] = r.MulVec3(local).Add(p.Position)
		}

		wn := r.MulVec3(normal)
		tris = append(tris,
			Triangle{V: [3]mathutil.Vec3{quad[0], quad[1], quad[2]}, Normal: wn, Color: p.Color.RGBA, Side: p.Side},
			Triangle{V: [3]mathutil.Vec3{quad[0], quad[2], quad[3]}, Normal: wn, Color: p.Color.RGBA, Side: p.Side},
		)
	}
	return tris
}

// TessellateAll flattens a building into one triangle list, preserving order.
func TessellateAll(b layout.Building) []Triangle {
	tris := make([]Triangle, 0, len(b)*12)
	for _, p := range b {
		tris = append(tris, Tessellate(p)...)
	}
	return tris
}

// Centroid returns the mean of the triangle's vertices.
func (t Triangle) Centroid() mathutil.Vec3 {
	return t.V[0].Add(t.V[1]).Add(t.V[2]).Scale(1.0 / 3)
}
