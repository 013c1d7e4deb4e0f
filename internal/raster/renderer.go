// Package raster draws tessellated scenes into RGBA images in software.
package raster

import (
	"image"
	"image/color"

	"school-renderer/internal/camera"
	"school-renderer/internal/layout"
	"school-renderer/internal/mesh"
)

// Options controls one render.
type Options struct {
	Width, Height int
	Shading       Shading
	Background    color.NRGBA

	// ForceDoubleSide draws back faces of front-side primitives too.
	ForceDoubleSide bool
}

// Stats reports what happened to the triangles of one render.
type Stats struct {
	Drawn   int
	Culled  int
	Clipped int // rejected for crossing the near plane
}

// Render projects tris through cam and rasterizes them.
func Render(tris []mesh.Triangle, cam *camera.OrbitCamera, lc LightConfig, opts Options) (*image.NRGBA, Stats) {
	var st Stats
	fb := NewFrameBuffer(opts.Width, opts.Height, opts.Background)
	if opts.Width <= 0 || opts.Height <= 0 {
		return fb.Image(), st
	}

	vp := cam.ViewProjection(float64(opts.Width) / float64(opts.Height))
	eye := cam.Position()
	w, h := float64(opts.Width), float64(opts.Height)

	for i := range tris {
		tri := &tris[i]

		var s ScreenTri
		clipped := false
		for k, v := range tri.V {
			clip, cw := vp.MulHomogeneous(v)
			if cw < cam.Near {
				clipped = true
				break
			}
			inv := 1 / cw
			s.X[k] = (clip[0]*inv + 1) * 0.5 * w
			s.Y[k] = (1 - clip[1]*inv) * 0.5 * h
			s.InvW[k] = inv
		}
		if clipped {
			st.Clipped++
			continue
		}

		front := s.SignedArea() < 0
		if !front && tri.Side == layout.FrontSide && !opts.ForceDoubleSide {
			st.Culled++
			continue
		}

		c := color.NRGBA{R: tri.Color.R, G: tri.Color.G, B: tri.Color.B, A: 255}
		if opts.Shading == ShadingLambert {
			n := tri.Normal
			center := tri.Centroid()
			if n.Dot(eye.Sub(center)) < 0 {
				n = n.Scale(-1)
			}
			shade := lc.ComputeShade(n, center)
			c.R = lc.shadeChannel(c.R, shade)
			c.G = lc.shadeChannel(c.G, shade)
			c.B = lc.shadeChannel(c.B, shade)
		}

		RasterizeTriangle(fb, &s, c)
		st.Drawn++
	}

	return fb.Image(), st
}
