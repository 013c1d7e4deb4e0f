package raster

import (
	"image/color"
	"math"
)

// ScreenTri is a projected triangle: pixel coordinates plus 1/w per vertex.
type ScreenTri struct {
	X, Y, InvW [3]float64
}

// SignedArea is twice the screen-space area. Counter-clockwise faces in
// view space come out negative because screen Y grows downwards.
func (t *ScreenTri) SignedArea() float64 {
	return (t.X[1]-t.X[0])*(t.Y[2]-t.Y[0]) - (t.X[2]-t.X[0])*(t.Y[1]-t.Y[0])
}

// RasterizeTriangle fills a flat-colored triangle with a depth test on
// interpolated 1/w. Samples are taken at pixel centers.
//
// This is the hot path; the pixel loop does not allocate.
func RasterizeTriangle(fb *FrameBuffer, t *ScreenTri, c color.NRGBA) {
	x0, y0, z0 := t.X[0], t.Y[0], t.InvW[0]
	x1, y1, z1 := t.X[1], t.Y[1], t.InvW[1]
	x2, y2, z2 := t.X[2], t.Y[2], t.InvW[2]

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = c.R
			fb.Color[pxIdx+1] = c.G
			fb.Color[pxIdx+2] = c.B
			fb.Color[pxIdx+3] = c.A
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
