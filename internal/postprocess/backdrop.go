package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Composite stretches bg to fill img's bounds and draws img over it.
// A nil backdrop returns img unchanged.
func Composite(img *image.NRGBA, bg image.Image) *image.NRGBA {
	if bg == nil {
		return img
	}
	b := img.Bounds()
	out := image.NewNRGBA(b)
	draw.ApproxBiLinear.Scale(out, b, bg, bg.Bounds(), draw.Src, nil)
	draw.Draw(out, b, img, b.Min, draw.Over)
	return out
}
