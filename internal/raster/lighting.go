package raster

import (
	"fmt"
	"math"
	"strings"

	"school-renderer/internal/mathutil"
	"school-renderer/internal/scene"
)

// Shading selects how face colors respond to the lights.
type Shading int

const (
	// ShadingBasic draws unlit flat colors.
	ShadingBasic Shading = iota
	// ShadingLambert applies ambient plus point-light diffuse per face.
	ShadingLambert
)

func (s Shading) String() string {
	if s == ShadingLambert {
		return "lambert"
	}
	return "basic"
}

// ParseShading accepts "basic" or "lambert" (case-insensitive).
func ParseShading(s string) (Shading, error) {
	switch strings.ToLower(s) {
	case "", "basic":
		return ShadingBasic, nil
	case "lambert":
		return ShadingLambert, nil
	}
	return ShadingBasic, fmt.Errorf("raster: unknown shading %q", s)
}

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	Ambient   float64
	PointPos  mathutil.Vec3
	Intensity float64
	InvGamma  float64
}

// NewLightConfig converts scene lights for the rasterizer.
func NewLightConfig(l scene.Lights) LightConfig {
	return LightConfig{
		Ambient:   l.Ambient,
		PointPos:  l.PointPosition,
		Intensity: l.PointIntensity,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the lighting scalar for a face with the given
// outward normal and center. The normal must face the viewer.
func (lc *LightConfig) ComputeShade(normal, center mathutil.Vec3) float64 {
	l := lc.PointPos.Sub(center).Normalize()
	ndl := normal.Dot(l)
	if ndl < 0 {
		ndl = 0
	}
	return lc.Ambient + ndl*lc.Intensity
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// shadeChannel scales one sRGB channel in linear space and re-encodes it.
func (lc *LightConfig) shadeChannel(c uint8, shade float64) uint8 {
	return clamp255(math.Pow(srgbToLinear[c]*shade, lc.InvGamma) * 255)
}
