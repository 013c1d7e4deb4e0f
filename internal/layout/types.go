// Package layout turns a small set of architectural literals into the
// ordered list of box and plane primitives that make up the school model.
//
// Everything here is a pure function of its inputs: no state is kept
// between calls and identical inputs produce identical output.
package layout

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"school-renderer/internal/mathutil"
)

// Shape is the base geometry of a primitive.
type Shape int

const (
	Box Shape = iota
	Plane
)

func (s Shape) String() string {
	switch s {
	case Box:
		return "box"
	case Plane:
		return "plane"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

func (s Shape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Side selects which faces of a primitive are drawn.
type Side int

const (
	FrontSide Side = iota
	DoubleSide
)

func (s Side) String() string {
	if s == DoubleSide {
		return "double"
	}
	return "front"
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Color is a CSS color name resolved to RGBA. Name is empty for raw RGB values.
type Color struct {
	Name string
	RGBA color.RGBA
}

// Named resolves a CSS/SVG color keyword. Unknown names resolve to black.
func Named(name string) Color {
	return Color{Name: name, RGBA: colornames.Map[name]}
}

// RGB builds an unnamed opaque color.
func RGB(r, g, b uint8) Color {
	return Color{RGBA: color.RGBA{R: r, G: g, B: b, A: 255}}
}

func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("#%02x%02x%02x", c.RGBA.R, c.RGBA.G, c.RGBA.B)
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Primitive is one drawable shape request.
//
// Size holds width, height, depth for a Box. A Plane lies in its local XY
// plane and only uses Size[0] (width) and Size[1] (height).
// Rotation is Euler XYZ in radians; the zero value is identity.
type Primitive struct {
	Shape    Shape         `json:"shape" yaml:"shape"`
	Position mathutil.Vec3 `json:"position" yaml:"position,flow"`
	Size     mathutil.Vec3 `json:"size" yaml:"size,flow"`
	Rotation mathutil.Vec3 `json:"rotation" yaml:"rotation,flow"`
	Color    Color         `json:"color" yaml:"color"`
	Side     Side          `json:"side" yaml:"side"`
	Group    GroupKind     `json:"group" yaml:"group"`
	Floor    FloorKind     `json:"floor" yaml:"floor"`
}

// Dims returns the meaningful size components: three for a Box, two for a Plane.
func (p Primitive) Dims() []float64 {
	if p.Shape == Plane {
		return []float64{p.Size[0], p.Size[1]}
	}
	return []float64{p.Size[0], p.Size[1], p.Size[2]}
}

// HalfExtents returns the local-space half size, with zero depth for planes.
func (p Primitive) HalfExtents() mathutil.Vec3 {
	h := p.Size.Scale(0.5)
	if p.Shape == Plane {
		h[2] = 0
	}
	return h
}
