package layout

import (
	"errors"
	"fmt"
	"math"

	"school-renderer/internal/mathutil"
)

// FloorPlan is the authored group list of one floor.
type FloorPlan struct {
	Kind   FloorKind   `json:"kind" yaml:"kind"`
	Groups []GroupSpec `json:"groups" yaml:"groups"`
}

// Plan is a complete building description. A zero Stairs means
// DefaultStairParams.
type Plan struct {
	Floors []FloorPlan `json:"floors" yaml:"floors"`
	Stairs StairParams `json:"stairs" yaml:"stairs"`
}

// Building is the ordered draw list handed to a renderer. Treat it as read-only.
type Building []Primitive

// Assemble concatenates the floors of a plan in declaration order.
func Assemble(plan Plan) Building {
	stairs := plan.Stairs
	if stairs == (StairParams{}) {
		stairs = DefaultStairParams()
	}
	var b Building
	for _, f := range plan.Floors {
		b = append(b, GenerateFloor(f.Kind, f.Groups, WithStairParams(stairs))...)
	}
	return b
}

// AssembleBuilding builds the reference school: ground floor, then
// basement, then second floor.
func AssembleBuilding() Building {
	return Assemble(ReferencePlan())
}

// CountByGroup returns how many primitives each group kind produced.
func (b Building) CountByGroup() map[GroupKind]int {
	counts := make(map[GroupKind]int)
	for _, p := range b {
		counts[p.Group]++
	}
	return counts
}

// CountByFloor returns how many primitives each floor produced.
func (b Building) CountByFloor() map[FloorKind]int {
	counts := make(map[FloorKind]int)
	for _, p := range b {
		counts[p.Floor]++
	}
	return counts
}

// Bounds returns the world-space axis-aligned box enclosing every
// primitive, accounting for rotation. An empty building returns zero vectors.
func (b Building) Bounds() (lo, hi mathutil.Vec3) {
	if len(b) == 0 {
		return
	}
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range b {
		r := mathutil.EulerXYZ(p.Rotation)
		h := p.HalfExtents()
		var ext mathutil.Vec3
		for row := 0; row < 3; row++ {
			ext[row] = math.Abs(r[row*3])*h[0] + math.Abs(r[row*3+1])*h[1] + math.Abs(r[row*3+2])*h[2]
		}
		lo = lo.Min(p.Position.Sub(ext))
		hi = hi.Max(p.Position.Add(ext))
	}
	return lo, hi
}

// Validate reports primitives with non-positive sizes. The generator never
// calls it; it exists for authoring checks and tests.
func (b Building) Validate() error {
	var errs []error
	for i, p := range b {
		for _, d := range p.Dims() {
			if d <= 0 {
				errs = append(errs, fmt.Errorf("layout: primitive %d (%s/%s): non-positive size %v", i, p.Floor, p.Group, p.Dims()))
				break
			}
		}
	}
	return errors.Join(errs...)
}
