package layout

import (
	"fmt"

	"school-renderer/internal/mathutil"
)

// GroupKind names the architectural concept a primitive belongs to.
// Kinds differ only in data, looked up in the style table.
type GroupKind int

const (
	Foundation GroupKind = iota
	Hallway
	Classroom
	Staircase
)

var groupNames = [...]string{"foundation", "hallway", "classroom", "staircase"}

func (g GroupKind) String() string {
	if g >= 0 && int(g) < len(groupNames) {
		return groupNames[g]
	}
	return fmt.Sprintf("group(%d)", int(g))
}

func (g GroupKind) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// Style is the fixed look of a group kind.
type Style struct {
	Shape    Shape
	Color    Color
	Side     Side
	Rotation mathutil.Vec3
}

// styles is indexed by GroupKind. Foundation is overridden per floor.
var styles = [...]Style{
	Foundation: {Shape: Box, Color: Named("gray"), Side: FrontSide},
	Hallway:    {Shape: Plane, Color: Named("gray"), Side: FrontSide, Rotation: mathutil.FlatOnFloor},
	Classroom:  {Shape: Box, Color: Named("lightblue"), Side: FrontSide},
	Staircase:  {Shape: Box, Color: Named("brown"), Side: FrontSide},
}

// StyleOf returns the default style of a group kind.
func StyleOf(g GroupKind) Style {
	if g < 0 || int(g) >= len(styles) {
		return styles[Foundation]
	}
	return styles[g]
}

// FloorKind selects a floor's fixed vertical offset and palette.
type FloorKind int

const (
	Basement FloorKind = iota
	Ground
	Second
)

type floorInfo struct {
	name       string
	yOffset    float64
	foundation Style
}

// Offsets are independent literals per floor; they are not derived from a
// shared floor height.
var floors = [...]floorInfo{
	Basement: {name: "basement", yOffset: -1, foundation: styles[Foundation]},
	Ground:   {name: "ground", yOffset: 0, foundation: Style{Shape: Box, Color: Named("darkgray"), Side: FrontSide}},
	Second:   {name: "second", yOffset: 1, foundation: styles[Foundation]},
}

func (f FloorKind) valid() bool { return f >= 0 && int(f) < len(floors) }

func (f FloorKind) String() string {
	if f.valid() {
		return floors[f].name
	}
	return fmt.Sprintf("floor(%d)", int(f))
}

func (f FloorKind) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// YOffset is the world-space Y of the floor's reference level.
func (f FloorKind) YOffset() float64 {
	if !f.valid() {
		return 0
	}
	return floors[f].yOffset
}

// styleFor resolves a group's style on a given floor.
func (f FloorKind) styleFor(g GroupKind) Style {
	if g == Foundation && f.valid() {
		return floors[f].foundation
	}
	return StyleOf(g)
}

// GroupSpec is one authored group literal. Position is relative to the
// floor's Y offset. Rotation, when non-zero, replaces the style rotation.
// Reverse only applies to staircases; Size is ignored for them.
type GroupSpec struct {
	Kind     GroupKind     `json:"kind" yaml:"kind"`
	Position mathutil.Vec3 `json:"position" yaml:"position,flow"`
	Size     mathutil.Vec3 `json:"size" yaml:"size,flow"`
	Rotation mathutil.Vec3 `json:"rotation" yaml:"rotation,flow"`
	Reverse  bool          `json:"reverse,omitempty" yaml:"reverse,omitempty"`
}

// Convenience constructors used by the reference plan.

func foundation(pos, size mathutil.Vec3) GroupSpec {
	return GroupSpec{Kind: Foundation, Position: pos, Size: size}
}

func hallway(pos mathutil.Vec3, w, h float64) GroupSpec {
	return GroupSpec{Kind: Hallway, Position: pos, Size: mathutil.Vec3{w, h, 0}}
}

func classroom(pos, size mathutil.Vec3) GroupSpec {
	return GroupSpec{Kind: Classroom, Position: pos, Size: size}
}

func staircase(origin mathutil.Vec3, reverse bool) GroupSpec {
	return GroupSpec{Kind: Staircase, Position: origin, Reverse: reverse}
}
