package layout

// GenerateFloor expands group specs into primitives in declaration order.
// Each spec's Y is shifted by the floor's offset; staircases expand into
// their steps in place. Sizes are passed through unchecked.
func GenerateFloor(kind FloorKind, groups []GroupSpec, opts ...StairOption) []Primitive {
	out := make([]Primitive, 0, len(groups))
	dy := kind.YOffset()

	for _, g := range groups {
		pos := g.Position
		pos[1] += dy

		if g.Kind == Staircase {
			for _, step := range GenerateStaircase(pos, g.Reverse, opts...) {
				step.Floor = kind
				if !g.Rotation.IsZero() {
					step.Rotation = g.Rotation
				}
				out = append(out, step)
			}
			continue
		}

		st := kind.styleFor(g.Kind)
		rot := st.Rotation
		if !g.Rotation.IsZero() {
			rot = g.Rotation
		}
		out = append(out, Primitive{
			Shape:    st.Shape,
			Position: pos,
			Size:     g.Size,
			Rotation: rot,
			Color:    st.Color,
			Side:     st.Side,
			Group:    g.Kind,
			Floor:    kind,
		})
	}
	return out
}
