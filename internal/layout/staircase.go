package layout

import "school-renderer/internal/mathutil"

// Default staircase dimensions.
const (
	DefaultStepCount  = 5
	DefaultStepHeight = 0.2
	DefaultStepRun    = 0.5

	// stepWidth is the fixed X and Z footprint of every step.
	stepWidth = 0.5
)

// StairParams controls staircase expansion.
type StairParams struct {
	StepCount  int     `json:"step_count" yaml:"step_count"`
	StepHeight float64 `json:"step_height" yaml:"step_height"`
	StepRun    float64 `json:"step_run" yaml:"step_run"`
}

// DefaultStairParams returns the reference step count, rise and run.
func DefaultStairParams() StairParams {
	return StairParams{
		StepCount:  DefaultStepCount,
		StepHeight: DefaultStepHeight,
		StepRun:    DefaultStepRun,
	}
}

// StairOption overrides one staircase parameter.
type StairOption func(*StairParams)

func WithStepCount(n int) StairOption {
	return func(p *StairParams) { p.StepCount = n }
}

func WithStepHeight(h float64) StairOption {
	return func(p *StairParams) { p.StepHeight = h }
}

func WithStepRun(r float64) StairOption {
	return func(p *StairParams) { p.StepRun = r }
}

// WithStairParams replaces all parameters at once.
func WithStairParams(sp StairParams) StairOption {
	return func(p *StairParams) { *p = sp }
}

// GenerateStaircase emits one box per step, ascending in Y from origin.
// Steps move towards -Z, or towards +Z when reverse is set; reverse only
// flips the sign of the per-step run, it does not mirror the flight.
// A step count of zero or less yields an empty slice.
func GenerateStaircase(origin mathutil.Vec3, reverse bool, opts ...StairOption) []Primitive {
	p := DefaultStairParams()
	for _, opt := range opts {
		opt(&p)
	}
	if p.StepCount <= 0 {
		return []Primitive{}
	}

	dir := -1.0
	if reverse {
		dir = 1.0
	}

	st := StyleOf(Staircase)
	steps := make([]Primitive, 0, p.StepCount)
	for i := 0; i < p.StepCount; i++ {
		fi := float64(i)
		steps = append(steps, Primitive{
			Shape: st.Shape,
			Position: mathutil.Vec3{
				origin[0],
				origin[1] + fi*p.StepHeight,
				origin[2] + fi*p.StepRun*dir,
			},
			Size:     mathutil.Vec3{stepWidth, p.StepHeight, stepWidth},
			Rotation: st.Rotation,
			Color:    st.Color,
			Side:     st.Side,
			Group:    Staircase,
		})
	}
	return steps
}
