package spiral

import (
	"fmt"
	"math"
)

const (
	DefaultStep        = 0.0075
	DefaultResetPeriod = 20.0
	DefaultBaseScale   = 160.0
	DefaultMaxTerms    = 50
	DefaultCeiling     = 1e15
	DefaultArcSteps    = 80
)

// DefaultEye sits near the limit point of the spiral.
var DefaultEye = Point{X: 0.723606, Y: 0.276393}

// Params are the built-in animation parameters.
type Params struct {
	Step        float64 // clock increment per frame
	ResetPeriod float64 // clock wraps once Time exceeds this
	BaseScale   float64 // pixels per model unit at Time 0
	Eye         Point   // model point kept at the viewport centre
	MaxTerms    int
	Ceiling     float64
	ArcSteps    int
	Policy      Policy
}

func DefaultParams() Params {
	return Params{
		Step:        DefaultStep,
		ResetPeriod: DefaultResetPeriod,
		BaseScale:   DefaultBaseScale,
		Eye:         DefaultEye,
		MaxTerms:    DefaultMaxTerms,
		Ceiling:     DefaultCeiling,
		ArcSteps:    DefaultArcSteps,
		Policy:      DefaultPolicy(),
	}
}

// Validate reports the first parameter outside its valid range.
func (p Params) Validate() error {
	switch {
	case !(p.Step > 0) || math.IsInf(p.Step, 0):
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidParams, p.Step)
	case !(p.ResetPeriod > 0) || math.IsInf(p.ResetPeriod, 0):
		return fmt.Errorf("%w: reset period must be positive, got %v", ErrInvalidParams, p.ResetPeriod)
	case !(p.BaseScale > 0) || math.IsInf(p.BaseScale, 0):
		return fmt.Errorf("%w: base scale must be positive, got %v", ErrInvalidParams, p.BaseScale)
	case p.MaxTerms < 2:
		return fmt.Errorf("%w: max terms must be at least 2, got %d", ErrInvalidParams, p.MaxTerms)
	case !(p.Ceiling >= 1):
		return fmt.Errorf("%w: ceiling must be at least 1, got %v", ErrInvalidParams, p.Ceiling)
	case p.ArcSteps < 1:
		return fmt.Errorf("%w: arc steps must be at least 1, got %d", ErrInvalidParams, p.ArcSteps)
	case !finite(p.Eye.X) || !finite(p.Eye.Y):
		return fmt.Errorf("%w: eye must be finite", ErrInvalidParams)
	}
	return p.Policy.Validate()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
