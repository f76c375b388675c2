package spiral

import "math"

// Projection maps model space to screen space with a uniform scale about the
// eye point, which lands on the viewport centre.
type Projection struct {
	Center Point
	Eye    Point
	Scale  float64
}

// NewProjection builds the transform for animation time t. The scale shrinks
// by a factor of Phi per unit of time, the same rate at which successive
// squares grow, so the zoom looks endless.
func NewProjection(t, baseScale float64, eye Point, viewport Rect) Projection {
	return Projection{
		Center: viewport.Center(),
		Eye:    eye,
		Scale:  baseScale / math.Pow(Phi, t),
	}
}

// Apply maps a model point to the screen.
func (p Projection) Apply(m Point) Point {
	return p.Center.Add(m.Sub(p.Eye).Mul(p.Scale))
}

// ApplyRect maps both corners of a model rectangle.
func (p Projection) ApplyRect(r Rect) Rect {
	return Rect{Min: p.Apply(r.Min), Max: p.Apply(r.Max)}
}
