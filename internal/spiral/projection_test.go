package spiral

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPhi(t *testing.T) {
	if math.Abs(Phi-(1+math.Sqrt(5))/2) > 1e-15 {
		t.Errorf("Phi = %v", Phi)
	}
}

func TestProjectionScale(t *testing.T) {
	viewport := Rect{Max: Pt(1000, 800)}

	p := NewProjection(0, DefaultBaseScale, DefaultEye, viewport)
	if p.Scale != DefaultBaseScale {
		t.Errorf("expected scale %v at t=0, got %v", DefaultBaseScale, p.Scale)
	}
	if p.Center != Pt(500, 400) {
		t.Errorf("expected centre (500,400), got %+v", p.Center)
	}

	// One unit of time shrinks the view by exactly one golden step.
	p1 := NewProjection(1, DefaultBaseScale, DefaultEye, viewport)
	if math.Abs(p.Scale/p1.Scale-Phi) > 1e-12 {
		t.Errorf("expected ratio Phi, got %v", p.Scale/p1.Scale)
	}
}

func TestProjectionApply(t *testing.T) {
	p := NewProjection(0, DefaultBaseScale, DefaultEye, Rect{Max: Pt(1000, 800)})
	got := p.ApplyRect(Rect{Pt(0, 0), Pt(1, 1)})

	want := Rect{Pt(384.22304, 355.77712), Pt(544.22304, 515.77712)}
	if !approxRect(got, want, 1e-3) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if math.Abs(got.Width()-160) > 1e-9 {
		t.Errorf("expected width 160, got %v", got.Width())
	}
}

func TestProjectionFixedPoint_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("eye maps to viewport centre", prop.ForAll(
		func(time, x0, y0, w, h float64) bool {
			viewport := RectFromSize(Pt(x0, y0), w, h)
			p := NewProjection(time, DefaultBaseScale, DefaultEye, viewport)
			return p.Apply(DefaultEye) == viewport.Center()
		},
		gen.Float64Range(0, DefaultResetPeriod),
		gen.Float64Range(-500, 500),
		gen.Float64Range(-500, 500),
		gen.Float64Range(1, 4000),
		gen.Float64Range(1, 4000),
	))

	properties.TestingRun(t)
}

func approxRect(a, b Rect, tol float64) bool {
	return math.Abs(a.Min.X-b.Min.X) <= tol && math.Abs(a.Min.Y-b.Min.Y) <= tol &&
		math.Abs(a.Max.X-b.Max.X) <= tol && math.Abs(a.Max.Y-b.Max.Y) <= tol
}
