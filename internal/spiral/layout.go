package spiral

import "math"

// Square is one Fibonacci term placed in model space together with the
// quarter-circle arc it contributes to the spiral.
type Square struct {
	Index     int
	Value     float64
	Rect      Rect
	ArcCenter Point
	ArcStart  float64 // radians; the arc sweeps a quarter turn from here
}

// Size is the side length of the square, which is also the arc radius.
func (s Square) Size() float64 { return s.Rect.Width() }

// Tiler places successive terms around a running bounding rectangle, turning
// through four placement directions. Placing against the bounds rather than
// closed-form golden positions keeps the tiling exact under rounding.
type Tiler struct {
	bounds Rect
	next   int
}

// NewTiler returns a tiler whose bounds start as the unit square.
func NewTiler() *Tiler {
	return &Tiler{bounds: Rect{Min: Pt(0, 0), Max: Pt(1, 1)}}
}

// Bounds is the union of the unit square and every square placed so far.
func (t *Tiler) Bounds() Rect { return t.bounds }

// Place lays out the next term with side s and extends the bounds to cover it.
func (t *Tiler) Place(s float64) Square {
	i := t.next
	t.next++

	min, max := t.bounds.Min, t.bounds.Max
	var pos, center Point
	var start float64

	switch {
	case i == 0:
		pos, center, start = Pt(0, 0), Pt(0, 1), 0
	case i%4 == 1:
		pos = Pt(min.X, min.Y-s)
		center, start = Pt(pos.X, pos.Y+s), 1.5*math.Pi
	case i%4 == 2:
		pos = Pt(min.X-s, min.Y)
		center, start = Pt(pos.X+s, pos.Y+s), math.Pi
	case i%4 == 3:
		pos = Pt(min.X, max.Y)
		center, start = Pt(pos.X+s, pos.Y), 0.5*math.Pi
	default:
		pos = Pt(max.X, min.Y)
		center, start = pos, 0
	}

	sq := Square{
		Index:     i,
		Value:     s,
		Rect:      RectFromSize(pos, s, s),
		ArcCenter: center,
		ArcStart:  start,
	}
	t.bounds = t.bounds.Union(sq.Rect)
	return sq
}

// Layout places every term in order.
func Layout(terms []float64) []Square {
	t := NewTiler()
	out := make([]Square, len(terms))
	for i, s := range terms {
		out[i] = t.Place(s)
	}
	return out
}
