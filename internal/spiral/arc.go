package spiral

import "math"

// ArcPoints samples the quarter circle of a square, from its start angle
// through a quarter turn, and projects each sample. It returns steps+1 points
// so both ends of the arc are included.
func ArcPoints(sq Square, proj Projection, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	r := sq.Size()
	pts := make([]Point, steps+1)
	for i := range pts {
		a := sq.ArcStart + float64(i)/float64(steps)*(math.Pi/2)
		m := sq.ArcCenter.Add(Pt(r*math.Cos(a), r*math.Sin(a)))
		pts[i] = proj.Apply(m)
	}
	return pts
}
