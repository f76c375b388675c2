package spiral

import (
	"image/color"
	"math"
)

// Phi is the golden ratio (1+√5)/2.
const Phi = 1.61803398874989484820458683436563811772030917980576286213544862

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Rect is an axis-aligned rectangle. Min is the top-left corner in screen space.
type Rect struct {
	Min, Max Point
}

// RectFromSize returns the rectangle with corner min and the given width and height.
func RectFromSize(min Point, w, h float64) Rect {
	return Rect{Min: min, Max: Point{min.X + w, min.Y + h}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y &&
		o.Max.X <= r.Max.X && o.Max.Y <= r.Max.Y
}

// Empty reports whether r has no positive area.
func (r Rect) Empty() bool {
	return !(r.Width() > 0) || !(r.Height() > 0)
}

// Color is an 8-bit RGBA color. When Premultiplied is set the RGB channels are
// meant to be blended as already multiplied by alpha.
type Color struct {
	R, G, B, A    uint8
	Premultiplied bool
}

// White returns white with the given straight alpha.
func White(a uint8) Color {
	return Color{R: 255, G: 255, B: 255, A: a}
}

// Premul returns a premultiplied color.
func Premul(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, Premultiplied: true}
}

// NRGBA returns the color as straight alpha. Premultiplied channels are kept
// as the hue, so on surfaces without premultiplied blending the glow renders
// as a faint tint of the same color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
