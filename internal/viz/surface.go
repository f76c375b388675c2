package viz

import (
	"math"

	"github.com/san-kum/fibzoom/internal/spiral"
)

// Braille dots have no alpha; strokes fainter than these are not drawn.
const (
	minOutlineAlpha = 32
	minCurveAlpha   = 128
	minLabelAlpha   = 128
)

// CanvasSurface replays frames onto a braille canvas. One screen pixel is one dot.
type CanvasSurface struct {
	Canvas *Canvas
}

// Viewport is the dot area a frame should be composed for.
func (s CanvasSurface) Viewport() spiral.Rect {
	return spiral.Rect{Max: spiral.Pt(float64(s.Canvas.SubWidth()), float64(s.Canvas.SubHeight()))}
}

func (s CanvasSurface) StrokeRect(r spiral.Rect, _ float64, c spiral.Color) {
	if c.A < minOutlineAlpha {
		return
	}
	x0, y0 := dot(r.Min.X), dot(r.Min.Y)
	x1, y1 := dot(r.Max.X), dot(r.Max.Y)
	s.Canvas.DrawLine(x0, y0, x1, y0, InkOutline)
	s.Canvas.DrawLine(x1, y0, x1, y1, InkOutline)
	s.Canvas.DrawLine(x1, y1, x0, y1, InkOutline)
	s.Canvas.DrawLine(x0, y1, x0, y0, InkOutline)
}

func (s CanvasSurface) Polyline(pts []spiral.Point, _ float64, c spiral.Color) {
	if c.A < minCurveAlpha {
		return
	}
	for i := 1; i < len(pts); i++ {
		s.Canvas.DrawLine(dot(pts[i-1].X), dot(pts[i-1].Y), dot(pts[i].X), dot(pts[i].Y), InkCurve)
	}
}

// Text writes the label into whole cells. Font size is ignored.
func (s CanvasSurface) Text(at spiral.Point, text string, _ float64, c spiral.Color) {
	if c.A < minLabelAlpha {
		return
	}
	col := int(math.Floor(at.X/2)) - len(text)/2
	row := int(math.Floor(at.Y / 4))
	s.Canvas.WriteText(col, row, text)
}

// dot rounds a pixel coordinate, saturating far off-canvas values.
func dot(v float64) int {
	const limit = 1 << 30
	switch {
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return int(math.Round(v))
}
