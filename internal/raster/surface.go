package raster

import (
	"github.com/gogpu/gg"

	"github.com/san-kum/fibzoom/internal/spiral"
)

// Surface replays frames onto a gg context. gg blends straight alpha, so
// premultiplied colors are passed through channel for channel.
//
// Stroke failures do not stop the replay; the first one is kept in Err.
type Surface struct {
	dc    *gg.Context
	faces *FaceCache
	err   error
}

func NewSurface(dc *gg.Context, faces *FaceCache) *Surface {
	return &Surface{dc: dc, faces: faces}
}

func (s *Surface) StrokeRect(r spiral.Rect, width float64, c spiral.Color) {
	s.dc.SetColor(c.NRGBA())
	s.dc.SetLineWidth(width)
	s.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	s.stroke()
}

func (s *Surface) Polyline(pts []spiral.Point, width float64, c spiral.Color) {
	if len(pts) < 2 {
		return
	}
	s.dc.SetColor(c.NRGBA())
	s.dc.SetLineWidth(width)
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.stroke()
}

func (s *Surface) Text(at spiral.Point, str string, size float64, c spiral.Color) {
	if s.faces == nil {
		return
	}
	s.dc.SetFont(s.faces.Face(size))
	s.dc.SetColor(c.NRGBA())
	s.dc.DrawStringAnchored(str, at.X, at.Y, 0.5, 0.5)
}

func (s *Surface) Err() error {
	return s.err
}

func (s *Surface) stroke() {
	if err := s.dc.Stroke(); err != nil && s.err == nil {
		s.err = err
	}
}
