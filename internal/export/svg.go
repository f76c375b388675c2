package export

import (
	"fmt"
	"html"
	"math"
	"os"
	"strings"

	"github.com/san-kum/fibzoom/internal/spiral"
)

// SVGSurface collects frame commands as SVG elements.
type SVGSurface struct {
	sb strings.Builder
}

func (s *SVGSurface) StrokeRect(r spiral.Rect, width float64, c spiral.Color) {
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke-width="%g" %s/>
`, r.Min.X, r.Min.Y, r.Width(), r.Height(), width, paint("stroke", c)))
}

func (s *SVGSurface) Polyline(pts []spiral.Point, width float64, c spiral.Color) {
	if len(pts) < 2 {
		return
	}
	s.sb.WriteString(`<polyline fill="none" stroke-linecap="round" stroke-linejoin="round" points="`)
	for i, p := range pts {
		if i > 0 {
			s.sb.WriteByte(' ')
		}
		s.sb.WriteString(fmt.Sprintf("%.2f,%.2f", p.X, p.Y))
	}
	s.sb.WriteString(fmt.Sprintf(`" stroke-width="%g" %s/>
`, width, paint("stroke", c)))
}

func (s *SVGSurface) Text(at spiral.Point, text string, size float64, c spiral.Color) {
	s.sb.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" font-size="%g" text-anchor="middle" dominant-baseline="central" %s>%s</text>
`, at.X, at.Y, size, paint("fill", c), html.EscapeString(text)))
}

// paint formats a color as an SVG paint attribute with opacity. SVG blends
// straight alpha, so premultiplied channels are used as they are.
func paint(attr string, c spiral.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf(`%s="#%02x%02x%02x" %s-opacity="%.3f"`, attr, n.R, n.G, n.B, attr, float64(n.A)/255)
}

// FrameToSVG renders a frame as a standalone SVG document on a black background.
func FrameToSVG(f spiral.Frame) string {
	width := math.Ceil(f.Viewport.Width())
	height := math.Ceil(f.Viewport.Height())
	if f.Viewport.Empty() {
		width, height = 0, 0
	}

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="%.2f %.2f %.0f %.0f" font-family="sans-serif">
<rect x="%.2f" y="%.2f" width="100%%" height="100%%" fill="#000000"/>
`, width, height, f.Viewport.Min.X, f.Viewport.Min.Y, width, height, f.Viewport.Min.X, f.Viewport.Min.Y))

	var s SVGSurface
	f.Replay(&s)
	sb.WriteString(s.sb.String())

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteSVG renders f to path.
func WriteSVG(path string, f spiral.Frame) error {
	return os.WriteFile(path, []byte(FrameToSVG(f)), 0644)
}
