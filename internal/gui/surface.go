package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/fibzoom/internal/spiral"
)

const textSpacing = 1

// Surface draws frame commands with raylib. Premultiplied colors are drawn
// under the premultiplied blend mode, which is switched only when the color
// kind changes between commands.
type Surface struct {
	Font    rl.Font
	premult bool
}

func NewSurface(font rl.Font) *Surface {
	return &Surface{Font: font}
}

func (s *Surface) StrokeRect(r spiral.Rect, width float64, c spiral.Color) {
	s.blend(c)
	rect := rl.NewRectangle(float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()))
	rl.DrawRectangleLinesEx(rect, float32(width), toColor(c))
}

func (s *Surface) Polyline(pts []spiral.Point, width float64, c spiral.Color) {
	s.blend(c)
	col := toColor(c)
	for i := 1; i < len(pts); i++ {
		rl.DrawLineEx(toVec(pts[i-1]), toVec(pts[i]), float32(width), col)
	}
}

func (s *Surface) Text(at spiral.Point, text string, size float64, c spiral.Color) {
	s.blend(c)
	fs := float32(size)
	m := rl.MeasureTextEx(s.Font, text, fs, textSpacing)
	pos := rl.NewVector2(float32(at.X)-m.X/2, float32(at.Y)-m.Y/2)
	rl.DrawTextEx(s.Font, text, pos, fs, textSpacing, toColor(c))
}

// Flush restores the default blend mode at the end of a frame.
func (s *Surface) Flush() {
	if s.premult {
		rl.EndBlendMode()
		s.premult = false
	}
}

func (s *Surface) blend(c spiral.Color) {
	if c.Premultiplied == s.premult {
		return
	}
	if s.premult {
		rl.EndBlendMode()
	} else {
		rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	}
	s.premult = c.Premultiplied
}

func toColor(c spiral.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func toVec(p spiral.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}
