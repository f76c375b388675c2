package spiral

import "strconv"

// Surface is the drawing target a frame is replayed onto. Coordinates are in
// pixels of the viewport the frame was composed for.
type Surface interface {
	StrokeRect(r Rect, width float64, c Color)
	Polyline(pts []Point, width float64, c Color)
	// Text draws s centred on at.
	Text(at Point, s string, size float64, c Color)
}

type CommandKind int

const (
	CmdStrokeRect CommandKind = iota
	CmdPolyline
	CmdText
)

// Command is a single draw call. Only the fields relevant to Kind are set.
type Command struct {
	Kind   CommandKind
	Rect   Rect
	Points []Point
	At     Point
	Text   string
	Width  float64 // stroke width, or font size for text
	Color  Color
}

// Stroke widths and colors of a square's outline, glow and curve.
const (
	OutlineWidth = 1.0
	GlowWidth    = 6.0
	CurveWidth   = 3.0
)

func outlineColor(alpha uint8) Color { return White(alpha / 4) }
func labelColor(alpha uint8) Color   { return White(alpha) }
func glowColor(alpha uint8) Color    { return Premul(255, 140, 0, alpha/6) }
func curveColor(alpha uint8) Color   { return Premul(255, 160, 20, alpha) }

// Stats summarises how the terms of a frame were treated.
type Stats struct {
	Terms       int
	Visible     int
	Labels      int
	CulledSmall int
	// StoppedAt is the index of the square that ended the frame, or -1.
	StoppedAt int
	Scale     float64
}

// Frame is everything a host needs to paint one refresh.
type Frame struct {
	Clock    Clock
	Viewport Rect
	Commands []Command
	Stats    Stats
	// Repaint is always true: the animation never idles.
	Repaint bool
}

// Step advances the clock by one frame and composes the frame for the new time.
func Step(c Clock, viewport Rect, p Params) (Frame, Clock) {
	next := c.Advance(p.Step, p.ResetPeriod)
	return Compose(next, viewport, p), next
}

// Compose builds the draw commands for clock c. A viewport without area
// yields an empty frame.
func Compose(c Clock, viewport Rect, p Params) Frame {
	f := Frame{
		Clock:    c,
		Viewport: viewport,
		Repaint:  true,
		Stats:    Stats{StoppedAt: -1},
	}
	if viewport.Empty() {
		return f
	}

	w := viewport.Width()
	proj := NewProjection(c.Time, p.BaseScale, p.Eye, viewport)
	f.Stats.Scale = proj.Scale

	terms := Sequence(p.MaxTerms, p.Ceiling)
	f.Stats.Terms = len(terms)
	tiler := NewTiler()

	for _, s := range terms {
		sq := tiler.Place(s)
		screen := proj.ApplyRect(sq.Rect)
		px := screen.Width()

		vis, alpha := p.Policy.Classify(px, w)
		if vis == CullSmall {
			f.Stats.CulledSmall++
			continue
		}
		if vis == CullLarge {
			f.Stats.StoppedAt = sq.Index
			break
		}
		f.Stats.Visible++

		f.Commands = append(f.Commands, Command{
			Kind:  CmdStrokeRect,
			Rect:  screen,
			Width: OutlineWidth,
			Color: outlineColor(alpha),
		})

		if p.Policy.ShouldLabel(px, alpha) {
			f.Stats.Labels++
			f.Commands = append(f.Commands, Command{
				Kind:  CmdText,
				At:    screen.Center(),
				Text:  strconv.FormatInt(int64(sq.Value), 10),
				Width: p.Policy.LabelSize(px),
				Color: labelColor(alpha),
			})
		}

		pts := ArcPoints(sq, proj, p.ArcSteps)
		f.Commands = append(f.Commands,
			Command{Kind: CmdPolyline, Points: pts, Width: GlowWidth, Color: glowColor(alpha)},
			Command{Kind: CmdPolyline, Points: pts, Width: CurveWidth, Color: curveColor(alpha)},
		)
	}
	return f
}

// Replay issues the frame's commands in order.
func (f Frame) Replay(s Surface) {
	for _, cmd := range f.Commands {
		switch cmd.Kind {
		case CmdStrokeRect:
			s.StrokeRect(cmd.Rect, cmd.Width, cmd.Color)
		case CmdPolyline:
			s.Polyline(cmd.Points, cmd.Width, cmd.Color)
		case CmdText:
			s.Text(cmd.At, cmd.Text, cmd.Width, cmd.Color)
		}
	}
}
