package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Ink records what was last drawn into a cell so it can be colored.
type Ink uint8

const (
	InkNone Ink = iota
	InkOutline
	InkCurve
	InkLabel
)

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Ink           [][]Ink
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Ink:    make([][]Ink, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]Ink, w)
	}
	c.Clear()
	return c
}

// SubWidth and SubHeight are the canvas size in dots.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set turns on the dot at sub-pixel (x, y). Cells holding label text are left alone.
func (c *Canvas) Set(x, y int, ink Ink) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	if c.Ink[row][col] == InkLabel {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if ink > c.Ink[row][col] {
		c.Ink[row][col] = ink
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Ink[i][j] = InkNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm. Endpoints far outside the
// canvas are clipped first so huge squares do not walk millions of dots.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, ink Ink) {
	var ok bool
	if x0, y0, x1, y1, ok = c.clip(x0, y0, x1, y1); !ok {
		return
	}

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// clip applies Liang-Barsky clipping against the canvas dot bounds.
func (c *Canvas) clip(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)
	xmax, ymax := float64(c.SubWidth()-1), float64(c.SubHeight()-1)

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0},
		{dx, xmax - fx0},
		{-dy, fy0},
		{dy, ymax - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return int(fx0 + t0*dx + 0.5), int(fy0 + t0*dy + 0.5),
		int(fx0 + t1*dx + 0.5), int(fy0 + t1*dy + 0.5), true
}

// WriteText places s in cells starting at (col, row), replacing any dots there.
func (c *Canvas) WriteText(col, row int, s string) {
	if row < 0 || row >= c.Height {
		return
	}
	for i, r := range []rune(s) {
		x := col + i
		if x < 0 || x >= c.Width {
			continue
		}
		c.Grid[row][x] = r
		c.Ink[row][x] = InkLabel
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colors each run of cells by its ink.
func (c *Canvas) Render(t Theme) string {
	styles := map[Ink]lipgloss.Style{
		InkNone:    lipgloss.NewStyle(),
		InkOutline: lipgloss.NewStyle().Foreground(t.Outline),
		InkCurve:   lipgloss.NewStyle().Foreground(t.Curve).Bold(true),
		InkLabel:   lipgloss.NewStyle().Foreground(t.Label).Bold(true),
	}

	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Ink[row][col] == c.Ink[row][start] {
				continue
			}
			b.WriteString(styles[c.Ink[row][start]].Render(string(c.Grid[row][start:col])))
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
