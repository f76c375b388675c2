package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fibzoom/internal/config"
	"github.com/san-kum/fibzoom/internal/logging"
	"github.com/san-kum/fibzoom/internal/spiral"
)

const (
	width           = 80
	height          = 24
	statsWidth      = 34
	historyCapacity = 120
)

type TickMsg time.Time

// Model drives the spiral in the terminal. It owns the clock; everything else
// is recomputed each tick.
type Model struct {
	params  spiral.Params
	clock   spiral.Clock
	canvas  *Canvas
	frame   spiral.Frame
	visible []float64
	theme   Theme
	styles  styles
	fps     int
	log     logging.Logger
}

// NewModel creates a preview with a default-sized canvas; the first
// WindowSizeMsg resizes it to the terminal.
func NewModel(params spiral.Params, theme Theme, fps int, log logging.Logger) Model {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	if log == nil {
		log = logging.Nop()
	}
	return Model{
		params:  params,
		canvas:  NewCanvas(width-statsWidth, height-1),
		visible: make([]float64, 0, historyCapacity),
		theme:   theme,
		styles:  newStyles(theme),
		fps:     fps,
		log:     log,
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.fps)
}

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update advances one frame per tick. Keys never touch the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.nextTheme()
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.step()
		return m, tick(m.fps)
	}
	return m, nil
}

func (m *Model) nextTheme() {
	for i, t := range Themes {
		if t.Name == m.theme.Name {
			m.theme = Themes[(i+1)%len(Themes)]
			m.styles = newStyles(m.theme)
			return
		}
	}
	m.theme = Themes[0]
	m.styles = newStyles(m.theme)
}

func (m *Model) resize(w, h int) {
	cols := w - statsWidth - 4
	rows := h - 1
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}
	m.canvas = NewCanvas(cols, rows)
}

// scaled keeps the composition of the 1000px window on a canvas of any size.
// Absolute pixel thresholds shrink with the geometry so squares fade, label
// and cull at the same point of the zoom as in the window.
func (m *Model) scaled() spiral.Params {
	k := float64(m.canvas.SubWidth()) / config.DefaultWidth
	p := m.params
	p.BaseScale *= k
	p.Policy.MinPx *= k
	p.Policy.FadeInPx *= k
	p.Policy.LabelMinPx *= k
	return p
}

func (m *Model) step() {
	surface := CanvasSurface{Canvas: m.canvas}
	prev := m.clock

	m.frame, m.clock = spiral.Step(m.clock, surface.Viewport(), m.scaled())
	if prev.Wrapped(m.clock) {
		m.log.Debug("cycle complete", logging.Int("cycle", m.clock.Cycle))
	}

	m.canvas.Clear()
	m.frame.Replay(surface)

	m.visible = append(m.visible, float64(m.frame.Stats.Visible))
	if len(m.visible) > historyCapacity {
		m.visible = m.visible[1:]
	}
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	st := m.frame.Stats
	var s strings.Builder

	s.WriteString(m.styles.header.Render("FIBONACCI ZOOM") + "\n")
	row := func(label, value string) {
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	row("Cycle", fmt.Sprintf("%d", m.clock.Cycle))
	row("Time", fmt.Sprintf("%.3f", m.clock.Time))
	row("Scale", fmt.Sprintf("%.4f", st.Scale))
	row("Terms", fmt.Sprintf("%d", st.Terms))
	row("Visible", fmt.Sprintf("%d", st.Visible))
	row("Labels", fmt.Sprintf("%d", st.Labels))
	if st.StoppedAt >= 0 {
		row("Stop", fmt.Sprintf("#%d", st.StoppedAt))
	} else {
		row("Stop", "-")
	}

	if len(m.visible) > 1 {
		chart := asciigraph.Plot(m.visible,
			asciigraph.Height(5),
			asciigraph.Width(statsWidth-16),
			asciigraph.Caption("visible squares"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}
	s.WriteString(m.styles.help.Render("T: Theme  Q: Quit"))

	canvasView := m.styles.canvas.Render(m.canvas.Render(m.theme))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.stats.Render(s.String()))
}

// Run starts the terminal preview and blocks until the user quits.
func Run(params spiral.Params, theme Theme, fps int, log logging.Logger) error {
	p := tea.NewProgram(NewModel(params, theme, fps, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
