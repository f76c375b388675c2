package gui

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/fibzoom/internal/config"
	"github.com/san-kum/fibzoom/internal/logging"
	"github.com/san-kum/fibzoom/internal/spiral"
)

var ColBg = rl.NewColor(0, 0, 0, 255)

var ErrWindowInit = errors.New("gui: window could not be created")

// App owns the animation clock and repaints one frame per refresh.
type App struct {
	Params  spiral.Params
	Clock   spiral.Clock
	Frame   spiral.Frame
	surface *Surface
	log     logging.Logger
}

func initWindow(w config.WindowConfig) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	if !rl.IsWindowReady() {
		return ErrWindowInit
	}
	rl.SetTargetFPS(int32(w.FPS))
	return nil
}

func NewApp(params spiral.Params, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		Params:  params,
		surface: NewSurface(rl.GetFontDefault()),
		log:     log,
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log logging.Logger) error {
	if log == nil {
		log = logging.Nop()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := initWindow(cfg.Window); err != nil {
		return err
	}
	defer rl.CloseWindow()

	log.Info("window opened",
		logging.String("title", cfg.Window.Title),
		logging.Int("width", cfg.Window.Width),
		logging.Int("height", cfg.Window.Height),
		logging.Int("fps", cfg.Window.FPS))

	app := NewApp(cfg.Params(), log)
	app.RunLoop()

	log.Info("window closed", logging.Int("cycles", app.Clock.Cycle))
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update advances the clock and composes the frame for the current window size.
func (a *App) Update() {
	viewport := spiral.RectFromSize(spiral.Point{}, float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))

	prev := a.Clock
	a.Frame, a.Clock = spiral.Step(a.Clock, viewport, a.Params)
	if prev.Wrapped(a.Clock) {
		a.log.Debug("cycle complete",
			logging.Int("cycle", a.Clock.Cycle),
			logging.Int("visible", a.Frame.Stats.Visible))
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.Frame.Replay(a.surface)
	a.surface.Flush()

	rl.EndDrawing()
}
