package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/config"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// HUD colours
var (
	ColText    = rl.NewColor(220, 225, 235, 255)
	ColTextDim = rl.NewColor(110, 115, 130, 255)
	ColShade   = rl.NewColor(0, 0, 0, 120)
)

type App struct {
	Field   *field.Field
	Surface *Surface
	Pointer field.Pointer
	Seed    int64

	Presets  []string
	Selected int
	Running  bool
	ShowHUD  bool

	quit bool
	log  *slog.Logger
}

// initWindow opens a resizable window of the given size at 60 FPS with the
// default exit key disabled.
func initWindow(w, h int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w), int32(h), "backdrop")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(v field.Variant, seed int64, w, h int, log *slog.Logger) (*App, error) {
	f, err := field.New(v, field.Viewport{W: w, H: h}, seed)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	presets := config.ListPresets()
	selected := 0
	for i, name := range presets {
		if name == v.Name {
			selected = i
		}
	}
	return &App{
		Field:    f,
		Surface:  NewSurface(w, h),
		Seed:     seed,
		Presets:  presets,
		Selected: selected,
		Running:  true,
		ShowHUD:  true,
		log:      log,
	}, nil
}

// Run opens the preview window and blocks until it is closed.
func Run(v field.Variant, seed int64, w, h int, log *slog.Logger) error {
	initWindow(w, h)
	defer rl.CloseWindow()

	app, err := NewApp(v, seed, w, h, log)
	if err != nil {
		return err
	}
	defer app.Surface.Unload()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		a.Field.Resize(w, h)
		a.Surface.Resize(w, h)
		a.log.Debug("resize", "width", w, "height", h, "particles", a.Field.Len())
	}

	if rl.IsCursorOnScreen() && rl.IsWindowFocused() {
		m := rl.GetMousePosition()
		a.Pointer = field.At(float64(m.X), float64(m.Y))
	} else {
		a.Pointer = field.NoPointer
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		a.quit = true
	case rl.IsKeyPressed(rl.KeySpace):
		a.Running = !a.Running
	case rl.IsKeyPressed(rl.KeyR):
		vp := a.Field.Viewport()
		a.Field.Resize(vp.W, vp.H)
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHUD = !a.ShowHUD
	case rl.IsKeyPressed(rl.KeyTab):
		a.cycle()
	}

	if a.Running {
		// GetFrameTime is in seconds; the field steps in 60 Hz frames.
		dt := float64(rl.GetFrameTime()) * 60
		if dt <= 0 || dt > 4 {
			dt = 1
		}
		field.Advance(a.Field, dt, a.Pointer)
	}
}

// cycle switches to the next preset, keeping the viewport.
func (a *App) cycle() {
	a.Selected = (a.Selected + 1) % len(a.Presets)
	name := a.Presets[a.Selected]
	vp := a.Field.Viewport()
	f, err := field.New(*config.GetPreset(name), vp, a.Seed)
	if err != nil {
		a.log.Error("switch preset", "preset", name, "err", err)
		return
	}
	a.Field = f
	a.Surface.Reset()
	a.log.Info("preset", "name", name, "particles", f.Len())
}

func (a *App) Draw() {
	a.Surface.Begin()
	field.Render(a.Field, a.Surface)
	a.Surface.End()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	a.Surface.Present()
	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	h := int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, 340, 58, ColShade)
	rl.DrawText("backdrop", 16, 12, 20, ColText)
	rl.DrawText(fmt.Sprintf(":: %s", a.Field.Variant().Name), 120, 16, 16, ColText)

	status := "RUNNING"
	if !a.Running {
		status = "PAUSED"
	}
	info := fmt.Sprintf("%s  %d particles  %d links  %d FPS",
		status, a.Field.Len(), len(a.Field.Connections()), rl.GetFPS())
	rl.DrawText(info, 16, 36, 10, ColTextDim)

	rl.DrawText("[SPACE] PAUSE  [TAB] PRESET  [R] REGENERATE  [H] HUD  [Q] QUIT", 16, h-24, 10, ColTextDim)
}
