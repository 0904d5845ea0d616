package web

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/config"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/page"
)

// anchorKeys jump to the first nine cards.
var anchorKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

type Game struct {
	field    *field.Field
	surface  *Surface
	frames   frameSync
	overlay  *Overlay
	pageCfg  config.PageConfig
	doc      *page.Page
	scroll   *page.Scroller
	pointer  field.Pointer
	hovered  int
	ticks    int
	w, h     int
	showPage bool
	log      *slog.Logger
}

func NewGame(v field.Variant, seed int64, pc config.PageConfig, log *slog.Logger) (*Game, error) {
	f, err := field.New(v, field.Viewport{}, seed)
	if err != nil {
		return nil, err
	}
	overlay, err := NewOverlay()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Game{
		field:    f,
		overlay:  overlay,
		pageCfg:  pc,
		doc:      page.Layout(pc, 0),
		scroll:   page.NewScroller(),
		frames:   frameSync{last: -1},
		hovered:  -1,
		showPage: true,
		log:      log,
	}, nil
}

// Elapsed is the time since load in simulated 60 Hz ticks.
func (g *Game) Elapsed() time.Duration {
	return elapsed(g.ticks, ebiten.TPS())
}

func elapsed(ticks, tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Duration(ticks) * time.Second / time.Duration(tps)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.showPage = !g.showPage
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	g.pointer = pointerAt(x, y, g.w, g.h, ebiten.IsFocused())

	for i, k := range anchorKeys {
		if i >= len(g.doc.Cards) {
			break
		}
		if inpututil.IsKeyJustPressed(k) {
			g.jump("#" + g.doc.Cards[i].ID)
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scroll.ScrollTo(clampScroll(g.scroll.Target-wy*40, g.doc.MaxScroll(float64(g.h))))
	}

	g.hovered = -1
	if g.pointer.Set && g.showPage {
		g.hovered = g.doc.HoveredTag(g.pointer.X, g.pointer.Y+g.scroll.Offset)
	}

	field.Advance(g.field, 1, g.pointer)
	g.scroll.Step(1)
	g.ticks++
	return nil
}

// jump smooth-scrolls to an in-page anchor; unknown targets are ignored.
func (g *Game) jump(href string) {
	y, ok := page.ResolveAnchor(href, g.doc.Anchors)
	if !ok {
		g.log.Debug("anchor without target", "href", href)
		return
	}
	g.scroll.ScrollTo(clampScroll(y, g.doc.MaxScroll(float64(g.h))))
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		return
	}
	g.frames.render(g.field, g.surface)
	screen.DrawImage(g.surface.Image(), nil)
	if g.showPage {
		g.overlay.Draw(screen, g.doc, g.scroll.Offset, g.Elapsed(), g.hovered)
	}
}

// frameSync renders each field frame once. Draw runs more often than
// Update on fast displays, and a second translucent fill or grain pass on
// the same frame would shorten the trails.
type frameSync struct{ last int }

func (fs *frameSync) render(f *field.Field, s field.Surface) bool {
	if f.Frame() == fs.last {
		return false
	}
	fs.last = f.Frame()
	field.Render(f, s)
	return true
}

// Layout follows the window (or browser canvas) size. A change of size
// regenerates the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h || g.surface == nil {
		g.w, g.h = outsideWidth, outsideHeight
		g.field.Resize(g.w, g.h)
		if g.surface == nil {
			g.surface = NewSurface(g.w, g.h)
		} else {
			g.surface.Resize(g.w, g.h)
		}
		g.frames.last = -1
		g.doc = page.Layout(g.pageCfg, float64(g.w))
		g.scroll.ScrollTo(clampScroll(g.scroll.Target, g.doc.MaxScroll(float64(g.h))))
		g.log.Debug("layout", "width", g.w, "height", g.h, "particles", g.field.Len())
	}
	return outsideWidth, outsideHeight
}

// Run opens the page window and blocks until it is closed.
func Run(v field.Variant, seed int64, w, h int, pc config.PageConfig, log *slog.Logger) error {
	g, err := NewGame(v, seed, pc, log)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("backdrop :: " + v.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// pointerAt maps a cursor position to the field pointer. A cursor outside
// the window or an unfocused window leaves the field.
func pointerAt(x, y, w, h int, focused bool) field.Pointer {
	if !focused || x < 0 || y < 0 || x >= w || y >= h {
		return field.NoPointer
	}
	return field.At(float64(x), float64(y))
}

func clampScroll(y, maxY float64) float64 {
	if y < 0 {
		return 0
	}
	if y > maxY {
		return maxY
	}
	return y
}
