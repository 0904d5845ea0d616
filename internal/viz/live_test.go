package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/config"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.Starfield(), 1, 60, "starfield")
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStartsEmpty(t *testing.T) {
	m := newTestModel(t)
	if m.Field().Len() != 0 {
		t.Errorf("expected no particles before the first resize, got %d", m.Field().Len())
	}
	if m.Init() == nil {
		t.Error("Init should schedule a tick")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 25})

	if m.Canvas().Width != 80 || m.Canvas().Height != 24 {
		t.Errorf("canvas = %dx%d, want 80x24", m.Canvas().Width, m.Canvas().Height)
	}
	vp := m.Field().Viewport()
	if vp.W != 640 || vp.H != 384 {
		t.Errorf("field viewport = %dx%d, want 640x384", vp.W, vp.H)
	}
	// floor(640*384 / 3000)
	if m.Field().Len() != 81 {
		t.Errorf("expected 81 particles, got %d", m.Field().Len())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 0, Height: 0})
	if m.Field().Len() != 0 {
		t.Error("zero-sized terminal should empty the field")
	}
}

func TestModelPointer(t *testing.T) {
	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 25})

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	p := m.Pointer()
	if !p.Set || p.X != 84 || p.Y != 88 {
		t.Errorf("pointer = %+v, want (84, 88)", p)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease})
	if !m.Pointer().Set {
		t.Error("release should not move the pointer")
	}

	m, _ = update(t, m, tea.BlurMsg{})
	if m.Pointer().Set {
		t.Error("blur should unset the pointer")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 24, Action: tea.MouseActionMotion})
	if m.Pointer().Set {
		t.Error("status bar row should count as leaving the canvas")
	}
}

func TestModelTick(t *testing.T) {
	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 40, Height: 13})

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Field().Frame() != 1 {
		t.Errorf("expected frame 1, got %d", m.Field().Frame())
	}
	if m.Canvas().Lit() == 0 {
		t.Error("tick should render the field")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Running() {
		t.Fatal("space should pause")
	}
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.Field().Frame() != 1 {
		t.Error("paused model should not advance")
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.Theme().Name != "network" {
		t.Errorf("expected network theme, got %s", m.Theme().Name)
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 40, Height: 13})
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	if !strings.Contains(view, "STARFIELD") || !strings.Contains(view, "particles") {
		t.Errorf("status bar missing from view:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay not shown")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "starfield" {
		t.Error("unknown theme should fall back to starfield")
	}
	if NextTheme("minimal").Name != "starfield" {
		t.Error("NextTheme should wrap")
	}
	SetTheme("ink")
	defer SetTheme("starfield")
	if CurrentTheme.Name != "ink" {
		t.Error("SetTheme did not apply")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}
