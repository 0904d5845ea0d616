package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

const (
	// DefaultScale is the number of field pixels per Braille dot.
	DefaultScale = 4
	statusHeight = 1
)

type TickMsg time.Time

// Model hosts one field in the terminal. Terminal cells are 2x4 dots and
// every dot covers Scale field pixels.
type Model struct {
	field   *field.Field
	surface *Surface
	pointer field.Pointer
	theme   Theme
	scale   float64
	fps     int

	cols, rows int
	running    bool
	showHelp   bool
	links      int
}

func NewModel(v field.Variant, seed int64, fps int, theme string) (Model, error) {
	if fps <= 0 {
		fps = 60
	}
	f, err := field.New(v, field.Viewport{}, seed)
	if err != nil {
		return Model{}, err
	}
	return Model{
		field:   f,
		surface: NewSurface(NewCanvas(0, 0), DefaultScale),
		theme:   GetTheme(theme),
		scale:   DefaultScale,
		fps:     fps,
		running: true,
	}, nil
}

func (m Model) Field() *field.Field    { return m.field }
func (m Model) Pointer() field.Pointer { return m.pointer }
func (m Model) Canvas() *Canvas        { return m.surface.Canvas }
func (m Model) Theme() Theme           { return m.theme }
func (m Model) Running() bool          { return m.running }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height-statusHeight)
	case tea.MouseMsg:
		m.track(msg)
	case tea.BlurMsg:
		m.pointer = field.NoPointer
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			vp := m.field.Viewport()
			m.field.Resize(vp.W, vp.H)
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			field.Advance(m.field, 1, m.pointer)
		}
		field.Render(m.field, m.surface)
		m.links = len(m.field.Connections())
		return m, m.tick()
	}
	return m, nil
}

// resize rebuilds the canvas for a terminal of cols x rows cells and
// regenerates the field at the matching pixel size.
func (m *Model) resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	m.cols, m.rows = cols, rows
	m.surface.Canvas = NewCanvas(cols, rows)
	w, h := m.surface.Canvas.Dots()
	m.field.Resize(int(float64(w)*m.scale), int(float64(h)*m.scale))
}

// track maps a mouse event to the pointer. The cell centre stands in for
// the cursor; rows under the canvas count as leaving it.
func (m *Model) track(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return
	}
	if msg.X < 0 || msg.Y < 0 || msg.X >= m.cols || msg.Y >= m.rows {
		m.pointer = field.NoPointer
		return
	}
	x := (float64(msg.X)*2 + 1) * m.scale
	y := (float64(msg.Y)*4 + 2) * m.scale
	m.pointer = field.At(x, y)
}

func (m Model) View() string {
	canvas := lipgloss.NewStyle().
		Foreground(m.theme.Primary).
		Background(m.theme.Background).
		Render(m.surface.Canvas.String())

	if m.showHelp {
		return helpView(m.theme) + "\n" + m.statusBar()
	}
	return canvas + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	label := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	state := "RUNNING"
	if !m.running {
		state = "PAUSED"
	}
	pointer := "-"
	if m.pointer.Set {
		pointer = fmt.Sprintf("%.0f,%.0f", m.pointer.X, m.pointer.Y)
	}
	vp := m.field.Viewport()

	parts := []string{
		label.Render(strings.ToUpper(m.field.Variant().Name)),
		value.Render(state),
		muted.Render("particles ") + value.Render(fmt.Sprint(m.field.Len())),
		muted.Render("links ") + value.Render(fmt.Sprint(m.links)),
		muted.Render("field ") + value.Render(fmt.Sprintf("%dx%d", vp.W, vp.H)),
		muted.Render("pointer ") + value.Render(pointer),
		muted.Render("?:help"),
	}
	return strings.Join(parts, "  ")
}

func helpView(t Theme) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Foreground(t.Text).
		Padding(0, 2)
	return box.Render(strings.Join([]string{
		"KEYBOARD SHORTCUTS",
		"",
		"Space  Pause/Resume",
		"R      Regenerate particles",
		"T      Cycle themes",
		"?      Toggle this help",
		"Q      Quit",
		"",
		"Move the mouse over the canvas to disturb the field.",
	}, "\n"))
}

// Run starts the preview full-screen with mouse motion and focus reporting.
func Run(v field.Variant, seed int64, fps int, theme string) error {
	m, err := NewModel(v, seed, fps, theme)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	_, err = p.Run()
	return err
}
