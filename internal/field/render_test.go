package field

import (
	"image/color"
	"testing"
)

type recorder struct {
	ops    []string
	lines  []color.NRGBA
	glows  int
	discs  int
	grains int
}

func (r *recorder) Fill(bg Background) { r.ops = append(r.ops, "fill") }

func (r *recorder) Line(x1, y1, x2, y2, width float64, from, to color.NRGBA) {
	r.ops = append(r.ops, "line")
	r.lines = append(r.lines, from)
}

func (r *recorder) Glow(x, y, radius float64, c color.NRGBA, stops []Stop) {
	r.ops = append(r.ops, "glow")
	r.glows++
}

func (r *recorder) Disc(x, y, radius float64, c color.NRGBA) {
	r.ops = append(r.ops, "disc")
	r.discs++
}

type grainRecorder struct{ recorder }

func (g *grainRecorder) Grain(amount float64, seed int64) { g.grains++ }

func TestRenderOrder(t *testing.T) {
	f, _ := New(testVariant(), Viewport{300, 300}, 1)
	f.particles = []Particle{
		{X: 10, Y: 10, Size: 1, Radius: 1, Opacity: 1, Color: color.NRGBA{255, 255, 255, 255}},
		{X: 20, Y: 10, Size: 1, Radius: 1, Opacity: 1, Color: color.NRGBA{255, 255, 255, 255}},
	}

	r := &recorder{}
	Render(f, r)

	want := []string{"fill", "line", "glow", "disc", "glow", "disc"}
	if len(r.ops) != len(want) {
		t.Fatalf("expected ops %v, got %v", want, r.ops)
	}
	for i := range want {
		if r.ops[i] != want[i] {
			t.Errorf("op %d = %s, want %s", i, r.ops[i], want[i])
		}
	}

	// (1 - 10/100) * 0.2 of 255
	if got := r.lines[0].A; got != 46 {
		t.Errorf("link alpha = %d, want 46", got)
	}
}

func TestRenderNilSurface(t *testing.T) {
	f, _ := New(testVariant(), Viewport{300, 300}, 1)
	Render(f, nil)
	Render(nil, &recorder{})
}

func TestRenderPostPasses(t *testing.T) {
	v := testVariant()
	v.LinkDistance = 0
	v.ScanlineSpacing = 100
	v.ScanlineAlpha = 0.1
	v.NoiseEvery = 3
	v.NoiseAmount = 0.05
	f, _ := New(v, Viewport{300, 300}, 1)
	f.particles = nil

	g := &grainRecorder{}
	for i := 0; i < 6; i++ {
		Render(f, g)
		Advance(f, 1, NoPointer)
	}

	if len(g.lines) != 6*3 {
		t.Errorf("expected 3 scanlines per frame, got %d total", len(g.lines))
	}
	if g.grains != 2 {
		t.Errorf("expected grain on frames 0 and 3, got %d passes", g.grains)
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{10, 20, 30, 255}
	tests := []struct {
		a        float64
		expected uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		if got := withAlpha(c, tt.a).A; got != tt.expected {
			t.Errorf("withAlpha(%f) = %d, want %d", tt.a, got, tt.expected)
		}
	}
}

func TestStopAlpha(t *testing.T) {
	tests := []struct {
		t, expected float64
	}{
		{-1, 1},
		{0, 1},
		{0.2, 0.7},
		{0.4, 0.4},
		{0.7, 0.2},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		if got := StopAlpha(DefaultGlow, tt.t); got < tt.expected-1e-9 || got > tt.expected+1e-9 {
			t.Errorf("StopAlpha(%f) = %f, want %f", tt.t, got, tt.expected)
		}
	}
	if StopAlpha(nil, 0.5) != 0 {
		t.Error("no stops should be transparent")
	}
}
