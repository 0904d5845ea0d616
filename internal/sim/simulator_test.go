package sim

import (
	"context"
	"image/color"
	"testing"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

func testVariant() field.Variant {
	return field.Variant{
		Density:  3000,
		Boundary: field.Wrap,
		Coloring: field.Palette,
		Swatches: []field.Swatch{{Color: color.NRGBA{255, 255, 255, 255}, Weight: 1}},
		SizeMin:  1, SizeMax: 2,
		Speed:      0.3,
		OpacityMin: 0.5, OpacityMax: 1,
		InteractRadius: 180,
		Push:           2,
		LinkDistance:   100,
		LinkScale:      0.2,
	}
}

type countingMetric struct {
	count int
	sum   float64
}

func (m *countingMetric) Name() string { return "count" }
func (m *countingMetric) Observe(f *field.Field) {
	m.count++
	m.sum += float64(f.Len())
}
func (m *countingMetric) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}
func (m *countingMetric) Reset() {
	m.count = 0
	m.sum = 0
}

type frameLog struct{ frames []int }

func (o *frameLog) OnFrame(f *field.Field, frame int) { o.frames = append(o.frames, frame) }

func TestRunnerRun(t *testing.T) {
	r := New(testVariant())
	metric := &countingMetric{}
	obs := &frameLog{}
	r.AddMetric(metric)
	r.AddObserver(obs)

	cfg := Config{Frames: 10, Dt: 1, Seed: 1, Viewport: field.Viewport{W: 1200, H: 800}}
	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Frames != 10 || len(result.Particles) != 10 || len(result.Links) != 10 {
		t.Errorf("expected 10 frames recorded, got %d/%d/%d", result.Frames, len(result.Particles), len(result.Links))
	}
	for i, n := range result.Particles {
		if n != 320 {
			t.Errorf("frame %d: expected 320 particles, got %d", i, n)
		}
	}
	if result.Metrics["count"] != 320 {
		t.Errorf("expected mean count 320, got %f", result.Metrics["count"])
	}
	if len(obs.frames) != 10 || obs.frames[9] != 9 {
		t.Errorf("observer saw frames %v", obs.frames)
	}
}

func TestRunnerResizes(t *testing.T) {
	r := New(testVariant())
	cfg := Config{
		Frames:   6,
		Dt:       1,
		Viewport: field.Viewport{W: 1200, H: 800},
		Resizes: map[int]field.Viewport{
			2: {W: 600, H: 300},
			4: {W: 0, H: 0},
		},
	}

	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := []int{320, 320, 60, 60, 0, 0}
	for i := range want {
		if result.Particles[i] != want[i] {
			t.Errorf("frame %d: expected %d particles, got %d", i, want[i], result.Particles[i])
		}
	}
	if result.Links[5] != 0 {
		t.Errorf("empty field should have no links, got %d", result.Links[5])
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	r := New(testVariant())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero frames", Config{Frames: 0, Dt: 1}},
		{"negative dt", Config{Frames: 10, Dt: -1}},
		{"zero dt", Config{Frames: 10, Dt: 0}},
		{"negative viewport", Config{Frames: 10, Dt: 1, Viewport: field.Viewport{W: -1, H: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	bad := testVariant()
	bad.Density = 0
	if _, err := New(bad).Run(context.Background(), DefaultConfig()); err == nil {
		t.Error("expected invalid variant error")
	}
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(testVariant()).Run(ctx, DefaultConfig())
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil || result.Frames != 0 {
		t.Errorf("expected empty partial result, got %+v", result)
	}
}

func TestEnsemble(t *testing.T) {
	r := New(testVariant())
	r.SetPath(Orbit(300, 200, 50, 60))

	e := NewEnsemble(r, 4, 100, func() []Metric { return []Metric{&countingMetric{}} })
	cfg := Config{Frames: 5, Dt: 1, Viewport: field.Viewport{W: 600, H: 400}}

	results, err := e.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Metrics["count"] != 80 {
			t.Errorf("run %d: expected 80 particles, got %f", i, res.Metrics["count"])
		}
	}
}

func TestEnsembleInvalidRuns(t *testing.T) {
	r := New(testVariant())
	cfg := Config{Frames: 1, Dt: 1, Viewport: field.Viewport{W: 100, H: 100}}
	for _, n := range []int{0, -1} {
		results, err := NewEnsemble(r, n, 1, nil).Run(context.Background(), cfg)
		if err == nil || results != nil {
			t.Errorf("runs=%d: expected error, got %v / %v", n, results, err)
		}
	}
}

func TestPointerPaths(t *testing.T) {
	if Still()(3).Set {
		t.Error("still path should never set the pointer")
	}

	p := Orbit(100, 100, 10, 4)(0)
	if !p.Set || p.X != 110 || p.Y != 100 {
		t.Errorf("orbit start = %+v", p)
	}

	sweep := Sweep(field.Viewport{W: 100, H: 50}, 10)
	if mid := sweep(5); mid.X != 50 || mid.Y != 25 {
		t.Errorf("sweep midpoint = %+v", mid)
	}
	if sweep(10).Set {
		t.Error("sweep should leave after its last frame")
	}
}

func TestFrameError(t *testing.T) {
	err := FrameError{Frame: 12, Message: "boom"}
	if err.Error() != "frame 12: boom" {
		t.Errorf("FrameError.Error() = %q", err.Error())
	}
}
