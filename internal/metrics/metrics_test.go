package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/config"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/sim"
)

func TestEmptyMetrics(t *testing.T) {
	if NewLinkCount().Value() != 0 {
		t.Error("empty link count should be 0")
	}
	if NewMeanSpeed().Value() != 0 {
		t.Error("empty mean speed should be 0")
	}
	if NewInBounds().Value() != 1 {
		t.Error("empty in-bounds should be 1")
	}
}

func TestDefaultMetricsOnPresets(t *testing.T) {
	for _, name := range config.ListPresets() {
		t.Run(name, func(t *testing.T) {
			r := sim.New(*config.GetPreset(name))
			for _, m := range Default() {
				r.AddMetric(m)
			}
			r.SetPath(sim.Orbit(320, 180, 60, 30))

			cfg := sim.Config{Frames: 30, Dt: 1, Seed: 4, Viewport: field.Viewport{W: 640, H: 360}}
			result, err := r.Run(context.Background(), cfg)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}

			if got := result.Metrics["in_bounds"]; got != 1 {
				t.Errorf("expected every frame in bounds, got %f", got)
			}
			if got := result.Metrics["links"]; math.Abs(got-result.MeanLinks()) > 1e-9 {
				t.Errorf("links metric %f disagrees with result %f", got, result.MeanLinks())
			}
			if got := result.Metrics["mean_speed"]; got <= 0 {
				t.Errorf("expected moving particles, got mean speed %f", got)
			}
		})
	}
}

func TestLinkCountPeakAndReset(t *testing.T) {
	v := *config.GetPreset("starfield")
	f, err := field.New(v, field.Viewport{W: 400, H: 400}, 2)
	if err != nil {
		t.Fatal(err)
	}

	l := NewLinkCount()
	l.Observe(f)
	if l.Peak() != len(f.Connections()) {
		t.Errorf("peak %d, want %d", l.Peak(), len(f.Connections()))
	}
	l.Reset()
	if l.Value() != 0 || l.Peak() != 0 {
		t.Error("reset did not clear the metric")
	}
}
