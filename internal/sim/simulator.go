package sim

import (
	"context"
	"fmt"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// Runner drives a field without a display: the headless counterpart of a
// frame callback loop.
type Runner struct {
	variant   field.Variant
	path      PointerPath
	metrics   []Metric
	observers []Observer
}

func New(v field.Variant) *Runner {
	return &Runner{
		variant:   v,
		path:      Still(),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }
func (r *Runner) SetPath(p PointerPath)  { r.path = p }
func (r *Runner) Variant() field.Variant { return r.variant }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	f, err := field.New(r.variant, cfg.Viewport, cfg.Seed)
	if err != nil {
		return nil, err
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{
		Particles: make([]int, 0, cfg.Frames),
		Links:     make([]int, 0, cfg.Frames),
		Metrics:   make(map[string]float64),
	}

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if vp, ok := cfg.Resizes[i]; ok {
			f.Resize(vp.W, vp.H)
		}

		field.Advance(f, cfg.Dt, r.path(i))

		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, obs := range r.observers {
			obs.OnFrame(f, i)
		}

		result.Particles = append(result.Particles, f.Len())
		result.Links = append(result.Links, len(f.Connections()))
		result.Frames++
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Viewport.W < 0 || cfg.Viewport.H < 0 {
		return FrameError{Frame: 0, Message: fmt.Sprintf("negative viewport %dx%d", cfg.Viewport.W, cfg.Viewport.H)}
	}
	return nil
}
