package metrics

import (
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/sim"
)

type MeanSpeed struct {
	name    string
	samples int
	total   float64
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(f *field.Field) {
	for _, p := range f.Particles() {
		m.total += p.Speed()
		m.samples++
	}
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.samples = 0
	m.total = 0
}

// InBounds is the fraction of frames in which every particle lay inside the
// viewport widened by the variant margin.
type InBounds struct {
	name       string
	violations int
	samples    int
}

func NewInBounds() *InBounds {
	return &InBounds{name: "in_bounds"}
}

func (b *InBounds) Name() string { return b.name }

func (b *InBounds) Observe(f *field.Field) {
	b.samples++
	vp, m := f.Viewport(), f.Variant().Margin
	w, h := float64(vp.W), float64(vp.H)
	for _, p := range f.Particles() {
		if p.X < -m || p.X > w+m || p.Y < -m || p.Y > h+m {
			b.violations++
			break
		}
	}
}

func (b *InBounds) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *InBounds) Reset() {
	b.violations = 0
	b.samples = 0
}

// Default is the metric set reported by the stats and bench commands.
func Default() []sim.Metric {
	return []sim.Metric{NewLinkCount(), NewMeanSpeed(), NewInBounds()}
}
