package field

import (
	"image/color"
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Field struct {
	variant   Variant
	viewport  Viewport
	particles []Particle
	links     []Link
	frame     int
	rng       *rand.Rand
}

// New validates v and generates the initial particle collection for vp.
func New(v Variant, vp Viewport, seed int64) (*Field, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	f := &Field{
		variant: v,
		rng:     rand.New(rand.NewSource(seed)),
	}
	f.Resize(vp.W, vp.H)
	return f, nil
}

// Resize tracks a new viewport. The whole collection is discarded and
// regenerated; nothing is migrated from the old particles.
func (f *Field) Resize(w, h int) {
	f.viewport = Viewport{W: w, H: h}.clamped()
	n := Count(f.viewport, f.variant)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = f.spawn()
	}
}

func (f *Field) Variant() Variant      { return f.variant }
func (f *Field) Viewport() Viewport    { return f.viewport }
func (f *Field) Frame() int            { return f.frame }
func (f *Field) Len() int              { return len(f.particles) }
func (f *Field) Particles() []Particle { return f.particles }

// Count returns floor(area / density), or the fixed count of v. A zero-area
// viewport always yields zero.
func Count(vp Viewport, v Variant) int {
	area := vp.Area()
	if area == 0 {
		return 0
	}
	if v.Count > 0 {
		return v.Count
	}
	if v.Density <= 0 {
		return 0
	}
	return int(math.Floor(float64(area) / v.Density))
}

func (f *Field) spawn() Particle {
	v := f.variant
	p := Particle{
		X:          f.rng.Float64() * float64(f.viewport.W),
		Y:          f.rng.Float64() * float64(f.viewport.H),
		Size:       f.between(v.SizeMin, v.SizeMax),
		VX:         (f.rng.Float64()*2 - 1) * v.Speed,
		VY:         (f.rng.Float64()*2 - 1) * v.Speed,
		Opacity:    f.between(v.OpacityMin, v.OpacityMax),
		Phase:      f.rng.Float64() * 2 * math.Pi,
		PhaseSpeed: f.between(v.PhaseSpeedMin, v.PhaseSpeedMax),
	}
	p.Radius = p.Size

	switch v.Coloring {
	case Palette:
		p.Color = f.pick(v.Swatches)
	case HueCycle:
		p.Hue = f.between(v.HueBase, v.HueMax)
	}
	return p
}

func (f *Field) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

func (f *Field) pick(swatches []Swatch) color.NRGBA {
	total := 0.0
	for _, s := range swatches {
		total += s.Weight
	}
	r := f.rng.Float64() * total
	for _, s := range swatches {
		if r < s.Weight {
			return s.Color
		}
		r -= s.Weight
	}
	return swatches[len(swatches)-1].Color
}

// ColorOf returns the particle colour under the variant's colour policy.
func (f *Field) ColorOf(p Particle) color.NRGBA {
	if f.variant.Coloring == HueCycle {
		return hueColor(p.Hue, f.variant.Saturation, f.variant.Lightness)
	}
	return p.Color
}

func hueColor(hue, sat, light float64) color.NRGBA {
	c := colorful.Hsl(math.Mod(hue, 360), sat, light).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Connections recomputes the proximity links for the current positions.
// The returned slice is reused by the next call.
func (f *Field) Connections() []Link {
	v := f.variant
	f.links = AppendLinks(f.links[:0], f.particles, v.LinkDistance, v.LinkScale)
	return f.links
}
