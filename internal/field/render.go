package field

import "image/color"

// Surface is a rendering target. Colours carry the final alpha.
type Surface interface {
	Fill(bg Background)
	Line(x1, y1, x2, y2, width float64, from, to color.NRGBA)
	// Glow paints a radial gradient disc; stop alphas scale c.A.
	Glow(x, y, radius float64, c color.NRGBA, stops []Stop)
	Disc(x, y, radius float64, c color.NRGBA)
}

// Grainer is implemented by surfaces that can apply a full-surface noise pass.
type Grainer interface {
	Grain(amount float64, seed int64)
}

// DefaultGlow fades from full opacity to 40% at 0.4 of the radius and to
// nothing at the edge.
var DefaultGlow = []Stop{{Offset: 0, Alpha: 1}, {Offset: 0.4, Alpha: 0.4}, {Offset: 1, Alpha: 0}}

// Render paints one frame of f: background, links, particles, post passes.
// A nil surface draws nothing.
func Render(f *Field, s Surface) {
	if f == nil || s == nil {
		return
	}
	v := f.variant

	s.Fill(v.Background)

	if v.LinkDistance > 0 {
		for _, l := range f.Connections() {
			a, b := f.particles[l.I], f.particles[l.J]
			from, to := v.LinkColor, v.LinkColor
			if v.LinkBlend {
				from, to = f.ColorOf(a), f.ColorOf(b)
			}
			s.Line(a.X, a.Y, b.X, b.Y, v.LinkWidth, withAlpha(from, l.Opacity), withAlpha(to, l.Opacity))
		}
	}

	stops := v.GlowStops
	if len(stops) == 0 {
		stops = DefaultGlow
	}
	for _, p := range f.particles {
		alpha := p.Opacity
		if v.Twinkle {
			alpha *= FastSin(p.Phase)*0.4 + 0.6
		}
		if v.GlowScale > 0 {
			s.Glow(p.X, p.Y, p.Radius*v.GlowScale, withAlpha(f.ColorOf(p), alpha), stops)
		}
		if v.CoreScale > 0 {
			s.Disc(p.X, p.Y, p.Radius*v.CoreScale, withAlpha(v.CoreColor, alpha))
		}
	}

	if v.ScanlineSpacing > 0 {
		w := float64(f.viewport.W)
		shade := withAlpha(color.NRGBA{}, v.ScanlineAlpha)
		for y := 0; y < f.viewport.H; y += v.ScanlineSpacing {
			s.Line(0, float64(y), w, float64(y), 1, shade, shade)
		}
	}

	if v.NoiseEvery > 0 && f.frame%v.NoiseEvery == 0 {
		if g, ok := s.(Grainer); ok {
			g.Grain(v.NoiseAmount, int64(f.frame))
		}
	}
}

// withAlpha returns c with opacity a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	switch {
	case a <= 0:
		c.A = 0
	case a >= 1:
		c.A = 255
	default:
		c.A = uint8(a*255 + 0.5)
	}
	return c
}

// Opacity returns c.A as a fraction.
func Opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

// StopAlpha interpolates the stop alphas at t in [0, 1] of the radius.
func StopAlpha(stops []Stop, t float64) float64 {
	if len(stops) == 0 {
		return 0
	}
	if t <= stops[0].Offset {
		return stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Alpha
			}
			return a.Alpha + (b.Alpha-a.Alpha)*(t-a.Offset)/span
		}
	}
	return stops[len(stops)-1].Alpha
}
