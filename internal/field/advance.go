package field

import "math"

// Advance moves f forward by dt display frames (1 = one 60 Hz frame).
// Per particle: phase and hue accumulators, pointer displacement, velocity,
// then the variant's boundary policy.
func Advance(f *Field, dt float64, p Pointer) {
	if f == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	v := f.variant
	w, h := float64(f.viewport.W), float64(f.viewport.H)

	for i := range f.particles {
		q := &f.particles[i]

		q.Phase = math.Mod(q.Phase+q.PhaseSpeed*dt, 2*math.Pi)
		if v.Coloring == HueCycle {
			q.Hue += v.HueStep * dt
			if q.Hue > v.HueMax {
				q.Hue = v.HueBase
			}
		}
		q.Radius = q.Size
		if v.Wobble != 0 {
			q.Radius = q.Size * (1 + v.Wobble*FastSin(q.Phase))
		}

		if p.Set {
			dx, dy := Displacement(q.X, q.Y, p, v.InteractRadius, v.Push)
			q.X += dx * dt
			q.Y += dy * dt
		}

		q.X += q.VX * dt
		q.Y += q.VY * dt

		switch v.Boundary {
		case Wrap:
			q.X = wrap(q.X, w)
			q.Y = wrap(q.Y, h)
		case Bounce:
			q.X, q.VX = bounce(q.X, q.VX, -v.Margin, w+v.Margin)
			q.Y, q.VY = bounce(q.Y, q.VY, -v.Margin, h+v.Margin)
		}
	}
	f.frame++
}

// Displacement is the pointer's per-frame push on a particle at (x, y):
// push * (radius - d) / radius along the angle from pointer to particle.
// A particle exactly on the pointer has no defined angle; it is pushed
// along +X.
func Displacement(x, y float64, p Pointer, radius, push float64) (float64, float64) {
	if !p.Set || radius <= 0 {
		return 0, 0
	}
	dx, dy := x-p.X, y-p.Y
	d := math.Hypot(dx, dy)
	if d >= radius {
		return 0, 0
	}
	force := (radius - d) / radius
	if d == 0 {
		return push * force, 0
	}
	return dx / d * force * push, dy / d * force * push
}

// wrap maps x into [0, size).
func wrap(x, size float64) float64 {
	if size <= 0 {
		return 0
	}
	x = math.Mod(x, size)
	if x < 0 {
		x += size
	}
	if x >= size {
		x = 0
	}
	return x
}

// bounce reflects x back into [lo, hi] and inverts v when it crossed.
func bounce(x, v, lo, hi float64) (float64, float64) {
	if hi <= lo {
		return lo, v
	}
	switch {
	case x < lo:
		x, v = lo+(lo-x), -v
	case x > hi:
		x, v = hi-(x-hi), -v
	}
	return math.Max(lo, math.Min(hi, x)), v
}
