package field

import "math"

// sinTable holds sin over one period for oscillators that only need a few
// digits: twinkle and wobble.
type sinTable struct {
	vals []float64
	n    int
}

var defaultSin = newSinTable(4096)

func newSinTable(n int) *sinTable {
	t := &sinTable{vals: make([]float64, n), n: n}
	for i := range t.vals {
		t.vals[i] = math.Sin(float64(i) * 2 * math.Pi / float64(n))
	}
	return t
}

// at interpolates linearly between table entries.
func (t *sinTable) at(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	frac := idx - float64(i)
	return t.vals[i%t.n]*(1-frac) + t.vals[(i+1)%t.n]*frac
}

// FastSin is a table lookup of sin(x), accurate to about 1e-6.
func FastSin(x float64) float64 {
	return defaultSin.at(x)
}
