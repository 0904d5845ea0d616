package field

import "math"

// Link is a proximity connection between particles I < J.
type Link struct {
	I, J     int
	Distance float64
	Opacity  float64
}

// LinkOpacity falls off linearly from scale at distance 0 to 0 at maxDist.
func LinkOpacity(d, maxDist, scale float64) float64 {
	if maxDist <= 0 || d >= maxDist {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return (1 - d/maxDist) * scale
}

// Links returns every unordered pair closer than maxDist.
func Links(ps []Particle, maxDist, scale float64) []Link {
	return AppendLinks(nil, ps, maxDist, scale)
}

// AppendLinks is Links appending into dst. O(n^2) over ps.
func AppendLinks(dst []Link, ps []Particle, maxDist, scale float64) []Link {
	if maxDist <= 0 {
		return dst
	}
	max2 := maxDist * maxDist
	for i := 0; i < len(ps); i++ {
		xi, yi := ps[i].X, ps[i].Y
		for j := i + 1; j < len(ps); j++ {
			dx, dy := xi-ps[j].X, yi-ps[j].Y
			d2 := dx*dx + dy*dy
			if d2 >= max2 {
				continue
			}
			d := math.Sqrt(d2)
			dst = append(dst, Link{I: i, J: j, Distance: d, Opacity: LinkOpacity(d, maxDist, scale)})
		}
	}
	return dst
}
