package viz

import (
	"image/color"
	"math"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// bayer is the 4x4 ordered dither matrix.
var bayer = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// LineCutoff is the lowest line opacity that reaches the canvas. Fainter
// strokes (distant links, scanlines) vanish at Braille resolution.
const LineCutoff = 0.08

// Surface renders a field onto a Canvas. Field coordinates are divided by
// Scale to get sub-pixels, so a 4x scale shows a 640x384 field on an 80x24
// terminal.
type Surface struct {
	Canvas *Canvas
	Scale  float64
	fills  int
}

func NewSurface(c *Canvas, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	return &Surface{Canvas: c, Scale: scale}
}

// threshold returns the dither level for sub-pixel (x, y). The matrix is
// shifted on every fill so translucent repaints erase different dots.
func (s *Surface) threshold(x, y int) float64 {
	i, j := (y+s.fills)&3, (x+s.fills/4)&3
	return (bayer[i][j] + 0.5) / 16
}

// Fill clears the canvas. A translucent background erases only the share of
// dots its alpha covers, leaving trails.
func (s *Surface) Fill(bg field.Background) {
	s.fills++
	if bg.Alpha >= 1 {
		s.Canvas.Clear()
		return
	}
	w, h := s.Canvas.Dots()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.threshold(x, y) < bg.Alpha {
				s.Canvas.Unset(x, y)
			}
		}
	}
}

func (s *Surface) Line(x1, y1, x2, y2, width float64, from, to color.NRGBA) {
	if math.Max(field.Opacity(from), field.Opacity(to)) < LineCutoff {
		return
	}
	s.Canvas.DrawLine(s.dot(x1), s.dot(y1), s.dot(x2), s.dot(y2))
}

func (s *Surface) Glow(x, y, radius float64, c color.NRGBA, stops []field.Stop) {
	r := radius / s.Scale
	if r <= 0 {
		return
	}
	peak := field.Opacity(c)
	s.scan(x, y, r, func(px, py int, d float64) {
		if field.StopAlpha(stops, d/r)*peak > s.threshold(px, py) {
			s.Canvas.Set(px, py)
		}
	})
}

func (s *Surface) Disc(x, y, radius float64, c color.NRGBA) {
	if field.Opacity(c) < LineCutoff {
		return
	}
	r := math.Max(radius/s.Scale, 0.75)
	s.scan(x, y, r, func(px, py int, _ float64) {
		s.Canvas.Set(px, py)
	})
}

// scan visits every sub-pixel within r of the field point (x, y).
func (s *Surface) scan(x, y, r float64, visit func(px, py int, d float64)) {
	cx, cy := x/s.Scale, y/s.Scale
	for py := int(math.Floor(cy - r)); py <= int(math.Ceil(cy+r)); py++ {
		for px := int(math.Floor(cx - r)); px <= int(math.Ceil(cx+r)); px++ {
			d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			if d <= r {
				visit(px, py, d)
			}
		}
	}
}

func (s *Surface) dot(v float64) int {
	return int(math.Floor(v / s.Scale))
}
