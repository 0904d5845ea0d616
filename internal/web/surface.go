package web

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

const noiseSize = 256

// Surface draws a field into a persistent offscreen image, so a
// translucent fill leaves trails of earlier frames.
type Surface struct {
	img     *ebiten.Image
	sprites map[string]*ebiten.Image
	strip   *ebiten.Image
	stripBG field.Background
	noise   *ebiten.Image
}

func NewSurface(w, h int) *Surface {
	s := &Surface{sprites: make(map[string]*ebiten.Image)}
	s.Resize(w, h)
	return s
}

func (s *Surface) Resize(w, h int) {
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Fill(bg field.Background) {
	if !bg.Gradient() {
		c := bg.From
		if bg.Alpha >= 1 {
			s.img.Fill(c)
			return
		}
		c.A = alphaByte(bg.Alpha)
		b := s.img.Bounds()
		vector.DrawFilledRect(s.img, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
		return
	}

	if s.strip == nil || s.stripBG != bg {
		s.strip = ebiten.NewImageFromImage(gradientStrip(bg.From, bg.To, 256))
		s.stripBG = bg
	}
	b := s.img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy())/256)
	op.ColorScale.ScaleAlpha(float32(bg.Alpha))
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(s.strip, op)
}

// Line strokes each half in its end's colour.
func (s *Surface) Line(x1, y1, x2, y2, width float64, from, to color.NRGBA) {
	if from == to {
		vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), from, true)
		return
	}
	mx, my := (x1+x2)/2, (y1+y2)/2
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(mx), float32(my), float32(width), from, true)
	vector.StrokeLine(s.img, float32(mx), float32(my), float32(x2), float32(y2), float32(width), to, true)
}

func (s *Surface) Glow(x, y, radius float64, c color.NRGBA, stops []field.Stop) {
	if radius <= 0 || c.A == 0 {
		return
	}
	key := stopsKey(stops)
	sprite, ok := s.sprites[key]
	if !ok {
		sprite = ebiten.NewImageFromImage(glowSprite(stops, spriteSize))
		s.sprites[key] = sprite
	}

	scale := 2 * radius / spriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-radius, y-radius)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(sprite, op)
}

func (s *Surface) Disc(x, y, radius float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), c, true)
}

// Grain overlays the noise tile at an offset picked from seed.
func (s *Surface) Grain(amount float64, seed int64) {
	if amount <= 0 {
		return
	}
	if s.noise == nil {
		s.noise = ebiten.NewImageFromImage(noiseTile(noiseSize, 1))
	}
	b := s.img.Bounds()
	ox, oy := float64(seed*37%noiseSize), float64(seed*91%noiseSize)
	for y := -oy; y < float64(b.Dy()); y += noiseSize {
		for x := -ox; x < float64(b.Dx()); x += noiseSize {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleAlpha(float32(amount))
			s.img.DrawImage(s.noise, op)
		}
	}
}
