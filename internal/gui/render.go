package gui

import (
	"image/color"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// Surface draws a field into an offscreen render texture so translucent
// backgrounds can build trails across frames.
type Surface struct {
	target rl.RenderTexture2D
	w, h   int
	loaded bool
}

func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.Resize(w, h)
	return s
}

func (s *Surface) Resize(w, h int) {
	s.Unload()
	s.w, s.h = max(w, 1), max(h, 1)
	s.target = rl.LoadRenderTexture(int32(s.w), int32(s.h))
	s.loaded = true
	s.Reset()
}

// Reset clears the texture to transparent black.
func (s *Surface) Reset() {
	rl.BeginTextureMode(s.target)
	rl.ClearBackground(rl.Blank)
	rl.EndTextureMode()
}

func (s *Surface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
}

func (s *Surface) Begin() { rl.BeginTextureMode(s.target) }
func (s *Surface) End()   { rl.EndTextureMode() }

// Present copies the texture to the screen. Render textures are stored
// upside down, hence the negative source height.
func (s *Surface) Present() {
	src := rl.NewRectangle(0, 0, float32(s.w), -float32(s.h))
	rl.DrawTextureRec(s.target.Texture, src, rl.NewVector2(0, 0), rl.White)
}

func (s *Surface) Fill(bg field.Background) {
	top, bottom := toRL(bg.From), toRL(bg.To)
	top.A = alphaByte(bg.Alpha)
	if !bg.Gradient() {
		bottom = top
	}
	bottom.A = top.A
	if top.A == 255 && top == bottom {
		rl.ClearBackground(top)
		return
	}
	rl.DrawRectangleGradientV(0, 0, int32(s.w), int32(s.h), top, bottom)
}

// Line strokes each half in its end's colour; raylib has no gradient lines.
func (s *Surface) Line(x1, y1, x2, y2, width float64, from, to color.NRGBA) {
	a := rl.NewVector2(float32(x1), float32(y1))
	b := rl.NewVector2(float32(x2), float32(y2))
	if from == to {
		rl.DrawLineEx(a, b, float32(width), toRL(from))
		return
	}
	mid := rl.NewVector2((a.X+b.X)/2, (a.Y+b.Y)/2)
	rl.DrawLineEx(a, mid, float32(width), toRL(from))
	rl.DrawLineEx(mid, b, float32(width), toRL(to))
}

func (s *Surface) Glow(x, y, radius float64, c color.NRGBA, stops []field.Stop) {
	for _, r := range glowRings(radius, c, stops) {
		rl.DrawCircleGradient(int32(x), int32(y), r.radius, toRL(r.inner), toRL(r.outer))
	}
}

func (s *Surface) Disc(x, y, radius float64, c color.NRGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(radius), toRL(c))
}

// Grain scatters light and dark pixels over the texture, covering about
// amount of the area.
func (s *Surface) Grain(amount float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	n := int(float64(s.w*s.h) * amount)
	for i := 0; i < n; i++ {
		shade := uint8(0)
		if rng.Intn(2) == 0 {
			shade = 255
		}
		rl.DrawPixel(int32(rng.Intn(s.w)), int32(rng.Intn(s.h)), rl.NewColor(shade, shade, shade, uint8(8+rng.Intn(24))))
	}
}

type ring struct {
	radius       float32
	inner, outer color.NRGBA
}

// glowRings approximates a multi-stop radial gradient with nested
// two-colour gradient discs, outermost first.
func glowRings(radius float64, c color.NRGBA, stops []field.Stop) []ring {
	if radius <= 0 || c.A == 0 || len(stops) < 2 {
		return nil
	}
	rings := make([]ring, 0, len(stops)-1)
	for i := len(stops) - 1; i > 0; i-- {
		r := radius * stops[i].Offset
		if r <= 0 {
			continue
		}
		inner, outer := c, c
		inner.A = alphaByte(field.Opacity(c) * stops[i-1].Alpha)
		outer.A = alphaByte(field.Opacity(c) * stops[i].Alpha)
		rings = append(rings, ring{radius: float32(r), inner: inner, outer: outer})
	}
	return rings
}

func toRL(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func alphaByte(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	default:
		return uint8(a*255 + 0.5)
	}
}
