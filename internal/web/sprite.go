package web

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// spriteSize is the side of the pre-rendered glow texture in pixels.
const spriteSize = 128

// glowSprite renders a white radial gradient with the given stops. It is
// tinted and scaled per particle at draw time.
func glowSprite(stops []field.Stop, size int) *image.RGBA {
	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	g := gg.NewRadialGradient(c, c, 0, c, c, c)
	for _, s := range stops {
		g.AddColorStop(s.Offset, color.NRGBA{255, 255, 255, alphaByte(s.Alpha)})
	}
	dc.SetFillStyle(g)
	dc.DrawCircle(c, c, c)
	dc.Fill()
	return dc.Image().(*image.RGBA)
}

// gradientStrip renders a 1 x h vertical gradient used to paint the page
// background.
func gradientStrip(from, to color.NRGBA, h int) *image.RGBA {
	dc := gg.NewContext(1, h)
	g := gg.NewLinearGradient(0, 0, 0, float64(h))
	g.AddColorStop(0, from)
	g.AddColorStop(1, to)
	dc.SetFillStyle(g)
	dc.DrawRectangle(0, 0, 1, float64(h))
	dc.Fill()
	return dc.Image().(*image.RGBA)
}

// noiseTile is a grey noise texture with random per-pixel brightness.
func noiseTile(size int, seed int64) *image.Gray {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

func stopsKey(stops []field.Stop) string {
	b := make([]byte, 0, len(stops)*4)
	for _, s := range stops {
		b = append(b, byte(s.Offset*255), byte(s.Alpha*255), ';')
	}
	return string(b)
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
