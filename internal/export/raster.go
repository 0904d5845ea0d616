package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// Raster is an anti-aliased field.Surface backed by a gg context.
type Raster struct {
	dc *gg.Context
}

func NewRaster(w, h int) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Raster{dc: gg.NewContext(w, h)}
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

// Image returns the backing image. It is overwritten by the next frame.
func (r *Raster) Image() *image.RGBA {
	return r.dc.Image().(*image.RGBA)
}

func (r *Raster) Fill(bg field.Background) {
	w, h := float64(r.dc.Width()), float64(r.dc.Height())
	if bg.Gradient() {
		g := gg.NewLinearGradient(0, 0, 0, h)
		g.AddColorStop(0, scaleAlpha(bg.From, bg.Alpha))
		g.AddColorStop(1, scaleAlpha(bg.To, bg.Alpha))
		r.dc.SetFillStyle(g)
	} else {
		r.dc.SetColor(scaleAlpha(bg.From, bg.Alpha))
	}
	r.dc.DrawRectangle(0, 0, w, h)
	r.dc.Fill()
}

func (r *Raster) Line(x1, y1, x2, y2, width float64, from, to color.NRGBA) {
	if from.A == 0 && to.A == 0 {
		return
	}
	if from == to {
		r.dc.SetColor(from)
	} else {
		g := gg.NewLinearGradient(x1, y1, x2, y2)
		g.AddColorStop(0, from)
		g.AddColorStop(1, to)
		r.dc.SetStrokeStyle(g)
	}
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

func (r *Raster) Glow(x, y, radius float64, c color.NRGBA, stops []field.Stop) {
	if radius <= 0 || c.A == 0 {
		return
	}
	g := gg.NewRadialGradient(x, y, 0, x, y, radius)
	for _, s := range stops {
		g.AddColorStop(s.Offset, scaleAlpha(c, s.Alpha))
	}
	r.dc.SetFillStyle(g)
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
}

func (r *Raster) Disc(x, y, radius float64, c color.NRGBA) {
	if radius <= 0 || c.A == 0 {
		return
	}
	r.dc.SetColor(c)
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
}

// Grain shifts every pixel's brightness by a random amount in
// [-amount/2, amount/2] of full scale.
func (r *Raster) Grain(amount float64, seed int64) {
	if amount <= 0 {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	pix := r.Image().Pix
	for i := 0; i+3 < len(pix); i += 4 {
		n := (rng.Float64() - 0.5) * amount * 255
		pix[i] = clampByte(float64(pix[i]) + n)
		pix[i+1] = clampByte(float64(pix[i+1]) + n)
		pix[i+2] = clampByte(float64(pix[i+2]) + n)
	}
}

// Caption writes text in the bottom-left corner with the Go Mono face.
func (r *Raster) Caption(text string, size float64, c color.Color) error {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	r.dc.SetFontFace(face)
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(text, size*0.75, float64(r.dc.Height())-size*0.75, 0, 0)
	return nil
}

func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// scaleAlpha returns c with its alpha multiplied by a.
func scaleAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = clampByte(float64(c.A) * a)
	return c
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
