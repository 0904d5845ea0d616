package web

import (
	"bytes"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/page"
)

var (
	cardFill   = color.NRGBA{255, 255, 255, 18}
	cardBorder = color.NRGBA{255, 255, 255, 48}
	titleColor = color.NRGBA{240, 244, 255, 255}
	bodyColor  = color.NRGBA{180, 188, 210, 255}
	tagFill    = color.NRGBA{120, 160, 255, 60}
	tagHover   = color.NRGBA{150, 190, 255, 110}
)

// Overlay draws the page content over the background.
type Overlay struct {
	title text.Face
	body  text.Face
}

func NewOverlay() (*Overlay, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, err
	}
	return &Overlay{
		title: &text.GoTextFace{Source: src, Size: 20},
		body:  &text.GoTextFace{Source: src, Size: 13},
	}, nil
}

// Draw paints the cards, each faded in after its stagger delay, and the
// tags with the hovered one enlarged. scroll shifts the page up.
func (o *Overlay) Draw(screen *ebiten.Image, doc *page.Page, scroll float64, elapsed time.Duration, hovered int) {
	for _, c := range doc.Cards {
		alpha := page.FadeAlpha(elapsed, c.Delay)
		if alpha <= 0 {
			continue
		}
		// fade in while rising 20px
		box := c.Box
		box.Y += 20*(1-alpha) - scroll
		fillRect(screen, box, fade(cardFill, alpha))
		strokeRect(screen, box, fade(cardBorder, alpha))
		o.text(screen, c.Title, o.title, box.X+20, box.Y+20, fade(titleColor, alpha), false)
		o.text(screen, c.Body, o.body, box.X+20, box.Y+56, fade(bodyColor, alpha), false)
	}

	for i, t := range doc.Tags {
		box := t.Box.Scaled(page.TagScale(i == hovered))
		box.Y -= scroll
		fill := tagFill
		if i == hovered {
			fill = tagHover
		}
		fillRect(screen, box, fill)
		o.text(screen, t.Label, o.body, box.X+box.W/2, box.Y+box.H/2, titleColor, true)
	}
}

func (o *Overlay) text(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.NRGBA, centered bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	if centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func fillRect(dst *ebiten.Image, r page.Rect, c color.NRGBA) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

func strokeRect(dst *ebiten.Image, r page.Rect, c color.NRGBA) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, true)
}

// fade scales the alpha of c by a.
func fade(c color.NRGBA, a float64) color.NRGBA {
	c.A = alphaByte(float64(c.A) / 255 * a)
	return c
}
