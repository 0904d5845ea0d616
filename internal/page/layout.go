package page

import (
	"time"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/config"
)

const (
	Margin     = 40.0
	CardHeight = 180.0
	CardGap    = 28.0
	TagHeight  = 28.0
	TagGap     = 12.0
	// TagCharWidth approximates the advance of one label character.
	TagCharWidth = 7.0
	tagPadding   = 14.0
	headerHeight = 72.0
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Scaled grows r by s about its centre.
func (r Rect) Scaled(s float64) Rect {
	w, h := r.W*s, r.H*s
	return Rect{X: r.X - (w-r.W)/2, Y: r.Y - (h-r.H)/2, W: w, H: h}
}

type Card struct {
	ID, Title, Body string
	Box             Rect
	Delay           time.Duration
}

type Tag struct {
	Label string
	Box   Rect
}

// Page is a laid out document in page coordinates (before scrolling).
type Page struct {
	Cards   []Card
	Tags    []Tag
	Anchors map[string]float64
	Height  float64
}

// Layout stacks the cards in one column of the given width with the tags
// wrapped in rows underneath.
func Layout(cfg config.PageConfig, width float64) *Page {
	p := &Page{Anchors: make(map[string]float64, len(cfg.Cards))}
	inner := width - 2*Margin
	if inner < 0 {
		inner = 0
	}

	y := headerHeight
	for i, c := range cfg.Cards {
		card := Card{
			ID:    c.ID,
			Title: c.Title,
			Body:  c.Body,
			Box:   Rect{X: Margin, Y: y, W: inner, H: CardHeight},
			Delay: Stagger(i),
		}
		p.Cards = append(p.Cards, card)
		if c.ID != "" {
			p.Anchors[c.ID] = y - Margin
		}
		y += CardHeight + CardGap
	}

	x := Margin
	if len(cfg.Tags) > 0 {
		y += TagGap
	}
	for _, label := range cfg.Tags {
		w := float64(len(label))*TagCharWidth + 2*tagPadding
		if x > Margin && x+w > width-Margin {
			x = Margin
			y += TagHeight + TagGap
		}
		p.Tags = append(p.Tags, Tag{Label: label, Box: Rect{X: x, Y: y, W: w, H: TagHeight}})
		x += w + TagGap
	}
	if len(cfg.Tags) > 0 {
		y += TagHeight
	}

	p.Height = y + Margin
	return p
}

// HoveredTag returns the index of the tag under (x, y) in page
// coordinates, or -1.
func (p *Page) HoveredTag(x, y float64) int {
	for i, t := range p.Tags {
		if t.Box.Contains(x, y) {
			return i
		}
	}
	return -1
}

// MaxScroll is the largest useful scroll offset for a viewport height.
func (p *Page) MaxScroll(viewport float64) float64 {
	if p.Height <= viewport {
		return 0
	}
	return p.Height - viewport
}
