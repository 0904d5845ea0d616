package page

import (
	"math"
	"testing"
	"time"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/config"
)

func TestStagger(t *testing.T) {
	tests := []struct {
		index    int
		expected time.Duration
	}{
		{0, 0},
		{1, 100 * time.Millisecond},
		{3, 300 * time.Millisecond},
		{-2, 0},
	}
	for _, tt := range tests {
		if got := Stagger(tt.index); got != tt.expected {
			t.Errorf("Stagger(%d) = %v, want %v", tt.index, got, tt.expected)
		}
	}
}

func TestFadeAlpha(t *testing.T) {
	delay := 200 * time.Millisecond
	tests := []struct {
		elapsed  time.Duration
		expected float64
	}{
		{0, 0},
		{200 * time.Millisecond, 0},
		{500 * time.Millisecond, 0.5},
		{800 * time.Millisecond, 1},
		{5 * time.Second, 1},
	}
	for _, tt := range tests {
		if got := FadeAlpha(tt.elapsed, delay); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("FadeAlpha(%v) = %f, want %f", tt.elapsed, got, tt.expected)
		}
	}
}

func TestResolveAnchor(t *testing.T) {
	anchors := map[string]float64{"about": 32, "contact": 900}
	tests := []struct {
		href string
		y    float64
		ok   bool
	}{
		{"#about", 32, true},
		{"#contact", 900, true},
		{"#missing", 0, false},
		{"#", 0, false},
		{"about", 0, false},
		{"https://example.com/#about", 0, false},
	}
	for _, tt := range tests {
		y, ok := ResolveAnchor(tt.href, anchors)
		if y != tt.y || ok != tt.ok {
			t.Errorf("ResolveAnchor(%q) = %f, %v; want %f, %v", tt.href, y, ok, tt.y, tt.ok)
		}
	}
}

func TestTagScale(t *testing.T) {
	if TagScale(true) != 1.1 || TagScale(false) != 1 {
		t.Error("tag scale should be 1.1 hovered, 1 otherwise")
	}
}

func TestScroller(t *testing.T) {
	s := NewScroller()
	s.ScrollTo(400)

	prev := math.Abs(s.Target - s.Offset)
	frames := 0
	for s.Step(1) {
		d := math.Abs(s.Target - s.Offset)
		if d >= prev {
			t.Fatalf("frame %d: distance grew from %f to %f", frames, prev, d)
		}
		prev = d
		frames++
		if frames > 1000 {
			t.Fatal("scroller never settled")
		}
	}
	if s.Offset != 400 {
		t.Errorf("expected snap to 400, got %f", s.Offset)
	}
	if frames < 10 {
		t.Errorf("scroll should ease over several frames, took %d", frames)
	}

	s.ScrollTo(-50)
	if s.Target != 0 {
		t.Error("negative targets should clamp to 0")
	}
}

func TestLayout(t *testing.T) {
	p := Layout(config.DefaultConfig().Page, 800)

	if len(p.Cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(p.Cards))
	}
	for i, c := range p.Cards {
		if c.Delay != Stagger(i) {
			t.Errorf("card %d delay = %v", i, c.Delay)
		}
		if c.Box.W != 720 {
			t.Errorf("card %d width = %f", i, c.Box.W)
		}
		if i > 0 && c.Box.Y <= p.Cards[i-1].Box.Y {
			t.Errorf("card %d is not below card %d", i, i-1)
		}
		if _, ok := ResolveAnchor("#"+c.ID, p.Anchors); !ok {
			t.Errorf("anchor for %s missing", c.ID)
		}
	}

	if len(p.Tags) != 4 {
		t.Fatalf("expected 4 tags, got %d", len(p.Tags))
	}
	last := p.Cards[len(p.Cards)-1].Box
	for _, tag := range p.Tags {
		if tag.Box.Y < last.Y+last.H {
			t.Errorf("tag %s overlaps the cards", tag.Label)
		}
		if tag.Box.X+tag.Box.W > 800-Margin {
			t.Errorf("tag %s overflows the row", tag.Label)
		}
	}
	if p.Height <= p.Tags[0].Box.Y {
		t.Error("page height should cover the tags")
	}
}

func TestLayoutWrapsTags(t *testing.T) {
	cfg := config.PageConfig{Tags: []string{"alpha", "beta", "gamma", "delta", "epsilon"}}
	p := Layout(cfg, 200)
	rows := map[float64]bool{}
	for _, tag := range p.Tags {
		rows[tag.Box.Y] = true
	}
	if len(rows) < 2 {
		t.Errorf("expected tags to wrap onto several rows, got %d", len(rows))
	}
}

func TestHoveredTag(t *testing.T) {
	p := Layout(config.PageConfig{Tags: []string{"Go", "CLI"}}, 800)
	second := p.Tags[1].Box

	if i := p.HoveredTag(second.X+1, second.Y+1); i != 1 {
		t.Errorf("expected tag 1 hovered, got %d", i)
	}
	if i := p.HoveredTag(0, 0); i != -1 {
		t.Errorf("expected no tag hovered, got %d", i)
	}

	grown := second.Scaled(TagScale(true))
	if grown.W <= second.W || grown.X >= second.X {
		t.Error("scaled tag should grow about its centre")
	}
}

func TestMaxScroll(t *testing.T) {
	p := &Page{Height: 1000}
	if p.MaxScroll(600) != 400 || p.MaxScroll(1200) != 0 {
		t.Error("MaxScroll wrong")
	}
}
