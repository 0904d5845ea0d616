// Package page holds the foreground glue drawn over a background: cards
// that fade in one after another, in-page anchors with smooth scrolling and
// tags that grow under the pointer.
package page

import (
	"math"
	"strings"
	"time"
)

const (
	// StaggerStep is the delay added per card.
	StaggerStep = 100 * time.Millisecond
	// FadeDuration is the length of one card fade-in.
	FadeDuration = 600 * time.Millisecond

	TagHoverScale = 1.1

	// snapDistance ends a scroll once the offset is within half a pixel.
	snapDistance = 0.5
)

// Stagger returns the fade-in delay of the card at index i.
func Stagger(i int) time.Duration {
	if i < 0 {
		return 0
	}
	return time.Duration(i) * StaggerStep
}

// FadeAlpha is the opacity of an element delay into the page, elapsed after
// load: 0 before delay, rising linearly to 1 over FadeDuration.
func FadeAlpha(elapsed, delay time.Duration) float64 {
	t := float64(elapsed-delay) / float64(FadeDuration)
	return math.Max(0, math.Min(1, t))
}

// ResolveAnchor looks up the offset of the element an in-page link points
// at. Only "#id" links resolve; a missing target reports false and the
// click is ignored.
func ResolveAnchor(href string, anchors map[string]float64) (float64, bool) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return 0, false
	}
	y, ok := anchors[id]
	return y, ok
}

// TagScale is the scale of a tag: enlarged while hovered.
func TagScale(hovered bool) float64 {
	if hovered {
		return TagHoverScale
	}
	return 1
}

// Scroller eases a scroll offset toward a target. Each frame closes Rate of
// the remaining distance.
type Scroller struct {
	Offset float64
	Target float64
	Rate   float64
}

func NewScroller() *Scroller {
	return &Scroller{Rate: 0.15}
}

func (s *Scroller) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	s.Target = y
}

// Step advances the ease by dt frames and reports whether it is still moving.
func (s *Scroller) Step(dt float64) bool {
	if s.Settled() {
		s.Offset = s.Target
		return false
	}
	keep := math.Pow(1-s.Rate, dt)
	s.Offset = s.Target + (s.Offset-s.Target)*keep
	if s.Settled() {
		s.Offset = s.Target
		return false
	}
	return true
}

func (s *Scroller) Settled() bool {
	return math.Abs(s.Target-s.Offset) < snapDistance
}
