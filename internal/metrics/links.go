package metrics

import "github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"

// LinkCount averages the number of proximity links per frame.
type LinkCount struct {
	name    string
	samples int
	total   int
	peak    int
}

func NewLinkCount() *LinkCount {
	return &LinkCount{name: "links"}
}

func (l *LinkCount) Name() string { return l.name }

func (l *LinkCount) Observe(f *field.Field) {
	n := len(f.Connections())
	l.total += n
	l.samples++
	if n > l.peak {
		l.peak = n
	}
}

func (l *LinkCount) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return float64(l.total) / float64(l.samples)
}

func (l *LinkCount) Peak() int { return l.peak }

func (l *LinkCount) Reset() {
	l.samples = 0
	l.total = 0
	l.peak = 0
}
