package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// SVG is a field.Surface that records one frame as an SVG document. Every
// Fill starts a new document, so only the last rendered frame is kept.
type SVG struct {
	Width, Height int
	defs          strings.Builder
	body          strings.Builder
	nextID        int
}

func NewSVG(w, h int) *SVG {
	return &SVG{Width: w, Height: h}
}

func (s *SVG) gradientID() string {
	s.nextID++
	return fmt.Sprintf("g%d", s.nextID)
}

// Fill paints the background opaque; a snapshot has no earlier frame to
// show through.
func (s *SVG) Fill(bg field.Background) {
	s.defs.Reset()
	s.body.Reset()
	s.nextID = 0

	fill := hex(bg.From)
	if bg.Gradient() {
		id := s.gradientID()
		fmt.Fprintf(&s.defs, `<linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`+
			`<stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/></linearGradient>`+"\n",
			id, hex(bg.From), hex(bg.To))
		fill = "url(#" + id + ")"
	}
	fmt.Fprintf(&s.body, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", fill)
}

func (s *SVG) Line(x1, y1, x2, y2, width float64, from, to color.NRGBA) {
	if from.A == 0 && to.A == 0 {
		return
	}
	stroke := hex(from)
	opacity := fmt.Sprintf(` stroke-opacity="%.3f"`, field.Opacity(from))
	if from != to {
		id := s.gradientID()
		fmt.Fprintf(&s.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f">`+
			`<stop offset="0" stop-color="%s" stop-opacity="%.3f"/><stop offset="1" stop-color="%s" stop-opacity="%.3f"/></linearGradient>`+"\n",
			id, x1, y1, x2, y2, hex(from), field.Opacity(from), hex(to), field.Opacity(to))
		stroke = "url(#" + id + ")"
		opacity = ""
	}
	fmt.Fprintf(&s.body, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f"%s/>`+"\n",
		x1, y1, x2, y2, stroke, width, opacity)
}

func (s *SVG) Glow(x, y, radius float64, c color.NRGBA, stops []field.Stop) {
	if radius <= 0 || c.A == 0 {
		return
	}
	id := s.gradientID()
	fmt.Fprintf(&s.defs, `<radialGradient id="%s">`, id)
	for _, st := range stops {
		fmt.Fprintf(&s.defs, `<stop offset="%.2f" stop-color="%s" stop-opacity="%.3f"/>`,
			st.Offset, hex(c), field.Opacity(c)*st.Alpha)
	}
	s.defs.WriteString("</radialGradient>\n")
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="url(#%s)"/>`+"\n", x, y, radius, id)
}

func (s *SVG) Disc(x, y, radius float64, c color.NRGBA) {
	if radius <= 0 || c.A == 0 {
		return
	}
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="%.3f"/>`+"\n",
		x, y, radius, hex(c), field.Opacity(c))
}

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.Width, s.Height, s.Width, s.Height))
	if s.defs.Len() > 0 {
		sb.WriteString("<defs>\n")
		sb.WriteString(s.defs.String())
		sb.WriteString("</defs>\n")
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// Snapshot renders f once and returns the SVG document.
func Snapshot(f *field.Field) string {
	vp := f.Viewport()
	s := NewSVG(vp.W, vp.H)
	field.Render(f, s)
	return s.String()
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
