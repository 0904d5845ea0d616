package field

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

type Viewport struct {
	W, H int
}

// Area returns W*H with negative dimensions treated as zero.
func (v Viewport) Area() int {
	v = v.clamped()
	return v.W * v.H
}

func (v Viewport) clamped() Viewport {
	if v.W < 0 {
		v.W = 0
	}
	if v.H < 0 {
		v.H = 0
	}
	return v
}

// Pointer is the last known pointer position. The zero value is unset.
type Pointer struct {
	X, Y float64
	Set  bool
}

// NoPointer is the unset pointer, used after a pointer-leave.
var NoPointer = Pointer{}

// At returns a pointer set to (x, y).
func At(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Set: true}
}

type Particle struct {
	X, Y       float64
	VX, VY     float64
	Size       float64
	Radius     float64
	Opacity    float64
	Color      color.NRGBA
	Hue        float64
	Phase      float64
	PhaseSpeed float64
}

// Speed returns the magnitude of the particle velocity.
func (p Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

type Boundary int

const (
	Wrap Boundary = iota
	Bounce
)

func (b Boundary) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case Bounce:
		return "bounce"
	}
	return fmt.Sprintf("boundary(%d)", int(b))
}

func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return Wrap, nil
	case "bounce":
		return Bounce, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBoundary, s)
}

type Coloring int

const (
	Palette Coloring = iota
	HueCycle
)

func (c Coloring) String() string {
	switch c {
	case Palette:
		return "palette"
	case HueCycle:
		return "hue"
	}
	return fmt.Sprintf("coloring(%d)", int(c))
}

func ParseColoring(s string) (Coloring, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "palette":
		return Palette, nil
	case "hue", "hue-cycle", "huecycle":
		return HueCycle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColoring, s)
}

// Swatch is one weighted palette entry.
type Swatch struct {
	Color  color.NRGBA
	Weight float64
}

// Stop is a radial gradient stop; Alpha is relative to the particle opacity.
type Stop struct {
	Offset float64
	Alpha  float64
}

type Background struct {
	From  color.NRGBA
	To    color.NRGBA
	Alpha float64
}

// Gradient reports whether the background fades vertically from From to To.
func (b Background) Gradient() bool {
	return b.To != (color.NRGBA{}) && b.To != b.From
}

// Variant is the full tuning of one visual style.
type Variant struct {
	Name string

	Density  float64
	Count    int
	Boundary Boundary
	Margin   float64
	Coloring Coloring

	Swatches   []Swatch
	HueBase    float64
	HueMax     float64
	HueStep    float64
	Saturation float64
	Lightness  float64

	SizeMin, SizeMax             float64
	Speed                        float64
	OpacityMin, OpacityMax       float64
	PhaseSpeedMin, PhaseSpeedMax float64
	Twinkle                      bool
	Wobble                       float64

	InteractRadius float64
	Push           float64

	LinkDistance float64
	LinkScale    float64
	LinkWidth    float64
	LinkColor    color.NRGBA
	LinkBlend    bool

	GlowScale float64
	GlowStops []Stop
	CoreScale float64
	CoreColor color.NRGBA

	Background Background

	NoiseEvery      int
	NoiseAmount     float64
	ScanlineSpacing int
	ScanlineAlpha   float64
}

// Validate reports the first tuning value that cannot drive a field.
func (v Variant) Validate() error {
	if v.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidVariant, v.Count)
	}
	if v.Count == 0 && v.Density <= 0 {
		return fmt.Errorf("%w: density must be positive, got %f", ErrInvalidVariant, v.Density)
	}
	if v.SizeMin < 0 || v.SizeMax < v.SizeMin {
		return fmt.Errorf("%w: size range [%f, %f]", ErrInvalidVariant, v.SizeMin, v.SizeMax)
	}
	if v.OpacityMin < 0 || v.OpacityMax > 1 || v.OpacityMax < v.OpacityMin {
		return fmt.Errorf("%w: opacity range [%f, %f]", ErrInvalidVariant, v.OpacityMin, v.OpacityMax)
	}
	if v.PhaseSpeedMax < v.PhaseSpeedMin {
		return fmt.Errorf("%w: phase speed range [%f, %f]", ErrInvalidVariant, v.PhaseSpeedMin, v.PhaseSpeedMax)
	}
	if v.Speed < 0 || v.InteractRadius < 0 || v.LinkDistance < 0 {
		return fmt.Errorf("%w: speed, interaction radius and link distance must not be negative", ErrInvalidVariant)
	}
	switch v.Coloring {
	case Palette:
		total := 0.0
		for _, s := range v.Swatches {
			if s.Weight < 0 {
				return fmt.Errorf("%w: negative swatch weight", ErrInvalidVariant)
			}
			total += s.Weight
		}
		if total <= 0 {
			return fmt.Errorf("%w: palette needs at least one weighted swatch", ErrInvalidVariant)
		}
	case HueCycle:
		if v.HueMax <= v.HueBase {
			return fmt.Errorf("%w: hue range [%f, %f]", ErrInvalidVariant, v.HueBase, v.HueMax)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownColoring, v.Coloring)
	}
	if v.Boundary != Wrap && v.Boundary != Bounce {
		return fmt.Errorf("%w: %v", ErrUnknownBoundary, v.Boundary)
	}
	return nil
}
