package config

import (
	"image/color"
	"sort"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// Starfield is the sparse twinkling star field: white, pale blue, pale
// yellow and pale violet stars that drift, wrap at the edges and flee the
// pointer.
func Starfield() field.Variant {
	return field.Variant{
		Name:     "starfield",
		Density:  3000,
		Boundary: field.Wrap,
		Coloring: field.Palette,
		Swatches: []field.Swatch{
			{Color: color.NRGBA{255, 255, 255, 255}, Weight: 0.4},
			{Color: color.NRGBA{180, 220, 255, 255}, Weight: 0.2},
			{Color: color.NRGBA{255, 250, 200, 255}, Weight: 0.2},
			{Color: color.NRGBA{220, 200, 255, 255}, Weight: 0.2},
		},
		SizeMin: 0.5, SizeMax: 3,
		Speed:      0.3,
		OpacityMin: 0.2, OpacityMax: 1,
		PhaseSpeedMin: 0.01, PhaseSpeedMax: 0.04,
		Twinkle:        true,
		InteractRadius: 180,
		Push:           2,
		LinkDistance:   100,
		LinkScale:      0.2,
		LinkWidth:      0.5,
		LinkColor:      color.NRGBA{200, 220, 255, 255},
		GlowScale:      4,
		GlowStops:      field.DefaultGlow,
		CoreScale:      0.6,
		CoreColor:      color.NRGBA{255, 255, 255, 255},
		Background:     field.Background{From: color.NRGBA{10, 15, 30, 255}, Alpha: 1},
	}
}

// Network is the denser colour-cycling network: nodes bounce off the edges,
// are drawn toward the pointer and link with hue gradients.
func Network() field.Variant {
	return field.Variant{
		Name:     "network",
		Density:  12000,
		Boundary: field.Bounce,
		Coloring: field.HueCycle,
		HueBase:  180, HueMax: 320, HueStep: 0.3,
		Saturation: 0.8, Lightness: 0.65,
		SizeMin: 1.5, SizeMax: 3.5,
		Speed:      0.5,
		OpacityMin: 0.5, OpacityMax: 0.9,
		InteractRadius: 150,
		Push:           -1.2,
		LinkDistance:   120,
		LinkScale:      0.5,
		LinkWidth:      1,
		LinkBlend:      true,
		GlowScale:      3,
		GlowStops:      []field.Stop{{Offset: 0, Alpha: 1}, {Offset: 0.5, Alpha: 0.25}, {Offset: 1, Alpha: 0}},
		CoreScale:      1,
		CoreColor:      color.NRGBA{240, 245, 255, 255},
		Background: field.Background{
			From:  color.NRGBA{8, 10, 24, 255},
			To:    color.NRGBA{24, 12, 40, 255},
			Alpha: 1,
		},
	}
}

// Ink is the fluid ink variant: eight large soft blobs that wobble, bounce
// just outside the viewport and smear over a translucent repaint, finished
// with film grain and scanlines.
func Ink() field.Variant {
	return field.Variant{
		Name:     "ink",
		Count:    8,
		Boundary: field.Bounce,
		Margin:   80,
		Coloring: field.Palette,
		Swatches: []field.Swatch{
			{Color: color.NRGBA{94, 53, 177, 255}, Weight: 1},
			{Color: color.NRGBA{30, 136, 229, 255}, Weight: 1},
			{Color: color.NRGBA{0, 172, 193, 255}, Weight: 1},
			{Color: color.NRGBA{216, 27, 96, 255}, Weight: 1},
		},
		SizeMin: 120, SizeMax: 260,
		Speed:      0.8,
		OpacityMin: 0.35, OpacityMax: 0.6,
		PhaseSpeedMin: 0.005, PhaseSpeedMax: 0.02,
		Wobble:          0.15,
		InteractRadius:  240,
		Push:            -0.8,
		GlowScale:       1,
		GlowStops:       []field.Stop{{Offset: 0, Alpha: 1}, {Offset: 0.6, Alpha: 0.45}, {Offset: 1, Alpha: 0}},
		Background:      field.Background{From: color.NRGBA{6, 6, 14, 255}, Alpha: 0.12},
		NoiseEvery:      3,
		NoiseAmount:     0.06,
		ScanlineSpacing: 3,
		ScanlineAlpha:   0.08,
	}
}

var Presets = map[string]func() field.Variant{
	"starfield": Starfield,
	"network":   Network,
	"ink":       Ink,
}

// GetPreset returns a fresh copy of the named variant, or nil.
func GetPreset(name string) *field.Variant {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	v := build()
	return &v
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
