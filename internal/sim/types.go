package sim

import (
	"fmt"
	"math"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// PointerPath scripts the pointer for each frame of a headless run.
type PointerPath func(frame int) field.Pointer

type Observer interface {
	OnFrame(f *field.Field, frame int)
}

type Metric interface {
	Name() string
	Observe(f *field.Field)
	Value() float64
	Reset()
}

type Config struct {
	Frames   int
	Dt       float64
	Seed     int64
	Viewport field.Viewport
	// Resizes replays viewport changes before the keyed frame advances.
	Resizes map[int]field.Viewport
}

func DefaultConfig() Config {
	return Config{
		Frames:   300,
		Dt:       1,
		Viewport: field.Viewport{W: 1280, H: 720},
	}
}

type Result struct {
	Particles []int
	Links     []int
	Metrics   map[string]float64
	Frames    int
}

// MeanLinks is the average number of proximity links per frame.
func (r *Result) MeanLinks() float64 {
	if len(r.Links) == 0 {
		return 0
	}
	sum := 0
	for _, n := range r.Links {
		sum += n
	}
	return float64(sum) / float64(len(r.Links))
}

type FrameError struct {
	Frame   int
	Message string
}

func (e FrameError) Error() string {
	return fmt.Sprintf("frame %d: %s", e.Frame, e.Message)
}

// Still never sets the pointer.
func Still() PointerPath {
	return func(int) field.Pointer { return field.NoPointer }
}

// Orbit circles the pointer around (cx, cy) once every period frames.
func Orbit(cx, cy, radius float64, period int) PointerPath {
	if period <= 0 {
		period = 1
	}
	return func(frame int) field.Pointer {
		a := 2 * math.Pi * float64(frame%period) / float64(period)
		return field.At(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
}

// Sweep moves the pointer corner to corner over frames, then leaves.
func Sweep(vp field.Viewport, frames int) PointerPath {
	return func(frame int) field.Pointer {
		if frames <= 0 || frame >= frames {
			return field.NoPointer
		}
		t := float64(frame) / float64(frames)
		return field.At(t*float64(vp.W), t*float64(vp.H))
	}
}
