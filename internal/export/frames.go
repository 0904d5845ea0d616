package export

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

// PNGFrames renders every observed frame to Dir/<Prefix>_NNNN.png.
type PNGFrames struct {
	Dir     string
	Prefix  string
	Every   int
	Caption string
	raster  *Raster
	written []string
	err     error
}

func NewPNGFrames(dir string, w, h int) *PNGFrames {
	return &PNGFrames{Dir: dir, Prefix: "frame", Every: 1, raster: NewRaster(w, h)}
}

func (p *PNGFrames) OnFrame(f *field.Field, frame int) {
	if p.err != nil || (p.Every > 1 && frame%p.Every != 0) {
		return
	}
	field.Render(f, p.raster)
	if p.Caption != "" {
		if err := p.raster.Caption(p.Caption, 14, color.White); err != nil {
			p.err = err
			return
		}
	}
	path := filepath.Join(p.Dir, fmt.Sprintf("%s_%04d.png", p.Prefix, frame))
	if err := p.raster.SavePNG(path); err != nil {
		p.err = fmt.Errorf("frame %d: %w", frame, err)
		return
	}
	p.written = append(p.written, path)
}

// Written lists the files saved so far.
func (p *PNGFrames) Written() []string { return p.written }

// Err returns the first write error; frames after it are skipped.
func (p *PNGFrames) Err() error { return p.err }

// GIFRecorder renders observed frames and quantises them to the Plan 9
// palette for an animated GIF.
type GIFRecorder struct {
	Every   int
	Delay   int // hundredths of a second per frame
	Caption string
	raster  *Raster
	anim    gif.GIF
	err     error
}

// minGIFDelay is the shortest delay decoders honour; browsers slow 0 and 1
// down to 10.
const minGIFDelay = 2

func NewGIFRecorder(w, h, fps int) *GIFRecorder {
	return &GIFRecorder{Every: 1, Delay: GIFDelay(float64(fps)), raster: NewRaster(w, h)}
}

// GIFDelay converts a frame rate to a GIF frame delay in hundredths of a
// second, rounded and clamped to what players honour.
func GIFDelay(fps float64) int {
	if fps <= 0 {
		return minGIFDelay
	}
	return max(minGIFDelay, int(math.Round(100/fps)))
}

func (g *GIFRecorder) OnFrame(f *field.Field, frame int) {
	if g.err != nil || (g.Every > 1 && frame%g.Every != 0) {
		return
	}
	field.Render(f, g.raster)
	if g.Caption != "" {
		if err := g.raster.Caption(g.Caption, 14, color.White); err != nil {
			g.err = err
			return
		}
	}
	src := g.raster.Image()
	img := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(img, src.Bounds(), src, image.Point{})
	g.anim.Image = append(g.anim.Image, img)
	g.anim.Delay = append(g.anim.Delay, g.Delay)
}

func (g *GIFRecorder) Len() int { return len(g.anim.Image) }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if g.err != nil {
		return g.err
	}
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	return gif.EncodeAll(w, &g.anim)
}

func (g *GIFRecorder) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
