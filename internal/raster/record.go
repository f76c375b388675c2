package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/fibzoom/internal/spiral"
)

var ErrNoFrames = errors.New("raster: nothing to record")

// RecordOptions describes a run of consecutive frames.
type RecordOptions struct {
	Frames int
	Width  int
	Height int
	FPS    int
	Start  spiral.Clock
	// Workers bounds parallel rendering; zero means GOMAXPROCS.
	Workers int
	// Progress, if set, is called with the number of finished frames. It may
	// be called from several goroutines.
	Progress func(done int)
}

// Record renders opts.Frames consecutive frames, one clock step apart, and
// returns them as an animated GIF. Frames are composed and rasterized in
// parallel; their order in the GIF follows the clock.
func Record(ctx context.Context, p spiral.Params, opts RecordOptions, faces *FaceCache) (*gif.GIF, error) {
	if opts.Frames <= 0 {
		return nil, ErrNoFrames
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrEmptyViewport
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	clocks := make([]spiral.Clock, opts.Frames)
	c := opts.Start
	for i := range clocks {
		c = c.Advance(p.Step, p.ResetPeriod)
		clocks[i] = c
	}

	viewport := spiral.RectFromSize(spiral.Point{}, float64(opts.Width), float64(opts.Height))
	images := make([]*image.Paletted, opts.Frames)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var done atomic.Int64
	for i, clock := range clocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Render(spiral.Compose(clock, viewport, p), faces)
			if err != nil {
				return err
			}
			images[i] = quantize(img)
			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	delay := frameDelay(opts.FPS)
	anim := &gif.GIF{
		Image: images,
		Delay: make([]int, len(images)),
	}
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}
	return anim, nil
}

// WriteGIF encodes anim to path.
func WriteGIF(path string, anim *gif.GIF) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	pm := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pm, b, img, b.Min)
	return pm
}

// frameDelay converts a frame rate to GIF delay units of 1/100 s.
func frameDelay(fps int) int {
	if fps <= 0 {
		return 2
	}
	d := int(math.Round(100 / float64(fps)))
	if d < 1 {
		d = 1
	}
	return d
}
