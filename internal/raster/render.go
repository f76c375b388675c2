package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/san-kum/fibzoom/internal/spiral"
)

var ErrEmptyViewport = errors.New("raster: frame has an empty viewport")

// Render paints f on a black canvas the size of its viewport.
func Render(f spiral.Frame, faces *FaceCache) (image.Image, error) {
	dc, err := paint(f, faces)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// SavePNG renders f and writes it to path.
func SavePNG(path string, f spiral.Frame, faces *FaceCache) error {
	dc, err := paint(f, faces)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func paint(f spiral.Frame, faces *FaceCache) (*gg.Context, error) {
	if f.Viewport.Empty() {
		return nil, ErrEmptyViewport
	}
	w := int(math.Ceil(f.Viewport.Width()))
	h := int(math.Ceil(f.Viewport.Height()))

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.RGB(0, 0, 0))

	s := NewSurface(dc, faces)
	f.Replay(s)
	if err := s.Err(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("render frame %d/%.4f: %w", f.Clock.Cycle, f.Clock.Time, err)
	}
	return dc, nil
}
