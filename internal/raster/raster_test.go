package raster

import (
	"context"
	"errors"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/san-kum/fibzoom/internal/spiral"
)

func testParams(width float64) spiral.Params {
	p := spiral.DefaultParams()
	p.BaseScale = p.BaseScale * width / 1000
	return p
}

func newFaces(t *testing.T) *FaceCache {
	t.Helper()
	faces, err := NewFaceCache(DefaultFaceCacheSize)
	if err != nil {
		t.Fatalf("face cache: %v", err)
	}
	return faces
}

func hasCurvePixel(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 > 200 && g>>8 > 100 && bl>>8 < 100 {
				return true
			}
		}
	}
	return false
}

func TestFaceCache(t *testing.T) {
	faces := newFaces(t)

	a := faces.Face(12)
	b := faces.Face(12.3)
	if a != b {
		t.Error("sizes rounding to the same point should share a face")
	}
	if faces.Len() != 1 {
		t.Errorf("expected 1 cached face, got %d", faces.Len())
	}
	faces.Face(40)
	if faces.Len() != 2 {
		t.Errorf("expected 2 cached faces, got %d", faces.Len())
	}

	small, err := NewFaceCache(1)
	if err != nil {
		t.Fatal(err)
	}
	small.Face(12)
	small.Face(13)
	if small.Len() != 1 {
		t.Errorf("cache should evict down to its size, got %d", small.Len())
	}
}

func TestRender(t *testing.T) {
	vp := spiral.RectFromSize(spiral.Point{}, 200, 160)
	f := spiral.Compose(spiral.Clock{}, vp, testParams(200))

	img, err := Render(f, newFaces(t))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 160 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
	if !hasCurvePixel(img) {
		t.Error("expected orange curve pixels")
	}
}

func TestRenderEmptyViewport(t *testing.T) {
	f := spiral.Compose(spiral.Clock{}, spiral.Rect{}, spiral.DefaultParams())
	if _, err := Render(f, nil); !errors.Is(err, ErrEmptyViewport) {
		t.Errorf("expected ErrEmptyViewport, got %v", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	vp := spiral.RectFromSize(spiral.Point{}, 120, 90)
	f := spiral.Compose(spiral.Clock{Time: 3}, vp, testParams(120))

	if err := SavePNG(path, f, newFaces(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 90 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestRecord(t *testing.T) {
	var calls atomic.Int32
	opts := RecordOptions{
		Frames:   6,
		Width:    64,
		Height:   48,
		FPS:      60,
		Workers:  2,
		Progress: func(int) { calls.Add(1) },
	}

	anim, err := Record(context.Background(), testParams(64), opts, newFaces(t))
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if len(anim.Image) != 6 || len(anim.Delay) != 6 {
		t.Fatalf("expected 6 frames, got %d images %d delays", len(anim.Image), len(anim.Delay))
	}
	for i, img := range anim.Image {
		if img == nil {
			t.Fatalf("frame %d missing", i)
		}
		if img.Bounds() != image.Rect(0, 0, 64, 48) {
			t.Errorf("frame %d: unexpected bounds %v", i, img.Bounds())
		}
	}
	if anim.Delay[0] != 2 {
		t.Errorf("expected delay 2 at 60 fps, got %d", anim.Delay[0])
	}
	if calls.Load() != 6 {
		t.Errorf("expected 6 progress calls, got %d", calls.Load())
	}

	path := filepath.Join(t.TempDir(), "zoom.gif")
	if err := WriteGIF(path, anim); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	decoded, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded.Image) != 6 {
		t.Errorf("expected 6 decoded frames, got %d", len(decoded.Image))
	}
}

func TestRecordCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := RecordOptions{Frames: 4, Width: 32, Height: 32, FPS: 30}
	if _, err := Record(ctx, testParams(32), opts, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRecordRejects(t *testing.T) {
	p := spiral.DefaultParams()
	if _, err := Record(context.Background(), p, RecordOptions{Width: 10, Height: 10}, nil); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
	if _, err := Record(context.Background(), p, RecordOptions{Frames: 1}, nil); !errors.Is(err, ErrEmptyViewport) {
		t.Errorf("expected ErrEmptyViewport, got %v", err)
	}
	p.Step = 0
	if _, err := Record(context.Background(), p, RecordOptions{Frames: 1, Width: 10, Height: 10}, nil); !errors.Is(err, spiral.ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
}

func TestFrameDelay(t *testing.T) {
	tests := []struct {
		fps  int
		want int
	}{
		{60, 2},
		{30, 3},
		{25, 4},
		{0, 2},
		{500, 1},
	}
	for _, tt := range tests {
		if got := frameDelay(tt.fps); got != tt.want {
			t.Errorf("frameDelay(%d) = %d, want %d", tt.fps, got, tt.want)
		}
	}
}
