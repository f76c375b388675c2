package raster

import (
	"fmt"
	"math"

	"github.com/gogpu/gg/text"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFaceCacheSize covers every whole label size between the minimum and
// maximum label sizes.
const DefaultFaceCacheSize = 32

// FaceCache hands out Go Regular faces keyed by size rounded to whole points.
// It is safe for concurrent use.
type FaceCache struct {
	source *text.FontSource
	faces  *lru.Cache[float64, text.Face]
}

func NewFaceCache(size int) (*FaceCache, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	faces, err := lru.New[float64, text.Face](size)
	if err != nil {
		return nil, err
	}
	return &FaceCache{source: source, faces: faces}, nil
}

func (c *FaceCache) Face(size float64) text.Face {
	size = math.Round(size)
	if f, ok := c.faces.Get(size); ok {
		return f
	}
	f := c.source.Face(size)
	c.faces.Add(size, f)
	return f
}

// Len reports how many faces are cached.
func (c *FaceCache) Len() int {
	return c.faces.Len()
}
