package spiral

import (
	"fmt"
	"math"
)

// Visibility is the culling decision for one square.
type Visibility int

const (
	Visible Visibility = iota
	// CullSmall skips the square; later squares may still be visible.
	CullSmall
	// CullLarge ends the frame; every later square is larger still.
	CullLarge
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case CullSmall:
		return "cull-small"
	case CullLarge:
		return "cull-large"
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// Policy holds the size thresholds that drive culling and fading. Pixel
// thresholds are absolute; factors are multiples of the viewport width.
type Policy struct {
	MinPx         float64 // below: cull
	MaxFactor     float64 // above MaxFactor*W: stop
	FadeInPx      float64 // below: alpha ramps up from 0
	FadeOutFactor float64 // above FadeOutFactor*W: alpha ramps down
	FadeOutSpan   float64 // ramp length, in widths
	LabelMinPx    float64
	LabelMinAlpha uint8
	LabelMinSize  float64
	LabelMaxSize  float64
}

func DefaultPolicy() Policy {
	return Policy{
		MinPx:         0.1,
		MaxFactor:     20,
		FadeInPx:      20,
		FadeOutFactor: 2,
		FadeOutSpan:   10,
		LabelMinPx:    40,
		LabelMinAlpha: 50,
		LabelMinSize:  12,
		LabelMaxSize:  40,
	}
}

func (p Policy) Validate() error {
	switch {
	case p.MinPx < 0:
		return fmt.Errorf("%w: min px must not be negative", ErrInvalidParams)
	case !(p.FadeInPx > 0):
		return fmt.Errorf("%w: fade-in px must be positive", ErrInvalidParams)
	case !(p.FadeOutSpan > 0):
		return fmt.Errorf("%w: fade-out span must be positive", ErrInvalidParams)
	case p.MaxFactor < p.FadeOutFactor:
		return fmt.Errorf("%w: max factor %v below fade-out factor %v", ErrInvalidParams, p.MaxFactor, p.FadeOutFactor)
	case p.LabelMinSize > p.LabelMaxSize:
		return fmt.Errorf("%w: label size range inverted", ErrInvalidParams)
	}
	return nil
}

// Classify decides whether a square of on-screen width px is drawn in a
// viewport of width w. Alpha is only meaningful for Visible squares. A size
// that is not finite is culled as small.
func (p Policy) Classify(px, w float64) (Visibility, uint8) {
	if !finite(px) || px < p.MinPx {
		return CullSmall, 0
	}
	if px > w*p.MaxFactor {
		return CullLarge, 0
	}
	return Visible, p.Alpha(px, w)
}

// Alpha fades squares in as they grow out of sub-pixel size and out again once
// they dwarf the viewport.
func (p Policy) Alpha(px, w float64) uint8 {
	switch {
	case px < p.FadeInPx:
		return toAlpha(px / p.FadeInPx * 255)
	case px > w*p.FadeOutFactor:
		fade := math.Min((px-w*p.FadeOutFactor)/(w*p.FadeOutSpan)*255, 255)
		return toAlpha(255 - fade)
	default:
		return 255
	}
}

// ShouldLabel reports whether the term value is printed inside the square.
func (p Policy) ShouldLabel(px float64, alpha uint8) bool {
	return px > p.LabelMinPx && alpha > p.LabelMinAlpha
}

// LabelSize is the font size for a labelled square.
func (p Policy) LabelSize(px float64) float64 {
	return math.Max(p.LabelMinSize, math.Min(px, p.LabelMaxSize))
}

// toAlpha truncates to a channel value, saturating at both ends.
func toAlpha(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
