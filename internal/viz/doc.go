// Package viz renders the Fibonacci zoom in a terminal.
//
// Frames from the spiral package are replayed onto a braille canvas, so each
// character cell holds a 2x4 block of dots:
//
//   - [Canvas]: braille dot grid with clipped line drawing and text cells
//   - [CanvasSurface]: spiral.Surface over a Canvas
//   - [Model]: Bubble Tea program that advances the animation at the target FPS
//   - [Theme]: color schemes for curves, outlines and labels
//
// # Key Bindings
//
//	T                - Cycle color themes
//	Q / Esc / Ctrl+C - Quit
//
// Braille dots carry no alpha, so faded strokes below fixed thresholds are
// skipped instead of blended.
package viz
