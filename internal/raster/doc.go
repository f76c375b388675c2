// Package raster renders frames offscreen with gogpu/gg.
//
// [Render] and [SavePNG] paint a single frame on black. [Record] renders a run
// of consecutive frames in parallel and assembles them into an animated GIF
// quantized to the Plan 9 palette. Label text uses Go Regular faces from a
// shared [FaceCache].
package raster
