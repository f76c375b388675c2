// Package gui hosts the zoom in a resizable raylib window.
//
// Each refresh advances the clock by one step, composes a frame for the
// current window size and replays it onto a black background. Glow and curve
// colors are premultiplied and drawn with BlendAlphaPremultiply.
//
// The window closes on Esc or the close button.
package gui
