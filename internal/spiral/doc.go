// Package spiral implements the per-frame pipeline of the infinite Fibonacci zoom.
//
// A frame is a pure function of the animation clock and the viewport:
//
//   - [Clock]: animation time and cycle counter, the only state carried between frames
//   - [Sequence]: Fibonacci terms up to a term count or magnitude ceiling
//   - [Tiler]: golden-spiral placement of each term around a running bounding box
//   - [Projection]: time-driven exponential zoom centred on the eye point
//   - [Policy]: culling, fade alpha and label decisions by apparent size
//   - [Frame]: the resulting draw commands, replayed onto any [Surface]
//
// # Example
//
//	clock := spiral.Clock{}
//	params := spiral.DefaultParams()
//	for host.Running() {
//		var frame spiral.Frame
//		frame, clock = spiral.Step(clock, host.Viewport(), params)
//		frame.Replay(host)
//	}
//
// # Thread Safety
//
// All functions are pure. A [Frame] may be composed on any goroutine; replaying it
// is as safe as the [Surface] it is replayed onto.
package spiral
