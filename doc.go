// Package deepzoom is an interactive Mandelbrot explorer for [Ebitengine]
// that keeps zooming long after float32 runs out of bits.
//
// The view is a 3x3 affine [Matrix3] over exact rationals ([Rat]). Every
// pan, pinch, wheel notch and key-driven animation step right-multiplies it,
// so nothing is lost however deep the zoom goes. To draw, the matrix is
// narrowed to float32 and the translation column (the anchor) is iterated
// as a reference orbit at arbitrary precision. A Kage shader then iterates
// each pixel's difference from that orbit, which float32 can carry.
//
// # Quick start
//
//	deepzoom.Run(deepzoom.RunConfig{
//		Title: "deepzoom", Width: 960, Height: 640, ShowHUD: true,
//	})
//
// # Input
//
// Drag with one pointer to pan, pinch with two to zoom around their midpoint,
// scroll to zoom around the cursor. Shift+scroll stretches the axes, and
// Ctrl+scroll is left to the host. Arrow keys pan and =/- zoom for as long as
// they are held. Home animates back to the initial view.
//
// All input reaches a [Viewport] as an [Event]; [Viewport.Handle] returns an
// [Effect] telling the host whether to draw, start the animation loop or
// consume the event. [Explorer] is the host used by both the window and the
// headless runner.
//
// # Headless and scripts
//
// [RunHeadless] drives an Explorer from a [ManualClock] with no window. A
// JSON [Script] (see [LoadScript]) replays key, pointer, wheel and resize
// actions one frame at a time:
//
//	{"steps": [
//	  {"action": "drag", "fromX": 480, "fromY": 320, "toX": 200, "toY": 320, "frames": 10},
//	  {"action": "key_down", "key": "="},
//	  {"action": "wait", "frames": 30},
//	  {"action": "key_up", "key": "="},
//	  {"action": "screenshot", "label": "zoomed"}
//	]}
//
// # Logging
//
// deepzoom logs through [log/slog] and is silent until [SetLogger] is called.
//
// [Ebitengine]: https://ebitengine.org
package deepzoom
