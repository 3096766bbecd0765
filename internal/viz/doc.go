// Package viz renders the particle scene in a terminal.
//
// Points are projected through an orbit [Camera] onto a braille [Canvas]
// (2x4 dots per cell) and tinted with the animated shape colors. [Model] is a
// Bubble Tea program that advances the animation clock on every tick and
// shows the beat history next to the canvas.
//
// # Key Bindings
//
//	Space   - Pause/Resume
//	R       - Restart the clock
//	Arrows  - Orbit (also HJKL)
//	+/-     - Zoom
//	WASD    - Pan
//	C       - Reset camera
//	T       - Cycle themes
//	G       - Toggle GIF recording
//	?       - Help overlay
package viz
