// Package gui renders the scene in a raylib window.
//
// Particles are drawn as additive glow billboards transformed on the CPU, or
// as GL points through [compute.OpenGLBackend] when the GPU path is enabled.
// Bloom is a full screen pass over a render texture.
//
//	Left drag   - Orbit
//	Right drag  - Pan (also WASD)
//	Wheel       - Zoom
//	Space       - Pause/Resume
//	R           - Restart the clock
//	B           - Toggle bloom
//	G           - Toggle GPU points
//	C           - Reset camera
//	Q           - Quit
package gui
