// Package compute transforms point clouds for the renderers.
//
// Two backends exist:
//
//   - CPU: rotates and scales points on the host, split across workers for
//     large clouds; used by the terminal renderer and the raylib billboards
//   - OpenGL: uploads each cloud once and applies the per-frame transform in a
//     vertex shader; used by the windowed renderer when --gpu is set
//
// # Transform order
//
// A [Transform] scales first, then spins about Y, then tilts about X, matching
// an XYZ Euler rotation applied to a scaled object:
//
//	xf := compute.FromShape(frame.Heart)
//	compute.GetBackend().Transform(dst, clouds.Heart, xf)
package compute
