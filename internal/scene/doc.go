// Package scene holds the data model shared by the generators, the animator and
// the renderers of the pulsing heart.
//
//   - [PointCloud]: flat count×3 float32 positions, immutable once built
//   - [HeartParams], [TextParams], [ExplosionParams]: generator inputs
//   - [BeatParams], [MotionParams], [ShapeStyle]: animator inputs
//   - [Frame]: per-frame transform and material values for every shape
//
// # Example
//
//	src := cloud.NewSource(42)
//	heart := cloud.Heart(src, scene.DefaultHeartParams())
//	anim := animate.New(cfg.Animation())
//	f := anim.Frame(elapsed)
//	// apply f.Heart to the renderer's heart handle
//
// Nothing in this package blocks or spawns goroutines; a [Frame] is a plain
// value and may be copied freely.
package scene
