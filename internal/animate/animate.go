// Package animate computes per-frame transform and material values from
// elapsed time. Every method is a pure function of its arguments.
package animate

import (
	"math"

	"github.com/san-kum/heartbeat/internal/scene"
)

// Animator maps elapsed seconds to a [scene.Frame].
type Animator struct {
	beat      scene.BeatParams
	motion    scene.MotionParams
	styles    scene.Styles
	explosion scene.ExplosionParams
}

func New(a scene.Animation) *Animator {
	return &Animator{
		beat:      a.Beat,
		motion:    a.Motion,
		styles:    a.Styles,
		explosion: a.Explosion,
	}
}

// Beat is the double pulse A1 sin(W1 t) + A2 sin(W2 t).
func (a *Animator) Beat(t float64) float64 {
	return a.beat.A1*math.Sin(a.beat.W1*t) + a.beat.A2*math.Sin(a.beat.W2*t)
}

// MaxBeat bounds |Beat(t)| for every t.
func (a *Animator) MaxBeat() float64 {
	return math.Abs(a.beat.A1) + math.Abs(a.beat.A2)
}

// RotationY spins the shapes at a constant rate.
func (a *Animator) RotationY(t float64) float64 {
	return t * a.motion.SpinRate
}

// RotationX rocks the shapes back and forth.
func (a *Animator) RotationX(t float64) float64 {
	return math.Sin(a.motion.TiltRate*t) * a.motion.TiltAmp
}

// Frame evaluates every shape at time t.
func (a *Animator) Frame(t float64) scene.Frame {
	b := a.Beat(t)
	rx, ry := a.RotationX(t), a.RotationY(t)

	f := scene.Frame{
		Time:  t,
		Beat:  b,
		Heart: shape(a.styles.Heart, b, rx, ry),
		Text:  shape(a.styles.Text, b, rx, ry),
	}
	f.Explosion = a.explode(b)
	return f
}

func shape(s scene.ShapeStyle, beat, rx, ry float64) scene.ShapeFrame {
	scale := 1.0
	if s.Scales {
		scale = 1 + beat
	}
	return scene.ShapeFrame{
		RotationX: rx,
		RotationY: ry,
		Scale:     scale,
		Size:      s.BaseSize + beat*s.SizeGain,
		Color:     color(s, beat),
		Opacity:   s.Opacity,
		Visible:   true,
	}
}

// color returns (1, Green·I, Blue·I) with I = BaseIntensity + beat·IntensityGain.
// The result is left unclamped; renderers clamp at output.
func color(s scene.ShapeStyle, beat float64) scene.RGB {
	i := s.BaseIntensity + beat*s.IntensityGain
	return scene.RGB{R: 1, G: s.Green * i, B: s.Blue * i}
}

// explode gates the burst cube on the beat. The scale is recomputed every
// frame and falls back to 1 (hidden) once the beat drops to the threshold.
func (a *Animator) explode(beat float64) scene.ShapeFrame {
	f := shape(a.styles.Explosion, beat, 0, 0)
	f.Scale = 1
	f.Visible = false
	if a.explosion.Enabled && beat > a.explosion.Threshold {
		f.Scale = 1 + beat*a.explosion.Gain
		f.Visible = true
	}
	return f
}
