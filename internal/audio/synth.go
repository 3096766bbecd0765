package audio

import (
	"math"

	"github.com/san-kum/heartbeat/internal/animate"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	DefaultCarrier = 55.0
	DefaultGain    = 0.5
)

// Synth turns the animation beat into a low thump. The envelope is the
// positive half of the beat normalized by its peak, so the sound swells with
// each pulse and is silent between them.
type Synth struct {
	anim    *animate.Animator
	Carrier float64
	Gain    float64
}

func NewSynth(anim *animate.Animator) *Synth {
	return &Synth{anim: anim, Carrier: DefaultCarrier, Gain: DefaultGain}
}

// Envelope returns the pulse strength at t in [0,1].
func (s *Synth) Envelope(t float64) float64 {
	peak := s.anim.MaxBeat()
	if peak == 0 {
		return 0
	}
	e := math.Max(0, s.anim.Beat(t)) / peak
	return e * e
}

// Sample returns the mono sample at t seconds. |Sample(t)| <= Gain.
func (s *Synth) Sample(t float64) float64 {
	phase := 2 * math.Pi * s.Carrier * t
	tone := 0.75*math.Sin(phase) + 0.25*math.Sin(2*phase)
	return s.Gain * s.Envelope(t) * tone
}
