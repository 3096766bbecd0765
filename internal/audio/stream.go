package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// Streamer renders a Synth as an endless beep stream starting at t=0.
type Streamer struct {
	synth *Synth
	sr    beep.SampleRate
	pos   int
}

func NewStreamer(s *Synth, sr beep.SampleRate) *Streamer {
	return &Streamer{synth: s, sr: sr}
}

func (g *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := g.synth.Sample(float64(g.pos) / float64(g.sr))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *Streamer) Err() error {
	return nil
}

// WriteWAV encodes duration of the heartbeat as 16-bit stereo WAV. volume is
// a linear gain applied on top of the synth gain.
func WriteWAV(w io.WriteSeeker, s *Synth, sr beep.SampleRate, duration time.Duration, volume float64) error {
	if duration <= 0 {
		return fmt.Errorf("wav duration must be positive, got %v", duration)
	}
	var src beep.Streamer = beep.Take(sr.N(duration), NewStreamer(s, sr))
	if volume != 1 {
		src = &effects.Gain{Streamer: src, Gain: volume - 1}
	}

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, src, format); err != nil {
		return fmt.Errorf("failed to encode wav: %w", err)
	}
	return nil
}
