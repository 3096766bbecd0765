package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// Processor plays a Synth on the default output device in real time.
type Processor struct {
	Stream *portaudio.Stream
	Synth  *Synth

	mu     sync.Mutex
	clock  float64
	paused bool
	gen    uint64
	filter [2]float64
	cutoff float64

	Active bool
}

func NewProcessor(s *Synth) *Processor {
	return &Processor{Synth: s, cutoff: 400}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to init portaudio: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.Process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to start audio stream: %w", err)
	}

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if !a.Active {
		return
	}
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
	}
	portaudio.Terminate()
	a.Active = false
}

// Sync moves the audio clock to the animation clock.
func (a *Processor) Sync(t float64, paused bool) {
	a.mu.Lock()
	a.clock = t
	a.paused = paused
	a.gen++
	a.mu.Unlock()
}

// Process fills a stereo output buffer. It is the portaudio callback.
func (a *Processor) Process(out [][]float32) {
	a.mu.Lock()
	t, paused, gen := a.clock, a.paused, a.gen
	a.mu.Unlock()

	dt := 1.0 / float64(SampleRate)
	for i := range out[0] {
		v := 0.0
		if !paused {
			v = a.Synth.Sample(t)
			t += dt
		}
		for ch := range out {
			if ch > 1 {
				out[ch][i] = 0
				continue
			}
			a.filter[ch] = lpf(v, a.cutoff, dt, a.filter[ch])
			out[ch][i] = float32(a.filter[ch])
		}
	}

	a.commit(gen, t)
}

// commit stores the clock reached by a buffer rendered from generation gen.
// A Sync that landed while the buffer was rendering wins.
func (a *Processor) commit(gen uint64, t float64) {
	a.mu.Lock()
	if a.gen == gen && !a.paused {
		a.clock = t
	}
	a.mu.Unlock()
}

// lpf is a one pole low pass filter.
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}
