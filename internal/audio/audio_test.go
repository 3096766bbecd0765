package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/san-kum/heartbeat/internal/animate"
	"github.com/san-kum/heartbeat/internal/config"
)

func classicSynth() *Synth {
	return NewSynth(animate.New(config.DefaultConfig().Animation()))
}

func TestSynthSilentAtStart(t *testing.T) {
	s := classicSynth()
	if v := s.Sample(0); v != 0 {
		t.Errorf("expected silence at t=0, got %v", v)
	}
}

func TestSynthBounded(t *testing.T) {
	s := classicSynth()
	loud := false
	for i := 0; i < 20000; i++ {
		tm := float64(i) / 2000
		v := s.Sample(tm)
		if math.Abs(v) > s.Gain+1e-12 {
			t.Fatalf("sample %v at t=%v exceeds gain %v", v, tm, s.Gain)
		}
		if math.Abs(v) > 0.1*s.Gain {
			loud = true
		}
		if e := s.Envelope(tm); e < 0 || e > 1 {
			t.Fatalf("envelope %v out of range at t=%v", e, tm)
		}
	}
	if !loud {
		t.Error("synth never rose above 10% of its gain")
	}
}

func TestSynthQuietOnNegativeBeat(t *testing.T) {
	s := classicSynth()
	// sin(3t) and sin(6t) are both negative for t in (π/2, 2π/3).
	tm := 1.8
	if s.Envelope(tm) != 0 || s.Sample(tm) != 0 {
		t.Errorf("expected silence while the beat is negative, got %v", s.Sample(tm))
	}
}

func TestStreamerFollowsSynth(t *testing.T) {
	s := classicSynth()
	sr := beep.SampleRate(8000)
	st := NewStreamer(s, sr)

	buf := make([][2]float64, 512)
	for round := 0; round < 3; round++ {
		n, ok := st.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("expected %d samples, got %d ok=%v", len(buf), n, ok)
		}
		for i := 0; i < n; i++ {
			want := s.Sample(float64(round*len(buf)+i) / float64(sr))
			if buf[i][0] != want || buf[i][1] != want {
				t.Fatalf("sample %d: expected %v, got %v", i, want, buf[i])
			}
		}
	}
	if st.Err() != nil {
		t.Errorf("unexpected error: %v", st.Err())
	}
}

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beat.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	sr := beep.SampleRate(8000)
	if err := WriteWAV(f, classicSynth(), sr, 500*time.Millisecond, 1); err != nil {
		t.Fatalf("WriteWAV failed: %v", err)
	}
	f.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	want := int64(44 + sr.N(500*time.Millisecond)*4)
	if info.Size() != want {
		t.Errorf("expected %d bytes, got %d", want, info.Size())
	}
}

func TestWriteWAVRejectsEmpty(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "empty.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := WriteWAV(f, classicSynth(), 8000, 0, 1); err == nil {
		t.Error("expected an error for zero duration")
	}
}

func TestProcessorAdvancesClock(t *testing.T) {
	s := classicSynth()
	p := NewProcessor(s)
	p.Sync(0.2, false)

	out := [][]float32{make([]float32, 256), make([]float32, 256)}
	p.Process(out)

	if got, want := p.clock, 0.2+256.0/SampleRate; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected clock %v, got %v", want, got)
	}
	nonzero := false
	for i := range out[0] {
		if math.Abs(float64(out[0][i])) > s.Gain {
			t.Fatalf("sample %d exceeds gain", i)
		}
		if out[0][i] != out[1][i] {
			t.Fatalf("channels differ at %d", i)
		}
		if out[0][i] != 0 {
			nonzero = true
		}
	}
	if !nonzero {
		t.Error("expected sound while the beat is positive")
	}
}

func TestProcessorPaused(t *testing.T) {
	p := NewProcessor(classicSynth())
	p.Sync(0.2, true)

	out := [][]float32{make([]float32, 128), make([]float32, 128)}
	p.Process(out)

	if p.clock != 0.2 {
		t.Errorf("paused clock moved to %v", p.clock)
	}
	for i, v := range out[0] {
		if v != 0 {
			t.Fatalf("expected silence while paused, sample %d = %v", i, v)
		}
	}
}

func TestProcessorSyncDuringBuffer(t *testing.T) {
	p := NewProcessor(classicSynth())
	p.Sync(3, false)

	p.mu.Lock()
	gen := p.gen
	p.mu.Unlock()

	// restart arrives while the callback is still filling its buffer
	p.Sync(0, false)
	p.commit(gen, 3+256.0/SampleRate)

	if p.clock != 0 {
		t.Errorf("restart was overwritten, clock = %v", p.clock)
	}

	out := [][]float32{make([]float32, 256), make([]float32, 256)}
	p.Process(out)
	if got, want := p.clock, 256.0/SampleRate; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected clock %v after restart, got %v", want, got)
	}
}
