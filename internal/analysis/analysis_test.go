package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/heartbeat/internal/animate"
	"github.com/san-kum/heartbeat/internal/config"
	"github.com/san-kum/heartbeat/internal/scene"
)

func classic() *animate.Animator {
	return animate.New(config.DefaultConfig().Animation())
}

func TestSampleBeat(t *testing.T) {
	anim := classic()
	s := SampleBeat(anim, 10, 2)
	if len(s) != 20 {
		t.Fatalf("expected 20 samples, got %d", len(s))
	}
	if s[0] != 0 {
		t.Errorf("beat should start at 0, got %v", s[0])
	}
	if s[7] != anim.Beat(0.7) {
		t.Errorf("sample 7 should be Beat(0.7)")
	}
	if SampleBeat(anim, 0, 2) != nil || SampleBeat(anim, 10, -1) != nil {
		t.Error("non-positive rate or duration should give no samples")
	}
}

func TestStats(t *testing.T) {
	s := ComputeStats([]float64{1, -1, 3, 1})
	if s.Min != -1 || s.Max != 3 || s.Mean != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
	if math.Abs(s.RMS-math.Sqrt(3)) > 1e-12 {
		t.Errorf("expected RMS sqrt(3), got %v", s.RMS)
	}
	if (ComputeStats(nil) != Stats{}) {
		t.Error("empty input should give zero stats")
	}
}

func TestBeatStatsWithinPeak(t *testing.T) {
	anim := classic()
	s := ComputeStats(SampleBeat(anim, 200, 30))
	if s.Max > anim.MaxBeat() || s.Min < -anim.MaxBeat() {
		t.Errorf("samples exceed MaxBeat: %+v", s)
	}
	if math.Abs(s.Mean) > 0.01 {
		t.Errorf("sine pulse should average near zero, got %v", s.Mean)
	}
}

func TestDominantFrequency(t *testing.T) {
	anim := classic()
	rate := 50.0
	samples := SampleBeat(anim, rate, 20*math.Pi)

	got := DominantFrequency(samples, rate)
	want := 3.0 / (2 * math.Pi)
	if math.Abs(got-want) > 0.02 {
		t.Errorf("expected dominant frequency near %.3f Hz, got %.3f", want, got)
	}
}

func TestPowerSpectrumShort(t *testing.T) {
	if PowerSpectrum([]float64{1}) != nil {
		t.Error("single sample should give no spectrum")
	}
	ps := PowerSpectrum([]float64{1, 1, 1, 1})
	if len(ps) != 2 || math.Abs(ps[0]-4) > 1e-9 || ps[1] > 1e-9 {
		t.Errorf("constant signal should be pure DC, got %v", ps)
	}
}

func TestCrossings(t *testing.T) {
	samples := []float64{0, 0.1, 0.3, 0.1, 0, 0.2, 0.4}
	got := Crossings(samples, 10, 0.2)
	want := []float64{0.15, 0.5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("crossing %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestBurstDutyCycle(t *testing.T) {
	cfg, err := config.GetPreset("burst")
	if err != nil {
		t.Fatal(err)
	}
	anim := animate.New(cfg.Animation())
	samples := SampleBeat(anim, 100, 2*math.Pi/3*10)

	duty := DutyCycle(samples, cfg.Explosion.Threshold)
	if duty <= 0 || duty >= 0.5 {
		t.Errorf("expected the burst to fire for part of each period, got %v", duty)
	}
	if n := len(Crossings(samples, 100, cfg.Explosion.Threshold)); n != 10 {
		t.Errorf("expected one burst per period, got %d", n)
	}
	if DutyCycle(nil, 0) != 0 {
		t.Error("empty input should give zero duty cycle")
	}
}

func TestPhasePortrait(t *testing.T) {
	anim := animate.New(scene.Animation{Beat: scene.BeatParams{A1: 1, W1: 1}})
	period := 2 * math.Pi
	p := GeneratePhasePortrait(anim, 20, period)
	if p == nil || len(p.Points) != int(20*period) {
		t.Fatalf("unexpected portrait size")
	}
	for _, pt := range p.Points {
		if r := pt.X*pt.X + pt.Y*pt.Y; math.Abs(r-1) > 1e-6 {
			t.Fatalf("sin portrait should lie on the unit circle, got r²=%v", r)
		}
	}

	art := PhasePortraitToASCII(p, 40, 20)
	if lines := strings.Count(art, "\n"); lines != 20 {
		t.Errorf("expected 20 rows, got %d", lines)
	}
	if !strings.Contains(art, "•") || !strings.Contains(art, "│") {
		t.Error("expected points and the vertical axis")
	}
	if PhasePortraitToASCII(nil, 10, 10) != "" {
		t.Error("nil portrait should render empty")
	}
}
