package analysis

import (
	"math"

	"github.com/san-kum/heartbeat/internal/animate"
)

// SampleBeat evaluates the beat at rate samples per second for duration
// seconds, starting at t=0.
func SampleBeat(anim *animate.Animator, rate, duration float64) []float64 {
	if rate <= 0 || duration <= 0 {
		return nil
	}
	n := int(rate * duration)
	out := make([]float64, n)
	for i := range out {
		out[i] = anim.Beat(float64(i) / rate)
	}
	return out
}

type Stats struct {
	Min, Max  float64
	Mean, RMS float64
}

func ComputeStats(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	s := Stats{Min: samples[0], Max: samples[0]}
	var sum, sq float64
	for _, v := range samples {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
		sq += v * v
	}
	n := float64(len(samples))
	s.Mean = sum / n
	s.RMS = math.Sqrt(sq / n)
	return s
}

// Crossings returns the interpolated times at which samples rise through
// threshold.
func Crossings(samples []float64, rate, threshold float64) []float64 {
	var times []float64
	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev <= threshold && curr > threshold {
			frac := (threshold - prev) / (curr - prev)
			times = append(times, (float64(i-1)+frac)/rate)
		}
	}
	return times
}

// DutyCycle is the fraction of samples strictly above threshold.
func DutyCycle(samples []float64, threshold float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	above := 0
	for _, v := range samples {
		if v > threshold {
			above++
		}
	}
	return float64(above) / float64(len(samples))
}
