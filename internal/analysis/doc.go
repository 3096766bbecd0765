// Package analysis inspects the beat signal offline.
//
//   - [SampleBeat]: the beat sampled at a fixed rate
//   - [PowerSpectrum], [DominantFrequency]: spectral view via go-dsp
//   - [ComputeStats]: extremes, mean and RMS
//   - [GeneratePhasePortrait]: beat against its rate of change
//   - [Crossings], [DutyCycle]: when and how often the burst threshold is exceeded
//
// For the classic pulse the dominant frequency sits at W1/2π:
//
//	samples := analysis.SampleBeat(anim, 50, 60)
//	f := analysis.DominantFrequency(samples, 50)
package analysis
