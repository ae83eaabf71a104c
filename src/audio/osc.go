package audio

import (
	"math"
)

// ----- Partials ----- //

type partial struct {
	ratio  float64 // multiple of the fundamental
	weight float64
}

var partials = []partial{
	{ratio: 1, weight: 1.0},
	{ratio: 2, weight: 0.25},
	{ratio: 3, weight: 0.12},
}

// ----- OSC ----- //

// wave returns n samples of the additive waveform for freq, normalized by its peak.
func wave(freq float64, duration float64, n int) []float64 {
	out := make([]float64, n)
	peak := 0.0
	for i := range out {
		t := float64(i) * duration / float64(n)
		v := 0.0
		for _, p := range partials {
			v += p.weight * math.Sin(2*math.Pi*p.ratio*freq*t)
		}
		out[i] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		peak = 1
	}
	for i := range out {
		out[i] /= peak
	}
	return out
}

// tone renders a note as quantized samples together with the envelope applied to it.
func tone(freq float64, duration float64, sampleRate int, amplitude float64, p *adsrParams) ([]int16, []float64) {
	env := envelopeCurve(duration, sampleRate, p)
	w := wave(freq, duration, len(env))
	samples := make([]int16, len(env))
	for i := range samples {
		samples[i] = quantize(w[i] * env[i] * amplitude)
	}
	return samples, env
}

func quantize(value float64) int16 {
	const max = 32767
	v := value * max
	if v > max {
		return max
	}
	if v < -max-1 {
		return -max - 1
	}
	return int16(v)
}

func toFloat(sample int16) float64 {
	return float64(sample) / 32767
}

func rms(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		v := toFloat(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// ----- Render ----- //

// Render synthesizes the note mapped to key. It reports false for unmapped keys.
func (p *Params) Render(key string, velocity float64) ([]int16, bool) {
	freq, ok := p.KeyMap.Frequency(key)
	if !ok {
		return nil, false
	}
	return p.render(freq, velocity), true
}

func (p *Params) render(freq float64, velocity float64) []int16 {
	samples, _ := tone(freq, p.Duration, p.SampleRate, p.Amplitude*velocity, p.adsr)
	return samples
}
