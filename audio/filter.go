package audio

import "math"

// SVFilter is a Chamberlin state-variable filter used as the master lowpass.
// Cutoff and resonance may be retuned while running.
type SVFilter struct {
	rate   float64
	f      float64
	damp   float64
	low    float64
	band   float64
	cutoff float64
}

func NewSVFilter(sampleRate float64) *SVFilter {
	s := &SVFilter{rate: sampleRate}
	s.SetCutoff(sampleRate / 4)
	s.SetResonance(0)
	return s
}

// SetCutoff sets the corner frequency in Hz, clamped to the stable range.
func (s *SVFilter) SetCutoff(hz float64) {
	s.cutoff = clamp(hz, 20, s.rate*.45)
	s.f = 2 * math.Sin(math.Pi*s.cutoff/s.rate)
}

// SetResonance takes a normalized amount in [0,1].
func (s *SVFilter) SetResonance(r float64) {
	s.damp = 2 * (1 - clamp(r, 0, 1)*.95)
}

// Cutoff returns the current corner frequency in Hz.
func (s *SVFilter) Cutoff() float64 { return s.cutoff }

func (s *SVFilter) Filter(x float64) float64 {
	s.low += s.f * s.band
	high := x - s.low - s.damp*s.band
	s.band += s.f * high
	return s.low
}

// HighpassFilter is a one-pole DC-blocking highpass, used inside voices to
// brighten noise sources.
type HighpassFilter struct {
	a, x, y float64
}

func NewHighpassFilter(hz, sampleRate float64) *HighpassFilter {
	rc := 1 / (2 * math.Pi * hz)
	return &HighpassFilter{a: rc / (rc + 1/sampleRate)}
}

func (f *HighpassFilter) Filter(x float64) float64 {
	f.y = f.a * (f.y + x - f.x)
	f.x = x
	return f.y
}
