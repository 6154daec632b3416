package music

import "github.com/daydaygaming-png/sound0001/audio"

// Params are the mood parameters delivered by the upstream analysis
// collaborator.  They are immutable for the engine's lifetime.  Ratio
// fields are documented as pre-clamped by the producer, but the engine
// clamps defensively anyway.
type Params struct {
	Style      Style
	Tempo      float64 // beats per minute
	Complexity float64 // [0,1]
	Darkness   float64 // [0,1]
	Space      float64 // [0,1]
	Waveform   audio.Wave
	BaseFreq   float64 // Hz, the root-note anchor
}

// DefaultParams is the documented safe fallback set, used when the upstream
// collaborator fails to deliver.
func DefaultParams() Params {
	return Params{
		Style:      Techno,
		Tempo:      128,
		Complexity: .5,
		Darkness:   .5,
		Space:      .5,
		Waveform:   audio.Sawtooth,
		BaseFreq:   55,
	}
}

// ParseWave returns the waveform named by s, defaulting to sawtooth.
func ParseWave(s string) audio.Wave {
	switch s {
	case "sine":
		return audio.Sine
	case "square":
		return audio.Square
	case "triangle":
		return audio.Triangle
	}
	return audio.Sawtooth
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamped returns a copy with every field forced into its documented range.
func (p Params) clamped() Params {
	p.Complexity = clamp01(p.Complexity)
	p.Darkness = clamp01(p.Darkness)
	p.Space = clamp01(p.Space)
	if p.Tempo <= 0 {
		p.Tempo = DefaultParams().Tempo
	}
	if p.BaseFreq <= 0 {
		p.BaseFreq = DefaultParams().BaseFreq
	}
	return p
}

// stepDuration is the length of one sixteenth note in seconds.
func (p Params) stepDuration() float64 {
	return 60 / p.Tempo / 4
}
