package audio

import "math"

// Wave selects an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Sawtooth
	Triangle
)

func (w Wave) String() string {
	switch w {
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	}
	return "sine"
}

// Osc is a phase-accumulating oscillator.  Phase lives in [0,1).
type Osc struct {
	wave  Wave
	rate  float64
	phase float64
	d     float64
}

func NewOsc(w Wave, freq, sampleRate float64) *Osc {
	o := &Osc{wave: w, rate: sampleRate}
	o.SetFreq(freq)
	return o
}

func (o *Osc) SetFreq(freq float64) {
	o.d = freq / o.rate
}

func (o *Osc) Sing() float64 {
	_, o.phase = math.Modf(o.phase + o.d)
	switch o.wave {
	case Square:
		if o.phase < .5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*o.phase - 1
	case Triangle:
		return 1 - 4*math.Abs(o.phase-.5)
	}
	return math.Sin(2 * math.Pi * o.phase)
}
