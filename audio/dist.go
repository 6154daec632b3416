package audio

import "math"

// Waveshaper is a tanh soft-clipper.  Amount 0 is a clean passthrough; the
// curve steepens as the amount rises.
type Waveshaper struct {
	k, norm float64
}

func NewWaveshaper(amount float64) *Waveshaper {
	w := &Waveshaper{}
	w.SetAmount(amount)
	return w
}

func (w *Waveshaper) SetAmount(amount float64) {
	if amount <= 0 {
		w.k = 0
		return
	}
	w.k = 1 + 9*clamp(amount, 0, 2)
	w.norm = 1 / math.Tanh(w.k)
}

func (w *Waveshaper) Shape(x float64) float64 {
	if w.k == 0 {
		return x
	}
	return math.Tanh(w.k*x) * w.norm
}
