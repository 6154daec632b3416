package audio

import (
	"math"
	"sync/atomic"
)

// SmoothParam approaches its target exponentially, one step per sample, so
// that control pushes never produce clicks.  Set may be called from any
// goroutine; Sing runs on the render goroutine.  Because every write is a
// target for a smoothed approach rather than an absolute overwrite, two
// concurrent writers interleave harmlessly (last write wins).
type SmoothParam struct {
	target atomic.Uint64
	value  float64
	coeff  float64
}

// NewSmoothParam creates a parameter at initial that closes 99% of the
// distance to a new target in smoothTime seconds.
func NewSmoothParam(initial, smoothTime, sampleRate float64) *SmoothParam {
	p := &SmoothParam{
		value: initial,
		coeff: math.Pow(.01, 1/(sampleRate*smoothTime)),
	}
	p.Set(initial)
	return p
}

// Set registers a new target value.
func (p *SmoothParam) Set(v float64) {
	p.target.Store(math.Float64bits(v))
}

// Target returns the most recently set target.
func (p *SmoothParam) Target() float64 {
	return math.Float64frombits(p.target.Load())
}

// Value returns the current smoothed value without advancing it.
func (p *SmoothParam) Value() float64 { return p.value }

// Sing advances one sample toward the target and returns the new value.
func (p *SmoothParam) Sing() float64 {
	t := p.Target()
	p.value = t - (t-p.value)*p.coeff
	return p.value
}
