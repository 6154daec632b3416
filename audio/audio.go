// Package audio provides the sample-level building blocks for the mood
// engine: oscillators, envelopes, filters, effects, a pooled voice mixer,
// a sample clock with an absolute-time event queue, and output backends.
//
// Everything processes one float64 sample at a time at a fixed sample rate
// supplied at construction.  Nothing here blocks; parameter changes arrive
// through SmoothParam targets so that concurrent writers stay commutative.
package audio

import "sync/atomic"

// DefaultSampleRate is used by the output backends.
const DefaultSampleRate = 44100

// A Voice is one independent, self-terminating synthesis unit.  Sing returns
// the next sample; Done reports that the voice has decayed to silence and its
// pool slot can be reclaimed.
type Voice interface {
	Sing() float64
	Done() bool
}

// Clock counts samples rendered so far.  The render goroutine advances it;
// any other goroutine may read it.
type Clock struct {
	samples atomic.Int64
	rate    float64
}

func NewClock(sampleRate float64) *Clock {
	return &Clock{rate: sampleRate}
}

// Now returns the current audio time in seconds.
func (c *Clock) Now() float64 {
	return float64(c.samples.Load()) / c.rate
}

// Samples returns the current audio time in samples.
func (c *Clock) Samples() int64 {
	return c.samples.Load()
}

// SampleRate returns the rate the clock was created with.
func (c *Clock) SampleRate() float64 {
	return c.rate
}

// Advance moves the clock forward by n samples.
func (c *Clock) Advance(n int) {
	c.samples.Add(int64(n))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
