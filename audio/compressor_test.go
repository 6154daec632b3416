package audio

import (
	"math"
	"testing"
)

func TestCompressorReducesHotSignal(t *testing.T) {
	const rate = 44100
	c := NewCompressor(.5, .01, .2, rate)
	o := NewOsc(Sine, 220, rate)
	peak := 0.0
	for i := 0; i < 2*rate; i++ {
		y := c.Compress(2 * o.Sing())
		if i > rate {
			peak = math.Max(peak, math.Abs(y))
		}
	}
	if peak >= 2 {
		t.Errorf("settled peak %v, want gain reduction below the input peak", peak)
	}
}

func TestCompressorUnityOnQuietSignal(t *testing.T) {
	const rate = 44100
	c := NewCompressor(.5, .01, .2, rate)
	o := NewOsc(Sine, 220, rate)
	for i := 0; i < rate; i++ {
		in := .1 * o.Sing()
		y := c.Compress(in)
		// Gain never exceeds unity, so the delayed output stays in band.
		if math.Abs(y) > .1+1e-9 {
			t.Fatalf("quiet signal amplified to %v at sample %d", y, i)
		}
	}
}

func TestCompressorLookaheadDelay(t *testing.T) {
	const rate = 44100
	c := NewCompressor(.5, .01, .2, rate)
	// An impulse emerges one attack window later.
	if y := c.Compress(1); y != 0 {
		t.Fatalf("impulse leaked through the lookahead line: %v", y)
	}
	n := int(.01 * rate)
	var y float64
	for i := 1; i <= n; i++ {
		y = c.Compress(0)
		if i < n && y != 0 {
			t.Fatalf("unexpected output %v at sample %d", y, i)
		}
	}
	if y == 0 {
		t.Error("impulse never emerged from the lookahead line")
	}
}
