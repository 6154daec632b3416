package audio

import (
	"math"
	"testing"
)

func TestSVFilterPassesDC(t *testing.T) {
	const rate = 44100
	f := NewSVFilter(rate)
	f.SetCutoff(1000)
	var y float64
	for i := 0; i < rate; i++ {
		y = f.Filter(1)
	}
	if math.Abs(y-1) > 1e-3 {
		t.Errorf("lowpass DC response %v, want 1", y)
	}
}

func TestSVFilterAttenuatesAboveCutoff(t *testing.T) {
	const rate = 44100
	f := NewSVFilter(rate)
	f.SetCutoff(500)
	o := NewOsc(Sine, 8000, rate)
	peak := 0.0
	for i := 0; i < rate; i++ {
		y := f.Filter(o.Sing())
		if i > rate/2 {
			peak = math.Max(peak, math.Abs(y))
		}
	}
	if peak > .1 {
		t.Errorf("8kHz through a 500Hz lowpass peaks at %v", peak)
	}
}

func TestSVFilterCutoffClamp(t *testing.T) {
	const rate = 44100
	f := NewSVFilter(rate)
	f.SetCutoff(1)
	if got := f.Cutoff(); got != 20 {
		t.Errorf("low clamp gave %v, want 20", got)
	}
	f.SetCutoff(1e6)
	if got := f.Cutoff(); got != rate*.45 {
		t.Errorf("high clamp gave %v, want %v", got, rate*.45)
	}
}

func TestSVFilterResonanceStable(t *testing.T) {
	const rate = 44100
	f := NewSVFilter(rate)
	f.SetCutoff(2000)
	f.SetResonance(1)
	o := NewOsc(Sawtooth, 110, rate)
	for i := 0; i < 4*rate; i++ {
		y := f.Filter(o.Sing())
		if math.IsNaN(y) || math.Abs(y) > 100 {
			t.Fatalf("filter blew up at sample %d: %v", i, y)
		}
	}
}

func TestHighpassBlocksDC(t *testing.T) {
	const rate = 44100
	f := NewHighpassFilter(2000, rate)
	var y float64
	for i := 0; i < rate; i++ {
		y = f.Filter(1)
	}
	if math.Abs(y) > 1e-3 {
		t.Errorf("highpass DC response %v, want ~0", y)
	}
}
