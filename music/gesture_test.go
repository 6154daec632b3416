package music

import (
	"math"
	"testing"

	"github.com/daydaygaming-png/sound0001/audio"
)

func testGraph() *graph {
	return newGraph(DefaultParams(), audio.DefaultSampleRate)
}

func visible(x, y float64) GestureState {
	return GestureState{X: x, Y: y, Visible: true}
}

func TestInvisibleGestureIgnored(t *testing.T) {
	g := testGraph()
	before := g.cutoff.Target()
	s := visible(.9, .9)
	s.Visible = false
	g.pushGesture(s, 0, 0)
	if g.cutoff.Target() != before {
		t.Error("invisible gesture must not retune the graph")
	}
}

func TestCutoffSweepEndpoints(t *testing.T) {
	g := testGraph()
	g.pushGesture(visible(0, .5), 0, 0)
	if got := g.cutoff.Target(); math.Abs(got-cutoffMin) > 1e-9 {
		t.Errorf("x=0 cutoff %v, want %v", got, float64(cutoffMin))
	}
	g.pushGesture(visible(1, .5), 0, 0)
	if got := g.cutoff.Target(); math.Abs(got-cutoffMax) > 1e-9 {
		t.Errorf("x=1 cutoff %v, want %v", got, float64(cutoffMax))
	}
	// Geometric midpoint of an exponential sweep.
	g.pushGesture(visible(.5, .5), 0, 0)
	want := math.Sqrt(cutoffMin * cutoffMax)
	if got := g.cutoff.Target(); math.Abs(got-want) > 1e-6 {
		t.Errorf("x=0.5 cutoff %v, want %v", got, want)
	}
}

func TestCutoffWobbleScalesWithSpace(t *testing.T) {
	g := testGraph()
	// At t=0.5s the 0.5Hz wobble sits at its positive peak.
	g.pushGesture(visible(0, .5), 1, .5)
	want := cutoffMin * (1 + wobbleDepth)
	if got := g.cutoff.Target(); math.Abs(got-want) > 1e-6 {
		t.Errorf("full-space wobble peak %v, want %v", got, want)
	}
	// With no space the wobble vanishes.
	g.pushGesture(visible(0, .5), 0, .5)
	if got := g.cutoff.Target(); math.Abs(got-cutoffMin) > 1e-9 {
		t.Errorf("zero-space cutoff %v, want %v", got, float64(cutoffMin))
	}
}

func TestPinchBoostsCutoff(t *testing.T) {
	g := testGraph()
	s := visible(.5, .5)
	g.pushGesture(s, 0, 0)
	plain := g.cutoff.Target()
	s.Pinching = true
	g.pushGesture(s, 0, 0)
	if got := g.cutoff.Target(); math.Abs(got-plain*pinchBoost) > 1e-6 {
		t.Errorf("pinched cutoff %v, want %v", got, plain*pinchBoost)
	}
	// The boost never escapes the sweep ceiling.
	s.X = 1
	g.pushGesture(s, 0, 0)
	if got := g.cutoff.Target(); got > cutoffMax {
		t.Errorf("pinched cutoff %v exceeds ceiling", got)
	}
}

func TestResonanceLinear(t *testing.T) {
	g := testGraph()
	for _, tc := range []struct{ y, want float64 }{
		{0, 0},
		{.5, resMax / 2},
		{1, resMax},
	} {
		g.pushGesture(visible(.5, tc.y), 0, 0)
		if got := g.resonance.Target(); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("y=%v resonance %v, want %v", tc.y, got, tc.want)
		}
	}
}

func TestFistPresetAndRelease(t *testing.T) {
	g := testGraph()
	s := visible(.5, .5)
	s.Fist = true
	g.pushGesture(s, .5, 0)
	if g.master.Target() != fistMaster || g.reverbWet.Target() != fistWet || g.delay.Feedback.Target() != fistDelayFB {
		t.Errorf("fist preset not applied: master=%v wet=%v fb=%v",
			g.master.Target(), g.reverbWet.Target(), g.delay.Feedback.Target())
	}
	s.Fist = false
	g.pushGesture(s, .5, 0)
	if g.master.Target() != nominalMaster || g.reverbWet.Target() != g.nominalWet || g.delay.Feedback.Target() != nominalDelayFB {
		t.Errorf("fist release did not restore nominal levels: master=%v wet=%v fb=%v",
			g.master.Target(), g.reverbWet.Target(), g.delay.Feedback.Target())
	}
}
