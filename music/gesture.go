package music

import "math"

// GestureState is one update from the external gesture source.  Position is
// normalized to [0,1] on both axes.  Flags are not mutually exclusive; only
// Fist and Pinching drive behavior.  When Visible is false the engine treats
// the state as neutral and pushes nothing.
type GestureState struct {
	X, Y     float64
	Pinching bool
	Fist     bool
	PalmOpen bool
	Visible  bool
}

// NeutralGesture is the state assumed before any update arrives: centered,
// no flags, not visible.
func NeutralGesture() GestureState {
	return GestureState{X: .5, Y: .5}
}

// Gesture-controlled parameter ranges.
const (
	cutoffMin = 100   // Hz
	cutoffMax = 12000 // Hz
	resMax    = .9

	nominalMaster  = .7
	nominalDelayFB = .35

	fistMaster  = .25
	fistWet     = .9
	fistDelayFB = .75

	pinchBoost = 1.8

	wobbleFreq  = .5 // Hz
	wobbleDepth = .25
)

// pushGesture maps one visible gesture update onto signal-graph parameter
// targets.  now is the audio-clock time, used to phase the cutoff wobble.
// Every push is a smoothed-approach target, so this may race freely with
// the render loop.
func (g *graph) pushGesture(s GestureState, space float64, now float64) {
	if !s.Visible {
		return
	}
	x := clamp01(s.X)
	y := clamp01(s.Y)

	// Horizontal: exponential sweep across the cutoff range, with a slow
	// sinusoidal wobble whose depth follows the space parameter.
	cutoff := cutoffMin * math.Pow(cutoffMax/cutoffMin, x)
	cutoff *= 1 + wobbleDepth*space*math.Sin(2*math.Pi*wobbleFreq*now)
	if s.Pinching {
		cutoff *= pinchBoost
	}
	if cutoff > cutoffMax {
		cutoff = cutoffMax
	}
	g.cutoff.Set(cutoff)

	// Vertical: linear resonance.
	g.resonance.Set(y * resMax)

	// Fist washes the mix out; release restores the nominal levels.  These
	// targets smooth slower than the per-frame cutoff/resonance pushes.
	if s.Fist {
		g.master.Set(fistMaster)
		g.reverbWet.Set(fistWet)
		g.delay.Feedback.Set(fistDelayFB)
	} else {
		g.master.Set(nominalMaster)
		g.reverbWet.Set(g.nominalWet)
		g.delay.Feedback.Set(nominalDelayFB)
	}
}
