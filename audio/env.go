package audio

import "math"

// Env is an exponential attack/release envelope.  It rises toward 1 until
// Release is called, then decays toward 0.  Both segments approach their
// target to within 1% over the configured time.
type Env struct {
	up, down float64
	x        float64
	release  bool
}

func NewEnv(attackTime, releaseTime, sampleRate float64) *Env {
	return &Env{
		up:   math.Pow(.01, 1/(sampleRate*attackTime)),
		down: math.Pow(.01, 1/(sampleRate*releaseTime)),
	}
}

func (e *Env) Release() { e.release = true }

func (e *Env) Sing() float64 {
	if e.release {
		e.x *= e.down
	} else {
		e.x = 1 - (1-e.x)*e.up
	}
	return e.x
}

func (e *Env) Done() bool {
	return e.release && e.x < .0001
}
