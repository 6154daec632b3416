package audio

import "testing"

func TestEnvAttackReachesTarget(t *testing.T) {
	const rate = 44100
	e := NewEnv(.01, .05, rate)
	var x float64
	for i := 0; i < int(.01*rate); i++ {
		x = e.Sing()
	}
	if x < .99 {
		t.Errorf("envelope at %v after one attack time, want >= 0.99", x)
	}
	if e.Done() {
		t.Error("envelope must not be done before release")
	}
}

func TestEnvReleaseDecaysToDone(t *testing.T) {
	const rate = 44100
	e := NewEnv(.001, .01, rate)
	for i := 0; i < int(.01*rate); i++ {
		e.Sing()
	}
	e.Release()
	prev := 1.0
	steps := 0
	for !e.Done() {
		x := e.Sing()
		if x > prev {
			t.Fatal("release segment must be monotonically decreasing")
		}
		prev = x
		if steps++; steps > rate {
			t.Fatal("envelope never finished")
		}
	}
	if prev >= .0001 {
		t.Errorf("done at %v, want < 0.0001", prev)
	}
}
