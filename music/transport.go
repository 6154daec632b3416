package music

import "time"

// Scheduling intervals.  The poll is coarse; the look-ahead window is wide
// enough that at least one poll lands before any committed note's deadline
// even under moderate goroutine jitter, while bounding how far ahead notes
// are frozen (which caps the lag of gesture-driven decisions).
const (
	pollInterval = 25 * time.Millisecond
	lookAhead    = .1 // seconds
	startLead    = .1 // seconds, first step after Start
)

// transport is the playback position state machine: STOPPED or RUNNING.
// It is owned by the engine and mutated only under the engine mutex.
type transport struct {
	running  bool
	step     int // sixteenth within the bar, [0,16)
	bar      int // monotonic bar counter
	nextTime float64
}

// start moves STOPPED->RUNNING, resetting the position.  Returns false if
// already running, in which case nothing changes.
func (t *transport) start(now float64) bool {
	if t.running {
		return false
	}
	t.running = true
	t.step = 0
	t.bar = 0
	t.nextTime = now + startLead
	return true
}

// halt moves RUNNING->STOPPED.  Returns false if already stopped.
func (t *transport) halt() bool {
	if !t.running {
		return false
	}
	t.running = false
	return true
}

// advance moves to the next sixteenth, rolling the bar counter on wrap.
func (t *transport) advance(stepDur float64) {
	t.step++
	if t.step == StepsPerBar {
		t.step = 0
		t.bar++
	}
	t.nextTime += stepDur
}
