package audio

import "sync"

// Event is a callback committed to an absolute sample time.
type Event struct {
	At   int64
	Fire func()
}

// EventQueue holds events keyed on absolute audio-clock sample times.  The
// scheduler goroutine pushes; the render goroutine pops everything due
// within the block it is about to fill, so note onsets stay sample-accurate
// no matter how coarse or jittery the pushing clock is.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// Push inserts an event keeping the queue sorted by time.
func (q *EventQueue) Push(at int64, fire func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	i := len(q.events)
	for i > 0 && q.events[i-1].At > at {
		i--
	}
	q.events = append(q.events, Event{})
	copy(q.events[i+1:], q.events[i:])
	q.events[i] = Event{at, fire}
}

// PopDue removes and returns, in order, every event scheduled before limit.
func (q *EventQueue) PopDue(limit int64) []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for n < len(q.events) && q.events[n].At < limit {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Event, n)
	copy(due, q.events[:n])
	q.events = q.events[:copy(q.events, q.events[n:])]
	return due
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
