package music

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/daydaygaming-png/sound0001/audio"
	"github.com/daydaygaming-png/sound0001/debug"
)

// Engine composes a piece from the mood parameters at construction and, once
// started, schedules it against the running audio clock while the gesture
// modulator retunes the mix.  Start/Stop are idempotent; all entry points are
// safe to call from any goroutine.
type Engine struct {
	params Params
	comp   Composition
	graph  *graph
	rng    *rand.Rand

	mu      sync.Mutex
	tr      transport
	stop    chan struct{}
	stream  io.Closer
	started bool
	gesture GestureState

	onStep func(pos int)
	onNote func(n Note, at float64)

	open func(rate float64, render func([]float32)) (io.Closer, error)
}

// Option configures an Engine before composition.
type Option func(*Engine)

// WithRand fixes the composition's random source, making the derived
// material deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// New derives a composition from p and builds the persistent signal graph.
// The audio backend is not touched until Start.
func New(p Params, opts ...Option) *Engine {
	e := &Engine{
		params:  p.clamped(),
		gesture: NeutralGesture(),
		open: func(rate float64, render func([]float32)) (io.Closer, error) {
			return audio.OpenStream(rate, render)
		},
	}
	for _, o := range opts {
		o(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.comp = Compose(e.params, e.rng)
	e.graph = newGraph(e.params, audio.DefaultSampleRate)
	return e
}

// Params returns the clamped mood parameters the engine was built with.
func (e *Engine) Params() Params { return e.params }

// Composition returns the derived musical material.
func (e *Engine) Composition() Composition { return e.comp }

// Analyser is the post-compressor tap point for external visualization.
// Reading it never blocks or alters playback.
func (e *Engine) Analyser() *audio.Analyser { return e.graph.analyser }

// OnStep registers the visualization callback.  It is invoked from the
// scheduler goroutine shortly before each sixteenth sounds, with a position
// cycling through 0..63 (step plus a four-bar phrase counter).
func (e *Engine) OnStep(f func(pos int)) {
	e.mu.Lock()
	e.onStep = f
	e.mu.Unlock()
}

// OnNote registers a tap on realized notes, invoked at dispatch time with
// the note's absolute audio-clock onset.  The MIDI bridge hangs off this.
func (e *Engine) OnNote(f func(n Note, at float64)) {
	e.mu.Lock()
	e.onNote = f
	e.mu.Unlock()
}

// Start opens the output backend on first use and starts the scheduler.
// Starting a running engine is a no-op; a backend failure is returned
// rather than swallowed, since a silent no-op here would be
// indistinguishable from still loading.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.tr.running {
		return nil
	}
	if e.stream == nil {
		s, err := e.open(e.graph.rate, e.graph.render)
		if err != nil {
			debug.Log("engine", "backend open failed: %v", err)
			return err
		}
		e.stream = s
		e.started = true
	}
	e.tr.start(e.graph.clock.Now())
	e.stop = make(chan struct{})
	go e.run(e.stop)
	debug.Log("engine", "started: style=%s tempo=%.0f form=%v", e.params.Style, e.params.Tempo, e.comp.Form)
	return nil
}

// Stop halts future scheduling.  Notes already committed to the audio clock
// ring out through their own envelopes; stopping a stopped engine is a
// no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.tr.halt() {
		return
	}
	close(e.stop)
	debug.Log("engine", "stopped at bar %d", e.tr.bar)
}

// Running reports whether the transport is in the RUNNING state.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tr.running
}

// Close stops the engine and releases the output backend.
func (e *Engine) Close() error {
	e.Stop()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stream == nil {
		return nil
	}
	err := e.stream.Close()
	e.stream = nil
	e.started = false
	return err
}

// UpdateControlParams feeds one gesture update into the modulator.  Safe at
// any time; before Start it only records the snapshot (the signal graph is
// not live yet), and a non-visible update resets the snapshot to neutral
// without pushing parameters.
func (e *Engine) UpdateControlParams(g GestureState) {
	e.mu.Lock()
	if g.Visible {
		e.gesture = g
	} else {
		e.gesture = NeutralGesture()
	}
	started := e.started
	e.mu.Unlock()
	if !started {
		return
	}
	e.graph.pushGesture(g, e.params.Space, e.graph.clock.Now())
}

// run is the look-ahead scheduling loop: a coarse ticker that, on every
// pull, commits all steps falling inside the look-ahead window to absolute
// audio-clock times.  Cancellation is the stop channel, checked at each
// iteration boundary.
func (e *Engine) run(stop chan struct{}) {
	tick := time.NewTicker(pollInterval)
	defer tick.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			e.pump()
		}
	}
}

type dispatched struct {
	step, bar int
	at        float64
}

func (e *Engine) pump() {
	e.mu.Lock()
	if !e.tr.running {
		e.mu.Unlock()
		return
	}
	now := e.graph.clock.Now()
	stepDur := e.params.stepDuration()
	var batch []dispatched
	for e.tr.nextTime < now+lookAhead {
		batch = append(batch, dispatched{e.tr.step, e.tr.bar, e.tr.nextTime})
		e.tr.advance(stepDur)
	}
	g := e.gesture
	onStep, onNote := e.onStep, e.onNote
	e.mu.Unlock()

	for _, d := range batch {
		for _, n := range stepNotes(e.params, e.comp, d.step, d.bar, g) {
			e.graph.scheduleNote(d.at, n, e.params)
			if onNote != nil {
				onNote(n, d.at)
			}
		}
		if onStep != nil {
			onStep(d.step + (d.bar%4)*StepsPerBar)
		}
	}
}
