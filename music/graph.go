package music

import (
	"github.com/daydaygaming-png/sound0001/audio"
)

const analyserSize = 2048

// maxVoices bounds each bus pool.
const maxVoices = 48

// graph is the persistent signal chain, constructed exactly once per engine:
//
//	synth voices -> waveshaper -> lowpass -> master -> compressor -> out
//
// with two sends off the filter stage (feedback delay, granular reverb)
// returning into the master sum, drum voices summed straight into master,
// and pad voices feeding the reverb directly.
type graph struct {
	rate  float64
	clock *audio.Clock
	queue *audio.EventQueue

	drums  *audio.VoicePool
	synths *audio.VoicePool
	pads   *audio.VoicePool

	shaper   *audio.Waveshaper
	filter   *audio.SVFilter
	delay    *audio.FeedbackDelay
	reverb   *audio.Reverb
	comp     *audio.Compressor
	analyser *audio.Analyser

	cutoff    *audio.SmoothParam
	resonance *audio.SmoothParam
	master    *audio.SmoothParam
	reverbWet *audio.SmoothParam

	delaySend  float64
	reverbSend float64
	nominalWet float64
}

func newGraph(p Params, rate float64) *graph {
	g := &graph{
		rate:   rate,
		clock:  audio.NewClock(rate),
		queue:  &audio.EventQueue{},
		drums:  audio.NewVoicePool(maxVoices),
		synths: audio.NewVoicePool(maxVoices),
		pads:   audio.NewVoicePool(maxVoices),
	}

	g.shaper = audio.NewWaveshaper(distortionFor(p))
	g.filter = audio.NewSVFilter(rate)
	g.delay = audio.NewFeedbackDelay(delayTimeFor(p.Style), rate)
	g.reverb = audio.NewReverb(reverbDecayFor(p.Style), rate)
	g.comp = audio.NewCompressor(.5, .01, .2, rate)
	g.analyser = audio.NewAnalyser(analyserSize)

	// Cutoff and resonance retune every gesture frame, so they smooth
	// fast; the fist macro targets smooth an order of magnitude slower.
	g.cutoff = audio.NewSmoothParam(8000, .03, rate)
	g.resonance = audio.NewSmoothParam(0, .03, rate)
	g.master = audio.NewSmoothParam(nominalMaster, .3, rate)

	g.nominalWet = .15 + .45*p.Space
	g.reverbWet = audio.NewSmoothParam(g.nominalWet, .3, rate)
	g.delaySend = .2 + .2*p.Space
	g.reverbSend = .5

	return g
}

// distortionFor scales the waveshaper with darkness: doubled for the
// industrial grind, absent for the clean styles.
func distortionFor(p Params) float64 {
	switch p.Style {
	case Ambient, EasyListening, Symphony:
		return 0
	case Industrial:
		return 2 * p.Darkness
	}
	return p.Darkness
}

func reverbDecayFor(s Style) float64 {
	switch s {
	case Ambient:
		return 6
	case Symphony:
		return 4
	case EasyListening:
		return 3
	case House:
		return 2
	}
	return 1.5
}

func delayTimeFor(s Style) float64 {
	switch s {
	case Ambient:
		return .5
	case EasyListening:
		return .35
	case House:
		return .25
	case Industrial:
		return .22
	case Symphony:
		return .15
	}
	return .3
}

// scheduleNote commits a note to an absolute audio-clock time.  The voice is
// built and pooled when the render loop reaches that sample, so onsets are
// sample-accurate regardless of scheduler jitter.
func (g *graph) scheduleNote(at float64, n Note, p Params) {
	g.queue.Push(int64(at*g.rate), func() {
		v, b := newVoice(n, p, g.rate)
		switch b {
		case busDrum:
			g.drums.Add(v)
		case busPad:
			g.pads.Add(v)
		default:
			g.synths.Add(v)
		}
	})
}

// render fills one output block.  It runs on the backend's callback
// goroutine and is the only writer of the DSP state.
func (g *graph) render(out []float32) {
	start := g.clock.Samples()
	due := g.queue.PopDue(start + int64(len(out)))
	di := 0
	for i := range out {
		now := start + int64(i)
		for di < len(due) && due[di].At <= now {
			due[di].Fire()
			di++
		}

		g.filter.SetCutoff(g.cutoff.Sing())
		g.filter.SetResonance(g.resonance.Sing())

		x := g.filter.Filter(g.shaper.Shape(g.synths.Sing()))
		d := g.delay.Process(x * g.delaySend)
		r := g.reverb.Process(x*g.reverbSend+g.pads.Sing()) * g.reverbWet.Sing()
		m := (x + d + r + g.drums.Sing()) * g.master.Sing()
		y := g.comp.Compress(m)

		g.analyser.Push(y)
		out[i] = float32(y)
	}
	g.clock.Advance(len(out))
}
