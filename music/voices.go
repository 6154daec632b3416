package music

import (
	"math"

	"github.com/daydaygaming-png/sound0001/audio"
)

// bus selects where a voice feeds into the persistent chain: drums hit the
// master sum directly, bass and lead pass through the distortion/filter
// path, pads go straight to the reverb send for a lush tail.
type bus int

const (
	busDrum bus = iota
	busSynth
	busPad
)

// newVoice realizes one note decision as a self-terminating voice.
func newVoice(n Note, p Params, rate float64) (audio.Voice, bus) {
	switch n.Inst {
	case InstKick:
		return &kickVoice{dt: 1 / rate, amp: n.Amp, dur: n.Dur}, busDrum
	case InstTimpani:
		return &timpaniVoice{dt: 1 / rate, freq: n.Freq, amp: n.Amp, dur: n.Dur}, busDrum
	case InstSnare:
		return &snareVoice{dt: 1 / rate, amp: n.Amp, dur: n.Dur}, busDrum
	case InstShaker:
		return &snareVoice{dt: 1 / rate, amp: n.Amp, dur: n.Dur, soft: true}, busDrum
	case InstHat:
		return &hatVoice{dt: 1 / rate, amp: n.Amp, dur: n.Dur}, busDrum
	case InstBass:
		return newTone(audio.NewOsc(p.Waveform, n.Freq, rate), nil,
			audio.NewEnv(.005, .12, rate), n, rate), busSynth
	case InstChord:
		// Two oscillators a few cents apart give the pad its width.
		return newTone(audio.NewOsc(p.Waveform, n.Freq*.997, rate),
			audio.NewOsc(p.Waveform, n.Freq*1.003, rate),
			audio.NewEnv(.3, 1.2, rate), n, rate), busPad
	default: // InstLead
		return newTone(audio.NewOsc(p.Waveform, n.Freq, rate), nil,
			audio.NewEnv(.01, .25, rate), n, rate), busSynth
	}
}

func softSat(s float64) float64 {
	return math.Tanh(s)
}

// kickVoice is a pitch-swept sine with a transient click, after the classic
// analog kick recipe.
type kickVoice struct {
	t, dt    float64
	amp, dur float64
}

func (v *kickVoice) Sing() float64 {
	if v.t >= v.dur {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-v.t*12.5))
	body := math.Sin(phase) * math.Exp(-v.t*18) * .8
	click := math.Sin(2*math.Pi*2100*v.t) * math.Exp(-v.t*250) * .24
	s := softSat(body+click) * v.amp
	v.t += v.dt
	return s
}

func (v *kickVoice) Done() bool { return v.t >= v.dur }

// timpaniVoice substitutes for the kick in symphonic pieces: a tuned low
// sine with a felt-mallet thump.
type timpaniVoice struct {
	t, dt    float64
	freq     float64
	amp, dur float64
	n        noiseState
}

func (v *timpaniVoice) Sing() float64 {
	if v.t >= v.dur {
		return 0
	}
	env := math.Exp(-v.t * 7)
	body := math.Sin(2*math.Pi*v.freq*v.t) * env * .7
	body += math.Sin(2*math.Pi*v.freq*1.5*v.t) * env * .2
	thump := v.n.next() * math.Exp(-v.t*60) * .15
	s := softSat(body+thump) * v.amp
	v.t += v.dt
	return s
}

func (v *timpaniVoice) Done() bool { return v.t >= v.dur }

// snareVoice is a noise burst over two body partials.  soft turns it into
// the easy-listening shaker: noise only, gentler decay.
type snareVoice struct {
	t, dt    float64
	amp, dur float64
	soft     bool
	n        noiseState
}

func (v *snareVoice) Sing() float64 {
	if v.t >= v.dur {
		return 0
	}
	var s float64
	if v.soft {
		s = v.n.next() * math.Exp(-v.t*30) * .5
	} else {
		env := math.Exp(-v.t * 26)
		body := (math.Sin(2*math.Pi*188*v.t)*.24 + math.Sin(2*math.Pi*356*v.t)*.1) * env
		s = body + v.n.next()*env*.6
	}
	s = softSat(s) * v.amp
	v.t += v.dt
	return s
}

func (v *snareVoice) Done() bool { return v.t >= v.dur }

// hatVoice is metallic partials under highpassed noise.
type hatVoice struct {
	t, dt    float64
	amp, dur float64
	n        noiseState
	prev     float64
}

func (v *hatVoice) Sing() float64 {
	if v.t >= v.dur {
		return 0
	}
	// Differencing the noise acts as a crude highpass.
	x := v.n.next()
	hp := x - v.prev
	v.prev = x
	metal := math.Sin(2*math.Pi*7300*v.t) + math.Sin(2*math.Pi*9200*v.t)*.6
	s := softSat((hp*.8+metal*.2)*math.Exp(-v.t*42)) * v.amp
	v.t += v.dt
	return s
}

func (v *hatVoice) Done() bool { return v.t >= v.dur }

// toneVoice is the shared pitched voice: one or two oscillators through an
// attack/release envelope, released after the note's duration.
type toneVoice struct {
	osc, det *audio.Osc
	env      *audio.Env
	amp      float64
	hold     int
}

func newTone(osc, det *audio.Osc, env *audio.Env, n Note, rate float64) *toneVoice {
	return &toneVoice{
		osc:  osc,
		det:  det,
		env:  env,
		amp:  n.Amp,
		hold: int(n.Dur * rate),
	}
}

func (v *toneVoice) Sing() float64 {
	if v.hold > 0 {
		v.hold--
		if v.hold == 0 {
			v.env.Release()
		}
	}
	s := v.osc.Sing()
	if v.det != nil {
		s = .6 * (s + v.det.Sing())
	}
	return s * v.env.Sing() * v.amp
}

func (v *toneVoice) Done() bool { return v.env.Done() }

// noiseState is a per-voice LCG noise source.
type noiseState struct {
	seed uint64
}

func (n *noiseState) next() float64 {
	n.seed = n.seed*6364136223846793005 + 1442695040888963407
	return float64(int64(n.seed>>11))/(1<<52) - 1
}
