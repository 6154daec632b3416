package music

// Inst identifies which synthesis voice realizes a note.
type Inst int

const (
	InstKick Inst = iota
	InstTimpani
	InstSnare
	InstShaker
	InstHat
	InstBass
	InstChord
	InstLead
)

func (i Inst) String() string {
	switch i {
	case InstKick:
		return "kick"
	case InstTimpani:
		return "timpani"
	case InstSnare:
		return "snare"
	case InstShaker:
		return "shaker"
	case InstHat:
		return "hat"
	case InstBass:
		return "bass"
	case InstChord:
		return "chord"
	}
	return "lead"
}

// Note is one realized note decision: what sounds, at what pitch, how loud,
// and for how long.  Drum insts ignore Freq.
type Note struct {
	Inst Inst
	Freq float64
	Amp  float64
	Dur  float64
}

// stepNotes decides which instruments sound on one sixteenth-note step.  It
// is a pure function of the composition, the transport position, and the
// gesture snapshot captured at dispatch time, which keeps the whole decision
// path unit-testable.
func stepNotes(p Params, c Composition, step, bar int, g GestureState) []Note {
	section := c.SectionAt(bar)
	intensity := IntensityAt(bar)
	chordDegree := c.Sections[section][bar%4]
	stepDur := p.stepDuration()

	// Section B at high complexity drops the drums; a held fist drops
	// drums and bass for a build-up.
	breakdown := section == 1 && p.Complexity > .5
	drums := !breakdown && !g.Fist

	var notes []Note

	if drums && step%4 == 0 {
		if p.Style == Symphony {
			if step == 0 {
				notes = append(notes, Note{InstTimpani, c.Freq(p.BaseFreq, 0) / 2, .9, .5})
			}
		} else {
			amp, dur := .8, .3
			switch p.Style {
			case Techno, Industrial:
				amp, dur = 1, .3
			case House:
				amp, dur = .9, .25
			case Ambient:
				amp, dur = .5, .4
			}
			notes = append(notes, Note{InstKick, 0, amp, dur})
		}
	}

	if drums && (step == 4 || step == 12) {
		switch {
		case percussiveStyle(p.Style):
			notes = append(notes, Note{InstSnare, 0, .7, .2})
		case p.Style == EasyListening:
			notes = append(notes, Note{InstShaker, 0, .35, .15})
		}
	}

	if drums {
		// Even steps always tick; the off sixteenths come in once the
		// piece builds past half intensity, or under a pinch.
		if step%2 == 0 {
			notes = append(notes, Note{InstHat, 0, .3, .05})
		} else if intensity > .5 || g.Pinching {
			notes = append(notes, Note{InstHat, 0, .2, .05})
		}
	}

	if step == 0 {
		tones := []int{chordDegree, chordDegree + 2, chordDegree + 4}
		if p.Complexity > .7 {
			tones = append(tones, chordDegree+6)
		}
		lift := 0
		if section == 1 {
			lift = len(c.Scale)
		}
		for _, d := range tones {
			notes = append(notes, Note{InstChord, c.Freq(p.BaseFreq, d+lift), .22, 16 * stepDur * .9})
		}
	}

	if !g.Fist && c.Bass[step] != restStep {
		deg := c.Bass[step]
		if deg == 0 {
			// Degree 0 is the chord-root marker, so the fixed pattern
			// tracks the harmonic motion.
			deg = chordDegree
		}
		notes = append(notes, Note{InstBass, c.Freq(p.BaseFreq, deg) / 2, .8, stepDur * .9})
	}

	arp := (p.Style == Techno || p.Style == Symphony) && intensity > .3
	if arp {
		if step%2 == 0 {
			phase := (step/2 + bar) % 4
			deg := chordDegree + []int{0, 2, 4, 6}[phase]
			notes = append(notes, Note{InstLead, c.Freq(p.BaseFreq, deg) * 2, .3, stepDur * 1.8})
		}
	} else if c.Melody[step] != restStep {
		deg := c.Melody[step]
		if g.Pinching {
			deg += len(c.Scale)
		}
		notes = append(notes, Note{InstLead, c.Freq(p.BaseFreq, deg) * 2, .3, stepDur * 2})
	}

	return notes
}
