package music

import (
	"math"
	"math/rand"
)

// StepsPerBar is the pattern resolution: sixteen sixteenth-note slots.
const StepsPerBar = 16

// restStep marks an empty pattern slot.
const restStep = -1

// Composition is the static musical material derived once from the mood
// parameters.  It never mutates after Compose returns; everything that
// evolves over the piece comes from which bar and section is active.
type Composition struct {
	Scale    []int       // semitone offsets from root, 5-7 entries
	Form     []int       // ordered section indices into Sections
	Sections [2][4]int   // chord progression per section, one degree per bar
	Melody   [StepsPerBar]int // scale degree per step, restStep for silence
	Bass     [StepsPerBar]int // scale degree per step, 0 means "chord root"
}

// Compose derives a composition from the mood parameters.  It is
// deterministic for a fixed rng and never fails.
func Compose(p Params, rng *rand.Rand) Composition {
	p = p.clamped()
	c := Composition{
		Scale: scaleFor(p.Style),
		Form:  formFor(p.Complexity),
	}

	pool := progressionsFor(p.Style)
	c.Sections[0] = pool[rng.Intn(len(pool))]
	c.Sections[1] = pool[rng.Intn(len(pool))]

	// Melody: acceptance probability rises with complexity and on strong
	// beats; accepted slots get a degree from a style-dependent range.
	degreeRange := 12
	if denseStyle(p.Style) {
		degreeRange = 5
	}
	for i := 0; i < StepsPerBar; i++ {
		prob := p.Complexity * .4
		if i%4 == 0 {
			prob += .3
		}
		c.Melody[i] = restStep
		if rng.Float64() < prob {
			c.Melody[i] = rng.Intn(degreeRange) % 7
		}
	}

	// Bass: style placement rules override a sparse random fallback.
	for i := 0; i < StepsPerBar; i++ {
		c.Bass[i] = restStep
		switch {
		case p.Style == Techno && i%2 == 1:
			c.Bass[i] = 0
		case p.Style == House && (i == 0 || i == 10 || i == 14):
			c.Bass[i] = 0
		case rng.Float64() < .25:
			// Mostly the root, with an occasional fifth for motion.
			if rng.Intn(4) == 0 {
				c.Bass[i] = 4
			} else {
				c.Bass[i] = 0
			}
		}
	}
	if p.Style != Ambient {
		c.Bass[0] = 0
	}
	return c
}

// formFor picks the song form by complexity tier.  Both boundaries fall
// into the middle tier.
func formFor(complexity float64) []int {
	switch {
	case complexity < .3:
		return []int{0, 0, 0, 0}
	case complexity > .6:
		return []int{0, 0, 1, 0, 0, 1, 1, 0}
	}
	return []int{0, 0, 1, 0}
}

// Freq resolves a scale degree to a frequency in equal temperament anchored
// at base.  Degrees outside one octave wrap with an octave shift, so
// negative degrees and degrees beyond the scale length are fine.
func (c Composition) Freq(base float64, degree int) float64 {
	n := len(c.Scale)
	oct := int(math.Floor(float64(degree) / float64(n)))
	idx := degree - oct*n
	semitone := c.Scale[idx] + 12*oct
	return base * math.Exp2(float64(semitone)/12)
}

// SectionAt returns the active section index for a bar: the form advances
// one entry every four bars and repeats.
func (c Composition) SectionAt(bar int) int {
	return c.Form[(bar/4)%len(c.Form)]
}

// IntensityAt is the piece-level build curve: it climbs linearly over the
// first 64 bars and saturates at 1.
func IntensityAt(bar int) float64 {
	if bar >= 64 {
		return 1
	}
	if bar < 0 {
		return 0
	}
	return float64(bar) / 64
}
