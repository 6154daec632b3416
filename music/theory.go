// Package music is the procedural composition engine: it turns a small set
// of mood parameters into a multi-section piece, schedules every note
// against the audio clock with a look-ahead loop, and reshapes the mix from
// a live 2D gesture signal.
package music

// Style tags select scale, progression pool, and mix character.
type Style int

const (
	Techno Style = iota
	House
	Ambient
	Industrial
	Symphony
	EasyListening
)

var styleNames = map[Style]string{
	Techno:        "techno",
	House:         "house",
	Ambient:       "ambient",
	Industrial:    "industrial",
	Symphony:      "symphony",
	EasyListening: "easy-listening",
}

func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return "techno"
}

// ParseStyle returns the style named by s, defaulting to techno.
func ParseStyle(s string) Style {
	for st, n := range styleNames {
		if n == s {
			return st
		}
	}
	return Techno
}

// Scales as semitone offsets from the root.
var (
	scalePhrygian      = []int{0, 1, 3, 5, 7, 8, 10}
	scaleDorian        = []int{0, 2, 3, 5, 7, 9, 10}
	scaleLydian        = []int{0, 2, 4, 6, 7, 9, 11}
	scaleHarmonicMinor = []int{0, 2, 3, 5, 7, 8, 11}
	scaleMajor         = []int{0, 2, 4, 5, 7, 9, 11}
	scaleNaturalMinor  = []int{0, 2, 3, 5, 7, 8, 10}
)

func scaleFor(s Style) []int {
	switch s {
	case Techno:
		return scalePhrygian
	case House:
		return scaleDorian
	case Ambient:
		return scaleLydian
	case Symphony:
		return scaleHarmonicMinor
	case EasyListening:
		return scaleMajor
	}
	return scaleNaturalMinor
}

// Chord progression pools, one progression = four scale degrees, one per bar.
var progressionPools = map[Style][][4]int{
	Techno:        {{0, 0, 5, 3}, {0, 3, 0, 4}, {0, 5, 3, 4}},
	House:         {{0, 5, 3, 4}, {0, 2, 5, 4}},
	Ambient:       {{0, 3, 4, 2}},
	Industrial:    {{0, 1, 0, 1}, {0, 0, 3, 0}},
	Symphony:      {{0, 3, 4, 0}, {0, 5, 1, 4}},
	EasyListening: {{0, 5, 1, 4}, {0, 3, 4, 0}},
}

func progressionsFor(s Style) [][4]int {
	if p, ok := progressionPools[s]; ok {
		return p
	}
	return [][4]int{{0, 5, 3, 4}}
}

// denseStyle marks styles whose melodies stay in a tight low range.
func denseStyle(s Style) bool {
	return s == Techno || s == House || s == Industrial
}

// percussiveStyle marks styles that carry a backbeat.
func percussiveStyle(s Style) bool {
	return s == Techno || s == House || s == Industrial
}
