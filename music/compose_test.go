package music

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestComposeProperties(t *testing.T) {
	styles := []Style{Techno, House, Ambient, Industrial, Symphony, EasyListening}
	complexities := []float64{0, .2, .3, .5, .6, .8, 1}
	for _, style := range styles {
		for _, cx := range complexities {
			p := DefaultParams()
			p.Style = style
			p.Complexity = cx
			c := Compose(p, testRand())

			if n := len(c.Scale); n < 5 || n > 7 {
				t.Errorf("%v cx=%.1f: scale has %d entries", style, cx, n)
			}
			for _, s := range c.Form {
				if s < 0 || s >= len(c.Sections) {
					t.Errorf("%v cx=%.1f: form entry %d out of range", style, cx, s)
				}
			}
			if len(c.Melody) != StepsPerBar || len(c.Bass) != StepsPerBar {
				t.Fatalf("patterns must have %d slots", StepsPerBar)
			}
			for i, d := range c.Melody {
				if d != restStep && (d < 0 || d >= 7) {
					t.Errorf("%v: melody[%d]=%d outside degree range", style, i, d)
				}
			}
		}
	}
}

func TestFormTiers(t *testing.T) {
	for _, tc := range []struct {
		complexity float64
		want       []int
	}{
		{0, []int{0, 0, 0, 0}},
		{.29, []int{0, 0, 0, 0}},
		{.3, []int{0, 0, 1, 0}}, // boundary falls into the middle tier
		{.5, []int{0, 0, 1, 0}},
		{.6, []int{0, 0, 1, 0}}, // boundary falls into the middle tier
		{.61, []int{0, 0, 1, 0, 0, 1, 1, 0}},
		{1, []int{0, 0, 1, 0, 0, 1, 1, 0}},
	} {
		if got := formFor(tc.complexity); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("formFor(%v) = %v, want %v", tc.complexity, got, tc.want)
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	p := DefaultParams()
	a := Compose(p, rand.New(rand.NewSource(42)))
	b := Compose(p, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed must yield the same composition")
	}
}

func TestBassPlacementRules(t *testing.T) {
	p := DefaultParams()
	p.Style = Techno
	c := Compose(p, testRand())
	for i := 1; i < StepsPerBar; i += 2 {
		if c.Bass[i] != 0 {
			t.Errorf("techno bass must hit odd step %d with the root marker", i)
		}
	}
	if c.Bass[0] == restStep {
		t.Error("step 0 must be forced present for non-ambient styles")
	}

	p.Style = House
	c = Compose(p, testRand())
	for _, i := range []int{0, 10, 14} {
		if c.Bass[i] != 0 {
			t.Errorf("house bass must hit step %d", i)
		}
	}
}

func TestFreqOctaveWrap(t *testing.T) {
	c := Composition{Scale: scaleNaturalMinor}
	base := 55.0
	for _, tc := range []struct {
		degree int
		want   float64
	}{
		{0, base},
		{7, base * 2},
		{14, base * 4},
		{-7, base / 2},
		{2, base * math.Exp2(3.0 / 12)}, // minor third
		{9, base * 2 * math.Exp2(3.0/12)},
	} {
		if got := c.Freq(base, tc.degree); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Freq(%d) = %v, want %v", tc.degree, got, tc.want)
		}
	}
}

func TestIntensityCurve(t *testing.T) {
	if got := IntensityAt(0); got != 0 {
		t.Errorf("intensity at bar 0 = %v, want 0", got)
	}
	if got := IntensityAt(64); got != 1 {
		t.Errorf("intensity at bar 64 = %v, want 1", got)
	}
	if got := IntensityAt(128); got != 1 {
		t.Errorf("intensity at bar 128 = %v, want 1", got)
	}
	prev := 0.0
	for bar := 0; bar <= 100; bar++ {
		v := IntensityAt(bar)
		if v < prev {
			t.Fatalf("intensity decreased at bar %d", bar)
		}
		prev = v
	}
}

func TestSectionSelection(t *testing.T) {
	c := Composition{Form: []int{0, 0, 1, 0}}
	for bar := 0; bar < 8; bar++ {
		if c.SectionAt(bar) != 0 {
			t.Errorf("bar %d should be section A", bar)
		}
	}
	for bar := 8; bar < 12; bar++ {
		if c.SectionAt(bar) != 1 {
			t.Errorf("bar %d should be section B", bar)
		}
	}
	// The form repeats every 16 bars.
	if c.SectionAt(24) != 1 {
		t.Error("bar 24 should wrap back to section B")
	}
}

func TestEightEntryFormSegments(t *testing.T) {
	c := Composition{Form: []int{0, 0, 1, 0, 0, 1, 1, 0}}
	var bSegments []int
	for bar := 0; bar < 32; bar += 4 {
		if c.SectionAt(bar) == 1 {
			bSegments = append(bSegments, bar)
		}
	}
	want := []int{8, 20, 24}
	if !reflect.DeepEqual(bSegments, want) {
		t.Errorf("section B segments start at bars %v, want %v", bSegments, want)
	}
	// Section holds within each four-bar segment.
	for bar := 20; bar < 28; bar++ {
		if c.SectionAt(bar) != 1 {
			t.Errorf("bar %d should still be section B", bar)
		}
	}
}

func TestRepetitiveFormNeverChanges(t *testing.T) {
	p := DefaultParams()
	p.Complexity = .2
	c := Compose(p, testRand())
	for bar := 0; bar < 64; bar++ {
		if c.SectionAt(bar) != 0 {
			t.Fatalf("low-complexity form changed section at bar %d", bar)
		}
	}
}
