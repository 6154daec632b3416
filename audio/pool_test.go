package audio

import "testing"

type testVoice struct {
	left int
	out  float64
}

func (v *testVoice) Sing() float64 {
	v.left--
	return v.out
}

func (v *testVoice) Done() bool { return v.left <= 0 }

func TestPoolMixAndReclaim(t *testing.T) {
	p := NewVoicePool(4)
	p.Add(&testVoice{left: 2, out: 1})
	p.Add(&testVoice{left: 1, out: 2})
	if p.Active() != 2 {
		t.Fatalf("Active() = %d, want 2", p.Active())
	}
	if got := p.Sing(); got != 3 {
		t.Errorf("mixed sample = %v, want 3", got)
	}
	// The second voice finished on that sample and freed its slot.
	if p.Active() != 1 {
		t.Errorf("Active() = %d after reclaim, want 1", p.Active())
	}
	if got := p.Sing(); got != 1 {
		t.Errorf("mixed sample = %v, want 1", got)
	}
	if p.Active() != 0 {
		t.Errorf("Active() = %d, want 0", p.Active())
	}
	if got := p.Sing(); got != 0 {
		t.Errorf("empty pool sample = %v, want 0", got)
	}
}

func TestPoolSlotReuse(t *testing.T) {
	p := NewVoicePool(2)
	p.Add(&testVoice{left: 1})
	p.Sing()
	p.Add(&testVoice{left: 10})
	p.Add(&testVoice{left: 10})
	if p.Active() != 2 {
		t.Errorf("Active() = %d after slot reuse, want 2", p.Active())
	}
}

func TestPoolEvictsOldest(t *testing.T) {
	p := NewVoicePool(2)
	first := &testVoice{left: 100, out: 1}
	second := &testVoice{left: 100, out: 2}
	third := &testVoice{left: 100, out: 4}
	p.Add(first)
	p.Add(second)
	p.Add(third) // full: first must be stolen
	if p.Active() != 2 {
		t.Fatalf("Active() = %d, want 2", p.Active())
	}
	if got := p.Sing(); got != 6 {
		t.Errorf("mixed sample = %v, want 6 (oldest voice stolen)", got)
	}
}
