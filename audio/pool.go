package audio

// VoicePool is a fixed-size arena of voice slots with a free list.  Voices
// are one-shot: Add places a voice in a free slot, Sing sums the active
// slots and reclaims any that report Done.  When the pool is full the
// stalest active voice is stolen, which bounds both allocation and mixing
// cost per sample.
type VoicePool struct {
	voices []Voice
	stamp  []int64
	free   []int
	clock  int64
}

func NewVoicePool(size int) *VoicePool {
	p := &VoicePool{
		voices: make([]Voice, size),
		stamp:  make([]int64, size),
		free:   make([]int, 0, size),
	}
	for i := size - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	return p
}

// Add places v in a slot.  It never fails: a full pool evicts its oldest
// voice first.
func (p *VoicePool) Add(v Voice) {
	p.clock++
	if len(p.free) == 0 {
		oldest, at := 0, p.stamp[0]
		for i, s := range p.stamp {
			if p.voices[i] != nil && s < at {
				oldest, at = i, s
			}
		}
		p.voices[oldest] = v
		p.stamp[oldest] = p.clock
		return
	}
	i := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.voices[i] = v
	p.stamp[i] = p.clock
}

// Sing mixes one sample from every active voice, releasing finished slots
// back to the free list.
func (p *VoicePool) Sing() float64 {
	sum := 0.0
	for i, v := range p.voices {
		if v == nil {
			continue
		}
		sum += v.Sing()
		if v.Done() {
			p.voices[i] = nil
			p.free = append(p.free, i)
		}
	}
	return sum
}

// Active returns the number of occupied slots.
func (p *VoicePool) Active() int {
	return len(p.voices) - len(p.free)
}
