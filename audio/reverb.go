package audio

import (
	"math"
	"math/rand"
	"time"
)

// Reverb is a chain of cross-fading granular delay taps.  Each stream picks
// random read points in a one-second buffer and feeds its output into the
// next stream's input, which thickens the tail without metallic ringing.
// Process returns the wet signal only; the caller mixes it.
type Reverb struct {
	rate    float64
	size    float64
	decay   float64
	streams []*grainStream
	rand    *rand.Rand
}

type grainStream struct {
	buf    []float64
	i      int
	t, dt  float64
	a1, a2 float64
	i1, i2 int
	dc     HighpassFilter
}

// NewReverb creates a reverb whose tail decays by 40 dB over decayTime
// seconds.
func NewReverb(decayTime, sampleRate float64) *Reverb {
	r := &Reverb{
		rate:  sampleRate,
		size:  .2,
		decay: decayTime,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	dc := NewHighpassFilter(10, sampleRate)
	for i := 0; i < 10; i++ {
		r.streams = append(r.streams, &grainStream{
			buf: make([]float64, int(sampleRate)),
			t:   1,
			dc:  *dc,
		})
	}
	return r
}

func (r *Reverb) Process(dry float64) float64 {
	wet := 0.0
	x := dry
	for _, s := range r.streams {
		if s.t >= 1 {
			s.t -= 1
			s.a1, s.i1 = s.a2, s.i2
			delay := math.Exp2(r.rand.Float64() - 2.5)
			s.dt = 1 / math.Exp2(r.rand.Float64()) / r.size / r.rate
			s.a2 = math.Pow(.01, delay/r.decay)
			s.i2 = (s.i - int(delay*r.rate) + len(s.buf)) % len(s.buf)
		}
		sin2 := math.Sin(math.Pi / 2 * s.t)
		sin2 *= sin2
		y := s.dc.Filter(s.a1*(1-sin2)*s.buf[s.i1] + s.a2*sin2*s.buf[s.i2])
		s.i1 = (s.i1 + 1) % len(s.buf)
		s.i2 = (s.i2 + 1) % len(s.buf)
		s.t += s.dt
		s.buf[s.i] = x + y
		s.i = (s.i + 1) % len(s.buf)
		x = y
		wet += y
	}
	return wet / 2
}
