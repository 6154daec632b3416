package audio

import "math"

// Compressor is a soft RMS compressor on the master output.  The RMS
// amplitude of the output, averaged over the attack window, approaches the
// configured limit; the signal is delayed by the attack window so gain
// reduction leads the material it reacts to.
type Compressor struct {
	limit    float64
	down, up float64
	amp      float64

	// RMS window
	win  []float64
	wi   int
	wsum float64

	// lookahead line
	line []float64
	li   int
}

func NewCompressor(limit, attack, decay, sampleRate float64) *Compressor {
	n := int(attack * sampleRate)
	if n < 1 {
		n = 1
	}
	return &Compressor{
		limit: limit,
		down:  -1 / (attack * sampleRate),
		up:    1 / (decay * sampleRate),
		win:   make([]float64, n),
		line:  make([]float64, n),
	}
}

func (c *Compressor) Compress(x float64) float64 {
	c.wsum -= c.win[c.wi]
	c.win[c.wi] = x * x
	c.wsum += c.win[c.wi]
	c.wi = (c.wi + 1) % len(c.win)
	if c.wsum < 0 {
		c.wsum = 0
	}
	rms := math.Sqrt(c.wsum / float64(len(c.win)))

	gain := math.Exp2(c.amp)
	if y := rms / c.limit; y > 0 && math.Tanh(y)/y < gain {
		c.amp += c.down
	} else {
		c.amp += c.up
	}
	if c.amp > 0 {
		c.amp = 0
	}

	y := c.line[c.li]
	c.line[c.li] = x
	c.li = (c.li + 1) % len(c.line)
	return gain * y
}
