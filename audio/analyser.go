package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/ktye/fft"
)

// Analyser is the post-compressor tap point.  The render goroutine pushes
// every output sample into a ring; readers copy the ring under a short lock
// and do their FFT work outside it, so reading never stalls playback.
type Analyser struct {
	mu  sync.Mutex
	buf []float64
	i   int

	fft    fft.FFT
	window []float64
}

// NewAnalyser creates a tap of the given size, which must be a power of two.
func NewAnalyser(size int) *Analyser {
	f, err := fft.New(size)
	if err != nil {
		panic("audio: bad analyser size: " + err.Error())
	}
	window := make([]float64, size)
	for i := range window {
		window[i] = (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
	}
	return &Analyser{
		buf:    make([]float64, size),
		fft:    f,
		window: window,
	}
}

// Push records one output sample.
func (a *Analyser) Push(x float64) {
	a.mu.Lock()
	a.buf[a.i] = x
	a.i = (a.i + 1) % len(a.buf)
	a.mu.Unlock()
}

// Waveform copies the most recent samples, oldest first, into dst and
// returns it.  dst longer than the tap is truncated.
func (a *Analyser) Waveform(dst []float64) []float64 {
	if len(dst) > len(a.buf) {
		dst = dst[:len(a.buf)]
	}
	a.mu.Lock()
	start := a.i - len(dst)
	for j := range dst {
		dst[j] = a.buf[(start+j+len(a.buf))%len(a.buf)]
	}
	a.mu.Unlock()
	return dst
}

// Spectrum returns magnitude bins for the current tap contents.  It yields
// size/2 bins; dst is reused when large enough.
func (a *Analyser) Spectrum(dst []float64) []float64 {
	n := len(a.buf)
	in := make([]complex128, n)
	a.mu.Lock()
	for j := 0; j < n; j++ {
		in[j] = complex(a.buf[(a.i+j)%n]*a.window[j], 0)
	}
	a.mu.Unlock()

	out := a.fft.Transform(in)
	if cap(dst) < n/2 {
		dst = make([]float64, n/2)
	}
	dst = dst[:n/2]
	for j := range dst {
		dst[j] = cmplx.Abs(out[j]) / float64(n)
	}
	return dst
}
