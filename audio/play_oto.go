//go:build oto

package audio

import (
	"encoding/binary"
	"sync"

	"github.com/hajimehoshi/oto/v2"
)

var otoInit sync.Once
var otoCtx *oto.Context
var otoInitErr error

// Stream is a running oto output player.
type Stream struct {
	p oto.Player
}

// OpenStream starts the oto backend, pulling mono float32 blocks from render
// on the player's clock.  Selected by building with -tags oto; the default
// backend is portaudio.
func OpenStream(sampleRate float64, render func(out []float32)) (*Stream, error) {
	otoInit.Do(func() {
		ctx, ready, err := oto.NewContext(int(sampleRate), 2, 2)
		if err != nil {
			otoInitErr = err
			return
		}
		<-ready
		otoCtx = ctx
	})
	if otoInitErr != nil {
		return nil, otoInitErr
	}
	p := otoCtx.NewPlayer(&streamReader{render: render})
	p.Play()
	return &Stream{p: p}, nil
}

func (s *Stream) Close() error {
	return s.p.Close()
}

// streamReader adapts the mono render callback to oto's stereo 16-bit LE
// byte reader.
type streamReader struct {
	render func(out []float32)
	mono   []float32
}

func (r *streamReader) Read(p []byte) (int, error) {
	const frameBytes = 4 // two int16 channels
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, nil
	}
	if cap(r.mono) < frames {
		r.mono = make([]float32, frames)
	}
	r.mono = r.mono[:frames]
	r.render(r.mono)
	for i, s := range r.mono {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := uint16(int16(s * 32767))
		binary.LittleEndian.PutUint16(p[i*frameBytes:], v)
		binary.LittleEndian.PutUint16(p[i*frameBytes+2:], v)
	}
	return frames * frameBytes, nil
}
