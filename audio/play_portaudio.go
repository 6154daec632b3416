//go:build !oto

package audio

import (
	"sync"

	"github.com/gordonklaus/portaudio"
)

var paInit sync.Once
var paInitErr error

// Stream is a running portaudio output stream.
type Stream struct {
	s *portaudio.Stream
}

// OpenStream starts the default output backend and begins pulling mono
// float32 blocks from render on the backend's own high-priority clock.
func OpenStream(sampleRate float64, render func(out []float32)) (*Stream, error) {
	paInit.Do(func() {
		paInitErr = portaudio.Initialize()
	})
	if paInitErr != nil {
		return nil, paInitErr
	}
	s, err := portaudio.OpenDefaultStream(0, 1, sampleRate, 1024, render)
	if err != nil {
		return nil, err
	}
	if err := s.Start(); err != nil {
		s.Close()
		return nil, err
	}
	return &Stream{s: s}, nil
}

func (s *Stream) Close() error {
	return s.s.Close()
}
