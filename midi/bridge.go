// Package midi mirrors the engine's realized notes to a MIDI output port,
// so an external synth can double or replace the internal voices.
package midi

import (
	"math"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/daydaygaming-png/sound0001/music"
)

// Bridge owns one output port.  Wire HandleNote into Engine.OnNote.
// The caller must register a driver (e.g. rtmididrv) with a blank import.
type Bridge struct {
	send func(gomidi.Message) error
}

// Open finds the named output port ("" matches the first available).
func Open(port string) (*Bridge, error) {
	out, err := gomidi.FindOutPort(port)
	if err != nil {
		return nil, err
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, err
	}
	return &Bridge{send: send}, nil
}

// Close releases the underlying driver.
func (b *Bridge) Close() {
	gomidi.CloseDriver()
}

// HandleNote sends the note on its melodic or percussion channel and
// schedules the matching note-off after the note's duration.  The at
// argument is the audio-clock onset; the bridge sends at dispatch time,
// which leads the internal voices by at most the look-ahead window.
func (b *Bridge) HandleNote(n music.Note, at float64) {
	ch, key := route(n)
	vel := uint8(math.Round(127 * math.Min(n.Amp, 1)))
	if err := b.send(gomidi.NoteOn(ch, key, vel)); err != nil {
		return
	}
	time.AfterFunc(time.Duration(n.Dur*float64(time.Second)), func() {
		b.send(gomidi.NoteOff(ch, key))
	})
}

// General MIDI percussion keys on channel 10.
const (
	drumChannel = 9
	gmKick      = 36
	gmSnare     = 38
	gmHat       = 42
	gmShaker    = 70
	gmTimpani   = 47
)

func route(n music.Note) (ch, key uint8) {
	switch n.Inst {
	case music.InstKick:
		return drumChannel, gmKick
	case music.InstSnare:
		return drumChannel, gmSnare
	case music.InstShaker:
		return drumChannel, gmShaker
	case music.InstHat:
		return drumChannel, gmHat
	case music.InstTimpani:
		return drumChannel, gmTimpani
	}
	return 0, Key(n.Freq)
}

// Key converts a frequency to the nearest MIDI note number.
func Key(freq float64) uint8 {
	if freq <= 0 {
		return 0
	}
	n := math.Round(69 + 12*math.Log2(freq/440))
	if n < 0 {
		n = 0
	}
	if n > 127 {
		n = 127
	}
	return uint8(n)
}
