// Command moodplay runs the mood engine with a terminal front end: it
// visualizes the step callback and the analysis tap, and stands in for the
// camera gesture source with the keyboard.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/daydaygaming-png/sound0001/debug"
	"github.com/daydaygaming-png/sound0001/midi"
	"github.com/daydaygaming-png/sound0001/music"
)

func main() {
	var (
		styleFlag      = flag.String("style", "techno", "musical style tag")
		tempoFlag      = flag.Float64("tempo", 128, "tempo in BPM")
		complexityFlag = flag.Float64("complexity", .5, "complexity 0..1")
		darknessFlag   = flag.Float64("darkness", .5, "darkness 0..1")
		spaceFlag      = flag.Float64("space", .5, "space 0..1")
		waveFlag       = flag.String("wave", "sawtooth", "waveform: sine|square|sawtooth|triangle")
		baseFlag       = flag.Float64("base", 55, "base frequency in Hz")
		seedFlag       = flag.Int64("seed", 0, "composition seed (0 = random)")
		configFlag     = flag.String("config", "", "JSON mood parameter file")
		midiFlag       = flag.String("midi", "", "mirror notes to this MIDI out port")
		debugFlag      = flag.String("debug", "", "write a debug log to this file")
	)
	flag.Parse()

	if *debugFlag != "" {
		if err := debug.Enable(*debugFlag); err != nil {
			fmt.Fprintln(os.Stderr, "debug log:", err)
			os.Exit(1)
		}
		defer debug.Disable()
	}

	params := music.DefaultParams()
	if *configFlag != "" {
		var err error
		params, err = loadConfig(*configFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "style":
			params.Style = music.ParseStyle(*styleFlag)
		case "tempo":
			params.Tempo = *tempoFlag
		case "complexity":
			params.Complexity = *complexityFlag
		case "darkness":
			params.Darkness = *darknessFlag
		case "space":
			params.Space = *spaceFlag
		case "wave":
			params.Waveform = music.ParseWave(*waveFlag)
		case "base":
			params.BaseFreq = *baseFlag
		}
	})

	var opts []music.Option
	if *seedFlag != 0 {
		opts = append(opts, music.WithRand(rand.New(rand.NewSource(*seedFlag))))
	}
	eng := music.New(params, opts...)
	defer eng.Close()

	if *midiFlag != "" {
		bridge, err := midi.Open(*midiFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "midi:", err)
			os.Exit(1)
		}
		defer bridge.Close()
		eng.OnNote(bridge.HandleNote)
	}

	m := newModel(eng)
	p := tea.NewProgram(m, tea.WithAltScreen())
	eng.OnStep(func(pos int) {
		p.Send(stepMsg(pos))
	})
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fileConfig mirrors Params with string enums for JSON.
type fileConfig struct {
	Style      string  `json:"style"`
	Tempo      float64 `json:"tempo"`
	Complexity float64 `json:"complexity"`
	Darkness   float64 `json:"darkness"`
	Space      float64 `json:"space"`
	Waveform   string  `json:"waveform"`
	BaseFreq   float64 `json:"baseFrequency"`
}

func loadConfig(path string) (music.Params, error) {
	p := music.DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	var c fileConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return p, err
	}
	if c.Style != "" {
		p.Style = music.ParseStyle(c.Style)
	}
	if c.Tempo > 0 {
		p.Tempo = c.Tempo
	}
	p.Complexity = c.Complexity
	p.Darkness = c.Darkness
	p.Space = c.Space
	if c.Waveform != "" {
		p.Waveform = music.ParseWave(c.Waveform)
	}
	if c.BaseFreq > 0 {
		p.BaseFreq = c.BaseFreq
	}
	return p, nil
}

// --- TUI ---

type stepMsg int
type tickMsg time.Time

const spectrumBars = 32

type model struct {
	eng      *music.Engine
	gesture  music.GestureState
	pos      int
	spectrum []float64
	err      error
}

func newModel(eng *music.Engine) *model {
	return &model{
		eng:     eng,
		gesture: music.NeutralGesture(),
	}
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.pos = int(msg)
		return m, nil

	case tickMsg:
		m.spectrum = m.eng.Analyser().Spectrum(m.spectrum)
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.eng.Running() {
				m.eng.Stop()
			} else if err := m.eng.Start(); err != nil {
				m.err = err
			}
			return m, nil
		case "left":
			m.gesture.X -= .05
		case "right":
			m.gesture.X += .05
		case "up":
			m.gesture.Y += .05
		case "down":
			m.gesture.Y -= .05
		case "p":
			m.gesture.Pinching = !m.gesture.Pinching
		case "f":
			m.gesture.Fist = !m.gesture.Fist
		case "o":
			m.gesture.PalmOpen = !m.gesture.PalmOpen
		case "v":
			m.gesture.Visible = !m.gesture.Visible
		default:
			return m, nil
		}
		m.gesture.X = math.Max(0, math.Min(1, m.gesture.X))
		m.gesture.Y = math.Max(0, math.Min(1, m.gesture.Y))
		m.eng.UpdateControlParams(m.gesture)
		return m, nil
	}
	return m, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	gridOn      = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m *model) View() string {
	p := m.eng.Params()
	c := m.eng.Composition()
	step := m.pos % music.StepsPerBar
	phraseBar := m.pos / music.StepsPerBar

	s := titleStyle.Render("moodplay") + "  " +
		labelStyle.Render(fmt.Sprintf("%s  %.0f bpm  complexity %.2f  darkness %.2f  space %.2f",
			p.Style, p.Tempo, p.Complexity, p.Darkness, p.Space)) + "\n\n"

	// Step row with the playhead.
	row := ""
	for i := 0; i < music.StepsPerBar; i++ {
		cell := "·"
		if i%4 == 0 {
			cell = "•"
		}
		if i == step && m.eng.Running() {
			row += activeStyle.Render("▶")
		} else {
			row += gridOn.Render(cell)
		}
		row += " "
	}
	s += row + labelStyle.Render(fmt.Sprintf("  phrase bar %d/4  form %v", phraseBar+1, c.Form)) + "\n\n"

	s += renderSpectrum(m.spectrum) + "\n\n"

	state := "stopped"
	if m.eng.Running() {
		state = "running"
	}
	vis := "hidden"
	if m.gesture.Visible {
		vis = "visible"
	}
	s += labelStyle.Render(fmt.Sprintf("engine %s   hand %s  x %.2f  y %.2f  pinch %v  fist %v",
		state, vis, m.gesture.X, m.gesture.Y, m.gesture.Pinching, m.gesture.Fist)) + "\n"
	if m.err != nil {
		s += errStyle.Render("audio: "+m.err.Error()) + "\n"
	}
	s += "\n" + labelStyle.Render("space start/stop · arrows move hand · p pinch · f fist · v visibility · q quit") + "\n"
	return s
}

var barGlyphs = []rune(" ▁▂▃▄▅▆▇█")

func renderSpectrum(spec []float64) string {
	if len(spec) == 0 {
		return ""
	}
	out := make([]rune, spectrumBars)
	per := len(spec) / spectrumBars
	if per < 1 {
		per = 1
	}
	for i := 0; i < spectrumBars; i++ {
		peak := 0.0
		for j := i * per; j < (i+1)*per && j < len(spec); j++ {
			if spec[j] > peak {
				peak = spec[j]
			}
		}
		// Map to a rough dB scale so quiet content still registers.
		level := 0.0
		if peak > 0 {
			level = 1 + math.Log10(peak+1e-6)/3
		}
		if level < 0 {
			level = 0
		}
		if level > 1 {
			level = 1
		}
		out[i] = barGlyphs[int(level*float64(len(barGlyphs)-1))]
	}
	return gridOn.Render(string(out))
}
