// Package audio synthesizes every sound effect at startup and plays
// them on a shared beep mixer. There are no audio assets; each cue is
// a short generated tone.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type shape int

const (
	shapeSine shape = iota
	shapeSquare
	shapeNoise
)

// tone describes one cue: a frequency sweep from `from` to `to` Hz
// over `dur`, with a short attack ramp and a linear fade-out.
type tone struct {
	shape shape
	from  float64
	to    float64
	dur   time.Duration
	vol   float64
}

// cues maps the simulation's feedback cue names to their sounds.
var cues = map[string]tone{
	"jump":        {shapeSquare, 180, 330, 90 * time.Millisecond, 0.10},
	"shoot":       {shapeSquare, 900, 500, 60 * time.Millisecond, 0.08},
	"enemy_shoot": {shapeSquare, 500, 260, 70 * time.Millisecond, 0.06},
	"slash":       {shapeNoise, 0, 0, 45 * time.Millisecond, 0.09},
	"deflect":     {shapeSine, 1250, 1250, 45 * time.Millisecond, 0.07},
	"hit":         {shapeSquare, 320, 170, 55 * time.Millisecond, 0.10},
	"kill":        {shapeNoise, 0, 0, 180 * time.Millisecond, 0.12},
	"hurt":        {shapeSquare, 200, 90, 140 * time.Millisecond, 0.12},
	"armor":       {shapeSine, 700, 700, 120 * time.Millisecond, 0.10},
	"gameover":    {shapeSquare, 220, 55, 700 * time.Millisecond, 0.12},
	"exit":        {shapeSine, 440, 880, 250 * time.Millisecond, 0.10},
	"victory":     {shapeSine, 523, 1046, 600 * time.Millisecond, 0.12},
	"coin":        {shapeSine, 988, 1319, 90 * time.Millisecond, 0.09},
	"heal":        {shapeSine, 660, 990, 160 * time.Millisecond, 0.09},
	"purchase":    {shapeSine, 784, 1175, 120 * time.Millisecond, 0.09},
	"equip":       {shapeSine, 600, 600, 70 * time.Millisecond, 0.08},
	"denied":      {shapeSquare, 110, 110, 120 * time.Millisecond, 0.10},
	"salvo":       {shapeSquare, 160, 80, 100 * time.Millisecond, 0.08},
	"boss_sleep":  {shapeSine, 300, 80, 400 * time.Millisecond, 0.10},
	"boss_wake":   {shapeSquare, 80, 300, 300 * time.Millisecond, 0.12},
}

// Player owns the speaker and plays cues by name. Before Initialize
// (and whenever muted) Play is a no-op, so tests and headless runs
// never touch the audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player with an empty mixer.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted turns cue playback off or back on.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Play queues the named cue. Unknown names are ignored.
func (p *Player) Play(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	t, ok := cues[name]
	if !ok {
		return
	}
	p.mixer.Add(beep.Take(sampleRate.N(t.dur), newToneStreamer(t)))
}

// Cleanup silences the mixer. The speaker itself stays open; beep has
// no close.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// toneStreamer generates one playing instance of a tone. It streams
// forever; the beep.Take wrapper cuts it at the tone's duration.
type toneStreamer struct {
	tone  tone
	pos   int
	total int
	phase float64
	seed  int64
}

func newToneStreamer(t tone) *toneStreamer {
	return &toneStreamer{
		tone:  t,
		total: sampleRate.N(t.dur),
		seed:  1,
	}
}

func (g *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	attack := sampleRate.N(5 * time.Millisecond)

	for i := range samples {
		progress := float64(g.pos) / float64(g.total)
		if progress > 1 {
			progress = 1
		}

		// Attack ramp then linear fade to zero at the end
		envelope := 1 - progress
		if g.pos < attack {
			envelope *= float64(g.pos) / float64(attack)
		}

		var sample float64
		switch g.tone.shape {
		case shapeNoise:
			g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
			sample = float64(g.seed)/float64(0x7fffffff)*2 - 1
		default:
			freq := g.tone.from + (g.tone.to-g.tone.from)*progress
			g.phase += 2 * math.Pi * freq / float64(sampleRate)
			sample = math.Sin(g.phase)
			if g.tone.shape == shapeSquare {
				if sample >= 0 {
					sample = 1
				} else {
					sample = -1
				}
			}
		}

		sample *= envelope * g.tone.vol
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneStreamer) Err() error {
	return nil
}
