package audio

import (
	"math"
	"math/rand"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blockworld/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays the block edit cues
// Every method is a no-op until Initialize succeeds, so the game runs without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	seed        int64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		seed:  1,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences output
	sm.mixer.Clear()
	sm.initialized = false
}

// Initialized reports whether a device is attached
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayPlace plays a short rising click when a block is placed
func (sm *SoundManager) PlayPlace() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := NewPlaceStreamer(sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayBreak plays a crumbling noise burst when a block is removed
func (sm *SoundManager) PlayBreak() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.seed++
	speaker.Lock()
	sm.mixer.Add(NewCrumbleGenerator(sampleRate, sm.seed))
	speaker.Unlock()
}

// NewPlaceStreamer is a sine tone under a fast exponential decay
func NewPlaceStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, parameter.PlaceSoundFreq)
	if err != nil {
		return nil, err
	}
	env := &Envelope{Streamer: tone, sr: sr, rate: 40, gain: 0.25}
	return beep.Take(sr.N(parameter.PlaceSoundDuration), env), nil
}

// Envelope scales a streamer by gain*exp(-rate*t)
type Envelope struct {
	Streamer beep.Streamer
	sr       beep.SampleRate
	rate     float64
	gain     float64
	pos      int
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.pos) / float64(e.sr)
		a := e.gain * math.Exp(-t*e.rate)
		samples[i][0] *= a
		samples[i][1] *= a
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error {
	return e.Streamer.Err()
}

// CrumbleGenerator is a finite burst of low-passed noise with sparse crackle grains
// Its length is parameter.BreakSoundDuration and it fades to -60dB by the last sample
type CrumbleGenerator struct {
	rng   *rand.Rand
	total int
	pos   int
	decay float64 // per-sample envelope multiplier
	env   float64
	body  float64 // one-pole low-pass state
	grain float64
}

// NewCrumbleGenerator creates a crumble burst; equal seeds give equal output
func NewCrumbleGenerator(sr beep.SampleRate, seed int64) *CrumbleGenerator {
	total := max(sr.N(parameter.BreakSoundDuration), 1)
	return &CrumbleGenerator{
		rng:   rand.New(rand.NewSource(seed)),
		total: total,
		decay: math.Pow(crumbleFloor, 1/float64(total)),
		env:   1,
	}
}

const (
	crumbleFloor     = 1e-3 // envelope level at the end of the burst
	crumbleLowPass   = 0.08
	crumbleGrainRate = 0.004 // chance per sample of a new crackle
	crumbleGrainFade = 0.92
)

func (g *CrumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && g.pos < g.total {
		white := g.rng.Float64()*2 - 1
		g.body += crumbleLowPass * (white - g.body)

		if g.rng.Float64() < crumbleGrainRate {
			g.grain = g.rng.Float64()*2 - 1
		}
		g.grain *= crumbleGrainFade

		sample := g.env * (2.5*g.body + 0.4*g.grain)
		samples[n][0] = sample
		samples[n][1] = sample

		g.env *= g.decay
		g.pos++
		n++
	}
	return n, n > 0
}

func (g *CrumbleGenerator) Err() error {
	return nil
}
