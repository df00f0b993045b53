package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/patternlock/parameter"
)

// Player mixes cues onto the system speaker
// A disabled or unstarted player counts requests and stays silent
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	enabled bool
	started bool

	requested atomic.Int64
	played    atomic.Int64
}

// NewPlayer creates a player; Start opens the speaker
func NewPlayer(enabled bool) *Player {
	return &Player{
		rate:    beep.SampleRate(parameter.AudioSampleRate),
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Start initializes the speaker; a disabled player does nothing
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Play queues c; safe from any goroutine
func (p *Player) Play(c Cue) {
	p.requested.Add(1)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	s := Build(c, p.rate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// Name implements service.Service
func (p *Player) Name() string { return "audio" }

// Stop implements service.Service
func (p *Player) Stop() error {
	p.Close()
	return nil
}

// Optional implements service.Optional; the lock works without sound
func (p *Player) Optional() bool { return true }

// Active reports whether cues reach the speaker
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

// Stats returns requested and audibly played cue counts
func (p *Player) Stats() (requested, played int64) {
	return p.requested.Load(), p.played.Load()
}
