// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/starfighter/internal/config"
	"github.com/vovakirdan/starfighter/internal/sim"
)

// maxVoices caps concurrently mixed effects; extra triggers are dropped.
const maxVoices = 8

// SoundManager mixes sound effects onto the speaker. It implements sim.Audio.
// Until Initialize succeeds every Play is a no-op, so a machine without an
// audio device still runs the game silently.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager for the given settings.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. It does nothing when audio is disabled.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	// 100ms of buffer keeps shots responsive without underruns.
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Debug("audio initialized", "sample_rate", int(sm.rate))
	return nil
}

// Enabled reports whether sounds are actually being played.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play triggers an effect without blocking.
func (sm *SoundManager) Play(effect sim.Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var s beep.Streamer
	switch effect {
	case sim.EffectLaser:
		s = NewLaser(sm.rate, sm.cfg.Volume)
	default:
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(s)
	}
	speaker.Unlock()
}

// Close stops all sounds and shuts the speaker down.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

var _ sim.Audio = (*SoundManager)(nil)
