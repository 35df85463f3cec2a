package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mask-arena/parameter"
	"github.com/lixenwraith/mask-arena/status"
)

// Player plays cues; implementations must not block the caller
type Player interface {
	Play(c Cue)
}

// SoundManager plays cues through a single mixer on the system speaker
// Until Initialize succeeds every Play is a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	logger      *slog.Logger

	statEnabled *atomic.Bool
	statPlayed  *atomic.Int64
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(volume float64, reg *status.Registry, logger *slog.Logger) *SoundManager {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundManager{
		mixer:       &beep.Mixer{},
		rate:        beep.SampleRate(parameter.AudioSampleRate),
		volume:      volume,
		logger:      logger,
		statEnabled: reg.Bools.Get("audio.enabled"),
		statPlayed:  reg.Ints.Get("audio.played"),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)

	sm.initialized = true
	sm.statEnabled.Store(true)
	sm.logger.Debug("audio initialized", "rate", int(sm.rate))
	return nil
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play adds a cue to the mixer
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := NewCueStreamer(c, sm.rate, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.statPlayed.Add(1)
}

// Close silences the mixer and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
	sm.statEnabled.Store(false)
}

// Silent is a Player that drops every cue
type Silent struct{}

func (Silent) Play(Cue) {}
