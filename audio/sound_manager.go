// Package audio plays synthesized effects for game events through the beep speaker
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/event"
	"github.com/lixenwraith/hoopshot/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

var _ event.Sink = (*SoundManager)(nil)

// SoundManager mixes effects onto the speaker
// Every method is safe to call before Initialize or after Cleanup; the manager is silent then
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [core.SoundTypeCount]time.Time
	now         func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
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
}

// SetMuted silences or restores playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a sound, returning false when it was skipped
// Repeats of the same sound within MinSoundGap are dropped
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.admit(st) {
		return false
	}
	streamer := GetSoundEffect(st, sampleRate)
	if streamer == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// admit applies mute and the per-sound gap; caller holds mu
func (sm *SoundManager) admit(st core.SoundType) bool {
	if st < 0 || st >= core.SoundTypeCount || sm.muted {
		return false
	}
	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

// Notify maps game events to sounds
func (sm *SoundManager) Notify(ev event.GameEvent) {
	if st, ok := SoundFor(ev.Type); ok {
		sm.Play(st)
	}
}

// SoundFor returns the sound an event type triggers
func SoundFor(t event.EventType) (core.SoundType, bool) {
	switch t {
	case event.EventBounce:
		return core.SoundBounce, true
	case event.EventScore:
		return core.SoundSwish, true
	case event.EventBuzzer:
		return core.SoundBuzzer, true
	default:
		return 0, false
	}
}
