package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/engine"
)

// SoundManager plays fire-and-forget sound effects through a single mixer.
// Every method is safe to call before Initialize or after Cleanup; they become no-ops.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// sink hands a finished streamer to the output; replaced in tests
	sink  func(beep.Streamer)
	clock engine.TimeProvider

	lastPlayed map[SoundType]time.Time
	played     uint64
	dropped    uint64
}

// NewSoundManager creates a sound manager; nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:        cfg,
		mixer:      &beep.Mixer{},
		clock:      engine.NewMonotonicTimeProvider(),
		lastPlayed: make(map[SoundType]time.Time),
	}
	sm.sink = sm.addToMixer
	return sm
}

// Initialize opens the audio device and starts the mixer.
// A disabled config leaves the manager silent without touching the device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: initialized at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds and releases the device
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

// Play queues sound st. It reports false when the manager is silent or the same
// sound was played within MinSoundGap; several balls bouncing in one frame play once.
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	now := sm.clock.Now()
	if last, ok := sm.lastPlayed[st]; ok && now.Sub(last) < constants.MinSoundGap {
		sm.dropped++
		return false
	}

	streamer, err := sm.create(st)
	if err != nil {
		log.Printf("audio: %s: %v", st, err)
		sm.dropped++
		return false
	}

	sm.lastPlayed[st] = now
	sm.played++
	sm.sink(streamer)
	return true
}

// PlayEvents plays the sounds for a frame's events
func (sm *SoundManager) PlayEvents(events []engine.Event) {
	for _, ev := range events {
		if st, ok := SoundFor(ev); ok {
			sm.Play(st)
		}
	}
}

// PlayBounce plays the bounce blip
func (sm *SoundManager) PlayBounce() bool {
	return sm.Play(SoundBounce)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// SetVolume sets the master volume, clamped to [0, 1]; NaN mutes
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	switch {
	case !(vol >= 0):
		vol = 0
	case vol > 1:
		vol = 1
	}
	sm.cfg.MasterVolume = vol
}

// IsInitialized reports whether the audio device is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Stats returns the number of played and dropped sounds
func (sm *SoundManager) Stats() (played, dropped uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played, sm.dropped
}

func (sm *SoundManager) create(st SoundType) (beep.Streamer, error) {
	switch st {
	case SoundBounce:
		return CreateBounceSound(sm.cfg), nil
	case SoundScore:
		return CreateScoreSound(sm.cfg), nil
	case SoundWin:
		return CreateWinSound(sm.cfg), nil
	case SoundStart:
		return CreateStartSound(sm.cfg)
	default:
		return CreateBounceSound(sm.cfg), nil
	}
}

func (sm *SoundManager) addToMixer(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
