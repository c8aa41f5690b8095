package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap drops bounce sounds triggered closer together than this
	MinSoundGap = 30 * time.Millisecond
)

// Bounce Sound
const (
	BounceSoundFrequency = 880.0
	BounceSoundDuration  = 60 * time.Millisecond
	BounceSoundAttack    = 3 * time.Millisecond
	BounceSoundRelease   = 40 * time.Millisecond
)

// Score, Win and Start Sounds
const (
	ScoreSoundFrequency = 220.0
	ScoreSoundDuration  = 240 * time.Millisecond

	WinSoundNoteDuration = 120 * time.Millisecond

	StartSoundFrequency = 660.0
	StartSoundDuration  = 180 * time.Millisecond
)

// WinSoundNotes is the arpeggio played on a win (C5, E5, G5)
var WinSoundNotes = [...]float64{523.25, 659.25, 783.99}
