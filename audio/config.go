package audio

import "github.com/lixenwraith/vi-tennis/constants"

// AudioConfig holds audio system settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundBounce: 0.6,
			SoundScore:  0.8,
			SoundWin:    1.0,
			SoundStart:  0.5,
		},
	}
}

// effectVolume returns the effective volume for st in [0, 1]
func (c *AudioConfig) effectVolume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	v *= c.MasterVolume
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
