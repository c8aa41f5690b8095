package audio

import "github.com/lixenwraith/vi-tennis/engine"

// SoundType identifies a sound effect
type SoundType int

const (
	SoundBounce SoundType = iota
	SoundScore
	SoundWin
	SoundStart
)

func (s SoundType) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundScore:
		return "score"
	case SoundWin:
		return "win"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

// SoundFor maps a simulation event to its sound effect, if any
func SoundFor(ev engine.Event) (SoundType, bool) {
	switch ev.Type {
	case engine.EventBounce:
		return SoundBounce, true
	case engine.EventScore:
		return SoundScore, true
	case engine.EventWin:
		return SoundWin, true
	case engine.EventMatchStart:
		return SoundStart, true
	default:
		return 0, false
	}
}
