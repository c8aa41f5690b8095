package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// AIInterval is the cadence at which the AI re-evaluates its paddle direction
	AIInterval = 100 * time.Millisecond

	// KeyHoldWindow is how long a key counts as held after an auto-repeat.
	// Terminals report presses and auto-repeats but never releases.
	KeyHoldWindow = 120 * time.Millisecond

	// KeyFirstHoldWindow covers the gap between the first press and the first
	// auto-repeat, which terminals delay by roughly 250-600ms
	KeyFirstHoldWindow = 400 * time.Millisecond

	// AttractRestartDelay is the pause between matches in headless attract mode
	AttractRestartDelay = 3 * time.Second
)
