package constants

// Messages shown while the match is paused
const (
	WelcomeMessage   = "Welcome to vi-tennis!\n\nPress space to start the game."
	LeftWinsMessage  = "Left Player Wins!\n\nPress space to restart"
	RightWinsMessage = "Right Player Wins!\n\nPress space to restart"
)

// Score label prefixes
const (
	LeftScoreLabel  = "Left Player: "
	RightScoreLabel = "Right Player: "
)

// Palette (RGB)
var (
	BackgroundRGB  = [3]int32{50, 50, 50}
	LeftPaddleRGB  = [3]int32{100, 100, 200}
	RightPaddleRGB = [3]int32{200, 100, 100}
	BallRGB        = [3]int32{255, 255, 255}
	TextRGB        = [3]int32{255, 255, 255}
)
