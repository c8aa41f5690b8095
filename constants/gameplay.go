package constants

// Field geometry, in logical units. The field is fixed; renderers scale it.
const (
	FieldWidth  = 800.0
	FieldHeight = 600.0
)

// Paddle Constants
const (
	PaddleWidth  = 25.0
	PaddleHeight = 100.0

	// PaddleSpeed is in units per second
	PaddleSpeed = 400.0

	// PaddleInset is the horizontal gap between a paddle and its field edge
	PaddleInset = 10.0

	// WallMargin is the gap a paddle keeps from the top and bottom edges
	WallMargin = 5.0

	// ShrinkStep is the height a paddle loses each time its owner scores
	ShrinkStep = 10.0
)

// Ball Constants
const (
	BallRadius = 10.0

	// BallSpeed is in units per second
	BallSpeed = 400.0

	// SpawnMinCos rejects launch angles closer to vertical than ~45.6°
	SpawnMinCos = 0.7

	// BounceMaxPerturbDegrees bounds the random jitter added on a paddle hit (inclusive)
	BounceMaxPerturbDegrees = 19

	// EdgeNudge separates a bounced ball from the surface it hit
	EdgeNudge = 0.1
)

// Match Constants
const (
	// WinScore ends the match when either side reaches it
	WinScore = 10

	// MilestoneEvery awards an extra ball each time a score reaches a multiple of it
	MilestoneEvery = 5
)
