package engine

// Side identifies a player and the paddle they own
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// EventType represents a side effect produced by a frame
type EventType int

const (
	// EventBounce is emitted when a ball reflects off a wall or paddle.
	// Consumed by the audio sink to play the bounce sound.
	EventBounce EventType = iota

	// EventScore is emitted when a ball leaves the field; Side is the scorer
	EventScore

	// EventMilestone is emitted when a score reaches a multiple of MilestoneEvery
	// and an extra ball joins the round
	EventMilestone

	// EventWin is emitted when a score reaches WinScore; the match pauses
	EventWin

	// EventMatchStart is emitted when a Start input begins a new match
	EventMatchStart
)

func (t EventType) String() string {
	switch t {
	case EventBounce:
		return "bounce"
	case EventScore:
		return "score"
	case EventMilestone:
		return "milestone"
	case EventWin:
		return "win"
	case EventMatchStart:
		return "match_start"
	default:
		return "unknown"
	}
}

// Event is a single frame side effect
type Event struct {
	Type  EventType
	Side  Side
	Score int
}
