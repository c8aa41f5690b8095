package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-tennis/constants"
)

// Mode is the match phase
type Mode int

const (
	ModePaused Mode = iota
	ModePlaying
)

func (m Mode) String() string {
	switch m {
	case ModePaused:
		return "paused"
	case ModePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// validTransitions lists the only legal mode changes:
// Start moves Paused to Playing, a win moves Playing to Paused
var validTransitions = map[Mode]Mode{
	ModePaused:  ModePlaying,
	ModePlaying: ModePaused,
}

// CanTransition reports whether from -> to is a legal mode change
func CanTransition(from, to Mode) bool {
	next, ok := validTransitions[from]
	return ok && next == to
}

// Match holds all simulation state of one game: scores, paddles, balls and mode.
// It is owned by a single Game and mutated only from its frame loop.
type Match struct {
	ID      string
	Mode    Mode
	Message string

	LeftScore  int
	RightScore int

	Left  Paddle
	Right Paddle
	Balls BallPool
}

// NewMatch creates a paused match showing the welcome message
func NewMatch(rng Rand) *Match {
	m := &Match{
		Mode:    ModePaused,
		Message: constants.WelcomeMessage,
		Left:    NewPaddle(SideLeft),
		Right:   NewPaddle(SideRight),
	}
	m.Balls.Reset(rng)
	return m
}

// Start begins a new match from 0-0. It is a no-op while already playing.
func (m *Match) Start(rng Rand) bool {
	if !CanTransition(m.Mode, ModePlaying) {
		return false
	}

	m.ID = uuid.NewString()
	m.Mode = ModePlaying
	m.Message = ""
	m.LeftScore = 0
	m.RightScore = 0
	m.Left.ResetSize()
	m.Right.ResetSize()
	m.ResetRound(rng)
	return true
}

// ResetRound recenters both paddles and replaces all balls with a single new one
func (m *Match) ResetRound(rng Rand) {
	m.Left.ResetForRound()
	m.Right.ResetForRound()
	m.Balls.Reset(rng)
}

// Score returns the score of side
func (m *Match) Score(side Side) int {
	if side == SideLeft {
		return m.LeftScore
	}
	return m.RightScore
}

// Paddle returns the paddle owned by side
func (m *Match) Paddle(side Side) *Paddle {
	if side == SideLeft {
		return &m.Left
	}
	return &m.Right
}

// award credits a point to scorer: its paddle shrinks, the round resets,
// a milestone adds a ball and reaching WinScore pauses the match
func (m *Match) award(scorer Side, rng Rand) []Event {
	var score int
	if scorer == SideLeft {
		m.LeftScore++
		score = m.LeftScore
	} else {
		m.RightScore++
		score = m.RightScore
	}

	events := []Event{{Type: EventScore, Side: scorer, Score: score}}

	m.Paddle(scorer).Shrink()
	m.ResetRound(rng)

	if score > 0 && score%constants.MilestoneEvery == 0 {
		m.Balls.Add(rng)
		events = append(events, Event{Type: EventMilestone, Side: scorer, Score: score})
	}

	if score >= constants.WinScore && CanTransition(m.Mode, ModePaused) {
		m.Mode = ModePaused
		if scorer == SideLeft {
			m.Message = constants.LeftWinsMessage
		} else {
			m.Message = constants.RightWinsMessage
		}
		events = append(events, Event{Type: EventWin, Side: scorer, Score: score})
	}
	return events
}
