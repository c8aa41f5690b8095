package engine

import (
	"time"

	"github.com/lixenwraith/vi-tennis/constants"
)

// GameOptions configures a Game
type GameOptions struct {
	// Rand is the randomness source; nil seeds one from the clock
	Rand Rand

	// Clock is the time source for delta time and the AI cadence; nil uses the system clock
	Clock TimeProvider

	// Attract hands the left paddle to a second AI and restarts matches automatically
	Attract bool
}

// FrameResult is the output of one frame: side effects to perform and the state to draw
type FrameResult struct {
	Quit      bool
	Resized   bool
	Started   bool
	DeltaTime time.Duration
	Events    []Event
	Snapshot  Snapshot
}

// Game is the frame driver. It owns the match exclusively; callers interact
// only through Frame and read state through the returned snapshot.
type Game struct {
	match *Match
	rng   Rand
	clock TimeProvider

	delta  *Stopwatch
	paused *Stopwatch

	rightAI *AIController
	leftAI  *AIController
	attract bool

	frame uint64
}

// NewGame creates a game in the paused welcome state
func NewGame(opts GameOptions) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	g := &Game{
		match:   NewMatch(rng),
		rng:     rng,
		clock:   clock,
		delta:   NewStopwatch(clock),
		paused:  NewStopwatch(clock),
		rightAI: NewAIController(clock.Now()),
		attract: opts.Attract,
	}
	if opts.Attract {
		g.leftAI = NewAIController(clock.Now())
	}
	return g
}

// Match exposes the match for inspection; callers must not mutate it concurrently with Frame
func (g *Game) Match() *Match {
	return g.match
}

// FrameNumber returns the number of frames processed
func (g *Game) FrameNumber() uint64 {
	return g.frame
}

// Frame runs one frame: discrete inputs, then paddles, AI and physics while playing
func (g *Game) Frame(in Input) FrameResult {
	g.frame++
	var res FrameResult

	for _, ev := range in.Events {
		switch ev {
		case InputClose:
			res.Quit = true
		case InputResize:
			res.Resized = true
		case InputStart:
			if g.start() {
				res.Started = true
			}
		}
	}

	if res.Quit {
		res.Snapshot = g.match.Snapshot(g.frame)
		return res
	}

	if g.attract && g.match.Mode == ModePaused && g.paused.Elapsed() >= constants.AttractRestartDelay {
		if g.start() {
			res.Started = true
		}
	}
	if res.Started {
		res.Events = append(res.Events, Event{Type: EventMatchStart})
	}

	if g.match.Mode == ModePlaying {
		res.DeltaTime = g.delta.Restart()
		res.Events = append(res.Events, g.update(in, res.DeltaTime.Seconds())...)
		if g.match.Mode == ModePaused {
			g.paused.Restart()
		}
	}

	res.Snapshot = g.match.Snapshot(g.frame)
	return res
}

func (g *Game) start() bool {
	if !g.match.Start(g.rng) {
		return false
	}
	g.delta.Restart()
	return true
}

func (g *Game) update(in Input, dt float64) []Event {
	m := g.match
	now := g.clock.Now()

	if g.leftAI != nil {
		m.Left.Steer(g.leftAI.Velocity(), dt)
	} else if in.Pointer {
		m.Left.SetY(in.PointerY)
	} else {
		if in.Up {
			m.Left.Steer(-constants.PaddleSpeed, dt)
		}
		if in.Down {
			m.Left.Steer(constants.PaddleSpeed, dt)
		}
	}

	m.Right.Steer(g.rightAI.Velocity(), dt)

	g.rightAI.Update(now, &m.Balls, &m.Right)
	if g.leftAI != nil {
		g.leftAI.Update(now, &m.Balls, &m.Left)
	}

	return m.Step(dt, g.rng)
}
