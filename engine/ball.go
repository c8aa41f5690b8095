package engine

import (
	"math"

	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/vmath"
)

// Ball is a single ball in play. All balls share constants.BallRadius.
type Ball struct {
	Pos   vmath.Vec2
	Angle float64 // direction of travel in radians, y axis pointing down
}

// Circle returns the ball's collision disc
func (b *Ball) Circle() vmath.Circle {
	return vmath.Circle{Center: b.Pos, Radius: constants.BallRadius}
}

func (b *Ball) Left() float64   { return b.Pos.X - constants.BallRadius }
func (b *Ball) Right() float64  { return b.Pos.X + constants.BallRadius }
func (b *Ball) Top() float64    { return b.Pos.Y - constants.BallRadius }
func (b *Ball) Bottom() float64 { return b.Pos.Y + constants.BallRadius }

// SpawnBall places a ball at field center with a launch angle drawn in whole degrees,
// resampled until it is within the horizontal band |cos| >= SpawnMinCos
func SpawnBall(rng Rand) Ball {
	var angle float64
	for {
		angle = vmath.Degrees(rng.Intn(360))
		if math.Abs(math.Cos(angle)) >= constants.SpawnMinCos {
			break
		}
	}

	return Ball{
		Pos:   vmath.V2(constants.FieldWidth/2, constants.FieldHeight/2),
		Angle: angle,
	}
}

// BallPool owns the balls of the current round, addressed by index handle
type BallPool struct {
	balls []Ball
}

// Add appends a freshly spawned ball
func (p *BallPool) Add(rng Rand) {
	p.balls = append(p.balls, SpawnBall(rng))
}

// Clear removes all balls
func (p *BallPool) Clear() {
	p.balls = p.balls[:0]
}

// Reset clears the pool and spawns a single ball
func (p *BallPool) Reset(rng Rand) {
	p.Clear()
	p.Add(rng)
}

func (p *BallPool) Len() int {
	return len(p.balls)
}

// Get returns the ball at handle i; ok is false for a stale or out-of-range handle
func (p *BallPool) Get(i int) (*Ball, bool) {
	if i < 0 || i >= len(p.balls) {
		return nil, false
	}
	return &p.balls[i], true
}

// First returns the ball the AI tracks
func (p *BallPool) First() (*Ball, bool) {
	return p.Get(0)
}

// Circles returns the collision discs of all balls in pool order
func (p *BallPool) Circles() []vmath.Circle {
	out := make([]vmath.Circle, len(p.balls))
	for i := range p.balls {
		out[i] = p.balls[i].Circle()
	}
	return out
}
