package engine

import (
	"time"

	"github.com/lixenwraith/vi-tennis/constants"
)

// AIController steers a paddle toward the first ball in the pool.
// It re-decides only every AIInterval of clock time, so between decisions
// the paddle keeps its previous course regardless of frame rate.
type AIController struct {
	last     time.Time
	velocity float64
}

// NewAIController creates a controller whose cadence timer starts at now
func NewAIController(now time.Time) *AIController {
	return &AIController{last: now}
}

// Velocity returns the current decision: -PaddleSpeed, 0 or +PaddleSpeed
func (ai *AIController) Velocity() float64 {
	return ai.velocity
}

// Update re-evaluates the decision if the cadence elapsed and returns the velocity.
// An empty pool keeps the previous decision.
func (ai *AIController) Update(now time.Time, balls *BallPool, paddle *Paddle) float64 {
	if now.Sub(ai.last) <= constants.AIInterval {
		return ai.velocity
	}
	ai.last = now

	ball, ok := balls.First()
	if !ok {
		return ai.velocity
	}

	switch {
	case ball.Bottom() > paddle.Bottom():
		ai.velocity = constants.PaddleSpeed
	case ball.Top() < paddle.Top():
		ai.velocity = -constants.PaddleSpeed
	default:
		ai.velocity = 0
	}
	return ai.velocity
}
