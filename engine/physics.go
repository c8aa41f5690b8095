package engine

import (
	"math"

	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/vmath"
)

// Step advances every ball by dt seconds and resolves walls, paddles and scoring.
// A score clears and respawns the pool, so the per-ball loop stops on the first
// score of the frame; the new balls start moving on the next frame.
func (m *Match) Step(dt float64, rng Rand) []Event {
	if m.Mode != ModePlaying {
		return nil
	}

	var events []Event
	for i := 0; i < m.Balls.Len(); i++ {
		ball, ok := m.Balls.Get(i)
		if !ok {
			continue
		}

		integrate(ball, dt)

		if scorer, scored := scoringSide(ball); scored {
			return append(events, m.award(scorer, rng)...)
		}

		if bounceWalls(ball) {
			events = append(events, Event{Type: EventBounce})
		}
		if bouncePaddle(ball, &m.Left, rng) {
			events = append(events, Event{Type: EventBounce, Side: SideLeft})
		}
		if bouncePaddle(ball, &m.Right, rng) {
			events = append(events, Event{Type: EventBounce, Side: SideRight})
		}
	}
	return events
}

func integrate(ball *Ball, dt float64) {
	step := constants.BallSpeed * dt
	ball.Pos = vmath.V2Add(ball.Pos, vmath.V2Scale(vmath.V2FromAngle(ball.Angle), step))
}

// scoringSide reports which side scores when the ball has left the field
func scoringSide(ball *Ball) (Side, bool) {
	if ball.Left() < 0 {
		return SideRight, true
	}
	if ball.Right() > constants.FieldWidth {
		return SideLeft, true
	}
	return 0, false
}

// bounceWalls mirrors the ball off the top and bottom edges
func bounceWalls(ball *Ball) bool {
	bounced := false
	if ball.Top() < 0 {
		ball.Angle = -ball.Angle
		ball.Pos.Y = constants.BallRadius + constants.EdgeNudge
		bounced = true
	}
	if ball.Bottom() > constants.FieldHeight {
		ball.Angle = -ball.Angle
		ball.Pos.Y = constants.FieldHeight - constants.BallRadius - constants.EdgeNudge
		bounced = true
	}
	return bounced
}

// bouncePaddle reflects the ball off the inner half of a paddle.
// The hit zone is one-sided: between the paddle center and its field-facing face.
func bouncePaddle(ball *Ball, paddle *Paddle, rng Rand) bool {
	overlapY := ball.Bottom() >= paddle.Top() && ball.Top() <= paddle.Bottom()
	if !overlapY {
		return false
	}

	switch paddle.Side {
	case SideLeft:
		if !(ball.Left() < paddle.Right() && ball.Left() > paddle.Pos.X) {
			return false
		}
		ball.Angle = reflect(ball, paddle, rng)
		ball.Pos.X = paddle.Right() + constants.BallRadius + constants.EdgeNudge
	case SideRight:
		if !(ball.Right() > paddle.Left() && ball.Right() < paddle.Pos.X) {
			return false
		}
		ball.Angle = reflect(ball, paddle, rng)
		ball.Pos.X = paddle.Left() - constants.BallRadius - constants.EdgeNudge
	default:
		return false
	}
	return true
}

// reflect mirrors the angle across the vertical axis and adds whole-degree jitter,
// positive when the ball strikes below the paddle center
func reflect(ball *Ball, paddle *Paddle, rng Rand) float64 {
	perturb := vmath.Degrees(rng.Intn(constants.BounceMaxPerturbDegrees + 1))
	if ball.Pos.Y > paddle.Pos.Y {
		return math.Pi - ball.Angle + perturb
	}
	return math.Pi - ball.Angle - perturb
}
