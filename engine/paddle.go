package engine

import (
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/vmath"
)

// Paddle is one player's bat. Pos is the center; Size shrinks as its owner scores.
type Paddle struct {
	Side Side
	Pos  vmath.Vec2
	Size vmath.Vec2
}

// NewPaddle creates a full-size paddle at its round-start position
func NewPaddle(side Side) Paddle {
	p := Paddle{Side: side}
	p.ResetSize()
	p.ResetForRound()
	return p
}

// Rect returns the paddle's bounding box
func (p *Paddle) Rect() vmath.Rect {
	return vmath.Rect{Center: p.Pos, Size: p.Size}
}

func (p *Paddle) Left() float64   { return p.Rect().Left() }
func (p *Paddle) Right() float64  { return p.Rect().Right() }
func (p *Paddle) Top() float64    { return p.Rect().Top() }
func (p *Paddle) Bottom() float64 { return p.Rect().Bottom() }

// ResetForRound centers the paddle vertically, inset from its own edge. Size is kept.
func (p *Paddle) ResetForRound() {
	x := constants.PaddleInset + constants.PaddleWidth/2
	if p.Side == SideRight {
		x = constants.FieldWidth - x
	}
	p.Pos = vmath.V2(x, constants.FieldHeight/2)
}

// ResetSize restores the default size at match start
func (p *Paddle) ResetSize() {
	p.Size = vmath.V2(constants.PaddleWidth, constants.PaddleHeight)
}

// Shrink removes ShrinkStep of height around the current center, never below zero
func (p *Paddle) Shrink() {
	p.Size.Y -= constants.ShrinkStep
	if p.Size.Y < 0 {
		p.Size.Y = 0
	}
}

// CanMoveUp reports whether the top edge is still below the upper margin
func (p *Paddle) CanMoveUp() bool {
	return p.Top() > constants.WallMargin
}

// CanMoveDown reports whether the bottom edge is still above the lower margin
func (p *Paddle) CanMoveDown() bool {
	return p.Bottom() < constants.FieldHeight-constants.WallMargin
}

// Move translates the paddle vertically without bounds checks
func (p *Paddle) Move(dy float64) {
	p.Pos.Y += dy
}

// Steer moves the paddle at velocity (units/s) for dt seconds if the margin allows
// movement in that direction, then clamps it inside the margins
func (p *Paddle) Steer(velocity, dt float64) {
	if (velocity < 0 && p.CanMoveUp()) || (velocity > 0 && p.CanMoveDown()) {
		p.Move(velocity * dt)
		p.clampToWalls()
	}
}

// SetY places the paddle center at y (pointer control), clamped inside the margins
func (p *Paddle) SetY(y float64) {
	p.Pos.Y = y
	p.clampToWalls()
}

func (p *Paddle) clampToWalls() {
	minY := constants.WallMargin + p.Size.Y/2
	maxY := constants.FieldHeight - constants.WallMargin - p.Size.Y/2
	p.Pos.Y = vmath.Clamp(p.Pos.Y, minY, maxY)
}
