package engine

import "github.com/lixenwraith/vi-tennis/constants"

// PaddleSnapshot is an immutable paddle rectangle for rendering (center and size)
type PaddleSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BallSnapshot is an immutable ball circle for rendering
type BallSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Snapshot is the read-only per-frame view handed to render sinks.
// Value types only, so a published snapshot never aliases live state.
type Snapshot struct {
	MatchID string `json:"matchId"`
	Frame   uint64 `json:"frame"`
	Mode    string `json:"mode"`
	Playing bool   `json:"playing"`
	Message string `json:"message,omitempty"`

	LeftScore  int `json:"leftScore"`
	RightScore int `json:"rightScore"`

	LeftPaddle  PaddleSnapshot `json:"leftPaddle"`
	RightPaddle PaddleSnapshot `json:"rightPaddle"`
	Balls       []BallSnapshot `json:"balls"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Snapshot copies the match state into a Snapshot for frame
func (m *Match) Snapshot(frame uint64) Snapshot {
	snap := Snapshot{
		MatchID:     m.ID,
		Frame:       frame,
		Mode:        m.Mode.String(),
		Playing:     m.Mode == ModePlaying,
		Message:     m.Message,
		LeftScore:   m.Score(SideLeft),
		RightScore:  m.Score(SideRight),
		LeftPaddle:  paddleSnapshot(&m.Left),
		RightPaddle: paddleSnapshot(&m.Right),
		Balls:       make([]BallSnapshot, 0, m.Balls.Len()),
		Width:       constants.FieldWidth,
		Height:      constants.FieldHeight,
	}

	for _, c := range m.Balls.Circles() {
		snap.Balls = append(snap.Balls, BallSnapshot{X: c.Center.X, Y: c.Center.Y, Radius: c.Radius})
	}
	return snap
}

func paddleSnapshot(p *Paddle) PaddleSnapshot {
	r := p.Rect()
	return PaddleSnapshot{X: r.Center.X, Y: r.Center.Y, Width: r.Size.X, Height: r.Size.Y}
}
