package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/vmath"
)

func poolWithBallAt(y float64) *BallPool {
	pool := &BallPool{}
	pool.balls = append(pool.balls, Ball{Pos: vmath.V2(400, y)})
	return pool
}

// TestAIDecisions verifies the direction chosen for a ball below, above and level with the paddle
func TestAIDecisions(t *testing.T) {
	tests := []struct {
		name  string
		ballY float64
		want  float64
	}{
		{"Ball below paddle", 400, constants.PaddleSpeed},
		{"Ball above paddle", 200, -constants.PaddleSpeed},
		{"Ball level with paddle", 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			ai := NewAIController(start)
			paddle := NewPaddle(SideRight)

			got := ai.Update(start.Add(constants.AIInterval+time.Millisecond), poolWithBallAt(tt.ballY), &paddle)
			if got != tt.want {
				t.Errorf("Expected velocity %v, got %v", tt.want, got)
			}
		})
	}
}

// TestAICadence verifies decisions persist between evaluations regardless of how often Update runs
func TestAICadence(t *testing.T) {
	mockTime := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ai := NewAIController(mockTime.Now())
	paddle := NewPaddle(SideRight)
	below := poolWithBallAt(450)
	above := poolWithBallAt(100)

	mockTime.Advance(50 * time.Millisecond)
	if v := ai.Update(mockTime.Now(), below, &paddle); v != 0 {
		t.Fatalf("Expected no decision before the first interval, got %v", v)
	}

	mockTime.Advance(60 * time.Millisecond)
	if v := ai.Update(mockTime.Now(), below, &paddle); v != constants.PaddleSpeed {
		t.Fatalf("Expected move down after 110ms, got %v", v)
	}

	// Many frames inside the same interval keep the old decision
	for i := 0; i < 5; i++ {
		mockTime.Advance(10 * time.Millisecond)
		if v := ai.Update(mockTime.Now(), above, &paddle); v != constants.PaddleSpeed {
			t.Fatalf("Frame %d: expected decision held at %v, got %v", i, constants.PaddleSpeed, v)
		}
	}

	mockTime.Advance(60 * time.Millisecond)
	if v := ai.Update(mockTime.Now(), above, &paddle); v != -constants.PaddleSpeed {
		t.Errorf("Expected move up after the next interval, got %v", v)
	}
}

// TestAIEmptyPoolKeepsDecision verifies an empty pool leaves the previous decision in place
func TestAIEmptyPoolKeepsDecision(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ai := NewAIController(start)
	paddle := NewPaddle(SideRight)

	ai.Update(start.Add(200*time.Millisecond), poolWithBallAt(500), &paddle)
	if ai.Velocity() != constants.PaddleSpeed {
		t.Fatalf("Expected move down, got %v", ai.Velocity())
	}

	if v := ai.Update(start.Add(400*time.Millisecond), &BallPool{}, &paddle); v != constants.PaddleSpeed {
		t.Errorf("Expected decision retained with empty pool, got %v", v)
	}
}
