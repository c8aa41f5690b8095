package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tennis/engine"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, row, cols int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		ch, _, _, _ := s.GetContent(x, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestViewportMapping(t *testing.T) {
	vp := Viewport{Cols: 80, Rows: 30, FieldWidth: 800, FieldHeight: 600}

	tests := []struct {
		x, y             float64
		wantCol, wantRow int
	}{
		{0, 0, 0, 0},
		{400, 300, 40, 15},
		{799.9, 599.9, 79, 29},
		{-10, 1000, 0, 29},
	}
	for _, tt := range tests {
		col, row := vp.Cell(tt.x, tt.y)
		if col != tt.wantCol || row != tt.wantRow {
			t.Errorf("Cell(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, col, row, tt.wantCol, tt.wantRow)
		}
	}

	x0, y0, x1, y1 := vp.Span(10, 250, 35, 350)
	if x0 != 1 || x1 != 3 || y0 != 12 || y1 != 17 {
		t.Errorf("Span = (%d,%d)-(%d,%d), want (1,12)-(3,17)", x0, y0, x1, y1)
	}

	// Thin rectangles still occupy one cell
	x0, _, x1, _ = vp.Span(401, 0, 402, 10)
	if x0 != x1 {
		t.Errorf("Expected a single column for a thin rect, got %d..%d", x0, x1)
	}
}

func TestTerminalRendererDrawsField(t *testing.T) {
	s := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(s)
	snap := testSnapshot(true)

	r.RenderFrame(snap)

	vp := r.Viewport(snap)
	col, row := vp.Cell(snap.LeftPaddle.X, snap.LeftPaddle.Y)
	ch, _, style, _ := s.GetContent(col, row)
	fg, bg, _ := style.Decompose()
	if ch != paddleRune || fg != RgbLeftPaddle.Tcell() || bg != RgbBackground.Tcell() {
		t.Errorf("Expected left paddle cell, got %q fg=%v bg=%v", ch, fg, bg)
	}

	col, row = vp.Cell(snap.RightPaddle.X, snap.RightPaddle.Y)
	if ch, _, style, _ := s.GetContent(col, row); ch != paddleRune {
		t.Errorf("Expected right paddle cell, got %q", ch)
	} else if fg, _, _ := style.Decompose(); fg != RgbRightPaddle.Tcell() {
		t.Errorf("Expected right paddle color, got %v", fg)
	}

	col, row = vp.Cell(snap.Balls[0].X, snap.Balls[0].Y)
	if ch, _, _, _ := s.GetContent(col, row); ch != ballRune {
		t.Errorf("Expected ball at (%d,%d), got %q", col, row, ch)
	}

	top := rowText(s, 0, 80)
	if !strings.Contains(top, "Left Player: 0") || !strings.Contains(top, "Right Player: 0") {
		t.Errorf("Expected score labels on top row, got %q", top)
	}
	if !strings.HasSuffix(top, " ") {
		t.Errorf("Expected right label to leave a margin, got %q", top)
	}
}

func TestTerminalRendererMessage(t *testing.T) {
	s := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(s)

	r.RenderFrame(testSnapshot(false))

	found := false
	for row := 0; row < 30; row++ {
		if strings.Contains(rowText(s, row, 80), "Press space to start the game.") {
			found = true
		}
	}
	if !found {
		t.Error("Expected welcome message while paused")
	}
}

func TestTerminalRendererHidesMessageWhilePlaying(t *testing.T) {
	s := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(s)
	snap := testSnapshot(true)
	snap.Message = "stale"

	r.RenderFrame(snap)

	for row := 0; row < 30; row++ {
		if strings.Contains(rowText(s, row, 80), "stale") {
			t.Fatal("Expected no message while playing")
		}
	}
}

func TestTerminalRendererShrunkPaddle(t *testing.T) {
	s := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(s)
	snap := testSnapshot(true)
	snap.LeftPaddle.Height = 0

	r.RenderFrame(snap)

	for row := 1; row < 30; row++ {
		for col := 0; col < 8; col++ {
			if ch, _, _, _ := s.GetContent(col, row); ch == paddleRune {
				t.Fatalf("Expected zero-height paddle hidden, found cell at (%d,%d)", col, row)
			}
		}
	}
}

func TestScoreLabel(t *testing.T) {
	if got := ScoreLabel(engine.SideLeft, 7); got != "Left Player: 7" {
		t.Errorf("Unexpected left label %q", got)
	}
	if got := ScoreLabel(engine.SideRight, 10); got != "Right Player: 10" {
		t.Errorf("Unexpected right label %q", got)
	}
}
