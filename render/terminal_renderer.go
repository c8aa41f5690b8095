package render

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/engine"
)

const (
	paddleRune = '█'
	ballRune   = '●'
)

// TerminalRenderer draws snapshots onto a tcell screen scaled to its current size
type TerminalRenderer struct {
	screen tcell.Screen

	background tcell.Style
	left       tcell.Style
	right      tcell.Style
	ball       tcell.Style
	text       tcell.Style
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	bg := tcell.StyleDefault.Background(RgbBackground.Tcell())
	return &TerminalRenderer{
		screen:     screen,
		background: bg,
		left:       bg.Foreground(RgbLeftPaddle.Tcell()),
		right:      bg.Foreground(RgbRightPaddle.Tcell()),
		ball:       bg.Foreground(RgbBall.Tcell()),
		text:       bg.Foreground(RgbText.Tcell()).Bold(true),
	}
}

// Viewport returns the field-to-cell mapping for the current screen size
func (r *TerminalRenderer) Viewport(snap engine.Snapshot) Viewport {
	cols, rows := r.screen.Size()
	return Viewport{Cols: cols, Rows: rows, FieldWidth: snap.Width, FieldHeight: snap.Height}
}

// RenderFrame draws the whole frame and shows it
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.SetStyle(r.background)
	r.screen.Clear()

	vp := r.Viewport(snap)
	if vp.Cols <= 0 || vp.Rows <= 0 || snap.Width <= 0 || snap.Height <= 0 {
		r.screen.Show()
		return
	}

	r.drawPaddle(vp, snap.LeftPaddle, r.left)
	r.drawPaddle(vp, snap.RightPaddle, r.right)
	for _, b := range snap.Balls {
		col, row := vp.Cell(b.X, b.Y)
		r.screen.SetContent(col, row, ballRune, nil, r.ball)
	}

	r.drawScores(vp, snap)
	if !snap.Playing && snap.Message != "" {
		r.drawMessage(vp, snap.Message)
	}

	r.screen.Show()
}

// Resize redraws from scratch after a terminal size change
func (r *TerminalRenderer) Resize() {
	r.screen.Sync()
}

func (r *TerminalRenderer) drawPaddle(vp Viewport, p engine.PaddleSnapshot, style tcell.Style) {
	if p.Height <= 0 || p.Width <= 0 {
		return
	}
	x0, y0, x1, y1 := vp.Span(p.X-p.Width/2, p.Y-p.Height/2, p.X+p.Width/2, p.Y+p.Height/2)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, paddleRune, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawScores(vp Viewport, snap engine.Snapshot) {
	left := ScoreLabel(engine.SideLeft, snap.LeftScore)
	right := ScoreLabel(engine.SideRight, snap.RightScore)

	r.drawText(1, 0, left, r.text)
	r.drawText(vp.Cols-1-runewidth.StringWidth(right), 0, right, r.text)
}

// drawMessage centers each line of msg on the grid
func (r *TerminalRenderer) drawMessage(vp Viewport, msg string) {
	lines := strings.Split(msg, "\n")
	top := (vp.Rows - len(lines)) / 2
	for i, line := range lines {
		x := (vp.Cols - runewidth.StringWidth(line)) / 2
		r.drawText(x, top+i, line, r.text)
	}
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// ScoreLabel formats a side's score label
func ScoreLabel(side engine.Side, score int) string {
	if side == engine.SideLeft {
		return constants.LeftScoreLabel + strconv.Itoa(score)
	}
	return constants.RightScoreLabel + strconv.Itoa(score)
}
