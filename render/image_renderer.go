package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/vi-tennis/engine"
)

// ImageRenderer rasterizes snapshots for spectators. Output keeps the
// field's aspect ratio; Width sets the scale.
type ImageRenderer struct {
	Width int
}

// NewImageRenderer creates a renderer producing images width pixels wide
func NewImageRenderer(width int) *ImageRenderer {
	if width <= 0 {
		width = 800
	}
	return &ImageRenderer{Width: width}
}

// Size returns the pixel dimensions for snap
func (r *ImageRenderer) Size(snap engine.Snapshot) (int, int) {
	if snap.Width <= 0 || snap.Height <= 0 {
		return r.Width, r.Width * 3 / 4
	}
	return r.Width, int(float64(r.Width) * snap.Height / snap.Width)
}

// Render draws snap into a new image
func (r *ImageRenderer) Render(snap engine.Snapshot) image.Image {
	return r.draw(snap).Image()
}

// EncodePNG renders snap and writes it to w as PNG
func (r *ImageRenderer) EncodePNG(w io.Writer, snap engine.Snapshot) error {
	return r.draw(snap).EncodePNG(w)
}

func (r *ImageRenderer) draw(snap engine.Snapshot) *gg.Context {
	w, h := r.Size(snap)
	dc := gg.NewContext(w, h)

	dc.SetColor(RgbBackground.RGBA())
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	if snap.Width <= 0 {
		return dc
	}
	scale := float64(w) / snap.Width
	dc.Scale(scale, scale)

	drawPaddle(dc, snap.LeftPaddle, RgbLeftPaddle)
	drawPaddle(dc, snap.RightPaddle, RgbRightPaddle)

	dc.SetColor(RgbBall.RGBA())
	for _, b := range snap.Balls {
		dc.DrawCircle(b.X, b.Y, b.Radius)
		dc.Fill()
	}

	dc.SetColor(RgbText.RGBA())
	dc.DrawString(ScoreLabel(engine.SideLeft, snap.LeftScore), 10, 20)
	dc.DrawStringAnchored(ScoreLabel(engine.SideRight, snap.RightScore), snap.Width-10, 20, 1, 0)

	if !snap.Playing && snap.Message != "" {
		dc.DrawStringWrapped(snap.Message, snap.Width/2, snap.Height/2, 0.5, 0.5, snap.Width*0.8, 1.5, gg.AlignCenter)
	}
	return dc
}

func drawPaddle(dc *gg.Context, p engine.PaddleSnapshot, c RGB) {
	if p.Height <= 0 {
		return
	}
	dc.SetColor(c.RGBA())
	dc.DrawRectangle(p.X-p.Width/2, p.Y-p.Height/2, p.Width, p.Height)
	dc.Fill()
}
