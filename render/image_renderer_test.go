package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/lixenwraith/vi-tennis/engine"
)

func testSnapshot(playing bool) engine.Snapshot {
	m := engine.NewMatch(engine.NewRand(1))
	if playing {
		m.Start(engine.NewRand(1))
	}
	return m.Snapshot(1)
}

func TestImageRendererSize(t *testing.T) {
	r := NewImageRenderer(400)

	img := r.Render(testSnapshot(true))
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("Expected 400x300 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestImageRendererColors(t *testing.T) {
	r := NewImageRenderer(800)
	snap := testSnapshot(true)

	img := r.Render(snap)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"Background", 400, 100, RgbBackground.RGBA()},
		{"Left paddle", int(snap.LeftPaddle.X), int(snap.LeftPaddle.Y), RgbLeftPaddle.RGBA()},
		{"Right paddle", int(snap.RightPaddle.X), int(snap.RightPaddle.Y), RgbRightPaddle.RGBA()},
		{"Ball", int(snap.Balls[0].X), int(snap.Balls[0].Y), RgbBall.RGBA()},
	}

	for _, tt := range tests {
		got := color.RGBAModel.Convert(img.At(tt.x, tt.y)).(color.RGBA)
		if got != tt.want {
			t.Errorf("%s: expected %v at (%d,%d), got %v", tt.name, tt.want, tt.x, tt.y, got)
		}
	}
}

func TestImageRendererEncodePNG(t *testing.T) {
	r := NewImageRenderer(200)
	var buf bytes.Buffer

	if err := r.EncodePNG(&buf, testSnapshot(false)); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 150 {
		t.Errorf("Expected 200x150, got %v", img.Bounds())
	}
}
