package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tennis/constants"
)

// RGB is a 24-bit color shared by the terminal and image renderers
type RGB struct {
	R, G, B uint8
}

func rgbFrom(c [3]int32) RGB {
	return RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}
}

// Tcell converts to a true-color terminal color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RGBA converts to an opaque image color
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Game palette
var (
	RgbBackground  = rgbFrom(constants.BackgroundRGB)
	RgbLeftPaddle  = rgbFrom(constants.LeftPaddleRGB)
	RgbRightPaddle = rgbFrom(constants.RightPaddleRGB)
	RgbBall        = rgbFrom(constants.BallRGB)
	RgbText        = rgbFrom(constants.TextRGB)
)
