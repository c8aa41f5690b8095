package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in field units
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2FromAngle returns the unit vector pointing along angle (radians, y down)
func V2FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Rect is an axis-aligned rectangle described by its center and full size
type Rect struct {
	Center Vec2
	Size   Vec2
}

func (r Rect) Left() float64   { return r.Center.X - r.Size.X/2 }
func (r Rect) Right() float64  { return r.Center.X + r.Size.X/2 }
func (r Rect) Top() float64    { return r.Center.Y - r.Size.Y/2 }
func (r Rect) Bottom() float64 { return r.Center.Y + r.Size.Y/2 }

// Circle is a disc described by center and radius
type Circle struct {
	Center Vec2
	Radius float64
}

// Degrees converts whole degrees to radians
func Degrees(deg int) float64 {
	return float64(deg) * math.Pi / 180
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
