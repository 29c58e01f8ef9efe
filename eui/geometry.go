package eui

import "image"

// point is a position or size in UI pixels.
type point struct {
	X, Y float32
}

func ptOf(p image.Point) point { return point{X: float32(p.X), Y: float32(p.Y)} }

func pointAdd(a, b point) point { return point{X: a.X + b.X, Y: a.Y + b.Y} }

// inside reports whether p lies in r with r's max edges inclusive, matching
// how the chrome hit tests its boxes.
func inside(p image.Point, r image.Rectangle) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
