package eui

import (
	"image"
	"testing"
)

func TestInsideIsInclusive(t *testing.T) {
	r := image.Rect(10, 10, 20, 20)
	for _, p := range []image.Point{{10, 10}, {20, 20}, {15, 20}} {
		if !inside(p, r) {
			t.Fatalf("%v should be inside %v", p, r)
		}
	}
	if inside(image.Pt(21, 15), r) {
		t.Fatalf("21,15 should be outside")
	}
}

func TestPointAdd(t *testing.T) {
	got := pointAdd(ptOf(image.Pt(3, 4)), point{X: 0.5, Y: -1})
	if got != (point{X: 3.5, Y: 3}) {
		t.Fatalf("got %+v", got)
	}
}
