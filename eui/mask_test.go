package eui

import (
	"testing"

	"measuredesk/chrome"
)

func alphaAt(pix []byte, w, x, y int) byte {
	return pix[4*(y*w+x)+3]
}

func TestMaskPixelsRoundsCorners(t *testing.T) {
	reg := chrome.ComputeClipRegion(40, 30, 20)
	pix := maskPixels(reg)
	if len(pix) != 40*30*4 {
		t.Fatalf("len = %d", len(pix))
	}
	for _, c := range [][2]int{{0, 0}, {39, 0}, {0, 29}, {39, 29}} {
		if a := alphaAt(pix, 40, c[0], c[1]); a != 0 {
			t.Fatalf("corner %v alpha %d want 0", c, a)
		}
	}
	for _, c := range [][2]int{{20, 0}, {0, 15}, {20, 15}, {39, 15}} {
		if a := alphaAt(pix, 40, c[0], c[1]); a != 0xff {
			t.Fatalf("edge %v alpha %d want 255", c, a)
		}
	}
}

func TestMaskPixelsSquare(t *testing.T) {
	pix := maskPixels(chrome.ComputeClipRegion(3, 2, 0))
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xff {
			t.Fatalf("pixel %d transparent", i/4)
		}
	}
	if len(maskPixels(chrome.ComputeClipRegion(0, 10, 20))) != 0 {
		t.Fatalf("empty region produced pixels")
	}
}
