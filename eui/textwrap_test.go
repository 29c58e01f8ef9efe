package eui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestWrapTextPreservesSpaces(t *testing.T) {
	face := &text.GoTextFace{Size: 10}
	_, lines := wrapText("foo  bar", face, 1000)
	if len(lines) != 1 || lines[0] != "foo  bar" {
		t.Fatalf("lines = %q", lines)
	}
}

func TestWrapTextBreaksAtWords(t *testing.T) {
	// Each rune is 6 px wide with this face.
	face := &text.GoTextFace{Size: 10}
	width, lines := wrapText("alpha beta gamma", face, 66)
	want := []string{"alpha beta ", "gamma"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q want %q", i, lines[i], want[i])
		}
	}
	if width != 66 {
		t.Fatalf("width = %d want 66", width)
	}
}

func TestWrapTextSplitsLongWords(t *testing.T) {
	face := &text.GoTextFace{Size: 10}
	_, lines := wrapText("abcdefghij", face, 24)
	if len(lines) != 3 || lines[0] != "abcd" || lines[2] != "ij" {
		t.Fatalf("lines = %q", lines)
	}
}

func TestWrapTextKeepsBlankLines(t *testing.T) {
	face := &text.GoTextFace{Size: 10}
	_, lines := wrapText("a\n\nb", face, 100)
	if len(lines) != 3 || lines[1] != "" {
		t.Fatalf("lines = %q", lines)
	}
}
