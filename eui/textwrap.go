package eui

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// measureWidth measures s with face. A GoTextFace without a source is
// approximated so layout works before fonts are loaded.
func measureWidth(s string, face text.Face) float64 {
	if gf, ok := face.(*text.GoTextFace); ok && gf.Source == nil {
		return float64(len([]rune(s))) * (gf.Size * 0.6)
	}
	w, _ := text.Measure(s, face, 0)
	return w
}

// wrapText splits s into lines no wider than maxWidth. Words stay intact
// when they fit; longer words are broken between runes. Runs of spaces are
// preserved.
func wrapText(s string, face text.Face, maxWidth float64) (int, []string) {
	var (
		lines   []string
		maxUsed float64
	)
	for _, para := range strings.Split(s, "\n") {
		var builder strings.Builder
		curWidth := 0.0
		flush := func() {
			maxUsed = max(maxUsed, curWidth)
			lines = append(lines, builder.String())
			builder.Reset()
			curWidth = 0
		}
		for _, tok := range strings.SplitAfter(para, " ") {
			if tok == "" {
				continue
			}
			w := measureWidth(tok, face)
			if curWidth+w <= maxWidth {
				builder.WriteString(tok)
				curWidth += w
				continue
			}
			if builder.Len() > 0 {
				flush()
			}
			if w <= maxWidth {
				builder.WriteString(tok)
				curWidth = w
				continue
			}
			for _, r := range tok {
				rw := measureWidth(string(r), face)
				if curWidth+rw > maxWidth && builder.Len() > 0 {
					flush()
				}
				builder.WriteRune(r)
				curWidth += rw
			}
		}
		flush()
	}
	return int(math.Ceil(maxUsed)), lines
}
