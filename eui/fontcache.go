package eui

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// FontSize is the default UI text size.
	FontSize  = 14
	titleSize = 13
)

var (
	fontOnce      sync.Once
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource

	faceCache     = map[float64]*text.GoTextFace{}
	boldFaceCache = map[float64]*text.GoTextFace{}
)

func loadFonts() {
	fontOnce.Do(func() {
		var err error
		if regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
			log.Printf("load regular font: %v", err)
		}
		if boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
			log.Printf("load bold font: %v", err)
		}
	})
}

func textFace(size float64) *text.GoTextFace {
	loadFonts()
	if regularSource == nil {
		return &text.GoTextFace{Size: size}
	}
	if f, ok := faceCache[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: regularSource, Size: size}
	faceCache[size] = f
	return f
}

func boldFace(size float64) *text.GoTextFace {
	loadFonts()
	if boldSource == nil {
		return textFace(size)
	}
	if f, ok := boldFaceCache[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: boldSource, Size: size}
	boldFaceCache[size] = f
	return f
}
