package eui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// OSWindow is the borderless ebiten window seen as a chrome.Window.
type OSWindow struct {
	title  string
	closed bool
}

// NewOSWindow turns off the system decorations so the chrome can draw its
// own, and sizes the window.
func NewOSWindow(title string, size image.Point) *OSWindow {
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return &OSWindow{title: title}
}

func (w *OSWindow) Title() string { return w.title }

func (w *OSWindow) Position() image.Point {
	x, y := ebiten.WindowPosition()
	return image.Pt(x, y)
}

func (w *OSWindow) SetPosition(p image.Point) {
	ebiten.SetWindowPosition(p.X, p.Y)
}

// Close marks the window closed; the game loop ends on its next update.
func (w *OSWindow) Close() { w.closed = true }

func (w *OSWindow) Closed() bool { return w.closed }
