package eui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"measuredesk/chrome"
)

// Input is the pointer state sampled once per frame.
type Input struct {
	// Cursor is relative to the root surface, Origin is the root surface's
	// top-left corner on screen.
	Cursor  image.Point
	Origin  image.Point
	Pressed [3]bool
}

// Screen returns the cursor in screen coordinates.
func (in Input) Screen() image.Point { return in.Origin.Add(in.Cursor) }

// Target is a pointer-sensitive area in root coordinates. Bounds is read on
// every event so targets that move during a drag keep correct local
// coordinates.
type Target interface {
	Bounds() image.Rectangle
	chrome.PointerHandler
}

// Area is a Target with fixed bounds.
type Area struct {
	Rect    image.Rectangle
	Handler chrome.PointerHandler
}

func (a Area) Bounds() image.Rectangle            { return a.Rect }
func (a Area) PointerDown(ev chrome.PointerEvent) { a.Handler.PointerDown(ev) }
func (a Area) PointerMove(ev chrome.PointerEvent) { a.Handler.PointerMove(ev) }
func (a Area) PointerUp(ev chrome.PointerEvent)   { a.Handler.PointerUp(ev) }
func (a Area) Click(ev chrome.PointerEvent)       { a.Handler.Click(ev) }

// Router turns sampled input into pointer events. The target under a press
// captures the pointer until that button is released, so moves and the
// release reach it even when the cursor leaves its bounds. A primary press
// takes the pointer over from a capture held by another button.
type Router struct {
	prev       [3]bool
	captured   Target
	button     chrome.Button
	lastScreen image.Point

	// OnRelease runs after the primary button or the capturing button is
	// released, wherever that happens.
	OnRelease func()
}

// Captured returns the target holding the pointer, if any.
func (r *Router) Captured() Target { return r.captured }

// Step delivers the events implied by in. targets are ordered topmost
// first.
func (r *Router) Step(in Input, targets []Target) {
	screen := in.Screen()

	if r.captured != nil && screen != r.lastScreen {
		r.captured.PointerMove(r.event(in, r.captured, r.button))
	}

	for b := range in.Pressed {
		btn := chrome.Button(b)
		switch {
		case in.Pressed[b] && !r.prev[b]:
			if r.captured != nil && (r.button == chrome.ButtonPrimary || btn != chrome.ButtonPrimary) {
				continue
			}
			t := hit(in.Cursor, targets)
			if t == nil {
				continue
			}
			if r.captured != nil {
				r.captured.PointerUp(r.event(in, r.captured, r.button))
			}
			r.captured, r.button = t, btn
			t.PointerDown(r.event(in, t, btn))
		case !in.Pressed[b] && r.prev[b]:
			ended := r.captured != nil && r.button == btn
			if ended {
				t := r.captured
				r.captured = nil
				ev := r.event(in, t, btn)
				t.PointerUp(ev)
				if inside(in.Cursor, t.Bounds()) {
					t.Click(ev)
				}
			}
			if (ended || btn == chrome.ButtonPrimary) && r.OnRelease != nil {
				r.OnRelease()
			}
		}
	}

	r.prev = in.Pressed
	r.lastScreen = screen
}

func (r *Router) event(in Input, t Target, btn chrome.Button) chrome.PointerEvent {
	return chrome.PointerEvent{
		Local:  in.Cursor.Sub(t.Bounds().Min),
		Screen: in.Screen(),
		Button: btn,
	}
}

func hit(p image.Point, targets []Target) Target {
	for _, t := range targets {
		if inside(p, t.Bounds()) {
			return t
		}
	}
	return nil
}

// SampleInput reads the ebiten pointer state. A single touch acts as the
// primary button.
func SampleInput() Input {
	wx, wy := ebiten.WindowPosition()
	in := Input{Origin: image.Pt(wx, wy)}

	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) == 1 {
		x, y := ebiten.TouchPosition(ids[0])
		in.Cursor = image.Pt(x, y)
		in.Pressed[chrome.ButtonPrimary] = true
		return in
	}

	x, y := ebiten.CursorPosition()
	in.Cursor = image.Pt(x, y)
	in.Pressed[chrome.ButtonPrimary] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Pressed[chrome.ButtonSecondary] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.Pressed[chrome.ButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	return in
}
