// Package chrome implements the custom window decoration shared by every
// measuredesk window: a painted title bar with icon, title and close box, a
// drag-to-move region and a rounded clip region. It does not talk to a
// toolkit; hosts feed it pointer events and execute the draw commands it
// returns.
package chrome

import (
	"image"
)

const (
	TitleBarHeight   = 30
	CloseButtonWidth = 30

	// DefaultCornerDiameter is the rounding applied to new windows.
	DefaultCornerDiameter = 20
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// State is the drag state of a controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Window is the host window the chrome decorates. Position is the window's
// top-left corner in screen coordinates.
type Window interface {
	Position() image.Point
	SetPosition(image.Point)
	Close()
}

// PointerEvent carries a pointer position both relative to the receiving
// surface and in screen coordinates.
type PointerEvent struct {
	Local  image.Point
	Screen image.Point
	Button Button
}

// PointerHandler is implemented by the controller and by the adapters
// returned from Attach.
type PointerHandler interface {
	PointerDown(PointerEvent)
	PointerMove(PointerEvent)
	PointerUp(PointerEvent)
	Click(PointerEvent)
}

// Controller owns the chrome state of one window.
type Controller struct {
	win   Window
	icon  image.Image
	title string

	size    image.Point
	palette Palette

	corner int
	region ClipRegion

	dragging     bool
	anchorScreen image.Point
	anchorWindow image.Point

	// OnClose, if set, runs before the window is closed through the close
	// box.
	OnClose func()
}

// New returns a controller for win. A nil icon is a configuration error:
// windows using the chrome must not start without their icon.
func New(win Window, icon image.Image, title string, size image.Point) (*Controller, error) {
	if icon == nil {
		return nil, ErrIconMissing
	}
	c := &Controller{
		win:     win,
		icon:    icon,
		title:   title,
		palette: DarkPalette,
		corner:  DefaultCornerDiameter,
	}
	c.Resize(size)
	return c, nil
}

func (c *Controller) Title() string         { return c.title }
func (c *Controller) SetTitle(title string) { c.title = title }
func (c *Controller) Icon() image.Image     { return c.icon }
func (c *Controller) Size() image.Point     { return c.size }
func (c *Controller) Palette() Palette      { return c.palette }

func (c *Controller) SetPalette(p Palette) { c.palette = p }

// SetCornerDiameter changes the rounding and recomputes the clip region.
func (c *Controller) SetCornerDiameter(d int) {
	c.corner = d
	c.region = ComputeClipRegion(c.size.X, c.size.Y, c.corner)
}

// Resize records the new window size and recomputes the clip region so the
// rounding follows the window.
func (c *Controller) Resize(size image.Point) {
	c.size = size
	c.region = ComputeClipRegion(size.X, size.Y, c.corner)
}

// Region returns the clip region for the current size.
func (c *Controller) Region() ClipRegion { return c.region }

func (c *Controller) State() State {
	if c.dragging {
		return Dragging
	}
	return Idle
}

func (c *Controller) Dragging() bool { return c.dragging }

// PointerDown starts a drag on the primary button.
func (c *Controller) PointerDown(ev PointerEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	c.dragging = true
	c.anchorScreen = ev.Screen
	c.anchorWindow = c.win.Position()
}

// PointerMove repositions the window while dragging. The new position is
// always computed from the anchors so repeated moves cannot drift.
func (c *Controller) PointerMove(ev PointerEvent) {
	if !c.dragging {
		return
	}
	c.win.SetPosition(c.anchorWindow.Add(ev.Screen.Sub(c.anchorScreen)))
}

// PointerUp ends any drag regardless of where the pointer is.
func (c *Controller) PointerUp(PointerEvent) {
	c.dragging = false
}

// Release is the window-level "released anywhere" hook.
func (c *Controller) Release() {
	c.dragging = false
}

// Click closes the window when the primary button lands on the close box.
func (c *Controller) Click(ev PointerEvent) {
	if ev.Button != ButtonPrimary || !c.HitClose(ev.Local) {
		return
	}
	if c.OnClose != nil {
		c.OnClose()
	}
	c.win.Close()
}

// HitClose reports whether p (window-local) is inside the close box. Both
// edges are inclusive.
func (c *Controller) HitClose(p image.Point) bool {
	w := c.size.X
	return p.X >= w-CloseButtonWidth && p.X <= w && p.Y >= 0 && p.Y <= TitleBarHeight
}

// HitTitleBar reports whether p (window-local) is inside the title bar.
func (c *Controller) HitTitleBar(p image.Point) bool {
	return p.X >= 0 && p.X <= c.size.X && p.Y >= 0 && p.Y <= TitleBarHeight
}

// Attach returns a handler for a child control placed at offset inside the
// window. Events it receives are translated into window coordinates and
// feed this controller, so a drag started on either surface continues on
// the other.
func (c *Controller) Attach(offset image.Point) PointerHandler {
	return &attached{c: c, offset: offset}
}

type attached struct {
	c      *Controller
	offset image.Point
}

func (a *attached) translate(ev PointerEvent) PointerEvent {
	ev.Local = ev.Local.Add(a.offset)
	return ev
}

func (a *attached) PointerDown(ev PointerEvent) { a.c.PointerDown(a.translate(ev)) }
func (a *attached) PointerMove(ev PointerEvent) { a.c.PointerMove(a.translate(ev)) }
func (a *attached) PointerUp(ev PointerEvent)   { a.c.PointerUp(a.translate(ev)) }
func (a *attached) Click(ev PointerEvent)       { a.c.Click(a.translate(ev)) }
