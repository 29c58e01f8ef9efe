package eui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"measuredesk/chrome"
)

const (
	// MenuBarHeight is the height of the menu strip.
	MenuBarHeight = 24
	menuItemH     = 24
	menuPadX      = 10
	menuMinW      = 160
)

// MenuItem is one action in a dropdown.
type MenuItem struct {
	Label  string
	Action func()
}

// Menu is a top-level strip entry.
type Menu struct {
	Label string
	Items []MenuItem
}

// MenuBar is a strip of menus. Presses on the strip outside any label are
// handed to Drag, which hosts set to a chrome.Controller.Attach adapter so
// the strip moves the window like the title bar does.
type MenuBar struct {
	Menus []Menu
	Drag  chrome.PointerHandler

	rect   image.Rectangle
	open   int
	onDrag bool
}

// NewMenuBar returns a closed menu bar at r, in root coordinates.
func NewMenuBar(r image.Rectangle, menus ...Menu) *MenuBar {
	return &MenuBar{Menus: menus, rect: r, open: -1}
}

func (m *MenuBar) Rect() image.Rectangle     { return m.rect }
func (m *MenuBar) SetRect(r image.Rectangle) { m.rect = r }

// OpenMenu returns the index of the open dropdown, or -1.
func (m *MenuBar) OpenMenu() int { return m.open }

func (m *MenuBar) Close() { m.open = -1 }

// labelRects returns the strip labels relative to the strip.
func (m *MenuBar) labelRects() []image.Rectangle {
	face := textFace(FontSize)
	out := make([]image.Rectangle, len(m.Menus))
	x := 4
	for i, mn := range m.Menus {
		w := int(measureWidth(mn.Label, face)) + 2*menuPadX
		out[i] = image.Rect(x, 0, x+w, m.rect.Dy())
		x += w
	}
	return out
}

func (m *MenuBar) dropRect() image.Rectangle {
	if m.open < 0 || m.open >= len(m.Menus) {
		return image.Rectangle{}
	}
	face := textFace(FontSize)
	w := menuMinW
	for _, it := range m.Menus[m.open].Items {
		w = max(w, int(measureWidth(it.Label, face))+2*menuPadX)
	}
	lr := m.labelRects()[m.open].Add(m.rect.Min)
	return image.Rect(lr.Min.X, m.rect.Max.Y, lr.Min.X+w, m.rect.Max.Y+len(m.Menus[m.open].Items)*menuItemH)
}

// Contains reports whether p (root coordinates) is on the strip or the
// open dropdown.
func (m *MenuBar) Contains(p image.Point) bool {
	return inside(p, m.rect) || (m.open >= 0 && inside(p, m.dropRect()))
}

// Targets returns the dropdown (when open) and the strip.
func (m *MenuBar) Targets() []Target {
	if m.open >= 0 {
		return []Target{menuDrop{m}, menuStrip{m}}
	}
	return []Target{menuStrip{m}}
}

type menuStrip struct{ m *MenuBar }

func (s menuStrip) Bounds() image.Rectangle { return s.m.rect }

func (s menuStrip) label(p image.Point) int {
	for i, r := range s.m.labelRects() {
		if inside(p, r) {
			return i
		}
	}
	return -1
}

func (s menuStrip) PointerDown(ev chrome.PointerEvent) {
	s.m.onDrag = s.label(ev.Local) < 0
	if s.m.onDrag && s.m.Drag != nil {
		s.m.Close()
		s.m.Drag.PointerDown(ev)
	}
}

func (s menuStrip) PointerMove(ev chrome.PointerEvent) {
	if s.m.onDrag && s.m.Drag != nil {
		s.m.Drag.PointerMove(ev)
	}
}

func (s menuStrip) PointerUp(ev chrome.PointerEvent) {
	if s.m.onDrag && s.m.Drag != nil {
		s.m.Drag.PointerUp(ev)
	}
}

func (s menuStrip) Click(ev chrome.PointerEvent) {
	if s.m.onDrag {
		if s.m.Drag != nil {
			s.m.Drag.Click(ev)
		}
		return
	}
	i := s.label(ev.Local)
	if i < 0 || ev.Button != chrome.ButtonPrimary {
		return
	}
	if s.m.open == i {
		s.m.Close()
		return
	}
	s.m.open = i
}

type menuDrop struct{ m *MenuBar }

func (d menuDrop) Bounds() image.Rectangle        { return d.m.dropRect() }
func (d menuDrop) PointerDown(chrome.PointerEvent) {}
func (d menuDrop) PointerMove(chrome.PointerEvent) {}
func (d menuDrop) PointerUp(chrome.PointerEvent)   {}

func (d menuDrop) Click(ev chrome.PointerEvent) {
	if ev.Button != chrome.ButtonPrimary || d.m.open < 0 {
		return
	}
	items := d.m.Menus[d.m.open].Items
	i := ev.Local.Y / menuItemH
	if i < 0 || i >= len(items) {
		return
	}
	d.m.Close()
	if items[i].Action != nil {
		items[i].Action()
	}
}

// Draw renders the strip and the open dropdown. hover is the cursor in root
// coordinates.
func (m *MenuBar) Draw(dst *ebiten.Image, th *Theme, hover image.Point) {
	face := textFace(FontSize)
	fillRect(dst, m.rect, th.Menu)
	for i, r := range m.labelRects() {
		r = r.Add(m.rect.Min)
		if i == m.open || inside(hover, r) {
			fillRect(dst, r, th.MenuHover)
		}
		drawText(dst, m.Menus[i].Label, face, r, th.Text, chrome.AlignCenter)
	}
	if m.open < 0 {
		return
	}
	dr := m.dropRect()
	sh := dr.Add(image.Pt(2, 3))
	drawRoundRect(dst, &roundRect{Position: ptOf(sh.Min), Size: ptOf(sh.Size()), Fillet: 4, Color: th.Shadow, Filled: true})
	fillRect(dst, dr, th.Menu)
	for i, it := range m.Menus[m.open].Items {
		r := image.Rect(dr.Min.X, dr.Min.Y+i*menuItemH, dr.Max.X, dr.Min.Y+(i+1)*menuItemH)
		if inside(hover, r) && hover.Y < r.Max.Y {
			fillRect(dst, r, th.MenuHover)
		}
		drawText(dst, it.Label, face, r.Add(image.Pt(menuPadX-4, 0)), th.Text, chrome.AlignStart)
	}
}
