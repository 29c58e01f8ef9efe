package eui

import (
	"image"
	"testing"

	"measuredesk/chrome"
)

func testMenuBar(ran *[]string) *MenuBar {
	act := func(name string) func() { return func() { *ran = append(*ran, name) } }
	return NewMenuBar(image.Rect(0, 30, 600, 30+MenuBarHeight),
		Menu{Label: "File", Items: []MenuItem{{Label: "Preferences", Action: act("prefs")}, {Label: "Log out", Action: act("logout")}}},
		Menu{Label: "Help", Items: []MenuItem{{Label: "Contents", Action: act("help")}}},
	)
}

func primary(p image.Point) chrome.PointerEvent {
	return chrome.PointerEvent{Local: p, Screen: p, Button: chrome.ButtonPrimary}
}

func TestMenuBarOpensAndRunsItem(t *testing.T) {
	var ran []string
	m := testMenuBar(&ran)
	var r Router

	help := m.labelRects()[1].Add(m.Rect().Min)
	at := help.Min.Add(image.Pt(3, 3))
	r.Step(press(at.X, at.Y), m.Targets())
	r.Step(hover(at.X, at.Y), m.Targets())
	if m.OpenMenu() != 1 {
		t.Fatalf("open = %d", m.OpenMenu())
	}

	drop := m.dropRect()
	if drop.Min.Y != m.Rect().Max.Y || drop.Dy() != menuItemH {
		t.Fatalf("dropdown %v", drop)
	}
	at = drop.Min.Add(image.Pt(5, 5))
	if !m.Contains(at) {
		t.Fatalf("dropdown not part of the menu")
	}
	r.Step(press(at.X, at.Y), m.Targets())
	r.Step(hover(at.X, at.Y), m.Targets())
	if len(ran) != 1 || ran[0] != "help" || m.OpenMenu() != -1 {
		t.Fatalf("ran %v open %d", ran, m.OpenMenu())
	}
}

func TestMenuBarSecondItemAndToggle(t *testing.T) {
	var ran []string
	m := testMenuBar(&ran)
	file := m.labelRects()[0]
	strip := menuStrip{m}

	strip.PointerDown(primary(file.Min.Add(image.Pt(1, 1))))
	strip.Click(primary(file.Min.Add(image.Pt(1, 1))))
	strip.PointerDown(primary(file.Min.Add(image.Pt(1, 1))))
	strip.Click(primary(file.Min.Add(image.Pt(1, 1))))
	if m.OpenMenu() != -1 {
		t.Fatalf("second click should close the menu")
	}

	strip.PointerDown(primary(file.Min.Add(image.Pt(1, 1))))
	strip.Click(primary(file.Min.Add(image.Pt(1, 1))))
	menuDrop{m}.Click(primary(image.Pt(4, menuItemH+4)))
	if len(ran) != 1 || ran[0] != "logout" {
		t.Fatalf("ran %v", ran)
	}
}

func TestMenuBarEmptyStripDragsWindow(t *testing.T) {
	win := &fakeWindow{pos: image.Pt(100, 100)}
	c, err := chrome.New(win, image.NewRGBA(image.Rect(0, 0, 1, 1)), "main", image.Pt(600, 400))
	if err != nil {
		t.Fatal(err)
	}
	var ran []string
	m := testMenuBar(&ran)
	m.Drag = c.Attach(m.Rect().Min)

	title := Area{Rect: image.Rect(0, 0, 600, chrome.TitleBarHeight), Handler: c}
	targets := append(m.Targets(), title)
	var r Router

	// Start on the empty part of the strip and finish over the title bar.
	r.Step(press(500, 40), targets)
	if !c.Dragging() {
		t.Fatalf("strip press did not start a drag")
	}
	r.Step(press(520, 10), targets)
	if win.pos != image.Pt(120, 70) {
		t.Fatalf("window at %v", win.pos)
	}
	r.Step(hover(520, 10), targets)
	if c.Dragging() || win.closed {
		t.Fatalf("dragging=%v closed=%v", c.Dragging(), win.closed)
	}
	if len(ran) != 0 || m.OpenMenu() != -1 {
		t.Fatalf("menu reacted to a drag")
	}
}
