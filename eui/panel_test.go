package eui

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"measuredesk/chrome"
)

func testPanel(t *testing.T, content Content) *Panel {
	t.Helper()
	p, err := NewPanel(image.NewRGBA(image.Rect(0, 0, 16, 16)), "Prefs", image.Rect(50, 40, 350, 240), content)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPanelRequiresIcon(t *testing.T) {
	if _, err := NewPanel(nil, "x", image.Rect(0, 0, 10, 10), &recorderContent{}); err == nil {
		t.Fatalf("panel without icon created")
	}
}

type recorderContent struct {
	recorder
}

func (*recorderContent) Draw(*ebiten.Image, image.Rectangle, *Theme) {}

func TestPanelDragMovesRect(t *testing.T) {
	p := testPanel(t, &recorderContent{})
	var r Router

	r.Step(press(100, 50), p.Targets())
	r.Step(press(130, 70), p.Targets())
	r.Step(hover(130, 70), p.Targets())
	if p.Rect() != image.Rect(80, 60, 380, 260) {
		t.Fatalf("rect %v", p.Rect())
	}
	if p.Chrome().Dragging() {
		t.Fatalf("still dragging")
	}
}

func TestPanelCloseBoxAfterMove(t *testing.T) {
	p := testPanel(t, &recorderContent{})
	closed := 0
	p.OnClosed = func() { closed++ }
	p.SetPosition(image.Pt(0, 0))

	var r Router
	// Centre of the close box of a 300 px wide panel at the origin.
	r.Step(press(285, 15), p.Targets())
	r.Step(hover(285, 15), p.Targets())
	if p.IsOpen() || closed != 1 {
		t.Fatalf("open=%v closed=%d", p.IsOpen(), closed)
	}
	if p.Targets() != nil {
		t.Fatalf("closed panel still takes input")
	}
	p.Close()
	if closed != 1 {
		t.Fatalf("OnClosed ran twice")
	}
}

func TestPanelBodyEventsAreLocal(t *testing.T) {
	rc := &recorderContent{}
	p := testPanel(t, rc)
	var r Router

	r.Step(press(60, 80), p.Targets())
	r.Step(hover(60, 80), p.Targets())
	if len(rc.events) != 3 || rc.events[2] != "click" {
		t.Fatalf("events %v", rc.events)
	}
	want := image.Pt(10, 80-40-chrome.TitleBarHeight)
	if rc.last.Local != want {
		t.Fatalf("local %v want %v", rc.last.Local, want)
	}
}

func TestPanelResizeRecomputesRegion(t *testing.T) {
	p := testPanel(t, &recorderContent{})
	p.Resize(image.Pt(100, 60))
	reg := p.Chrome().Region()
	if reg.Bounds != image.Rect(0, 0, 100, 60) {
		t.Fatalf("region %v", reg.Bounds)
	}
	if p.BodyRect() != image.Rect(50, 70, 150, 100) {
		t.Fatalf("body %v", p.BodyRect())
	}
}
