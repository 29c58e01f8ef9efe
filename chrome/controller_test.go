package chrome

import (
	"image"
	"image/color"
	"testing"
)

type fakeWindow struct {
	pos    image.Point
	closed int
	moves  int
}

func (w *fakeWindow) Position() image.Point { return w.pos }
func (w *fakeWindow) SetPosition(p image.Point) {
	w.pos = p
	w.moves++
}
func (w *fakeWindow) Close() { w.closed++ }

func testIcon() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	img.Set(1, 1, color.White)
	return img
}

func newTestController(t *testing.T, win *fakeWindow, w, h int) *Controller {
	t.Helper()
	c, err := New(win, testIcon(), "Measurements", image.Pt(w, h))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRequiresIcon(t *testing.T) {
	if _, err := New(&fakeWindow{}, nil, "x", image.Pt(100, 100)); err != ErrIconMissing {
		t.Fatalf("err = %v want ErrIconMissing", err)
	}
}

func TestDragMovesWindowFromAnchors(t *testing.T) {
	win := &fakeWindow{pos: image.Pt(100, 200)}
	c := newTestController(t, win, 400, 300)

	c.PointerDown(PointerEvent{Local: image.Pt(50, 10), Screen: image.Pt(150, 210)})
	if c.State() != Dragging {
		t.Fatalf("state = %v want dragging", c.State())
	}

	// Many small moves followed by a jump back must land exactly.
	for i := 1; i <= 50; i++ {
		c.PointerMove(PointerEvent{Screen: image.Pt(150+i, 210-i)})
	}
	if want := image.Pt(150, 150); win.pos != want {
		t.Fatalf("pos = %v want %v", win.pos, want)
	}
	c.PointerMove(PointerEvent{Screen: image.Pt(140, 215)})
	if want := image.Pt(90, 205); win.pos != want {
		t.Fatalf("pos = %v want %v", win.pos, want)
	}
	c.PointerMove(PointerEvent{Screen: image.Pt(150, 210)})
	if want := image.Pt(100, 200); win.pos != want {
		t.Fatalf("drift: pos = %v want %v", win.pos, want)
	}
}

func TestMoveIgnoredWhenIdle(t *testing.T) {
	win := &fakeWindow{pos: image.Pt(10, 10)}
	c := newTestController(t, win, 400, 300)
	c.PointerMove(PointerEvent{Screen: image.Pt(500, 500)})
	if win.moves != 0 || win.pos != image.Pt(10, 10) {
		t.Fatalf("window moved while idle: %v", win.pos)
	}
}

func TestSecondaryButtonDoesNotDrag(t *testing.T) {
	win := &fakeWindow{}
	c := newTestController(t, win, 400, 300)
	c.PointerDown(PointerEvent{Screen: image.Pt(5, 5), Button: ButtonSecondary})
	c.PointerDown(PointerEvent{Screen: image.Pt(5, 5), Button: ButtonMiddle})
	if c.Dragging() {
		t.Fatalf("non-primary press started a drag")
	}
}

func TestDraggingTracksLastPressRelease(t *testing.T) {
	type step struct {
		down bool
		up   bool
		btn  Button
	}
	seqs := [][]step{
		{{down: true}},
		{{down: true}, {up: true}},
		{{up: true}},
		{{down: true}, {down: true}, {up: true}},
		{{down: true}, {up: true}, {down: true}},
		{{up: true}, {up: true}, {down: true}},
		{{down: true}, {down: true, btn: ButtonSecondary}},
	}
	for i, seq := range seqs {
		c := newTestController(t, &fakeWindow{}, 200, 200)
		want := false
		for j, s := range seq {
			p := image.Pt(j*37-20, j*11-5)
			switch {
			case s.down:
				c.PointerDown(PointerEvent{Local: p, Screen: p, Button: s.btn})
				if s.btn == ButtonPrimary {
					want = true
				}
			case s.up:
				c.PointerUp(PointerEvent{Local: p, Screen: p})
				want = false
			}
			c.PointerMove(PointerEvent{Local: p, Screen: p})
		}
		if c.Dragging() != want {
			t.Fatalf("seq %d: dragging = %v want %v", i, c.Dragging(), want)
		}
	}
}

func TestReleaseAnywhereEndsDrag(t *testing.T) {
	win := &fakeWindow{}
	c := newTestController(t, win, 200, 200)
	c.PointerDown(PointerEvent{Screen: image.Pt(10, 10)})
	c.Release()
	c.PointerMove(PointerEvent{Screen: image.Pt(90, 90)})
	if win.moves != 0 {
		t.Fatalf("moved after release")
	}
}

func TestClickCloseBox(t *testing.T) {
	for _, width := range []int{30, 31, 100, 800} {
		win := &fakeWindow{}
		c := newTestController(t, win, width, 200)
		closed := false
		c.OnClose = func() { closed = true }

		c.Click(PointerEvent{Local: image.Pt(width-31, 15)})
		if win.closed != 0 {
			t.Fatalf("width %d: click left of close box closed the window", width)
		}
		c.Click(PointerEvent{Local: image.Pt(width-15, 15), Button: ButtonSecondary})
		if win.closed != 0 {
			t.Fatalf("width %d: secondary click closed the window", width)
		}
		c.Click(PointerEvent{Local: image.Pt(width-15, 15)})
		if win.closed != 1 || !closed {
			t.Fatalf("width %d: close box click did not close", width)
		}
	}
}

func TestCloseBoxEdgesInclusive(t *testing.T) {
	c := newTestController(t, &fakeWindow{}, 300, 200)
	for _, p := range []image.Point{{270, 0}, {300, 0}, {270, 30}, {300, 30}} {
		if !c.HitClose(p) {
			t.Fatalf("%v not in close box", p)
		}
	}
	for _, p := range []image.Point{{269, 15}, {301, 15}, {285, 31}, {285, -1}} {
		if c.HitClose(p) {
			t.Fatalf("%v in close box", p)
		}
	}
}

func TestAttachTranslatesAndSharesDrag(t *testing.T) {
	win := &fakeWindow{pos: image.Pt(300, 300)}
	c := newTestController(t, win, 400, 300)
	header := c.Attach(image.Pt(0, TitleBarHeight))

	// Press on the header strip, move over the window surface.
	header.PointerDown(PointerEvent{Local: image.Pt(10, 5), Screen: image.Pt(310, 335)})
	c.PointerMove(PointerEvent{Local: image.Pt(20, 2), Screen: image.Pt(330, 345)})
	if want := image.Pt(320, 310); win.pos != want {
		t.Fatalf("pos = %v want %v", win.pos, want)
	}
	// And back over the header.
	header.PointerMove(PointerEvent{Local: image.Pt(0, 0), Screen: image.Pt(300, 330)})
	if want := image.Pt(290, 295); win.pos != want {
		t.Fatalf("pos = %v want %v", win.pos, want)
	}
	header.PointerUp(PointerEvent{})
	if c.Dragging() {
		t.Fatalf("header release did not end drag")
	}

	// A child placed under the close box forwards translated clicks.
	box := c.Attach(image.Pt(380, 0))
	box.Click(PointerEvent{Local: image.Pt(5, 5)})
	if win.closed != 1 {
		t.Fatalf("translated click missed close box")
	}
}

func TestResizeRecomputesRegion(t *testing.T) {
	c := newTestController(t, &fakeWindow{}, 200, 100)
	if got := c.Region().Bounds; got != image.Rect(0, 0, 200, 100) {
		t.Fatalf("region = %v", got)
	}
	c.Resize(image.Pt(640, 480))
	if got := c.Region().Bounds; got != image.Rect(0, 0, 640, 480) {
		t.Fatalf("region not recomputed: %v", got)
	}
	if c.Region().Diameter != DefaultCornerDiameter {
		t.Fatalf("diameter = %d", c.Region().Diameter)
	}
}
