package eui

import (
	"image"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/time/rate"

	"measuredesk/chrome"
)

const (
	tabStripH  = 28
	tabPadX    = 12
	lineHeight = 18
	wheelLines = 3
)

// Tab is one page of a TabView.
type Tab struct {
	Title string
	Text  string
}

// TabView shows titled pages of wrapped, scrollable text.
type TabView struct {
	tabs   []Tab
	active int
	scroll int

	size  image.Point
	face  text.Face
	lines []string
	wrapW int

	wheel *rate.Limiter

	// OnLink runs when a line holding only a URL is clicked.
	OnLink func(url string)
}

// NewTabView returns a view showing the first tab.
func NewTabView(tabs []Tab) *TabView {
	return &TabView{
		tabs:  tabs,
		face:  textFace(FontSize),
		wrapW: -1,
		wheel: rate.NewLimiter(rate.Every(50*time.Millisecond), 2),
	}
}

func (v *TabView) Tabs() []Tab     { return v.tabs }
func (v *TabView) Active() int     { return v.active }
func (v *TabView) Scroll() int     { return v.scroll }
func (v *TabView) Lines() []string { return v.lines }

// SetTabs replaces the pages, keeping the selection when its title is still
// present.
func (v *TabView) SetTabs(tabs []Tab) {
	title := ""
	if v.active < len(v.tabs) {
		title = v.tabs[v.active].Title
	}
	v.tabs = tabs
	v.active = 0
	for i, t := range tabs {
		if t.Title == title {
			v.active = i
		}
	}
	v.wrapW = -1
	v.rewrap()
}

// Select shows tab i and scrolls to its top.
func (v *TabView) Select(i int) {
	if i < 0 || i >= len(v.tabs) {
		return
	}
	v.active = i
	v.scroll = 0
	v.wrapW = -1
	v.rewrap()
}

// SetSize lays the view out for a body of size.
func (v *TabView) SetSize(size image.Point) {
	v.size = size
	v.rewrap()
}

func (v *TabView) textRect() image.Rectangle {
	return image.Rect(tabPadX, tabStripH+6, max(v.size.X-tabPadX, tabPadX), max(v.size.Y-6, tabStripH+6))
}

func (v *TabView) rewrap() {
	w := v.textRect().Dx()
	if w == v.wrapW {
		return
	}
	v.wrapW = w
	v.lines = nil
	if v.active < len(v.tabs) && w > 0 {
		_, v.lines = wrapText(v.tabs[v.active].Text, v.face, float64(w))
	}
	v.clampScroll()
}

func (v *TabView) visibleLines() int {
	return max(v.textRect().Dy()/lineHeight, 1)
}

func (v *TabView) clampScroll() {
	v.scroll = min(v.scroll, max(len(v.lines)-v.visibleLines(), 0))
	v.scroll = max(v.scroll, 0)
}

// HandleWheel scrolls by wheel notches. Bursts from free-spinning wheels
// and touchpads are thinned out by a rate limiter.
func (v *TabView) HandleWheel(dy float64) {
	if dy == 0 || !v.wheel.Allow() {
		return
	}
	if dy > 0 {
		v.scroll -= wheelLines
	} else {
		v.scroll += wheelLines
	}
	v.clampScroll()
}

// tabRects returns the strip buttons relative to the body.
func (v *TabView) tabRects() []image.Rectangle {
	out := make([]image.Rectangle, len(v.tabs))
	x := tabPadX
	for i, t := range v.tabs {
		w := int(measureWidth(t.Title, v.face)) + 2*tabPadX
		out[i] = image.Rect(x, 2, x+w, tabStripH)
		x += w + 2
	}
	return out
}

func (v *TabView) PointerDown(chrome.PointerEvent) {}
func (v *TabView) PointerMove(chrome.PointerEvent) {}
func (v *TabView) PointerUp(chrome.PointerEvent)   {}

// Click selects a tab or follows a link line.
func (v *TabView) Click(ev chrome.PointerEvent) {
	if ev.Button != chrome.ButtonPrimary {
		return
	}
	for i, r := range v.tabRects() {
		if inside(ev.Local, r) {
			v.Select(i)
			return
		}
	}
	tr := v.textRect()
	if !inside(ev.Local, tr) {
		return
	}
	idx := v.scroll + (ev.Local.Y-tr.Min.Y)/lineHeight
	if idx < 0 || idx >= len(v.lines) {
		return
	}
	if url := linkOf(v.lines[idx]); url != "" && v.OnLink != nil {
		v.OnLink(url)
	}
}

func linkOf(line string) string {
	s := strings.TrimSpace(line)
	if strings.ContainsAny(s, " \t") {
		return ""
	}
	if strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
		return s
	}
	return ""
}

// HandleKeys copies the shown tab on Ctrl+C.
func (v *TabView) HandleKeys(k Keys) {
	if k.Copy && v.active < len(v.tabs) {
		clipboardWrite(v.tabs[v.active].Text)
	}
}

// Draw renders the tab strip and the visible lines into area.
func (v *TabView) Draw(dst *ebiten.Image, area image.Rectangle, th *Theme) {
	if area.Size() != v.size {
		v.SetSize(area.Size())
	}
	o := area.Min
	fillRect(dst, image.Rect(o.X, o.Y+tabStripH, area.Max.X, o.Y+tabStripH+1), th.FieldBorder)
	for i, r := range v.tabRects() {
		r = r.Add(o)
		bg, fg := th.Menu, th.Muted
		if i == v.active {
			bg, fg = th.Field, th.Text
		}
		drawRoundRect(dst, &roundRect{Position: ptOf(r.Min), Size: ptOf(r.Size()), Fillet: 4, Color: bg, Filled: true})
		drawText(dst, v.tabs[i].Title, v.face, r, fg, chrome.AlignCenter)
	}

	tr := v.textRect().Add(o)
	n := v.visibleLines()
	for i := 0; i < n && v.scroll+i < len(v.lines); i++ {
		line := v.lines[v.scroll+i]
		col := th.Text
		if linkOf(line) != "" {
			col = th.Accent
		}
		y := tr.Min.Y + i*lineHeight
		drawText(dst, line, v.face, image.Rect(tr.Min.X-4, y, tr.Max.X, y+lineHeight), col, chrome.AlignStart)
	}
	if len(v.lines) > n {
		frac := float32(n) / float32(len(v.lines))
		h := float32(tr.Dy()) * frac
		y := float32(tr.Min.Y) + float32(tr.Dy())*float32(v.scroll)/float32(len(v.lines))
		drawRoundRect(dst, &roundRect{Position: point{X: float32(area.Max.X - 6), Y: y},
			Size: point{X: 4, Y: h}, Fillet: 2, Color: th.Muted, Filled: true})
	}
}

// WheelDelta returns the mouse wheel movement of this frame.
func WheelDelta() float64 {
	_, dy := ebiten.Wheel()
	return dy
}
