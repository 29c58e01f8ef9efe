// Package eui is the ebiten toolkit behind measuredesk windows: it executes
// chrome draw commands, routes pointer input to chrome controllers and
// widgets, and provides panels, forms, menus and tab views.
package eui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"measuredesk/chrome"
)

// Content is what a panel shows under its title bar. Pointer events arrive
// relative to the body's top-left corner.
type Content interface {
	chrome.PointerHandler
	Draw(dst *ebiten.Image, area image.Rectangle, th *Theme)
}

// Panel is an in-app window decorated by its own chrome controller. It
// implements chrome.Window by moving its rectangle inside the root surface.
type Panel struct {
	rect    image.Rectangle
	chrome  *chrome.Controller
	content Content
	open    bool

	mask   RoundedMask
	canvas *ebiten.Image
	masked *ebiten.Image

	// OnClosed runs once when the panel closes.
	OnClosed func()
}

// NewPanel creates an open panel at r, in root coordinates.
func NewPanel(icon image.Image, title string, r image.Rectangle, content Content) (*Panel, error) {
	p := &Panel{rect: r.Canon(), content: content, open: true}
	c, err := chrome.New(p, icon, title, p.rect.Size())
	if err != nil {
		return nil, err
	}
	p.chrome = c
	return p, nil
}

func (p *Panel) Chrome() *chrome.Controller { return p.chrome }
func (p *Panel) Content() Content           { return p.content }
func (p *Panel) Rect() image.Rectangle      { return p.rect }
func (p *Panel) Title() string              { return p.chrome.Title() }
func (p *Panel) IsOpen() bool               { return p.open }

func (p *Panel) Position() image.Point { return p.rect.Min }

func (p *Panel) SetPosition(pt image.Point) {
	p.rect = p.rect.Add(pt.Sub(p.rect.Min))
}

// Close hides the panel. Closing twice is a no-op.
func (p *Panel) Close() {
	if !p.open {
		return
	}
	p.open = false
	p.chrome.Release()
	if p.OnClosed != nil {
		p.OnClosed()
	}
}

// Resize changes the panel size and the chrome's clip region with it.
func (p *Panel) Resize(size image.Point) {
	p.rect.Max = p.rect.Min.Add(size)
	p.chrome.Resize(size)
}

// BodyRect is the area below the title bar, in root coordinates.
func (p *Panel) BodyRect() image.Rectangle {
	b := p.rect
	b.Min.Y = min(b.Min.Y+chrome.TitleBarHeight, b.Max.Y)
	return b
}

func (p *Panel) barRect() image.Rectangle {
	b := p.rect
	b.Max.Y = min(b.Min.Y+chrome.TitleBarHeight, b.Max.Y)
	return b
}

// Targets returns the pointer targets of an open panel, topmost first.
func (p *Panel) Targets() []Target {
	if !p.open {
		return nil
	}
	return []Target{panelBar{p}, panelBody{p}}
}

type panelBar struct{ p *Panel }

func (b panelBar) Bounds() image.Rectangle            { return b.p.barRect() }
func (b panelBar) PointerDown(ev chrome.PointerEvent) { b.p.chrome.PointerDown(ev) }
func (b panelBar) PointerMove(ev chrome.PointerEvent) { b.p.chrome.PointerMove(ev) }
func (b panelBar) PointerUp(ev chrome.PointerEvent)   { b.p.chrome.PointerUp(ev) }
func (b panelBar) Click(ev chrome.PointerEvent)       { b.p.chrome.Click(ev) }

type panelBody struct{ p *Panel }

func (b panelBody) Bounds() image.Rectangle            { return b.p.BodyRect() }
func (b panelBody) PointerDown(ev chrome.PointerEvent) { b.p.content.PointerDown(ev) }
func (b panelBody) PointerMove(ev chrome.PointerEvent) { b.p.content.PointerMove(ev) }
func (b panelBody) PointerUp(ev chrome.PointerEvent)   { b.p.content.PointerUp(ev) }
func (b panelBody) Click(ev chrome.PointerEvent)       { b.p.content.Click(ev) }

// HandleKeys forwards keyboard input to contents that accept it.
func (p *Panel) HandleKeys(k Keys) {
	if !p.open {
		return
	}
	if kh, ok := p.content.(KeyHandler); ok {
		kh.HandleKeys(k)
	}
}

// Draw paints the panel clipped to its rounded region.
func (p *Panel) Draw(dst *ebiten.Image, th *Theme) {
	if !p.open || p.rect.Empty() {
		return
	}
	size := p.rect.Size()
	if p.canvas == nil || p.canvas.Bounds().Size() != size {
		if p.canvas != nil {
			p.canvas.Deallocate()
			p.masked.Deallocate()
		}
		p.canvas = ebiten.NewImage(size.X, size.Y)
		p.masked = ebiten.NewImage(size.X, size.Y)
	}
	p.mask.Set(p.chrome.Region())

	p.canvas.Fill(th.Background)
	p.chrome.SetPalette(th.Chrome)
	DrawChrome(p.canvas, p.chrome.Paint(), image.Point{})
	body := image.Rectangle{Min: image.Pt(0, chrome.TitleBarHeight), Max: size}
	if !body.Empty() {
		p.content.Draw(p.canvas, body, th)
	}
	p.mask.Composite(p.masked, p.canvas)

	sh := p.rect.Add(image.Pt(3, 4))
	drawRoundRect(dst, &roundRect{Position: ptOf(sh.Min), Size: ptOf(sh.Size()),
		Fillet: float32(p.chrome.Region().Radius()), Color: th.Shadow, Filled: true})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.rect.Min.X), float64(p.rect.Min.Y))
	dst.DrawImage(p.masked, op)
}
