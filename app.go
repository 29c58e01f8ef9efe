package main

import (
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"measuredesk/axisprefs"
	"measuredesk/chrome"
	"measuredesk/eui"
	"measuredesk/internal/config"
	"measuredesk/internal/lifecycle"
)

// app is the main window: a borderless ebiten window decorated by the
// chrome controller, with a menu strip, the chart and in-app panels.
type app struct {
	cfg     config.Config
	theme   *eui.Theme
	icon    image.Image
	started time.Time

	win    *eui.OSWindow
	chrome *chrome.Controller
	menu   *eui.MenuBar
	router eui.Router
	ui     eui.Dispatcher

	reg      *lifecycle.Registry
	relaunch lifecycle.Relauncher

	editor axisprefs.Editor
	prefs  axisprefs.AxisPreferences
	chart  *chartView

	panels     []*eui.Panel
	prefsPanel *eui.Panel
	helpPanel  *eui.Panel
	help       *eui.TabView

	size   image.Point
	cursor image.Point
	canvas *ebiten.Image
	mask   eui.RoundedMask

	// bg tracks work that must finish before the process exits.
	bg       sync.WaitGroup
	quitting bool
}

func newApp(cfg config.Config, icon image.Image) (*app, error) {
	size := image.Pt(cfg.UI.Width, cfg.UI.Height)
	a := &app{
		cfg:     cfg,
		theme:   eui.SelectTheme(cfg.UI.Theme),
		icon:    icon,
		started: time.Now(),
		reg:     &lifecycle.Registry{},
		prefs:   axisprefs.Default(),
		chart:   newChartView(demoSeries()),
		size:    size,
	}
	if cfg.Prefs.StrictBounds {
		a.editor.Policy = axisprefs.Strict
	}

	a.win = eui.NewOSWindow(cfg.UI.Title, size)
	c, err := chrome.New(a.win, icon, cfg.UI.Title, size)
	if err != nil {
		return nil, err
	}
	c.SetCornerDiameter(cfg.UI.CornerDiameter)
	c.SetPalette(a.theme.Chrome)
	a.chrome = c
	a.reg.Register(a.win, &a.ui)

	a.menu = eui.NewMenuBar(a.menuRect(), a.menus()...)
	a.menu.Drag = a.chrome.Attach(a.menu.Rect().Min)
	a.router.OnRelease = a.releaseAll

	logDebug("main window %dx%d theme=%s policy=%s", size.X, size.Y, a.theme.Name, a.editor.Policy)
	return a, nil
}

func (a *app) menuRect() image.Rectangle {
	return image.Rect(0, chrome.TitleBarHeight, a.size.X, chrome.TitleBarHeight+eui.MenuBarHeight)
}

func (a *app) chartRect() image.Rectangle {
	return image.Rect(0, chrome.TitleBarHeight+eui.MenuBarHeight, a.size.X, a.size.Y)
}

// releaseAll is the window-level release hook: no drag survives a button
// release, wherever it happened.
func (a *app) releaseAll() {
	a.chrome.Release()
	for _, p := range a.panels {
		p.Chrome().Release()
	}
}

// targets lists pointer targets topmost first: panels, newest on top, then
// the menu and finally the title bar.
func (a *app) targets() []eui.Target {
	var out []eui.Target
	if a.menu.OpenMenu() >= 0 {
		out = append(out, a.menu.Targets()...)
	}
	for i := len(a.panels) - 1; i >= 0; i-- {
		out = append(out, a.panels[i].Targets()...)
	}
	if a.menu.OpenMenu() < 0 {
		out = append(out, a.menu.Targets()...)
	}
	out = append(out, eui.Area{Rect: image.Rect(0, 0, a.size.X, chrome.TitleBarHeight), Handler: a.chrome})
	return out
}

func (a *app) addPanel(p *eui.Panel) {
	p.Chrome().SetCornerDiameter(a.cfg.UI.CornerDiameter)
	a.panels = append(a.panels, p)
}

// raise moves p to the top of the stack.
func (a *app) raise(p *eui.Panel) {
	for i, q := range a.panels {
		if q == p {
			a.panels = append(append(a.panels[:i:i], a.panels[i+1:]...), p)
			return
		}
	}
}

func (a *app) prunePanels() {
	open := a.panels[:0]
	for _, p := range a.panels {
		if p.IsOpen() {
			open = append(open, p)
		}
	}
	clear(a.panels[len(open):])
	a.panels = open
}

// centered returns a rectangle of size centred in the chart area.
func (a *app) centered(size image.Point) image.Rectangle {
	area := a.chartRect()
	pos := area.Min.Add(area.Size().Sub(size).Div(2))
	pos.X = max(pos.X, 0)
	pos.Y = max(pos.Y, chrome.TitleBarHeight)
	return image.Rectangle{Min: pos, Max: pos.Add(size)}
}

func (a *app) setPrefs(p axisprefs.AxisPreferences) {
	a.prefs = p.Normalize()
	logDebug("axis preferences: %v", a.prefs)
}

func (a *app) Update() error {
	a.ui.Drain()
	if a.win.Closed() {
		return ebiten.Termination
	}

	in := eui.SampleInput()
	a.cursor = in.Cursor
	if a.menu.OpenMenu() >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !a.menu.Contains(in.Cursor) {
		a.menu.Close()
	}
	if n := len(a.panels); n > 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for i := n - 1; i >= 0; i-- {
			if in.Cursor.In(a.panels[i].Rect()) {
				a.raise(a.panels[i])
				break
			}
		}
	}
	a.router.Step(in, a.targets())

	keys := eui.SampleKeys()
	if n := len(a.panels); n > 0 {
		a.panels[n-1].HandleKeys(keys)
	}
	if a.help != nil && a.helpPanel != nil && a.helpPanel.IsOpen() && in.Cursor.In(a.helpPanel.BodyRect()) {
		a.help.HandleWheel(eui.WheelDelta())
	}
	a.prunePanels()
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	if a.canvas == nil || a.canvas.Bounds().Size() != a.size {
		if a.canvas != nil {
			a.canvas.Deallocate()
		}
		a.canvas = ebiten.NewImage(max(a.size.X, 1), max(a.size.Y, 1))
	}
	a.canvas.Fill(a.theme.Background)

	a.chart.Draw(a.canvas, a.chartRect(), a.theme, a.prefs)
	eui.DrawChrome(a.canvas, a.chrome.Paint(), image.Point{})
	for _, p := range a.panels {
		p.Draw(a.canvas, a.theme)
	}
	a.menu.Draw(a.canvas, a.theme, a.cursor)

	a.mask.Set(a.chrome.Region())
	a.mask.Composite(screen, a.canvas)
}

// Layout keeps one UI pixel per window pixel and follows resizes with the
// chrome's clip region.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := image.Pt(outsideWidth, outsideHeight)
	if size != a.size {
		a.size = size
		a.chrome.Resize(size)
		a.menu.SetRect(a.menuRect())
		logDebug("resized to %dx%d", size.X, size.Y)
	}
	return outsideWidth, outsideHeight
}
