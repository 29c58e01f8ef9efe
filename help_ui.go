package main

import (
	"image"
	"strings"
	"time"

	"github.com/pkg/browser"

	"measuredesk/eui"
	"measuredesk/internal/config"
	"measuredesk/internal/content"
)

const appName = "Measuredesk"

// helpTabs returns the help document followed by the about page.
func helpTabs(cfg config.Config, started time.Time) []eui.Tab {
	var tabs []eui.Tab
	for _, t := range content.Help() {
		title := t.Title
		if title == "" {
			title = "Overview"
		}
		tabs = append(tabs, eui.Tab{Title: title, Text: t.Text()})
	}
	about := content.About(content.CurrentInfo(appName, cfg.App.Version, cfg.App.Website, started))
	return append(tabs, eui.Tab{Title: about.Title, Text: about.Text()})
}

func tabIndex(tabs []eui.Tab, title string) int {
	for i, t := range tabs {
		if strings.EqualFold(t.Title, title) {
			return i
		}
	}
	return 0
}

// openHelp shows the help viewer on the tab called title.
func (a *app) openHelp(title string) {
	tabs := helpTabs(a.cfg, a.started)
	if a.helpPanel != nil && a.helpPanel.IsOpen() {
		a.help.SetTabs(tabs)
		a.help.Select(tabIndex(tabs, title))
		a.raise(a.helpPanel)
		return
	}

	view := eui.NewTabView(tabs)
	view.Select(tabIndex(tabs, title))
	view.OnLink = openURL
	p, err := eui.NewPanel(a.icon, appName+" help", a.centered(image.Pt(580, 440)), view)
	if err != nil {
		logError("open help: %v", err)
		return
	}
	unregister := a.reg.Register(p, &a.ui)
	p.OnClosed = unregister

	a.help, a.helpPanel = view, p
	a.addPanel(p)
}

func openURL(url string) {
	if url == "" {
		return
	}
	if err := browser.OpenURL(url); err != nil {
		logWarn("open %s: %v", url, err)
	}
}
