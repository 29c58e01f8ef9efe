package main

import (
	"image"

	"measuredesk/axisprefs"
	"measuredesk/chrome"
	"measuredesk/eui"
)

// openPrefs shows the axis preferences dialog. The chart keeps its current
// preferences until the dialog is confirmed.
func (a *app) openPrefs() {
	if a.prefsPanel != nil && a.prefsPanel.IsOpen() {
		a.raise(a.prefsPanel)
		return
	}

	session := a.editor.Open(a.prefs)
	form := eui.NewForm(session)
	r := a.centered(image.Pt(400, chrome.TitleBarHeight+eui.FormHeight()))
	p, err := eui.NewPanel(a.icon, "Axis preferences", r, form)
	if err != nil {
		logError("open preferences: %v", err)
		return
	}
	unregister := a.reg.Register(p, &a.ui)

	form.OnDone = func(res axisprefs.AxisPreferences, confirmed bool) {
		if confirmed {
			a.setPrefs(res)
		}
		p.Close()
	}
	p.OnClosed = func() {
		unregister()
		form.Dismiss()
	}

	a.prefsPanel = p
	a.addPanel(p)
}
