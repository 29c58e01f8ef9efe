package main

import (
	"measuredesk/axisprefs"
	"measuredesk/eui"
)

func (a *app) menus() []eui.Menu {
	return []eui.Menu{
		{Label: "File", Items: []eui.MenuItem{
			{Label: "Axis preferences...", Action: a.openPrefs},
			{Label: "Reset axes", Action: func() { a.setPrefs(axisprefs.Default()) }},
			{Label: "Log out", Action: a.logout},
			{Label: "Quit", Action: a.win.Close},
		}},
		{Label: "Help", Items: []eui.MenuItem{
			{Label: "Contents", Action: func() { a.openHelp("") }},
			{Label: "About", Action: func() { a.openHelp("About") }},
			{Label: "Website", Action: func() { openURL(a.cfg.App.Website) }},
		}},
	}
}
