package eui

import (
	"image/color"
	"strings"

	dark "github.com/thiagokokada/dark-mode-go"

	"measuredesk/chrome"
)

// Theme bundles the colours used by panels and widgets.
type Theme struct {
	Name   string
	Chrome chrome.Palette

	Background  color.RGBA
	Text        color.RGBA
	Muted       color.RGBA
	Field       color.RGBA
	FieldBorder color.RGBA
	Focus       color.RGBA
	Accent      color.RGBA
	AccentText  color.RGBA
	Error       color.RGBA
	Menu        color.RGBA
	MenuHover   color.RGBA
	Shadow      color.RGBA
}

var (
	DarkTheme = Theme{
		Name:        "dark",
		Chrome:      chrome.DarkPalette,
		Background:  color.RGBA{0x1e, 0x1f, 0x22, 0xff},
		Text:        color.RGBA{0xe8, 0xe8, 0xe8, 0xff},
		Muted:       color.RGBA{0x9a, 0x9d, 0xa3, 0xff},
		Field:       color.RGBA{0x2b, 0x2d, 0x31, 0xff},
		FieldBorder: color.RGBA{0x4a, 0x4d, 0x55, 0xff},
		Focus:       color.RGBA{0x4c, 0x9a, 0xff, 0xff},
		Accent:      color.RGBA{0x35, 0x74, 0xf0, 0xff},
		AccentText:  color.RGBA{0xff, 0xff, 0xff, 0xff},
		Error:       color.RGBA{0xff, 0x6b, 0x5e, 0xff},
		Menu:        color.RGBA{0x26, 0x28, 0x2c, 0xff},
		MenuHover:   color.RGBA{0x3a, 0x3d, 0x44, 0xff},
		Shadow:      color.RGBA{0x00, 0x00, 0x00, 0x60},
	}
	LightTheme = Theme{
		Name:        "light",
		Chrome:      chrome.LightPalette,
		Background:  color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
		Text:        color.RGBA{0x1c, 0x1c, 0x1c, 0xff},
		Muted:       color.RGBA{0x6b, 0x6b, 0x6b, 0xff},
		Field:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		FieldBorder: color.RGBA{0xb8, 0xb8, 0xb8, 0xff},
		Focus:       color.RGBA{0x1a, 0x73, 0xe8, 0xff},
		Accent:      color.RGBA{0x1a, 0x73, 0xe8, 0xff},
		AccentText:  color.RGBA{0xff, 0xff, 0xff, 0xff},
		Error:       color.RGBA{0xc5, 0x22, 0x1f, 0xff},
		Menu:        color.RGBA{0xee, 0xee, 0xee, 0xff},
		MenuHover:   color.RGBA{0xd8, 0xd8, 0xd8, 0xff},
		Shadow:      color.RGBA{0x00, 0x00, 0x00, 0x30},
	}
)

// isDarkMode asks the desktop for its preference.
var isDarkMode = dark.IsDarkMode

// SelectTheme returns the theme called name. "auto" follows the desktop's
// dark mode setting and falls back to dark when it cannot be read.
func SelectTheme(name string) *Theme {
	switch strings.ToLower(name) {
	case "light":
		t := LightTheme
		return &t
	case "dark":
		t := DarkTheme
		return &t
	}
	if on, err := isDarkMode(); err == nil && !on {
		t := LightTheme
		return &t
	}
	t := DarkTheme
	return &t
}
