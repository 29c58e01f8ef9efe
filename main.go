package main

import (
	"errors"
	"flag"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"

	"measuredesk/chrome"
	"measuredesk/eui"
	"measuredesk/internal/config"
)

func main() {
	debug := flag.Bool("debug", false, "verbose/debug logging")
	cfgPath := flag.String("config", "", "configuration file (TOML)")
	flag.Parse()

	setupLogging(*debug)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal("Configuration error", err)
	}
	icon, err := loadWindowIcon(cfg.UI.IconPath)
	if err != nil {
		fatal("Missing window icon", err)
	}
	if err := eui.InitClipboard(); err != nil {
		logWarn("clipboard init: %v", err)
	}

	a, err := newApp(cfg, icon)
	if err != nil {
		fatal("Startup error", err)
	}
	ebiten.SetWindowIcon([]image.Image{icon})
	ebiten.SetTPS(ebiten.SyncWithFPS)

	op := &ebiten.RunGameOptions{ScreenTransparent: true}
	if err := ebiten.RunGameWithOptions(a, op); err != nil {
		logError("ebiten: %v", err)
	}
	a.bg.Wait()
}

// loadWindowIcon reads the icon at path. Relative paths are tried against
// the working directory first and then next to the executable.
func loadWindowIcon(path string) (image.Image, error) {
	img, err := loadIconFile(path)
	if err == nil || filepath.IsAbs(path) || !errors.Is(err, chrome.ErrIconMissing) {
		return img, err
	}
	exe, exeErr := os.Executable()
	if exeErr != nil {
		return nil, err
	}
	if alt, altErr := loadIconFile(filepath.Join(filepath.Dir(exe), path)); altErr == nil {
		return alt, nil
	}
	return nil, err
}

func loadIconFile(path string) (image.Image, error) {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return chrome.LoadIcon(os.DirFS(dir), name)
}

// fatal reports a startup failure in the log and in a message box, then
// exits.
func fatal(title string, err error) {
	logError("%s: %v", title, err)
	dialog.Message("%s", err.Error()).Title(title).Error()
	os.Exit(1)
}
