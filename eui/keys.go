package eui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
)

// Keys is the keyboard input of one frame.
type Keys struct {
	Chars []rune

	Backspace, Delete bool
	Left, Right       bool
	Home, End         bool
	Tab, ShiftTab     bool
	Enter, Escape     bool
	Copy, Paste       bool
}

// KeyHandler is implemented by panel contents that take keyboard input.
type KeyHandler interface {
	HandleKeys(Keys)
}

// repeating reports a key press on the first frame and then at the key
// repeat rate once it has been held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// SampleKeys reads the keyboard for this frame.
func SampleKeys() Keys {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	k := Keys{
		Backspace: repeating(ebiten.KeyBackspace),
		Delete:    repeating(ebiten.KeyDelete),
		Left:      repeating(ebiten.KeyArrowLeft),
		Right:     repeating(ebiten.KeyArrowRight),
		Home:      inpututil.IsKeyJustPressed(ebiten.KeyHome),
		End:       inpututil.IsKeyJustPressed(ebiten.KeyEnd),
		Enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		k.Tab = !shift
		k.ShiftTab = shift
	}
	if ctrl {
		k.Copy = inpututil.IsKeyJustPressed(ebiten.KeyC)
		k.Paste = inpututil.IsKeyJustPressed(ebiten.KeyV)
		return k
	}
	k.Chars = ebiten.AppendInputChars(nil)
	return k
}

var clipboardReady bool

// InitClipboard prepares the system clipboard. Copy and paste do nothing
// until it succeeds.
func InitClipboard() error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	clipboardReady = true
	return nil
}

var (
	clipboardRead = func() string {
		if !clipboardReady {
			return ""
		}
		return string(clipboard.Read(clipboard.FmtText))
	}
	clipboardWrite = func(s string) {
		if !clipboardReady {
			return
		}
		clipboard.Write(clipboard.FmtText, []byte(s))
	}
)
