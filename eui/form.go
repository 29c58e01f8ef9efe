package eui

import (
	"errors"
	"image"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"

	"measuredesk/axisprefs"
	"measuredesk/chrome"
)

const (
	formPad     = 12
	formRowH    = 28
	formRowGap  = 6
	formLabelW  = 110
	formButtonW = 88
	checkSize   = 18
)

type itemKind int

const (
	itemInput itemKind = iota
	itemOption
	itemToggle
	itemOK
	itemCancel
)

type formItem struct {
	kind   itemKind
	field  axisprefs.FieldID
	option axisprefs.Scaling
	label  image.Rectangle
	rect   image.Rectangle
}

// layoutForm places the preferences widgets in a body of the given size.
// Rects are relative to the body's top-left corner.
func layoutForm(size image.Point) (items []formItem, message image.Rectangle) {
	y := formPad
	ctrlX := formPad + formLabelW
	ctrlW := max(size.X-ctrlX-formPad, 0)
	for _, f := range axisprefs.Fields() {
		label := image.Rect(formPad, y, ctrlX, y+formRowH)
		switch f.Kind {
		case axisprefs.KindNumber:
			items = append(items, formItem{kind: itemInput, field: f.ID, label: label,
				rect: image.Rect(ctrlX, y, ctrlX+ctrlW, y+formRowH)})
		case axisprefs.KindChoice:
			opts := axisprefs.Options()
			w := ctrlW / len(opts)
			for i, o := range opts {
				x := ctrlX + i*w
				items = append(items, formItem{kind: itemOption, field: f.ID, option: o, label: label,
					rect: image.Rect(x, y, x+w-2, y+formRowH)})
			}
		case axisprefs.KindToggle:
			cy := y + (formRowH-checkSize)/2
			items = append(items, formItem{kind: itemToggle, field: f.ID, label: label,
				rect: image.Rect(ctrlX, cy, ctrlX+checkSize, cy+checkSize)})
		}
		y += formRowH + formRowGap
	}
	message = image.Rect(formPad, y, max(size.X-formPad, formPad), y+formRowH)
	y += formRowH + formRowGap

	right := size.X - formPad
	items = append(items,
		formItem{kind: itemCancel, rect: image.Rect(right-formButtonW, y, right, y+formRowH)},
		formItem{kind: itemOK, rect: image.Rect(right-2*formButtonW-8, y, right-formButtonW-8, y+formRowH)},
	)
	return items, message
}

// FormHeight is the body height needed by the preferences form.
func FormHeight() int {
	items, _ := layoutForm(image.Pt(0, 0))
	return items[len(items)-1].rect.Max.Y + formPad
}

// Form edits an axis preferences session. Every keystroke and click is
// written through to the session; the record is only produced on OK.
type Form struct {
	session *axisprefs.Session

	focus   axisprefs.FieldID
	focused bool
	caret   int
	message string
	size    image.Point

	// OnDone receives the session result. confirmed is false for Cancel and
	// for Dismiss.
	OnDone func(p axisprefs.AxisPreferences, confirmed bool)
}

// NewForm binds a form to s and focuses the first number field.
func NewForm(s *axisprefs.Session) *Form {
	f := &Form{session: s}
	f.setFocus(axisprefs.FieldXMin)
	return f
}

func (f *Form) Session() *axisprefs.Session { return f.session }

// Focus returns the focused number field.
func (f *Form) Focus() (axisprefs.FieldID, bool) { return f.focus, f.focused }

// Message is the error line under the fields.
func (f *Form) Message() string { return f.message }

func (f *Form) setFocus(id axisprefs.FieldID) {
	f.focus, f.focused = id, true
	f.caret = len([]rune(f.session.Text(id)))
}

// Confirm ends the session with OK. A strict session with bad input stays
// open and the problems are shown instead.
func (f *Form) Confirm() {
	if f.session.Done() {
		return
	}
	p, err := f.session.Confirm()
	if err != nil {
		f.message = formError(err)
		var be *axisprefs.BoundError
		if errors.As(err, &be) {
			f.setFocus(be.Field)
		}
		return
	}
	f.message = ""
	if f.OnDone != nil {
		f.OnDone(p, true)
	}
}

// Cancel ends the session without changes.
func (f *Form) Cancel() {
	if f.session.Done() {
		return
	}
	p := f.session.Cancel()
	if f.OnDone != nil {
		f.OnDone(p, false)
	}
}

// Dismiss handles the panel's close box.
func (f *Form) Dismiss() {
	if f.session.Done() {
		return
	}
	p := f.session.Dismiss()
	if f.OnDone != nil {
		f.OnDone(p, false)
	}
}

func formError(err error) string {
	var lines []string
	for _, ln := range strings.Split(err.Error(), "\n") {
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) > 1 {
		return lines[0] + " (and more)"
	}
	return strings.Join(lines, "")
}

func (f *Form) itemAt(p image.Point) (formItem, bool) {
	items, _ := layoutForm(f.size)
	for _, it := range items {
		if inside(p, it.rect) {
			return it, true
		}
	}
	return formItem{}, false
}

// SetSize lays the form out for a body of size.
func (f *Form) SetSize(size image.Point) { f.size = size }

func (f *Form) PointerDown(chrome.PointerEvent) {}
func (f *Form) PointerMove(chrome.PointerEvent) {}
func (f *Form) PointerUp(chrome.PointerEvent)   {}

// Click activates the widget under the pointer.
func (f *Form) Click(ev chrome.PointerEvent) {
	if ev.Button != chrome.ButtonPrimary || f.session.Done() {
		return
	}
	it, ok := f.itemAt(ev.Local)
	if !ok {
		return
	}
	switch it.kind {
	case itemInput:
		f.setFocus(it.field)
	case itemOption:
		f.session.Select(it.field, it.option)
	case itemToggle:
		f.session.Toggle(it.field)
	case itemOK:
		f.Confirm()
	case itemCancel:
		f.Cancel()
	}
}

// HandleKeys edits the focused field. Enter confirms and Escape cancels.
func (f *Form) HandleKeys(k Keys) {
	if f.session.Done() {
		return
	}
	switch {
	case k.Enter:
		f.Confirm()
		return
	case k.Escape:
		f.Cancel()
		return
	case k.Tab:
		f.cycleFocus(1)
		return
	case k.ShiftTab:
		f.cycleFocus(-1)
		return
	}
	if !f.focused {
		return
	}

	txt := []rune(f.session.Text(f.focus))
	f.caret = min(max(f.caret, 0), len(txt))
	switch {
	case k.Copy:
		clipboardWrite(string(txt))
	case k.Paste:
		txt = f.insert(txt, []rune(clipboardRead()))
	case k.Backspace:
		if f.caret > 0 {
			txt = append(txt[:f.caret-1], txt[f.caret:]...)
			f.caret--
		}
	case k.Delete:
		if f.caret < len(txt) {
			txt = append(txt[:f.caret], txt[f.caret+1:]...)
		}
	case k.Left:
		f.caret = max(f.caret-1, 0)
	case k.Right:
		f.caret = min(f.caret+1, len(txt))
	case k.Home:
		f.caret = 0
	case k.End:
		f.caret = len(txt)
	}
	if len(k.Chars) > 0 {
		txt = f.insert(txt, k.Chars)
	}
	f.session.SetText(f.focus, string(txt))
}

func (f *Form) insert(txt, add []rune) []rune {
	var clean []rune
	for _, r := range add {
		if r == '\n' || r == '\r' {
			break
		}
		if unicode.IsPrint(r) {
			clean = append(clean, r)
		}
	}
	out := make([]rune, 0, len(txt)+len(clean))
	out = append(out, txt[:f.caret]...)
	out = append(out, clean...)
	out = append(out, txt[f.caret:]...)
	f.caret += len(clean)
	return out
}

func (f *Form) cycleFocus(dir int) {
	n := int(axisprefs.FieldYMax-axisprefs.FieldXMin) + 1
	cur := 0
	if f.focused {
		cur = int(f.focus-axisprefs.FieldXMin) + dir
	}
	cur = ((cur % n) + n) % n
	f.setFocus(axisprefs.FieldXMin + axisprefs.FieldID(cur))
}

// Draw renders the form into area.
func (f *Form) Draw(dst *ebiten.Image, area image.Rectangle, th *Theme) {
	f.size = area.Size()
	items, msgRect := layoutForm(f.size)
	origin := area.Min
	face := textFace(FontSize)

	invalid := map[axisprefs.FieldID]bool{}
	for _, be := range f.session.Validate() {
		invalid[be.Field] = true
	}

	labelled := map[axisprefs.FieldID]bool{}
	for _, it := range items {
		r := it.rect.Add(origin)
		if (it.kind == itemInput || it.kind == itemOption || it.kind == itemToggle) && !labelled[it.field] {
			labelled[it.field] = true
			drawText(dst, it.field.String(), face, it.label.Add(origin), th.Text, chrome.AlignStart)
		}
		switch it.kind {
		case itemInput:
			border := th.FieldBorder
			switch {
			case invalid[it.field]:
				border = th.Error
			case f.focused && f.focus == it.field:
				border = th.Focus
			}
			drawRoundRect(dst, &roundRect{Position: ptOf(r.Min), Size: ptOf(r.Size()), Fillet: 4, Color: th.Field, Filled: true})
			drawRoundRect(dst, &roundRect{Position: ptOf(r.Min), Size: ptOf(r.Size()), Fillet: 4, Border: 1, Color: border})
			txt := f.session.Text(it.field)
			drawText(dst, txt, face, r, th.Text, chrome.AlignStart)
			if f.focused && f.focus == it.field {
				prefix := string([]rune(txt)[:min(f.caret, len([]rune(txt)))])
				cx := float32(r.Min.X) + 4 + float32(measureWidth(prefix, face))
				strokeLine(dst, cx, float32(r.Min.Y+6), cx, float32(r.Max.Y-6), 1, th.Text)
			}
		case itemOption:
			selected := f.session.Choice(it.field) == it.option
			bg, fg := th.Field, th.Text
			if selected {
				bg, fg = th.Accent, th.AccentText
			}
			drawRoundRect(dst, &roundRect{Position: ptOf(r.Min), Size: ptOf(r.Size()), Fillet: 4, Color: bg, Filled: true})
			drawText(dst, it.option.String(), face, r, fg, chrome.AlignCenter)
		case itemToggle:
			on := f.session.Checked(it.field)
			bg := th.Field
			if on {
				bg = th.Accent
			}
			drawRoundRect(dst, &roundRect{Position: ptOf(r.Min), Size: ptOf(r.Size()), Fillet: 3, Color: bg, Filled: true})
			drawRoundRect(dst, &roundRect{Position: ptOf(r.Min), Size: ptOf(r.Size()), Fillet: 3, Border: 1, Color: th.FieldBorder})
			if on {
				p := ptOf(r.Min)
				drawCheckmark(dst,
					pointAdd(p, point{X: 4, Y: 9}),
					pointAdd(p, point{X: 8, Y: 13}),
					pointAdd(p, point{X: 14, Y: 5}),
					2, th.AccentText)
			}
		case itemOK, itemCancel:
			label, bg, fg := "Cancel", th.Field, th.Text
			if it.kind == itemOK {
				label, bg, fg = "OK", th.Accent, th.AccentText
			}
			drawRoundRect(dst, &roundRect{Position: ptOf(r.Min), Size: ptOf(r.Size()), Fillet: 5, Color: bg, Filled: true})
			drawText(dst, label, face, r, fg, chrome.AlignCenter)
		}
	}
	if f.message != "" {
		drawText(dst, f.message, face, msgRect.Add(origin), th.Error, chrome.AlignStart)
	}
}
