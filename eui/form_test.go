package eui

import (
	"image"
	"strings"
	"testing"

	"measuredesk/axisprefs"
	"measuredesk/chrome"
)

func formFor(t *testing.T, policy axisprefs.Policy, p axisprefs.AxisPreferences) (*Form, *[]axisprefs.AxisPreferences, *[]bool) {
	t.Helper()
	f := NewForm(axisprefs.Editor{Policy: policy}.Open(p))
	f.SetSize(image.Pt(360, FormHeight()))
	var results []axisprefs.AxisPreferences
	var confirmed []bool
	f.OnDone = func(p axisprefs.AxisPreferences, ok bool) {
		results = append(results, p)
		confirmed = append(confirmed, ok)
	}
	return f, &results, &confirmed
}

func itemRect(t *testing.T, kind itemKind, field axisprefs.FieldID, opt axisprefs.Scaling) image.Rectangle {
	t.Helper()
	items, _ := layoutForm(image.Pt(360, FormHeight()))
	for _, it := range items {
		if it.kind != kind {
			continue
		}
		if kind == itemOK || kind == itemCancel || (it.field == field && it.option == opt) {
			return it.rect
		}
	}
	t.Fatalf("no item %v/%v/%v", kind, field, opt)
	return image.Rectangle{}
}

func clickAt(f *Form, r image.Rectangle) {
	c := r.Min.Add(r.Size().Div(2))
	f.Click(chrome.PointerEvent{Local: c, Button: chrome.ButtonPrimary})
}

func TestFormLayoutHasEveryField(t *testing.T) {
	items, msg := layoutForm(image.Pt(360, 400))
	seen := map[axisprefs.FieldID]int{}
	for _, it := range items {
		if it.kind == itemInput || it.kind == itemOption || it.kind == itemToggle {
			seen[it.field]++
		}
		if it.rect.Max.X > 360 {
			t.Fatalf("item %+v overflows", it)
		}
	}
	for _, fs := range axisprefs.Fields() {
		want := 1
		if fs.Kind == axisprefs.KindChoice {
			want = len(axisprefs.Options())
		}
		if seen[fs.ID] != want {
			t.Fatalf("%v has %d widgets want %d", fs.ID, seen[fs.ID], want)
		}
	}
	if msg.Empty() {
		t.Fatalf("no message row")
	}
}

func TestFormTypeAndConfirm(t *testing.T) {
	f, results, confirmed := formFor(t, axisprefs.Lenient, axisprefs.Default())

	f.HandleKeys(Keys{Chars: []rune("10")})
	clickAt(f, itemRect(t, itemOK, 0, 0))

	if len(*results) != 1 || !(*confirmed)[0] {
		t.Fatalf("results %v confirmed %v", *results, *confirmed)
	}
	want := axisprefs.Default()
	want.XMin = axisprefs.Some(10)
	if (*results)[0] != want {
		t.Fatalf("got %v want %v", (*results)[0], want)
	}
}

func TestFormClicksWriteThrough(t *testing.T) {
	f, results, _ := formFor(t, axisprefs.Lenient, axisprefs.Default())

	clickAt(f, itemRect(t, itemInput, axisprefs.FieldYMax, 0))
	if id, ok := f.Focus(); !ok || id != axisprefs.FieldYMax {
		t.Fatalf("focus = %v %v", id, ok)
	}
	f.HandleKeys(Keys{Chars: []rune("25")})
	f.HandleKeys(Keys{Backspace: true})
	clickAt(f, itemRect(t, itemOption, axisprefs.FieldXScaling, axisprefs.Linear))
	clickAt(f, itemRect(t, itemToggle, axisprefs.FieldMinorTicksY, 0))
	f.HandleKeys(Keys{Enter: true})

	got := (*results)[0]
	if got.YMax != axisprefs.Some(2) {
		t.Fatalf("YMax = %v", got.YMax)
	}
	if got.XScaling != axisprefs.Linear || got.ShowMinorTicksY {
		t.Fatalf("got %v", got)
	}
}

func TestFormCancelKeepsOriginal(t *testing.T) {
	orig := axisprefs.Default()
	orig.YMin = axisprefs.Some(-1)
	f, results, confirmed := formFor(t, axisprefs.Lenient, orig)

	f.HandleKeys(Keys{Chars: []rune("99")})
	clickAt(f, itemRect(t, itemCancel, 0, 0))
	if (*results)[0] != orig || (*confirmed)[0] {
		t.Fatalf("cancel gave %v %v", (*results)[0], (*confirmed)[0])
	}

	// The session is over; more input changes nothing.
	f.HandleKeys(Keys{Enter: true})
	f.Dismiss()
	if len(*results) != 1 {
		t.Fatalf("callbacks after close: %d", len(*results))
	}
}

func TestFormDismiss(t *testing.T) {
	f, results, confirmed := formFor(t, axisprefs.Lenient, axisprefs.Default())
	f.HandleKeys(Keys{Chars: []rune("5")})
	f.Dismiss()
	if (*results)[0] != axisprefs.Default() || (*confirmed)[0] {
		t.Fatalf("dismiss gave %v", (*results)[0])
	}
}

func TestFormStrictShowsErrors(t *testing.T) {
	f, results, _ := formFor(t, axisprefs.Strict, axisprefs.Default())

	f.HandleKeys(Keys{Tab: true})
	f.HandleKeys(Keys{Chars: []rune("abc")})
	f.HandleKeys(Keys{Enter: true})

	if len(*results) != 0 {
		t.Fatalf("strict confirm closed with bad input")
	}
	if !strings.Contains(f.Message(), "X maximum") {
		t.Fatalf("message %q", f.Message())
	}
	if id, _ := f.Focus(); id != axisprefs.FieldXMax {
		t.Fatalf("focus %v want X maximum", id)
	}

	f.HandleKeys(Keys{End: true})
	for range 3 {
		f.HandleKeys(Keys{Backspace: true})
	}
	f.HandleKeys(Keys{Chars: []rune("7")})
	f.HandleKeys(Keys{Enter: true})
	if len(*results) != 1 || (*results)[0].XMax != axisprefs.Some(7) {
		t.Fatalf("results %v", *results)
	}
}

func TestFormCaretEditing(t *testing.T) {
	f, _, _ := formFor(t, axisprefs.Lenient, axisprefs.Default())
	s := f.Session()

	f.HandleKeys(Keys{Chars: []rune("15")})
	f.HandleKeys(Keys{Left: true})
	f.HandleKeys(Keys{Chars: []rune(".")})
	if got := s.Text(axisprefs.FieldXMin); got != "1.5" {
		t.Fatalf("text %q", got)
	}
	f.HandleKeys(Keys{Home: true})
	f.HandleKeys(Keys{Delete: true})
	f.HandleKeys(Keys{Chars: []rune("-\t\x01")})
	if got := s.Text(axisprefs.FieldXMin); got != "-.5" {
		t.Fatalf("text %q", got)
	}
}

func TestFormPaste(t *testing.T) {
	orig := clipboardRead
	defer func() { clipboardRead = orig }()
	clipboardRead = func() string { return "42\nignored" }

	f, _, _ := formFor(t, axisprefs.Lenient, axisprefs.Default())
	f.HandleKeys(Keys{ShiftTab: true})
	f.HandleKeys(Keys{Paste: true})
	if got := f.Session().Text(axisprefs.FieldYMax); got != "42" {
		t.Fatalf("pasted %q", got)
	}
}
