package axisprefs

import "errors"

// FieldID names an editable field of the preferences dialog.
type FieldID int

const (
	FieldXMin FieldID = iota
	FieldXMax
	FieldYMin
	FieldYMax
	FieldXScaling
	FieldYScaling
	FieldMajorTicksX
	FieldMinorTicksX
	FieldMajorTicksY
	FieldMinorTicksY

	fieldCount
)

// FieldKind is the widget type a field binds to.
type FieldKind int

const (
	KindNumber FieldKind = iota
	KindChoice
	KindToggle
)

// FieldSpec describes one field for toolkits building the form.
type FieldSpec struct {
	ID    FieldID
	Label string
	Kind  FieldKind
}

var fieldSpecs = [fieldCount]FieldSpec{
	{FieldXMin, "X minimum", KindNumber},
	{FieldXMax, "X maximum", KindNumber},
	{FieldYMin, "Y minimum", KindNumber},
	{FieldYMax, "Y maximum", KindNumber},
	{FieldXScaling, "X scaling", KindChoice},
	{FieldYScaling, "Y scaling", KindChoice},
	{FieldMajorTicksX, "X major ticks", KindToggle},
	{FieldMinorTicksX, "X minor ticks", KindToggle},
	{FieldMajorTicksY, "Y major ticks", KindToggle},
	{FieldMinorTicksY, "Y minor ticks", KindToggle},
}

// Fields returns the dialog layout in display order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs[:])
	return out
}

func (f FieldID) valid() bool { return f >= 0 && f < fieldCount }

func (f FieldID) String() string {
	if !f.valid() {
		return "field?"
	}
	return fieldSpecs[f].Label
}

// Kind returns the widget type of f.
func (f FieldID) Kind() FieldKind {
	if !f.valid() {
		return KindNumber
	}
	return fieldSpecs[f].Kind
}

// Editor opens editing sessions with a fixed parsing policy.
type Editor struct {
	Policy Policy
}

// Session is one open preferences dialog. The fields hold the text and
// selections shown to the user; the original record is kept untouched until
// the caller replaces it with the result of Confirm.
type Session struct {
	policy   Policy
	original AxisPreferences

	text    [4]string
	choice  [2]Scaling
	toggles [4]bool

	done bool
}

// Open starts a session pre-populated from current.
func (e Editor) Open(current AxisPreferences) *Session {
	work := current.Normalize()
	s := &Session{policy: e.Policy, original: current}
	s.text = [4]string{work.XMin.Text(), work.XMax.Text(), work.YMin.Text(), work.YMax.Text()}
	s.choice = [2]Scaling{work.XScaling, work.YScaling}
	s.toggles = [4]bool{work.ShowMajorTicksX, work.ShowMinorTicksX, work.ShowMajorTicksY, work.ShowMinorTicksY}
	return s
}

func (s *Session) Policy() Policy            { return s.policy }
func (s *Session) Original() AxisPreferences { return s.original }

// Done reports whether the session was confirmed, cancelled or dismissed.
func (s *Session) Done() bool { return s.done }

// Text returns the text of a number field.
func (s *Session) Text(f FieldID) string {
	if f < FieldXMin || f > FieldYMax {
		return ""
	}
	return s.text[f-FieldXMin]
}

// SetText replaces the text of a number field. Other fields are ignored.
func (s *Session) SetText(f FieldID, text string) bool {
	if f < FieldXMin || f > FieldYMax {
		return false
	}
	s.text[f-FieldXMin] = text
	return true
}

// Choice returns the selected scaling of a choice field; zero means no
// selection.
func (s *Session) Choice(f FieldID) Scaling {
	if f < FieldXScaling || f > FieldYScaling {
		return 0
	}
	return s.choice[f-FieldXScaling]
}

// Select chooses a scaling. Values outside Options are rejected so a choice
// field can only hold Linear, Logarithmic or nothing.
func (s *Session) Select(f FieldID, v Scaling) bool {
	if f < FieldXScaling || f > FieldYScaling || !v.Valid() {
		return false
	}
	s.choice[f-FieldXScaling] = v
	return true
}

// ClearSelection leaves a choice field without a selection.
func (s *Session) ClearSelection(f FieldID) {
	if f < FieldXScaling || f > FieldYScaling {
		return
	}
	s.choice[f-FieldXScaling] = 0
}

// Checked returns the state of a toggle field.
func (s *Session) Checked(f FieldID) bool {
	if f < FieldMajorTicksX || f > FieldMinorTicksY {
		return false
	}
	return s.toggles[f-FieldMajorTicksX]
}

func (s *Session) SetChecked(f FieldID, on bool) {
	if f < FieldMajorTicksX || f > FieldMinorTicksY {
		return
	}
	s.toggles[f-FieldMajorTicksX] = on
}

// Toggle flips a toggle field and returns the new state.
func (s *Session) Toggle(f FieldID) bool {
	s.SetChecked(f, !s.Checked(f))
	return s.Checked(f)
}

// Validate returns the strict-parse problem of every number field. The
// result does not depend on the policy; lenient dialogs use it to mark
// text that will be dropped.
func (s *Session) Validate() []*BoundError {
	var out []*BoundError
	for i, txt := range s.text {
		if _, err := ParseBoundStrict(txt); err != nil {
			out = append(out, &BoundError{Field: FieldXMin + FieldID(i), Text: txt, Err: err})
		}
	}
	return out
}

// Result reads the fields into a record without ending the session.
func (s *Session) Result() (AxisPreferences, error) {
	var bounds [4]Bound
	var errs []error
	for i, txt := range s.text {
		if s.policy == Strict {
			b, err := ParseBoundStrict(txt)
			if err != nil {
				errs = append(errs, &BoundError{Field: FieldXMin + FieldID(i), Text: txt, Err: err})
				continue
			}
			bounds[i] = b
			continue
		}
		bounds[i] = ParseBound(txt)
	}
	if len(errs) > 0 {
		return s.original, errors.Join(errs...)
	}

	p := AxisPreferences{
		XMin: bounds[0], XMax: bounds[1], YMin: bounds[2], YMax: bounds[3],
		XScaling:        s.choice[0],
		YScaling:        s.choice[1],
		ShowMajorTicksX: s.toggles[0],
		ShowMinorTicksX: s.toggles[1],
		ShowMajorTicksY: s.toggles[2],
		ShowMinorTicksY: s.toggles[3],
	}
	return p.Normalize(), nil
}

// Confirm ends the session and returns the edited record. Under the Strict
// policy a field that does not parse keeps the session open and the error
// lists every offending field; the lenient policy never fails.
func (s *Session) Confirm() (AxisPreferences, error) {
	p, err := s.Result()
	if err != nil {
		return p, err
	}
	s.done = true
	return p, nil
}

// Cancel ends the session and returns the record it was opened with.
func (s *Session) Cancel() AxisPreferences {
	s.done = true
	return s.original
}

// Dismiss is Cancel for the window's close box.
func (s *Session) Dismiss() AxisPreferences { return s.Cancel() }
