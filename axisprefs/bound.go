package axisprefs

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bound is an optional axis limit. An invalid bound means the axis range is
// computed from the data.
type Bound struct {
	Value float64
	Valid bool
}

// Some returns a set bound.
func Some(v float64) Bound { return Bound{Value: v, Valid: true} }

// None is the absent bound.
var None = Bound{}

// Text renders the bound for an input field: empty when absent, otherwise
// the shortest decimal that parses back to the same value.
func (b Bound) Text() string {
	if !b.Valid {
		return ""
	}
	return strconv.FormatFloat(b.Value, 'f', -1, 64)
}

// Policy selects how unparseable bound text is handled.
type Policy int

const (
	// Lenient treats unparseable text as an absent bound.
	Lenient Policy = iota
	// Strict reports unparseable text as a *BoundError.
	Strict
)

func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

var (
	errNotDecimal = errors.New("not a decimal number")
	errNotFinite  = errors.New("not a finite number")
)

// BoundError reports bound text rejected under the Strict policy.
type BoundError struct {
	Field FieldID
	Text  string
	Err   error
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Field, e.Text, e.Err)
}

func (e *BoundError) Unwrap() error { return e.Err }

// ParseBound converts field text into a bound. Blank text is absent, and so
// is anything that is not a finite decimal number: bad input never fails.
func ParseBound(text string) Bound {
	b, _ := ParseBoundStrict(text)
	return b
}

// ParseBoundStrict is ParseBound that also reports why non-blank text was
// rejected. Blank text is absent without error.
func ParseBoundStrict(text string) (Bound, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return None, nil
	}
	if !isDecimal(s) {
		return None, errNotDecimal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range values come back as ±Inf with ErrRange.
		if errors.Is(err, strconv.ErrRange) {
			return None, errNotFinite
		}
		return None, errNotDecimal
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return None, errNotFinite
	}
	return Some(v), nil
}

// isDecimal accepts an optional sign, digits with at most one decimal
// point, and an optional exponent. ParseFloat alone would also take hex
// floats, "Inf", "NaN" and underscores.
func isDecimal(s string) bool {
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	digits, dot := 0, false
mantissa:
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			break mantissa
		}
	}
	if digits == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != 'e' && s[i] != 'E' {
		return false
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
