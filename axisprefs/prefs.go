// Package axisprefs holds the chart-axis preferences record and the editing
// session used by the preferences dialog.
package axisprefs

import (
	"fmt"
	"strings"
)

// Scaling is the scale of a chart axis. The zero value is not a valid
// scaling; Normalize replaces it with the axis default.
type Scaling uint8

const (
	Linear Scaling = iota + 1
	Logarithmic
)

// Options lists the selectable scalings in display order.
func Options() []Scaling { return []Scaling{Linear, Logarithmic} }

func (s Scaling) Valid() bool { return s == Linear || s == Logarithmic }

func (s Scaling) String() string {
	switch s {
	case Linear:
		return "Linear"
	case Logarithmic:
		return "Logarithmic"
	}
	return fmt.Sprintf("Scaling(%d)", uint8(s))
}

// ParseScaling accepts the names produced by String, case-insensitively.
func ParseScaling(s string) (Scaling, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, true
	case "logarithmic", "log":
		return Logarithmic, true
	}
	return 0, false
}

const (
	DefaultXScaling = Logarithmic
	DefaultYScaling = Linear
)

// AxisPreferences is the axis configuration of a chart. It is a plain
// value: copies never share state.
type AxisPreferences struct {
	XMin, XMax, YMin, YMax Bound

	XScaling, YScaling Scaling

	ShowMajorTicksX, ShowMinorTicksX bool
	ShowMajorTicksY, ShowMinorTicksY bool
}

// Default returns unbounded axes with the default scalings and every tick
// set visible.
func Default() AxisPreferences {
	return AxisPreferences{
		XScaling:        DefaultXScaling,
		YScaling:        DefaultYScaling,
		ShowMajorTicksX: true,
		ShowMinorTicksX: true,
		ShowMajorTicksY: true,
		ShowMinorTicksY: true,
	}
}

// Normalize replaces invalid scalings with the per-axis defaults.
func (p AxisPreferences) Normalize() AxisPreferences {
	if !p.XScaling.Valid() {
		p.XScaling = DefaultXScaling
	}
	if !p.YScaling.Valid() {
		p.YScaling = DefaultYScaling
	}
	return p
}

func (p AxisPreferences) String() string {
	return fmt.Sprintf("x[%s..%s %s major=%t minor=%t] y[%s..%s %s major=%t minor=%t]",
		p.XMin.Text(), p.XMax.Text(), p.XScaling, p.ShowMajorTicksX, p.ShowMinorTicksX,
		p.YMin.Text(), p.YMax.Text(), p.YScaling, p.ShowMajorTicksY, p.ShowMinorTicksY)
}
