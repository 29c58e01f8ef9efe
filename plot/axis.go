// Package plot lays out chart axes from axis preferences and renders
// measurement series with go-chart.
package plot

import (
	"math"
	"strconv"

	"measuredesk/axisprefs"
)

// maxTicks caps tick generation for extreme ranges.
const maxTicks = 512

// Tick is a tick position in axis space (log10 of the value on logarithmic
// axes) with the label of the underlying value.
type Tick struct {
	Value float64
	Label string
}

// Axis is a resolved axis: range and ticks in axis space.
type Axis struct {
	Min, Max  float64
	Log       bool
	Major     []Tick
	Minor     []Tick
	ShowMajor bool
	ShowMinor bool
}

// Extent is the data range along one axis. An empty extent has Min > Max.
type Extent struct {
	Min, Max float64
}

func emptyExtent() Extent { return Extent{Min: math.Inf(1), Max: math.Inf(-1)} }

func (e Extent) Empty() bool { return e.Min > e.Max }

func (e *Extent) add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	e.Min = math.Min(e.Min, v)
	e.Max = math.Max(e.Max, v)
}

// ExtentOf returns the range of vs. With positiveOnly, values that a
// logarithmic axis cannot show are skipped.
func ExtentOf(vs []float64, positiveOnly bool) Extent {
	e := emptyExtent()
	for _, v := range vs {
		if positiveOnly && v <= 0 {
			continue
		}
		e.add(v)
	}
	return e
}

// AxisInput collects the preferences of one axis.
type AxisInput struct {
	Min, Max  axisprefs.Bound
	Scaling   axisprefs.Scaling
	ShowMajor bool
	ShowMinor bool
}

// XInput and YInput split a preferences record per axis.
func XInput(p axisprefs.AxisPreferences) AxisInput {
	p = p.Normalize()
	return AxisInput{Min: p.XMin, Max: p.XMax, Scaling: p.XScaling, ShowMajor: p.ShowMajorTicksX, ShowMinor: p.ShowMinorTicksX}
}

func YInput(p axisprefs.AxisPreferences) AxisInput {
	p = p.Normalize()
	return AxisInput{Min: p.YMin, Max: p.YMax, Scaling: p.YScaling, ShowMajor: p.ShowMajorTicksY, ShowMinor: p.ShowMinorTicksY}
}

// LayoutAxis resolves the axis range and ticks. Set bounds win over the
// data extent; auto ends snap outward to tick positions. Bounds a
// logarithmic axis cannot show (zero or negative) are treated as absent.
func LayoutAxis(in AxisInput, data Extent) Axis {
	if in.Scaling == axisprefs.Logarithmic {
		return layoutLog(in, data)
	}
	return layoutLinear(in, data)
}

func layoutLinear(in AxisInput, data Extent) Axis {
	lo, hi := data.Min, data.Max
	if data.Empty() {
		lo, hi = 0, 1
	}
	if in.Min.Valid {
		lo = in.Min.Value
	}
	if in.Max.Valid {
		hi = in.Max.Value
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		pad := math.Max(math.Abs(lo)*0.1, 1)
		lo, hi = lo-pad, hi+pad
	}

	step := niceStep((hi - lo) / 5)
	if !in.Min.Valid {
		lo = math.Floor(lo/step) * step
	}
	if !in.Max.Valid {
		hi = math.Ceil(hi/step) * step
	}

	ax := Axis{Min: lo, Max: hi, ShowMajor: in.ShowMajor, ShowMinor: in.ShowMinor}
	minor := step / 5
	first := math.Ceil(lo/minor - 1e-9)
	for i := 0; i < maxTicks*5; i++ {
		v := (first + float64(i)) * minor
		if v > hi+minor*1e-9 {
			break
		}
		if isMultiple(v, step) {
			if len(ax.Major) < maxTicks {
				ax.Major = append(ax.Major, Tick{Value: v, Label: formatValue(roundTo(v, step))})
			}
			continue
		}
		if len(ax.Minor) < maxTicks {
			ax.Minor = append(ax.Minor, Tick{Value: v})
		}
	}
	return ax
}

func layoutLog(in AxisInput, data Extent) Axis {
	lo, hi := data.Min, data.Max
	if data.Empty() || lo <= 0 {
		lo, hi = 1, 10
	}
	if in.Min.Valid && in.Min.Value > 0 {
		lo = in.Min.Value
	}
	if in.Max.Valid && in.Max.Value > 0 {
		hi = in.Max.Value
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	l0, l1 := math.Log10(lo), math.Log10(hi)
	if l0 == l1 {
		l0, l1 = l0-0.5, l1+0.5
	}
	// Exact powers of ten may come back from Log10 a hair off the integer.
	if !in.Min.Valid || in.Min.Value <= 0 {
		l0 = math.Floor(l0 + 1e-9)
	}
	if !in.Max.Valid || in.Max.Value <= 0 {
		l1 = math.Ceil(l1 - 1e-9)
	}

	ax := Axis{Min: l0, Max: l1, Log: true, ShowMajor: in.ShowMajor, ShowMinor: in.ShowMinor}
	d0 := math.Floor(l0 + 1e-9)
	for i := 0; i < maxTicks; i++ {
		d := d0 + float64(i)
		if d > l1+1e-9 {
			break
		}
		if d >= l0-1e-9 {
			ax.Major = append(ax.Major, Tick{Value: d, Label: formatValue(math.Pow(10, d))})
		}
		for k := 2; k <= 9; k++ {
			v := d + math.Log10(float64(k))
			if v < l0-1e-9 || v > l1+1e-9 {
				continue
			}
			if len(ax.Minor) < maxTicks {
				ax.Minor = append(ax.Minor, Tick{Value: v})
			}
		}
	}
	return ax
}

// ToAxis maps a data value into axis space. ok is false for values a
// logarithmic axis cannot show.
func (a Axis) ToAxis(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if !a.Log {
		return v, true
	}
	if v <= 0 {
		return 0, false
	}
	return math.Log10(v), true
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / mag; {
	case f <= 1:
		return mag
	case f <= 2:
		return 2 * mag
	case f <= 5:
		return 5 * mag
	}
	return 10 * mag
}

func isMultiple(v, step float64) bool {
	q := v / step
	return math.Abs(q-math.Round(q)) < 1e-6
}

// roundTo removes accumulated floating error from a tick value.
func roundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}

func formatValue(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
