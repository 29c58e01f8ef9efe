package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"measuredesk/axisprefs"
)

// Series is one measurement trace.
type Series struct {
	Name  string
	X, Y  []float64
	Color drawing.Color
}

var (
	gridMajor = chart.Style{StrokeColor: drawing.ColorFromHex("c8c8c8"), StrokeWidth: 1}
	gridMinor = chart.Style{StrokeColor: drawing.ColorFromHex("ececec"), StrokeWidth: 1}

	defaultColors = []drawing.Color{
		drawing.ColorFromHex("1f77b4"),
		drawing.ColorFromHex("d62728"),
		drawing.ColorFromHex("2ca02c"),
		drawing.ColorFromHex("9467bd"),
	}
)

// Layout resolves both axes for the given series.
func Layout(series []Series, prefs axisprefs.AxisPreferences) (x, y Axis) {
	xin, yin := XInput(prefs), YInput(prefs)
	xe, ye := emptyExtent(), emptyExtent()
	for _, s := range series {
		n := min(len(s.X), len(s.Y))
		for i := 0; i < n; i++ {
			if xin.Scaling == axisprefs.Logarithmic && s.X[i] <= 0 {
				continue
			}
			if yin.Scaling == axisprefs.Logarithmic && s.Y[i] <= 0 {
				continue
			}
			xe.add(s.X[i])
			ye.add(s.Y[i])
		}
	}
	return LayoutAxis(xin, xe), LayoutAxis(yin, ye)
}

// Chart builds the go-chart description of series drawn with prefs.
func Chart(title string, series []Series, prefs axisprefs.AxisPreferences, width, height int) chart.Chart {
	xa, ya := Layout(series, prefs)

	var out []chart.Series
	for i, s := range series {
		xs, ys := project(s, xa, ya)
		if len(xs) == 0 {
			continue
		}
		col := s.Color
		if col.IsZero() {
			col = defaultColors[i%len(defaultColors)]
		}
		out = append(out, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 1.5},
		})
	}
	// An invisible diagonal keeps the chart renderable when every point
	// falls outside the axes.
	out = append(out, chart.ContinuousSeries{
		XValues: []float64{xa.Min, xa.Max},
		YValues: []float64{ya.Min, ya.Max},
		Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 0},
	})

	return chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 12}},
		XAxis: chart.XAxis{
			Range:          &chart.ContinuousRange{Min: xa.Min, Max: xa.Max},
			Ticks:          chartTicks(xa.Major),
			Style:          chart.Style{Hidden: !xa.ShowMajor},
			GridLines:      gridLines(xa),
			GridMajorStyle: gridMajor,
			GridMinorStyle: gridMinor,
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: ya.Min, Max: ya.Max},
			Ticks:          chartTicks(ya.Major),
			Style:          chart.Style{Hidden: !ya.ShowMajor},
			GridLines:      gridLines(ya),
			GridMajorStyle: gridMajor,
			GridMinorStyle: gridMinor,
		},
		Series: out,
	}
}

// Render draws series into an image of the given size.
func Render(title string, series []Series, prefs axisprefs.AxisPreferences, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("plot: invalid size %dx%d", width, height)
	}
	ch := Chart(title, series, prefs, width, height)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// project maps a series into axis space, dropping points outside the axis
// range or not representable on a logarithmic axis.
func project(s Series, xa, ya Axis) (xs, ys []float64) {
	n := min(len(s.X), len(s.Y))
	for i := 0; i < n; i++ {
		x, okx := xa.ToAxis(s.X[i])
		y, oky := ya.ToAxis(s.Y[i])
		if !okx || !oky {
			continue
		}
		if x < xa.Min || x > xa.Max || y < ya.Min || y > ya.Max {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func chartTicks(ts []Tick) []chart.Tick {
	out := make([]chart.Tick, 0, len(ts))
	for _, t := range ts {
		out = append(out, chart.Tick{Value: t.Value, Label: t.Label})
	}
	return out
}

func gridLines(a Axis) []chart.GridLine {
	var out []chart.GridLine
	if a.ShowMajor {
		for _, t := range a.Major {
			out = append(out, chart.GridLine{Value: t.Value})
		}
	}
	if a.ShowMinor {
		for _, t := range a.Minor {
			out = append(out, chart.GridLine{Value: t.Value, IsMinor: true})
		}
	}
	return out
}
