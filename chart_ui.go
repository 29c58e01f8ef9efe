package main

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"measuredesk/axisprefs"
	"measuredesk/eui"
	"measuredesk/plot"
)

// chartView draws the measurement chart, re-rendering only when the axis
// preferences or the area size change.
type chartView struct {
	series []plot.Series

	img   *ebiten.Image
	prefs axisprefs.AxisPreferences
	size  image.Point
	err   error
}

func newChartView(series []plot.Series) *chartView {
	return &chartView{series: series}
}

func (v *chartView) stale(prefs axisprefs.AxisPreferences, size image.Point) bool {
	return (v.img == nil && v.err == nil) || prefs != v.prefs || size != v.size
}

func (v *chartView) Draw(dst *ebiten.Image, area image.Rectangle, th *eui.Theme, prefs axisprefs.AxisPreferences) {
	size := area.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if v.stale(prefs, size) {
		v.prefs, v.size = prefs, size
		if v.img != nil {
			v.img.Deallocate()
			v.img = nil
		}
		img, err := plot.Render("Frequency response", v.series, prefs, size.X, size.Y)
		if err != nil {
			if v.err == nil || v.err.Error() != err.Error() {
				logError("render chart: %v", err)
			}
			v.err = err
		} else {
			v.err = nil
			v.img = ebiten.NewImageFromImage(img)
		}
	}
	if v.err != nil {
		eui.DrawText(dst, "Chart unavailable: "+v.err.Error(), area.Inset(12), th.Error)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(area.Min.X), float64(area.Min.Y))
	dst.DrawImage(v.img, op)
}

// demoSeries is a recorded sweep of two first-order low-pass filters,
// 10 Hz to 100 kHz.
func demoSeries() []plot.Series {
	const points = 161
	lowpass := func(name string, cutoff float64, col drawing.Color) plot.Series {
		s := plot.Series{Name: name, Color: col, X: make([]float64, points), Y: make([]float64, points)}
		for i := range points {
			f := math.Pow(10, 1+4*float64(i)/(points-1))
			s.X[i] = f
			s.Y[i] = 1 / math.Sqrt(1+(f/cutoff)*(f/cutoff))
		}
		return s
	}
	return []plot.Series{
		lowpass("RC 1 kHz", 1e3, drawing.ColorFromHex("1f77b4")),
		lowpass("RC 10 kHz", 1e4, drawing.ColorFromHex("d62728")),
	}
}
