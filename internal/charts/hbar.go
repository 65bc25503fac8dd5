package charts

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"startupboom/internal/models"
	"startupboom/internal/theme"
)

const (
	hbarLabelGutter = 84
	hbarMaxBar      = 20
	hbarTicks       = 5
)

// renderHorizontalBars draws a grouped bar chart with categories on the y axis.
// go-chart's stacked bars normalize every bar to the full length, so this one is
// drawn directly on the SVG renderer.
func renderHorizontalBars(w io.Writer, p models.Panel, colors theme.Colors, opts Options) error {
	categories := categoryCount(p)
	if categories == 0 {
		return fmt.Errorf("panel %s: no data", p.ID)
	}
	maxValue := 0.0
	for _, s := range p.Series {
		for _, pt := range s.Points {
			if pt.Value != nil && *pt.Value > maxValue {
				maxValue = *pt.Value
			}
		}
	}
	axisMax := math.Ceil(maxValue)
	if axisMax <= 0 {
		axisMax = 1
	}

	width, height := opts.width(), p.Height
	r, err := chart.SVG(width, height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}

	rect := func(b chart.Box, c drawing.Color) {
		r.SetFillColor(c)
		r.SetStrokeColor(c)
		r.SetStrokeWidth(1)
		r.MoveTo(b.Left, b.Top)
		r.LineTo(b.Right, b.Top)
		r.LineTo(b.Right, b.Bottom)
		r.LineTo(b.Left, b.Bottom)
		r.Close()
		r.FillStroke()
		r.ResetStyle()
	}
	line := func(x0, y0, x1, y1 int, c drawing.Color, dash []float64) {
		r.SetStrokeColor(c)
		r.SetStrokeWidth(1)
		r.SetStrokeDashArray(dash)
		r.MoveTo(x0, y0)
		r.LineTo(x1, y1)
		r.Stroke()
		r.ResetStyle()
	}
	measure := func(s string) chart.Box {
		r.SetFont(font)
		r.SetFontSize(9)
		return r.MeasureText(s)
	}
	text := func(s string, x, y int, c drawing.Color) {
		r.SetFont(font)
		r.SetFontSize(9)
		r.SetFontColor(c)
		r.Text(s, x, y)
		r.ResetStyle()
	}

	plot := chart.Box{Top: 12, Left: hbarLabelGutter, Right: width - 20, Bottom: height - 24}
	scale := func(v float64) int {
		return plot.Left + int(math.Round(v/axisMax*float64(plot.Right-plot.Left)))
	}

	rect(chart.Box{Top: 0, Left: 0, Right: width, Bottom: height}, hex(colors.Card))

	// value axis: grid and tick labels
	for i := 0; i <= hbarTicks; i++ {
		v := axisMax * float64(i) / hbarTicks
		x := scale(v)
		if p.ShowGrid {
			line(x, plot.Top, x, plot.Bottom, hex(colors.Grid), []float64{3, 3})
		}
		label := strconv.FormatFloat(v, 'f', -1, 64)
		tw := measure(label).Width()
		text(label, x-tw/2, plot.Bottom+14, hex(colors.Axis))
	}
	line(plot.Left, plot.Bottom, plot.Right, plot.Bottom, hex(colors.Axis), nil)
	line(plot.Left, plot.Top, plot.Left, plot.Bottom, hex(colors.Axis), nil)

	group := (plot.Bottom - plot.Top) / categories
	bar := group * 4 / 5 / len(p.Series)
	if bar > hbarMaxBar {
		bar = hbarMaxBar
	}
	if bar < 1 {
		bar = 1
	}
	for i := 0; i < categories; i++ {
		top := plot.Top + i*group + (group-bar*len(p.Series))/2
		var label string
		for si, s := range p.Series {
			if i >= len(s.Points) {
				continue
			}
			pt := s.Points[i]
			if label == "" {
				label = pt.Label
			}
			if pt.Value == nil {
				continue
			}
			y := top + si*bar
			rect(chart.Box{Top: y, Left: plot.Left, Right: scale(*pt.Value), Bottom: y + bar}, hex(s.Color))
		}
		lb := measure(label)
		cy := plot.Top + i*group + group/2 + lb.Height()/2
		text(label, plot.Left-6-lb.Width(), cy, hex(colors.Axis))
	}

	return r.Save(w)
}
