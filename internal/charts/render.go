// Package charts draws dashboard panels as SVG using go-chart.
package charts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/sync/errgroup"

	"startupboom/internal/models"
	"startupboom/internal/theme"
)

var ErrUnsupportedKind = errors.New("unsupported chart kind")

const DefaultWidth = 480

type Options struct {
	Width int
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// Render writes panel p as an SVG document to w.
func Render(w io.Writer, p models.Panel, colors theme.Colors, opts Options) error {
	switch p.Kind {
	case models.KindLine, models.KindArea:
		return renderXY(w, p, colors, opts)
	case models.KindBar, models.KindGroupedBar:
		return renderBars(w, p, colors, opts)
	case models.KindHorizontalBar:
		return renderHorizontalBars(w, p, colors, opts)
	case models.KindPie:
		return renderPie(w, p, colors, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedKind, p.Kind)
}

// RenderAll renders every panel concurrently and returns the SVGs in panel order.
func RenderAll(ctx context.Context, panels []models.Panel, colors theme.Colors, opts Options) ([][]byte, error) {
	out := make([][]byte, len(panels))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range panels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := Render(&buf, p, colors, opts); err != nil {
				return fmt.Errorf("render panel %s: %w", p.ID, err)
			}
			out[i] = buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// --- STYLES ---

func hex(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

func withOpacity(c drawing.Color, opacity float64) drawing.Color {
	if opacity <= 0 || opacity >= 1 {
		return c
	}
	return c.WithAlpha(uint8(math.Round(opacity * 255)))
}

func background(colors theme.Colors, bottom int) chart.Style {
	return chart.Style{
		FillColor: hex(colors.Card),
		Padding:   chart.Box{Top: 16, Left: 8, Right: 20, Bottom: bottom},
	}
}

func canvas(colors theme.Colors) chart.Style {
	return chart.Style{FillColor: hex(colors.Card)}
}

func axisStyle(colors theme.Colors) chart.Style {
	return chart.Style{
		StrokeColor: hex(colors.Axis),
		StrokeWidth: 1,
		FontColor:   hex(colors.Axis),
		FontSize:    9,
	}
}

func gridStyle(colors theme.Colors, show bool) chart.Style {
	if !show {
		return chart.Style{Hidden: true}
	}
	return chart.Style{
		StrokeColor:     hex(colors.Grid),
		StrokeWidth:     1,
		StrokeDashArray: []float64{3, 3},
	}
}

// valueAxis is the left-hand value axis shared by the XY and bar charts.
func valueAxis(p models.Panel, colors theme.Colors) chart.YAxis {
	return chart.YAxis{
		Name:           p.YAxis.Title,
		NameStyle:      axisStyle(colors),
		Style:          axisStyle(colors),
		AxisType:       chart.YAxisSecondary,
		Range:          valueRange(p),
		ValueFormatter: chart.IntValueFormatter,
		GridMajorStyle: gridStyle(colors, p.ShowGrid),
	}
}

// valueRange starts the value axis at zero and rounds the top up to the
// leading digit of the largest value (621 -> 700, 87 -> 90).
func valueRange(p models.Panel) *chart.ContinuousRange {
	maxValue := 0.0
	for _, s := range p.Series {
		for _, pt := range s.Points {
			if pt.Value != nil && *pt.Value > maxValue {
				maxValue = *pt.Value
			}
		}
	}
	if maxValue <= 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	step := math.Pow(10, math.Floor(math.Log10(maxValue)))
	return &chart.ContinuousRange{Min: 0, Max: math.Ceil(maxValue/step) * step}
}

// --- LINE / AREA ---

func renderXY(w io.Writer, p models.Panel, colors theme.Colors, opts Options) error {
	series := xySeries(p)
	if len(series) == 0 {
		return fmt.Errorf("panel %s: no data", p.ID)
	}

	graph := chart.Chart{
		Width:      opts.width(),
		Height:     p.Height,
		Background: background(colors, 8),
		Canvas:     canvas(colors),
		XAxis: chart.XAxis{
			Name:           p.XAxis.Title,
			NameStyle:      axisStyle(colors),
			Style:          axisStyle(colors),
			Ticks:          ticks(p),
			GridMajorStyle: gridStyle(colors, p.ShowGrid),
		},
		// Series are plotted against the left axis; the right one stays hidden.
		YAxis:          chart.YAxis{Style: chart.Hidden(), Range: valueRange(p)},
		YAxisSecondary: valueAxis(p, colors),
		Series:         series,
	}
	return graph.Render(chart.SVG, w)
}

// xySeries splits every panel series into continuous segments plotted
// against the left value axis.
func xySeries(p models.Panel) []chart.Series {
	var series []chart.Series
	for _, s := range p.Series {
		style := chart.Style{
			StrokeColor: hex(s.Color),
			StrokeWidth: 2,
			DotColor:    hex(s.Color),
			DotWidth:    3,
		}
		if p.Kind == models.KindArea {
			opacity := s.FillOpacity
			if opacity == 0 {
				opacity = 0.6
			}
			style.FillColor = withOpacity(hex(s.Color), opacity)
		}
		// A null point ends the current segment; the series is not bridged across it.
		for _, seg := range segments(s.Points) {
			cs := chart.ContinuousSeries{Name: s.Name, Style: style, YAxis: chart.YAxisSecondary}
			if len(seg) == 1 {
				// A lone point has no area to fill.
				cs.Style.FillColor = drawing.Color{}
			}
			for _, pt := range seg {
				cs.XValues = append(cs.XValues, pt.X)
				cs.YValues = append(cs.YValues, *pt.Value)
			}
			series = append(series, cs)
		}
	}
	return series
}

func segments(points []models.Point) [][]models.Point {
	var out [][]models.Point
	var cur []models.Point
	for _, pt := range points {
		if pt.Value == nil {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, pt)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func ticks(p models.Panel) []chart.Tick {
	if len(p.Series) == 0 {
		return nil
	}
	// The longest series carries the full category range.
	longest := p.Series[0].Points
	for _, s := range p.Series[1:] {
		if len(s.Points) > len(longest) {
			longest = s.Points
		}
	}
	out := make([]chart.Tick, 0, len(longest))
	for _, pt := range longest {
		out = append(out, chart.Tick{Value: pt.X, Label: pt.Label})
	}
	return out
}

// --- VERTICAL BARS ---

// renderBars draws single-series and grouped bar charts. Grouped bars are laid
// out category by category; only the first bar of a group carries the label.
func renderBars(w io.Writer, p models.Panel, colors theme.Colors, opts Options) error {
	var bars []chart.Value
	categories := categoryCount(p)
	for i := 0; i < categories; i++ {
		for si, s := range p.Series {
			if i >= len(s.Points) || s.Points[i].Value == nil {
				continue
			}
			pt := s.Points[i]
			label := ""
			if si == 0 {
				label = pt.Label
			}
			bars = append(bars, chart.Value{
				Label: label,
				Value: *pt.Value,
				Style: chart.Style{
					FillColor:   hex(s.Color),
					StrokeColor: hex(s.Color),
					StrokeWidth: 1,
				},
			})
		}
	}
	if len(bars) == 0 {
		return fmt.Errorf("panel %s: no data", p.ID)
	}

	width := opts.width()
	slot := (width - 80) / len(bars)
	if slot < 3 {
		slot = 3
	}

	xAxis := axisStyle(colors)
	bottom := 8
	if p.XAxis.LabelAngle != 0 {
		xAxis.TextRotationDegrees = p.XAxis.LabelAngle
		bottom = 56
	}

	graph := chart.BarChart{
		Width:      width,
		Height:     p.Height,
		Background: background(colors, bottom),
		Canvas:     canvas(colors),
		BarWidth:   slot * 2 / 3,
		BarSpacing: slot - slot*2/3,
		XAxis:      xAxis,
		YAxis:      valueAxis(p, colors),
		Bars:       bars,
	}
	return graph.Render(chart.SVG, w)
}

func categoryCount(p models.Panel) int {
	n := 0
	for _, s := range p.Series {
		if len(s.Points) > n {
			n = len(s.Points)
		}
	}
	return n
}

// --- PIE ---

// slicePalette hands go-chart the slice fills by index. A pie with a single
// value is drawn as a circle from the palette rather than from the value style.
type slicePalette struct {
	chart.ColorPalette
	fills []drawing.Color
}

func (sp slicePalette) GetSeriesColor(index int) drawing.Color {
	if len(sp.fills) == 0 {
		return sp.ColorPalette.GetSeriesColor(index)
	}
	return sp.fills[index%len(sp.fills)]
}

func renderPie(w io.Writer, p models.Panel, colors theme.Colors, opts Options) error {
	var values []chart.Value
	var fills []drawing.Color
	for _, s := range p.Series {
		for _, pt := range s.Points {
			if pt.Value == nil {
				continue
			}
			fill := pt.Color
			if fill == "" {
				fill = s.Color
			}
			label := pt.Caption
			if label == "" {
				label = pt.Label
			}
			fills = append(fills, hex(fill))
			values = append(values, chart.Value{
				Label: label,
				Value: *pt.Value,
				Style: chart.Style{FillColor: hex(fill)},
			})
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("panel %s: no data", p.ID)
	}

	graph := chart.PieChart{
		Width:      opts.width(),
		Height:     p.Height,
		Background: background(colors, 8),
		Canvas:     canvas(colors),
		ColorPalette: slicePalette{
			ColorPalette: chart.DefaultColorPalette,
			fills:        fills,
		},
		SliceStyle: chart.Style{
			StrokeColor: hex(colors.Card),
			StrokeWidth: 1,
			FontColor:   hex(colors.Text),
			FontSize:    9,
		},
		Values: values,
	}
	return graph.Render(chart.SVG, w)
}
