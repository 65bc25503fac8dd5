package charts

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/goleak"

	"startupboom/internal/engine"
	"startupboom/internal/models"
	"startupboom/internal/theme"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRenderEveryPanel(t *testing.T) {
	panels := engine.DefaultStore().Aggregate(engine.SectorAll)
	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		for _, p := range panels {
			var buf bytes.Buffer
			err := Render(&buf, p, th.Colors(), Options{})
			require.NoError(t, err, "%s/%s", th, p.ID)
			assert.Contains(t, buf.String(), "<svg", "%s/%s", th, p.ID)
		}
	}
}

func TestRenderSingleSectorPie(t *testing.T) {
	panel := engine.DefaultStore().Aggregate("Healthtech")[1]
	require.Len(t, panel.Series[0].Points, 1)
	require.Equal(t, "#FFBB28", panel.Series[0].Points[0].Color)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, panel, theme.Light.Colors(), Options{Width: 320}))
	svg := buf.String()
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "fill:rgba(255,187,40,1.0)")
	assert.NotContains(t, svg, "rgba(106,195,203", "go-chart default series color leaked into the slice")
}

func TestRenderPieKeepsSliceColors(t *testing.T) {
	panel := engine.DefaultStore().Aggregate(engine.SectorAll)[1]

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, panel, theme.Dark.Colors(), Options{}))
	for _, code := range theme.Palette {
		c := drawing.ColorFromHex(strings.TrimPrefix(code, "#"))
		assert.Contains(t, buf.String(), "fill:"+c.String(), code)
	}
}

func TestRenderXYValueAxis(t *testing.T) {
	panels := engine.DefaultStore().Aggregate(engine.SectorAll)
	for _, p := range panels {
		if p.Kind != models.KindLine && p.Kind != models.KindArea {
			continue
		}
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, p, theme.Light.Colors(), Options{}), p.ID)
		svg := buf.String()
		assert.NotContains(t, svg, "922337203685477", "%s: coordinates overflowed", p.ID)
		assert.NotContains(t, svg, ".00</text>", "%s: value ticks should be integers", p.ID)
	}
}

func TestXYSeriesSegments(t *testing.T) {
	growth := engine.DefaultStore().Aggregate(engine.SectorAll)[2]
	require.Equal(t, models.KindArea, growth.Kind)

	series := xySeries(growth)
	require.Len(t, series, 2)
	for _, s := range series {
		cs, ok := s.(chart.ContinuousSeries)
		require.True(t, ok)
		assert.Equal(t, chart.YAxisSecondary, cs.YAxis)
		if cs.Len() == 1 {
			assert.True(t, cs.Style.FillColor.IsZero(), "%s: a single point is not filled", cs.Name)
		} else {
			assert.False(t, cs.Style.FillColor.IsZero(), cs.Name)
		}
	}
}

func TestRenderUnsupportedKind(t *testing.T) {
	p := models.Panel{ID: "x", Kind: "radar", Height: 100}
	err := Render(&bytes.Buffer{}, p, theme.Light.Colors(), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestRenderEmptyPanel(t *testing.T) {
	p := models.Panel{ID: "empty", Kind: models.KindBar, Height: 100}
	assert.Error(t, Render(&bytes.Buffer{}, p, theme.Light.Colors(), Options{}))
}

func TestRenderAllKeepsOrder(t *testing.T) {
	panels := engine.DefaultStore().Aggregate(engine.SectorAll)
	out, err := RenderAll(context.Background(), panels, theme.Dark.Colors(), Options{Width: 400})
	require.NoError(t, err)
	require.Len(t, out, len(panels))
	for i := range out {
		assert.NotEmpty(t, out[i], panels[i].ID)
	}

	// Pie captions only appear in the sectors SVG.
	assert.Contains(t, string(out[1]), "Fintech 28%")
	assert.NotContains(t, string(out[0]), "Fintech 28%")
}

func TestRenderAllPropagatesErrors(t *testing.T) {
	panels := []models.Panel{
		engine.DefaultStore().Aggregate(engine.SectorAll)[0],
		{ID: "bad", Kind: "radar"},
	}
	_, err := RenderAll(context.Background(), panels, theme.Light.Colors(), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestRenderAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RenderAll(ctx, engine.DefaultStore().Aggregate(engine.SectorAll), theme.Light.Colors(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSegments(t *testing.T) {
	v := models.Float
	pts := []models.Point{{Value: v(1)}, {Value: v(2)}, {}, {Value: v(3)}, {}}
	segs := segments(pts)
	require.Len(t, segs, 2)
	assert.Len(t, segs[0], 2)
	assert.Len(t, segs[1], 1)

	assert.Empty(t, segments([]models.Point{{}, {}}))
}

func TestValueRange(t *testing.T) {
	cases := map[float64]float64{621: 700, 87: 90, 4500: 5000, 9.2: 10, 682: 700, 100: 100}
	for maxValue, want := range cases {
		p := models.Panel{Series: []models.Series{{Points: []models.Point{{Value: models.Float(1)}, {Value: models.Float(maxValue)}, {}}}}}
		r := valueRange(p)
		assert.Equal(t, 0.0, r.Min, "%v", maxValue)
		assert.InDelta(t, want, r.Max, 1e-9, "%v", maxValue)
	}
	assert.Equal(t, 1.0, valueRange(models.Panel{}).Max)
}
