package engine

import (
	"fmt"
	"math"
	"strconv"

	"startupboom/internal/models"
	"startupboom/internal/theme"
)

const (
	panelHeight     = 256
	tallPanelHeight = 320
)

// IsSector reports whether name belongs to the sector filter set.
func IsSector(name string) bool {
	for _, s := range Sectors {
		if s == name {
			return true
		}
	}
	return false
}

// FilterSectors returns the sector rows visible for the selected sector:
// every row for SectorAll, otherwise the rows whose name matches.
func (s *Store) FilterSectors(selected string) []models.SectorShare {
	if selected == SectorAll {
		return append([]models.SectorShare(nil), s.SectorShares...)
	}
	out := make([]models.SectorShare, 0, 1)
	for _, row := range s.SectorShares {
		if row.Name == selected {
			out = append(out, row)
		}
	}
	return out
}

// Aggregate builds the six panels for the given sector selection.
// The caller is responsible for validating the sector.
func (s *Store) Aggregate(sector string) []models.Panel {
	return []models.Panel{
		s.fundingPanel(),
		s.sectorPanel(sector),
		s.growthPanel(),
		s.survivalPanel(),
		s.impactPanel(),
		s.cityPanel(),
	}
}

func (s *Store) fundingPanel() models.Panel {
	global := models.Series{Key: "global", Name: "Global ($B)", Color: theme.SeriesPrimary}
	india := models.Series{Key: "india", Name: "India ($B)", Color: theme.SeriesSecondary}
	for _, row := range s.FundingTrends {
		label := strconv.Itoa(row.Year)
		global.Points = append(global.Points, point(label, float64(row.Year), models.Float(row.Global), global.Name))
		india.Points = append(india.Points, point(label, float64(row.Year), models.Float(row.India), india.Name))
	}
	return models.Panel{
		ID:         DatasetFunding,
		Title:      "Funding Trends",
		Kind:       models.KindLine,
		Height:     panelHeight,
		Series:     []models.Series{global, india},
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// sectorPanel keeps the slice color and percentage tied to the row's position
// in the full dataset, so a filtered slice looks the same as it does unfiltered.
func (s *Store) sectorPanel(selected string) models.Panel {
	var total float64
	for _, row := range s.SectorShares {
		total += row.Value
	}

	series := models.Series{Key: "value", Name: "Share"}
	for i, row := range s.SectorShares {
		if selected != SectorAll && row.Name != selected {
			continue
		}
		pct := 0.0
		if total > 0 {
			pct = math.Round(row.Value / total * 100)
		}
		series.Points = append(series.Points, models.Point{
			Label:   row.Name,
			X:       float64(i),
			Value:   models.Float(row.Value),
			Color:   theme.PaletteColor(i),
			Caption: fmt.Sprintf("%s %.0f%%", row.Name, pct),
			Tooltip: "$" + formatNumber(row.Value) + "B",
		})
	}
	return models.Panel{
		ID:     DatasetSectors,
		Title:  "Sector-wise Analysis",
		Kind:   models.KindPie,
		Height: panelHeight,
		Series: []models.Series{series},
	}
}

func (s *Store) growthPanel() models.Panel {
	actual := models.Series{Key: "actual", Name: "Actual ($B)", Color: theme.SeriesPrimary, FillOpacity: 0.6}
	predicted := models.Series{Key: "predicted", Name: "Predicted ($B)", Color: theme.SeriesSecondary, FillOpacity: 0.3}
	for _, row := range s.GrowthPredictions {
		label := strconv.Itoa(row.Year)
		actual.Points = append(actual.Points, point(label, float64(row.Year), row.Actual, actual.Name))
		predicted.Points = append(predicted.Points, point(label, float64(row.Year), models.Float(row.Predicted), predicted.Name))
	}
	return models.Panel{
		ID:       DatasetGrowth,
		Title:    "Growth Predictions",
		Subtitle: "Logistic/CAGR model forecast till 2028",
		Kind:     models.KindArea,
		Height:   panelHeight,
		Series:   []models.Series{actual, predicted},
		ShowGrid: true,
	}
}

func (s *Store) survivalPanel() models.Panel {
	survival := models.Series{Key: "survival", Name: "Survival Rate %", Color: theme.SeriesSurvival}
	for _, row := range s.SurvivalRates {
		survival.Points = append(survival.Points, point(strconv.Itoa(row.Year), float64(row.Year), models.Float(row.Survival), survival.Name))
	}
	return models.Panel{
		ID:       DatasetSurvival,
		Title:    "Survival Rate",
		Subtitle: "Startup mortality vs. unicorn probability",
		Kind:     models.KindBar,
		Height:   panelHeight,
		XAxis:    models.Axis{Title: "Years"},
		YAxis:    models.Axis{Title: "Survival %"},
		Series:   []models.Series{survival},
		ShowGrid: true,
	}
}

func (s *Store) impactPanel() models.Panel {
	economic := models.Series{Key: "economic", Name: "Economic Impact", Color: theme.SeriesPrimary}
	social := models.Series{Key: "social", Name: "Social Impact", Color: theme.SeriesSecondary}
	for i, row := range s.ImpactIndex {
		economic.Points = append(economic.Points, point(row.Sector, float64(i), models.Float(row.Economic), economic.Name))
		social.Points = append(social.Points, point(row.Sector, float64(i), models.Float(row.Social), social.Name))
	}
	return models.Panel{
		ID:         DatasetImpact,
		Title:      "Impact Index",
		Subtitle:   "Economic vs Social impact by sector",
		Kind:       models.KindHorizontalBar,
		Height:     panelHeight,
		Series:     []models.Series{economic, social},
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func (s *Store) cityPanel() models.Panel {
	startups := models.Series{Key: "startups", Name: "Number of Startups (x100)", Color: theme.SeriesPrimary}
	funding := models.Series{Key: "funding", Name: "Total Funding ($B)", Color: theme.SeriesSecondary}
	for i, row := range s.Cities {
		startups.Points = append(startups.Points, point(row.Name, float64(i), models.Float(float64(row.Startups)), startups.Name))
		funding.Points = append(funding.Points, point(row.Name, float64(i), models.Float(row.Funding), funding.Name))
	}
	return models.Panel{
		ID:         DatasetCities,
		Title:      "Urban & Policy Layer",
		Subtitle:   "Startup ecosystem by major Indian cities",
		Kind:       models.KindGroupedBar,
		Height:     tallPanelHeight,
		XAxis:      models.Axis{LabelAngle: -45},
		Series:     []models.Series{startups, funding},
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func point(label string, x float64, v *float64, seriesName string) models.Point {
	tip := label + " · " + seriesName + ": "
	if v == nil {
		tip += "n/a"
	} else {
		tip += formatNumber(*v)
	}
	return models.Point{Label: label, X: x, Value: v, Tooltip: tip}
}

// formatNumber prints v without trailing zeros (28, 7.8).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
