package engine

import "startupboom/internal/models"

// SectorAll disables the sector filter.
const SectorAll = "All"

// Sectors is the closed set of filter values, in display order.
var Sectors = []string{SectorAll, "Fintech", "Edtech", "Healthtech", "AI/SaaS", "E-commerce", "ClimateTech"}

// Store holds the six literal datasets. Nothing mutates it after construction.
type Store struct {
	FundingTrends     []models.FundingTrendPoint
	SectorShares      []models.SectorShare
	GrowthPredictions []models.GrowthPredictionPoint
	SurvivalRates     []models.SurvivalPoint
	ImpactIndex       []models.ImpactPoint
	Cities            []models.CityPoint
}

// DefaultStore returns the compiled-in sample data.
func DefaultStore() *Store {
	return &Store{
		FundingTrends: []models.FundingTrendPoint{
			{Year: 2018, Global: 220, India: 42},
			{Year: 2019, Global: 257, India: 55},
			{Year: 2020, Global: 295, India: 63},
			{Year: 2021, Global: 621, India: 98},
			{Year: 2022, Global: 467, India: 85},
			{Year: 2023, Global: 390, India: 72},
			{Year: 2024, Global: 435, India: 89},
		},
		SectorShares: []models.SectorShare{
			{Name: "Fintech", Value: 28},
			{Name: "Edtech", Value: 19},
			{Name: "Healthtech", Value: 15},
			{Name: "AI/SaaS", Value: 22},
			{Name: "E-commerce", Value: 12},
			{Name: "ClimateTech", Value: 4},
		},
		GrowthPredictions: []models.GrowthPredictionPoint{
			{Year: 2024, Actual: models.Float(435), Predicted: 435},
			{Year: 2025, Actual: nil, Predicted: 498},
			{Year: 2026, Actual: nil, Predicted: 572},
			{Year: 2027, Actual: nil, Predicted: 635},
			{Year: 2028, Actual: nil, Predicted: 682},
		},
		SurvivalRates: []models.SurvivalPoint{
			{Year: 1, Survival: 87},
			{Year: 2, Survival: 69},
			{Year: 3, Survival: 52},
			{Year: 4, Survival: 41},
			{Year: 5, Survival: 30},
		},
		ImpactIndex: []models.ImpactPoint{
			{Sector: "Fintech", Economic: 7.8, Social: 5.6},
			{Sector: "Edtech", Economic: 6.5, Social: 8.2},
			{Sector: "Healthtech", Economic: 7.2, Social: 8.7},
			{Sector: "AI/SaaS", Economic: 8.5, Social: 6.9},
			{Sector: "E-commerce", Economic: 7.1, Social: 5.8},
			{Sector: "ClimateTech", Economic: 6.3, Social: 9.2},
		},
		Cities: []models.CityPoint{
			{Name: "Bangalore", Startups: 4500, Funding: 89, Growth: 18},
			{Name: "Delhi NCR", Startups: 3800, Funding: 76, Growth: 15},
			{Name: "Mumbai", Startups: 2900, Funding: 65, Growth: 12},
			{Name: "Hyderabad", Startups: 1800, Funding: 42, Growth: 20},
			{Name: "Pune", Startups: 1200, Funding: 28, Growth: 17},
		},
	}
}

// Dataset names double as panel IDs.
const (
	DatasetFunding  = "funding"
	DatasetSectors  = "sectors"
	DatasetGrowth   = "growth"
	DatasetSurvival = "survival"
	DatasetImpact   = "impact"
	DatasetCities   = "cities"
)

var DatasetNames = []string{DatasetFunding, DatasetSectors, DatasetGrowth, DatasetSurvival, DatasetImpact, DatasetCities}
