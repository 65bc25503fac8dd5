package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"startupboom/internal/models"
)

func TestFilterSectors(t *testing.T) {
	store := DefaultStore()

	// 1. "All" keeps every row in order
	all := store.FilterSectors(SectorAll)
	if diff := cmp.Diff(store.SectorShares, all); diff != "" {
		t.Errorf("All selection mismatch (-want +got):\n%s", diff)
	}
	if len(all) != 6 {
		t.Fatalf("Expected 6 rows, got %d", len(all))
	}

	// 2. A single sector yields exactly its row
	fintech := store.FilterSectors("Fintech")
	want := []models.SectorShare{{Name: "Fintech", Value: 28}}
	if diff := cmp.Diff(want, fintech); diff != "" {
		t.Errorf("Fintech selection mismatch (-want +got):\n%s", diff)
	}

	// 3. Every selection is a subset with no foreign names
	for _, sector := range Sectors {
		rows := store.FilterSectors(sector)
		if len(rows) == 0 {
			t.Errorf("%s: empty selection", sector)
		}
		for _, row := range rows {
			if sector != SectorAll && row.Name != sector {
				t.Errorf("%s: unexpected row %q", sector, row.Name)
			}
			found := false
			for _, full := range store.SectorShares {
				if full == row {
					found = true
				}
			}
			if !found {
				t.Errorf("%s: row %+v not in full dataset", sector, row)
			}
		}
	}
}

func TestFilterSectorsReturnsCopy(t *testing.T) {
	store := DefaultStore()

	for _, sector := range []string{SectorAll, "Edtech"} {
		rows := store.FilterSectors(sector)
		rows[0].Name = "mutated"
	}
	for _, row := range store.SectorShares {
		if row.Name == "mutated" {
			t.Fatalf("FilterSectors exposed the store's rows")
		}
	}
}

func TestIsSector(t *testing.T) {
	for _, s := range Sectors {
		if !IsSector(s) {
			t.Errorf("IsSector(%q) = false", s)
		}
	}
	for _, s := range []string{"", "all", "Biotech", "fintech"} {
		if IsSector(s) {
			t.Errorf("IsSector(%q) = true", s)
		}
	}
}

func TestGrowthPredictionLiterals(t *testing.T) {
	rows := DefaultStore().GrowthPredictions

	first := rows[0]
	if first.Year != 2024 || first.Actual == nil || *first.Actual != 435 || first.Predicted != 435 {
		t.Fatalf("2024 row incorrect: %+v", first)
	}

	wantPredicted := []float64{498, 572, 635, 682}
	prev := first.Predicted
	for i, row := range rows[1:] {
		if row.Actual != nil {
			t.Errorf("%d: expected null actual, got %v", row.Year, *row.Actual)
		}
		if row.Predicted != wantPredicted[i] {
			t.Errorf("%d: predicted %v, want %v", row.Year, row.Predicted, wantPredicted[i])
		}
		if row.Predicted <= prev {
			t.Errorf("%d: predicted not strictly increasing", row.Year)
		}
		prev = row.Predicted
	}
}

func TestSurvivalStrictlyDecreasing(t *testing.T) {
	rows := DefaultStore().SurvivalRates
	want := []float64{87, 69, 52, 41, 30}
	for i, row := range rows {
		if row.Year != i+1 || row.Survival != want[i] {
			t.Errorf("row %d: got %+v", i, row)
		}
		if i > 0 && row.Survival >= rows[i-1].Survival {
			t.Errorf("year %d does not decrease", row.Year)
		}
	}
}

func TestAggregate(t *testing.T) {
	panels := DefaultStore().Aggregate(SectorAll)

	if len(panels) != 6 {
		t.Fatalf("Expected 6 panels, got %d", len(panels))
	}

	wantIDs := []string{"funding", "sectors", "growth", "survival", "impact", "cities"}
	for i, p := range panels {
		if p.ID != wantIDs[i] {
			t.Errorf("panel %d: id %q, want %q", i, p.ID, wantIDs[i])
		}
		if p.Empty() {
			t.Errorf("panel %s is empty", p.ID)
		}
		if p.Title == "" {
			t.Errorf("panel %s has no title", p.ID)
		}
	}

	// Funding: two series over 7 years
	funding := panels[0]
	if len(funding.Series) != 2 || len(funding.Series[0].Points) != 7 {
		t.Fatalf("funding series shape wrong: %+v", funding.Series)
	}
	if funding.Series[0].Color == funding.Series[1].Color {
		t.Error("funding series share a color")
	}

	// Cities: taller panel, rotated labels
	cities := panels[5]
	if cities.Height <= panels[0].Height {
		t.Errorf("cities height %d not larger than %d", cities.Height, panels[0].Height)
	}
	if cities.XAxis.LabelAngle == 0 {
		t.Error("cities labels not rotated")
	}

	// Survival axis titles
	if panels[3].XAxis.Title != "Years" || panels[3].YAxis.Title != "Survival %" {
		t.Errorf("survival axis titles: %+v %+v", panels[3].XAxis, panels[3].YAxis)
	}
}

func TestSectorPanelSlices(t *testing.T) {
	store := DefaultStore()

	all := store.Aggregate(SectorAll)[1].Series[0].Points
	if len(all) != 6 {
		t.Fatalf("Expected 6 slices, got %d", len(all))
	}
	if all[0].Caption != "Fintech 28%" {
		t.Errorf("caption: %q", all[0].Caption)
	}
	if all[0].Tooltip != "$28B" {
		t.Errorf("tooltip: %q", all[0].Tooltip)
	}

	// Healthtech is the 3rd row: keeps the 3rd palette color and its share of the full set
	health := store.Aggregate("Healthtech")[1].Series[0].Points
	if len(health) != 1 {
		t.Fatalf("Expected 1 slice, got %d", len(health))
	}
	if health[0].Color != "#FFBB28" {
		t.Errorf("Healthtech color %s, want #FFBB28", health[0].Color)
	}
	if health[0].Caption != "Healthtech 15%" {
		t.Errorf("Healthtech caption %q", health[0].Caption)
	}
}

func TestGrowthPanelGap(t *testing.T) {
	growth := DefaultStore().Aggregate(SectorAll)[2]
	actual, predicted := growth.Series[0], growth.Series[1]

	if actual.Points[0].Value == nil {
		t.Fatal("2024 actual missing")
	}
	for _, p := range actual.Points[1:] {
		if p.Value != nil {
			t.Errorf("%s: expected gap", p.Label)
		}
	}
	for _, p := range predicted.Points {
		if p.Value == nil {
			t.Errorf("%s: predicted gap", p.Label)
		}
	}
	if actual.Points[1].Tooltip != "2025 · Actual ($B): n/a" {
		t.Errorf("gap tooltip %q", actual.Points[1].Tooltip)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{28: "28", 7.8: "7.8", 435: "435", 0: "0"}
	for in, want := range cases {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
