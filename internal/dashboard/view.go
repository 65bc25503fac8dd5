// Package dashboard owns the dashboard's UI state (theme and selected sector)
// and turns it, together with the literal store, into a page model.
package dashboard

import (
	"errors"
	"fmt"

	"startupboom/internal/engine"
	"startupboom/internal/models"
	"startupboom/internal/theme"
)

const Title = "Startup Boom Analysis – Curated by Anurag Ranjan"

var Footer = []string{
	"Data based on research from 2018-2024. Predictions use combined CAGR & logistic modeling.",
	"© 2025 Startup Boom Analysis Dashboard",
}

var ErrUnknownSector = errors.New("unknown sector")

// View is the single dashboard view. The zero value is not usable; use New.
type View struct {
	store  *engine.Store
	theme  theme.Theme
	sector string
}

// New returns a view in its initial state: light theme, no sector filter.
func New(store *engine.Store) *View {
	return &View{store: store, theme: theme.Light, sector: engine.SectorAll}
}

func (v *View) ToggleDarkMode() {
	v.theme = v.theme.Toggle()
}

// SelectSector sets the sector filter. Names outside engine.Sectors are
// rejected and leave the current selection untouched.
func (v *View) SelectSector(name string) error {
	if !engine.IsSector(name) {
		return fmt.Errorf("%w: %q", ErrUnknownSector, name)
	}
	v.sector = name
	return nil
}

// CycleSector moves the selection step places through engine.Sectors,
// wrapping at both ends.
func (v *View) CycleSector(step int) {
	cur := 0
	for i, name := range engine.Sectors {
		if name == v.sector {
			cur = i
			break
		}
	}
	n := len(engine.Sectors)
	v.sector = engine.Sectors[((cur+step)%n+n)%n]
}

func (v *View) DarkMode() bool { return v.theme.IsDark() }
func (v *View) Theme() theme.Theme { return v.theme }
func (v *View) Sector() string { return v.sector }
func (v *View) Colors() theme.Colors { return v.theme.Colors() }

// VisibleSectors returns the rows of the sector panel under the current filter.
func (v *View) VisibleSectors() []models.SectorShare {
	return v.store.FilterSectors(v.sector)
}

// Render builds the page model. It depends only on the view state and the store.
func (v *View) Render() *models.DashboardData {
	sectors := make([]string, len(engine.Sectors))
	copy(sectors, engine.Sectors)
	footer := make([]string, len(Footer))
	copy(footer, Footer)

	return &models.DashboardData{
		Title:          Title,
		Theme:          v.theme.String(),
		DarkMode:       v.theme.IsDark(),
		SelectedSector: v.sector,
		Sectors:        sectors,
		Panels:         v.store.Aggregate(v.sector),
		Footer:         footer,
	}
}

// FromParams builds a view from the textual theme and sector values carried
// by a request. Empty values keep the defaults.
func FromParams(store *engine.Store, themeName, sector string) (*View, error) {
	v := New(store)
	th, err := theme.ParseTheme(themeName)
	if err != nil {
		return nil, err
	}
	v.theme = th
	if sector != "" {
		if err := v.SelectSector(sector); err != nil {
			return nil, err
		}
	}
	return v, nil
}
