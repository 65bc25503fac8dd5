package models

// --- LITERAL DATASET ROWS ---

type FundingTrendPoint struct {
	Year   int     `json:"year"`
	Global float64 `json:"global"`
	India  float64 `json:"india"`
}

// SectorShare.Value is a share-like number; the six rows need not sum to 100.
type SectorShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GrowthPredictionPoint.Actual is nil for years without historical data.
type GrowthPredictionPoint struct {
	Year      int      `json:"year"`
	Actual    *float64 `json:"actual"`
	Predicted float64  `json:"predicted"`
}

type SurvivalPoint struct {
	Year     int     `json:"year"`
	Survival float64 `json:"survival"`
}

type ImpactPoint struct {
	Sector   string  `json:"sector"`
	Economic float64 `json:"economic"`
	Social   float64 `json:"social"`
}

type CityPoint struct {
	Name     string  `json:"name"`
	Startups int     `json:"startups"`
	Funding  float64 `json:"funding"`
	Growth   float64 `json:"growth"`
}

// --- VIEW MODEL ---

// DashboardData is everything a surface needs to draw the page.
type DashboardData struct {
	Title          string   `json:"title"`
	Theme          string   `json:"theme"`
	DarkMode       bool     `json:"dark_mode"`
	SelectedSector string   `json:"selected_sector"`
	Sectors        []string `json:"sectors"`
	Panels         []Panel  `json:"panels"`
	Footer         []string `json:"footer"`
}

type ChartKind string

const (
	KindLine          ChartKind = "line"
	KindPie           ChartKind = "pie"
	KindArea          ChartKind = "area"
	KindBar           ChartKind = "bar"
	KindHorizontalBar ChartKind = "horizontal_bar"
	KindGroupedBar    ChartKind = "grouped_bar"
)

// Panel is one titled card holding exactly one chart.
type Panel struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	Kind       ChartKind `json:"kind"`
	Height     int       `json:"height"`
	XAxis      Axis      `json:"x_axis"`
	YAxis      Axis      `json:"y_axis"`
	Series     []Series  `json:"series"`
	ShowLegend bool      `json:"show_legend"`
	ShowGrid   bool      `json:"show_grid"`
}

// Empty reports whether no series carries a non-null point.
func (p Panel) Empty() bool {
	for _, s := range p.Series {
		for _, pt := range s.Points {
			if pt.Value != nil {
				return false
			}
		}
	}
	return true
}

type Axis struct {
	Title      string  `json:"title,omitempty"`
	LabelAngle float64 `json:"label_angle,omitempty"`
}

type Series struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Color       string  `json:"color,omitempty"`
	FillOpacity float64 `json:"fill_opacity,omitempty"`
	Points      []Point `json:"points"`
}

// Point is one plotted value. A nil Value is a gap in the series.
// Color overrides the series color (pie slices).
type Point struct {
	Label   string   `json:"label"`
	X       float64  `json:"x"`
	Value   *float64 `json:"value"`
	Color   string   `json:"color,omitempty"`
	Caption string   `json:"caption,omitempty"`
	Tooltip string   `json:"tooltip"`
}

// Float returns a pointer to v, for literal nullable values.
func Float(v float64) *float64 {
	return &v
}
