package api

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"startupboom/internal/charts"
	"startupboom/internal/dashboard"
	"startupboom/internal/engine"
	"startupboom/internal/models"
	"startupboom/internal/theme"
)

type Handler struct {
	store  *engine.Store
	charts charts.Options
	logger *zap.Logger
}

func NewHandler(store *engine.Store, opts charts.Options, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, charts: opts, logger: logger}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.GetDashboardPage)
	e.GET("/panels/:file", h.GetPanelSVG)
	e.GET("/healthz", h.GetHealth)

	api := e.Group("/api")
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/sectors", h.GetSectors)
	api.GET("/datasets/:name", h.GetDataset)
	api.GET("/palette", h.GetPalette)
}

// --- HELPERS ---

// viewFromQuery rebuilds the view state carried by ?theme= and ?sector=.
func (h *Handler) viewFromQuery(c echo.Context) (*dashboard.View, error) {
	v, err := dashboard.FromParams(h.store, c.QueryParam("theme"), c.QueryParam("sector"))
	if err != nil {
		if errors.Is(err, theme.ErrUnknownTheme) || errors.Is(err, dashboard.ErrUnknownSector) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return nil, err
	}
	return v, nil
}

func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func paginate[T any](c echo.Context, rows []T) error {
	total := len(rows)
	limit, offset := getPaginationParams(c, total)

	if offset >= total {
		rows = rows[:0]
	} else {
		end := offset + limit
		if end > total {
			end = total
		}
		rows = rows[offset:end]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   rows,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// --- HANDLERS ---

func (h *Handler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// full page model as JSON
func (h *Handler) GetDashboard(c echo.Context) error {
	v, err := h.viewFromQuery(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v.Render())
}

// visible rows of the sector panel
func (h *Handler) GetSectors(c echo.Context) error {
	v, err := h.viewFromQuery(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"selected": v.Sector(),
		"data":     v.VisibleSectors(),
	})
}

// raw literal rows, paginated
func (h *Handler) GetDataset(c echo.Context) error {
	switch c.Param("name") {
	case engine.DatasetFunding:
		return paginate(c, h.store.FundingTrends)
	case engine.DatasetSectors:
		return paginate(c, h.store.SectorShares)
	case engine.DatasetGrowth:
		return paginate(c, h.store.GrowthPredictions)
	case engine.DatasetSurvival:
		return paginate(c, h.store.SurvivalRates)
	case engine.DatasetImpact:
		return paginate(c, h.store.ImpactIndex)
	case engine.DatasetCities:
		return paginate(c, h.store.Cities)
	}
	return echo.NewHTTPError(http.StatusNotFound, "unknown dataset: "+c.Param("name"))
}

func (h *Handler) GetPalette(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"series": theme.Palette,
		"bubble": theme.BubbleColors,
	})
}

// one panel as image/svg+xml
func (h *Handler) GetPanelSVG(c echo.Context) error {
	file := c.Param("file")
	if !strings.HasSuffix(file, ".svg") {
		return echo.NewHTTPError(http.StatusNotFound, "unknown panel: "+file)
	}
	id := strings.TrimSuffix(file, ".svg")

	v, err := h.viewFromQuery(c)
	if err != nil {
		return err
	}
	for _, p := range v.Render().Panels {
		if p.ID != id {
			continue
		}
		var buf bytes.Buffer
		if err := charts.Render(&buf, p, v.Colors(), h.charts); err != nil {
			h.logger.Error("Panel render failed", zap.String("panel", id), zap.Error(err))
			return err
		}
		return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
	}
	return echo.NewHTTPError(http.StatusNotFound, "unknown panel: "+id)
}

// the dashboard itself
func (h *Handler) GetDashboardPage(c echo.Context) error {
	v, err := h.viewFromQuery(c)
	if err != nil {
		return err
	}
	data := v.Render()

	svgs, err := charts.RenderAll(c.Request().Context(), data.Panels, v.Colors(), h.charts)
	if err != nil {
		h.logger.Error("Dashboard render failed", zap.Error(err))
		return err
	}

	page := pageData{
		DashboardData: data,
		Colors:        v.Colors(),
		ToggleURL:     pageURL(v.Theme().Toggle(), v.Sector()),
		ToggleLabel:   "Dark mode",
		Panels:        make([]panelView, len(data.Panels)),
	}
	if v.DarkMode() {
		page.ToggleLabel = "Light mode"
	}
	for i, p := range data.Panels {
		page.Panels[i] = newPanelView(p, svgs[i])
	}
	return c.Render(http.StatusOK, "dashboard.html", page)
}

func pageURL(th theme.Theme, sector string) string {
	q := url.Values{}
	q.Set("theme", th.String())
	q.Set("sector", sector)
	return "/?" + q.Encode()
}

// --- PAGE MODEL ---

type pageData struct {
	*models.DashboardData
	Colors      theme.Colors
	ToggleURL   string
	ToggleLabel string
	Panels      []panelView
}

type panelView struct {
	models.Panel
	SVG    template.HTML
	Legend []legendItem
	Table  valueTable
}

type legendItem struct {
	Name  string
	Color string
}

// valueTable backs the hover tooltips: one row per category, one cell per series.
type valueTable struct {
	Header []string
	Rows   []valueRow
}

type valueRow struct {
	Label string
	Cells []valueCell
}

type valueCell struct {
	Text    string
	Tooltip string
}

func newPanelView(p models.Panel, svg []byte) panelView {
	pv := panelView{Panel: p, SVG: template.HTML(svg)}
	if p.ShowLegend {
		for _, s := range p.Series {
			pv.Legend = append(pv.Legend, legendItem{Name: s.Name, Color: s.Color})
		}
	}

	for _, s := range p.Series {
		pv.Table.Header = append(pv.Table.Header, s.Name)
	}
	rows := 0
	for _, s := range p.Series {
		if len(s.Points) > rows {
			rows = len(s.Points)
		}
	}
	for i := 0; i < rows; i++ {
		row := valueRow{}
		for _, s := range p.Series {
			if i >= len(s.Points) {
				row.Cells = append(row.Cells, valueCell{})
				continue
			}
			pt := s.Points[i]
			if row.Label == "" {
				row.Label = pt.Label
			}
			cell := valueCell{Text: "—", Tooltip: pt.Tooltip}
			if pt.Value != nil {
				cell.Text = strconv.FormatFloat(*pt.Value, 'f', -1, 64)
			}
			row.Cells = append(row.Cells, cell)
		}
		pv.Table.Rows = append(pv.Table.Rows, row)
	}
	return pv
}
