package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"startupboom/internal/dashboard"
	"startupboom/internal/models"
	"startupboom/internal/theme"
)

const (
	cardWidth  = 44
	labelWidth = 11
	valueWidth = 6
)

type styles struct {
	page     lipgloss.Style
	title    lipgloss.Style
	card     lipgloss.Style
	heading  lipgloss.Style
	subtitle lipgloss.Style
	footer   lipgloss.Style
}

func newStyles(c theme.Colors) styles {
	bg := lipgloss.Color(c.Background)
	return styles{
		page:     lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(c.Text)),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Text)),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.Border)).Background(lipgloss.Color(c.Card)).Padding(0, 1).Width(cardWidth),
		heading:  lipgloss.NewStyle().Bold(true),
		subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Footer)),
	}
}

func render(v *dashboard.View, width int, helpLine string) string {
	data := v.Render()
	st := newStyles(v.Colors())

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		st.title.Render(data.Title),
		"   ",
		st.subtitle.Render(fmt.Sprintf("sector: %s · theme: %s", data.SelectedSector, data.Theme)),
	)

	cards := make([]string, 0, len(data.Panels))
	for _, p := range data.Panels {
		cards = append(cards, st.card.Render(panelBody(p, st)))
	}

	cols := width / (cardWidth + 4)
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := i + cols
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	footer := make([]string, 0, len(data.Footer))
	for _, line := range data.Footer {
		footer = append(footer, st.footer.Render(line))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		lipgloss.JoinVertical(lipgloss.Left, footer...),
		helpLine,
	)
	return st.page.Render(body)
}

func panelBody(p models.Panel, st styles) string {
	var b strings.Builder
	b.WriteString(st.heading.Render(p.Title))
	if p.Subtitle != "" {
		b.WriteString("\n" + st.subtitle.Render(p.Subtitle))
	}
	b.WriteString("\n")

	if p.Kind == models.KindPie {
		for _, s := range p.Series {
			for _, pt := range s.Points {
				dot := lipgloss.NewStyle().Foreground(lipgloss.Color(pt.Color)).Render("●")
				fmt.Fprintf(&b, "\n%s %s  %s", dot, pt.Caption, st.subtitle.Render(pt.Tooltip))
			}
		}
		return b.String()
	}

	maxValue := 0.0
	rows := 0
	for _, s := range p.Series {
		if len(s.Points) > rows {
			rows = len(s.Points)
		}
		for _, pt := range s.Points {
			if pt.Value != nil && *pt.Value > maxValue {
				maxValue = *pt.Value
			}
		}
	}
	barMax := cardWidth - labelWidth - valueWidth - 4

	for i := 0; i < rows; i++ {
		for si, s := range p.Series {
			if i >= len(s.Points) {
				continue
			}
			pt := s.Points[i]
			label := ""
			if si == 0 {
				label = pt.Label
			}
			fmt.Fprintf(&b, "\n%-*s %s", labelWidth, truncate(label, labelWidth), bar(pt.Value, maxValue, barMax, s.Color))
		}
	}

	if p.ShowLegend || len(p.Series) > 1 {
		b.WriteString("\n")
		for _, s := range p.Series {
			sw := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("■")
			fmt.Fprintf(&b, "\n%s %s", sw, s.Name)
		}
	}
	if p.XAxis.Title != "" || p.YAxis.Title != "" {
		fmt.Fprintf(&b, "\n%s", st.subtitle.Render(strings.Trim(p.XAxis.Title+" / "+p.YAxis.Title, " /")))
	}
	return b.String()
}

// bar draws a value as a run of blocks scaled against maxValue. A nil value
// draws a dash so gaps in a series stay visible.
func bar(v *float64, maxValue float64, width int, color string) string {
	if v == nil {
		return "—"
	}
	n := 0
	if maxValue > 0 {
		n = int(math.Round(*v / maxValue * float64(width)))
	}
	if n < 1 && *v > 0 {
		n = 1
	}
	blocks := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", n))
	return blocks + " " + strconv.FormatFloat(*v, 'f', -1, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
