// Package theme holds the light/dark color scheme and the chart palette
// shared by every surface (HTML, SVG, terminal).
package theme

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTheme = errors.New("unknown theme")

type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) IsDark() bool { return t == Dark }

// ParseTheme accepts "light", "dark" and the empty string (light).
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Colors maps each semantic role to a hex color.
type Colors struct {
	Background        string `json:"background"`
	Text              string `json:"text"`
	Card              string `json:"card"`
	Border            string `json:"border"`
	Grid              string `json:"grid"`
	Axis              string `json:"axis"`
	TooltipBackground string `json:"tooltip_background"`
	TooltipBorder     string `json:"tooltip_border"`
	TooltipLabel      string `json:"tooltip_label"`
	Muted             string `json:"muted"`
	Footer            string `json:"footer"`
	Control           string `json:"control"`
}

var colorTable = map[Theme]Colors{
	Light: {
		Background:        "#ffffff",
		Text:              "#000000",
		Card:              "#ffffff",
		Border:            "#d1d5db",
		Grid:              "#cccccc",
		Axis:              "#666666",
		TooltipBackground: "#ffffff",
		TooltipBorder:     "#dddddd",
		TooltipLabel:      "#000000",
		Muted:             "#6b7280",
		Footer:            "#4b5563",
		Control:           "#f3f4f6",
	},
	Dark: {
		Background:        "#111827",
		Text:              "#ffffff",
		Card:              "#1f2937",
		Border:            "#374151",
		Grid:              "#555555",
		Axis:              "#aaaaaa",
		TooltipBackground: "#333333",
		TooltipBorder:     "#555555",
		TooltipLabel:      "#ffffff",
		Muted:             "#9ca3af",
		Footer:            "#9ca3af",
		Control:           "#1f2937",
	},
}

func (t Theme) Colors() Colors {
	return colorTable[t]
}
