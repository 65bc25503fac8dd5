package theme

// Palette is the cyclic series palette (pie slices).
var Palette = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884d8", "#82ca9d"}

// Fixed series colors.
const (
	SeriesPrimary   = "#8884d8"
	SeriesSecondary = "#82ca9d"
	SeriesSurvival  = "#ff8042"
)

// PaletteColor returns the palette entry for index i, wrapping around.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// Severity colors. Declared for bubble charts; no panel draws one yet.
type Severity struct {
	High   string `json:"high"`
	Medium string `json:"medium"`
	Low    string `json:"low"`
}

var BubbleColors = Severity{
	High:   "#ff6b6b",
	Medium: "#feca57",
	Low:    "#1dd1a1",
}
