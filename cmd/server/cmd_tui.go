package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"startupboom/internal/engine"
	"startupboom/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the dashboard in the terminal",
	Long: `Draws the six panels as text charts.

Keys: d toggles dark mode, tab/→ and shift+tab/← cycle the sector filter, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.New(engine.DefaultStore()), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err := p.Run()
		return err
	},
}
