package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"startupboom/internal/charts"
	"startupboom/internal/dashboard"
	"startupboom/internal/engine"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the panel SVGs and the page model to a directory",
	Long: `Renders every panel for the given theme and sector and writes
<panel>.svg plus dashboard.json into the output directory.

Example:
  startupboom export --out ./out --theme dark --sector Fintech`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")
	themeName, _ := cmd.Flags().GetString("theme")
	sector, _ := cmd.Flags().GetString("sector")

	return export(cmd, outDir, themeName, sector)
}

func export(cmd *cobra.Command, outDir, themeName, sector string) error {
	v, err := dashboard.FromParams(engine.DefaultStore(), themeName, sector)
	if err != nil {
		return err
	}
	data := v.Render()

	svgs, err := charts.RenderAll(cmd.Context(), data.Panels, v.Colors(), charts.Options{Width: cfg.Charts.Width})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for i, p := range data.Panels {
		path := filepath.Join(outDir, p.ID+".svg")
		if err := os.WriteFile(path, svgs[i], 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Debug("Wrote panel", zap.String("path", path))
	}

	model, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "dashboard.json"), model, 0o644); err != nil {
		return fmt.Errorf("failed to write dashboard.json: %w", err)
	}

	logger.Info("Export complete",
		zap.String("dir", outDir),
		zap.String("theme", data.Theme),
		zap.String("sector", data.SelectedSector),
		zap.Int("panels", len(data.Panels)))
	return nil
}
