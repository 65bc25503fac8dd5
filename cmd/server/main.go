package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"startupboom/internal/config"
	"startupboom/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd serves the dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "startupboom",
	Short: "Startup Boom Analysis dashboard",
	Long: `Serves the Startup Boom Analysis dashboard: six chart panels over
compiled-in sample data, with a dark-mode toggle and a sector filter.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	exportCmd.Flags().StringP("out", "o", "dashboard-export", "output directory")
	exportCmd.Flags().String("theme", "light", "light or dark")
	exportCmd.Flags().String("sector", "All", "sector filter")

	rootCmd.AddCommand(serveCmd, tuiCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
