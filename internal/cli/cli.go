package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akarlsons/racetime-export/internal/config"
	"github.com/akarlsons/racetime-export/internal/logger"
	"github.com/akarlsons/racetime-export/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

var (
	flagURL     string
	flagOutput  string
	flagURLList string
	flagOutDir  string
	flagConfig  string
	flagTimeout time.Duration
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "racetime-export",
		Short: "Export race results from events.racetime.pro to CSV",
		Long: `A CLI tool to download competition results tables from
events.racetime.pro and save them as CSV files.

Single mode fetches one competition page (--url) and writes it to --output.
List mode (--urllist) processes a file with one URL per line, writing
race_<EVENT_ID>.csv per competition; a failing URL is reported on standard
error and the run continues with the next one.`,
		RunE:          runExport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define flags
	cmd.Flags().StringVar(&flagURL, "url", "", "Competition results page URL (single mode)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output CSV path (required with --url)")
	cmd.Flags().StringVar(&flagURLList, "urllist", "", "File with one competition URL per line (list mode)")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "Directory for derived CSV files in list mode")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Config file path (default ~/.racetime-export/config.yaml)")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "HTTP request timeout (overrides the config file)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and run metrics")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	switch {
	case flagURL == "" && flagURLList == "":
		return fmt.Errorf("%w: one of --url or --urllist is required", errUsage)
	case flagURL != "" && flagURLList != "":
		return fmt.Errorf("%w: --url and --urllist are mutually exclusive", errUsage)
	case flagURL != "" && flagOutput == "":
		return fmt.Errorf("%w: --output is required with --url", errUsage)
	case flagURLList != "" && flagOutput != "":
		return fmt.Errorf("%w: --output applies to single mode, use --out-dir with --urllist", errUsage)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagTimeout > 0 {
		cfg.Timeout = flagTimeout
	}

	client := scraper.NewClient(cfg.Timeout, cfg.UserAgent)

	if flagURL != "" {
		rows, err := exportSingle(client, flagURL, flagOutput, cfg.Columns)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", rows, flagOutput)
		return nil
	}

	return exportList(client, flagURLList, flagOutDir, cfg.Columns, os.Stdout)
}

// loadConfig reads the explicit --config file, or the default location when
// the flag was not given. An explicit path must exist; the default is
// optional.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(flagConfig)
	}
	return config.LoadDefault()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if kind := classify(err); kind != "" {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", kind, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		if errors.Is(err, errUsage) {
			os.Exit(ExitUsage)
		}
		os.Exit(ExitError)
	}
}
