// Package cmd wires the vendorctl commands: the interactive table (default),
// the local contract stub and the xlsx export.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"vendor-admin/internal/api"
	"vendor-admin/internal/config"
	"vendor-admin/internal/logging"
	"vendor-admin/internal/table"
	"vendor-admin/internal/ui"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vendorctl",
	Short: "Terminal admin for the vendor backend",
	Long: `vendorctl is a terminal client for the vendor management backend.

Run it without arguments to open the interactive vendor table: search,
sort, page, select, edit and create vendors against the configured API.
The stub subcommand serves a local in-memory backend for development.`,
	SilenceUsage: true,
	RunE:         runTable,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout}, log)

	return ui.Run(client, table.Options{
		PageSize:     cfg.PageSize,
		Debounce:     cfg.SearchDebounce,
		FetchTimeout: cfg.RequestTimeout,
		Logger:       log,
	}, log)
}

// buildLogger routes logs to the configured file. The interactive UI owns
// the terminal, so without a file they are discarded.
func buildLogger(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return logging.New(io.Discard, cfg.LogLevel), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(f, cfg.LogLevel), f.Close, nil
}
