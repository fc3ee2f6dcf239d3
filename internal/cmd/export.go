package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"vendor-admin/internal/api"
	"vendor-admin/internal/config"
	"vendor-admin/internal/models"
	"vendor-admin/pkg/exporter"
)

var (
	exportOut    string
	exportSearch string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export vendors to an Excel workbook",
	Long: `Fetch every vendor matching the optional search filter and write them
to a single-sheet xlsx workbook.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "vendors.xlsx", "output file")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "filter by name, category or owner")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	vendors, err := fetchAll(cmd.Context(), client, exportSearch)
	if err != nil {
		return err
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	defer f.Close()

	if err := exporter.Write(f, vendors, exporter.Options{}); err != nil {
		return err
	}
	fmt.Printf("Wrote %d vendors to %s\n", len(vendors), exportOut)
	return nil
}

// fetchAll pages through the list endpoint until the reported total is
// reached.
func fetchAll(ctx context.Context, client *api.Client, search string) ([]models.Vendor, error) {
	const pageSize = 200

	var out []models.Vendor
	for skip := 0; ; skip += pageSize {
		list, err := client.ListVendors(ctx, api.ListParams{
			Search: search,
			Skip:   skip,
			Limit:  pageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list vendors: %w", err)
		}
		out = append(out, list.Vendors...)
		if len(out) >= list.Total || len(list.Vendors) == 0 {
			return out, nil
		}
	}
}
