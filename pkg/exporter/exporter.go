// Package exporter writes vendor lists to Excel workbooks.
package exporter

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v3"

	"vendor-admin/internal/format"
	"vendor-admin/internal/models"
)

// Options defines the configuration for Excel export operations
type Options struct {
	SheetName string // default "Vendors"
}

var headers = []string{
	"ID", "Name", "Category", "Owner", "365-day spend", "30-day spend",
	"90-day spend", "Payment method", "Location", "Department", "Status",
	"Tax details submitted", "1099 (2024)", "1099 (2025)", "Creation date",
}

// Write renders vendors as a single-sheet workbook.
func Write(w io.Writer, vendors []models.Vendor, opts Options) error {
	if opts.SheetName == "" {
		opts.SheetName = "Vendors"
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(opts.SheetName)
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range headers {
		header.AddCell().SetString(h)
	}

	for _, v := range vendors {
		row := sheet.AddRow()
		row.AddCell().SetInt(v.ID)
		row.AddCell().SetString(v.Name)
		row.AddCell().SetString(format.Text(v.Category))
		row.AddCell().SetString(format.Text(v.Owner))
		row.AddCell().SetFloatWithFormat(v.TotalSpend, "#,##0.00")
		row.AddCell().SetFloatWithFormat(v.ThirtyDaySpend, "#,##0.00")
		row.AddCell().SetFloatWithFormat(v.NinetyDaySpend, "#,##0.00")
		row.AddCell().SetString(format.PaymentMethod(v.PaymentMethod))
		row.AddCell().SetString(format.Text(v.Location))
		row.AddCell().SetString(format.Text(v.Department))
		row.AddCell().SetString(format.StatusLabel(v.Status))
		row.AddCell().SetString(format.Text(v.TaxDetailsSubmitted))
		row.AddCell().SetString(format.Text(v.Vendor1099For2024))
		row.AddCell().SetString(format.Text(v.Vendor1099For2025))
		row.AddCell().SetString(format.Date(v.CreationDate))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
