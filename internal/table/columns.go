package table

import (
	"vendor-admin/internal/format"
	"vendor-admin/internal/models"
)

// Align picks the horizontal alignment of a column's cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column: its header, whether the list endpoint
// can sort by it (SortKey empty means display-only) and how a vendor renders
// into its cell. The whole table is driven by this model; there is exactly
// one row renderer.
type Column struct {
	SortKey string
	Title   string
	Width   int
	Align   Align
	Cell    func(v models.Vendor) string
}

// Columns is the admin table's column set, in display order.
func Columns() []Column {
	return []Column{
		{
			SortKey: "name",
			Title:   "Vendor",
			Width:   24,
			Cell:    func(v models.Vendor) string { return v.Name },
		},
		{
			Title: "Owners",
			Width: 20,
			Cell: func(v models.Vendor) string {
				if v.Owner == nil || *v.Owner == "" {
					return format.EmDash
				}
				// initials badge next to the name, like the avatar chip
				return "[" + format.Initials(*v.Owner) + "] " + *v.Owner
			},
		},
		{
			SortKey: "total_spend",
			Title:   "365-day spend",
			Width:   14,
			Align:   AlignRight,
			Cell:    func(v models.Vendor) string { return format.Currency(v.TotalSpend) },
		},
		{
			SortKey: "thirty_day_spend",
			Title:   "30-day spend",
			Width:   13,
			Align:   AlignRight,
			Cell:    func(v models.Vendor) string { return format.Currency(v.ThirtyDaySpend) },
		},
		{
			Title: "Description",
			Width: 20,
			Cell:  func(v models.Vendor) string { return format.Text(v.Category) },
		},
		{
			SortKey: "department",
			Title:   "Department",
			Width:   16,
			Cell:    func(v models.Vendor) string { return format.Text(v.Department) },
		},
		{
			Title: "Location",
			Width: 14,
			Cell:  func(v models.Vendor) string { return format.Text(v.Location) },
		},
		{
			SortKey: "creation_date",
			Title:   "Creation date",
			Width:   13,
			Cell:    func(v models.Vendor) string { return format.Date(v.CreationDate) },
		},
		{
			SortKey: "status",
			Title:   "Status",
			Width:   9,
			Cell:    func(v models.Vendor) string { return format.StatusLabel(v.Status) },
		},
		{
			Title: "Payment",
			Width: 8,
			Cell:  func(v models.Vendor) string { return format.PaymentMethod(v.PaymentMethod) },
		},
	}
}
