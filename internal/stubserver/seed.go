package stubserver

import (
	"vendor-admin/internal/models"
)

func str(s string) *string { return &s }

func pm(m models.PaymentMethod) *models.PaymentMethod { return &m }

// SeedDemo loads the demo dataset. Dates are staggered so the default
// newest-first ordering is visible.
func (s *Server) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range demoVendors() {
		s.add(v)
	}
}

func demoVendors() []models.Vendor {
	return []models.Vendor{
		{
			Name: "LinkedIn", Category: str("SaaS / Software"), Owner: str("Dana Afkhami"),
			TotalSpend: 15459.47, PaymentMethod: pm(models.PaymentCard),
			Location: str("Boston"), Department: str("Implementations"),
			Status: models.StatusActive, TaxDetailsSubmitted: str("No"),
			Vendor1099For2024: str("No"), Vendor1099For2025: str("No"),
			CreationDate: "2024-01-12T09:00:00Z",
		},
		{
			Name: "Workgrounds INC", Category: str("Lodging"),
			TotalSpend: 11368.00, PaymentMethod: pm(models.PaymentCard),
			Status: models.StatusActive, TaxDetailsSubmitted: str("No"),
			CreationDate: "2024-02-03T09:00:00Z",
		},
		{
			Name: "Airalo", Category: str("Lodging"),
			TotalSpend: 11181.63, PaymentMethod: pm(models.PaymentCard),
			Status: models.StatusActive, CreationDate: "2024-02-18T09:00:00Z",
		},
		{
			Name: "Delta", Category: str("Travel"), Owner: str("Miguel Torres"),
			TotalSpend: 9822.14, ThirtyDaySpend: 412.80, NinetyDaySpend: 2250.00,
			PaymentMethod: pm(models.PaymentCard), Location: str("Atlanta"),
			Department: str("Sales"), Status: models.StatusActive,
			CreationDate: "2024-03-05T09:00:00Z",
		},
		{
			Name: "Peamill", Category: str("Accounting"), Owner: str("Jane Doe"),
			TotalSpend: 8400.00, PaymentMethod: pm(models.PaymentACH),
			Location: str("New York"), Department: str("Finance"),
			Status: models.StatusActive, TaxDetailsSubmitted: str("Yes"),
			Vendor1099For2024: str("Yes"), CreationDate: "2024-03-22T09:00:00Z",
		},
		{
			Name: "Uber", Category: str("Service Providers"),
			TotalSpend: 6120.45, ThirtyDaySpend: 845.20, NinetyDaySpend: 2310.75,
			PaymentMethod: pm(models.PaymentCard), Status: models.StatusActive,
			CreationDate: "2024-04-09T09:00:00Z",
		},
		{
			Name: "Hyatt Union Square New York", Category: str("Lodging"),
			TotalSpend: 5230.00, PaymentMethod: pm(models.PaymentCard),
			Location: str("New York"), Status: models.StatusInactive,
			CreationDate: "2024-05-14T09:00:00Z",
		},
		{
			Name: "Cloudy", Category: str("Electronics"), Owner: str("Priya Patel"),
			TotalSpend: 4875.90, PaymentMethod: pm(models.PaymentCheck),
			Department: str("IT"), Status: models.StatusPending,
			CreationDate: "2024-06-27T09:00:00Z",
		},
		{
			Name: "Amazon Web Services", Category: str("SaaS / Software"), Owner: str("Sam Okafor"),
			TotalSpend: 48210.33, ThirtyDaySpend: 4020.11, NinetyDaySpend: 12380.42,
			PaymentMethod: pm(models.PaymentACH), Location: str("Seattle"),
			Department: str("Engineering"), Status: models.StatusActive,
			TaxDetailsSubmitted: str("Yes"), CreationDate: "2024-07-02T09:00:00Z",
		},
		{
			Name: "Google Workspace", Category: str("SaaS / Software"),
			TotalSpend: 3150.00, ThirtyDaySpend: 262.50, NinetyDaySpend: 787.50,
			PaymentMethod: pm(models.PaymentCard), Department: str("Operations"),
			Status: models.StatusActive, CreationDate: "2024-08-19T09:00:00Z",
		},
		{
			Name: "Slack Technologies", Category: str("SaaS / Software"), Owner: str("Dana Afkhami"),
			TotalSpend: 2890.75, ThirtyDaySpend: 240.90, PaymentMethod: pm(models.PaymentWire),
			Department: str("Engineering"), Status: models.StatusActive,
			CreationDate: "2024-09-30T09:00:00Z",
		},
		{
			Name: "Salesforce", Category: str("SaaS / Software"), Owner: str("Miguel Torres"),
			TotalSpend: 21500.00, ThirtyDaySpend: 1791.66, NinetyDaySpend: 5375.00,
			PaymentMethod: pm(models.PaymentWire), Location: str("San Francisco"),
			Department: str("Sales"), Status: models.StatusActive,
			TaxDetailsSubmitted: str("Yes"), CreationDate: "2024-10-21T09:00:00Z",
		},
	}
}
