package models

import "fmt"

// VendorStatus is the closed set of lifecycle states a vendor can be in.
type VendorStatus string

const (
	StatusActive   VendorStatus = "active"
	StatusInactive VendorStatus = "inactive"
	StatusPending  VendorStatus = "pending"
)

// Valid reports whether s is one of the enumerated statuses.
func (s VendorStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// PaymentMethod is the closed set of payment rails a vendor can be paid on.
type PaymentMethod string

const (
	PaymentCard  PaymentMethod = "card"
	PaymentACH   PaymentMethod = "ach"
	PaymentCheck PaymentMethod = "check"
	PaymentWire  PaymentMethod = "wire"
)

// Valid reports whether m is one of the enumerated payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentACH, PaymentCheck, PaymentWire:
		return true
	}
	return false
}

// SortOrder is the direction accepted by the list endpoint.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Flip returns the opposite order.
func (o SortOrder) Flip() SortOrder {
	if o == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// SortableKey reports whether the list endpoint accepts key as sort_by.
func SortableKey(key string) bool {
	switch key {
	case "name", "total_spend", "thirty_day_spend", "department", "creation_date", "status":
		return true
	}
	return false
}

// Vendor is the server-owned entity. The client treats the spend columns and
// timestamps as read-only; creation_date and updated_at are ISO date strings
// exactly as the backend serialises them.
type Vendor struct {
	ID                  int            `json:"id"`
	Name                string         `json:"name"`
	Category            *string        `json:"category"`
	Owner               *string        `json:"owner"`
	TotalSpend          float64        `json:"total_spend"`
	ThirtyDaySpend      float64        `json:"thirty_day_spend"`
	NinetyDaySpend      float64        `json:"ninety_day_spend"`
	PaymentMethod       *PaymentMethod `json:"payment_method"`
	Location            *string        `json:"location"`
	Department          *string        `json:"department"`
	Status              VendorStatus   `json:"status"`
	TaxDetailsSubmitted *string        `json:"tax_details_submitted"`
	Vendor1099For2024   *string        `json:"vendor_1099_2024"`
	Vendor1099For2025   *string        `json:"vendor_1099_2025"`
	CreationDate        string         `json:"creation_date"`
	UpdatedAt           *string        `json:"updated_at"`
}

// VendorList is the envelope returned by GET /vendors.
type VendorList struct {
	Vendors []Vendor `json:"vendors"`
	Total   int      `json:"total"`
	Skip    int      `json:"skip"`
	Limit   int      `json:"limit"`
}

// CreateVendorRequest is the creatable subset of Vendor. The server assigns
// id, creation_date and the spend columns.
type CreateVendorRequest struct {
	Name          string        `json:"name"`
	Category      string        `json:"category,omitempty"`
	Owner         string        `json:"owner,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Location      string        `json:"location,omitempty"`
	Department    string        `json:"department,omitempty"`
	Status        VendorStatus  `json:"status,omitempty"`
}

// Validate checks the request against the entity invariants.
func (r CreateVendorRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Status != "" && !r.Status.Valid() {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	if r.PaymentMethod != "" && !r.PaymentMethod.Valid() {
		return fmt.Errorf("invalid payment_method %q", r.PaymentMethod)
	}
	return nil
}

// UpdateVendorRequest is a partial update. Nil fields are left unchanged by
// the server; the body carries only what changed.
type UpdateVendorRequest struct {
	Name          *string        `json:"name,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Owner         *string        `json:"owner,omitempty"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`
	Location      *string        `json:"location,omitempty"`
	Department    *string        `json:"department,omitempty"`
	Status        *VendorStatus  `json:"status,omitempty"`
}

// Validate checks the provided fields against the entity invariants.
func (r UpdateVendorRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if r.Status != nil && !r.Status.Valid() {
		return fmt.Errorf("invalid status %q", *r.Status)
	}
	if r.PaymentMethod != nil && !r.PaymentMethod.Valid() {
		return fmt.Errorf("invalid payment_method %q", *r.PaymentMethod)
	}
	return nil
}

// Statistics is the aggregate returned by GET /api/stats/summary.
type Statistics struct {
	TotalVendors    int     `json:"total_vendors"`
	ActiveVendors   int     `json:"active_vendors"`
	InactiveVendors int     `json:"inactive_vendors"`
	TotalSpend      float64 `json:"total_spend"`
}
