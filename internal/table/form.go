package table

import (
	"strings"

	"vendor-admin/internal/models"
)

// Form error and disposition constants.
const (
	ErrNameRequired = "Vendor name is required"
	ErrCreateFailed = "Failed to create vendor. Please try again."

	// Payment and tax details can be requested from the vendor or entered
	// manually; the choice is form-local and not part of the create body.
	DispositionRequest = "request"
	DispositionManual  = "manual"
)

// Form holds the new-vendor form state: a linear single-pass form whose only
// client-side validation is a non-empty name.
type Form struct {
	Name          string
	Category      string
	Owner         string
	Location      string
	Department    string
	PaymentMethod models.PaymentMethod // empty means unset
	Status        models.VendorStatus

	PaymentOption string
	TaxOption     string

	Submitting bool
	Err        string
}

// NewForm returns a form at its defaults.
func NewForm() *Form {
	return &Form{
		Status:        models.StatusActive,
		PaymentOption: DispositionRequest,
		TaxOption:     DispositionRequest,
	}
}

// Reset returns every field to its default.
func (f *Form) Reset() {
	*f = *NewForm()
}

// BeginSubmit validates locally and builds the create request. An empty name
// surfaces the inline error and reports false: no network call is made.
func (f *Form) BeginSubmit() (models.CreateVendorRequest, bool) {
	if strings.TrimSpace(f.Name) == "" {
		f.Err = ErrNameRequired
		return models.CreateVendorRequest{}, false
	}
	f.Submitting = true
	f.Err = ""
	return models.CreateVendorRequest{
		Name:          strings.TrimSpace(f.Name),
		Category:      strings.TrimSpace(f.Category),
		Owner:         strings.TrimSpace(f.Owner),
		PaymentMethod: f.PaymentMethod,
		Location:      strings.TrimSpace(f.Location),
		Department:    strings.TrimSpace(f.Department),
		Status:        f.Status,
	}, true
}

// FinishSubmit applies the outcome of the create call. Success resets the
// form to defaults and reports true so the parent can close it and refresh
// the list; failure keeps the entered values for correction.
func (f *Form) FinishSubmit(err error) (created bool) {
	f.Submitting = false
	if err != nil {
		f.Err = ErrCreateFailed
		return false
	}
	f.Reset()
	return true
}
