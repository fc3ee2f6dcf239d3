package table

import (
	"strings"

	"vendor-admin/internal/models"
)

// ErrUpdateFailed is the flattened message for any inline-edit save failure.
const ErrUpdateFailed = "Failed to update. Please try again."

// FieldKind selects which input control an edit session shows.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldSelect
)

// SelectOption is one choice of an enumerated edit field.
type SelectOption struct {
	Value       string
	Label       string
	Description string
}

// Field describes a single inline-editable vendor attribute.
type Field struct {
	Name        string // field name in the partial-update body
	Title       string
	Kind        FieldKind
	Options     []SelectOption
	Placeholder string
}

// The three attributes editable from the row actions menu.
var (
	FieldStatus = Field{
		Name:  "status",
		Title: "Edit status",
		Kind:  FieldSelect,
		Options: []SelectOption{
			{Value: string(models.StatusActive), Label: "Active", Description: "Vendors that can be paid"},
			{Value: string(models.StatusInactive), Label: "Inactive", Description: "Users will be warned when trying to pay inactive vendors"},
		},
	}
	FieldOwner = Field{
		Name:        "owner",
		Title:       "Edit owners",
		Kind:        FieldText,
		Placeholder: "Owner name",
	}
	FieldDepartment = Field{
		Name:        "department",
		Title:       "Edit department",
		Kind:        FieldText,
		Placeholder: "Department",
	}
)

// Update builds the single-field partial-update body for value.
func (f Field) Update(value string) models.UpdateVendorRequest {
	switch f.Name {
	case "status":
		s := models.VendorStatus(value)
		return models.UpdateVendorRequest{Status: &s}
	case "owner":
		return models.UpdateVendorRequest{Owner: &value}
	case "department":
		return models.UpdateVendorRequest{Department: &value}
	}
	return models.UpdateVendorRequest{}
}

// EditSession is the per-edit state machine: closed -> open -> saving ->
// closed. Opening captures the field's current value; closing always clears
// the transient value and error, whatever the save outcome was.
type EditSession struct {
	VendorID int
	Field    Field
	Original string
	Value    string
	Saving   bool
	Err      string

	open bool
}

// OpenEdit starts a session for one field of one vendor, pre-populated with
// the field's current value.
func OpenEdit(vendorID int, f Field, current string) *EditSession {
	return &EditSession{
		VendorID: vendorID,
		Field:    f,
		Original: current,
		Value:    current,
		open:     true,
	}
}

// IsOpen reports whether the session still needs to be shown.
func (s *EditSession) IsOpen() bool { return s != nil && s.open }

// SetValue records the edited value and clears any stale error.
func (s *EditSession) SetValue(v string) {
	s.Value = v
	s.Err = ""
}

// BeginSave reports whether a network save is required. An empty or
// unchanged value closes the session immediately with no call.
func (s *EditSession) BeginSave() bool {
	if strings.TrimSpace(s.Value) == "" || s.Value == s.Original {
		s.Close()
		return false
	}
	s.Saving = true
	s.Err = ""
	return true
}

// FinishSave applies the outcome of the update call: success closes the
// session, failure keeps it open with the inline error for a retry.
func (s *EditSession) FinishSave(err error) (closed bool) {
	s.Saving = false
	if err != nil {
		s.Err = ErrUpdateFailed
		return false
	}
	s.Close()
	return true
}

// Close dismisses the session and clears transient state.
func (s *EditSession) Close() {
	s.open = false
	s.Value = ""
	s.Err = ""
}
