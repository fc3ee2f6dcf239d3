package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vendor-admin/internal/models"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{999.999, "$1,000.00"},
		{15459.47, "$15,459.47"},
		{1000000, "$1,000,000.00"},
		{12.3, "$12.30"},
		{-42.5, "-$42.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.amount))
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "Mar 5, 2024", Date("2024-03-05"))
	assert.Equal(t, "Mar 5, 2024", Date("2024-03-05T14:30:00Z"))
	assert.Equal(t, "Dec 31, 2023", Date("2023-12-31T23:59:59.123456Z"))
	// unparseable input passes through
	assert.Equal(t, "not-a-date", Date("not-a-date"))
	assert.Equal(t, "", Date(""))
}

func TestPaymentMethod(t *testing.T) {
	card := models.PaymentCard
	ach := models.PaymentACH
	check := models.PaymentCheck
	wire := models.PaymentWire
	odd := models.PaymentMethod("barter")

	assert.Equal(t, "Card", PaymentMethod(&card))
	assert.Equal(t, "ACH", PaymentMethod(&ach))
	assert.Equal(t, "Check", PaymentMethod(&check))
	assert.Equal(t, "Wire", PaymentMethod(&wire))
	assert.Equal(t, EmDash, PaymentMethod(nil))
	// present but unmapped values pass through raw
	assert.Equal(t, "barter", PaymentMethod(&odd))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Active", StatusLabel(models.StatusActive))
	assert.Equal(t, "Inactive", StatusLabel(models.StatusInactive))
	assert.Equal(t, "Pending", StatusLabel(models.StatusPending))
	assert.Equal(t, EmDash, StatusLabel(""))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("Jane Doe"))
	assert.Equal(t, "C", Initials("Cher"))
	assert.Equal(t, "DA", Initials("dana afkhami"))
	assert.Equal(t, "JMD", Initials("Jean  Michel   Doe"))
	assert.Equal(t, "", Initials(""))
	assert.Equal(t, "", Initials("   "))
}

func TestText(t *testing.T) {
	s := "Engineering"
	empty := ""
	assert.Equal(t, "Engineering", Text(&s))
	assert.Equal(t, EmDash, Text(nil))
	assert.Equal(t, EmDash, Text(&empty))
}
