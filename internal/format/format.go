// Package format holds the pure display formatters used by the table view and
// the exporter. Every function is total: unknown input falls back to a defined
// display value instead of an error.
package format

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"vendor-admin/internal/models"
)

// EmDash is the display fallback for absent values.
const EmDash = "—"

// Currency renders a USD amount with a thousands separator and exactly two
// fraction digits: 1234.5 -> "$1,234.50".
func Currency(amount float64) string {
	d := decimal.NewFromFloat(amount)
	s := d.Abs().StringFixed(2)
	dot := strings.IndexByte(s, '.')
	out := groupThousands(s[:dot]) + s[dot:]
	if d.IsNegative() {
		return "-$" + out
	}
	return "$" + out
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date renders an ISO date or datetime string as "Mar 5, 2024". Input that
// parses as none of the accepted layouts is returned unchanged.
func Date(iso string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return iso
}

// PaymentMethod maps the enumerated payment rails to their display labels.
// A nil method renders as an em-dash; a present but unmapped value passes
// through raw so the data stays visible.
func PaymentMethod(m *models.PaymentMethod) string {
	if m == nil || *m == "" {
		return EmDash
	}
	switch *m {
	case models.PaymentCard:
		return "Card"
	case models.PaymentACH:
		return "ACH"
	case models.PaymentCheck:
		return "Check"
	case models.PaymentWire:
		return "Wire"
	}
	return string(*m)
}

// StatusLabel capitalises a status for display: "active" -> "Active".
func StatusLabel(s models.VendorStatus) string {
	if s == "" {
		return EmDash
	}
	r := []rune(string(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Initials concatenates the uppercased first rune of each whitespace-separated
// token: "Jane Doe" -> "JD".
func Initials(fullName string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(fullName) {
		r := []rune(tok)
		b.WriteRune(unicode.ToUpper(r[0]))
	}
	return b.String()
}

// Text renders a nullable free-text field, em-dash when absent or empty.
func Text(s *string) string {
	if s == nil || *s == "" {
		return EmDash
	}
	return *s
}
