package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vendor-admin/internal/models"
	"vendor-admin/internal/table"
)

// Form layout: five text inputs followed by the cycled choices.
const (
	formFieldName = iota
	formFieldCategory
	formFieldOwner
	formFieldLocation
	formFieldDepartment
	formFieldPayment
	formFieldStatus
	formFieldPaymentOption
	formFieldTaxOption
	formFieldCount
)

var formLabels = [formFieldCount]string{
	"Name", "Category", "Owner", "Location", "Department",
	"Payment method", "Status", "Payment details", "Tax details",
}

var paymentChoices = []models.PaymentMethod{
	"", models.PaymentCard, models.PaymentACH, models.PaymentCheck, models.PaymentWire,
}

var statusChoices = []models.VendorStatus{models.StatusActive, models.StatusInactive}

var dispositionChoices = []string{table.DispositionRequest, table.DispositionManual}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.form = table.NewForm()
	m.formFocus = formFieldName

	m.formInputs = make([]textinput.Model, 5)
	for i := range m.formInputs {
		ti := textinput.New()
		ti.CharLimit = 100
		ti.Width = 32
		ti.Placeholder = formLabels[i]
		m.formInputs[i] = ti
	}
	m.formInputs[formFieldName].Focus()

	m.mode = modeForm
	return m, textinput.Blink
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.Submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.form = nil
		m.formInputs = nil
		m.mode = modeTable
		return m, nil

	case "enter":
		m.syncFormValues()
		return m, m.submitForm()

	case "tab", "down":
		return m.moveFormFocus(1)

	case "shift+tab", "up":
		return m.moveFormFocus(-1)
	}

	if m.formFocus >= formFieldPayment {
		switch msg.String() {
		case "left", "h":
			m.cycleChoice(-1)
		case "right", "l", " ":
			m.cycleChoice(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m Model) moveFormFocus(delta int) (tea.Model, tea.Cmd) {
	if m.formFocus < len(m.formInputs) {
		m.formInputs[m.formFocus].Blur()
	}
	m.formFocus = (m.formFocus + delta + formFieldCount) % formFieldCount
	if m.formFocus < len(m.formInputs) {
		m.formInputs[m.formFocus].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) cycleChoice(delta int) {
	switch m.formFocus {
	case formFieldPayment:
		i := indexOf(paymentChoices, m.form.PaymentMethod)
		m.form.PaymentMethod = paymentChoices[wrap(i+delta, len(paymentChoices))]
	case formFieldStatus:
		i := indexOf(statusChoices, m.form.Status)
		m.form.Status = statusChoices[wrap(i+delta, len(statusChoices))]
	case formFieldPaymentOption:
		i := indexOf(dispositionChoices, m.form.PaymentOption)
		m.form.PaymentOption = dispositionChoices[wrap(i+delta, len(dispositionChoices))]
	case formFieldTaxOption:
		i := indexOf(dispositionChoices, m.form.TaxOption)
		m.form.TaxOption = dispositionChoices[wrap(i+delta, len(dispositionChoices))]
	}
}

func (m *Model) syncFormValues() {
	m.form.Name = m.formInputs[formFieldName].Value()
	m.form.Category = m.formInputs[formFieldCategory].Value()
	m.form.Owner = m.formInputs[formFieldOwner].Value()
	m.form.Location = m.formInputs[formFieldLocation].Value()
	m.form.Department = m.formInputs[formFieldDepartment].Value()
}

func (m Model) formChoiceLabel(field int) string {
	switch field {
	case formFieldPayment:
		if m.form.PaymentMethod == "" {
			return "none"
		}
		return string(m.form.PaymentMethod)
	case formFieldStatus:
		return string(m.form.Status)
	case formFieldPaymentOption:
		return m.form.PaymentOption
	case formFieldTaxOption:
		return m.form.TaxOption
	}
	return ""
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("New vendor"))
	b.WriteString("\n\n")

	for i := 0; i < formFieldCount; i++ {
		label := formLabels[i]
		if i == m.formFocus {
			label = optionCursorStyle.Render(label)
		}
		b.WriteString(label + "\n")
		if i < len(m.formInputs) {
			b.WriteString("  " + m.formInputs[i].View() + "\n")
		} else {
			choice := m.formChoiceLabel(i)
			if i == m.formFocus {
				choice = "< " + choice + " >"
			}
			b.WriteString("  " + choice + "\n")
		}
	}

	if m.form.Submitting {
		b.WriteString("\n" + footerStyle.Render("Creating..."))
	}
	if m.form.Err != "" {
		b.WriteString("\n" + errorStyle.Render(m.form.Err))
	}
	b.WriteString("\n" + helpStyle.Render("enter create · tab next field · esc cancel"))

	return m.overlay(dialogStyle.Render(b.String()))
}

func indexOf[T comparable](xs []T, x T) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
