package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vendor-admin/internal/models"
	"vendor-admin/internal/table"
)

// editableField maps a column title to the inline-edit field it opens, for
// the columns that allow editing at all.
func editableField(title string) (table.Field, bool) {
	switch title {
	case "Owners":
		return table.FieldOwner, true
	case "Department":
		return table.FieldDepartment, true
	case "Status":
		return table.FieldStatus, true
	}
	return table.Field{}, false
}

func currentFieldValue(v models.Vendor, f table.Field) string {
	switch f.Name {
	case "owner":
		if v.Owner != nil {
			return *v.Owner
		}
	case "department":
		if v.Department != nil {
			return *v.Department
		}
	case "status":
		return string(v.Status)
	}
	return ""
}

func (m Model) openEdit() (tea.Model, tea.Cmd) {
	v, ok := m.currentVendor()
	if !ok {
		return m, nil
	}
	f, ok := editableField(m.cols[m.colCursor].Title)
	if !ok {
		m.status = "Column is not editable"
		return m, clearStatusAfter()
	}

	m.edit = table.OpenEdit(v.ID, f, currentFieldValue(v, f))
	m.mode = modeEdit

	switch f.Kind {
	case table.FieldSelect:
		m.editCursor = 0
		for i, opt := range f.Options {
			if opt.Value == m.edit.Value {
				m.editCursor = i
			}
		}
		return m, nil
	default:
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 100
		ti.Width = 32
		ti.SetValue(m.edit.Value)
		ti.Focus()
		ti.CursorEnd()
		m.editInput = ti
		return m, textinput.Blink
	}
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.edit.Saving {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.edit.Close()
		m.edit = nil
		m.mode = modeTable
		return m, nil

	case "enter":
		if m.edit.Field.Kind == table.FieldSelect {
			m.edit.SetValue(m.edit.Field.Options[m.editCursor].Value)
		}
		if !m.edit.BeginSave() {
			// empty or unchanged: closed without a call
			m.edit = nil
			m.mode = modeTable
			return m, nil
		}
		return m, m.saveEdit(m.edit.VendorID, m.edit.Field, m.edit.Value)
	}

	if m.edit.Field.Kind == table.FieldSelect {
		switch msg.String() {
		case "up", "k":
			if m.editCursor > 0 {
				m.editCursor--
			}
		case "down", "j":
			if m.editCursor < len(m.edit.Field.Options)-1 {
				m.editCursor++
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.edit.SetValue(m.editInput.Value())
	return m, cmd
}

func (m Model) viewEdit() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render(m.edit.Field.Title))
	b.WriteString("\n\n")

	if m.edit.Field.Kind == table.FieldSelect {
		for i, opt := range m.edit.Field.Options {
			cursor := "  "
			label := opt.Label
			if i == m.editCursor {
				cursor = "> "
				label = optionCursorStyle.Render(label)
			}
			b.WriteString(cursor + label + "\n")
			if opt.Description != "" {
				b.WriteString("    " + optionDescStyle.Render(opt.Description) + "\n")
			}
		}
	} else {
		b.WriteString(m.editInput.View())
		b.WriteString("\n")
	}

	if m.edit.Saving {
		b.WriteString("\n" + footerStyle.Render("Saving..."))
	}
	if m.edit.Err != "" {
		b.WriteString("\n" + errorStyle.Render(m.edit.Err))
	}
	b.WriteString("\n\n" + helpStyle.Render("enter save · esc cancel"))

	return m.overlay(dialogStyle.Render(b.String()))
}

// overlay centers a dialog in the window.
func (m Model) overlay(dialog string) string {
	if m.width == 0 || m.height == 0 {
		return dialog
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}
