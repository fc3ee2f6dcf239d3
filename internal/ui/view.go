package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"vendor-admin/internal/models"
	"vendor-admin/internal/table"
)

func (m Model) View() string {
	switch m.mode {
	case modeEdit:
		if m.edit.IsOpen() {
			return m.viewEdit()
		}
	case modeForm:
		if m.form != nil {
			return m.viewForm()
		}
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Vendors"))
	b.WriteString("  ")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.activeTab != 0 {
		b.WriteString(footerStyle.Render("Nothing here yet."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab switch tab · q quit"))
		return b.String()
	}

	b.WriteString(m.viewSearchBar())
	b.WriteString("\n")

	if m.snap.Err != "" {
		b.WriteString(errorStyle.Render(m.snap.Err))
		b.WriteString(footerStyle.Render("  (r to retry)"))
		b.WriteString("\n")
	}

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewRows())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑↓ move · ←→ column · s sort · / search · space select · e edit · n new · d delete · [ ] page · q quit"))
	return b.String()
}

func (m Model) viewTabs() string {
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if i == m.activeTab {
			parts[i] = activeTabStyle.Render(t)
		} else {
			parts[i] = tabStyle.Render(t)
		}
	}
	return strings.Join(parts, "")
}

func (m Model) viewSearchBar() string {
	if m.mode == modeSearch {
		return "Search: " + m.searchInput.View()
	}
	if m.snap.SearchTerm != "" {
		return "Search: " + m.snap.SearchTerm + helpStyle.Render("  (/ to change)")
	}
	return helpStyle.Render("Press / to search")
}

func (m Model) viewHeader() string {
	cells := make([]string, 0, len(m.cols)+1)
	cells = append(cells, "   ") // checkbox gutter

	for i, col := range m.cols {
		title := col.Title
		if col.SortKey != "" && col.SortKey == m.snap.SortBy {
			if m.snap.SortOrder == models.SortDesc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		cell := pad(title, col.Width, col.Align)
		if i == m.colCursor {
			cell = headerCursorStyle.Render(cell)
		} else {
			cell = headerStyle.Render(cell)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}

func (m Model) viewRows() string {
	if m.snap.Loading && len(m.snap.Vendors) == 0 {
		return footerStyle.Render("Loading vendors...")
	}
	if len(m.snap.Vendors) == 0 {
		return footerStyle.Render("No vendors found")
	}

	rows := make([]string, 0, len(m.snap.Vendors))
	for i, v := range m.snap.Vendors {
		mark := "[ ]"
		if m.snap.Selected[v.ID] {
			mark = selectedMarkStyle.Render("[x]")
		}

		cells := make([]string, 0, len(m.cols)+1)
		cells = append(cells, mark)
		for _, col := range m.cols {
			cells = append(cells, pad(col.Cell(v), col.Width, col.Align))
		}
		line := strings.Join(cells, " ")
		if i == m.cursor {
			line = cursorRowStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewFooter() string {
	var parts []string

	if m.snap.Total == 0 {
		parts = append(parts, "0 matching vendors")
	} else {
		first := (m.snap.Page-1)*m.snap.PageSize + 1
		last := first + len(m.snap.Vendors) - 1
		parts = append(parts, fmt.Sprintf("%d–%d of %d matching vendors", first, last, m.snap.Total))
	}
	parts = append(parts, fmt.Sprintf("page %d/%d", m.snap.Page, m.snap.TotalPages()))

	if m.snap.Loading {
		parts = append(parts, m.spinner.View()+"loading")
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}

	footer := footerStyle.Render(strings.Join(parts, " · "))
	if n := len(m.snap.Selected); n > 0 {
		bar := selectedMarkStyle.Render(fmt.Sprintf("%d selected", n)) +
			helpStyle.Render(" · d delete · esc clear")
		return bar + "\n" + footer
	}
	return footer
}

func (m Model) viewConfirmDelete() string {
	n := len(m.snap.Selected)
	body := dialogTitleStyle.Render(fmt.Sprintf("Delete %d vendor(s)?", n)) +
		"\n\n" + helpStyle.Render("y confirm · esc cancel")
	return m.overlay(dialogStyle.Render(body))
}

// pad truncates to width and fills the remainder per alignment.
func pad(s string, width int, a table.Align) string {
	s = runewidth.Truncate(s, width, "…")
	if a == table.AlignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
