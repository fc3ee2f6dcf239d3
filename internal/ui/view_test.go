package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-admin/internal/api"
	"vendor-admin/internal/models"
	"vendor-admin/internal/table"
)

type staticLister struct {
	list models.VendorList
}

func (l *staticLister) ListVendors(context.Context, api.ListParams) (*models.VendorList, error) {
	out := l.list
	return &out, nil
}

func testVendors() []models.Vendor {
	owner := "Jane Doe"
	return []models.Vendor{
		{ID: 1, Name: "Acme", Owner: &owner, TotalSpend: 1234.5, Status: models.StatusActive, CreationDate: "2024-03-05T09:00:00Z"},
		{ID: 2, Name: "Globex", Status: models.StatusInactive, CreationDate: "2024-04-01T09:00:00Z"},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	lister := &staticLister{list: models.VendorList{Vendors: testVendors(), Total: 2, Limit: 50}}
	ctrl := table.NewController(lister, table.Options{})
	t.Cleanup(ctrl.Close)

	m := New(ctrl, nil, nil)
	m.snap = table.Snapshot{
		Vendors:  testVendors(),
		Total:    2,
		Page:     1,
		PageSize: 50,
		Selected: map[int]bool{},
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMovementClamps(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	// stays at the last row
	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyMsg("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestStateMsgClampsCursorToPage(t *testing.T) {
	m := newTestModel(t)
	m.cursor = 5

	next, _ := m.Update(stateMsg(table.Snapshot{
		Vendors:  testVendors()[:1],
		Total:    1,
		Page:     1,
		PageSize: 50,
		Selected: map[int]bool{},
	}))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestViewRendersRowsAndFooter(t *testing.T) {
	m := newTestModel(t)
	m.snap.Selected[1] = true

	out := m.View()
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "$1,234.50")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "1–2 of 2 matching vendors")
	assert.Contains(t, out, "1 selected")
}

func TestViewShowsSortIndicator(t *testing.T) {
	m := newTestModel(t)
	m.snap.SortBy = "name"
	m.snap.SortOrder = models.SortDesc

	assert.Contains(t, m.View(), "Vendor ▼")
}

func TestViewShowsLoadError(t *testing.T) {
	m := newTestModel(t)
	m.snap.Err = table.ErrLoadFailed

	out := m.View()
	assert.Contains(t, out, "Failed to load vendors")
	assert.Contains(t, out, "(r to retry)")
}

func TestEditableFieldMapping(t *testing.T) {
	tests := []struct {
		title string
		field string
		ok    bool
	}{
		{"Owners", "owner", true},
		{"Department", "department", true},
		{"Status", "status", true},
		{"Vendor", "", false},
		{"365-day spend", "", false},
	}
	for _, tt := range tests {
		f, ok := editableField(tt.title)
		assert.Equal(t, tt.ok, ok, tt.title)
		assert.Equal(t, tt.field, f.Name, tt.title)
	}
}

func TestOpenEditOnSelectColumn(t *testing.T) {
	m := newTestModel(t)
	for i, col := range m.cols {
		if col.Title == "Status" {
			m.colCursor = i
		}
	}

	next, _ := m.openEdit()
	m = next.(Model)
	require.True(t, m.edit.IsOpen())
	assert.Equal(t, 1, m.edit.VendorID)
	assert.Equal(t, "active", m.edit.Original)
	assert.Equal(t, modeEdit, m.mode)

	out := m.View()
	assert.Contains(t, out, "Edit status")
	assert.Contains(t, out, "Inactive")
}

func TestPadAlignment(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5, table.AlignLeft))
	assert.Equal(t, "   ab", pad("ab", 5, table.AlignRight))
	assert.True(t, strings.HasSuffix(pad("abcdefgh", 5, table.AlignLeft), "…"))
}
