// Package ui is the terminal front end of the vendor admin: a Bubble Tea
// program rendering the table controller's snapshots and translating key
// presses into controller and API calls.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vendor-admin/internal/api"
	"vendor-admin/internal/models"
	"vendor-admin/internal/table"
)

// The tabs across the top. Only the overview is backed by the list endpoint;
// the rest are placeholders until their views land.
var tabs = []string{"Overview", "Needs review", "Renewals", "Duplicates", "Switch cards"}

type mode int

const (
	modeTable mode = iota
	modeSearch
	modeEdit
	modeForm
	modeConfirmDelete
)

// Messages flowing back into Update from commands.
type (
	stateMsg         table.Snapshot
	editSavedMsg     struct{ err error }
	vendorCreatedMsg struct{ err error }
	deleteDoneMsg    struct {
		deleted int
		err     error
	}
	statusClearMsg struct{}
)

const statusDuration = 3 * time.Second

// Model is the top-level Bubble Tea model.
type Model struct {
	ctrl   *table.Controller
	client *api.Client
	log    *slog.Logger
	cols   []table.Column

	snap      table.Snapshot
	cursor    int // row on the current page
	colCursor int
	activeTab int
	width     int
	height    int
	mode      mode
	status    string

	searchInput textinput.Model
	spinner     spinner.Model

	edit       *table.EditSession
	editInput  textinput.Model
	editCursor int // option index for select fields

	form       *table.Form
	formInputs []textinput.Model
	formFocus  int
}

// New builds the model over an already-constructed controller.
func New(ctrl *table.Controller, client *api.Client, log *slog.Logger) Model {
	si := textinput.New()
	si.Placeholder = "Search vendors..."
	si.CharLimit = 100
	si.Width = 32

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctrl:        ctrl,
		client:      client,
		log:         log,
		cols:        table.Columns(),
		snap:        ctrl.Snapshot(),
		searchInput: si,
		spinner:     sp,
	}
}

// Run wires up the controller, starts the program and blocks until quit.
func Run(client *api.Client, opts table.Options, log *slog.Logger) error {
	ctrl := table.NewController(client, opts)
	defer ctrl.Close()

	m := New(ctrl, client, log)
	ctrl.Refresh()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForUpdate(), m.spinner.Tick)
}

// waitForUpdate blocks on the controller's coalesced change channel and turns
// each signal into a fresh snapshot message.
func (m Model) waitForUpdate() tea.Cmd {
	ch := m.ctrl.Updates()
	ctrl := m.ctrl
	return func() tea.Msg {
		<-ch
		return stateMsg(ctrl.Snapshot())
	}
}

func (m Model) saveEdit(vendorID int, f table.Field, value string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := client.UpdateVendor(ctx, vendorID, f.Update(value))
		return editSavedMsg{err: err}
	}
}

func (m Model) submitForm() tea.Cmd {
	req, ok := m.form.BeginSubmit()
	if !ok {
		return nil
	}
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := client.CreateVendor(ctx, req)
		return vendorCreatedMsg{err: err}
	}
}

func (m Model) deleteSelected() tea.Cmd {
	ids := m.ctrl.SelectedIDs()
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		deleted := 0
		for _, id := range ids {
			if err := client.DeleteVendor(ctx, id); err != nil {
				return deleteDoneMsg{deleted: deleted, err: err}
			}
			deleted++
		}
		return deleteDoneMsg{deleted: deleted}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg { return statusClearMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateMsg:
		m.snap = table.Snapshot(msg)
		if m.cursor >= len(m.snap.Vendors) {
			m.cursor = len(m.snap.Vendors) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, m.waitForUpdate()

	case editSavedMsg:
		if m.edit.FinishSave(msg.err) {
			m.mode = modeTable
			m.edit = nil
			m.ctrl.Refresh()
		}
		return m, nil

	case vendorCreatedMsg:
		if m.form.FinishSubmit(msg.err) {
			m.mode = modeTable
			m.form = nil
			m.formInputs = nil
			m.status = "Vendor created"
			m.ctrl.Refresh()
			return m, clearStatusAfter()
		}
		return m, nil

	case deleteDoneMsg:
		m.ctrl.ClearSelection()
		m.ctrl.Refresh()
		if msg.err != nil {
			m.status = fmt.Sprintf("Deleted %d, then failed. Please try again.", msg.deleted)
		} else {
			m.status = fmt.Sprintf("Deleted %d vendor(s)", msg.deleted)
		}
		return m, clearStatusAfter()

	case statusClearMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
		return m.updateTable(msg)
	}

	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.snap.Vendors)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Left):
		if m.colCursor > 0 {
			m.colCursor--
		}

	case key.Matches(msg, keys.Right):
		if m.colCursor < len(m.cols)-1 {
			m.colCursor++
		}

	case key.Matches(msg, keys.Sort):
		col := m.cols[m.colCursor]
		if col.SortKey != "" {
			m.ctrl.SetSort(col.SortKey)
		}

	case key.Matches(msg, keys.PrevPage):
		m.ctrl.PrevPage()

	case key.Matches(msg, keys.NextPage):
		m.ctrl.NextPage()

	case key.Matches(msg, keys.Select):
		if v, ok := m.currentVendor(); ok {
			m.ctrl.ToggleRow(v.ID)
		}

	case key.Matches(msg, keys.SelectAll):
		m.ctrl.ToggleSelectAll()

	case key.Matches(msg, keys.Search):
		m.mode = modeSearch
		m.searchInput.SetValue(m.snap.SearchTerm)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Edit):
		return m.openEdit()

	case key.Matches(msg, keys.New):
		return m.openForm()

	case key.Matches(msg, keys.Delete):
		if len(m.snap.Selected) > 0 {
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, keys.Refresh):
		m.ctrl.Refresh()

	case key.Matches(msg, keys.NextTab):
		m.activeTab = (m.activeTab + 1) % len(tabs)

	case key.Matches(msg, keys.PrevTab):
		m.activeTab = (m.activeTab + len(tabs) - 1) % len(tabs)

	case msg.String() == "esc":
		m.ctrl.ClearSelection()
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.ctrl.FlushSearch()
		m.mode = modeTable
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searchInput.SetValue("")
		m.ctrl.SetSearchTerm("")
		m.ctrl.FlushSearch()
		m.mode = modeTable
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.ctrl.SetSearchTerm(m.searchInput.Value())
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = modeTable
		return m, m.deleteSelected()
	case "n", "esc", "q":
		m.mode = modeTable
	}
	return m, nil
}

func (m Model) currentVendor() (models.Vendor, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Vendors) {
		return models.Vendor{}, false
	}
	return m.snap.Vendors[m.cursor], true
}
