package stubserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-admin/internal/api"
	"vendor-admin/internal/models"
	"vendor-admin/internal/table"
)

func newTestServer(t *testing.T) (*Server, *api.Client) {
	t.Helper()
	s := New(nil)
	srv := httptest.NewServer(s.Router)
	t.Cleanup(srv.Close)
	return s, api.NewClient(srv.URL, nil, nil)
}

func TestListEnvelope(t *testing.T) {
	s, c := newTestServer(t)
	s.SeedDemo()

	list, err := c.ListVendors(context.Background(), api.ListParams{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 12, list.Total)
	assert.Len(t, list.Vendors, 12)
	assert.Equal(t, 0, list.Skip)
	assert.Equal(t, 50, list.Limit)

	// default ordering is newest first
	assert.Equal(t, "Salesforce", list.Vendors[0].Name)
	assert.Equal(t, "LinkedIn", list.Vendors[len(list.Vendors)-1].Name)
}

func TestListSearchMatchesNameCategoryOwner(t *testing.T) {
	s, c := newTestServer(t)
	s.SeedDemo()

	byName, err := c.ListVendors(context.Background(), api.ListParams{Search: "linked", Limit: 50})
	require.NoError(t, err)
	require.Equal(t, 1, byName.Total)
	assert.Equal(t, "LinkedIn", byName.Vendors[0].Name)

	byCategory, err := c.ListVendors(context.Background(), api.ListParams{Search: "lodging", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 3, byCategory.Total)

	byOwner, err := c.ListVendors(context.Background(), api.ListParams{Search: "dana", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 2, byOwner.Total)

	none, err := c.ListVendors(context.Background(), api.ListParams{Search: "zzz-no-match", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 0, none.Total)
	assert.NotNil(t, none.Vendors)
}

func TestListSorting(t *testing.T) {
	s, c := newTestServer(t)
	s.SeedDemo()

	asc, err := c.ListVendors(context.Background(), api.ListParams{SortBy: "total_spend", SortOrder: models.SortAsc, Limit: 50})
	require.NoError(t, err)
	require.NotEmpty(t, asc.Vendors)
	for i := 1; i < len(asc.Vendors); i++ {
		assert.LessOrEqual(t, asc.Vendors[i-1].TotalSpend, asc.Vendors[i].TotalSpend)
	}

	desc, err := c.ListVendors(context.Background(), api.ListParams{SortBy: "name", SortOrder: models.SortDesc, Limit: 50})
	require.NoError(t, err)
	for i := 1; i < len(desc.Vendors); i++ {
		assert.GreaterOrEqual(t, strings.ToLower(desc.Vendors[i-1].Name), strings.ToLower(desc.Vendors[i].Name))
	}
}

func TestListPagination(t *testing.T) {
	s, c := newTestServer(t)
	s.SeedDemo()

	page1, err := c.ListVendors(context.Background(), api.ListParams{SortBy: "name", Skip: 0, Limit: 5})
	require.NoError(t, err)
	page2, err := c.ListVendors(context.Background(), api.ListParams{SortBy: "name", Skip: 5, Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, 12, page1.Total)
	assert.Len(t, page1.Vendors, 5)
	assert.Len(t, page2.Vendors, 5)
	assert.NotEqual(t, page1.Vendors[0].ID, page2.Vendors[0].ID)

	// skip beyond the end yields an empty page, not an error
	tail, err := c.ListVendors(context.Background(), api.ListParams{Skip: 100, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, tail.Vendors)
	assert.Equal(t, 12, tail.Total)
}

func TestCreateGetUpdateDelete(t *testing.T) {
	_, c := newTestServer(t)

	created, err := c.CreateVendor(context.Background(), models.CreateVendorRequest{
		Name:          "Acme",
		Category:      "Hardware",
		PaymentMethod: models.PaymentWire,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.StatusActive, created.Status, "status defaults to active")
	assert.NotEmpty(t, created.CreationDate)
	assert.Zero(t, created.TotalSpend)

	got, err := c.GetVendor(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	status := models.StatusInactive
	updated, err := c.UpdateVendor(context.Background(), created.ID, models.UpdateVendorRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, updated.Status)
	assert.Equal(t, "Acme", updated.Name, "untouched fields survive a partial update")
	require.NotNil(t, updated.UpdatedAt)

	require.NoError(t, c.DeleteVendor(context.Background(), created.ID))

	_, err = c.GetVendor(context.Background(), created.ID)
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCreateEmptyNameRejected(t *testing.T) {
	_, c := newTestServer(t)

	_, err := c.CreateVendor(context.Background(), models.CreateVendorRequest{Name: "   "})
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestCreateInvalidEnumRejected(t *testing.T) {
	_, c := newTestServer(t)

	_, err := c.CreateVendor(context.Background(), models.CreateVendorRequest{Name: "Acme", Status: "halted"})
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestStatsSummary(t *testing.T) {
	s, c := newTestServer(t)
	s.SeedDemo()

	stats, err := c.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalVendors)
	assert.Equal(t, 10, stats.ActiveVendors)
	assert.Equal(t, 2, stats.InactiveVendors)
	assert.Greater(t, stats.TotalSpend, 0.0)
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(nil)
	s.SeedDemo()
	srv := httptest.NewServer(s.Router)
	defer srv.Close()

	// generate a labelled observation
	resp, err := http.Get(srv.URL + "/vendors")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "vendor_stub_requests_total")
	assert.Contains(t, string(body), `path="/vendors"`)
}

// End-to-end: the table controller driving the real client against the stub.
func TestControllerAgainstStub(t *testing.T) {
	s, c := newTestServer(t)
	s.Add(models.Vendor{Name: "Acme", Status: models.StatusActive, TotalSpend: 1000})

	ctrl := table.NewController(c, table.Options{})
	defer ctrl.Close()

	ctrl.Refresh()
	require.Eventually(t, func() bool { return !ctrl.Snapshot().Loading }, time.Second, 5*time.Millisecond)

	snap := ctrl.Snapshot()
	require.Len(t, snap.Vendors, 1)
	assert.Equal(t, "Acme", snap.Vendors[0].Name)
	assert.Equal(t, 1, snap.Total)

	cols := table.Columns()
	byTitle := map[string]table.Column{}
	for _, col := range cols {
		byTitle[col.Title] = col
	}
	assert.Equal(t, "$1,000.00", byTitle["365-day spend"].Cell(snap.Vendors[0]))
	assert.Equal(t, "Active", byTitle["Status"].Cell(snap.Vendors[0]))

	// select the row, then select-all twice: back to empty
	id := snap.Vendors[0].ID
	ctrl.ToggleRow(id)
	ctrl.ToggleSelectAll()
	assert.Empty(t, ctrl.SelectedIDs())
	ctrl.ToggleSelectAll()
	assert.Equal(t, []int{id}, ctrl.SelectedIDs())
	ctrl.ToggleSelectAll()
	assert.Empty(t, ctrl.SelectedIDs())
}
