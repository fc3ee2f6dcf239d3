// Package table holds the client-side state machines behind the vendor
// admin table: the list controller (search, sort, pagination, selection,
// fetch sequencing), the inline-edit session and the creation form.
package table

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"vendor-admin/internal/api"
	"vendor-admin/internal/debounce"
	"vendor-admin/internal/models"
)

const (
	// DefaultPageSize matches the admin table's fixed page length.
	DefaultPageSize = 50
	// DefaultSearchDebounce is the quiet period after the last keystroke
	// before the search term takes effect.
	DefaultSearchDebounce = 300 * time.Millisecond

	defaultFetchTimeout = 10 * time.Second

	// ErrLoadFailed is the flattened user-facing message for any list
	// fetch failure; causes are not distinguished, per the error design.
	ErrLoadFailed = "Failed to load vendors"
)

// Lister is the slice of the API client the controller needs.
type Lister interface {
	ListVendors(ctx context.Context, p api.ListParams) (*models.VendorList, error)
}

// Options tune a Controller. Zero values take the defaults above.
type Options struct {
	PageSize     int
	Debounce     time.Duration
	FetchTimeout time.Duration
	Logger       *slog.Logger
}

// Snapshot is a copy of the controller state, safe to render from.
type Snapshot struct {
	SearchTerm string // immediate, as typed
	SortBy     string // empty: server default ordering
	SortOrder  models.SortOrder
	Page       int // 1-based
	PageSize   int
	Vendors    []models.Vendor
	Total      int
	Selected   map[int]bool
	Loading    bool
	Err        string // empty when the last fetch succeeded
}

// TotalPages derives the page count from the filtered total.
func (s Snapshot) TotalPages() int {
	if s.Total == 0 {
		return 1
	}
	return (s.Total + s.PageSize - 1) / s.PageSize
}

// Controller is the single source of truth for list-fetch parameters and
// row selection. Every parameter change triggers exactly one (debounced,
// for search) fetch; responses are applied only if they belong to the most
// recently triggered fetch, so a slow stale response never overwrites a
// newer one.
type Controller struct {
	mu     sync.Mutex
	client Lister
	log    *slog.Logger

	searchTerm string // as typed
	search     string // settled value used in fetch params
	sortBy     string
	sortOrder  models.SortOrder
	page       int
	pageSize   int
	selected   map[int]struct{}

	vendors []models.Vendor
	total   int
	loading bool
	errMsg  string

	fetchSeq     uint64
	fetchTimeout time.Duration
	inflight     sync.WaitGroup

	deb     *debounce.Debouncer[string]
	updates chan struct{}
}

// NewController builds a controller over client. It performs no fetch until
// Refresh is called.
func NewController(client Lister, opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultSearchDebounce
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Controller{
		client:       client,
		log:          opts.Logger,
		sortOrder:    models.SortAsc,
		page:         1,
		pageSize:     opts.PageSize,
		selected:     make(map[int]struct{}),
		fetchTimeout: opts.FetchTimeout,
		updates:      make(chan struct{}, 1),
	}
	c.deb = debounce.New(opts.Debounce, c.searchSettled)
	return c
}

// Updates returns a channel that receives a signal whenever the state
// changes. Signals are coalesced; consumers re-read Snapshot each time.
func (c *Controller) Updates() <-chan struct{} { return c.updates }

func (c *Controller) notify() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	sel := make(map[int]bool, len(c.selected))
	for id := range c.selected {
		sel[id] = true
	}
	return Snapshot{
		SearchTerm: c.searchTerm,
		SortBy:     c.sortBy,
		SortOrder:  c.sortOrder,
		Page:       c.page,
		PageSize:   c.pageSize,
		Vendors:    append([]models.Vendor(nil), c.vendors...),
		Total:      c.total,
		Selected:   sel,
		Loading:    c.loading,
		Err:        c.errMsg,
	}
}

// SetSearchTerm updates the visible search text immediately. The effective
// value used for fetching settles after the debounce interval, so a burst of
// keystrokes produces a single fetch with the final text.
func (c *Controller) SetSearchTerm(text string) {
	c.mu.Lock()
	c.searchTerm = text
	c.mu.Unlock()
	c.notify()
	c.deb.Set(text)
}

// FlushSearch applies any pending search text without waiting out the quiet
// period (enter pressed in the search box).
func (c *Controller) FlushSearch() { c.deb.Flush() }

func (c *Controller) searchSettled(text string) {
	c.mu.Lock()
	if text == c.search {
		c.mu.Unlock()
		return
	}
	c.search = text
	c.page = 1
	c.selected = make(map[int]struct{})
	c.mu.Unlock()
	c.Refresh()
}

// SetSort makes column the active sort key. Re-selecting the active column
// flips the order; switching columns always resets to ascending. Unknown
// keys are ignored.
func (c *Controller) SetSort(column string) {
	if !models.SortableKey(column) {
		return
	}
	c.mu.Lock()
	if c.sortBy == column {
		c.sortOrder = c.sortOrder.Flip()
	} else {
		c.sortBy = column
		c.sortOrder = models.SortAsc
	}
	c.mu.Unlock()
	c.Refresh()
}

// SetPage moves to a 1-based page and clears the selection; selection is
// page-scoped. Out-of-range and same-page values are no-ops.
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	if page < 1 || page == c.page {
		c.mu.Unlock()
		return
	}
	c.page = page
	c.selected = make(map[int]struct{})
	c.mu.Unlock()
	c.notify()
	c.Refresh()
}

// NextPage advances one page unless already on the last.
func (c *Controller) NextPage() {
	s := c.Snapshot()
	if s.Page < s.TotalPages() {
		c.SetPage(s.Page + 1)
	}
}

// PrevPage goes back one page unless already on the first.
func (c *Controller) PrevPage() {
	s := c.Snapshot()
	if s.Page > 1 {
		c.SetPage(s.Page - 1)
	}
}

// ToggleRow inserts or removes id from the selection. No fetch.
func (c *Controller) ToggleRow(id int) {
	c.mu.Lock()
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
	} else {
		c.selected[id] = struct{}{}
	}
	c.mu.Unlock()
	c.notify()
}

// ToggleSelectAll selects every row on the current page, or clears the
// selection when the page is already fully selected. It never reaches
// beyond the loaded page.
func (c *Controller) ToggleSelectAll() {
	c.mu.Lock()
	all := len(c.vendors) > 0
	for _, v := range c.vendors {
		if _, ok := c.selected[v.ID]; !ok {
			all = false
			break
		}
	}
	if all {
		c.selected = make(map[int]struct{})
	} else {
		c.selected = make(map[int]struct{}, len(c.vendors))
		for _, v := range c.vendors {
			c.selected[v.ID] = struct{}{}
		}
	}
	c.mu.Unlock()
	c.notify()
}

// ClearSelection empties the selection set.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.selected = make(map[int]struct{})
	c.mu.Unlock()
	c.notify()
}

// SelectedIDs returns the selected vendor ids in ascending order.
func (c *Controller) SelectedIDs() []int {
	c.mu.Lock()
	ids := make([]int, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	c.mu.Unlock()
	sort.Ints(ids)
	return ids
}

// Refresh triggers a fetch with the current parameters. Only the response to
// the most recent Refresh is applied; earlier in-flight responses are
// discarded when they eventually arrive.
func (c *Controller) Refresh() {
	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	p := api.ListParams{
		Search:    c.search,
		SortBy:    c.sortBy,
		SortOrder: c.sortOrder,
		Skip:      (c.page - 1) * c.pageSize,
		Limit:     c.pageSize,
	}
	c.loading = true
	c.mu.Unlock()
	c.notify()

	c.inflight.Add(1)
	go c.fetch(seq, p)
}

func (c *Controller) fetch(seq uint64, p api.ListParams) {
	defer c.inflight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	list, err := c.client.ListVendors(ctx, p)

	c.mu.Lock()
	if seq != c.fetchSeq {
		// superseded while in flight
		c.mu.Unlock()
		return
	}
	c.loading = false
	if err != nil {
		// keep the last successfully loaded list on screen
		c.errMsg = ErrLoadFailed
		c.log.Error("list vendors failed", "error", err, "search", p.Search, "skip", p.Skip)
	} else {
		c.errMsg = ""
		c.vendors = list.Vendors
		c.total = list.Total
		onPage := make(map[int]struct{}, len(list.Vendors))
		for _, v := range list.Vendors {
			onPage[v.ID] = struct{}{}
		}
		for id := range c.selected {
			if _, ok := onPage[id]; !ok {
				delete(c.selected, id)
			}
		}
	}
	c.mu.Unlock()
	c.notify()
}

// Close stops the debounce timer and waits for in-flight fetches to settle.
func (c *Controller) Close() {
	c.deb.Stop()
	c.inflight.Wait()
}
