// Package stubserver is an in-memory implementation of the vendor backend
// contract, used by the end-to-end tests and by `vendorctl stub` for local
// development. It keeps no persistent state and performs no auth; it exists
// to be contract-identical, not to be a backend.
package stubserver

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"vendor-admin/internal/models"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// Server holds the in-memory vendor set and the HTTP router serving it.
type Server struct {
	mu      sync.Mutex
	vendors []models.Vendor
	nextID  int

	Router  *chi.Mux
	metrics *Metrics
	log     *slog.Logger
	now     func() time.Time
}

// New builds an empty stub server. A nil logger discards.
func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{nextID: 1, log: log, now: time.Now, metrics: NewMetrics()}

	r := chi.NewRouter()
	r.Use(s.metrics.Middleware())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	r.Get("/metrics", s.metrics.Handler().ServeHTTP)

	r.Get("/vendors", s.listVendors)
	r.Post("/vendors", s.createVendor)
	r.Get("/vendors/{id}", s.getVendor)
	r.Put("/vendors/{id}", s.updateVendor)
	r.Delete("/vendors/{id}", s.deleteVendor)
	r.Get("/api/stats/summary", s.statsSummary)

	s.Router = r
	return s
}

// Add inserts a vendor, assigning id and creation date, and returns the
// stored record.
func (s *Server) Add(v models.Vendor) models.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(v)
}

func (s *Server) add(v models.Vendor) models.Vendor {
	v.ID = s.nextID
	s.nextID++
	if v.Status == "" {
		v.Status = models.StatusActive
	}
	if v.CreationDate == "" {
		v.CreationDate = s.now().UTC().Format(time.RFC3339)
	}
	s.vendors = append(s.vendors, v)
	return v
}

// listParams are the query parameters of the list endpoint.
type listParams struct {
	search    string
	sortBy    string
	sortOrder models.SortOrder
	skip      int
	limit     int
}

// parseListParams parses search, sort_by, sort_order, skip and limit.
// Defaults: skip=0, limit=100 (max 500), sort_order=asc. Unknown sort keys
// are ignored rather than rejected.
func parseListParams(r *http.Request) listParams {
	values := r.URL.Query()

	p := listParams{
		search:    strings.TrimSpace(values.Get("search")),
		sortOrder: models.SortAsc,
		limit:     defaultLimit,
	}

	if key := strings.TrimSpace(values.Get("sort_by")); models.SortableKey(key) {
		p.sortBy = key
	}
	if strings.EqualFold(values.Get("sort_order"), string(models.SortDesc)) {
		p.sortOrder = models.SortDesc
	}
	if v, err := strconv.Atoi(values.Get("skip")); err == nil && v >= 0 {
		p.skip = v
	}
	if v, err := strconv.Atoi(values.Get("limit")); err == nil && v > 0 {
		if v > maxLimit {
			v = maxLimit
		}
		p.limit = v
	}
	return p
}

// matchesSearch checks the case-insensitive substring filter over name,
// category and owner.
func matchesSearch(v models.Vendor, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(v.Name), term) {
		return true
	}
	if v.Category != nil && strings.Contains(strings.ToLower(*v.Category), term) {
		return true
	}
	if v.Owner != nil && strings.Contains(strings.ToLower(*v.Owner), term) {
		return true
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// sortVendors orders the slice by the whitelisted key. With no key the
// newest vendors come first, matching the backend's default ordering.
func sortVendors(vendors []models.Vendor, sortBy string, order models.SortOrder) {
	less := func(a, b models.Vendor) bool { return a.CreationDate > b.CreationDate }
	if sortBy != "" {
		asc := map[string]func(a, b models.Vendor) bool{
			"name":             func(a, b models.Vendor) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
			"total_spend":      func(a, b models.Vendor) bool { return a.TotalSpend < b.TotalSpend },
			"thirty_day_spend": func(a, b models.Vendor) bool { return a.ThirtyDaySpend < b.ThirtyDaySpend },
			"department":       func(a, b models.Vendor) bool { return deref(a.Department) < deref(b.Department) },
			"creation_date":    func(a, b models.Vendor) bool { return a.CreationDate < b.CreationDate },
			"status":           func(a, b models.Vendor) bool { return a.Status < b.Status },
		}[sortBy]
		if asc != nil {
			less = asc
			if order == models.SortDesc {
				less = func(a, b models.Vendor) bool { return asc(b, a) }
			}
		}
	}
	sort.SliceStable(vendors, func(i, j int) bool { return less(vendors[i], vendors[j]) })
}

func (s *Server) listVendors(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)

	s.mu.Lock()
	filtered := make([]models.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		if matchesSearch(v, p.search) {
			filtered = append(filtered, v)
		}
	}
	s.mu.Unlock()

	sortVendors(filtered, p.sortBy, p.sortOrder)

	total := len(filtered)
	start := p.skip
	if start > total {
		start = total
	}
	end := start + p.limit
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, models.VendorList{
		Vendors: filtered[start:end],
		Total:   total,
		Skip:    p.skip,
		Limit:   p.limit,
	})
}

func (s *Server) getVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vendors {
		if v.ID == id {
			writeJSON(w, http.StatusOK, v)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (s *Server) createVendor(w http.ResponseWriter, r *http.Request) {
	var in models.CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := in.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v := models.Vendor{
		Name:       in.Name,
		Category:   optional(in.Category),
		Owner:      optional(in.Owner),
		Location:   optional(in.Location),
		Department: optional(in.Department),
		Status:     in.Status,
	}
	if in.PaymentMethod != "" {
		pm := in.PaymentMethod
		v.PaymentMethod = &pm
	}

	s.mu.Lock()
	v = s.add(v)
	s.mu.Unlock()

	s.log.Info("vendor created", "id", v.ID, "name", v.Name)
	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) updateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var in models.UpdateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := in.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vendors {
		if s.vendors[i].ID != id {
			continue
		}
		v := &s.vendors[i]
		if in.Name != nil {
			v.Name = *in.Name
		}
		if in.Category != nil {
			v.Category = in.Category
		}
		if in.Owner != nil {
			v.Owner = in.Owner
		}
		if in.PaymentMethod != nil {
			v.PaymentMethod = in.PaymentMethod
		}
		if in.Location != nil {
			v.Location = in.Location
		}
		if in.Department != nil {
			v.Department = in.Department
		}
		if in.Status != nil {
			v.Status = *in.Status
		}
		updated := s.now().UTC().Format(time.RFC3339)
		v.UpdatedAt = &updated
		writeJSON(w, http.StatusOK, *v)
		return
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (s *Server) deleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.vendors {
		if v.ID == id {
			s.vendors = append(s.vendors[:i], s.vendors[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (s *Server) statsSummary(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	stats := models.Statistics{TotalVendors: len(s.vendors)}
	for _, v := range s.vendors {
		if v.Status == models.StatusActive {
			stats.ActiveVendors++
		}
		stats.TotalSpend += v.TotalSpend
	}
	s.mu.Unlock()
	stats.InactiveVendors = stats.TotalVendors - stats.ActiveVendors

	writeJSON(w, http.StatusOK, stats)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
