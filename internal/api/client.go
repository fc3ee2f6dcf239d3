// Package api is the HTTP/JSON client for the vendor management backend.
// It carries no retry or caching logic; every call is a single request and
// every non-2xx response is surfaced uniformly as an *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"vendor-admin/internal/logging"
	"vendor-admin/internal/models"
)

const defaultTimeout = 10 * time.Second

// Error is the uniform failure for non-2xx responses. Bodies are not parsed
// for structured codes; the status is all callers get to act on.
type Error struct {
	Op         string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

// ListParams are the query parameters of GET /vendors. Zero values are
// omitted from the query except skip/limit, which are always sent.
type ListParams struct {
	Search    string
	SortBy    string
	SortOrder models.SortOrder
	Skip      int
	Limit     int
}

// Client talks to one backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// NewClient builds a client for baseURL. A nil httpClient gets a default
// with a 10s timeout; a nil logger discards.
func NewClient(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{baseURL: baseURL, http: httpClient, log: log}
}

// ListVendors fetches one page of the filtered, sorted vendor list.
func (c *Client) ListVendors(ctx context.Context, p ListParams) (*models.VendorList, error) {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
		order := p.SortOrder
		if order == "" {
			order = models.SortAsc
		}
		q.Set("sort_order", string(order))
	}
	q.Set("skip", strconv.Itoa(p.Skip))
	q.Set("limit", strconv.Itoa(p.Limit))

	var out models.VendorList
	if err := c.do(ctx, http.MethodGet, "/vendors?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVendor fetches a single vendor by id.
func (c *Client) GetVendor(ctx context.Context, id int) (*models.Vendor, error) {
	var out models.Vendor
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/vendors/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateVendor creates a vendor and returns the server-assigned record.
func (c *Client) CreateVendor(ctx context.Context, req models.CreateVendorRequest) (*models.Vendor, error) {
	var out models.Vendor
	if err := c.do(ctx, http.MethodPost, "/vendors", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVendor applies a partial update and returns the updated record.
func (c *Client) UpdateVendor(ctx context.Context, id int, req models.UpdateVendorRequest) (*models.Vendor, error) {
	var out models.Vendor
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/vendors/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVendor removes a vendor. Success is signalled by status only.
func (c *Client) DeleteVendor(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/vendors/%d", id), nil, nil)
}

// Statistics fetches the aggregate summary.
func (c *Client) Statistics(ctx context.Context) (*models.Statistics, error) {
	var out models.Statistics
	if err := c.do(ctx, http.MethodGet, "/api/stats/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		rdr = bytes.NewReader(b)
	}

	reqID := uuid.NewString()
	ctx = logging.ContextWithRequestID(ctx, reqID)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "api request failed", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "api request", "op", op,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &Error{Op: op, StatusCode: resp.StatusCode}
	}
	if out == nil {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
