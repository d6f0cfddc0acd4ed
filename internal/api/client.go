// Package api is the REST client for the retreat directory backend.
// It implements core.Catalog for public browsing and core.Publisher for
// organizer operations.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shalafinder/shala/internal/core"
	"github.com/shalafinder/shala/internal/logger"
)

// StatusError is a non-2xx response from the backend. Detail carries the
// backend's human-readable message when the body provided one.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Detail)
}

// Client talks to the retreat directory REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	// Bearer token for organizer endpoints; empty for read-only use
	token string
	log   logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (tests use this).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token for organizer endpoints.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithLogger sets the request logger. Defaults to a nop logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient builds a client for the given base URL, e.g.
// "https://api.shalafinder.com".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        logger.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ListPublic fetches one page of public events.
func (c *Client) ListPublic(ctx context.Context, q core.ListQuery) (core.Page, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Location != nil {
		if q.Location.Country != "" {
			params.Set("country", q.Location.Country)
		}
		if q.Location.StateProvince != "" {
			params.Set("state_province", q.Location.StateProvince)
		}
	}
	if q.Sort != nil {
		params.Set("sortBy", string(q.Sort.Field))
		params.Set("sortOrder", string(q.Sort.Order))
	}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("skip", strconv.Itoa(q.Skip))

	var page core.Page
	if err := c.do(ctx, http.MethodGet, "/events/public?"+params.Encode(), nil, &page); err != nil {
		return core.Page{}, err
	}
	return page, nil
}

// ByIDs fetches the events for the given ids. The response is a flat array
// with no pagination envelope.
func (c *Client) ByIDs(ctx context.Context, ids []string) ([]core.Event, error) {
	body := struct {
		EventIDs []string `json:"event_ids"`
	}{EventIDs: ids}

	var events []core.Event
	if err := c.do(ctx, http.MethodPost, "/events/public/by-ids", body, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Stats fetches the directory's aggregate counters.
func (c *Client) Stats(ctx context.Context) (core.Stats, error) {
	var stats core.Stats
	if err := c.do(ctx, http.MethodGet, "/events/public/stats", nil, &stats); err != nil {
		return core.Stats{}, err
	}
	return stats, nil
}

// Create submits a new event. Requires a token.
func (c *Client) Create(ctx context.Context, draft core.EventDraft) (core.Event, error) {
	var event core.Event
	if err := c.do(ctx, http.MethodPost, "/events", draft, &event); err != nil {
		return core.Event{}, err
	}
	return event, nil
}

// Update replaces an existing event. Requires a token.
func (c *Client) Update(ctx context.Context, id string, draft core.EventDraft) (core.Event, error) {
	var event core.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id), draft, &event); err != nil {
		return core.Event{}, err
	}
	return event, nil
}

// do executes one request and decodes the JSON response into out.
// Non-2xx responses become a *StatusError with the backend's detail message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
		logger.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Detail: errorDetail(resp)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorDetail extracts the backend's "detail" field from an error body,
// falling back to the HTTP status text.
func errorDetail(resp *http.Response) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && json.Unmarshal(raw, &payload) == nil && payload.Detail != "" {
		return payload.Detail
	}
	return http.StatusText(resp.StatusCode)
}
