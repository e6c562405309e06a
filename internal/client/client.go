// Package client consumes the transactions API the way the dashboard UI
// does: an HTTP client wrapped by an optimistic session cache, a single-slot
// toast with an undo affordance, and CSV import/export orchestration.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hodamousavipour/banking-dashboard-front/internal/apperrors"
	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
)

// Client is a thin JSON client for the §6 collection endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client. A nil httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// ListResult is the payload of GET /transactions.
type ListResult struct {
	Items []domain.Transaction `json:"items"`
	Total int                  `json:"total"`
}

// List fetches the full collection.
func (c *Client) List(ctx context.Context) (*ListResult, error) {
	var out ListResult
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []domain.Transaction{}
	}
	return &out, nil
}

// Summary fetches the dashboard summary.
func (c *Client) Summary(ctx context.Context) (domain.Summary, error) {
	var out domain.Summary
	if err := c.do(ctx, http.MethodGet, "/summary", nil, &out); err != nil {
		return domain.Summary{}, err
	}
	return out, nil
}

// Create posts a new transaction and returns the stored record with its
// authoritative id.
func (c *Client) Create(ctx context.Context, input domain.NewTransaction) (*domain.Transaction, error) {
	var out domain.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to the transaction with the given id.
func (c *Client) Update(ctx context.Context, id int64, patch domain.TransactionPatch) (*domain.Transaction, error) {
	var out domain.Transaction
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the transaction with the given id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	var out struct {
		Success bool `json:"success"`
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, &out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: failed to decode response: %w", method, path, apperrors.ErrTransport)
		}
	}
	return nil
}

// statusError maps the error taxonomy: 404 is a vanished record, 400 is a
// validation rejection, everything else is a transport-level failure.
func (c *Client) statusError(method, path string, resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Error == "" {
		payload.Error = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %s: %w", method, path, payload.Error, apperrors.ErrNotFound)
	case http.StatusBadRequest:
		return fmt.Errorf("%s %s: %s: %w", method, path, payload.Error, apperrors.ErrValidation)
	default:
		return fmt.Errorf("%s %s: %s: %w", method, path, payload.Error, apperrors.ErrTransport)
	}
}
