// File: internal/baas/client.go
// Purpose: client for the hosted backend-as-a-service that owns stock-entry
// data. The service exposes a PostgREST-style API: one table per path, column
// filters as query parameters, the project key in the apikey header.
package baas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnavailable reports that the service could not be reached.
var ErrUnavailable = errors.New("backend service unavailable")

// StatusError reports a non-success response from the service.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend service returned status %d", e.Status)
}

// StockEntry mirrors one row of the hosted stock_entries table.
type StockEntry struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	UnitCost  float64   `json:"unit_cost"`
	CreatedAt time.Time `json:"created_at"`
}

// Client queries the hosted backend over its REST interface.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a Client for the given project URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// StockEntries returns all stock entries for a product, newest first.
func (c *Client) StockEntries(ctx context.Context, productID int64) ([]StockEntry, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("product_id", fmt.Sprintf("eq.%d", productID))
	query.Set("order", "created_at.desc")

	entries := []StockEntry{}
	if err := c.get(ctx, "/rest/v1/stock_entries", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Status: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
