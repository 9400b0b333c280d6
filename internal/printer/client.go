// File: internal/printer/client.go
// Purpose: relays requests to the external ESC/POS driver service. Downstream
// responses, including error statuses, are passed through verbatim; only a
// transport failure or timeout counts as unreachable.
package printer

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnreachable reports that the driver service did not answer at all.
var ErrUnreachable = errors.New("printer service unreachable")

// HealthTimeout bounds the health probe.
const HealthTimeout = 3 * time.Second

// Response carries a downstream reply back to the caller unchanged.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Client talks to the ESC/POS driver service over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the given driver base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Forward sends a request to the driver service under the given sub-path and
// returns its response. The body and content type are relayed as-is.
func (c *Client) Forward(ctx context.Context, method, subPath, contentType string, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+subPath, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrUnreachable, err)
	}

	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        respBody,
	}, nil
}

// Health probes the driver service root with a bounded wait. It returns the
// downstream status and body when the service answers, and ErrUnreachable
// when the connection fails or the probe times out.
func (c *Client) Health(ctx context.Context) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	return c.Forward(ctx, http.MethodGet, "/", "", nil)
}
