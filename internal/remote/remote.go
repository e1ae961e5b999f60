// Package remote talks to the JSON-over-HTTP helper services (phonemizer,
// sentiment) that sit next to the analysis pipeline.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error is returned when a helper service can't be reached or answers with a
// non-2xx status. These are never retried.
type Error struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s service returned status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s service unreachable: %v", e.Service, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client posts JSON payloads to one service endpoint.
type Client struct {
	Service    string
	URL        string
	HTTPClient *http.Client
}

func NewClient(service, url string) *Client {
	return &Client{
		Service:    service,
		URL:        url,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// PostJSON sends in as the request body and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", c.Service, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", c.Service, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &Error{Service: c.Service, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		io.Copy(io.Discard, resp.Body)
		return &Error{Service: c.Service, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Service: c.Service, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
