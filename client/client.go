// Package client talks to a PlayMate server and keeps the same local state
// the web UI keeps: the last generation result and an append-only chat.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client holds the server address. The zero HTTPClient uses http.DefaultClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for the server at baseURL, e.g. "http://localhost:8080/api"
func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: &http.Client{Timeout: 60 * time.Second}}
}

// postJSON sends body and decodes the JSON answer into out whatever the
// status, since every endpoint answers failures with an envelope.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response (status %d): %w", path, resp.StatusCode, err)
	}
	return nil
}
