// Package cloudsync mirrors snapshots to an external spreadsheet endpoint.
// The endpoint speaks a two-action protocol: a JSON POST pushes the full
// snapshot, a GET with action=get_data pulls it back.
package cloudsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

type Client struct {
	url        string
	httpClient *http.Client
}

// New returns a client for the given endpoint URL. An empty URL yields an
// unconfigured client; callers must check Configured before syncing.
func New(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an endpoint URL was provided.
func (c *Client) Configured() bool {
	return c.url != ""
}

type pushPayload struct {
	Action       string                   `json:"action"`
	Inventory    []core.StockRecord       `json:"inventory"`
	Transactions []core.TransactionRecord `json:"transactions"`
	Timestamp    time.Time                `json:"timestamp"`
}

// Push uploads the full snapshot to the endpoint.
func (c *Client) Push(ctx context.Context, st core.State) error {
	if !c.Configured() {
		return fmt.Errorf("sync endpoint is not configured")
	}

	body, err := json.Marshal(pushPayload{
		Action:       "sync_all",
		Inventory:    st.Stock,
		Transactions: st.Ledger,
		Timestamp:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode sync payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sync push failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sync endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// Pull downloads the snapshot held by the endpoint.
func (c *Client) Pull(ctx context.Context) (core.State, error) {
	if !c.Configured() {
		return core.State{}, fmt.Errorf("sync endpoint is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?action=get_data", nil)
	if err != nil {
		return core.State{}, fmt.Errorf("failed to build sync request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return core.State{}, fmt.Errorf("sync pull failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return core.State{}, fmt.Errorf("sync endpoint returned status %d", resp.StatusCode)
	}

	var st core.State
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return core.State{}, fmt.Errorf("failed to decode sync response: %w", err)
	}
	return st, nil
}
