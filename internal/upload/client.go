package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/trainload/internal/alpha"
	"github.com/claude/trainload/internal/importer"
	"github.com/claude/trainload/internal/storage"
)

// Client sends exports to a trainload server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
	backoff    time.Duration
}

// NewClient creates a new HTTP client for the trainload server.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: serverURL,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		backoff: time.Second,
	}
}

// FetchStats retrieves the server's data counts. Used as a reachability
// check before uploading.
func (c *Client) FetchStats(ctx context.Context) (*storage.DataStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/v1/stats", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("stats request failed (status %d): %s", resp.StatusCode, body)
	}

	var stats storage.DataStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("decoding stats: %w", err)
	}
	return &stats, nil
}

// SendFile POSTs the export at path to the server's import endpoint and
// returns the server's counts. Retries up to 3 times with exponential
// backoff; a 4xx answer is final.
func (c *Client) SendFile(ctx context.Context, path string) (*importer.Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	q := url.Values{"name": {filepath.Base(path)}}
	if alpha.IsExportFile(path) {
		q.Set("format", "alpha")
	}
	endpoint := c.serverURL + "/api/v1/import?" + q.Encode()

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			select {
			case <-time.After(c.backoff << (attempt - 1)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		stats, retry, err := c.post(ctx, endpoint, data)
		if err == nil {
			return stats, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("after 3 attempts: %w", lastErr)
}

func (c *Client) post(ctx context.Context, endpoint string, data []byte) (*importer.Stats, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("import failed (status %d): %s", resp.StatusCode, bytes.TrimSpace(body))
		return nil, resp.StatusCode >= 500, err
	}

	var stats importer.Stats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, false, fmt.Errorf("decoding import stats: %w", err)
	}
	return &stats, false, nil
}
