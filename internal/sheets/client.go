// Package sheets retrieves per-pathway question/weight tables from published
// CSV documents and parses them into domain types. When no URL is configured
// or retrieval fails, callers substitute the built-in fallback tables.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"riskradar/internal/model"
)

// Client fetches the unified CSV sheet for a pathway.
type Client struct {
	urls   map[model.Pathway]string
	client *http.Client
}

// NewClient creates a sheet client. urls maps each pathway to its published
// CSV URL; missing entries make FetchTable fail for that pathway.
func NewClient(urls map[model.Pathway]string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		urls:   urls,
		client: &http.Client{Timeout: timeout},
	}
}

// FetchTable downloads and parses the table for one pathway.
func (c *Client) FetchTable(ctx context.Context, pathway model.Pathway) (*model.PathwayTable, error) {
	url, ok := c.urls[pathway]
	if !ok || url == "" {
		return nil, fmt.Errorf("sheets: no CSV URL configured for pathway %q", pathway)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv; charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch %s table: %w", pathway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets: fetch %s table: unexpected status %d", pathway, resp.StatusCode)
	}

	table, err := ParseTable(pathway, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sheets: parse %s table: %w", pathway, err)
	}
	return table, nil
}
