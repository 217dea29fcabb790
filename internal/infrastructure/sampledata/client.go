// Package sampledata fetches sample payloads from the marketplace test
// endpoint, which serves example records for provisioned entities.
package sampledata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
)

// Client implements domain.SampleDataClient against the marketplace API
// host.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a new sample-data client for the given API host. The
// host is the bare marketplace gateway hostname.
func NewClient(apiHost string) domain.SampleDataClient {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    "https://" + apiHost,
		logger:     slog.Default(),
	}
}

// NewClientWithBaseURL creates a client against a full base URL (used in
// tests).
func NewClientWithBaseURL(baseURL string) domain.SampleDataClient {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     slog.Default(),
	}
}

// FetchSample returns a sample JSON payload for the entity. callPath is
// "/data" or "/services" depending on the product source.
func (c *Client) FetchSample(ctx context.Context, callPath, entity string) (string, error) {
	url := fmt.Sprintf("%s/v1/test%s/%s", c.baseURL, callPath, entity)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sample fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read sample response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sample endpoint error (%d): %s", resp.StatusCode, string(body))
	}
	return string(body), nil
}

// TriggerExport requests a first storage-export pull for the entity. The
// caller treats this as fire-and-forget; the response body is discarded.
func (c *Client) TriggerExport(ctx context.Context, entity string) error {
	url := fmt.Sprintf("%s/v1/test/data/%s?export=true", c.baseURL, entity)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("export trigger failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("export endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
