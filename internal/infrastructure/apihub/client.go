// Package apihub implements the catalog-service integration: attribute
// snapshots, API listing, attribute creation, and the four-call product
// registration sequence.
package apihub

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

const defaultBaseURL = "https://apihub.googleapis.com"

// Client talks to the API Hub REST API for one project and location. The
// HTTP client is expected to carry OAuth2 credentials.
type Client struct {
	httpClient *http.Client
	baseURL    string
	project    string
	region     string
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API Hub base URL (used in tests).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new API Hub client.
func NewClient(httpClient *http.Client, project, region string, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		project:    project,
		region:     region,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// parent returns the projects/{p}/locations/{l} resource prefix.
func (c *Client) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", c.project, c.region)
}

// AttributeName returns the full resource name of a named attribute.
func (c *Client) AttributeName(name string) string {
	return fmt.Sprintf("%s/attributes/%s", c.parent(), name)
}

type attributeResponse struct {
	Name          string                    `json:"name"`
	DisplayName   string                    `json:"displayName"`
	AllowedValues []entity.CatalogAttribute `json:"allowedValues"`
}

// GetAttribute loads the allowed values of a named attribute.
func (c *Client) GetAttribute(ctx context.Context, name string) ([]entity.CatalogAttribute, error) {
	url := fmt.Sprintf("%s/v1/%s/attributes/%s", c.baseURL, c.parent(), name)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp attributeResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode attribute %q: %w", name, err)
	}
	return resp.AllowedValues, nil
}

type listAPIsResponse struct {
	APIs []entity.CatalogAPI `json:"apis"`
}

// ListAPIs lists the registered catalog APIs.
func (c *Client) ListAPIs(ctx context.Context) ([]entity.CatalogAPI, error) {
	url := fmt.Sprintf("%s/v1/%s/apis", c.baseURL, c.parent())

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp listAPIsResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode api listing: %w", err)
	}
	return resp.APIs, nil
}

type createAttributeRequest struct {
	Name          string                    `json:"name"`
	DisplayName   string                    `json:"displayName"`
	Description   string                    `json:"description"`
	Scope         string                    `json:"scope"`
	DataType      string                    `json:"dataType"`
	AllowedValues []entity.CatalogAttribute `json:"allowedValues"`
	Cardinality   int                       `json:"cardinality"`
}

// CreateAttribute registers a new ENUM attribute with the given allowed
// values, scoped to API resources.
func (c *Client) CreateAttribute(ctx context.Context, id, displayName string, values []entity.CatalogAttribute) error {
	url := fmt.Sprintf("%s/v1/%s/attributes?attributeId=%s", c.baseURL, c.parent(), id)

	body := createAttributeRequest{
		Name:          c.AttributeName(id),
		DisplayName:   displayName,
		Description:   fmt.Sprintf("The %s of the API.", id),
		Scope:         "API",
		DataType:      "ENUM",
		AllowedValues: values,
		Cardinality:   1,
	}

	_, err := c.post(ctx, url, body)
	return err
}

// get issues one GET and returns the body of a 200 response.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("apihub API error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// post issues one JSON POST and returns the response body. Statuses over
// 299 are errors carrying the status and body for the caller's log line.
// No retries anywhere in this client.
func (c *Client) post(ctx context.Context, url string, body interface{}) ([]byte, error) {
	payload, err := sonic.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode > 299 {
		return nil, fmt.Errorf("apihub API error (%d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
