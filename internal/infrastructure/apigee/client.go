// Package apigee implements the gateway provisioner against the Apigee
// management REST API: API products, rate plans, and key/value map
// entries consumed by the gateway-side request pipeline.
package apigee

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

const defaultBaseURL = "https://apigee.googleapis.com"

// Client talks to the Apigee management plane for one organization and
// environment. The HTTP client is expected to carry OAuth2 credentials.
type Client struct {
	httpClient *http.Client
	baseURL    string
	org        string
	env        string
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the management API base URL (used in tests).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Apigee management client.
func NewClient(httpClient *http.Client, org, env string, opts ...Option) domain.GatewayClient {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		org:        org,
		env:        env,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type kvmEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type operation struct {
	Resource string   `json:"resource"`
	Methods  []string `json:"methods"`
}

type operationConfig struct {
	APISource  string      `json:"apiSource"`
	Operations []operation `json:"operations"`
}

type operationGroup struct {
	OperationConfigs []operationConfig `json:"operationConfigs"`
}

type apiProduct struct {
	Name           string         `json:"name"`
	DisplayName    string         `json:"displayName"`
	ApprovalType   string         `json:"approvalType"`
	Environments   []string       `json:"environments"`
	OperationGroup operationGroup `json:"operationGroup"`
}

// SetKVMEntry writes a key/value pair to a named gateway configuration
// map. The entry hands request-time data resolution (table query, model
// name, system prompt) to the gateway without redeploying proxy logic.
func (c *Client) SetKVMEntry(ctx context.Context, mapName, key, value string) error {
	url := fmt.Sprintf("%s/v1/organizations/%s/environments/%s/keyvaluemaps/%s/entries",
		c.baseURL, c.org, c.env, mapName)

	return c.post(ctx, url, kvmEntry{Name: key, Value: value}, http.StatusCreated, http.StatusOK)
}

// CreateAPIProduct creates a gateway product exposing one GET operation
// at path through the named proxy, with automatic approval in the
// client's environment.
func (c *Client) CreateAPIProduct(ctx context.Context, name, displayName, path, proxyName string) error {
	url := fmt.Sprintf("%s/v1/organizations/%s/apiproducts", c.baseURL, c.org)

	body := apiProduct{
		Name:         name,
		DisplayName:  displayName,
		ApprovalType: "auto",
		Environments: []string{c.env},
		OperationGroup: operationGroup{
			OperationConfigs: []operationConfig{
				{
					APISource: proxyName,
					Operations: []operation{
						{Resource: path, Methods: []string{"GET"}},
					},
				},
			},
		},
	}

	return c.post(ctx, url, body, http.StatusCreated, http.StatusOK)
}

// CreateRatePlan creates a monetization rate plan under the gateway
// product. The plan's resource name is stripped before posting; the
// management API assigns one.
func (c *Client) CreateRatePlan(ctx context.Context, productID string, plan *entity.MonetizationRatePlan) error {
	url := fmt.Sprintf("%s/v1/organizations/%s/apiproducts/%s/rateplans", c.baseURL, c.org, productID)

	return c.post(ctx, url, plan.ForCreate(), http.StatusCreated)
}

// errorEnvelope is the management API's error response shape.
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// post issues one JSON POST. No retries: every call is attempted exactly
// once per invocation.
func (c *Client) post(ctx context.Context, url string, body interface{}, okStatuses ...int) error {
	payload, err := sonic.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	for _, okStatus := range okStatuses {
		if resp.StatusCode == okStatus {
			return nil
		}
	}

	respBody, _ := io.ReadAll(resp.Body)
	var envelope errorEnvelope
	if sonic.Unmarshal(respBody, &envelope) == nil && envelope.Error.Message != "" {
		return fmt.Errorf("apigee API error (%d): %s", resp.StatusCode, envelope.Error.Message)
	}
	return fmt.Errorf("apigee API error (%d): %s", resp.StatusCode, string(respBody))
}
