package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mohamadfayez/apigee-marketplace/internal/cli/types"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// APIClient wraps Hertz Client for HTTP communication with the API server
type APIClient struct {
	client *client.Client
	server string
}

// NewAPIClient creates a new API client
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// ListProducts lists the site's products visible to the given user
func (c *APIClient) ListProducts(ctx context.Context, site, email string) ([]*entity.DataProduct, error) {
	query := url.Values{}
	query.Set("site", site)
	query.Set("email", email)

	data, err := doGet[types.ListData[*entity.DataProduct]](ctx, c, c.server+endpointProducts+"?"+query.Encode())
	if err != nil {
		return nil, err
	}
	return data.Items, nil
}

// CreateProduct provisions a new product
func (c *APIClient) CreateProduct(ctx context.Context, site string, product *entity.DataProduct) (*entity.DataProduct, error) {
	reqURL := c.server + endpointProducts + "?site=" + url.QueryEscape(site)
	created, err := doPost[entity.DataProduct](ctx, c, reqURL, product, consts.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetProduct fetches a single product
func (c *APIClient) GetProduct(ctx context.Context, site, id string) (*entity.DataProduct, error) {
	reqURL := fmt.Sprintf(c.server+endpointProductByID, url.PathEscape(id)) + "?site=" + url.QueryEscape(site)
	product, err := doGet[entity.DataProduct](ctx, c, reqURL)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetSpec fetches the stored OpenAPI spec of a product
func (c *APIClient) GetSpec(ctx context.Context, site, id string) (string, error) {
	reqURL := fmt.Sprintf(c.server+endpointProductSpec, url.PathEscape(id)) + "?site=" + url.QueryEscape(site)
	spec, err := doGet[types.SpecData](ctx, c, reqURL)
	if err != nil {
		return "", err
	}
	return spec.Spec, nil
}

// GenerateSpec generates an OpenAPI spec for a product definition
func (c *APIClient) GenerateSpec(ctx context.Context, product *entity.DataProduct) (*entity.DataProduct, error) {
	generated, err := doPost[entity.DataProduct](ctx, c, c.server+endpointProductGenerateSpec, product, consts.StatusOK)
	if err != nil {
		return nil, err
	}
	return &generated, nil
}

// ListCategories fetches the site configuration with its categories
func (c *APIClient) ListCategories(ctx context.Context, site string) (*entity.MarketplaceConfig, error) {
	reqURL := c.server + endpointCategories + "?site=" + url.QueryEscape(site)
	config, err := doGet[entity.MarketplaceConfig](ctx, c, reqURL)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// AddCategory adds a category to the site configuration
func (c *APIClient) AddCategory(ctx context.Context, site, name string) (*entity.MarketplaceConfig, error) {
	query := url.Values{}
	query.Set("site", site)
	query.Set("name", name)

	config, err := doPost[entity.MarketplaceConfig](ctx, c, c.server+endpointCategories+"?"+query.Encode(), nil, consts.StatusOK)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// RemoveCategory removes a category from the site configuration
func (c *APIClient) RemoveCategory(ctx context.Context, site, name string) error {
	reqURL := fmt.Sprintf(c.server+endpointCategoryByName, url.PathEscape(name)) + "?site=" + url.QueryEscape(site)

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodDelete)
	req.SetRequestURI(reqURL)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		return fmt.Errorf("delete failed with HTTP status: %d, body: %s", statusCode, string(resp.Body()))
	}

	return nil
}

// RunDataGen triggers taxonomy generation for a topic
func (c *APIClient) RunDataGen(ctx context.Context, topic string, categoryCount int) error {
	body := map[string]interface{}{
		"topic":         topic,
		"categoryCount": categoryCount,
	}
	_, err := doPost[map[string]string](ctx, c, c.server+endpointDataGen, body, consts.StatusOK)
	return err
}

// ListAPIs lists the registered catalog APIs
func (c *APIClient) ListAPIs(ctx context.Context) ([]entity.CatalogAPI, error) {
	data, err := doGet[types.ListData[entity.CatalogAPI]](ctx, c, c.server+endpointAPIHub)
	if err != nil {
		return nil, err
	}
	return data.Items, nil
}

// doGet performs a GET request and unwraps the response envelope
func doGet[T any](ctx context.Context, c *APIClient, reqURL string) (T, error) {
	var zero T

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(reqURL)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return zero, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != consts.StatusOK {
		return zero, apiError(resp)
	}

	var envelope types.APIResponse[T]
	if err := sonic.Unmarshal(resp.Body(), &envelope); err != nil {
		return zero, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return envelope.Data, nil
}

// doPost performs a POST request with an optional JSON body and unwraps
// the response envelope
func doPost[T any](ctx context.Context, c *APIClient, reqURL string, body interface{}, okStatus int) (T, error) {
	var zero T

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(reqURL)
	req.Header.SetContentTypeBytes([]byte("application/json"))

	if body != nil {
		bodyBytes, err := sonic.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to marshal request: %w", err)
		}
		req.SetBody(bodyBytes)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return zero, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != okStatus {
		return zero, apiError(resp)
	}

	var envelope types.APIResponse[T]
	if err := sonic.Unmarshal(resp.Body(), &envelope); err != nil {
		return zero, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return envelope.Data, nil
}

// apiError extracts a readable error from an unexpected response
func apiError(resp *protocol.Response) error {
	var envelope types.APIResponse[any]
	if err := sonic.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("%s (HTTP %d)", envelope.Message, resp.StatusCode())
	}
	return fmt.Errorf("unexpected HTTP status: %d", resp.StatusCode())
}
