package apihub

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// Registrar performs the four-call catalog registration sequence for a
// product: API, deployment, version, version spec. Each later call
// references the resource name created by the previous one, so the
// sequence must not be parallelized. The registrar is best effort for
// catalog visibility; callers log failures and continue.
type Registrar struct {
	client  *Client
	attrs   *AttributeSet
	siteURL string
	apiHost string
	logger  *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRegistrar creates a new catalog registrar over the given client and
// attribute snapshot.
func NewRegistrar(client *Client, attrs *AttributeSet, siteURL, apiHost string) domain.CatalogRegistrar {
	return &Registrar{
		client:  client,
		attrs:   attrs,
		siteURL: siteURL,
		apiHost: apiHost,
		logger:  slog.Default(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type enumValues struct {
	Values []entity.CatalogAttribute `json:"values"`
}

type attributeAssignment struct {
	Attribute  string     `json:"attribute,omitempty"`
	EnumValues enumValues `json:"enumValues"`
}

type documentation struct {
	ExternalURI string `json:"externalUri"`
}

type apiOwner struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type registerAPIRequest struct {
	DisplayName   string                         `json:"display_name"`
	Description   string                         `json:"description"`
	Documentation documentation                  `json:"documentation"`
	Owner         apiOwner                       `json:"owner"`
	TargetUser    *attributeAssignment           `json:"targetUser,omitempty"`
	Team          *attributeAssignment           `json:"team,omitempty"`
	BusinessUnit  *attributeAssignment           `json:"businessUnit,omitempty"`
	MaturityLevel *attributeAssignment           `json:"maturityLevel,omitempty"`
	APIStyle      *attributeAssignment           `json:"apiStyle,omitempty"`
	Attributes    map[string]attributeAssignment `json:"attributes,omitempty"`
}

// assignment wraps picked values, omitting the whole assignment when the
// source list was empty (silent degradation on failed attribute loads).
func (r *Registrar) assignment(attrName string, values []entity.CatalogAttribute) *attributeAssignment {
	if len(values) == 0 {
		return nil
	}
	return &attributeAssignment{
		Attribute:  r.client.AttributeName(attrName),
		EnumValues: enumValues{Values: values},
	}
}

// RegisterAPI creates the top-level catalog API resource keyed by the
// product id, with randomly assigned classification attributes and a
// documentation link back to the marketplace product page.
func (r *Registrar) RegisterAPI(ctx context.Context, product *entity.DataProduct) error {
	r.mu.Lock()
	targetUsers := pickPair(r.rng, r.attrs.TargetUsers)
	teams := pickOne(r.rng, r.attrs.Teams)
	businessUnits := pickOne(r.rng, r.attrs.BusinessUnits)
	maturityLevels := pickOne(r.rng, r.attrs.MaturityLevels)
	businessTypes := pickOne(r.rng, r.attrs.BusinessTypes)
	gdprValues := pickOne(r.rng, r.attrs.GDPRValues)
	regions := pickSequence(r.rng, r.attrs.Regions, 3)
	r.mu.Unlock()

	body := registerAPIRequest{
		DisplayName: product.Name,
		Description: product.Description,
		Documentation: documentation{
			ExternalURI: fmt.Sprintf("%s/products/%s?site=%s", r.siteURL, product.Name, product.Site),
		},
		Owner: apiOwner{
			DisplayName: product.OwnerName,
			Email:       product.OwnerEmail,
		},
		TargetUser:    r.assignment(entity.AttrTargetUser, targetUsers),
		Team:          r.assignment(entity.AttrTeam, teams),
		BusinessUnit:  r.assignment(entity.AttrBusinessUnit, businessUnits),
		MaturityLevel: r.assignment(entity.AttrMaturityLevel, maturityLevels),
		APIStyle: &attributeAssignment{
			Attribute: r.client.AttributeName("system-api-style"),
			EnumValues: enumValues{Values: []entity.CatalogAttribute{
				{ID: "rest", DisplayName: "REST"},
			}},
		},
	}

	attributes := make(map[string]attributeAssignment)
	if a := r.assignment(entity.AttrBusinessType, businessTypes); a != nil {
		attributes[r.client.AttributeName(entity.AttrBusinessType)] = attributeAssignment{EnumValues: a.EnumValues}
	}
	if a := r.assignment(entity.AttrRegions, regions); a != nil {
		attributes[r.client.AttributeName(entity.AttrRegions)] = attributeAssignment{EnumValues: a.EnumValues}
	}
	if a := r.assignment(entity.AttrGDPRRelevance, gdprValues); a != nil {
		attributes[r.client.AttributeName(entity.AttrGDPRRelevance)] = attributeAssignment{EnumValues: a.EnumValues}
	}
	if len(attributes) > 0 {
		body.Attributes = attributes
	}

	url := fmt.Sprintf("%s/v1/%s/apis?api_id=%s", r.client.baseURL, r.client.parent(), product.ID)
	if _, err := r.client.post(ctx, url, body); err != nil {
		return fmt.Errorf("failed to register api %q: %w", product.ID, err)
	}
	return nil
}

type createDeploymentRequest struct {
	DisplayName    string               `json:"displayName"`
	Description    string               `json:"description"`
	Documentation  documentation        `json:"documentation"`
	DeploymentType *attributeAssignment `json:"deploymentType"`
	ResourceURI    string               `json:"resourceUri"`
	Endpoints      []string             `json:"endpoints"`
	APIVersions    []string             `json:"apiVersions"`
}

// CreateDeployment creates a deployment resource for the product with a
// fixed apigee deployment type and an endpoint derived from the
// product's entity.
func (r *Registrar) CreateDeployment(ctx context.Context, product *entity.DataProduct) error {
	body := createDeploymentRequest{
		DisplayName: product.Name,
		Description: product.Description,
		Documentation: documentation{
			ExternalURI: fmt.Sprintf("%s/products/%s?site=%s", r.siteURL, product.ID, product.Site),
		},
		DeploymentType: &attributeAssignment{
			Attribute: r.client.AttributeName("system-deployment-type"),
			EnumValues: enumValues{Values: []entity.CatalogAttribute{
				{ID: "apigee", DisplayName: "Apigee", Description: "Apigee", Immutable: true},
			}},
		},
		ResourceURI: "https://console.cloud.google.com/apigee/proxies/MP-GenAIAPI-v1/overview",
		Endpoints:   []string{r.apiHost + "/v1/genai/" + product.Entity},
		APIVersions: []string{"1"},
	}

	url := fmt.Sprintf("%s/v1/%s/deployments?deploymentId=%s", r.client.baseURL, r.client.parent(), product.ID)
	if _, err := r.client.post(ctx, url, body); err != nil {
		return fmt.Errorf("failed to create deployment %q: %w", product.ID, err)
	}
	return nil
}

type createVersionRequest struct {
	DisplayName   string        `json:"displayName"`
	Description   string        `json:"description"`
	Documentation documentation `json:"documentation"`
	Deployments   []string      `json:"deployments"`
}

// CreateVersion creates a version resource under the API, linked to the
// deployment by its catalog-qualified resource name.
func (r *Registrar) CreateVersion(ctx context.Context, product *entity.DataProduct) error {
	body := createVersionRequest{
		DisplayName: product.Name,
		Description: product.Description,
		Documentation: documentation{
			ExternalURI: fmt.Sprintf("%s/products/%s?site=%s", r.siteURL, product.ID, product.Site),
		},
		Deployments: []string{
			fmt.Sprintf("%s/deployments/%s", r.client.parent(), product.ID),
		},
	}

	url := fmt.Sprintf("%s/v1/%s/apis/%s/versions?version_id=%s",
		r.client.baseURL, r.client.parent(), product.ID, product.ID)
	if _, err := r.client.post(ctx, url, body); err != nil {
		return fmt.Errorf("failed to create version %q: %w", product.ID, err)
	}
	return nil
}

type specContents struct {
	MimeType string `json:"mimeType"`
	Contents string `json:"contents"`
}

type createVersionSpecRequest struct {
	DisplayName   string               `json:"displayName"`
	SpecType      *attributeAssignment `json:"specType"`
	Contents      specContents         `json:"contents"`
	Documentation documentation        `json:"documentation"`
}

// CreateVersionSpec attaches the product's OpenAPI text to the version,
// base64-encoded as the catalog service requires.
func (r *Registrar) CreateVersionSpec(ctx context.Context, product *entity.DataProduct) error {
	body := createVersionSpecRequest{
		DisplayName: product.Name,
		SpecType: &attributeAssignment{
			EnumValues: enumValues{Values: []entity.CatalogAttribute{
				{ID: "openapi", DisplayName: "OpenAPI Spec", Description: "OpenAPI Spec", Immutable: true},
			}},
		},
		Contents: specContents{
			MimeType: "application/json",
			Contents: base64.StdEncoding.EncodeToString([]byte(product.SpecContents)),
		},
		Documentation: documentation{
			ExternalURI: fmt.Sprintf("%s/products/%s?site=%s", r.siteURL, product.ID, product.Site),
		},
	}

	url := fmt.Sprintf("%s/v1/%s/apis/%s/versions/%s/specs?specId=%s",
		r.client.baseURL, r.client.parent(), product.ID, product.ID, product.ID)
	if _, err := r.client.post(ctx, url, body); err != nil {
		return fmt.Errorf("failed to create version spec %q: %w", product.ID, err)
	}
	return nil
}
