package domain

import (
	"context"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// GatewayClient talks to the API gateway management plane. All operations
// are attempted exactly once; callers decide whether a failure is fatal.
type GatewayClient interface {
	// SetKVMEntry writes a key/value pair to a named gateway
	// configuration map.
	SetKVMEntry(ctx context.Context, mapName, key, value string) error

	// CreateAPIProduct creates a gateway product exposing one GET
	// operation at path through the named proxy.
	CreateAPIProduct(ctx context.Context, name, displayName, path, proxyName string) error

	// CreateRatePlan creates a monetization rate plan under the gateway
	// product.
	CreateRatePlan(ctx context.Context, productID string, plan *entity.MonetizationRatePlan) error
}

// CatalogClient talks to the API catalog service (API Hub).
type CatalogClient interface {
	// GetAttribute loads the allowed values of a named attribute.
	GetAttribute(ctx context.Context, name string) ([]entity.CatalogAttribute, error)

	// ListAPIs lists the registered catalog APIs.
	ListAPIs(ctx context.Context) ([]entity.CatalogAPI, error)

	// CreateAttribute registers a new ENUM attribute with the given
	// allowed values.
	CreateAttribute(ctx context.Context, id, displayName string, values []entity.CatalogAttribute) error
}

// CatalogRegistrar performs the four-call catalog registration sequence
// for a product. The calls depend on each other's resource names and must
// run in order: RegisterAPI, CreateDeployment, CreateVersion,
// CreateVersionSpec. Each call is best effort; a failure is logged and
// must not prevent the remaining calls.
type CatalogRegistrar interface {
	RegisterAPI(ctx context.Context, product *entity.DataProduct) error
	CreateDeployment(ctx context.Context, product *entity.DataProduct) error
	CreateVersion(ctx context.Context, product *entity.DataProduct) error
	CreateVersionSpec(ctx context.Context, product *entity.DataProduct) error
}

// SpecGenerator produces text (sample payloads, OpenAPI specs) from a
// single-turn prompt against a generative model. The result carries no
// structural guarantee; callers parse it as needed.
type SpecGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SampleDataClient fetches sample payloads from the marketplace test
// endpoint and triggers storage exports.
type SampleDataClient interface {
	// FetchSample returns a sample JSON payload for the entity.
	// callPath is "/data" or "/services" depending on the source.
	FetchSample(ctx context.Context, callPath, entity string) (string, error)

	// TriggerExport requests a first storage-export pull for the
	// entity. The response is not required to succeed.
	TriggerExport(ctx context.Context, entity string) error
}
