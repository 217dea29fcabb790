package domain

import (
	"context"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// ============ Repository interfaces ============

// ProductRepository is the tenant-scoped document store for products.
type ProductRepository interface {
	// Save writes the product document, replacing any existing document
	// with the same id (create-or-replace, no concurrency check).
	Save(ctx context.Context, site string, product *entity.DataProduct) error

	// Get reads a single product document.
	Get(ctx context.Context, site, id string) (*entity.DataProduct, error)

	// List reads all product documents for a site.
	List(ctx context.Context, site string) ([]*entity.DataProduct, error)
}

// UserRepository reads marketplace user documents.
type UserRepository interface {
	// GetByEmail reads the user document keyed by email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// SiteConfigRepository stores the per-site marketplace configuration.
type SiteConfigRepository interface {
	// Get reads the site configuration document.
	Get(ctx context.Context, site string) (*entity.MarketplaceConfig, error)

	// Save writes the site configuration document.
	Save(ctx context.Context, site string, cfg *entity.MarketplaceConfig) error
}

// ============ Usecase interfaces ============

// ProductUsecase orchestrates product provisioning and retrieval.
type ProductUsecase interface {
	// Create provisions a new product: gateway product and config
	// entries, optional rate plan, document persistence, and catalog
	// registration. The returned product is the enriched in-memory
	// view, even when best-effort provisioning steps failed.
	Create(ctx context.Context, site string, product *entity.DataProduct) (*entity.DataProduct, error)

	// List returns the products of a site visible to the user with the
	// given email, filtered by audience against the user's roles.
	List(ctx context.Context, site, email string) ([]*entity.DataProduct, error)

	// Get returns a single product.
	Get(ctx context.Context, site, id string) (*entity.DataProduct, error)

	// GetSpec returns the stored OpenAPI spec text of a product.
	GetSpec(ctx context.Context, site, id string) (string, error)

	// GenerateSpec fills in specContents from the product's spec prompt
	// template and sample payload via the generative model.
	GenerateSpec(ctx context.Context, product *entity.DataProduct) (*entity.DataProduct, error)
}

// CategoryUsecase manages the per-site category list.
type CategoryUsecase interface {
	// List returns the site configuration with categories sorted
	// case-insensitively.
	List(ctx context.Context, site string) (*entity.MarketplaceConfig, error)

	// Add appends a category and persists the configuration.
	Add(ctx context.Context, site, name string) (*entity.MarketplaceConfig, error)

	// Remove deletes a category by value if present.
	Remove(ctx context.Context, site, name string) error
}

// DataGenUsecase seeds the catalog with generated category attributes.
type DataGenUsecase interface {
	// Run generates category and sub-category names for the job's topic
	// and registers them as catalog attributes.
	Run(ctx context.Context, job *entity.DataGenJob) error
}
