// Package firestore implements the document-store repositories on Cloud
// Firestore. Product documents live in tenant-scoped collections under
// apigee-marketplace-sites/{site}/products.
package firestore

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

const (
	sitesCollection = "apigee-marketplace-sites"
	productsSubPath = "products"
	defaultSite     = "default"
)

// siteOrDefault maps an empty site to the default tenant.
func siteOrDefault(site string) string {
	if site == "" {
		return defaultSite
	}
	return site
}

// productRepository implements domain.ProductRepository on Firestore.
type productRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewProductRepository creates a new product repository.
func NewProductRepository(client *firestore.Client) domain.ProductRepository {
	return &productRepository{
		client: client,
		logger: slog.Default(),
	}
}

func (r *productRepository) productDoc(site, id string) *firestore.DocumentRef {
	return r.client.Collection(sitesCollection).
		Doc(siteOrDefault(site)).
		Collection(productsSubPath).
		Doc(id)
}

// Save writes the product document. This is an unconditional overwrite:
// creating a product with an existing id replaces the stored document.
func (r *productRepository) Save(ctx context.Context, site string, product *entity.DataProduct) error {
	if _, err := r.productDoc(site, product.ID).Set(ctx, product); err != nil {
		return fmt.Errorf("failed to save product %q: %w", product.ID, err)
	}
	return nil
}

// Get reads a single product document.
func (r *productRepository) Get(ctx context.Context, site, id string) (*entity.DataProduct, error) {
	snap, err := r.productDoc(site, id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.NewNotFoundError("product", id)
		}
		return nil, fmt.Errorf("failed to get product %q: %w", id, err)
	}

	var product entity.DataProduct
	if err := snap.DataTo(&product); err != nil {
		return nil, fmt.Errorf("failed to decode product %q: %w", id, err)
	}
	return &product, nil
}

// List reads all product documents for a site. Documents that fail to
// decode are skipped with a warning rather than failing the listing.
func (r *productRepository) List(ctx context.Context, site string) ([]*entity.DataProduct, error) {
	iter := r.client.Collection(sitesCollection).
		Doc(siteOrDefault(site)).
		Collection(productsSubPath).
		Documents(ctx)
	defer iter.Stop()

	var products []*entity.DataProduct
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}

		var product entity.DataProduct
		if err := snap.DataTo(&product); err != nil {
			r.logger.Warn("skipping undecodable product document",
				"doc", snap.Ref.ID,
				"error", err,
			)
			continue
		}
		products = append(products, &product)
	}

	return products, nil
}
