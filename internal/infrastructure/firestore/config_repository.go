package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

const configCollection = "data-marketplace-config"

// siteConfigRepository implements domain.SiteConfigRepository on
// Firestore. One configuration document per site.
type siteConfigRepository struct {
	client *firestore.Client
}

// NewSiteConfigRepository creates a new site configuration repository.
func NewSiteConfigRepository(client *firestore.Client) domain.SiteConfigRepository {
	return &siteConfigRepository{client: client}
}

func (r *siteConfigRepository) configDoc(site string) *firestore.DocumentRef {
	return r.client.Collection(configCollection).Doc(siteOrDefault(site))
}

// Get reads the site configuration document.
func (r *siteConfigRepository) Get(ctx context.Context, site string) (*entity.MarketplaceConfig, error) {
	snap, err := r.configDoc(site).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.NewNotFoundError("site configuration", siteOrDefault(site))
		}
		return nil, fmt.Errorf("failed to get site configuration: %w", err)
	}

	var cfg entity.MarketplaceConfig
	if err := snap.DataTo(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode site configuration: %w", err)
	}
	return &cfg, nil
}

// Save writes the site configuration document.
func (r *siteConfigRepository) Save(ctx context.Context, site string, cfg *entity.MarketplaceConfig) error {
	if _, err := r.configDoc(site).Set(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save site configuration: %w", err)
	}
	return nil
}
