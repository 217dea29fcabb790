package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// categoryUsecase manages the per-site product category list stored in
// the site configuration document.
type categoryUsecase struct {
	configs domain.SiteConfigRepository
	logger  *slog.Logger
}

// NewCategoryUsecase creates the category manager.
func NewCategoryUsecase(configs domain.SiteConfigRepository, logger *slog.Logger) domain.CategoryUsecase {
	return &categoryUsecase{
		configs: configs,
		logger:  logger,
	}
}

// List returns the site configuration with categories sorted
// case-insensitively. A site without a configuration document is a
// not-found error.
func (u *categoryUsecase) List(ctx context.Context, site string) (*entity.MarketplaceConfig, error) {
	config, err := u.configs.Get(ctx, site)
	if err != nil {
		return nil, err
	}
	sortCategories(config.Categories)
	return config, nil
}

// Add appends a category to the site configuration and persists it.
// Adding a category that already exists leaves the list unchanged.
func (u *categoryUsecase) Add(ctx context.Context, site, name string) (*entity.MarketplaceConfig, error) {
	if name == "" {
		return nil, domain.NewInvalidInputError("category name is required")
	}

	config, err := u.configs.Get(ctx, site)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(config.Categories, name) {
		config.Categories = append(config.Categories, name)
		if err := u.configs.Save(ctx, site, config); err != nil {
			return nil, fmt.Errorf("failed to save site configuration: %w", err)
		}
		u.logger.Info("category added", "site", site, "category", name)
	}

	sortCategories(config.Categories)
	return config, nil
}

// Remove deletes a category from the site configuration by value.
// Removing an unknown category is a no-op.
func (u *categoryUsecase) Remove(ctx context.Context, site, name string) error {
	if name == "" {
		return domain.NewInvalidInputError("category name is required")
	}

	config, err := u.configs.Get(ctx, site)
	if err != nil {
		return err
	}

	index := slices.Index(config.Categories, name)
	if index < 0 {
		return nil
	}

	config.Categories = slices.Delete(config.Categories, index, index+1)
	if err := u.configs.Save(ctx, site, config); err != nil {
		return fmt.Errorf("failed to save site configuration: %w", err)
	}
	u.logger.Info("category removed", "site", site, "category", name)
	return nil
}

func sortCategories(categories []string) {
	slices.SortFunc(categories, func(a, b string) int {
		return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
	})
}
