package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// dataGenUsecase seeds the catalog taxonomy for a topic: it asks the
// generative model for category and sub-category names and registers
// them as catalog ENUM attributes.
type dataGenUsecase struct {
	catalog   domain.CatalogClient
	generator domain.SpecGenerator
	logger    *slog.Logger
}

// NewDataGenUsecase creates the taxonomy generator.
func NewDataGenUsecase(catalog domain.CatalogClient, generator domain.SpecGenerator, logger *slog.Logger) domain.DataGenUsecase {
	return &dataGenUsecase{
		catalog:   catalog,
		generator: generator,
		logger:    logger,
	}
}

// Run generates job.CategoryCount category and sub-category names for
// job.Topic and registers the "category" and "subcategory" catalog
// attributes. An unparseable model response fails the job.
func (u *dataGenUsecase) Run(ctx context.Context, job *entity.DataGenJob) error {
	if job == nil || job.Topic == "" {
		return domain.NewInvalidInputError("topic is required")
	}
	if job.CategoryCount <= 0 {
		return domain.NewInvalidInputError("categoryCount must be positive")
	}

	prompt := fmt.Sprintf(
		"Generate %d one-word category names for API domains for the topic %s. "+
			"The category names should be returned in a JSON string array.",
		job.CategoryCount, job.Topic,
	)
	if err := u.generateAttribute(ctx, "category", "Category", prompt); err != nil {
		return err
	}

	prompt = fmt.Sprintf(
		"Generate %d generic sub-category names for API domains for the topic %s. "+
			"The sub-category names should be returned in a JSON string array.",
		job.CategoryCount, job.Topic,
	)
	if err := u.generateAttribute(ctx, "subcategory", "Sub Category", prompt); err != nil {
		return err
	}

	u.logger.Info("taxonomy generated", "topic", job.Topic, "count", job.CategoryCount)
	return nil
}

func (u *dataGenUsecase) generateAttribute(ctx context.Context, id, displayName, prompt string) error {
	raw, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("failed to generate %s names: %w", id, err)
	}

	var names []string
	if err := sonic.Unmarshal([]byte(raw), &names); err != nil {
		return fmt.Errorf("failed to parse %s names from model response: %w", id, err)
	}

	values := make([]entity.CatalogAttribute, 0, len(names))
	for _, name := range names {
		values = append(values, entity.CatalogAttribute{
			ID:          slugifyAttributeID(name),
			DisplayName: name,
			Description: name,
		})
	}

	if err := u.catalog.CreateAttribute(ctx, id, displayName, values); err != nil {
		return fmt.Errorf("failed to create %s attribute: %w", id, err)
	}
	return nil
}

// slugifyAttributeID derives a catalog-safe value id from a display
// name.
func slugifyAttributeID(name string) string {
	return strings.NewReplacer(
		" ", "_",
		"&", "and",
		"(", "",
		")", "",
	).Replace(strings.ToLower(name))
}
