package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	usecase domain.CategoryUsecase
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(usecase domain.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// List returns the site's categories
//
//	@Summary		List categories
//	@Description	Get the site configuration with categories sorted alphabetically
//	@Tags			categories
//	@Produce		json
//	@Param			site	query		string		false	"site id"	default(default)
//	@Success		200		{object}	Response	"site configuration"
//	@Failure		404		{object}	Response	"site configuration not found"
//	@Router			/categories [get]
func (h *CategoryHandler) List(ctx context.Context, c *app.RequestContext) {
	site := c.Query("site")

	config, err := h.usecase.List(ctx, site)
	if err != nil {
		h.logger.Error("failed to list categories", "site", site, "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, config)
}

// Add appends a category to the site configuration
//
//	@Summary		Add category
//	@Description	Add a category to the site configuration
//	@Tags			categories
//	@Produce		json
//	@Param			site	query		string		false	"site id"	default(default)
//	@Param			name	query		string		true	"category name"
//	@Success		200		{object}	Response	"updated site configuration"
//	@Failure		400		{object}	Response	"missing category name"
//	@Failure		404		{object}	Response	"site configuration not found"
//	@Router			/categories [post]
func (h *CategoryHandler) Add(ctx context.Context, c *app.RequestContext) {
	site := c.Query("site")
	name := c.Query("name")

	config, err := h.usecase.Add(ctx, site, name)
	if err != nil {
		h.logger.Error("failed to add category", "site", site, "category", name, "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, config)
}

// Remove deletes a category from the site configuration
//
//	@Summary		Remove category
//	@Description	Remove a category from the site configuration by value
//	@Tags			categories
//	@Produce		json
//	@Param			site	query		string		false	"site id"	default(default)
//	@Param			id		path		string		true	"category name"
//	@Success		204		"category removed"
//	@Failure		404		{object}	Response	"site configuration not found"
//	@Router			/categories/{id} [delete]
func (h *CategoryHandler) Remove(ctx context.Context, c *app.RequestContext) {
	site := c.Query("site")
	name := c.Param("id")
	if name == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	if err := h.usecase.Remove(ctx, site, name); err != nil {
		h.logger.Error("failed to remove category", "site", site, "category", name, "error", err)
		ErrorResponse(c, err)
		return
	}

	NoContentResponse(c)
}
