package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
)

// APIHubHandler exposes the catalog API listing
type APIHubHandler struct {
	catalog domain.CatalogClient
	logger  *slog.Logger
}

// NewAPIHubHandler creates a new catalog listing handler
func NewAPIHubHandler(catalog domain.CatalogClient, logger *slog.Logger) *APIHubHandler {
	return &APIHubHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// List returns the registered catalog APIs
//
//	@Summary		List catalog APIs
//	@Description	List the APIs registered in the API catalog
//	@Tags			apihub
//	@Produce		json
//	@Success		200	{object}	Response	"catalog API list"
//	@Failure		500	{object}	Response	"catalog unavailable"
//	@Router			/apihub [get]
func (h *APIHubHandler) List(ctx context.Context, c *app.RequestContext) {
	apis, err := h.catalog.ListAPIs(ctx)
	if err != nil {
		h.logger.Error("failed to list catalog apis", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, ListResponse{
		Items:      apis,
		TotalCount: len(apis),
	})
}
