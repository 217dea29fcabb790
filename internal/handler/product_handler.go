package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
	"github.com/mohamadfayez/apigee-marketplace/internal/handler/dto"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	usecase domain.ProductUsecase
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(usecase domain.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// List returns the products of a site visible to a user
//
//	@Summary		List products
//	@Description	List the site's products visible to the given user, filtered by audience
//	@Tags			products
//	@Produce		json
//	@Param			site	query		string				false	"site id"	default(default)
//	@Param			email	query		string				true	"user email"
//	@Success		200		{object}	Response			"product list"
//	@Failure		404		{object}	Response			"user not found"
//	@Router			/products [get]
func (h *ProductHandler) List(ctx context.Context, c *app.RequestContext) {
	site := c.Query("site")
	email := c.Query("email")

	products, err := h.usecase.List(ctx, site, email)
	if err != nil {
		h.logger.Error("failed to list products", "site", site, "email", email, "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, ListResponse{
		Items:      products,
		TotalCount: len(products),
	})
}

// Create provisions a new product
//
//	@Summary		Create product
//	@Description	Provision a product: gateway product, config entries, optional rate plan, document write, catalog registration
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			site	query		string				false	"site id"	default(default)
//	@Param			request	body		entity.DataProduct	true	"product definition"
//	@Success		201		{object}	Response			"provisioned product"
//	@Failure		400		{object}	Response			"invalid request body"
//	@Router			/products [post]
func (h *ProductHandler) Create(ctx context.Context, c *app.RequestContext) {
	site := c.Query("site")

	var product entity.DataProduct
	if err := c.BindJSON(&product); err != nil {
		h.logger.Error("invalid product request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	created, err := h.usecase.Create(ctx, site, &product)
	if err != nil {
		h.logger.Error("failed to create product", "product", product.ID, "error", err)
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, created)
}

// Get returns a single product
//
//	@Summary		Get product
//	@Description	Get a single product document
//	@Tags			products
//	@Produce		json
//	@Param			site	query		string		false	"site id"	default(default)
//	@Param			id		path		string		true	"product id"
//	@Success		200		{object}	Response	"product"
//	@Failure		404		{object}	Response	"product not found"
//	@Router			/products/{id} [get]
func (h *ProductHandler) Get(ctx context.Context, c *app.RequestContext) {
	site := c.Query("site")
	id := c.Param("id")
	if id == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	product, err := h.usecase.Get(ctx, site, id)
	if err != nil {
		h.logger.Error("failed to get product", "product", id, "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, product)
}

// GetSpec returns the stored OpenAPI spec of a product
//
//	@Summary		Get product spec
//	@Description	Get the stored OpenAPI spec text of a product
//	@Tags			products
//	@Produce		json
//	@Param			site	query		string		false	"site id"	default(default)
//	@Param			id		path		string		true	"product id"
//	@Success		200		{object}	Response	"spec contents"
//	@Failure		404		{object}	Response	"product not found"
//	@Router			/products/{id}/spec [get]
func (h *ProductHandler) GetSpec(ctx context.Context, c *app.RequestContext) {
	site := c.Query("site")
	id := c.Param("id")
	if id == "" {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	spec, err := h.usecase.GetSpec(ctx, site, id)
	if err != nil {
		h.logger.Error("failed to get product spec", "product", id, "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.SpecResponse{ID: id, Spec: spec})
}

// GenerateSpec generates an OpenAPI spec for a product definition
//
//	@Summary		Generate product spec
//	@Description	Generate specContents from the product's spec prompt template and sample payload
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		entity.DataProduct	true	"product definition with specPrompt and samplePayload"
//	@Success		200		{object}	Response			"product with generated specContents"
//	@Failure		400		{object}	Response			"invalid request body"
//	@Router			/products/generate/spec [post]
func (h *ProductHandler) GenerateSpec(ctx context.Context, c *app.RequestContext) {
	var product entity.DataProduct
	if err := c.BindJSON(&product); err != nil {
		h.logger.Error("invalid generate spec request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	generated, err := h.usecase.GenerateSpec(ctx, &product)
	if err != nil {
		h.logger.Error("failed to generate spec", "product", product.ID, "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, generated)
}
