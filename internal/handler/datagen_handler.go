package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/handler/dto"
)

// DataGenHandler handles taxonomy generation requests
type DataGenHandler struct {
	usecase domain.DataGenUsecase
	logger  *slog.Logger
}

// NewDataGenHandler creates a new taxonomy generation handler
func NewDataGenHandler(usecase domain.DataGenUsecase, logger *slog.Logger) *DataGenHandler {
	return &DataGenHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Run generates category attributes for a topic
//
//	@Summary		Generate taxonomy
//	@Description	Generate category and sub-category names for a topic and register them as catalog attributes
//	@Tags			datagen
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DataGenRequest	true	"generation job"
//	@Success		200		{object}	Response			"taxonomy generated"
//	@Failure		400		{object}	Response			"invalid request body"
//	@Failure		500		{object}	Response			"model response unparseable or catalog unavailable"
//	@Router			/datagen [post]
func (h *DataGenHandler) Run(ctx context.Context, c *app.RequestContext) {
	var req dto.DataGenRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid datagen request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	if err := h.usecase.Run(ctx, req.ToEntity()); err != nil {
		h.logger.Error("taxonomy generation failed", "topic", req.Topic, "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, map[string]string{
		"topic": req.Topic,
	})
}
