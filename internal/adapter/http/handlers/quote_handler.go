package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	request "plumbing_estimator/internal/adapter/http/dto/request"
	response "plumbing_estimator/internal/adapter/http/dto/response"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/domain/pricing"
	"plumbing_estimator/internal/usecase"
	"plumbing_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// QuoteHandler handles estimate requests from the presentation layer.

type QuoteHandler struct {
	usecase  usecase.IQuoteUseCase
	defaults entities.Adjustments
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, defaults entities.Adjustments) *QuoteHandler {
	return &QuoteHandler{usecase: uc, defaults: defaults}
}

// CreateEstimate computes a quote for the posted selection.
//
// @Summary      Compute a quote
// @Tags         estimate
// @Accept       json
// @Produce      json
// @Param        request  body      request.EstimateRequest  true  "Selection and quantity inputs"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /estimate [post]
func (h *QuoteHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	req, err := payload.ToDomain(h.defaults)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.ComputeQuote(c.Request.Context(), req)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := response.FromQuote(quote)
	if err != nil {
		slog.Error("quote not renderable", "project", quote.ProjectName, "error", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

func mapQuoteError(err error) *pkg.AppError {
	var unknown *pricing.UnknownServiceError
	var invalid *pricing.InvalidInputError
	switch {
	case errors.Is(err, pricing.ErrEmptySelection):
		return pkg.NewDomainErrorSimple("EMPTY_SELECTION", "Select at least one service", http.StatusBadRequest)
	case errors.As(err, &unknown):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Selected service is not in the catalog", http.StatusBadRequest).
			WithDetail("service_id", unknown.ID)
	case errors.As(err, &invalid):
		return pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid estimate input", http.StatusBadRequest).
			WithDetail("field", invalid.Field).
			WithDetail("value", invalid.Value)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return pkg.NewDomainError("CATALOG_UNAVAILABLE", "Service catalog is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
