package handlers

import (
	"errors"
	"net/http"

	response "plumbing_estimator/internal/adapter/http/dto/response"
	"plumbing_estimator/internal/usecase"
	"plumbing_estimator/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices returns the full catalog.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Success      200  {array}   response.ServiceResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// GetService returns one catalog entry.
//
// @Summary      Get service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  response.ServiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return pkg.NewDomainError("CATALOG_UNAVAILABLE", "Service catalog is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
