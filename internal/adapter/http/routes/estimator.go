package routes

import (
	"plumbing_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathEstimate = "/estimate"
)

func addEstimatorRoutes(rg gin.IRoutes, catalogHandler *handlers.CatalogHandler, quoteHandler *handlers.QuoteHandler) {
	rg.GET(PathServices, catalogHandler.ListServices)
	rg.GET(PathServices+"/:id", catalogHandler.GetService)
	rg.POST(PathEstimate, quoteHandler.CreateEstimate)
}
