package routes

import (
	"context"
	"fmt"
	"log/slog"
	_ "plumbing_estimator/docs"
	"plumbing_estimator/internal/adapter/http/handlers"
	"plumbing_estimator/internal/adapter/http/middleware"
	"plumbing_estimator/internal/adapter/persistence/repository"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/infrastructure/catalog"
	"plumbing_estimator/internal/infrastructure/config"
	"plumbing_estimator/internal/infrastructure/database"
	"plumbing_estimator/internal/infrastructure/metrics"
	"plumbing_estimator/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the HTTP layer needs.
type Dependencies struct {
	Catalog  usecase.ICatalogUseCase
	Quotes   usecase.IQuoteUseCase
	Defaults entities.Adjustments
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// NewRouter builds the gin engine. Estimator routes are served under /v1 and at
// the root, where the original front-end expects them.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	quoteHandler := handlers.NewQuoteHandler(deps.Quotes, deps.Defaults)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatorRoutes(v1, catalogHandler, quoteHandler)

	router.GET("/test", ping)
	addEstimatorRoutes(router, catalogHandler, quoteHandler)

	return router
}

// Run wires storage, use cases and metrics from cfg and serves until the listener fails.
func Run(ctx context.Context, cfg config.Config) error {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return err
	}

	catalogRepo := repository.NewServiceDynamoRepository(ddb, cfg.ServicesTable)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	if cfg.SeedCatalog {
		services, err := catalog.Default()
		if err != nil {
			return err
		}
		if _, err := catalogUseCase.SeedCatalog(ctx, services); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	quoteUseCase := usecase.NewQuoteUseCase(catalogRepo, metrics.NewQuoteMetrics(registry))

	router := NewRouter(Dependencies{
		Catalog:  catalogUseCase,
		Quotes:   quoteUseCase,
		Defaults: cfg.QuoteDefaults(),
		Registry: registry,
		Logger:   slog.Default(),
	})

	slog.Info("starting estimator API", "port", cfg.Port, "services_table", cfg.ServicesTable)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}
