package main

import (
	"context"
	"log/slog"
	"os"

	_ "plumbing_estimator/docs"
	"plumbing_estimator/internal/adapter/http/routes"
	"plumbing_estimator/internal/infrastructure/config"
	"plumbing_estimator/pkg/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Plumbing Estimator API
// @version         1.0
// @description     Service catalog and quote calculator for plumbing projects.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := routes.Run(context.Background(), cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
