package interfaces

import (
	"context"
	"plumbing_estimator/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_interface.go -package=mock_interfaces

// ICatalogRepository abstracts DynamoDB persistence for the service catalog.
//
// The estimator must be able to:
//   - read the full catalog as a snapshot for one quote calculation
//   - look up a single service for display
//   - insert catalog entries when seeding an empty table
//
// GetByID returns a zero Service (empty ID) when the entry does not exist.
// Create reports created=false, without error, when the id is already stored.

type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, s entities.Service) (created bool, err error)
}
