package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"
	"strings"
)

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidServiceID   = errors.New("invalid service id")
	ErrInvalidService     = errors.New("invalid service")
)

// ICatalogUseCase exposes the read side of the service catalog plus seeding.

type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	SeedCatalog(ctx context.Context, services []entities.Service) (int, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return services, nil
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// SeedCatalog inserts every service not yet stored and returns how many were added.
// The whole batch is validated before anything is written.
func (u *CatalogUseCase) SeedCatalog(ctx context.Context, services []entities.Service) (int, error) {
	for _, s := range services {
		if err := validateService(s); err != nil {
			return 0, err
		}
	}

	inserted := 0
	for _, s := range services {
		created, err := u.repo.Create(ctx, s)
		if err != nil {
			return inserted, fmt.Errorf("seed service %q: %w", s.ID, err)
		}
		if created {
			inserted++
		}
	}
	slog.Info("catalog seeded", "inserted", inserted, "skipped", len(services)-inserted)
	return inserted, nil
}

func validateService(s entities.Service) error {
	switch {
	case strings.TrimSpace(s.ID) == "":
		return fmt.Errorf("%w: empty id", ErrInvalidService)
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("%w: %q has no name", ErrInvalidService, s.ID)
	case !s.QuantityBasis.Valid():
		return fmt.Errorf("%w: %q has quantity basis %q", ErrInvalidService, s.ID, s.QuantityBasis)
	case s.Rate.IsNegative():
		return fmt.Errorf("%w: %q has negative rate %s", ErrInvalidService, s.ID, s.Rate)
	}
	return nil
}
