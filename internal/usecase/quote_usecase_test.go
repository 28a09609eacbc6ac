package usecase

import (
	"context"
	"errors"
	"testing"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/domain/pricing"
	mock_interfaces "plumbing_estimator/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type recorderStub struct {
	observed []float64
	items    []int
	failures []string
}

func (r *recorderStub) ObserveQuote(lineItems int, total float64) {
	r.items = append(r.items, lineItems)
	r.observed = append(r.observed, total)
}

func (r *recorderStub) IncFailure(reason string) {
	r.failures = append(r.failures, reason)
}

func quoteCatalog() []entities.Service {
	return []entities.Service{
		{ID: "pipe", Name: "Pipe Replacement", Unit: "sqm", Rate: decimal.NewFromInt(10), QuantityBasis: entities.QuantityBasisArea},
		{ID: "inspect", Name: "Inspection", Unit: "flat", Rate: decimal.NewFromInt(100), QuantityBasis: entities.QuantityBasisFlat},
	}
}

func TestQuoteUseCase_ComputeQuote(t *testing.T) {
	t.Run("empty selection skips the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		rec := &recorderStub{}
		uc := NewQuoteUseCase(repo, rec)

		_, err := uc.ComputeQuote(context.Background(), entities.NewEstimateRequest("p", decimal.NewFromInt(50), 0))
		if !errors.Is(err, pricing.ErrEmptySelection) {
			t.Fatalf("expected ErrEmptySelection, got %v", err)
		}
		if len(rec.failures) != 1 || rec.failures[0] != "empty_selection" {
			t.Fatalf("unexpected failures: %v", rec.failures)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		rec := &recorderStub{}
		uc := NewQuoteUseCase(repo, rec)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ComputeQuote(context.Background(), entities.NewEstimateRequest("p", decimal.NewFromInt(50), 0, "pipe"))
		if !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
		}
		if len(rec.failures) != 1 || rec.failures[0] != "catalog_unavailable" {
			t.Fatalf("unexpected failures: %v", rec.failures)
		}
	})

	t.Run("calculator error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		rec := &recorderStub{}
		uc := NewQuoteUseCase(repo, rec)

		repo.EXPECT().List(gomock.Any()).Return(quoteCatalog(), nil)

		_, err := uc.ComputeQuote(context.Background(), entities.NewEstimateRequest("p", decimal.NewFromInt(50), 0, "pipe", "ghost"))
		var unk *pricing.UnknownServiceError
		if !errors.As(err, &unk) || unk.ID != "ghost" {
			t.Fatalf("expected UnknownServiceError(ghost), got %v", err)
		}
		if len(rec.failures) != 1 || rec.failures[0] != "unknown_service" {
			t.Fatalf("unexpected failures: %v", rec.failures)
		}
	})

	t.Run("invalid input reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		rec := &recorderStub{}
		uc := NewQuoteUseCase(repo, rec)

		repo.EXPECT().List(gomock.Any()).Return(quoteCatalog(), nil)

		_, err := uc.ComputeQuote(context.Background(), entities.NewEstimateRequest("p", decimal.NewFromInt(-5), 0, "pipe"))
		if !errors.Is(err, pricing.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if len(rec.failures) != 1 || rec.failures[0] != "invalid_input" {
			t.Fatalf("unexpected failures: %v", rec.failures)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		rec := &recorderStub{}
		uc := NewQuoteUseCase(repo, rec)

		repo.EXPECT().List(gomock.Any()).Return(quoteCatalog(), nil)

		q, err := uc.ComputeQuote(context.Background(), entities.NewEstimateRequest("Kitchen", decimal.NewFromInt(50), 0, "pipe"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.Total.Equal(decimal.NewFromInt(594)) {
			t.Fatalf("expected total 594, got %s", q.Total)
		}
		if len(rec.observed) != 1 || rec.observed[0] != 594 || rec.items[0] != 1 {
			t.Fatalf("unexpected observations: %v %v", rec.observed, rec.items)
		}
		if len(rec.failures) != 0 {
			t.Fatalf("unexpected failures: %v", rec.failures)
		}
	})

	t.Run("nil recorder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(quoteCatalog(), nil)

		if _, err := uc.ComputeQuote(context.Background(), entities.NewEstimateRequest("", decimal.Zero, 0, "inspect")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
