package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/domain/pricing"
	"plumbing_estimator/internal/usecase/interfaces"
)

// IQuoteUseCase computes quotes against the current catalog.

type IQuoteUseCase interface {
	ComputeQuote(ctx context.Context, req entities.EstimateRequest) (entities.Quote, error)
}

type QuoteUseCase struct {
	catalog  interfaces.ICatalogRepository
	recorder interfaces.IQuoteRecorder
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the catalog source and an optional metrics recorder (nil is allowed).
func NewQuoteUseCase(catalog interfaces.ICatalogRepository, recorder interfaces.IQuoteRecorder) *QuoteUseCase {
	return &QuoteUseCase{catalog: catalog, recorder: recorder}
}

// ComputeQuote takes one catalog snapshot and prices req against it.
// Calculator errors are returned unchanged.
func (u *QuoteUseCase) ComputeQuote(ctx context.Context, req entities.EstimateRequest) (entities.Quote, error) {
	// Refuse before touching storage.
	if len(req.SelectedServiceIDs) == 0 {
		u.fail("empty_selection")
		return entities.Quote{}, pricing.ErrEmptySelection
	}

	snapshot, err := u.catalog.List(ctx)
	if err != nil {
		slog.Error("catalog read failed", "error", err)
		u.fail("catalog_unavailable")
		return entities.Quote{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	quote, err := pricing.ComputeQuote(snapshot, req)
	if err != nil {
		slog.Warn("quote rejected", "project", req.ProjectName, "selected", len(req.SelectedServiceIDs), "error", err)
		u.fail(failureReason(err))
		return entities.Quote{}, err
	}

	total := quote.Total.InexactFloat64()
	slog.Info("quote computed", "project", quote.ProjectName, "items", len(quote.Items), "total", quote.Total.StringFixed(pricing.CurrencyPlaces))
	if u.recorder != nil {
		u.recorder.ObserveQuote(len(quote.Items), total)
	}
	return quote, nil
}

func (u *QuoteUseCase) fail(reason string) {
	if u.recorder != nil {
		u.recorder.IncFailure(reason)
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, pricing.ErrEmptySelection):
		return "empty_selection"
	case errors.Is(err, pricing.ErrUnknownService):
		return "unknown_service"
	case errors.Is(err, pricing.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
