// Package pricing turns a catalog snapshot and an estimate request into a quote.
//
// ComputeQuote performs no I/O and keeps no state; concurrent calls need no
// coordination as long as callers do not mutate the catalog they pass in.
package pricing

import (
	"strconv"

	"plumbing_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the precision of every currency amount in a Quote.
const CurrencyPlaces = 2

// ComputeQuote prices the selected services of req against catalog.
//
// Line costs are computed at full precision from the catalog rate and rounded
// once to CurrencyPlaces; LineItem.Rate is the catalog rate as stored.
// The roll-up is built from the rounded lines so the printed breakdown always adds up.
func ComputeQuote(catalog []entities.Service, req entities.EstimateRequest) (entities.Quote, error) {
	if err := validateRequest(req); err != nil {
		return entities.Quote{}, err
	}

	selected, err := resolveSelection(catalog, req.SelectedServiceIDs)
	if err != nil {
		return entities.Quote{}, err
	}

	items := make([]entities.LineItem, 0, len(selected))
	subtotal := decimal.Zero
	for _, svc := range selected {
		qty := quantityFor(svc.QuantityBasis, req)
		cost := qty.Mul(svc.Rate).Mul(req.LocationFactor).Round(CurrencyPlaces)
		items = append(items, entities.LineItem{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Unit:        svc.Unit,
			Quantity:    qty,
			Rate:        svc.Rate,
			Cost:        cost,
		})
		subtotal = subtotal.Add(cost)
	}

	overhead := subtotal.Mul(req.OverheadPct).Round(CurrencyPlaces)
	tax := subtotal.Add(overhead).Mul(req.TaxPct).Round(CurrencyPlaces)

	return entities.Quote{
		ProjectName: req.ProjectName,
		Area:        req.Area,
		Fixtures:    req.Fixtures,
		Items:       items,
		Subtotal:    subtotal,
		Overhead:    overhead,
		Tax:         tax,
		Total:       subtotal.Add(overhead).Add(tax),
	}, nil
}

func validateRequest(req entities.EstimateRequest) error {
	if len(req.SelectedServiceIDs) == 0 {
		return ErrEmptySelection
	}
	if req.Area.IsNegative() {
		return &InvalidInputError{Field: "area", Value: req.Area.String()}
	}
	if req.Fixtures < 0 {
		return &InvalidInputError{Field: "fixtures", Value: strconv.FormatInt(req.Fixtures, 10)}
	}
	if !req.LocationFactor.IsPositive() {
		return &InvalidInputError{Field: "location_factor", Value: req.LocationFactor.String()}
	}
	if req.OverheadPct.IsNegative() {
		return &InvalidInputError{Field: "overhead_pct", Value: req.OverheadPct.String()}
	}
	if req.TaxPct.IsNegative() {
		return &InvalidInputError{Field: "tax_pct", Value: req.TaxPct.String()}
	}
	return nil
}

// resolveSelection maps ids to catalog entries in selection order. A repeated id
// is priced once, at its first position.
func resolveSelection(catalog []entities.Service, ids []string) ([]entities.Service, error) {
	byID := make(map[string]entities.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]entities.Service, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		svc, ok := byID[id]
		if !ok {
			return nil, &UnknownServiceError{ID: id}
		}
		if !svc.QuantityBasis.Valid() {
			return nil, &InvalidInputError{Field: "catalog[" + id + "].quantity_basis", Value: string(svc.QuantityBasis)}
		}
		if svc.Rate.IsNegative() {
			return nil, &InvalidInputError{Field: "catalog[" + id + "].rate", Value: svc.Rate.String()}
		}
		out = append(out, svc)
	}
	return out, nil
}

func quantityFor(basis entities.QuantityBasis, req entities.EstimateRequest) decimal.Decimal {
	switch basis {
	case entities.QuantityBasisArea:
		return req.Area
	case entities.QuantityBasisFixtures:
		return decimal.NewFromInt(req.Fixtures)
	default:
		return decimal.NewFromInt(1)
	}
}
