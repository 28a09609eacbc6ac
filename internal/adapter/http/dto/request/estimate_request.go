package request

import (
	"strings"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// Shape limits are checked before any arithmetic: decimal keeps exponents
// symbolic, and "1e10000000" only costs CPU once it is rescaled.
const (
	maxExponent = 30
	maxDigits   = 40
)

// Magnitude limits for posted values.
var (
	MaxAreaSqm  = decimal.NewFromInt(10_000_000)
	MaxFixtures = decimal.NewFromInt(100_000)
	MaxFactor   = decimal.NewFromInt(100)
)

// EstimateRequest is the payload posted by the estimator front-end.
//
// Coercion rules:
//   - absent or non-numeric area_sqm / fixtures become 0.
//   - absent or non-numeric location_factor / overhead_pct / tax_pct take the configured defaults.
//   - negative values are kept so the calculator can reject them.
//   - values beyond MaxAreaSqm, MaxFixtures or MaxFactor are invalid input.
type EstimateRequest struct {
	ProjectName    string   `json:"project_name" binding:"max=200"`
	AreaSqm        Number   `json:"area_sqm" swaggertype:"number"`
	Fixtures       Number   `json:"fixtures" swaggertype:"integer"`
	ServiceIDs     []string `json:"service_ids" binding:"max=100"`
	LocationFactor Number   `json:"location_factor" swaggertype:"number"`
	OverheadPct    Number   `json:"overhead_pct" swaggertype:"number"`
	TaxPct         Number   `json:"tax_pct" swaggertype:"number"`
}

// ResolveServiceIDs trims ids and drops blanks, keeping selection order.
func (r EstimateRequest) ResolveServiceIDs() []string {
	out := make([]string, 0, len(r.ServiceIDs))
	for _, id := range r.ServiceIDs {
		if v := strings.TrimSpace(id); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ResolveFixtures returns the fixture count; a fractional count is invalid input.
func (r EstimateRequest) ResolveFixtures() (int64, error) {
	v, err := bounded("fixtures", r.Fixtures, decimal.Zero, MaxFixtures)
	if err != nil {
		return 0, err
	}
	if !v.IsInteger() {
		return 0, &pricing.InvalidInputError{Field: "fixtures", Value: v.String()}
	}
	return v.IntPart(), nil
}

// ToDomain builds the calculator input, filling adjustment factors from defaults.
func (r EstimateRequest) ToDomain(defaults entities.Adjustments) (entities.EstimateRequest, error) {
	fixtures, err := r.ResolveFixtures()
	if err != nil {
		return entities.EstimateRequest{}, err
	}
	area, err := bounded("area", r.AreaSqm, decimal.Zero, MaxAreaSqm)
	if err != nil {
		return entities.EstimateRequest{}, err
	}
	locationFactor, err := bounded("location_factor", r.LocationFactor, defaults.LocationFactor, MaxFactor)
	if err != nil {
		return entities.EstimateRequest{}, err
	}
	overheadPct, err := bounded("overhead_pct", r.OverheadPct, defaults.OverheadPct, MaxFactor)
	if err != nil {
		return entities.EstimateRequest{}, err
	}
	taxPct, err := bounded("tax_pct", r.TaxPct, defaults.TaxPct, MaxFactor)
	if err != nil {
		return entities.EstimateRequest{}, err
	}

	return entities.EstimateRequest{
		ProjectName:        r.ProjectName,
		Area:               area,
		Fixtures:           fixtures,
		SelectedServiceIDs: r.ResolveServiceIDs(),
		LocationFactor:     locationFactor,
		OverheadPct:        overheadPct,
		TaxPct:             taxPct,
	}, nil
}

// bounded returns n, or def when n is absent. Values whose magnitude exceeds max
// are invalid input; negatives within range are left to the calculator.
func bounded(field string, n Number, def, max decimal.Decimal) (decimal.Decimal, error) {
	if !n.Valid {
		return def, nil
	}
	v := n.Value
	if exp := v.Exponent(); exp > maxExponent || exp < -maxExponent || v.NumDigits() > maxDigits {
		return decimal.Zero, &pricing.InvalidInputError{Field: field, Value: n.Text()}
	}
	if v.Abs().GreaterThan(max) {
		return decimal.Zero, &pricing.InvalidInputError{Field: field, Value: n.Text()}
	}
	return v, nil
}
