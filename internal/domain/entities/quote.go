package entities

import "github.com/shopspring/decimal"

// Defaults applied when an estimate input omits an adjustment factor.
var (
	DefaultLocationFactor = decimal.NewFromInt(1)
	DefaultOverheadPct    = decimal.RequireFromString("0.10")
	DefaultTaxPct         = decimal.RequireFromString("0.08")
)

// EstimateRequest is the input of one quote calculation.
//
// It is built fresh for every user action; SelectedServiceIDs keeps the order in
// which services were picked, and that order is the order of the quote lines.
type EstimateRequest struct {
	ProjectName        string
	Area               decimal.Decimal
	Fixtures           int64
	SelectedServiceIDs []string
	LocationFactor     decimal.Decimal
	OverheadPct        decimal.Decimal
	TaxPct             decimal.Decimal
}

// Adjustments are the factors applied when an estimate omits them.
type Adjustments struct {
	LocationFactor decimal.Decimal
	OverheadPct    decimal.Decimal
	TaxPct         decimal.Decimal
}

// DefaultAdjustments returns the built-in factors.
func DefaultAdjustments() Adjustments {
	return Adjustments{
		LocationFactor: DefaultLocationFactor,
		OverheadPct:    DefaultOverheadPct,
		TaxPct:         DefaultTaxPct,
	}
}

// NewEstimateRequest returns a request with the default adjustment factors.
func NewEstimateRequest(projectName string, area decimal.Decimal, fixtures int64, serviceIDs ...string) EstimateRequest {
	return EstimateRequest{
		ProjectName:        projectName,
		Area:               area,
		Fixtures:           fixtures,
		SelectedServiceIDs: serviceIDs,
		LocationFactor:     DefaultLocationFactor,
		OverheadPct:        DefaultOverheadPct,
		TaxPct:             DefaultTaxPct,
	}
}

// LineItem is the cost contribution of one selected service.
type LineItem struct {
	ServiceID   string
	ServiceName string
	Unit        string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Cost        decimal.Decimal
}

// Quote is the computed cost breakdown of one EstimateRequest.
//
// Monetary representation:
//   - every currency amount carries two decimal places.
//   - Subtotal is the exact sum of Items[].Cost and Total the exact sum of
//     Subtotal, Overhead and Tax.
type Quote struct {
	ProjectName string
	Area        decimal.Decimal
	Fixtures    int64
	Items       []LineItem
	Subtotal    decimal.Decimal
	Overhead    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}
