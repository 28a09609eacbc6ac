package entities

import "github.com/shopspring/decimal"

// QuantityBasis selects which estimate input scales a service's quantity.
type QuantityBasis string

const (
	QuantityBasisArea     QuantityBasis = "AREA"
	QuantityBasisFixtures QuantityBasis = "FIXTURES"
	QuantityBasisFlat     QuantityBasis = "FLAT"
)

// Valid reports whether b is one of the known bases.
func (b QuantityBasis) Valid() bool {
	switch b {
	case QuantityBasisArea, QuantityBasisFixtures, QuantityBasisFlat:
		return true
	}
	return false
}

// Service is a billable catalog entry.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Rate is the cost per Unit, kept as a decimal so catalog prices round-trip exactly.
type Service struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category,omitempty"`
	Unit          string          `json:"unit"`
	Rate          decimal.Decimal `json:"rate"`
	QuantityBasis QuantityBasis   `json:"quantity_basis"`
}
