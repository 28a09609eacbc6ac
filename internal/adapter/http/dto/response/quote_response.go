package response

import (
	"errors"
	"math"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// ErrAmountOutOfRange is returned when a quote amount has no JSON number form.
var ErrAmountOutOfRange = errors.New("quote amount out of float64 range")

type LineItemResponse struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Cost        float64 `json:"cost"`
}

type QuoteResponse struct {
	ProjectName string             `json:"project_name"`
	AreaSqm     float64            `json:"area_sqm"`
	Fixtures    int64              `json:"fixtures"`
	Items       []LineItemResponse `json:"items"`
	Subtotal    float64            `json:"subtotal"`
	Overhead    float64            `json:"overhead"`
	Tax         float64            `json:"tax"`
	Total       float64            `json:"total"`
}

// FromQuote converts exact decimals to JSON numbers. Currency values already
// carry two places, so the float is the nearest binary value to the cent amount.
// Rates are rounded to the cent here, for display only; a line cost is computed
// from the exact catalog rate, so it can differ from quantity * displayed rate by
// up to quantity * 0.005.
func FromQuote(q entities.Quote) (QuoteResponse, error) {
	var conv floatConverter
	items := make([]LineItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, LineItemResponse{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Unit:        it.Unit,
			Quantity:    conv.float(it.Quantity),
			Rate:        conv.float(it.Rate.Round(pricing.CurrencyPlaces)),
			Cost:        conv.float(it.Cost),
		})
	}
	res := QuoteResponse{
		ProjectName: q.ProjectName,
		AreaSqm:     conv.float(q.Area),
		Fixtures:    q.Fixtures,
		Items:       items,
		Subtotal:    conv.float(q.Subtotal),
		Overhead:    conv.float(q.Overhead),
		Tax:         conv.float(q.Tax),
		Total:       conv.float(q.Total),
	}
	if conv.overflow {
		return QuoteResponse{}, ErrAmountOutOfRange
	}
	return res, nil
}

// floatConverter remembers whether any converted value left float64 range;
// encoding/json cannot render Inf.
type floatConverter struct {
	overflow bool
}

func (c *floatConverter) float(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		c.overflow = true
		return 0
	}
	return f
}
