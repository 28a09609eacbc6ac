package response

import "plumbing_estimator/internal/domain/entities"

type ServiceResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category,omitempty"`
	Unit          string  `json:"unit"`
	Rate          float64 `json:"rate"`
	QuantityBasis string  `json:"quantity_basis"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Category:      s.Category,
		Unit:          s.Unit,
		Rate:          s.Rate.InexactFloat64(),
		QuantityBasis: string(s.QuantityBasis),
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
