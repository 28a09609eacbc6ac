package repository

import (
	"cmp"
	"slices"

	"plumbing_estimator/internal/domain/entities"
)

// sortServices orders a catalog by category, then name, then id. DynamoDB scans
// come back in hash order, which is useless for display.
func sortServices(services []entities.Service) {
	slices.SortStableFunc(services, func(a, b entities.Service) int {
		return cmp.Or(
			cmp.Compare(a.Category, b.Category),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
