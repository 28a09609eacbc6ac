// Package catalog ships the default plumbing service catalog used to seed an empty table.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"plumbing_estimator/internal/domain/entities"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

// Default returns a fresh copy of the embedded catalog.
func Default() ([]entities.Service, error) {
	return Parse(defaultCatalogJSON)
}

// Parse decodes a JSON array of services. Rates may be JSON numbers or strings.
func Parse(data []byte) ([]entities.Service, error) {
	var services []entities.Service
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return services, nil
}
