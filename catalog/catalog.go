package catalog

import (
	"fmt"
	"path/filepath"
	"sort"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const (
	Chicago    = "chicago"
	NewYork    = "new york"
	Washington = "washington"
)

var knownCities = []string{Chicago, NewYork, Washington}

// DefaultDatasets file name of each city dataset
func DefaultDatasets() map[string]string {
	return map[string]string{
		Chicago:    "chicago.csv",
		NewYork:    "new_york_city.csv",
		Washington: "washington.csv",
	}
}

// Catalog resolves a city to the location of its trips dataset. Once built it cannot change.
type Catalog struct {
	dataDir  string
	datasets map[string]string
}

// New builds a Catalog with a copy of datasets. Relative dataset paths are resolved against dataDir.
// Every city must be one of chicago, new york or washington.
func New(dataDir string, datasets map[string]string) (*Catalog, error) {
	datasetsCopy := make(map[string]string, len(datasets))
	for city, resource := range datasets {
		normalizedCity := utils.NormalizeInput(city)
		if !utils.ContainsString(normalizedCity, knownCities) {
			return nil, fmt.Errorf("city %q: %w", city, dataErrors.ErrUnknownCity)
		}
		datasetsCopy[normalizedCity] = resource
	}

	return &Catalog{
		dataDir:  dataDir,
		datasets: datasetsCopy,
	}, nil
}

// Resolve returns the dataset location of city. The lookup ignores case and extra spaces.
func (c *Catalog) Resolve(city string) (string, error) {
	resource, ok := c.datasets[utils.NormalizeInput(city)]
	if !ok {
		return "", fmt.Errorf("city %q: %w", city, dataErrors.ErrUnknownCity)
	}

	if filepath.IsAbs(resource) || c.dataDir == "" {
		return resource, nil
	}
	return filepath.Join(c.dataDir, resource), nil
}

// Cities returns the configured cities sorted by name
func (c *Catalog) Cities() []string {
	cities := make([]string, 0, len(c.datasets))
	for city := range c.datasets {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}
