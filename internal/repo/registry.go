package repo

import (
	"fmt"
	"path/filepath"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// cityFiles maps each supported city to its CSV file name.
var cityFiles = map[domain.City]string{
	domain.Chicago:     "chicago.csv",
	domain.NewYorkCity: "new_york_city.csv",
	domain.Washington:  "washington.csv",
}

// Registry resolves a city key to the location of its trip dataset.
// It is a static table rooted at a data directory and has no side effects.
type Registry struct {
	dataDir string
}

// NewRegistry constructs a Registry that looks for city files in dataDir.
func NewRegistry(dataDir string) *Registry {
	return &Registry{dataDir: dataDir}
}

// Resolve returns the dataset path for city. The key is matched
// case-insensitively after trimming. Any key outside the supported set
// returns domain.ErrUnknownCity; there is no default city.
func (r *Registry) Resolve(city domain.City) (string, error) {
	c, err := domain.ParseCity(string(city))
	if err != nil {
		return "", fmt.Errorf("repo.Registry.Resolve: %w", err)
	}
	return filepath.Join(r.dataDir, cityFiles[c]), nil
}
