package plan

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlSource loads the plan catalog from a YAML file at process start.
//
// Expected document shape:
//
//	plans:
//	  pro:
//	    name: Pro
//	    limits:
//	      farms: 10
//	      orders: 1000
//	    capabilities:
//	      advanced_analytics: true
type yamlSource struct {
	path string
}

// NewYAMLSource returns a Source reading the catalog from the given file.
func NewYAMLSource(path string) Source {
	return &yamlSource{path: path}
}

type yamlCatalog struct {
	Plans map[string]yamlPlan `yaml:"plans"`
}

type yamlPlan struct {
	Name   string           `yaml:"name"`
	Limits map[string]int64 `yaml:"limits"`
	Caps   Capabilities     `yaml:"capabilities"`
}

// Load reads and validates the catalog file. Tier names must be one of
// the known tiers; a misspelled tier would otherwise silently fall back
// to free and cripple paying customers.
func (s *yamlSource) Load(ctx context.Context) (map[Tier]Plan, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	catalog := make(map[Tier]Plan, len(doc.Plans))
	for name, yp := range doc.Plans {
		tier := ParseTier(name)
		if tier.String() != name {
			return nil, errors.Join(ErrUnknownTier, fmt.Errorf("tier %q", name))
		}

		limits := make(map[Resource]int64, len(yp.Limits))
		for res, limit := range yp.Limits {
			limits[Resource(res)] = limit
		}

		catalog[tier] = Plan{
			Tier:   tier,
			Name:   yp.Name,
			Limits: limits,
			Caps:   yp.Caps,
		}
	}

	if err := Validate(catalog); err != nil {
		return nil, err
	}

	return catalog, nil
}
