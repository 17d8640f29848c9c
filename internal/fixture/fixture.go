// Package fixture ships patrol maps with known answers for tests
// and benchmarks across the module.
package fixture

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed maps.yaml
var mapsYAML []byte

// Map is one fixture. Optional counters are nil when not recorded.
type Map struct {
	Name       string `yaml:"name"`
	Grid       string `yaml:"grid"`
	Visited    int    `yaml:"visited"`
	Loops      int    `yaml:"loops"`
	Moves      *int   `yaml:"moves,omitempty"`
	Segments   *int   `yaml:"segments,omitempty"`
	Candidates *int   `yaml:"candidates,omitempty"`
}

// Maps decodes every fixture in file order.
func Maps() ([]Map, error) {
	var out []Map
	if err := yaml.Unmarshal(mapsYAML, &out); err != nil {
		return nil, fmt.Errorf("fixture: decode maps.yaml: %w", err)
	}

	return out, nil
}

// Get returns the fixture called name.
func Get(name string) (Map, error) {
	maps, err := Maps()
	if err != nil {
		return Map{}, err
	}
	for _, m := range maps {
		if m.Name == name {
			return m, nil
		}
	}

	return Map{}, fmt.Errorf("fixture: no map named %q", name)
}
