package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the YAML shape of a catalog file. Paths are flat predicate
// lists per alternative, e.g.:
//
//	version: acme-checks-2
//	rules:
//	  - id: title-exists
//	    target_type: ["http://www.w3.org/ns/dcat#Dataset"]
//	    paths: [["http://purl.org/dc/terms/title"]]
//	    check: {kind: non-empty-literal}
//	    metric: "https://example.com/metrics#titleAvailability"
//	    dimension: findability
type fileFormat struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// Load reads a catalog from a YAML file and validates it with the same
// invariants as New. Loading happens once at process start; a bad catalog
// file must abort startup.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	if f.Version == "" {
		return nil, fmt.Errorf("catalog file %s: missing version", path)
	}

	c, err := New(f.Version, f.Rules)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
