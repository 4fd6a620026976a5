package catalog

import (
	"errors"
	"fmt"
)

// Configuration errors surfaced at load time. Any of these aborts startup:
// tolerating them would produce colliding or ambiguous measurement
// subjects for every subsequent evaluation.
var (
	ErrEmptyCatalog    = errors.New("catalog: no rules")
	ErrDuplicateID     = errors.New("catalog: duplicate rule id")
	ErrDuplicateMetric = errors.New("catalog: duplicate metric IRI")
)

// Catalog is an immutable, validated rule set. It is shared read-only
// state across all concurrent evaluations and is never mutated at runtime;
// catalog changes are a deployment-time event.
type Catalog struct {
	version string
	rules   []Rule
}

// New validates the rule set and returns a catalog. Validation rejects
// empty property paths, duplicate rule IDs and duplicate metric IRIs.
func New(version string, rules []Rule) (*Catalog, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyCatalog
	}

	ids := make(map[string]struct{}, len(rules))
	metrics := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := ids[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		ids[r.ID] = struct{}{}
		if _, dup := metrics[r.Metric]; dup {
			return nil, fmt.Errorf("%w: %s (rule %s)", ErrDuplicateMetric, r.Metric, r.ID)
		}
		metrics[r.Metric] = struct{}{}
	}

	owned := make([]Rule, len(rules))
	copy(owned, rules)
	return &Catalog{version: version, rules: owned}, nil
}

// Version returns the catalog version string.
func (c *Catalog) Version() string { return c.version }

// Len returns the number of rules.
func (c *Catalog) Len() int { return len(c.rules) }

// Rules returns the rules in catalog order. Callers must not modify the
// returned slice.
func (c *Catalog) Rules() []Rule { return c.rules }

// Rule returns the rule with the given id.
func (c *Catalog) Rule(id string) (Rule, bool) {
	for _, r := range c.rules {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// Metric returns the metric IRI bound to the given rule id, or "" when the
// rule does not exist.
func (c *Catalog) Metric(ruleID string) string {
	r, ok := c.Rule(ruleID)
	if !ok {
		return ""
	}
	return r.Metric
}
