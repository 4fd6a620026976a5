// Package catalog defines the static, versioned set of metadata property
// checks the service evaluates. Rules are declarative data interpreted by
// the engine package; the catalog itself carries no executable logic and
// is read-only after load.
package catalog

import (
	"fmt"

	"github.com/opencatalog/propcheck/rdf"
)

// Quality dimensions a metric can belong to.
const (
	DimensionFindability      = "findability"
	DimensionAccessibility    = "accessibility"
	DimensionInteroperability = "interoperability"
	DimensionReusability      = "reusability"
	DimensionContextuality    = "contextuality"
)

// CheckKind names a satisfaction predicate variant.
type CheckKind string

const (
	// CheckExists is satisfied when the path reaches at least one term.
	CheckExists CheckKind = "exists"
	// CheckNonEmptyLiteral is satisfied when at least one reached term is a
	// literal with a non-whitespace lexical form.
	CheckNonEmptyLiteral CheckKind = "non-empty-literal"
	// CheckMatchesDatatype is satisfied when at least one reached literal
	// has the expected datatype IRI.
	CheckMatchesDatatype CheckKind = "matches-datatype"
	// CheckCountInRange is satisfied when the number of reached terms falls
	// within [Min, Max] inclusive.
	CheckCountInRange CheckKind = "count-in-range"
	// CheckValueInSet is satisfied when at least one reached term's lexical
	// form is a member of Values (case-sensitive exact match).
	CheckValueInSet CheckKind = "value-in-set"
)

// Check is the tagged satisfaction predicate of a rule. Only the fields
// relevant to Kind are read.
type Check struct {
	Kind     CheckKind `yaml:"kind"`
	Datatype string    `yaml:"datatype,omitempty"`
	Min      int       `yaml:"min,omitempty"`
	Max      int       `yaml:"max,omitempty"`
	Values   []string  `yaml:"values,omitempty"`
}

// Validate checks the predicate's own configuration invariants.
func (c Check) Validate() error {
	switch c.Kind {
	case CheckExists, CheckNonEmptyLiteral:
		return nil
	case CheckMatchesDatatype:
		if c.Datatype == "" {
			return fmt.Errorf("%s check requires a datatype IRI", c.Kind)
		}
	case CheckCountInRange:
		if c.Min < 0 || c.Max < c.Min {
			return fmt.Errorf("count-in-range requires 0 <= min <= max, got [%d, %d]", c.Min, c.Max)
		}
	case CheckValueInSet:
		if len(c.Values) == 0 {
			return fmt.Errorf("value-in-set check requires at least one value")
		}
	default:
		return fmt.Errorf("unknown check kind %q", c.Kind)
	}
	return nil
}

// Rule binds a target type, a property path, a satisfaction predicate and
// a quality metric. Rules are immutable once loaded.
//
// TargetType lists the class IRIs the rule applies to; a target type known
// under several equivalent class IRIs lists them all. Paths holds one or
// more property paths whose reached term sets are unioned before the check
// is applied; most rules have exactly one path, but some checks accept a
// property under alternative predicates (e.g. dcat:keyword or dct:subject).
type Rule struct {
	ID         string     `yaml:"id"`
	TargetType []string   `yaml:"target_type"`
	Paths      []rdf.Path `yaml:"paths"`
	Check      Check      `yaml:"check"`
	Metric     string     `yaml:"metric"`
	Dimension  string     `yaml:"dimension"`
}

// Validate checks the rule's configuration invariants. These are violated
// only by a programming or deployment error, never by input data.
func (r Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rule has no id")
	}
	if len(r.TargetType) == 0 {
		return fmt.Errorf("rule %s: no target type", r.ID)
	}
	if len(r.Paths) == 0 {
		return fmt.Errorf("rule %s: no property path", r.ID)
	}
	for _, p := range r.Paths {
		if len(p) == 0 {
			return fmt.Errorf("rule %s: empty property path", r.ID)
		}
	}
	if r.Metric == "" {
		return fmt.Errorf("rule %s: no metric IRI", r.ID)
	}
	if r.Dimension == "" {
		return fmt.Errorf("rule %s: no dimension", r.ID)
	}
	if err := r.Check.Validate(); err != nil {
		return fmt.Errorf("rule %s: %w", r.ID, err)
	}
	return nil
}
