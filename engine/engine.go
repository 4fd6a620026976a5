// Package engine evaluates a rule catalog against a harvested graph. It is
// a pure interpreter over the catalog's declarative checks: no I/O, no
// shared mutable state, deterministic for a fixed (graph, dataset) input.
package engine

import (
	"errors"
	"fmt"

	"github.com/opencatalog/propcheck/catalog"
	"github.com/opencatalog/propcheck/rdf"
)

// Outcome is the typed result of one (rule, target) evaluation.
type Outcome int

const (
	// Satisfied means the rule's check held for the target.
	Satisfied Outcome = iota
	// Unsatisfied means a target of the required type exists but the check
	// did not hold. Missing property values are Unsatisfied, not
	// Inapplicable.
	Unsatisfied
	// Inapplicable means no instance of the rule's target type exists in
	// the graph at all. Inapplicable results produce no measurement.
	Inapplicable
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Satisfied:
		return "satisfied"
	case Unsatisfied:
		return "unsatisfied"
	case Inapplicable:
		return "inapplicable"
	default:
		return "unknown"
	}
}

// Result is one rule's outcome for one target instance. Results are
// created during a single evaluation pass and never mutated. For an
// Inapplicable outcome Target is the zero term and Count is zero.
type Result struct {
	RuleID  string
	Target  rdf.Term
	Outcome Outcome
	Count   int
}

// ErrDuplicateResult reports an internal-consistency violation: two
// results for the same (rule, target) pair in one pass. It is not
// recoverable and indicates a programming error.
var ErrDuplicateResult = errors.New("engine: duplicate result for (rule, target) pair")

// Engine evaluates a catalog against graphs. The catalog and the dataset
// class aliases are fixed at construction; an Engine is safe for
// unsynchronized concurrent use.
type Engine struct {
	cat            *catalog.Catalog
	datasetClasses map[string]struct{}
}

// New returns an engine for the given catalog. datasetClasses lists the
// class IRIs of the dataset resource itself: a rule targeting one of them
// applies to the dataset node handed to Evaluate, whether or not the graph
// declares a type for it.
func New(cat *catalog.Catalog, datasetClasses ...string) *Engine {
	set := make(map[string]struct{}, len(datasetClasses))
	for _, c := range datasetClasses {
		set[c] = struct{}{}
	}
	return &Engine{cat: cat, datasetClasses: set}
}

// Evaluate runs every catalog rule against the graph and returns one
// result per (rule, target instance) pair, in catalog order. Rules whose
// target type has no instances yield a single Inapplicable result.
//
// Rules are independent of one another; evaluating them in any order
// produces identical results.
func (e *Engine) Evaluate(g *rdf.Graph, dataset rdf.Term) ([]Result, error) {
	var results []Result
	emitted := make(map[resultKey]struct{})

	for _, rule := range e.cat.Rules() {
		targets := e.targets(g, rule, dataset)
		if len(targets) == 0 {
			results = append(results, Result{RuleID: rule.ID, Outcome: Inapplicable})
			continue
		}

		for _, target := range targets {
			key := resultKey{ruleID: rule.ID, target: target}
			if _, dup := emitted[key]; dup {
				return nil, fmt.Errorf("%w: rule %s, target %s", ErrDuplicateResult, rule.ID, target)
			}
			emitted[key] = struct{}{}

			terms := reachable(g, target, rule.Paths)
			results = append(results, Result{
				RuleID:  rule.ID,
				Target:  target,
				Outcome: apply(rule.Check, terms),
				Count:   len(terms),
			})
		}
	}
	return results, nil
}

type resultKey struct {
	ruleID string
	target rdf.Term
}

// targets resolves a rule's target instances. The dataset node is the sole
// instance of the dataset's own class: it stays a target even when the
// harvested graph omits its type declaration, so dataset-level rules
// report Unsatisfied rather than Inapplicable on malformed dataset nodes.
// All other classes are resolved by type declaration.
func (e *Engine) targets(g *rdf.Graph, rule catalog.Rule, dataset rdf.Term) []rdf.Term {
	var targets []rdf.Term
	var enumerate []string

	for _, class := range rule.TargetType {
		if _, ok := e.datasetClasses[class]; ok {
			if len(targets) == 0 {
				targets = append(targets, dataset)
			}
			continue
		}
		enumerate = append(enumerate, class)
	}

	for _, s := range g.SubjectsOfType(enumerate...) {
		if s == dataset {
			continue
		}
		targets = append(targets, s)
	}
	return targets
}

// reachable unions the term sets reached by each alternative path,
// deduplicated in first-reached order.
func reachable(g *rdf.Graph, start rdf.Term, paths []rdf.Path) []rdf.Term {
	if len(paths) == 1 {
		return paths[0].Evaluate(g, start)
	}
	var terms []rdf.Term
	seen := make(map[rdf.Term]struct{})
	for _, p := range paths {
		for _, term := range p.Evaluate(g, start) {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}
	return terms
}

// apply interprets a satisfaction predicate over the reached term set.
func apply(check catalog.Check, terms []rdf.Term) Outcome {
	switch check.Kind {
	case catalog.CheckExists:
		return outcomeOf(len(terms) > 0)

	case catalog.CheckNonEmptyLiteral:
		for _, term := range terms {
			if term.HasContent() {
				return Satisfied
			}
		}
		return Unsatisfied

	case catalog.CheckMatchesDatatype:
		for _, term := range terms {
			if term.IsLiteral() && term.Datatype == check.Datatype {
				return Satisfied
			}
		}
		return Unsatisfied

	case catalog.CheckCountInRange:
		return outcomeOf(len(terms) >= check.Min && len(terms) <= check.Max)

	case catalog.CheckValueInSet:
		for _, term := range terms {
			for _, v := range check.Values {
				if term.Value == v {
					return Satisfied
				}
			}
		}
		return Unsatisfied

	default:
		// Unknown kinds are rejected at catalog load time.
		return Unsatisfied
	}
}

func outcomeOf(satisfied bool) Outcome {
	if satisfied {
		return Satisfied
	}
	return Unsatisfied
}
