// Package measure turns rule results into DQV quality-measurement triples.
// Measurement subjects are derived deterministically from the (target,
// metric) pair so a re-run over the same input produces an identical
// replacement graph: downstream consumers overwrite by subject identity
// instead of accumulating.
package measure

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opencatalog/propcheck/catalog"
	"github.com/opencatalog/propcheck/engine"
	"github.com/opencatalog/propcheck/rdf"
	"github.com/opencatalog/propcheck/vocabulary/dqv"
	"github.com/opencatalog/propcheck/vocabulary/prov"
)

// subjectNamespace is the fixed UUID namespace for measurement subjects.
// Changing it changes every emitted subject identifier, which breaks
// idempotent replacement downstream.
var subjectNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

// Observation is one boolean metric value to emit for a target resource.
type Observation struct {
	Target    rdf.Term
	Metric    string
	Satisfied bool
}

// Key identifies a measurement within one evaluation.
type Key struct {
	Target rdf.Term
	Metric string
}

// Built is the output of one Build call: the measurement triples plus the
// subject allocated per (target, metric), used by callers to attach
// assessment and provenance links.
type Built struct {
	Triples  []rdf.Triple
	Subjects map[Key]rdf.Term
}

// ErrDuplicateMeasurement reports two observations for the same (target,
// metric) pair within one run. The rule engine's one-result-per-(rule,
// target) contract makes this a programming error, never an input error.
var ErrDuplicateMeasurement = errors.New("measure: duplicate (target, metric) measurement")

// Subject returns the deterministic measurement subject for a (target,
// metric) pair: a blank node labeled with a name-based UUID.
func Subject(target rdf.Term, metric string) rdf.Term {
	name := target.Kind.String() + ":" + target.Value + "\n" + metric
	id := uuid.NewSHA1(subjectNamespace, []byte(name))
	return rdf.NewBlank("measurement-" + id.String())
}

// FromResults converts engine results into observations using the catalog
// to resolve each rule's metric IRI. Inapplicable results are dropped and
// contribute no measurement.
func FromResults(results []engine.Result, cat *catalog.Catalog) []Observation {
	obs := make([]Observation, 0, len(results))
	for _, r := range results {
		if r.Outcome == engine.Inapplicable {
			continue
		}
		metric := cat.Metric(r.RuleID)
		if metric == "" {
			continue
		}
		obs = append(obs, Observation{
			Target:    r.Target,
			Metric:    metric,
			Satisfied: r.Outcome == engine.Satisfied,
		})
	}
	return obs
}

// Build emits the measurement triples for the given observations. now is
// recorded as prov:generatedAtTime on every measurement; callers pass one
// timestamp per evaluation so all of its measurements agree.
func Build(obs []Observation, now time.Time) (Built, error) {
	built := Built{
		Triples:  make([]rdf.Triple, 0, len(obs)*6),
		Subjects: make(map[Key]rdf.Term, len(obs)),
	}
	timestamp := rdf.NewTypedLiteral(now.UTC().Format(time.RFC3339), rdf.XSDDateTime)

	for _, o := range obs {
		key := Key{Target: o.Target, Metric: o.Metric}
		if _, dup := built.Subjects[key]; dup {
			return Built{}, fmt.Errorf("%w: target %s, metric %s", ErrDuplicateMeasurement, o.Target, o.Metric)
		}

		subject := Subject(o.Target, o.Metric)
		built.Subjects[key] = subject

		value := rdf.NewTypedLiteral(fmt.Sprintf("%t", o.Satisfied), rdf.XSDBoolean)
		built.Triples = append(built.Triples,
			rdf.NewTriple(subject, rdf.TypeIRI, rdf.NewIRI(dqv.ClassQualityMeasurement)),
			rdf.NewTriple(subject, dqv.IsMeasurementOf, rdf.NewIRI(o.Metric)),
			rdf.NewTriple(subject, dqv.ComputedOn, o.Target),
			rdf.NewTriple(subject, dqv.Value, value),
			rdf.NewTriple(subject, prov.GeneratedAtTime, timestamp),
			rdf.NewTriple(o.Target, dqv.HasQualityMeasurement, subject),
		)
	}
	return built, nil
}
