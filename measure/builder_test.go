package measure

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/opencatalog/propcheck/catalog"
	"github.com/opencatalog/propcheck/engine"
	"github.com/opencatalog/propcheck/rdf"
	"github.com/opencatalog/propcheck/vocabulary/dqv"
	"github.com/opencatalog/propcheck/vocabulary/mqa"
	"github.com/opencatalog/propcheck/vocabulary/prov"
)

var (
	target  = rdf.NewIRI("http://example.com/dataset")
	fixedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

func TestSubjectIsStableAcrossRuns(t *testing.T) {
	a := Subject(target, mqa.KeywordAvailability)
	b := Subject(target, mqa.KeywordAvailability)
	if a != b {
		t.Fatalf("Subject() not stable: %v vs %v", a, b)
	}
	if !a.IsBlank() || !strings.HasPrefix(a.Value, "measurement-") {
		t.Fatalf("Subject() = %v, want a measurement- blank node", a)
	}
}

func TestSubjectDistinguishesTargetAndMetric(t *testing.T) {
	other := rdf.NewIRI("http://example.com/other")
	if Subject(target, mqa.KeywordAvailability) == Subject(other, mqa.KeywordAvailability) {
		t.Error("subjects for distinct targets collide")
	}
	if Subject(target, mqa.KeywordAvailability) == Subject(target, mqa.SpatialAvailability) {
		t.Error("subjects for distinct metrics collide")
	}
	// An IRI and a blank node with the same value are distinct targets.
	if Subject(rdf.NewIRI("x"), mqa.KeywordAvailability) == Subject(rdf.NewBlank("x"), mqa.KeywordAvailability) {
		t.Error("subjects for same-valued IRI and blank node collide")
	}
}

func TestBuildEmitsMeasurementTriples(t *testing.T) {
	built, err := Build([]Observation{
		{Target: target, Metric: mqa.KeywordAvailability, Satisfied: true},
		{Target: target, Metric: mqa.SpatialAvailability, Satisfied: false},
	}, fixedAt)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	g := rdf.NewGraph(built.Triples)

	keyword := built.Subjects[Key{Target: target, Metric: mqa.KeywordAvailability}]
	spatial := built.Subjects[Key{Target: target, Metric: mqa.SpatialAvailability}]

	if !g.HasType(keyword, dqv.ClassQualityMeasurement) {
		t.Error("keyword measurement missing dqv:QualityMeasurement type")
	}

	wantValue := func(subject rdf.Term, want string) {
		t.Helper()
		values := g.ObjectsOf(subject, dqv.Value)
		if len(values) != 1 {
			t.Fatalf("got %d dqv:value triples, want 1", len(values))
		}
		if values[0] != rdf.NewTypedLiteral(want, rdf.XSDBoolean) {
			t.Errorf("dqv:value = %v, want %q boolean", values[0], want)
		}
	}
	wantValue(keyword, "true")
	wantValue(spatial, "false")

	if got := g.ObjectsOf(keyword, dqv.ComputedOn); len(got) != 1 || got[0] != target {
		t.Errorf("dqv:computedOn = %v, want target", got)
	}
	if got := g.ObjectsOf(keyword, dqv.IsMeasurementOf); len(got) != 1 || got[0] != rdf.NewIRI(mqa.KeywordAvailability) {
		t.Errorf("dqv:isMeasurementOf = %v, want keyword metric", got)
	}
	if got := g.ObjectsOf(keyword, prov.GeneratedAtTime); len(got) != 1 ||
		got[0] != rdf.NewTypedLiteral("2024-06-01T12:00:00Z", rdf.XSDDateTime) {
		t.Errorf("prov:generatedAtTime = %v", got)
	}
	if got := g.ObjectsOf(target, dqv.HasQualityMeasurement); len(got) != 2 {
		t.Errorf("target links %d measurements, want 2", len(got))
	}
}

func TestBuildRejectsDuplicateKey(t *testing.T) {
	_, err := Build([]Observation{
		{Target: target, Metric: mqa.KeywordAvailability, Satisfied: true},
		{Target: target, Metric: mqa.KeywordAvailability, Satisfied: false},
	}, fixedAt)
	if !errors.Is(err, ErrDuplicateMeasurement) {
		t.Fatalf("Build error = %v, want ErrDuplicateMeasurement", err)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	obs := []Observation{
		{Target: target, Metric: mqa.KeywordAvailability, Satisfied: true},
		{Target: rdf.NewBlank("dist0"), Metric: mqa.LicenseAvailability, Satisfied: false},
	}

	first, err := Build(obs, fixedAt)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := Build(obs, fixedAt)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(first.Triples) != len(second.Triples) {
		t.Fatalf("triple counts differ: %d vs %d", len(first.Triples), len(second.Triples))
	}
	for i := range first.Triples {
		if first.Triples[i] != second.Triples[i] {
			t.Errorf("triple %d differs: %v vs %v", i, first.Triples[i], second.Triples[i])
		}
	}
}

func TestFromResultsDropsInapplicable(t *testing.T) {
	cat := catalog.Default()
	results := []engine.Result{
		{RuleID: "keyword-availability", Target: target, Outcome: engine.Satisfied, Count: 2},
		{RuleID: "license-availability", Outcome: engine.Inapplicable},
		{RuleID: "spatial-availability", Target: target, Outcome: engine.Unsatisfied},
	}

	obs := FromResults(results, cat)
	if len(obs) != 2 {
		t.Fatalf("got %d observations, want 2 (Inapplicable dropped)", len(obs))
	}
	if obs[0].Metric != mqa.KeywordAvailability || !obs[0].Satisfied {
		t.Errorf("unexpected first observation: %+v", obs[0])
	}
	if obs[1].Metric != mqa.SpatialAvailability || obs[1].Satisfied {
		t.Errorf("unexpected second observation: %+v", obs[1])
	}
}
