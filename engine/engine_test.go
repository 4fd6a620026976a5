package engine

import (
	"testing"

	"github.com/opencatalog/propcheck/catalog"
	"github.com/opencatalog/propcheck/rdf"
	"github.com/opencatalog/propcheck/vocabulary/dcat"
	"github.com/opencatalog/propcheck/vocabulary/dcterms"
)

var datasetNode = rdf.NewIRI("http://example.com/dataset")

func mustCatalog(t *testing.T, rules ...catalog.Rule) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New("test", rules)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func datasetRule(id, metric string, check catalog.Check, paths ...rdf.Path) catalog.Rule {
	return catalog.Rule{
		ID:         id,
		TargetType: []string{dcat.ClassDataset},
		Paths:      paths,
		Check:      check,
		Metric:     metric,
		Dimension:  catalog.DimensionFindability,
	}
}

func distributionRule(id, metric string, check catalog.Check, paths ...rdf.Path) catalog.Rule {
	return catalog.Rule{
		ID:         id,
		TargetType: []string{dcat.ClassDistribution},
		Paths:      paths,
		Check:      check,
		Metric:     metric,
		Dimension:  catalog.DimensionInteroperability,
	}
}

// resultFor returns the single result with the given rule id, failing the
// test when it is absent or ambiguous.
func resultFor(t *testing.T, results []Result, ruleID string) Result {
	t.Helper()
	var found []Result
	for _, r := range results {
		if r.RuleID == ruleID {
			found = append(found, r)
		}
	}
	if len(found) != 1 {
		t.Fatalf("got %d results for rule %s, want 1", len(found), ruleID)
	}
	return found[0]
}

func TestDatasetRuleTargetsDatasetNode(t *testing.T) {
	cat := mustCatalog(t,
		datasetRule("title-exists", "http://example.com/m/title",
			catalog.Check{Kind: catalog.CheckExists}, rdf.Path{dcterms.Title}),
	)
	eng := New(cat, dcat.ClassDataset)

	// The dataset node carries no rdf:type declaration. It is still the
	// rule's target: missing properties are Unsatisfied, not Inapplicable.
	g := rdf.NewGraph(nil)
	results, err := eng.Evaluate(g, datasetNode)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	r := resultFor(t, results, "title-exists")
	if r.Outcome != Unsatisfied {
		t.Errorf("outcome = %v, want Unsatisfied", r.Outcome)
	}
	if r.Target != datasetNode {
		t.Errorf("target = %v, want dataset node", r.Target)
	}
}

func TestInapplicableWhenNoTargetInstances(t *testing.T) {
	cat := mustCatalog(t,
		distributionRule("dist-license", "http://example.com/m/license",
			catalog.Check{Kind: catalog.CheckExists}, rdf.Path{dcterms.License}),
	)
	eng := New(cat, dcat.ClassDataset)

	// Dataset with zero distributions: the distribution rule is
	// Inapplicable, not Unsatisfied.
	g := rdf.NewGraph([]rdf.Triple{
		rdf.NewTriple(datasetNode, rdf.TypeIRI, rdf.NewIRI(dcat.ClassDataset)),
	})
	results, err := eng.Evaluate(g, datasetNode)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	r := resultFor(t, results, "dist-license")
	if r.Outcome != Inapplicable {
		t.Errorf("outcome = %v, want Inapplicable", r.Outcome)
	}
	if !r.Target.IsZero() {
		t.Errorf("target = %v, want zero term", r.Target)
	}
}

func TestOneResultPerTargetInstance(t *testing.T) {
	cat := mustCatalog(t,
		distributionRule("dist-license", "http://example.com/m/license",
			catalog.Check{Kind: catalog.CheckExists}, rdf.Path{dcterms.License}),
	)
	eng := New(cat, dcat.ClassDataset)

	withLicense := rdf.NewBlank("d1")
	withoutLicense := rdf.NewBlank("d2")
	g := rdf.NewGraph([]rdf.Triple{
		rdf.NewTriple(withLicense, rdf.TypeIRI, rdf.NewIRI(dcat.ClassDistribution)),
		rdf.NewTriple(withLicense, dcterms.License, rdf.NewIRI("http://example.com/license")),
		rdf.NewTriple(withoutLicense, rdf.TypeIRI, rdf.NewIRI(dcat.ClassDistribution)),
	})

	results, err := eng.Evaluate(g, datasetNode)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	outcomes := map[rdf.Term]Outcome{}
	for _, r := range results {
		outcomes[r.Target] = r.Outcome
	}
	if outcomes[withLicense] != Satisfied {
		t.Errorf("outcome for licensed distribution = %v, want Satisfied", outcomes[withLicense])
	}
	if outcomes[withoutLicense] != Unsatisfied {
		t.Errorf("outcome for unlicensed distribution = %v, want Unsatisfied", outcomes[withoutLicense])
	}
}

func TestSharedRuleTargetsDatasetAndDistributions(t *testing.T) {
	rule := catalog.Rule{
		ID:         "issued",
		TargetType: []string{dcat.ClassDataset, dcat.ClassDistribution},
		Paths:      []rdf.Path{{dcterms.Issued}},
		Check:      catalog.Check{Kind: catalog.CheckExists},
		Metric:     "http://example.com/m/issued",
		Dimension:  catalog.DimensionContextuality,
	}
	eng := New(mustCatalog(t, rule), dcat.ClassDataset)

	dist := rdf.NewBlank("d1")
	g := rdf.NewGraph([]rdf.Triple{
		rdf.NewTriple(datasetNode, dcterms.Issued, rdf.NewTypedLiteral("2024-01-01", rdf.XSDDate)),
		rdf.NewTriple(dist, rdf.TypeIRI, rdf.NewIRI(dcat.ClassDistribution)),
	})

	results, err := eng.Evaluate(g, datasetNode)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want one per level", len(results))
	}

	outcomes := map[rdf.Term]Outcome{}
	for _, r := range results {
		outcomes[r.Target] = r.Outcome
	}
	if outcomes[datasetNode] != Satisfied {
		t.Errorf("dataset outcome = %v, want Satisfied", outcomes[datasetNode])
	}
	if outcomes[dist] != Unsatisfied {
		t.Errorf("distribution outcome = %v, want Unsatisfied", outcomes[dist])
	}
}

func TestAlternativePathsUnion(t *testing.T) {
	cat := mustCatalog(t,
		datasetRule("keyword", "http://example.com/m/keyword",
			catalog.Check{Kind: catalog.CheckExists},
			rdf.Path{dcat.Keyword}, rdf.Path{dcterms.Subject}),
	)
	eng := New(cat, dcat.ClassDataset)

	// Keyword absent but dct:subject present: the union satisfies.
	g := rdf.NewGraph([]rdf.Triple{
		rdf.NewTriple(datasetNode, dcterms.Subject, rdf.NewIRI("http://example.com/theme")),
	})
	results, err := eng.Evaluate(g, datasetNode)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	r := resultFor(t, results, "keyword")
	if r.Outcome != Satisfied {
		t.Errorf("outcome = %v, want Satisfied via alternative path", r.Outcome)
	}
	if r.Count != 1 {
		t.Errorf("count = %d, want 1", r.Count)
	}
}

func TestPathShortCircuitYieldsUnsatisfiedExists(t *testing.T) {
	cat := mustCatalog(t,
		datasetRule("dist-media-type", "http://example.com/m/mt",
			catalog.Check{Kind: catalog.CheckExists},
			rdf.Path{dcat.Distribution, dcat.MediaType}),
	)
	eng := New(cat, dcat.ClassDataset)

	// First hop yields no objects: the exists rule is Unsatisfied.
	g := rdf.NewGraph([]rdf.Triple{
		rdf.NewTriple(datasetNode, dcterms.Title, rdf.NewLiteral("t")),
	})
	results, err := eng.Evaluate(g, datasetNode)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	r := resultFor(t, results, "dist-media-type")
	if r.Outcome != Unsatisfied {
		t.Errorf("outcome = %v, want Unsatisfied", r.Outcome)
	}
	if r.Count != 0 {
		t.Errorf("count = %d, want 0", r.Count)
	}
}

func TestSatisfactionPredicates(t *testing.T) {
	title := rdf.NewLiteral("Air quality")
	blank := rdf.NewLiteral("   ")
	date := rdf.NewTypedLiteral("2024-01-01", rdf.XSDDate)
	csvIRI := rdf.NewIRI("https://www.iana.org/assignments/media-types/text/csv")

	tests := []struct {
		name    string
		check   catalog.Check
		objects []rdf.Term
		want    Outcome
	}{
		{"exists satisfied", catalog.Check{Kind: catalog.CheckExists}, []rdf.Term{title}, Satisfied},
		{"exists unsatisfied", catalog.Check{Kind: catalog.CheckExists}, nil, Unsatisfied},
		{"non-empty-literal satisfied", catalog.Check{Kind: catalog.CheckNonEmptyLiteral}, []rdf.Term{blank, title}, Satisfied},
		{"non-empty-literal whitespace only", catalog.Check{Kind: catalog.CheckNonEmptyLiteral}, []rdf.Term{blank}, Unsatisfied},
		{"non-empty-literal iri only", catalog.Check{Kind: catalog.CheckNonEmptyLiteral}, []rdf.Term{csvIRI}, Unsatisfied},
		{"matches-datatype satisfied", catalog.Check{Kind: catalog.CheckMatchesDatatype, Datatype: rdf.XSDDate}, []rdf.Term{date}, Satisfied},
		{"matches-datatype wrong type", catalog.Check{Kind: catalog.CheckMatchesDatatype, Datatype: rdf.XSDDateTime}, []rdf.Term{date}, Unsatisfied},
		{"count-in-range exactly one", catalog.Check{Kind: catalog.CheckCountInRange, Min: 1, Max: 1}, []rdf.Term{title}, Satisfied},
		{"count-in-range two is too many", catalog.Check{Kind: catalog.CheckCountInRange, Min: 1, Max: 1}, []rdf.Term{title, date}, Unsatisfied},
		{"count-in-range zero is unsatisfied", catalog.Check{Kind: catalog.CheckCountInRange, Min: 1, Max: 1}, nil, Unsatisfied},
		{"value-in-set satisfied", catalog.Check{Kind: catalog.CheckValueInSet, Values: []string{csvIRI.Value}}, []rdf.Term{csvIRI}, Satisfied},
		{"value-in-set case sensitive", catalog.Check{Kind: catalog.CheckValueInSet, Values: []string{"TEXT/CSV"}}, []rdf.Term{rdf.NewLiteral("text/csv")}, Unsatisfied},
	}

	predicate := "http://example.com/p"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var triples []rdf.Triple
			for _, o := range tt.objects {
				triples = append(triples, rdf.NewTriple(datasetNode, predicate, o))
			}
			g := rdf.NewGraph(triples)

			cat := mustCatalog(t, datasetRule("r", "http://example.com/m", tt.check, rdf.Path{predicate}))
			results, err := New(cat, dcat.ClassDataset).Evaluate(g, datasetNode)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got := resultFor(t, results, "r").Outcome; got != tt.want {
				t.Errorf("outcome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	eng := New(catalog.Default(), dcat.ClassDataset)

	dist := rdf.NewBlank("d0")
	g := rdf.NewGraph([]rdf.Triple{
		rdf.NewTriple(datasetNode, rdf.TypeIRI, rdf.NewIRI(dcat.ClassDataset)),
		rdf.NewTriple(datasetNode, dcterms.Publisher, rdf.NewIRI("http://example.com/org")),
		rdf.NewTriple(datasetNode, dcat.Distribution, dist),
		rdf.NewTriple(dist, rdf.TypeIRI, rdf.NewIRI(dcat.ClassDistribution)),
		rdf.NewTriple(dist, dcterms.Format, rdf.NewIRI("http://publications.europa.eu/resource/authority/file-type/CSV")),
	})

	first, err := eng.Evaluate(g, datasetNode)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	second, err := eng.Evaluate(g, datasetNode)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
