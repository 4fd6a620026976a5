package rdf

import "testing"

func TestPathSingleHop(t *testing.T) {
	s := NewIRI(exDataset)
	g := NewGraph([]Triple{
		NewTriple(s, exTitle, NewLiteral("Air quality")),
	})

	got := Path{exTitle}.Evaluate(g, s)
	if len(got) != 1 || got[0] != NewLiteral("Air quality") {
		t.Fatalf("Evaluate() = %v, want the title literal", got)
	}
}

func TestPathMultiHopThroughBlankNode(t *testing.T) {
	dataset := NewIRI(exDataset)
	dist := NewBlank("dist0")
	g := NewGraph([]Triple{
		NewTriple(dataset, "http://www.w3.org/ns/dcat#distribution", dist),
		NewTriple(dist, "http://purl.org/dc/terms/license", NewIRI("http://example.com/license")),
	})

	path := Path{"http://www.w3.org/ns/dcat#distribution", "http://purl.org/dc/terms/license"}
	got := path.Evaluate(g, dataset)
	if len(got) != 1 || got[0] != NewIRI("http://example.com/license") {
		t.Fatalf("Evaluate() = %v, want the license IRI", got)
	}
}

func TestPathShortCircuitsOnEmptyFrontier(t *testing.T) {
	dataset := NewIRI(exDataset)
	// Second hop predicate exists in the graph under an unrelated subject;
	// it must never be reached because the first hop yields nothing.
	unrelated := NewIRI("http://example.com/unrelated")
	g := NewGraph([]Triple{
		NewTriple(unrelated, "http://purl.org/dc/terms/license", NewIRI("http://example.com/license")),
	})

	path := Path{"http://www.w3.org/ns/dcat#distribution", "http://purl.org/dc/terms/license"}
	if got := path.Evaluate(g, dataset); got != nil {
		t.Fatalf("Evaluate() = %v, want empty result", got)
	}
}

func TestPathLiteralMidWalkIsDeadEnd(t *testing.T) {
	dataset := NewIRI(exDataset)
	g := NewGraph([]Triple{
		NewTriple(dataset, exTitle, NewLiteral("Air quality")),
	})

	// The literal reached after the first hop has no outgoing triples, so
	// the second hop finds an empty frontier rather than failing.
	path := Path{exTitle, "http://purl.org/dc/terms/license"}
	if got := path.Evaluate(g, dataset); got != nil {
		t.Fatalf("Evaluate() = %v, want empty result", got)
	}
}

func TestPathFrontierUnionDeduplicates(t *testing.T) {
	dataset := NewIRI(exDataset)
	distA := NewBlank("a")
	distB := NewBlank("b")
	shared := NewIRI("http://example.com/license")
	g := NewGraph([]Triple{
		NewTriple(dataset, "http://www.w3.org/ns/dcat#distribution", distA),
		NewTriple(dataset, "http://www.w3.org/ns/dcat#distribution", distB),
		NewTriple(distA, "http://purl.org/dc/terms/license", shared),
		NewTriple(distB, "http://purl.org/dc/terms/license", shared),
	})

	path := Path{"http://www.w3.org/ns/dcat#distribution", "http://purl.org/dc/terms/license"}
	got := path.Evaluate(g, dataset)
	if len(got) != 1 {
		t.Fatalf("Evaluate() returned %d terms, want 1 deduplicated term", len(got))
	}
}

func TestPathCycleIsBoundedByPathLength(t *testing.T) {
	dataset := NewIRI(exDataset)
	dist := NewBlank("dist0")
	g := NewGraph([]Triple{
		NewTriple(dataset, "http://www.w3.org/ns/dcat#distribution", dist),
		// Cycle back to the dataset.
		NewTriple(dist, "http://example.com/isDistributionOf", dataset),
	})

	path := Path{"http://www.w3.org/ns/dcat#distribution", "http://example.com/isDistributionOf"}
	got := path.Evaluate(g, dataset)
	if len(got) != 1 || got[0] != dataset {
		t.Fatalf("Evaluate() = %v, want the dataset node", got)
	}
}

func TestEmptyPathReturnsStart(t *testing.T) {
	dataset := NewIRI(exDataset)
	g := NewGraph(nil)

	got := Path{}.Evaluate(g, dataset)
	if len(got) != 1 || got[0] != dataset {
		t.Fatalf("Evaluate() = %v, want {start}", got)
	}
}
