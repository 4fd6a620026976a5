package rdf

// Triple is a single RDF statement. The predicate is always an IRI and is
// stored as its string form so vocabulary constants can be used directly.
// Triples are immutable once inserted into a graph.
type Triple struct {
	Subject   Term
	Predicate string
	Object    Term
}

// NewTriple constructs a triple.
func NewTriple(subject Term, predicate string, object Term) Triple {
	return Triple{Subject: subject, Predicate: predicate, Object: object}
}

// String renders the triple in an N-Triples-like form.
func (t Triple) String() string {
	return t.Subject.String() + " <" + t.Predicate + "> " + t.Object.String() + " ."
}
