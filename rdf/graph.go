package rdf

// subjPred is the composite key for the (subject, predicate) index.
type subjPred struct {
	subject   Term
	predicate string
}

// Graph is an in-memory indexed set of triples. Duplicates collapse on
// insert, and every query is a total function: an empty graph (or a
// subject the graph has never seen) yields empty results, never an error.
//
// Insertion order is preserved, both globally and per index bucket, so
// that iteration over query results is deterministic, but it never
// affects which triples a query returns.
//
// A Graph is not safe for concurrent mutation. Evaluations build a graph,
// query it, and discard it; the concurrent-read case after construction
// is safe because queries do not mutate.
type Graph struct {
	seen       map[Triple]struct{}
	order      []Triple
	bySubject  map[Term][]Triple
	bySubjPred map[subjPred][]Term
	spSeen     map[subjPred]map[Term]struct{}
	byClass    map[string][]Term
	classSeen  map[string]map[Term]struct{}
	size       int
}

// NewGraph builds a graph from a flat sequence of parsed triples.
// Construction is O(n) amortized in the number of triples.
func NewGraph(triples []Triple) *Graph {
	g := &Graph{
		seen:       make(map[Triple]struct{}, len(triples)),
		bySubject:  make(map[Term][]Triple),
		bySubjPred: make(map[subjPred][]Term),
		spSeen:     make(map[subjPred]map[Term]struct{}),
		byClass:    make(map[string][]Term),
		classSeen:  make(map[string]map[Term]struct{}),
	}
	for _, t := range triples {
		g.Insert(t)
	}
	return g
}

// Insert adds a triple to the graph. Inserting a triple that is already
// present is a no-op.
func (g *Graph) Insert(t Triple) {
	if _, ok := g.seen[t]; ok {
		return
	}
	g.seen[t] = struct{}{}
	g.order = append(g.order, t)
	g.size++

	g.bySubject[t.Subject] = append(g.bySubject[t.Subject], t)

	sp := subjPred{subject: t.Subject, predicate: t.Predicate}
	objects, ok := g.spSeen[sp]
	if !ok {
		objects = make(map[Term]struct{})
		g.spSeen[sp] = objects
	}
	if _, dup := objects[t.Object]; !dup {
		objects[t.Object] = struct{}{}
		g.bySubjPred[sp] = append(g.bySubjPred[sp], t.Object)
	}

	if t.Predicate == TypeIRI && t.Object.IsIRI() {
		class := t.Object.Value
		members, ok := g.classSeen[class]
		if !ok {
			members = make(map[Term]struct{})
			g.classSeen[class] = members
		}
		if _, dup := members[t.Subject]; !dup {
			members[t.Subject] = struct{}{}
			g.byClass[class] = append(g.byClass[class], t.Subject)
		}
	}
}

// Len returns the number of distinct triples in the graph.
func (g *Graph) Len() int { return g.size }

// Contains reports whether the exact triple is present.
func (g *Graph) Contains(t Triple) bool {
	_, ok := g.seen[t]
	return ok
}

// Triples returns all triples in the graph in first-insertion order, so
// two graphs built from the same insert sequence serialize identically.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, g.size)
	copy(out, g.order)
	return out
}

// TriplesWithSubject returns every triple whose subject is s.
func (g *Graph) TriplesWithSubject(s Term) []Triple {
	return g.bySubject[s]
}

// ObjectsOf returns the distinct objects of all (s, p, ?) triples, in
// first-insertion order.
func (g *Graph) ObjectsOf(s Term, p string) []Term {
	return g.bySubjPred[subjPred{subject: s, predicate: p}]
}

// HasProperty reports whether s has at least one value for predicate p.
func (g *Graph) HasProperty(s Term, p string) bool {
	return len(g.ObjectsOf(s, p)) > 0
}

// HasType reports whether s is declared an instance of any of the given
// class IRIs via a single rdf:type hop. A target type may be known under
// several equivalent class IRIs, so any match counts.
func (g *Graph) HasType(s Term, classes ...string) bool {
	for _, class := range classes {
		if members, ok := g.classSeen[class]; ok {
			if _, member := members[s]; member {
				return true
			}
		}
	}
	return false
}

// SubjectsOfType returns every distinct subject declared an instance of
// any of the given class IRIs, in first-insertion order.
func (g *Graph) SubjectsOfType(classes ...string) []Term {
	var out []Term
	emitted := make(map[Term]struct{})
	for _, class := range classes {
		for _, s := range g.byClass[class] {
			if _, dup := emitted[s]; dup {
				continue
			}
			emitted[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
