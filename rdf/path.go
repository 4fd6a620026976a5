package rdf

// Path is an ordered sequence of predicate IRIs describing a multi-hop
// traversal from a starting resource.
type Path []string

// Evaluate walks the path one predicate hop at a time starting from the
// frontier {start}. At each hop the new frontier is the union of
// ObjectsOf(s, predicate) over the current frontier, deduplicated in
// first-reached order.
//
// An empty frontier short-circuits: remaining hops are not evaluated and
// the result is empty, which is a normal outcome, not an error. Blank
// nodes are followed like IRIs; a literal reached before the final hop is
// a dead end because literals have no outgoing triples.
func (p Path) Evaluate(g *Graph, start Term) []Term {
	frontier := []Term{start}
	for _, predicate := range p {
		var next []Term
		reached := make(map[Term]struct{})
		for _, s := range frontier {
			if !s.IsResource() {
				continue
			}
			for _, o := range g.ObjectsOf(s, predicate) {
				if _, dup := reached[o]; dup {
					continue
				}
				reached[o] = struct{}{}
				next = append(next, o)
			}
		}
		if len(next) == 0 {
			return nil
		}
		frontier = next
	}
	return frontier
}
