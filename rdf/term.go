// Package rdf provides the in-memory RDF model the property checker
// evaluates against: immutable terms and triples, an indexed graph store,
// and property-path evaluation.
//
// The package never parses or serializes RDF syntax. Callers hand in
// already-parsed triples and receive triples back; wire formats belong to
// the transport layer.
package rdf

import "strings"

// TermKind discriminates the three RDF node kinds.
type TermKind uint8

const (
	// KindIRI is a named node identified by an IRI.
	KindIRI TermKind = iota
	// KindBlank is a blank node with a locally-scoped opaque label.
	KindBlank
	// KindLiteral is a literal value with optional datatype or language tag.
	KindLiteral
)

// String returns the kind name for logging.
func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "bnode"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Well-known IRIs the graph model itself depends on. Everything
// domain-specific lives in the vocabulary packages.
const (
	// TypeIRI is the rdf:type predicate used by Graph.HasType.
	TypeIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// XSD datatype IRIs for typed literals.
	XSDString   = "http://www.w3.org/2001/XMLSchema#string"
	XSDBoolean  = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDInteger  = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal  = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDate     = "http://www.w3.org/2001/XMLSchema#date"
	XSDDateTime = "http://www.w3.org/2001/XMLSchema#dateTime"
)

// Term is an RDF node: an IRI, a blank node, or a literal. Terms are
// immutable value types; equality is structural, so Term values compare
// with == and are valid map keys.
//
// Value holds the IRI string, the blank node label, or the literal's
// lexical form depending on Kind. Datatype and Lang are only set for
// literals.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Lang     string
}

// NewIRI returns an IRI term.
func NewIRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// NewBlank returns a blank node term with the given label.
func NewBlank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

// NewLiteral returns a plain string literal.
func NewLiteral(lexical string) Term {
	return Term{Kind: KindLiteral, Value: lexical, Datatype: XSDString}
}

// NewTypedLiteral returns a literal with an explicit datatype IRI.
func NewTypedLiteral(lexical, datatype string) Term {
	return Term{Kind: KindLiteral, Value: lexical, Datatype: datatype}
}

// NewLangLiteral returns a language-tagged string literal.
func NewLangLiteral(lexical, lang string) Term {
	return Term{Kind: KindLiteral, Value: lexical, Lang: lang}
}

// IsIRI reports whether the term is a named node.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsBlank reports whether the term is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// IsResource reports whether the term can appear in subject position
// or be followed during a path walk, i.e. it is an IRI or a blank node.
func (t Term) IsResource() bool { return t.Kind == KindIRI || t.Kind == KindBlank }

// IsZero reports whether the term is the zero value, used for results
// that have no target (e.g. inapplicable rule outcomes).
func (t Term) IsZero() bool { return t == Term{} }

// HasContent reports whether a literal has a non-whitespace lexical form.
// Non-literals always report false.
func (t Term) HasContent() bool {
	return t.Kind == KindLiteral && strings.TrimSpace(t.Value) != ""
}

// String renders the term in an N-Triples-like form for logs and errors.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	default:
		if t.Lang != "" {
			return `"` + t.Value + `"@` + t.Lang
		}
		if t.Datatype != "" && t.Datatype != XSDString {
			return `"` + t.Value + `"^^<` + t.Datatype + ">"
		}
		return `"` + t.Value + `"`
	}
}
