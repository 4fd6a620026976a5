// Package prov defines IRI constants from the W3C provenance ontology.
package prov

// Namespace is the base IRI prefix for all PROV-O terms.
const Namespace = "http://www.w3.org/ns/prov#"

const (
	WasDerivedFrom  = Namespace + "wasDerivedFrom"
	GeneratedAtTime = Namespace + "generatedAtTime"
)
