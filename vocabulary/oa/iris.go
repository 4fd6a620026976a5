// Package oa defines IRI constants from the W3C Web Annotation vocabulary.
package oa

// Namespace is the base IRI prefix for all Web Annotation terms.
const Namespace = "http://www.w3.org/ns/oa#"

const (
	HasBody     = Namespace + "hasBody"
	MotivatedBy = Namespace + "motivatedBy"
	Classifying = Namespace + "classifying"
)
