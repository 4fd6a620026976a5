// Package dqv defines IRI constants from the W3C Data Quality Vocabulary.
// Quality measurements emitted by the checker follow this model.
package dqv

// Namespace is the base IRI prefix for all DQV terms.
const Namespace = "http://www.w3.org/ns/dqv#"

// Class IRIs.
const (
	ClassQualityMeasurement = Namespace + "QualityMeasurement"
	ClassQualityAnnotation  = Namespace + "QualityAnnotation"
)

// Property IRIs.
const (
	IsMeasurementOf       = Namespace + "isMeasurementOf"
	ComputedOn            = Namespace + "computedOn"
	Value                 = Namespace + "value"
	HasQualityMeasurement = Namespace + "hasQualityMeasurement"
	InDimension           = Namespace + "inDimension"
)
