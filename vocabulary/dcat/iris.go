// Package dcat defines IRI constants from the W3C Data Catalog Vocabulary.
package dcat

// Namespace is the base IRI prefix for all DCAT terms.
const Namespace = "http://www.w3.org/ns/dcat#"

// Class IRIs.
const (
	// ClassDataset is the class of harvested dataset descriptions.
	ClassDataset = Namespace + "Dataset"

	// ClassDistribution is the class of dataset distributions.
	ClassDistribution = Namespace + "Distribution"
)

// Property IRIs used by the property checks.
const (
	Distribution = Namespace + "distribution"
	Theme        = Namespace + "theme"
	ContactPoint = Namespace + "contactPoint"
	Keyword      = Namespace + "keyword"
	ByteSize     = Namespace + "byteSize"
	DownloadURL  = Namespace + "downloadURL"
	AccessURL    = Namespace + "accessURL"
	MediaType    = Namespace + "mediaType"
)
