// Package dcterms defines IRI constants from the Dublin Core terms vocabulary.
package dcterms

// Namespace is the base IRI prefix for all Dublin Core terms.
const Namespace = "http://purl.org/dc/terms/"

const (
	Title        = Namespace + "title"
	Description  = Namespace + "description"
	AccessRights = Namespace + "accessRights"
	Format       = Namespace + "format"
	Subject      = Namespace + "subject"
	Publisher    = Namespace + "publisher"
	Spatial      = Namespace + "spatial"
	Temporal     = Namespace + "temporal"
	Issued       = Namespace + "issued"
	Modified     = Namespace + "modified"
	Rights       = Namespace + "rights"
	License      = Namespace + "license"
)
