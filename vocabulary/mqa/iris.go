// Package mqa defines IRI constants from the dcatno-mqa metadata quality
// assessment vocabulary: assessment classes, metric identifiers and the
// five-star rating individuals.
package mqa

// Namespace is the base IRI prefix for all dcatno-mqa terms.
const Namespace = "https://data.norge.no/vocabulary/dcatno-mqa#"

// Assessment classes and structural properties.
const (
	ClassDatasetAssessment      = Namespace + "DatasetAssessment"
	ClassDistributionAssessment = Namespace + "DistributionAssessment"

	AssessmentOf               = Namespace + "assessmentOf"
	HasAssessment              = Namespace + "hasAssessment"
	HasDistributionAssessment  = Namespace + "hasDistributionAssessment"
	ContainsQualityMeasurement = Namespace + "containsQualityMeasurement"
	ContainsQualityAnnotation  = Namespace + "containsQualityAnnotation"
)

// Five-star rating individuals, used as the body of the quality annotation.
const (
	ZeroStars  = Namespace + "zeroStars"
	OneStar    = Namespace + "oneStar"
	TwoStars   = Namespace + "twoStars"
	ThreeStars = Namespace + "threeStars"
	FourStars  = Namespace + "fourStars"
	FiveStars  = Namespace + "fiveStars"
)

// Findability metrics.
const (
	KeywordAvailability     = Namespace + "keywordAvailability"
	CategoryAvailability    = Namespace + "categoryAvailability"
	SpatialAvailability     = Namespace + "spatialAvailability"
	TemporalAvailability    = Namespace + "temporalAvailability"
	TitleAvailability       = Namespace + "titleAvailability"
	DescriptionAvailability = Namespace + "descriptionAvailability"
)

// Accessibility metrics.
const (
	DownloadURLAvailability = Namespace + "downloadUrlAvailability"
)

// Interoperability metrics.
const (
	FormatAvailability                  = Namespace + "formatAvailability"
	MediaTypeAvailability               = Namespace + "mediaTypeAvailability"
	FormatMediaTypeVocabularyAlignment  = Namespace + "formatMediaTypeVocabularyAlignment"
	FormatMediaTypeNonProprietary       = Namespace + "formatMediaTypeNonProprietary"
	FormatMediaTypeMachineInterpretable = Namespace + "formatMediaTypeMachineInterpretable"
	AtLeastFourStars                    = Namespace + "atLeastFourStars"
)

// Reusability metrics.
const (
	LicenseAvailability             = Namespace + "licenseAvailability"
	KnownLicense                    = Namespace + "knownLicense"
	OpenLicense                     = Namespace + "openLicense"
	AccessRightsAvailability        = Namespace + "accessRightsAvailability"
	AccessRightsVocabularyAlignment = Namespace + "accessRightsVocabularyAlignment"
	ContactPointAvailability        = Namespace + "contactPointAvailability"
	PublisherAvailability           = Namespace + "publisherAvailability"
)

// Contextuality metrics.
const (
	RightsAvailability       = Namespace + "rightsAvailability"
	ByteSizeAvailability     = Namespace + "byteSizeAvailability"
	DateIssuedAvailability   = Namespace + "dateIssuedAvailability"
	DateModifiedAvailability = Namespace + "dateModifiedAvailability"
)
