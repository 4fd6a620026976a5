package catalog

import (
	"github.com/opencatalog/propcheck/rdf"
	"github.com/opencatalog/propcheck/vocabulary/dcat"
	"github.com/opencatalog/propcheck/vocabulary/dcterms"
	"github.com/opencatalog/propcheck/vocabulary/mqa"
)

// DefaultVersion identifies the built-in DCAT-MQA rule set.
const DefaultVersion = "dcatno-mqa-1"

// Default returns the built-in catalog of DCAT metadata property checks.
// Rules whose target type lists both the dataset and the distribution
// class (date-issued, date-modified) are evaluated once per level against
// a single shared metric IRI.
func Default() *Catalog {
	c, err := New(DefaultVersion, defaultRules())
	if err != nil {
		// The built-in rule set is validated by its own tests; failing to
		// load it is a programming error.
		panic("catalog: invalid built-in rule set: " + err.Error())
	}
	return c
}

func defaultRules() []Rule {
	dataset := []string{dcat.ClassDataset}
	distribution := []string{dcat.ClassDistribution}
	both := []string{dcat.ClassDataset, dcat.ClassDistribution}

	return []Rule{
		// Dataset-level availability.
		{
			ID:         "title-availability",
			TargetType: dataset,
			Paths:      []rdf.Path{{dcterms.Title}},
			Check:      Check{Kind: CheckNonEmptyLiteral},
			Metric:     mqa.TitleAvailability,
			Dimension:  DimensionFindability,
		},
		{
			ID:         "description-availability",
			TargetType: dataset,
			Paths:      []rdf.Path{{dcterms.Description}},
			Check:      Check{Kind: CheckNonEmptyLiteral},
			Metric:     mqa.DescriptionAvailability,
			Dimension:  DimensionFindability,
		},
		{
			ID:         "access-rights-availability",
			TargetType: dataset,
			Paths:      []rdf.Path{{dcterms.AccessRights}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.AccessRightsAvailability,
			Dimension:  DimensionReusability,
		},
		{
			ID:         "category-availability",
			TargetType: dataset,
			Paths:      []rdf.Path{{dcat.Theme}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.CategoryAvailability,
			Dimension:  DimensionFindability,
		},
		{
			ID:         "contact-point-availability",
			TargetType: dataset,
			Paths:      []rdf.Path{{dcat.ContactPoint}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.ContactPointAvailability,
			Dimension:  DimensionReusability,
		},
		{
			ID:         "keyword-availability",
			TargetType: dataset,
			Paths:      []rdf.Path{{dcat.Keyword}, {dcterms.Subject}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.KeywordAvailability,
			Dimension:  DimensionFindability,
		},
		{
			ID:         "publisher-availability",
			TargetType: dataset,
			Paths:      []rdf.Path{{dcterms.Publisher}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.PublisherAvailability,
			Dimension:  DimensionReusability,
		},
		{
			ID:         "spatial-availability",
			TargetType: dataset,
			Paths:      []rdf.Path{{dcterms.Spatial}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.SpatialAvailability,
			Dimension:  DimensionFindability,
		},
		{
			ID:         "temporal-availability",
			TargetType: dataset,
			Paths:      []rdf.Path{{dcterms.Temporal}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.TemporalAvailability,
			Dimension:  DimensionFindability,
		},

		// Shared dataset/distribution availability.
		{
			ID:         "date-issued-availability",
			TargetType: both,
			Paths:      []rdf.Path{{dcterms.Issued}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.DateIssuedAvailability,
			Dimension:  DimensionContextuality,
		},
		{
			ID:         "date-modified-availability",
			TargetType: both,
			Paths:      []rdf.Path{{dcterms.Modified}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.DateModifiedAvailability,
			Dimension:  DimensionContextuality,
		},

		// Distribution-level availability.
		{
			ID:         "byte-size-availability",
			TargetType: distribution,
			Paths:      []rdf.Path{{dcat.ByteSize}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.ByteSizeAvailability,
			Dimension:  DimensionContextuality,
		},
		{
			ID:         "download-url-availability",
			TargetType: distribution,
			Paths:      []rdf.Path{{dcat.DownloadURL}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.DownloadURLAvailability,
			Dimension:  DimensionAccessibility,
		},
		{
			ID:         "rights-availability",
			TargetType: distribution,
			Paths:      []rdf.Path{{dcterms.Rights}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.RightsAvailability,
			Dimension:  DimensionContextuality,
		},
		{
			ID:         "format-availability",
			TargetType: distribution,
			Paths:      []rdf.Path{{dcterms.Format}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.FormatAvailability,
			Dimension:  DimensionInteroperability,
		},
		{
			ID:         "license-availability",
			TargetType: distribution,
			Paths:      []rdf.Path{{dcterms.License}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.LicenseAvailability,
			Dimension:  DimensionReusability,
		},
		{
			ID:         "media-type-availability",
			TargetType: distribution,
			Paths:      []rdf.Path{{dcat.MediaType}},
			Check:      Check{Kind: CheckExists},
			Metric:     mqa.MediaTypeAvailability,
			Dimension:  DimensionInteroperability,
		},
	}
}
