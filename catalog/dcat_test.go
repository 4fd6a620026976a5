package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencatalog/propcheck/vocabulary/dcat"
	"github.com/opencatalog/propcheck/vocabulary/dcterms"
	"github.com/opencatalog/propcheck/vocabulary/mqa"
)

func TestDefaultCatalogRules(t *testing.T) {
	cat := Default()

	assert.Equal(t, DefaultVersion, cat.Version())

	keyword, ok := cat.Rule("keyword-availability")
	require.True(t, ok, "default catalog must carry the keyword rule")
	assert.Equal(t, mqa.KeywordAvailability, keyword.Metric)
	require.Len(t, keyword.Paths, 2, "keyword accepts dcat:keyword or dcterms:subject")
	assert.Equal(t, dcat.Keyword, keyword.Paths[0][0])
	assert.Equal(t, dcterms.Subject, keyword.Paths[1][0])

	// Issued/modified apply at both levels under a single metric each.
	for _, id := range []string{"date-issued-availability", "date-modified-availability"} {
		rule, ok := cat.Rule(id)
		require.True(t, ok, "default catalog must carry %s", id)
		assert.ElementsMatch(t,
			[]string{dcat.ClassDataset, dcat.ClassDistribution},
			rule.TargetType)
	}
}

func TestDefaultCatalogDimensions(t *testing.T) {
	cat := Default()

	wantDimensions := map[string]string{
		"keyword-availability":       DimensionFindability,
		"download-url-availability":  DimensionAccessibility,
		"format-availability":        DimensionInteroperability,
		"license-availability":       DimensionReusability,
		"byte-size-availability":     DimensionContextuality,
		"access-rights-availability": DimensionReusability,
	}
	for id, dimension := range wantDimensions {
		rule, ok := cat.Rule(id)
		require.True(t, ok, "rule %s missing from default catalog", id)
		assert.Equal(t, dimension, rule.Dimension, "rule %s", id)
	}
}
