package assess

import (
	"strings"

	"github.com/opencatalog/propcheck/rdf"
	"github.com/opencatalog/propcheck/vocabulary/mqa"
)

// starRating holds the distribution properties the five-star open-data
// ladder is computed from. Each level requires every level below it.
type starRating struct {
	openLicense          bool
	machineInterpretable bool
	nonProprietary       bool
	linkedData           bool
}

// stars evaluates the ladder: one star for an open license, two for a
// machine-interpretable format, three for a non-proprietary one, four for
// a linked-data serialization. The fifth star requires links into other
// datasets, which a single harvested graph cannot show, so four is the
// ceiling here.
func (r starRating) stars() starLevel {
	if !r.openLicense {
		return 0
	}
	if !r.machineInterpretable {
		return 1
	}
	if !r.nonProprietary {
		return 2
	}
	if !r.linkedData {
		return 3
	}
	return 4
}

type starLevel int

// iri maps a star level to its rating individual.
func (l starLevel) iri() string {
	switch l {
	case 1:
		return mqa.OneStar
	case 2:
		return mqa.TwoStars
	case 3:
		return mqa.ThreeStars
	case 4:
		return mqa.FourStars
	case 5:
		return mqa.FiveStars
	default:
		return mqa.ZeroStars
	}
}

// File-type authority codes grouped by ladder level. Codes are the last
// path segment of the EU file-type IRIs.
var (
	machineInterpretableFormats = map[string]struct{}{
		"CSV": {}, "TSV": {}, "JSON": {}, "JSON_LD": {}, "GEOJSON": {},
		"XML": {}, "RDF": {}, "RDF_XML": {}, "RDF_TURTLE": {}, "RDF_N_TRIPLES": {},
		"N3": {}, "XLSX": {}, "ODS": {}, "PARQUET": {},
	}

	nonProprietaryFormats = map[string]struct{}{
		"CSV": {}, "TSV": {}, "JSON": {}, "JSON_LD": {}, "GEOJSON": {},
		"XML": {}, "RDF": {}, "RDF_XML": {}, "RDF_TURTLE": {}, "RDF_N_TRIPLES": {},
		"N3": {}, "ODS": {}, "PARQUET": {},
	}

	linkedDataFormats = map[string]struct{}{
		"RDF": {}, "RDF_XML": {}, "RDF_TURTLE": {}, "RDF_N_TRIPLES": {},
		"N3": {}, "JSON_LD": {},
	}
)

// anyFormatIn reports whether any format term's trailing code is in the
// given set. Works for both IRI formats (last path segment) and bare
// literal codes.
func anyFormatIn(formats []rdf.Term, set map[string]struct{}) bool {
	for _, f := range formats {
		code := f.Value
		if i := strings.LastIndexByte(code, '/'); i >= 0 {
			code = code[i+1:]
		}
		if _, ok := set[strings.ToUpper(code)]; ok {
			return true
		}
	}
	return false
}
