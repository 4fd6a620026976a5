// Package refdata resolves controlled-vocabulary membership for the
// alignment checks: IANA media types, EU file types, open licenses and EU
// access rights. Collections are fetched over HTTP from a reference-data
// service and cached in memory; lookups are keyed by scheme-stripped URI
// so http/https spelling differences do not break alignment.
package refdata

import "strings"

// Sets answers controlled-vocabulary membership questions. A lookup
// failure (unreachable reference service) degrades to "not a member"; it
// never fails an evaluation.
type Sets interface {
	ValidMediaType(uri string) bool
	ValidFileType(uri string) bool
	ValidOpenLicense(uri string) bool
	ValidAccessRight(uri string) bool
}

// stripScheme removes the http/https scheme prefix from a URI so lookups
// tolerate either spelling.
func stripScheme(uri string) string {
	uri = strings.TrimPrefix(uri, "https://")
	uri = strings.TrimPrefix(uri, "http://")
	return uri
}

// Static is an in-memory Sets implementation for tests and offline runs.
type Static struct {
	MediaTypes   []string
	FileTypes    []string
	OpenLicenses []string
	AccessRights []string
}

func contains(uris []string, uri string) bool {
	key := stripScheme(uri)
	for _, candidate := range uris {
		if stripScheme(candidate) == key {
			return true
		}
	}
	return false
}

// ValidMediaType reports membership in the static media-type set.
func (s *Static) ValidMediaType(uri string) bool { return contains(s.MediaTypes, uri) }

// ValidFileType reports membership in the static file-type set.
func (s *Static) ValidFileType(uri string) bool { return contains(s.FileTypes, uri) }

// ValidOpenLicense reports membership in the static open-license set.
func (s *Static) ValidOpenLicense(uri string) bool { return contains(s.OpenLicenses, uri) }

// ValidAccessRight reports membership in the static access-right set.
func (s *Static) ValidAccessRight(uri string) bool { return contains(s.AccessRights, uri) }
