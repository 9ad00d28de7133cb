// Package scan implements the extraction pipeline: external resource
// discovery, privacy policy lookup, and word frequency analysis of the
// policy text.
package scan

import (
	"strings"

	"github.com/fwojciec/sitescan"
)

// ExtractResources returns the external URLs referenced by src and href
// attributes, in document order. Duplicates are kept.
//
// Every src attribute is considered. Only hrefs whose raw value starts with
// "http" are considered, which skips relative navigation links.
// A nil document yields an empty slice.
func ExtractResources(doc sitescan.Document, base string) []string {
	resources := []string{}
	if doc == nil {
		return resources
	}

	for el := range doc.Elements() {
		if src, ok := el.Attr("src"); ok {
			if abs := sitescan.ResolveURL(base, src); sitescan.IsExternal(base, abs) {
				resources = append(resources, abs)
			}
		}
		if href, ok := el.Attr("href"); ok && strings.HasPrefix(href, "http") {
			if abs := sitescan.ResolveURL(base, href); sitescan.IsExternal(base, abs) {
				resources = append(resources, abs)
			}
		}
	}

	return resources
}
