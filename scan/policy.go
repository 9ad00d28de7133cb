package scan

import (
	"strings"

	"github.com/fwojciec/sitescan"
)

// policySuffix is the path shape a privacy policy URL must end with.
const policySuffix = "/privacy-policy/"

// FindPolicyURL returns the absolute URL of the first anchor whose text
// mentions "privacy policy" and whose target ends with /privacy-policy/.
// Returns false if the document has no such link.
func FindPolicyURL(doc sitescan.Document, base string) (string, bool) {
	if doc == nil {
		return "", false
	}

	for a := range doc.FindByTagNames("a") {
		if !strings.Contains(strings.ToLower(a.Text()), "privacy policy") {
			continue
		}
		href, ok := a.Attr("href")
		if !ok {
			continue
		}
		abs := sitescan.ResolveURL(base, href)
		if abs != base && strings.HasSuffix(abs, policySuffix) {
			return abs, true
		}
	}

	return "", false
}
