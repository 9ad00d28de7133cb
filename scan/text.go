package scan

import (
	"iter"
	"regexp"
	"strings"

	"github.com/fwojciec/sitescan"
)

// Content region holding the policy text.
const (
	contentTag   = "main"
	contentClass = "individual-content"
)

// numberPattern matches an optionally negative integer or a dot-joined
// chain of them (e.g., "2021.05", "-1.2.3") as one unit.
var numberPattern = regexp.MustCompile(`(-?\p{Nd}+)((\.(-?\p{Nd}+))+)?`)

// Tokens yields normalized words from the h2 and p elements of the page's
// main content region. Tokens are lowercase ASCII alphanumerics and may be
// empty; CountWords discards empties.
//
// The sequence is computed from doc each time it is ranged over.
// A nil document or one without the content region yields nothing.
func Tokens(doc sitescan.Document) iter.Seq[string] {
	return func(yield func(string) bool) {
		if doc == nil {
			return
		}
		region, ok := doc.FindByClass(contentTag, contentClass)
		if !ok {
			return
		}

		var texts []string
		for el := range region.FindByTagNames("h2", "p") {
			texts = append(texts, normalizeText(el.Text()))
		}

		for _, word := range strings.Fields(strings.Join(texts, " ")) {
			if !yield(stripNonAlphanumeric(word)) {
				return
			}
		}
	}
}

func normalizeText(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "\n", " "))
	s = numberPattern.ReplaceAllLiteralString(s, " ")
	return strings.ReplaceAll(s, "\u00a0", " ")
}

// stripNonAlphanumeric drops every rune outside [a-zA-Z0-9].
func stripNonAlphanumeric(word string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return -1
	}, word)
}
