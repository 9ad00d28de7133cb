package sitescan

import "iter"

// Element is a single tag in a parsed HTML document.
type Element interface {
	// Tag returns the lowercase tag name (e.g., "a", "img").
	Tag() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the combined text content of the element and its descendants.
	Text() string
}

// Document is a read-only view of a parsed HTML tree.
// A nil Document stands for a page that could not be retrieved.
type Document interface {
	// Elements yields every element below the document root in document order.
	Elements() iter.Seq[Element]

	// FindByTagNames yields elements matching any of the tag names in document order.
	FindByTagNames(names ...string) iter.Seq[Element]

	// FindByClass returns the first element with the given tag name carrying
	// the class token, as a document rooted at that element.
	// Returns false if there is no such element.
	FindByClass(tag, class string) (Document, bool)
}

// Parser turns raw HTML into a Document.
type Parser interface {
	Parse(html string) (Document, error)
}
