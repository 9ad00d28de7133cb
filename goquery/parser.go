// Package goquery implements sitescan.Parser and sitescan.Document on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitescan"
)

// Compile-time interface verification.
var (
	_ sitescan.Parser   = (*Parser)(nil)
	_ sitescan.Document = (*Document)(nil)
	_ sitescan.Element  = (*Element)(nil)
)

// Parser parses HTML with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html into a Document.
func (p *Parser) Parse(html string) (sitescan.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitescan.Errorf(sitescan.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{sel: doc.Selection}, nil
}

// Document wraps a goquery selection holding a single root node.
type Document struct {
	sel *goquery.Selection
}

// Elements yields every element below the root in document order.
func (d *Document) Elements() iter.Seq[sitescan.Element] {
	return each(d.sel.Find("*"))
}

// FindByTagNames yields descendants matching any of names in document order.
func (d *Document) FindByTagNames(names ...string) iter.Seq[sitescan.Element] {
	if len(names) == 0 {
		return each(d.sel.Slice(0, 0))
	}
	return each(d.sel.Find(strings.Join(names, ", ")))
}

// FindByClass returns the first tag element carrying class.
func (d *Document) FindByClass(tag, class string) (sitescan.Document, bool) {
	match := d.sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(class)
	}).First()
	if match.Length() == 0 {
		return nil, false
	}
	return &Document{sel: match}, true
}

// each yields one Element per node of sel.
func each(sel *goquery.Selection) iter.Seq[sitescan.Element] {
	return func(yield func(sitescan.Element) bool) {
		for i := range sel.Length() {
			if !yield(&Element{sel: sel.Eq(i)}) {
				return
			}
		}
	}
}

// Element wraps a goquery selection holding a single element node.
type Element struct {
	sel *goquery.Selection
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return goquery.NodeName(e.sel)
}

// Attr returns the named attribute value.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Text returns the text content of the element and its descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}
