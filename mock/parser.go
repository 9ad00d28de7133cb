package mock

import "github.com/fwojciec/sitescan"

var _ sitescan.Parser = (*Parser)(nil)

// Parser is a mock implementation of sitescan.Parser.
type Parser struct {
	ParseFn func(html string) (sitescan.Document, error)
}

func (p *Parser) Parse(html string) (sitescan.Document, error) {
	return p.ParseFn(html)
}
