package rss2

import "github.com/feedcomb/syndication/app/syndication"

// Parser recognizes RSS 0.9x/2.0 documents.
type Parser struct{}

var _ syndication.Parser = (*Parser)(nil)

func NewParser() *Parser {
	return &Parser{}
}

// Accept sniffs the root element only: an <rss> root carrying a version
// attribute claims the document. Item bodies are not touched.
func (p *Parser) Accept(src syndication.DocumentSource) bool {
	doc := src.AsDocument()
	if doc == nil || doc.Root == nil {
		return false
	}
	root := doc.Root
	return root.Name.Local == "rss" && root.Name.Space == "" && root.Attr("version") != ""
}

// Parse wraps the <channel> child of the root. If the channel is missing
// despite Accept having passed, the returned document is invalid and the
// dispatcher reports InvalidFormat.
func (p *Parser) Parse(src syndication.DocumentSource) syndication.SpecificDocument {
	doc := src.AsDocument()
	if doc == nil || doc.Root == nil {
		return NewDocument(nil)
	}
	for _, child := range doc.Root.ChildElements() {
		if child.Name.Local == "channel" && child.Name.Space == "" {
			return NewDocument(child)
		}
	}
	return NewDocument(nil)
}

// Format returns the registry key for this parser.
func (p *Parser) Format() string {
	return "rss2"
}
