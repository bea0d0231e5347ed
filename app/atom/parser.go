package atom

import "github.com/feedcomb/syndication/app/syndication"

// Parser recognizes Atom 0.3 and 1.0 documents, both full feeds and
// standalone entries.
type Parser struct{}

var _ syndication.Parser = (*Parser)(nil)

func NewParser() *Parser {
	return &Parser{}
}

// Accept sniffs the root element only: a feed or entry root in one of the
// two Atom namespaces claims the document.
func (p *Parser) Accept(src syndication.DocumentSource) bool {
	doc := src.AsDocument()
	if doc == nil || doc.Root == nil {
		return false
	}
	root := doc.Root
	if root.Name.Local != "feed" && root.Name.Local != "entry" {
		return false
	}
	return root.Name.Space == Atom1Namespace || root.Name.Space == Atom0_3Namespace
}

// Parse wraps the root element as a FeedDocument or EntryDocument. Atom
// 0.3 trees are first converted to the 1.0 shape; the source is left
// untouched.
func (p *Parser) Parse(src syndication.DocumentSource) syndication.SpecificDocument {
	doc := src.AsDocument()
	if doc == nil || doc.Root == nil {
		return NewFeedDocument(nil)
	}

	if doc.Root.Name.Space == Atom0_3Namespace {
		doc = convertAtom03(doc)
	}

	switch doc.Root.Name.Local {
	case "feed":
		return NewFeedDocument(doc.Root)
	case "entry":
		return NewEntryDocument(doc.Root)
	}
	return NewFeedDocument(nil)
}

// Format returns the registry key for this parser.
func (p *Parser) Format() string {
	return "atom"
}
