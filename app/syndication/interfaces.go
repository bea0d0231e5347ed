package syndication

// SpecificDocument is a format-specific document produced by a Parser,
// before mapping onto the Feed abstraction.
type SpecificDocument interface {
	// IsValid reports whether parsing yielded a usable document. Mapping
	// an invalid document is rejected by the ParserCollection.
	IsValid() bool
	// DebugInfo renders the document's fields for diagnostics.
	DebugInfo() string
}

// Parser recognizes and parses one syndication format.
type Parser interface {
	// Accept is a cheap structural sniff on the source's root element. It
	// must not walk item bodies, so dispatch cost is independent of feed
	// size.
	Accept(src DocumentSource) bool
	// Parse assumes Accept returned true and wraps the relevant root. If
	// the expected root is missing anyway, it returns an invalid document
	// rather than an error.
	Parse(src DocumentSource) SpecificDocument
	// Format is the stable identifier used as registry key and dispatch
	// hint.
	Format() string
}

// Mapper translates a format-specific document into the Feed abstraction.
// It never re-parses XML; it only wraps the already-parsed document. A
// document of the wrong format maps to nil.
type Mapper interface {
	Map(doc SpecificDocument) Feed
}
