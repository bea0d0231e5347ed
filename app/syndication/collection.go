package syndication

// ParserCollection dispatches a DocumentSource to the first registered
// parser that accepts it and maps the result onto the Feed abstraction.
//
// Registration is expected to happen once during initialization; after
// that, concurrent Parse calls are safe since the registry is read-only.
// LastError reflects the most recent Parse call and is meant for
// single-goroutine use; concurrent callers should use the ErrorCode
// returned by Parse directly.
type ParserCollection struct {
	order     []string
	parsers   map[string]Parser
	mappers   map[string]Mapper
	lastError ErrorCode
}

// NewParserCollection creates an empty collection.
func NewParserCollection() *ParserCollection {
	return &ParserCollection{
		parsers: make(map[string]Parser),
		mappers: make(map[string]Mapper),
	}
}

// Register adds a (parser, mapper) pair under the parser's format name.
// Registering an already-known format is rejected, not silently
// overwritten.
func (c *ParserCollection) Register(parser Parser, mapper Mapper) bool {
	format := parser.Format()
	if _, exists := c.parsers[format]; exists {
		return false
	}
	c.order = append(c.order, format)
	c.parsers[format] = parser
	c.mappers[format] = mapper
	return true
}

// ChangeMapper replaces only the mapper for an already-registered format.
func (c *ParserCollection) ChangeMapper(format string, mapper Mapper) bool {
	if _, exists := c.parsers[format]; !exists {
		return false
	}
	c.mappers[format] = mapper
	return true
}

// Formats returns the registered format names in registration order.
func (c *ParserCollection) Formats() []string {
	return append([]string(nil), c.order...)
}

// Parse runs the dispatch protocol: if formatHint names a registered
// parser, that one is tried first and, when it accepts the source, decides
// the outcome alone. Otherwise all parsers are tried in registration order
// and the first acceptor wins. When no parser accepts, the error code
// distinguishes non-XML input (InvalidXml) from well-formed XML of an
// unknown format (XmlNotAccepted). A nil Feed is always paired with a
// non-Success code.
func (c *ParserCollection) Parse(src DocumentSource, formatHint string) (Feed, ErrorCode) {
	c.lastError = Success

	if parser, ok := c.parsers[formatHint]; ok && parser.Accept(src) {
		return c.parseWith(parser, src)
	}

	for _, format := range c.order {
		parser := c.parsers[format]
		if parser.Accept(src) {
			return c.parseWith(parser, src)
		}
	}

	if src.AsDocument() == nil {
		c.lastError = InvalidXml
	} else {
		c.lastError = XmlNotAccepted
	}
	return nil, c.lastError
}

func (c *ParserCollection) parseWith(parser Parser, src DocumentSource) (Feed, ErrorCode) {
	doc := parser.Parse(src)
	if doc == nil || !doc.IsValid() {
		c.lastError = InvalidFormat
		return nil, c.lastError
	}
	feed := c.mappers[parser.Format()].Map(doc)
	if feed == nil {
		c.lastError = InvalidFormat
		return nil, c.lastError
	}
	return feed, Success
}

// LastError returns the code of the most recent Parse call.
func (c *ParserCollection) LastError() ErrorCode {
	return c.lastError
}
