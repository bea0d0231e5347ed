package atom

import (
	"encoding/base64"
	"strings"

	"github.com/feedcomb/syndication/app/xmldom"
)

// ContentFormat classifies how an atom:content element represents its
// payload.
type ContentFormat int

const (
	// PlainText content is unformatted text.
	PlainText ContentFormat = iota
	// EscapedHTML content is HTML embedded as escaped text.
	EscapedHTML
	// XML content is embedded markup, usually XHTML.
	XML
	// Binary content is base64-encoded opaque data.
	Binary
)

// Content wraps an atom:content element.
type Content struct {
	xmldom.ElementWrapper
}

func NewContent(e *xmldom.Element) Content {
	return Content{ElementWrapper: xmldom.Wrap(e)}
}

// Type returns the value of the type attribute, which is either one of
// "text", "html", "xhtml" or a MIME type.
func (c Content) Type() string {
	return c.Attribute("type")
}

// Src returns the URI of out-of-line content, resolved against xml:base.
func (c Content) Src() string {
	return c.CompleteURI(c.Attribute("src"))
}

// IsContained reports whether the content is inside the element, as
// opposed to referenced via src.
func (c Content) IsContained() bool {
	return c.Src() == ""
}

var xmlMIMETypes = map[string]bool{
	"xhtml":                 true,
	"application/xhtml+xml": true,
	// XML media types as defined in RFC 3023:
	"text/xml":                             true,
	"application/xml":                      true,
	"text/xml-external-parsed-entity":      true,
	"application/xml-external-parsed-entity": true,
	"application/xml-dtd":                  true,
}

// mapTypeToFormat classifies a type attribute value. Atom processors must
// treat a missing type on inline content as "text".
func mapTypeToFormat(typeAttr, src string) ContentFormat {
	if typeAttr == "" && src == "" {
		typeAttr = "text"
	}
	lower := strings.ToLower(typeAttr)

	if typeAttr == "html" || lower == "text/html" {
		return EscapedHTML
	}
	if typeAttr == "text" ||
		(strings.HasPrefix(lower, "text/") && !strings.HasPrefix(lower, "text/xml")) {
		return PlainText
	}
	if xmlMIMETypes[typeAttr] ||
		strings.HasSuffix(lower, "+xml") || strings.HasSuffix(lower, "/xml") {
		return XML
	}
	return Binary
}

// Format classifies the content representation.
func (c Content) Format() ContentFormat {
	return mapTypeToFormat(c.Type(), c.Attribute("src"))
}

// IsBinary reports whether the content is base64-encoded binary data.
func (c Content) IsBinary() bool {
	return c.Format() == Binary
}

// IsPlainText reports whether the content is plain text.
func (c Content) IsPlainText() bool {
	return c.Format() == PlainText
}

// IsEscapedHTML reports whether the content is HTML embedded as text.
func (c Content) IsEscapedHTML() bool {
	return c.Format() == EscapedHTML
}

// IsXML reports whether the content is embedded markup.
func (c Content) IsXML() bool {
	return c.Format() == XML
}

// AsBytes decodes binary content, nil for non-binary content or undecodable
// input.
func (c Content) AsBytes() []byte {
	if !c.IsBinary() {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(c.Text()))
	if err != nil {
		return nil
	}
	return data
}

// AsString returns the content as a string: serialized markup for XML
// content, the decoded text for text and escaped-HTML content, "" for
// binary or out-of-line content.
func (c Content) AsString() string {
	if c.IsXML() {
		return c.ChildNodesAsXML()
	}
	if c.IsContained() && (c.IsPlainText() || c.IsEscapedHTML()) {
		return c.Text()
	}
	return ""
}
