// Package xmldom provides a small namespace-aware XML document tree.
//
// The tree is built once from raw bytes and owned by the Document; all
// element handles are non-owning views into it. This keeps field access
// copy-free for the lazy feed wrappers built on top.
package xmldom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// XMLNamespace is the namespace URI bound to the reserved "xml" prefix,
// carrying xml:base and xml:lang.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// Node is either an *Element or a Text chunk.
type Node interface {
	node()
}

// Text is a character data node.
type Text struct {
	Data string
}

func (Text) node() {}

// Element is one XML element. Name.Space holds the resolved namespace URI
// (empty for elements without a namespace), Name.Local the local name.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Parent   *Element
	Children []Node

	// memoized inherited xml:base / xml:lang, computed on first access
	xmlBase *string
	xmlLang *string
}

func (*Element) node() {}

// Document owns a parsed XML tree. A nil Root means parsing failed.
type Document struct {
	Root *Element
}

// Parse builds a document tree from raw bytes. The decoder is
// namespace-aware, resolves HTML entities and transcodes legacy charsets
// declared in the XML prolog or content-type meta.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = charset.NewReaderLabel

	var root *Element
	var current *Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Name:   t.Name,
				Attrs:  append([]xml.Attr(nil), t.Attr...),
				Parent: current,
			}
			if current != nil {
				current.Children = append(current.Children, el)
			} else if root == nil {
				root = el
			} else {
				return nil, fmt.Errorf("malformed XML: multiple root elements")
			}
			current = el
		case xml.EndElement:
			if current != nil {
				current = current.Parent
			}
		case xml.CharData:
			if current != nil {
				current.Children = append(current.Children, Text{Data: string(t)})
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("malformed XML: no root element")
	}
	if current != nil {
		return nil, fmt.Errorf("malformed XML: unclosed element <%s>", current.Name.Local)
	}

	return &Document{Root: root}, nil
}

// Text returns the concatenated character data of the element and all its
// descendants.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.appendText(&b)
	return b.String()
}

func (e *Element) appendText(b *strings.Builder) {
	for _, child := range e.Children {
		switch c := child.(type) {
		case Text:
			b.WriteString(c.Data)
		case *Element:
			c.appendText(b)
		}
	}
}

// Attr returns the value of the named unprefixed attribute, or "".
func (e *Element) Attr(local string) string {
	if e == nil {
		return ""
	}
	for _, a := range e.Attrs {
		if a.Name.Local == local && a.Name.Space == "" {
			return a.Value
		}
	}
	return ""
}

// AttrNS returns the value of a namespaced attribute, or "".
func (e *Element) AttrNS(space, local string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Name.Local == local && a.Name.Space == space {
			return a.Value, true
		}
	}
	return "", false
}

// ChildElements returns the direct child elements in document order.
func (e *Element) ChildElements() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// serialize writes the element subtree back out as XML. parentNS is the
// namespace in effect at the parent, so xmlns attributes only appear where
// the namespace actually changes.
func (e *Element) serialize(b *strings.Builder, parentNS string) {
	b.WriteByte('<')
	b.WriteString(e.Name.Local)
	if e.Name.Space != parentNS {
		b.WriteString(` xmlns="`)
		writeEscaped(b, e.Name.Space)
		b.WriteByte('"')
	}
	for _, a := range e.Attrs {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(a.Name.Local)
		b.WriteString(`="`)
		writeEscaped(b, a.Value)
		b.WriteByte('"')
	}
	if len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, child := range e.Children {
		switch c := child.(type) {
		case Text:
			writeEscaped(b, c.Data)
		case *Element:
			c.serialize(b, e.Name.Space)
		}
	}
	b.WriteString("</")
	b.WriteString(e.Name.Local)
	b.WriteByte('>')
}

func writeEscaped(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
}
