package xmldom

import (
	"net/url"
	"strings"
)

// ElementWrapper is a copy-cheap view onto one element of a Document tree.
// A nil wrapper is valid: every accessor returns the absent value instead
// of panicking, so callers can chain lookups without nil checks.
type ElementWrapper struct {
	e *Element
}

// Wrap creates a wrapper for the given element. Wrap(nil) yields the nil
// wrapper.
func Wrap(e *Element) ElementWrapper {
	return ElementWrapper{e: e}
}

// IsNil reports whether the wrapper points to no element.
func (w ElementWrapper) IsNil() bool {
	return w.e == nil
}

// Element exposes the underlying element, nil for the nil wrapper.
func (w ElementWrapper) Element() *Element {
	return w.e
}

// Equals reports underlying-element identity.
func (w ElementWrapper) Equals(other ElementWrapper) bool {
	return w.e == other.e
}

// Text returns the trimmed text content of the element.
func (w ElementWrapper) Text() string {
	return strings.TrimSpace(w.e.Text())
}

// Attribute returns the value of an unprefixed attribute.
func (w ElementWrapper) Attribute(local string) string {
	return w.e.Attr(local)
}

// AttributeNS returns the value of a namespaced attribute.
func (w ElementWrapper) AttributeNS(space, local string) string {
	v, _ := w.e.AttrNS(space, local)
	return v
}

// HasAttributeNS reports whether a namespaced attribute is present.
func (w ElementWrapper) HasAttributeNS(space, local string) bool {
	_, ok := w.e.AttrNS(space, local)
	return ok
}

// XMLBase returns the base URI in scope for this element, walking ancestors
// for the nearest xml:base attribute. The result is memoized per element.
func (w ElementWrapper) XMLBase() string {
	if w.e == nil {
		return ""
	}
	if w.e.xmlBase != nil {
		return *w.e.xmlBase
	}
	base := ""
	for cur := w.e; cur != nil; cur = cur.Parent {
		if v, ok := cur.AttrNS(XMLNamespace, "base"); ok {
			base = v
			break
		}
	}
	w.e.xmlBase = &base
	return base
}

// XMLLang returns the language tag in scope for this element, walking
// ancestors for the nearest xml:lang attribute.
func (w ElementWrapper) XMLLang() string {
	if w.e == nil {
		return ""
	}
	if w.e.xmlLang != nil {
		return *w.e.xmlLang
	}
	lang := ""
	for cur := w.e; cur != nil; cur = cur.Parent {
		if v, ok := cur.AttrNS(XMLNamespace, "lang"); ok {
			lang = v
			break
		}
	}
	w.e.xmlLang = &lang
	return lang
}

// CompleteURI resolves uri against the xml:base in scope. If resolution is
// not possible the input is returned unchanged.
func (w ElementWrapper) CompleteURI(uri string) string {
	base := w.XMLBase()
	if base == "" || uri == "" {
		return uri
	}
	bu, err := url.Parse(base)
	if err != nil {
		return uri
	}
	ref, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return bu.ResolveReference(ref).String()
}

// ExtractElementText returns the trimmed text of the first child element
// with the given local name and no namespace, or "".
func (w ElementWrapper) ExtractElementText(name string) string {
	return w.ExtractElementTextNS("", name)
}

// ExtractElementTextNS returns the trimmed text of the first matching child
// element, or "".
func (w ElementWrapper) ExtractElementTextNS(space, local string) string {
	el := w.FirstElementByTagNameNS(space, local)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// FirstElementByTagNameNS returns the first direct child element matching
// namespace URI and local name, or nil.
func (w ElementWrapper) FirstElementByTagNameNS(space, local string) *Element {
	if w.e == nil {
		return nil
	}
	for _, child := range w.e.Children {
		if el, ok := child.(*Element); ok {
			if el.Name.Local == local && el.Name.Space == space {
				return el
			}
		}
	}
	return nil
}

// ElementsByTagNameNS returns all direct child elements matching namespace
// URI and local name.
func (w ElementWrapper) ElementsByTagNameNS(space, local string) []*Element {
	if w.e == nil {
		return nil
	}
	var out []*Element
	for _, child := range w.e.Children {
		if el, ok := child.(*Element); ok {
			if el.Name.Local == local && el.Name.Space == space {
				out = append(out, el)
			}
		}
	}
	return out
}

// ChildNodesAsXML serializes the element's children back to an XML string,
// preserving embedded markup instead of escaping it. Used for XHTML content
// bodies.
func (w ElementWrapper) ChildNodesAsXML() string {
	if w.e == nil {
		return ""
	}
	var b strings.Builder
	for _, child := range w.e.Children {
		switch c := child.(type) {
		case Text:
			writeEscaped(&b, c.Data)
		case *Element:
			c.serialize(&b, w.e.Name.Space)
		}
	}
	return strings.TrimSpace(b.String())
}
