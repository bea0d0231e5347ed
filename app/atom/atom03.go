package atom

import (
	"encoding/xml"

	"github.com/feedcomb/syndication/app/xmldom"
)

// Atom 0.3 element names with a different name in 1.0.
var atom03Renames = map[string]string{
	"issued":    "published",
	"modified":  "updated",
	"tagline":   "subtitle",
	"copyright": "rights",
	// person constructs used url instead of uri
	"url": "uri",
}

// convertAtom03 builds a new tree with Atom 0.3 vocabulary rewritten to
// the 1.0 shape. The input tree is not modified.
func convertAtom03(doc *xmldom.Document) *xmldom.Document {
	if doc == nil || doc.Root == nil {
		return nil
	}
	return &xmldom.Document{Root: convertElement03(doc.Root, nil)}
}

func convertElement03(e *xmldom.Element, parent *xmldom.Element) *xmldom.Element {
	name := e.Name
	attrs := append([]xml.Attr(nil), e.Attrs...)

	if name.Space == Atom0_3Namespace {
		name.Space = Atom1Namespace
		if renamed, ok := atom03Renames[name.Local]; ok {
			name.Local = renamed
		}
		attrs = convertConstructAttrs03(attrs)
	}

	out := &xmldom.Element{
		Name:   name,
		Attrs:  attrs,
		Parent: parent,
	}
	for _, child := range e.Children {
		switch c := child.(type) {
		case xmldom.Text:
			out.Children = append(out.Children, c)
		case *xmldom.Element:
			out.Children = append(out.Children, convertElement03(c, out))
		}
	}
	return out
}

// convertConstructAttrs03 maps the 0.3 type/mode attribute pair of text
// and content constructs onto the single 1.0 type attribute.
func convertConstructAttrs03(attrs []xml.Attr) []xml.Attr {
	typeVal := ""
	mode := ""
	out := attrs[:0]
	for _, a := range attrs {
		switch {
		case a.Name.Space == "" && a.Name.Local == "type":
			typeVal = a.Value
		case a.Name.Space == "" && a.Name.Local == "mode":
			mode = a.Value
		default:
			out = append(out, a)
		}
	}
	if typeVal == "" && mode == "" {
		return out
	}

	converted := typeVal
	switch {
	case mode == "xml":
		converted = "xhtml"
	case typeVal == "text/html" || (mode == "escaped" && typeVal == ""):
		converted = "html"
	case typeVal == "text/plain" || typeVal == "":
		converted = "text"
	}
	return append(out, xml.Attr{Name: xml.Name{Local: "type"}, Value: converted})
}
