package atom

import (
	"time"

	"github.com/feedcomb/syndication/app/syndication"
	"github.com/feedcomb/syndication/app/xmldom"
)

// extractAtomText reads an Atom text construct child and returns its value
// as HTML. The construct's type attribute decides the representation:
// "html" text had its entities resolved by the XML parser already and
// passes through; "xhtml" is serialized back to markup; plain "text" is
// escaped.
func extractAtomText(parent xmldom.ElementWrapper, tagName string) string {
	el := xmldom.Wrap(parent.FirstElementByTagNameNS(Atom1Namespace, tagName))
	if el.IsNil() {
		return ""
	}
	switch el.Attribute("type") {
	case "html":
		return el.Text()
	case "xhtml":
		if div := el.FirstElementByTagNameNS(syndication.XHTMLNamespace, "div"); div != nil {
			return xmldom.Wrap(div).ChildNodesAsXML()
		}
		return el.ChildNodesAsXML()
	default:
		return syndication.PlainTextToHTML(el.Text())
	}
}

// parseAtomDate parses an atom date construct (ISO 8601).
func parseAtomDate(str string) time.Time {
	return syndication.ParseDate(str, syndication.ISODate)
}
