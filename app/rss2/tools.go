package rss2

import (
	"time"

	"github.com/feedcomb/syndication/app/syndication"
	"github.com/feedcomb/syndication/app/xmldom"
)

const dcNamespace = syndication.DublinCoreNamespace

// parseDateText parses an RSS date, trying RFC 822 first.
func parseDateText(str string) time.Time {
	return syndication.ParseDate(str, syndication.RFCDate)
}

// extractContent resolves the item body from the competing content
// carriers, in precedence order: content:encoded, an embedded XHTML body,
// an embedded XHTML div. Embedded XHTML is serialized back to markup, not
// escaped again. Returns "" if none is present.
func extractContent(parent xmldom.ElementWrapper) string {
	if el := parent.FirstElementByTagNameNS(syndication.ContentNamespace, "encoded"); el != nil {
		return xmldom.Wrap(el).Text()
	}
	if el := parent.FirstElementByTagNameNS(syndication.XHTMLNamespace, "body"); el != nil {
		return xmldom.Wrap(el).ChildNodesAsXML()
	}
	if el := parent.FirstElementByTagNameNS(syndication.XHTMLNamespace, "div"); el != nil {
		return xmldom.Wrap(el).ChildNodesAsXML()
	}
	return ""
}
