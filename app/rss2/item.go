package rss2

import (
	"fmt"
	"strings"
	"time"

	"github.com/feedcomb/syndication/app/syndication"
	"github.com/feedcomb/syndication/app/xmldom"
)

// Item wraps one <item> element.
type Item struct {
	xmldom.ElementWrapper
}

func NewItem(e *xmldom.Element) Item {
	return Item{ElementWrapper: xmldom.Wrap(e)}
}

func (i Item) Title() string {
	return i.ExtractElementText("title")
}

func (i Item) Link() string {
	return i.ExtractElementText("link")
}

func (i Item) Description() string {
	return i.ExtractElementText("description")
}

// Content returns the item body from content:encoded or an embedded XHTML
// block, "" when the item only carries a description.
func (i Item) Content() string {
	return extractContent(i.ElementWrapper)
}

// Author returns the item author, falling back to dc:creator.
func (i Item) Author() string {
	if author := i.ExtractElementText("author"); author != "" {
		return author
	}
	return i.ExtractElementTextNS(dcNamespace, "creator")
}

func (i Item) Comments() string {
	return i.ExtractElementText("comments")
}

func (i Item) Enclosure() Enclosure {
	return NewEnclosure(i.FirstElementByTagNameNS("", "enclosure"))
}

func (i Item) Source() Source {
	return NewSource(i.FirstElementByTagNameNS("", "source"))
}

func (i Item) Categories() []Category {
	elements := i.ElementsByTagNameNS("", "category")
	categories := make([]Category, 0, len(elements))
	for _, el := range elements {
		categories = append(categories, NewCategory(el))
	}
	return categories
}

// GUID returns the item's identifier, "" if the feed provides none.
func (i Item) GUID() string {
	return i.ExtractElementText("guid")
}

// GUIDIsPermaLink reports whether the guid doubles as the item's permanent
// URL. True is the RSS default when a guid is present.
func (i Item) GUIDIsPermaLink() bool {
	guid := i.FirstElementByTagNameNS("", "guid")
	if guid == nil {
		return false
	}
	return guid.Attr("isPermaLink") != "false"
}

// PubDate returns the publication date, falling back to dc:date, zero if
// neither parses.
func (i Item) PubDate() time.Time {
	if t := parseDateText(i.ExtractElementText("pubDate")); !t.IsZero() {
		return t
	}
	return syndication.ParseDate(i.ExtractElementTextNS(dcNamespace, "date"), syndication.ISODate)
}

// DebugInfo renders the item fields for diagnostics.
func (i Item) DebugInfo() string {
	var b strings.Builder
	b.WriteString("### Item: ###################\n")
	if t := i.Title(); t != "" {
		fmt.Fprintf(&b, "title: #%s#\n", t)
	}
	if l := i.Link(); l != "" {
		fmt.Fprintf(&b, "link: #%s#\n", l)
	}
	if d := i.Description(); d != "" {
		fmt.Fprintf(&b, "description: #%s#\n", d)
	}
	if c := i.Content(); c != "" {
		fmt.Fprintf(&b, "content: #%s#\n", c)
	}
	if g := i.GUID(); g != "" {
		fmt.Fprintf(&b, "guid: #%s#\n", g)
	}
	b.WriteString("### Item end ################\n")
	return b.String()
}
