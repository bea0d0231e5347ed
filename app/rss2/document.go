// Package rss2 implements lazy node wrappers for RSS 0.9x and 2.0
// documents. Accessors extract fields from the underlying DOM on demand;
// absent elements yield empty values, never errors.
package rss2

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/feedcomb/syndication/app/xmldom"
)

// Document wraps the <channel> element of an <rss> document.
type Document struct {
	xmldom.ElementWrapper
}

// NewDocument wraps the given channel element. A nil element yields an
// invalid document.
func NewDocument(channel *xmldom.Element) Document {
	return Document{ElementWrapper: xmldom.Wrap(channel)}
}

// IsValid reports whether the document wraps an actual channel element.
func (d Document) IsValid() bool {
	return !d.IsNil()
}

func (d Document) Title() string {
	return d.ExtractElementText("title")
}

func (d Document) Link() string {
	return d.ExtractElementText("link")
}

func (d Document) Description() string {
	return d.ExtractElementText("description")
}

func (d Document) Language() string {
	if lang := d.ExtractElementText("language"); lang != "" {
		return lang
	}
	return d.ExtractElementTextNS(dcNamespace, "language")
}

func (d Document) Copyright() string {
	return d.ExtractElementText("copyright")
}

func (d Document) ManagingEditor() string {
	return d.ExtractElementText("managingEditor")
}

func (d Document) WebMaster() string {
	return d.ExtractElementText("webMaster")
}

// PubDate returns the channel publication date, zero if absent or
// unparsable.
func (d Document) PubDate() time.Time {
	return parseDateText(d.ExtractElementText("pubDate"))
}

// LastBuildDate returns the time the channel content last changed.
func (d Document) LastBuildDate() time.Time {
	return parseDateText(d.ExtractElementText("lastBuildDate"))
}

func (d Document) Categories() []Category {
	elements := d.ElementsByTagNameNS("", "category")
	categories := make([]Category, 0, len(elements))
	for _, el := range elements {
		categories = append(categories, NewCategory(el))
	}
	return categories
}

func (d Document) Generator() string {
	return d.ExtractElementText("generator")
}

func (d Document) Docs() string {
	return d.ExtractElementText("docs")
}

func (d Document) Cloud() Cloud {
	return NewCloud(d.FirstElementByTagNameNS("", "cloud"))
}

// TTL returns the number of minutes the channel may be cached, 0 if
// unspecified.
func (d Document) TTL() int {
	n, err := strconv.Atoi(d.ExtractElementText("ttl"))
	if err != nil {
		return 0
	}
	return n
}

func (d Document) Image() Image {
	return NewImage(d.FirstElementByTagNameNS("", "image"))
}

func (d Document) Rating() string {
	return d.ExtractElementText("rating")
}

func (d Document) TextInput() TextInput {
	return NewTextInput(d.FirstElementByTagNameNS("", "textInput"))
}

// SkipHours lists the hours (0-23) aggregators may skip.
func (d Document) SkipHours() []int {
	parent := xmldom.Wrap(d.FirstElementByTagNameNS("", "skipHours"))
	var hours []int
	for _, el := range parent.ElementsByTagNameNS("", "hour") {
		if h, err := strconv.Atoi(strings.TrimSpace(el.Text())); err == nil {
			hours = append(hours, h)
		}
	}
	return hours
}

// SkipDays lists the weekday names aggregators may skip.
func (d Document) SkipDays() []string {
	parent := xmldom.Wrap(d.FirstElementByTagNameNS("", "skipDays"))
	var days []string
	for _, el := range parent.ElementsByTagNameNS("", "day") {
		if day := strings.TrimSpace(el.Text()); day != "" {
			days = append(days, day)
		}
	}
	return days
}

func (d Document) Items() []Item {
	elements := d.ElementsByTagNameNS("", "item")
	items := make([]Item, 0, len(elements))
	for _, el := range elements {
		items = append(items, NewItem(el))
	}
	return items
}

// DebugInfo renders the document fields for diagnostics.
func (d Document) DebugInfo() string {
	var b strings.Builder
	b.WriteString("### Document: ###################\n")
	if t := d.Title(); t != "" {
		fmt.Fprintf(&b, "title: #%s#\n", t)
	}
	if l := d.Link(); l != "" {
		fmt.Fprintf(&b, "link: #%s#\n", l)
	}
	if desc := d.Description(); desc != "" {
		fmt.Fprintf(&b, "description: #%s#\n", desc)
	}
	if lang := d.Language(); lang != "" {
		fmt.Fprintf(&b, "language: #%s#\n", lang)
	}
	for _, item := range d.Items() {
		b.WriteString(item.DebugInfo())
	}
	b.WriteString("### Document end ################\n")
	return b.String()
}
