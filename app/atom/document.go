package atom

import (
	"fmt"
	"strings"
	"time"

	"github.com/feedcomb/syndication/app/xmldom"
)

// FeedDocument wraps an atom:feed root element.
type FeedDocument struct {
	xmldom.ElementWrapper
}

func NewFeedDocument(e *xmldom.Element) FeedDocument {
	return FeedDocument{ElementWrapper: xmldom.Wrap(e)}
}

// IsValid reports whether the document wraps an actual feed element.
func (d FeedDocument) IsValid() bool {
	return !d.IsNil()
}

func (d FeedDocument) Title() string {
	return extractAtomText(d.ElementWrapper, "title")
}

func (d FeedDocument) Subtitle() string {
	return extractAtomText(d.ElementWrapper, "subtitle")
}

func (d FeedDocument) Rights() string {
	return extractAtomText(d.ElementWrapper, "rights")
}

func (d FeedDocument) ID() string {
	return d.ExtractElementTextNS(Atom1Namespace, "id")
}

// Icon returns the feed icon URI, resolved against xml:base.
func (d FeedDocument) Icon() string {
	return d.CompleteURI(d.ExtractElementTextNS(Atom1Namespace, "icon"))
}

// Logo returns the feed logo URI, resolved against xml:base.
func (d FeedDocument) Logo() string {
	return d.CompleteURI(d.ExtractElementTextNS(Atom1Namespace, "logo"))
}

func (d FeedDocument) Generator() Generator {
	return NewGenerator(d.FirstElementByTagNameNS(Atom1Namespace, "generator"))
}

func (d FeedDocument) Updated() time.Time {
	return parseAtomDate(d.ExtractElementTextNS(Atom1Namespace, "updated"))
}

func (d FeedDocument) Authors() []Person {
	elements := d.ElementsByTagNameNS(Atom1Namespace, "author")
	people := make([]Person, 0, len(elements))
	for _, el := range elements {
		people = append(people, NewPerson(el))
	}
	return people
}

func (d FeedDocument) Contributors() []Person {
	elements := d.ElementsByTagNameNS(Atom1Namespace, "contributor")
	people := make([]Person, 0, len(elements))
	for _, el := range elements {
		people = append(people, NewPerson(el))
	}
	return people
}

func (d FeedDocument) Categories() []Category {
	elements := d.ElementsByTagNameNS(Atom1Namespace, "category")
	categories := make([]Category, 0, len(elements))
	for _, el := range elements {
		categories = append(categories, NewCategory(el))
	}
	return categories
}

func (d FeedDocument) Links() []Link {
	elements := d.ElementsByTagNameNS(Atom1Namespace, "link")
	links := make([]Link, 0, len(elements))
	for _, el := range elements {
		links = append(links, NewLink(el))
	}
	return links
}

func (d FeedDocument) Entries() []Entry {
	elements := d.ElementsByTagNameNS(Atom1Namespace, "entry")
	entries := make([]Entry, 0, len(elements))
	for _, el := range elements {
		entries = append(entries, NewEntry(el))
	}
	return entries
}

// DebugInfo renders the document fields for diagnostics.
func (d FeedDocument) DebugInfo() string {
	var b strings.Builder
	b.WriteString("### FeedDocument: ###################\n")
	if t := d.Title(); t != "" {
		fmt.Fprintf(&b, "title: #%s#\n", t)
	}
	if s := d.Subtitle(); s != "" {
		fmt.Fprintf(&b, "subtitle: #%s#\n", s)
	}
	if id := d.ID(); id != "" {
		fmt.Fprintf(&b, "id: #%s#\n", id)
	}
	for _, entry := range d.Entries() {
		b.WriteString(entry.DebugInfo())
	}
	b.WriteString("### FeedDocument end ################\n")
	return b.String()
}

// EntryDocument wraps a standalone atom:entry root element.
type EntryDocument struct {
	xmldom.ElementWrapper
}

func NewEntryDocument(e *xmldom.Element) EntryDocument {
	return EntryDocument{ElementWrapper: xmldom.Wrap(e)}
}

// IsValid reports whether the document wraps an actual entry element.
func (d EntryDocument) IsValid() bool {
	return !d.IsNil()
}

// Entry returns the wrapped entry.
func (d EntryDocument) Entry() Entry {
	return NewEntry(d.Element())
}

// DebugInfo renders the document fields for diagnostics.
func (d EntryDocument) DebugInfo() string {
	var b strings.Builder
	b.WriteString("### EntryDocument: ###################\n")
	if d.IsValid() {
		b.WriteString(d.Entry().DebugInfo())
	}
	b.WriteString("### EntryDocument end ################\n")
	return b.String()
}
