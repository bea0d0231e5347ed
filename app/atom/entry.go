package atom

import (
	"fmt"
	"strings"
	"time"

	"github.com/feedcomb/syndication/app/xmldom"
)

// Entry wraps an atom:entry element.
type Entry struct {
	xmldom.ElementWrapper
}

func NewEntry(e *xmldom.Element) Entry {
	return Entry{ElementWrapper: xmldom.Wrap(e)}
}

func (e Entry) Title() string {
	return extractAtomText(e.ElementWrapper, "title")
}

// Summary returns the entry summary as HTML.
func (e Entry) Summary() string {
	return extractAtomText(e.ElementWrapper, "summary")
}

func (e Entry) Rights() string {
	return extractAtomText(e.ElementWrapper, "rights")
}

// ID returns the entry's atom:id, "" when absent.
func (e Entry) ID() string {
	return e.ExtractElementTextNS(Atom1Namespace, "id")
}

func (e Entry) Authors() []Person {
	elements := e.ElementsByTagNameNS(Atom1Namespace, "author")
	people := make([]Person, 0, len(elements))
	for _, el := range elements {
		people = append(people, NewPerson(el))
	}
	return people
}

func (e Entry) Contributors() []Person {
	elements := e.ElementsByTagNameNS(Atom1Namespace, "contributor")
	people := make([]Person, 0, len(elements))
	for _, el := range elements {
		people = append(people, NewPerson(el))
	}
	return people
}

func (e Entry) Categories() []Category {
	elements := e.ElementsByTagNameNS(Atom1Namespace, "category")
	categories := make([]Category, 0, len(elements))
	for _, el := range elements {
		categories = append(categories, NewCategory(el))
	}
	return categories
}

func (e Entry) Links() []Link {
	elements := e.ElementsByTagNameNS(Atom1Namespace, "link")
	links := make([]Link, 0, len(elements))
	for _, el := range elements {
		links = append(links, NewLink(el))
	}
	return links
}

func (e Entry) Source() Source {
	return NewSource(e.FirstElementByTagNameNS(Atom1Namespace, "source"))
}

// Published returns when the entry was first published. Atom 0.3 "issued"
// elements surface here after conversion.
func (e Entry) Published() time.Time {
	return parseAtomDate(e.ExtractElementTextNS(Atom1Namespace, "published"))
}

// Updated returns when the entry last changed, falling back to the
// published date.
func (e Entry) Updated() time.Time {
	if t := parseAtomDate(e.ExtractElementTextNS(Atom1Namespace, "updated")); !t.IsZero() {
		return t
	}
	return e.Published()
}

func (e Entry) Content() Content {
	return NewContent(e.FirstElementByTagNameNS(Atom1Namespace, "content"))
}

// DebugInfo renders the entry fields for diagnostics.
func (e Entry) DebugInfo() string {
	var b strings.Builder
	b.WriteString("### Entry: ###################\n")
	if t := e.Title(); t != "" {
		fmt.Fprintf(&b, "title: #%s#\n", t)
	}
	if s := e.Summary(); s != "" {
		fmt.Fprintf(&b, "summary: #%s#\n", s)
	}
	if id := e.ID(); id != "" {
		fmt.Fprintf(&b, "id: #%s#\n", id)
	}
	if c := e.Content(); !c.IsNil() {
		fmt.Fprintf(&b, "content: #%s#\n", c.AsString())
	}
	if u := e.Updated(); !u.IsZero() {
		fmt.Fprintf(&b, "updated: #%s#\n", u.Format(time.RFC3339))
	}
	b.WriteString("### Entry end ################\n")
	return b.String()
}
