package atom

import (
	"strconv"

	"github.com/feedcomb/syndication/app/xmldom"
)

// Link wraps an atom:link element.
type Link struct {
	xmldom.ElementWrapper
}

func NewLink(e *xmldom.Element) Link {
	return Link{ElementWrapper: xmldom.Wrap(e)}
}

// Href returns the link target, resolved against xml:base.
func (l Link) Href() string {
	return l.CompleteURI(l.Attribute("href"))
}

// Rel returns the link relation; "alternate" is the Atom default.
func (l Link) Rel() string {
	if rel := l.Attribute("rel"); rel != "" {
		return rel
	}
	return "alternate"
}

func (l Link) Type() string {
	return l.Attribute("type")
}

func (l Link) HrefLanguage() string {
	return l.Attribute("hreflang")
}

func (l Link) Title() string {
	return l.Attribute("title")
}

// Length returns the advisory size of the linked resource in bytes, 0 when
// unspecified.
func (l Link) Length() int {
	n, err := strconv.Atoi(l.Attribute("length"))
	if err != nil {
		return 0
	}
	return n
}
