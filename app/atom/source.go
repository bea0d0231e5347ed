package atom

import (
	"time"

	"github.com/feedcomb/syndication/app/xmldom"
)

// Source wraps an atom:source element: metadata of the feed an entry was
// copied from.
type Source struct {
	xmldom.ElementWrapper
}

func NewSource(e *xmldom.Element) Source {
	return Source{ElementWrapper: xmldom.Wrap(e)}
}

func (s Source) Title() string {
	return extractAtomText(s.ElementWrapper, "title")
}

func (s Source) ID() string {
	return s.ExtractElementTextNS(Atom1Namespace, "id")
}

func (s Source) Rights() string {
	return extractAtomText(s.ElementWrapper, "rights")
}

func (s Source) Updated() time.Time {
	return parseAtomDate(s.ExtractElementTextNS(Atom1Namespace, "updated"))
}

func (s Source) Links() []Link {
	elements := s.ElementsByTagNameNS(Atom1Namespace, "link")
	links := make([]Link, 0, len(elements))
	for _, el := range elements {
		links = append(links, NewLink(el))
	}
	return links
}

func (s Source) Authors() []Person {
	elements := s.ElementsByTagNameNS(Atom1Namespace, "author")
	people := make([]Person, 0, len(elements))
	for _, el := range elements {
		people = append(people, NewPerson(el))
	}
	return people
}
