package rss2

import "github.com/feedcomb/syndication/app/xmldom"

// Source wraps the <source> element pointing at the channel an item was
// republished from.
type Source struct {
	xmldom.ElementWrapper
}

func NewSource(e *xmldom.Element) Source {
	return Source{ElementWrapper: xmldom.Wrap(e)}
}

// Source returns the originating channel's title.
func (s Source) Source() string {
	return s.Text()
}

func (s Source) URL() string {
	return s.Attribute("url")
}
