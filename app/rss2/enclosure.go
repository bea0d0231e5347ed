package rss2

import (
	"strconv"

	"github.com/feedcomb/syndication/app/xmldom"
)

// Enclosure wraps an <enclosure> element.
type Enclosure struct {
	xmldom.ElementWrapper
}

func NewEnclosure(e *xmldom.Element) Enclosure {
	return Enclosure{ElementWrapper: xmldom.Wrap(e)}
}

func (e Enclosure) URL() string {
	return e.Attribute("url")
}

// Length returns the enclosure size in bytes, 0 when absent or malformed.
func (e Enclosure) Length() int {
	n, err := strconv.Atoi(e.Attribute("length"))
	if err != nil {
		return 0
	}
	return n
}

func (e Enclosure) Type() string {
	return e.Attribute("type")
}
