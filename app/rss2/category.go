package rss2

import "github.com/feedcomb/syndication/app/xmldom"

// Category wraps a <category> element. The element text is the category
// value; the optional domain attribute identifies the taxonomy.
type Category struct {
	xmldom.ElementWrapper
}

func NewCategory(e *xmldom.Element) Category {
	return Category{ElementWrapper: xmldom.Wrap(e)}
}

func (c Category) Category() string {
	return c.Text()
}

func (c Category) Domain() string {
	return c.Attribute("domain")
}
