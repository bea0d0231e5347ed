package atom

import "github.com/feedcomb/syndication/app/xmldom"

// Category wraps an atom:category element.
type Category struct {
	xmldom.ElementWrapper
}

func NewCategory(e *xmldom.Element) Category {
	return Category{ElementWrapper: xmldom.Wrap(e)}
}

func (c Category) Term() string {
	return c.Attribute("term")
}

// Scheme returns the categorization scheme URI, resolved against xml:base.
func (c Category) Scheme() string {
	return c.CompleteURI(c.Attribute("scheme"))
}

func (c Category) Label() string {
	return c.Attribute("label")
}
