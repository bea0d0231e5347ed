package atom

import "github.com/feedcomb/syndication/app/xmldom"

// Generator wraps the atom:generator element identifying the producing
// software.
type Generator struct {
	xmldom.ElementWrapper
}

func NewGenerator(e *xmldom.Element) Generator {
	return Generator{ElementWrapper: xmldom.Wrap(e)}
}

func (g Generator) Name() string {
	return g.Text()
}

// URI returns the generator's home page, resolved against xml:base.
func (g Generator) URI() string {
	return g.CompleteURI(g.Attribute("uri"))
}

func (g Generator) Version() string {
	return g.Attribute("version")
}
