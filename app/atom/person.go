package atom

import "github.com/feedcomb/syndication/app/xmldom"

// Person wraps an Atom person construct (author, contributor).
type Person struct {
	xmldom.ElementWrapper
}

func NewPerson(e *xmldom.Element) Person {
	return Person{ElementWrapper: xmldom.Wrap(e)}
}

func (p Person) Name() string {
	return p.ExtractElementTextNS(Atom1Namespace, "name")
}

// URI returns the person's home page, resolved against xml:base.
func (p Person) URI() string {
	return p.CompleteURI(p.ExtractElementTextNS(Atom1Namespace, "uri"))
}

func (p Person) Email() string {
	return p.ExtractElementTextNS(Atom1Namespace, "email")
}
