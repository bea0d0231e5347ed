package rdf

import (
	"strings"

	"github.com/feedcomb/syndication/app/xmldom"
)

// modelFromDocument reads an rdf:RDF tree into a statement model. Each
// child of the root describes one resource; nested descriptions and
// rdf:resource references are followed recursively. Bags and reification
// are not needed for RSS 1.0 and are skipped.
func modelFromDocument(doc *xmldom.Document) *Model {
	model := NewModel()
	if doc == nil || doc.Root == nil {
		return model
	}
	for _, el := range doc.Root.ChildElements() {
		readResource(model, el)
	}
	return model
}

func readResource(model *Model, el *xmldom.Element) *Resource {
	typeURI := el.Name.Space + el.Name.Local

	var res *Resource
	about, _ := el.AttrNS(RDFNamespace, "about")
	if typeURI == rdfSeq {
		res = model.CreateSequence(about)
	} else {
		res = model.CreateResource(about)
	}
	model.AddStatement(res, rdfType, model.CreateResource(typeURI))

	isSeq := res.IsSequence()
	for _, child := range el.ChildElements() {
		predicate := child.Name.Space + child.Name.Local

		var object Node
		if ref, ok := child.AttrNS(RDFNamespace, "resource"); ok {
			object = model.CreateResource(ref)
		} else if _, nested := child.AttrNS(RDFNamespace, "about"); nested {
			object = readResource(model, child)
		} else if inner := child.ChildElements(); len(inner) > 0 {
			// anonymous nested node, e.g. the rdf:Seq inside <items>
			object = readResource(model, inner[0])
		} else {
			object = model.CreateLiteral(strings.TrimSpace(child.Text()))
		}

		if isSeq && predicate == rdfLi {
			res.appendToSequence(object)
		} else {
			model.AddStatement(res, predicate, object)
		}
	}
	return res
}
