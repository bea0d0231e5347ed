package rdf

import (
	"github.com/feedcomb/syndication/app/syndication"
)

// Parser claims documents whose root element lives in the RDF syntax
// namespace: RSS 1.0 and the original Netscape RSS 0.9.
type Parser struct{}

var _ syndication.Parser = (*Parser)(nil)

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Accept(src syndication.DocumentSource) bool {
	doc := src.AsDocument()
	if doc == nil || doc.Root == nil {
		return false
	}
	return doc.Root.Name.Space == RDFNamespace
}

func (p *Parser) Parse(src syndication.DocumentSource) syndication.SpecificDocument {
	doc := src.AsDocument()
	if doc == nil {
		return NewDocument(nil, nil)
	}
	model := modelFromDocument(doc)
	if len(model.ResourcesWithType(rss09Channel)) > 0 {
		map09to10(model)
	}
	channels := model.ResourcesWithType(rss10Channel)
	if len(channels) == 0 {
		return NewDocument(model, nil)
	}
	return NewDocument(model, channels[0])
}

func (p *Parser) Format() string {
	return "rdf"
}

var rss09PropertyMap = map[string]string{
	rss09Title:       rss10Title,
	rss09Description: rss10Description,
	rss09Link:        rss10Link,
	rss09Image:       rss10Image,
	rss09TextInput:   rss10TextInput,
	rss09Name:        rss10Name,
	rss09URL:         rss10URL,
}

var rss09TypeMap = map[string]string{
	rss09Channel:   rss10Channel,
	rss09Item:      rss10Item,
	rss09Image:     rss10Image,
	rss09TextInput: rss10TextInput,
}

// map09to10 rewrites an RSS 0.9 model onto the RSS 1.0 vocabulary so the
// same Document wrappers serve both. RSS 0.9 has no items property on the
// channel, so one is synthesized from the item resources in document
// order.
func map09to10(model *Model) {
	for _, stmt := range append([]*Statement(nil), model.Statements()...) {
		if stmt.Predicate == rdfType {
			res, ok := stmt.Object.(*Resource)
			if !ok {
				continue
			}
			if mapped, ok := rss09TypeMap[res.URI()]; ok {
				model.RemoveStatement(stmt.Subject, stmt.Predicate, stmt.Object)
				model.AddStatement(stmt.Subject, rdfType, model.CreateResource(mapped))
			}
			continue
		}
		if mapped, ok := rss09PropertyMap[stmt.Predicate]; ok {
			model.RemoveStatement(stmt.Subject, stmt.Predicate, stmt.Object)
			model.AddStatement(stmt.Subject, mapped, stmt.Object)
		}
	}

	channels := model.ResourcesWithType(rss10Channel)
	if len(channels) == 0 {
		return
	}
	channel := channels[0]
	if channel.HasProperty(rss10Items) {
		return
	}
	seq := model.CreateSequence("")
	for _, item := range model.ResourcesWithType(rss10Item) {
		seq.appendToSequence(item)
	}
	model.AddStatement(channel, rss10Items, seq)
}
