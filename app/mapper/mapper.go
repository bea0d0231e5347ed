// Package mapper projects the format-specific documents onto the
// format-agnostic feed abstraction. Mappers never re-parse XML; they
// wrap the lazily evaluated document accessors and normalize the
// divergent field shapes (guid vs permalink, competing content fields,
// author string conventions) into one contract.
package mapper

import (
	"github.com/feedcomb/syndication/app/atom"
	"github.com/feedcomb/syndication/app/rdf"
	"github.com/feedcomb/syndication/app/rss2"
	"github.com/feedcomb/syndication/app/syndication"
)

// RSS2Mapper maps rss2.Document onto the feed abstraction.
type RSS2Mapper struct{}

var _ syndication.Mapper = (*RSS2Mapper)(nil)

func NewRSS2Mapper() *RSS2Mapper {
	return &RSS2Mapper{}
}

func (m *RSS2Mapper) Map(doc syndication.SpecificDocument) syndication.Feed {
	d, ok := doc.(rss2.Document)
	if !ok {
		return nil
	}
	return &FeedRSS2{doc: d}
}

// RDFMapper maps rdf.Document onto the feed abstraction.
type RDFMapper struct{}

var _ syndication.Mapper = (*RDFMapper)(nil)

func NewRDFMapper() *RDFMapper {
	return &RDFMapper{}
}

func (m *RDFMapper) Map(doc syndication.SpecificDocument) syndication.Feed {
	d, ok := doc.(rdf.Document)
	if !ok {
		return nil
	}
	return &FeedRDF{doc: d}
}

// AtomMapper maps both atom document shapes onto the feed abstraction. A
// standalone entry document becomes a feed with no metadata and one item.
type AtomMapper struct{}

var _ syndication.Mapper = (*AtomMapper)(nil)

func NewAtomMapper() *AtomMapper {
	return &AtomMapper{}
}

func (m *AtomMapper) Map(doc syndication.SpecificDocument) syndication.Feed {
	switch d := doc.(type) {
	case atom.FeedDocument:
		return &FeedAtom{doc: d}
	case atom.EntryDocument:
		return &EntryFeedAtom{doc: d}
	}
	return nil
}
