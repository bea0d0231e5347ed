package feed

import (
	"github.com/feedcomb/syndication/app/atom"
	"github.com/feedcomb/syndication/app/mapper"
	"github.com/feedcomb/syndication/app/rdf"
	"github.com/feedcomb/syndication/app/rss2"
	"github.com/feedcomb/syndication/app/syndication"
)

// NewDefaultCollection builds a ParserCollection with all supported
// formats registered. Registration order doubles as the dispatch trial
// order when no format hint is given.
func NewDefaultCollection() *syndication.ParserCollection {
	c := syndication.NewParserCollection()
	c.Register(rss2.NewParser(), mapper.NewRSS2Mapper())
	c.Register(rdf.NewParser(), mapper.NewRDFMapper())
	c.Register(atom.NewParser(), mapper.NewAtomMapper())
	return c
}
