// Package rdf implements RDF/RSS 1.0 parsing on top of a small statement
// model: the document is read into (subject, predicate, object) triples
// and the feed wrappers query properties of the channel and item
// resources. RSS 0.9 documents are remapped onto the RSS 1.0 vocabulary
// after reading.
package rdf

import "github.com/feedcomb/syndication/app/syndication"

// RDFNamespace is the RDF syntax namespace; a document whose root lives
// here is claimed by this parser.
const RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// RDF syntax vocabulary.
const (
	rdfType = RDFNamespace + "type"
	rdfSeq  = RDFNamespace + "Seq"
	rdfLi   = RDFNamespace + "li"
)

// RSS10Namespace is the RSS 1.0 vocabulary namespace.
const RSS10Namespace = "http://purl.org/rss/1.0/"

const (
	rss10Channel     = RSS10Namespace + "channel"
	rss10Item        = RSS10Namespace + "item"
	rss10Title       = RSS10Namespace + "title"
	rss10Description = RSS10Namespace + "description"
	rss10Link        = RSS10Namespace + "link"
	rss10Items       = RSS10Namespace + "items"
	rss10Image       = RSS10Namespace + "image"
	rss10TextInput   = RSS10Namespace + "textinput"
	rss10Name        = RSS10Namespace + "name"
	rss10URL         = RSS10Namespace + "url"
)

// RSS09Namespace is the vocabulary of the original Netscape RSS 0.9.
const RSS09Namespace = "http://my.netscape.com/rdf/simple/0.9/"

const (
	rss09Channel     = RSS09Namespace + "channel"
	rss09Item        = RSS09Namespace + "item"
	rss09Title       = RSS09Namespace + "title"
	rss09Description = RSS09Namespace + "description"
	rss09Link        = RSS09Namespace + "link"
	rss09Image       = RSS09Namespace + "image"
	rss09TextInput   = RSS09Namespace + "textinput"
	rss09Name        = RSS09Namespace + "name"
	rss09URL         = RSS09Namespace + "url"
)

// SyndicationNamespace is the RSS 1.0 syndication module.
const SyndicationNamespace = "http://purl.org/rss/1.0/modules/syndication/"

const (
	synUpdatePeriod    = SyndicationNamespace + "updatePeriod"
	synUpdateFrequency = SyndicationNamespace + "updateFrequency"
	synUpdateBase      = SyndicationNamespace + "updateBase"
)

const contentEncoded = syndication.ContentNamespace + "encoded"

// Dublin Core property URIs.
const (
	dcTitle       = syndication.DublinCoreNamespace + "title"
	dcCreator     = syndication.DublinCoreNamespace + "creator"
	dcDate        = syndication.DublinCoreNamespace + "date"
	dcSubject     = syndication.DublinCoreNamespace + "subject"
	dcDescription = syndication.DublinCoreNamespace + "description"
	dcPublisher   = syndication.DublinCoreNamespace + "publisher"
	dcContributor = syndication.DublinCoreNamespace + "contributor"
	dcFormat      = syndication.DublinCoreNamespace + "format"
	dcIdentifier  = syndication.DublinCoreNamespace + "identifier"
	dcLanguage    = syndication.DublinCoreNamespace + "language"
	dcRelation    = syndication.DublinCoreNamespace + "relation"
	dcRights      = syndication.DublinCoreNamespace + "rights"
	dcSource      = syndication.DublinCoreNamespace + "source"
	dcCoverage    = syndication.DublinCoreNamespace + "coverage"
	dcTypeProp    = syndication.DublinCoreNamespace + "type"
)
