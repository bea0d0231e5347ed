package mapper

import (
	"strings"
	"time"

	"github.com/feedcomb/syndication/app/rdf"
	"github.com/feedcomb/syndication/app/syndication"
)

// FeedRDF adapts an RDF/RSS 1.0 channel to the feed abstraction. Author
// and language come from the channel's Dublin Core block.
type FeedRDF struct {
	doc rdf.Document
}

var _ syndication.Feed = (*FeedRDF)(nil)

func (f *FeedRDF) Title() string {
	return f.doc.Title()
}

func (f *FeedRDF) Link() string {
	return f.doc.Link()
}

func (f *FeedRDF) Description() string {
	return syndication.Htmlize(f.doc.Description())
}

func (f *FeedRDF) Author() string {
	return f.doc.DC().Creator()
}

func (f *FeedRDF) Language() string {
	return f.doc.DC().Language()
}

func (f *FeedRDF) Items() []syndication.Item {
	var items []syndication.Item
	for _, item := range f.doc.Items() {
		items = append(items, &ItemRDF{item: item})
	}
	return items
}

func (f *FeedRDF) Categories() []syndication.Category {
	return dcSubjectCategories(f.doc.DC())
}

func (f *FeedRDF) Image() syndication.Image {
	return ImageRDF{img: f.doc.Image()}
}

// ItemRDF adapts one RSS 1.0 item resource.
type ItemRDF struct {
	item rdf.Item
}

var _ syndication.Item = (*ItemRDF)(nil)

func (i *ItemRDF) Title() string {
	return i.item.Title()
}

func (i *ItemRDF) Link() string {
	return i.item.Link()
}

func (i *ItemRDF) Description() string {
	return syndication.Htmlize(i.item.Description())
}

func (i *ItemRDF) Content() string {
	return i.item.EncodedContent()
}

func (i *ItemRDF) Author() string {
	return i.item.DC().Creator()
}

func (i *ItemRDF) Authors() []syndication.Person {
	p := personFromString(i.item.DC().Creator())
	if p.IsNil() {
		return nil
	}
	return []syndication.Person{p}
}

func (i *ItemRDF) Language() string {
	return i.item.DC().Language()
}

// ID returns the item's rdf:about URI. Items read from malformed sources
// can end up as anonymous resources with generated identifiers; those are
// not stable across parses, so a content hash stands in.
func (i *ItemRDF) ID() string {
	uri := i.item.Resource().URI()
	if uri == "" || strings.HasPrefix(uri, "#genid") {
		return syntheticID(i.item.Title(), i.item.Description(), i.item.EncodedContent())
	}
	return uri
}

func (i *ItemRDF) DatePublished() time.Time {
	return i.item.DC().Date()
}

func (i *ItemRDF) DateUpdated() time.Time {
	return i.item.DC().Date()
}

func (i *ItemRDF) Categories() []syndication.Category {
	return dcSubjectCategories(i.item.DC())
}

// Enclosures returns nil; RSS 1.0 has no enclosure vocabulary.
func (i *ItemRDF) Enclosures() []syndication.Enclosure {
	return nil
}

func (i *ItemRDF) CommentsLink() string {
	return ""
}

// dcSubjectCategories projects a dc:subject literal onto the category
// abstraction. Dublin Core subjects carry no taxonomy, so scheme and
// label stay empty.
func dcSubjectCategories(dc rdf.DublinCore) []syndication.Category {
	subject := dc.Subject()
	if subject == "" {
		return nil
	}
	return []syndication.Category{category{term: subject}}
}

// ImageRDF adapts the channel image resource. RSS 1.0 images carry no
// description or dimensions.
type ImageRDF struct {
	img rdf.Image
}

var _ syndication.Image = ImageRDF{}

func (i ImageRDF) IsNil() bool {
	return i.img.IsNil()
}

func (i ImageRDF) URL() string {
	return i.img.URL()
}

func (i ImageRDF) Title() string {
	return i.img.Title()
}

func (i ImageRDF) Link() string {
	return i.img.Link()
}

func (i ImageRDF) Description() string {
	return ""
}

func (i ImageRDF) Width() int {
	return 0
}

func (i ImageRDF) Height() int {
	return 0
}
