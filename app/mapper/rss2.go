package mapper

import (
	"time"

	"github.com/feedcomb/syndication/app/rss2"
	"github.com/feedcomb/syndication/app/syndication"
)

// FeedRSS2 adapts an RSS 0.9x/2.0 channel to the feed abstraction.
type FeedRSS2 struct {
	doc rss2.Document
}

var _ syndication.Feed = (*FeedRSS2)(nil)

func (f *FeedRSS2) Title() string {
	return f.doc.Title()
}

func (f *FeedRSS2) Link() string {
	return f.doc.Link()
}

// Description returns the channel description as HTML; plain text sources
// are converted.
func (f *FeedRSS2) Description() string {
	return syndication.Htmlize(f.doc.Description())
}

func (f *FeedRSS2) Author() string {
	return f.doc.ManagingEditor()
}

func (f *FeedRSS2) Language() string {
	return f.doc.Language()
}

func (f *FeedRSS2) Items() []syndication.Item {
	var items []syndication.Item
	lang := f.doc.Language()
	for _, item := range f.doc.Items() {
		items = append(items, &ItemRSS2{item: item, language: lang})
	}
	return items
}

func (f *FeedRSS2) Categories() []syndication.Category {
	var cats []syndication.Category
	for _, c := range f.doc.Categories() {
		cats = append(cats, CategoryRSS2{cat: c})
	}
	return cats
}

func (f *FeedRSS2) Image() syndication.Image {
	return ImageRSS2{img: f.doc.Image()}
}

// ItemRSS2 adapts one <item>. The channel language is carried down since
// RSS has no per-item language element.
type ItemRSS2 struct {
	item     rss2.Item
	language string
}

var _ syndication.Item = (*ItemRSS2)(nil)

func (i *ItemRSS2) Title() string {
	return i.item.Title()
}

// Link prefers a permalink guid over the <link> element.
func (i *ItemRSS2) Link() string {
	if guid := i.item.GUID(); guid != "" && i.item.GUIDIsPermaLink() {
		return guid
	}
	return i.item.Link()
}

func (i *ItemRSS2) Description() string {
	return syndication.Htmlize(i.item.Description())
}

func (i *ItemRSS2) Content() string {
	return i.item.Content()
}

func (i *ItemRSS2) Author() string {
	return i.item.Author()
}

func (i *ItemRSS2) Authors() []syndication.Person {
	p := personFromString(i.item.Author())
	if p.IsNil() {
		return nil
	}
	return []syndication.Person{p}
}

func (i *ItemRSS2) Language() string {
	return i.language
}

// ID returns the item guid, or a content hash when the source carries
// none. The hash is stable across refetches of unchanged items.
func (i *ItemRSS2) ID() string {
	if guid := i.item.GUID(); guid != "" {
		return guid
	}
	return syntheticID(i.item.Title(), i.item.Description(), i.item.Content())
}

func (i *ItemRSS2) DatePublished() time.Time {
	return i.item.PubDate()
}

func (i *ItemRSS2) DateUpdated() time.Time {
	return i.item.PubDate()
}

func (i *ItemRSS2) Categories() []syndication.Category {
	var cats []syndication.Category
	for _, c := range i.item.Categories() {
		cats = append(cats, CategoryRSS2{cat: c})
	}
	return cats
}

func (i *ItemRSS2) Enclosures() []syndication.Enclosure {
	enc := i.item.Enclosure()
	if enc.IsNil() {
		return nil
	}
	return []syndication.Enclosure{EnclosureRSS2{enc: enc}}
}

func (i *ItemRSS2) CommentsLink() string {
	return i.item.Comments()
}

// CategoryRSS2 adapts a <category> element. The element text is the term;
// the domain attribute doubles as the scheme.
type CategoryRSS2 struct {
	cat rss2.Category
}

var _ syndication.Category = CategoryRSS2{}

func (c CategoryRSS2) IsNil() bool {
	return c.cat.IsNil()
}

func (c CategoryRSS2) Term() string {
	return c.cat.Category()
}

func (c CategoryRSS2) Scheme() string {
	return c.cat.Domain()
}

func (c CategoryRSS2) Label() string {
	return ""
}

// EnclosureRSS2 adapts an <enclosure> element. RSS enclosures carry no
// title.
type EnclosureRSS2 struct {
	enc rss2.Enclosure
}

var _ syndication.Enclosure = EnclosureRSS2{}

func (e EnclosureRSS2) IsNil() bool {
	return e.enc.IsNil()
}

func (e EnclosureRSS2) URL() string {
	return e.enc.URL()
}

func (e EnclosureRSS2) Title() string {
	return ""
}

func (e EnclosureRSS2) Type() string {
	return e.enc.Type()
}

func (e EnclosureRSS2) Length() int {
	return e.enc.Length()
}

// ImageRSS2 adapts the channel <image> element.
type ImageRSS2 struct {
	img rss2.Image
}

var _ syndication.Image = ImageRSS2{}

func (i ImageRSS2) IsNil() bool {
	return i.img.IsNil()
}

func (i ImageRSS2) URL() string {
	return i.img.URL()
}

func (i ImageRSS2) Title() string {
	return i.img.Title()
}

func (i ImageRSS2) Link() string {
	return i.img.Link()
}

func (i ImageRSS2) Description() string {
	return i.img.Description()
}

func (i ImageRSS2) Width() int {
	return i.img.Width()
}

func (i ImageRSS2) Height() int {
	return i.img.Height()
}
