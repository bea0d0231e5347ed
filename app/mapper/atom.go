package mapper

import (
	"time"

	"github.com/feedcomb/syndication/app/atom"
	"github.com/feedcomb/syndication/app/syndication"
)

// FeedAtom adapts an atom:feed document to the feed abstraction.
type FeedAtom struct {
	doc atom.FeedDocument
}

var _ syndication.Feed = (*FeedAtom)(nil)

func (f *FeedAtom) Title() string {
	return f.doc.Title()
}

func (f *FeedAtom) Link() string {
	return bestLink(f.doc.Links())
}

func (f *FeedAtom) Description() string {
	return f.doc.Subtitle()
}

func (f *FeedAtom) Author() string {
	authors := f.doc.Authors()
	if len(authors) == 0 {
		return ""
	}
	return displayAuthor(atomPerson(authors[0]))
}

func (f *FeedAtom) Language() string {
	return f.doc.XMLLang()
}

func (f *FeedAtom) Items() []syndication.Item {
	var items []syndication.Item
	for _, entry := range f.doc.Entries() {
		items = append(items, &ItemAtom{entry: entry})
	}
	return items
}

func (f *FeedAtom) Categories() []syndication.Category {
	return atomCategories(f.doc.Categories())
}

// Image maps the feed logo (falling back to the icon) onto the image
// abstraction.
func (f *FeedAtom) Image() syndication.Image {
	url := f.doc.Logo()
	if url == "" {
		url = f.doc.Icon()
	}
	return ImageAtom{url: url, title: f.doc.Title(), link: bestLink(f.doc.Links())}
}

// EntryFeedAtom adapts a standalone atom:entry document: a feed with no
// metadata of its own and exactly one item.
type EntryFeedAtom struct {
	doc atom.EntryDocument
}

var _ syndication.Feed = (*EntryFeedAtom)(nil)

func (f *EntryFeedAtom) Title() string       { return "" }
func (f *EntryFeedAtom) Link() string        { return "" }
func (f *EntryFeedAtom) Description() string { return "" }
func (f *EntryFeedAtom) Author() string      { return "" }
func (f *EntryFeedAtom) Language() string    { return "" }

func (f *EntryFeedAtom) Items() []syndication.Item {
	return []syndication.Item{&ItemAtom{entry: f.doc.Entry()}}
}

func (f *EntryFeedAtom) Categories() []syndication.Category {
	return nil
}

func (f *EntryFeedAtom) Image() syndication.Image {
	return ImageAtom{}
}

// ItemAtom adapts one atom:entry.
type ItemAtom struct {
	entry atom.Entry
}

var _ syndication.Item = (*ItemAtom)(nil)

func (i *ItemAtom) Title() string {
	return i.entry.Title()
}

func (i *ItemAtom) Link() string {
	return bestLink(i.entry.Links())
}

func (i *ItemAtom) Description() string {
	return i.entry.Summary()
}

// Content returns the entry content as HTML. Binary content has no
// sensible HTML rendition and maps to absent.
func (i *ItemAtom) Content() string {
	content := i.entry.Content()
	if content.IsNil() || content.IsBinary() {
		return ""
	}
	return content.AsString()
}

func (i *ItemAtom) Author() string {
	authors := i.entry.Authors()
	if len(authors) == 0 {
		return ""
	}
	return displayAuthor(atomPerson(authors[0]))
}

func (i *ItemAtom) Authors() []syndication.Person {
	var people []syndication.Person
	for _, p := range i.entry.Authors() {
		people = append(people, atomPerson(p))
	}
	for _, p := range i.entry.Contributors() {
		people = append(people, atomPerson(p))
	}
	return people
}

func (i *ItemAtom) Language() string {
	return i.entry.XMLLang()
}

func (i *ItemAtom) ID() string {
	if id := i.entry.ID(); id != "" {
		return id
	}
	return syntheticID(i.Title(), i.Description(), i.Content())
}

func (i *ItemAtom) DatePublished() time.Time {
	return i.entry.Published()
}

func (i *ItemAtom) DateUpdated() time.Time {
	return i.entry.Updated()
}

func (i *ItemAtom) Categories() []syndication.Category {
	return atomCategories(i.entry.Categories())
}

func (i *ItemAtom) Enclosures() []syndication.Enclosure {
	var encs []syndication.Enclosure
	for _, l := range i.entry.Links() {
		if l.Rel() == "enclosure" {
			encs = append(encs, EnclosureAtom{link: l})
		}
	}
	return encs
}

func (i *ItemAtom) CommentsLink() string {
	return ""
}

// bestLink picks the entry's primary link: the first alternate link with
// an HTML media type, else the first alternate, else the first link at
// all.
func bestLink(links []atom.Link) string {
	var firstAlternate string
	for _, l := range links {
		if l.Rel() != "alternate" {
			continue
		}
		switch l.Type() {
		case "", "text/html", "application/xhtml+xml":
			return l.Href()
		}
		if firstAlternate == "" {
			firstAlternate = l.Href()
		}
	}
	if firstAlternate != "" {
		return firstAlternate
	}
	if len(links) > 0 {
		return links[0].Href()
	}
	return ""
}

func atomPerson(p atom.Person) person {
	return person{name: p.Name(), email: p.Email(), uri: p.URI()}
}

func atomCategories(cats []atom.Category) []syndication.Category {
	var out []syndication.Category
	for _, c := range cats {
		out = append(out, CategoryAtom{cat: c})
	}
	return out
}

// CategoryAtom adapts an atom:category element; term, scheme and label
// map 1:1.
type CategoryAtom struct {
	cat atom.Category
}

var _ syndication.Category = CategoryAtom{}

func (c CategoryAtom) IsNil() bool {
	return c.cat.IsNil()
}

func (c CategoryAtom) Term() string {
	return c.cat.Term()
}

func (c CategoryAtom) Scheme() string {
	return c.cat.Scheme()
}

func (c CategoryAtom) Label() string {
	return c.cat.Label()
}

// EnclosureAtom adapts a rel="enclosure" link.
type EnclosureAtom struct {
	link atom.Link
}

var _ syndication.Enclosure = EnclosureAtom{}

func (e EnclosureAtom) IsNil() bool {
	return e.link.IsNil()
}

func (e EnclosureAtom) URL() string {
	return e.link.Href()
}

func (e EnclosureAtom) Title() string {
	return e.link.Title()
}

func (e EnclosureAtom) Type() string {
	return e.link.Type()
}

func (e EnclosureAtom) Length() int {
	return e.link.Length()
}

// ImageAtom carries the feed logo or icon URL; Atom has no further image
// metadata.
type ImageAtom struct {
	url   string
	title string
	link  string
}

var _ syndication.Image = ImageAtom{}

func (i ImageAtom) IsNil() bool {
	return i.url == ""
}

func (i ImageAtom) URL() string {
	return i.url
}

func (i ImageAtom) Title() string {
	return i.title
}

func (i ImageAtom) Link() string {
	return i.link
}

func (i ImageAtom) Description() string {
	return ""
}

func (i ImageAtom) Width() int {
	return 0
}

func (i ImageAtom) Height() int {
	return 0
}
