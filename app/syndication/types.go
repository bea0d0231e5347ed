package syndication

import "time"

// Format-agnostic feed abstraction. Each syndication format maps its own
// document shape onto these interfaces; consumers never see the format.

// Feed is a parsed feed regardless of source format.
type Feed interface {
	Title() string
	Link() string
	Description() string
	Author() string
	Language() string
	Items() []Item
	Categories() []Category
	Image() Image
}

// Item is one entry of a feed.
type Item interface {
	Title() string
	Link() string
	Description() string
	// Content returns the full item body as HTML, resolved from whichever
	// of the format's competing content fields is present. Empty if the
	// item has no content beyond its description.
	Content() string
	Author() string
	Authors() []Person
	Language() string
	// ID is unique within the containing feed. If the source document
	// carries no identifier, a deterministic hash of title, description
	// and content stands in, so refetches of unchanged items keep their
	// identity.
	ID() string
	DatePublished() time.Time
	DateUpdated() time.Time
	Categories() []Category
	Enclosures() []Enclosure
	CommentsLink() string
}

// Person is an author or contributor.
type Person interface {
	IsNil() bool
	Name() string
	Email() string
	URI() string
}

// Category is a classification attached to a feed or item.
type Category interface {
	IsNil() bool
	Term() string
	Scheme() string
	Label() string
}

// Enclosure is an attached media resource.
type Enclosure interface {
	IsNil() bool
	URL() string
	Title() string
	Type() string
	Length() int
}

// Image is the feed's image or logo.
type Image interface {
	IsNil() bool
	URL() string
	Title() string
	Link() string
	Description() string
	Width() int
	Height() int
}
