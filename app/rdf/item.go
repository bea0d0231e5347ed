package rdf

import (
	"fmt"
	"strings"
)

// Item wraps one RSS 1.0 item resource.
type Item struct {
	res *Resource
}

func NewItem(res *Resource) Item {
	return Item{res: res}
}

// Resource exposes the underlying RDF resource; its URI identifies the
// item.
func (i Item) Resource() *Resource {
	return i.res
}

func (i Item) Title() string {
	return i.res.PropertyText(rss10Title)
}

func (i Item) Description() string {
	return i.res.PropertyText(rss10Description)
}

func (i Item) Link() string {
	return i.res.PropertyText(rss10Link)
}

// EncodedContent returns the content module's full item body, "" when the
// feed only carries descriptions.
func (i Item) EncodedContent() string {
	return i.res.PropertyText(contentEncoded)
}

// DC returns the item's Dublin Core block.
func (i Item) DC() DublinCore {
	return NewDublinCore(i.res)
}

// DebugInfo renders the item fields for diagnostics.
func (i Item) DebugInfo() string {
	var b strings.Builder
	b.WriteString("### Item: ###################\n")
	fmt.Fprintf(&b, "title: #%s#\n", i.Title())
	fmt.Fprintf(&b, "link: #%s#\n", i.Link())
	fmt.Fprintf(&b, "description: #%s#\n", i.Description())
	b.WriteString("### Item end ################\n")
	return b.String()
}
