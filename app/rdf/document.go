package rdf

import (
	"fmt"
	"strings"
)

// Document wraps the channel resource of an RDF/RSS 1.0 model.
type Document struct {
	model   *Model
	channel *Resource
}

// NewDocument creates a document over the given channel resource. A nil
// channel yields an invalid document.
func NewDocument(model *Model, channel *Resource) Document {
	return Document{model: model, channel: channel}
}

// IsValid reports whether a channel resource was found.
func (d Document) IsValid() bool {
	return d.channel != nil
}

func (d Document) Title() string {
	return d.channel.PropertyText(rss10Title)
}

func (d Document) Description() string {
	return d.channel.PropertyText(rss10Description)
}

func (d Document) Link() string {
	return d.channel.PropertyText(rss10Link)
}

// DC returns the channel's Dublin Core block.
func (d Document) DC() DublinCore {
	return NewDublinCore(d.channel)
}

// Syn returns the channel's syndication module block.
func (d Document) Syn() SyndicationInfo {
	return NewSyndicationInfo(d.channel)
}

// Items returns the channel items in the order of the rdf:Seq member
// list.
func (d Document) Items() []Item {
	if d.channel == nil {
		return nil
	}
	seq, ok := d.channel.Property(rss10Items).(*Resource)
	if !ok || !seq.IsSequence() {
		return nil
	}
	var items []Item
	for _, member := range seq.SequenceItems() {
		if res, ok := member.(*Resource); ok {
			items = append(items, NewItem(res))
		}
	}
	return items
}

// Image returns the channel image resource wrapper; absent properties
// yield empty fields.
func (d Document) Image() Image {
	if d.channel == nil {
		return Image{}
	}
	res, _ := d.channel.Property(rss10Image).(*Resource)
	return NewImage(res)
}

// TextInput returns the channel textinput resource wrapper.
func (d Document) TextInput() TextInput {
	if d.channel == nil {
		return TextInput{}
	}
	res, _ := d.channel.Property(rss10TextInput).(*Resource)
	return NewTextInput(res)
}

// DebugInfo renders the document fields for diagnostics.
func (d Document) DebugInfo() string {
	var b strings.Builder
	b.WriteString("### Document: ###################\n")
	if d.IsValid() {
		fmt.Fprintf(&b, "title: #%s#\n", d.Title())
		fmt.Fprintf(&b, "link: #%s#\n", d.Link())
		fmt.Fprintf(&b, "description: #%s#\n", d.Description())
		for _, item := range d.Items() {
			b.WriteString(item.DebugInfo())
		}
	}
	b.WriteString("### Document end ################\n")
	return b.String()
}

// Image wraps the channel image resource.
type Image struct {
	res *Resource
}

func NewImage(res *Resource) Image {
	return Image{res: res}
}

func (i Image) IsNil() bool {
	return i.res == nil
}

func (i Image) Title() string {
	return i.res.PropertyText(rss10Title)
}

func (i Image) Link() string {
	return i.res.PropertyText(rss10Link)
}

func (i Image) URL() string {
	return i.res.PropertyText(rss10URL)
}

// TextInput wraps the channel textinput resource.
type TextInput struct {
	res *Resource
}

func NewTextInput(res *Resource) TextInput {
	return TextInput{res: res}
}

func (t TextInput) IsNil() bool {
	return t.res == nil
}

func (t TextInput) Title() string {
	return t.res.PropertyText(rss10Title)
}

func (t TextInput) Description() string {
	return t.res.PropertyText(rss10Description)
}

func (t TextInput) Name() string {
	return t.res.PropertyText(rss10Name)
}

func (t TextInput) Link() string {
	return t.res.PropertyText(rss10Link)
}
